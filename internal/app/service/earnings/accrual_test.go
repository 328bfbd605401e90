package earnings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/types"
)

const moneyEps = 1e-9

// fixture matching the canonical contract: 100 at 10% daily over 45 days.
func newContract() *models.Subscription {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Subscription{
		ID:                 "sub-1",
		UserID:             "user-1",
		PackagePrice:       100,
		DailyReturn:        types.Percent("10%"),
		DurationDays:       45,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, 45),
		Status:             types.SubscriptionStatusActive,
		LastEarningsUpdate: start,
	}
}

func TestAccrue_AllCases(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(sub *models.Subscription)
		now        time.Time
		wantRem    int
		wantTotal  float64
		wantNew    float64
		wantStatus types.SubscriptionStatus
	}{
		{
			name:       "three days elapsed, never settled",
			now:        time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			wantRem:    42,
			wantTotal:  30,
			wantNew:    30,
			wantStatus: types.SubscriptionStatusActive,
		},
		{
			name: "second read same day after settlement",
			mutate: func(sub *models.Subscription) {
				sub.TotalEarned = 30
				sub.LastEarningsUpdate = time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)
			},
			now:        time.Date(2024, 1, 4, 18, 0, 0, 0, time.UTC),
			wantRem:    42,
			wantTotal:  30,
			wantNew:    0,
			wantStatus: types.SubscriptionStatusActive,
		},
		{
			name:       "exactly at end date",
			now:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			wantRem:    0,
			wantTotal:  450,
			wantNew:    450,
			wantStatus: types.SubscriptionStatusCompleted,
		},
		{
			name: "well past end, fully settled by end date",
			mutate: func(sub *models.Subscription) {
				sub.TotalEarned = 450
				sub.LastEarningsUpdate = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
				sub.Status = types.SubscriptionStatusCompleted
			},
			now:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantRem:    0,
			wantTotal:  450,
			wantNew:    0,
			wantStatus: types.SubscriptionStatusCompleted,
		},
		{
			name: "past end with settlement lagging: capped at end date",
			mutate: func(sub *models.Subscription) {
				sub.TotalEarned = 400
				sub.LastEarningsUpdate = time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)
			},
			now:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantRem:    0,
			wantTotal:  450,
			wantNew:    40, // 4 remaining contract days (Feb 11 -> Feb 15), not 19
			wantStatus: types.SubscriptionStatusCompleted,
		},
		{
			name: "time of day skew still counts the day",
			mutate: func(sub *models.Subscription) {
				sub.StartDate = time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
				sub.LastEarningsUpdate = sub.StartDate
			},
			now:        time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			wantRem:    44,
			wantTotal:  10,
			wantNew:    10,
			wantStatus: types.SubscriptionStatusActive,
		},
		{
			name:       "now before start accrues nothing",
			now:        time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
			wantRem:    47,
			wantTotal:  0,
			wantNew:    0,
			wantStatus: types.SubscriptionStatusActive,
		},
		{
			name: "completed status never reverts",
			mutate: func(sub *models.Subscription) {
				sub.Status = types.SubscriptionStatusCompleted
				sub.TotalEarned = 450
				sub.LastEarningsUpdate = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
			},
			now:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantRem:    0,
			wantTotal:  450,
			wantNew:    0,
			wantStatus: types.SubscriptionStatusCompleted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := newContract()
			if tt.mutate != nil {
				tt.mutate(sub)
			}
			acc, err := Accrue(sub, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRem, acc.RemainingDays)
			assert.InDelta(t, tt.wantTotal, acc.TotalEarned, moneyEps)
			assert.InDelta(t, tt.wantNew, acc.NewEarnings, moneyEps)
			assert.Equal(t, tt.wantStatus, acc.Status)
			assert.InDelta(t, 10, acc.DailyEarning, moneyEps)
		})
	}
}

func TestAccrue_InvalidPercent(t *testing.T) {
	sub := newContract()
	sub.DailyReturn = types.Percent("ten percent")
	_, err := Accrue(sub, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
}

func TestAccrue_TotalNeverExceedsContract(t *testing.T) {
	sub := newContract()
	contractTotal := 450.0
	for day := 0; day < 100; day += 7 {
		now := sub.StartDate.AddDate(0, 0, day)
		acc, err := Accrue(sub, now)
		require.NoError(t, err)
		assert.LessOrEqual(t, acc.TotalEarned, contractTotal+moneyEps, "day %d", day)
	}
}

func TestAccrue_MonotonicTotal(t *testing.T) {
	sub := newContract()
	prev := -1.0
	for day := 0; day < 60; day++ {
		acc, err := Accrue(sub, sub.StartDate.AddDate(0, 0, day))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, acc.TotalEarned, prev)
		prev = acc.TotalEarned
	}
}
