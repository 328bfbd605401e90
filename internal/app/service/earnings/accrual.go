package earnings

import (
	"fmt"
	"time"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/types"
)

// Accrual is the result of evaluating a subscription against an instant. It
// carries everything the settlement step needs; nothing is persisted here.
type Accrual struct {
	// RemainingDays is the whole days left until the contractual end, never
	// negative.
	RemainingDays int
	// TotalEarned is the cumulative amount earned from the start date up to
	// now, capped at the contractual duration.
	TotalEarned float64
	// NewEarnings is the portion of TotalEarned not yet posted to the user's
	// balance. Zero when the subscription was already settled today.
	NewEarnings float64
	// DailyEarning is the per-day credit derived from the package price and
	// the daily return percentage.
	DailyEarning float64
	// Status is the lifecycle state the subscription should be in as of now.
	Status types.SubscriptionStatus
}

// Accrue computes remaining days, earned-to-date and unsettled earnings for a
// subscription snapshot at the given instant. It is pure: repeated calls with
// the same inputs yield the same output, and two calls within the same UTC
// calendar day after a settlement yield NewEarnings == 0.
func Accrue(sub *models.Subscription, now time.Time) (Accrual, error) {
	fraction, err := sub.DailyReturn.Fraction()
	if err != nil {
		return Accrual{}, fmt.Errorf("subscription %s: %w", sub.ID, err)
	}
	dailyEarning := sub.PackagePrice * fraction

	today := DayBucket(now)
	end := DayBucket(sub.EndDate)

	daysPassed := DaysBetween(sub.StartDate, now)
	if daysPassed < 0 {
		daysPassed = 0
	}
	if daysPassed > sub.DurationDays {
		daysPassed = sub.DurationDays
	}
	totalEarned := float64(daysPassed) * dailyEarning
	if totalEarned < 0 {
		totalEarned = 0
	}

	remainingDays := DaysBetween(now, sub.EndDate)
	if remainingDays < 0 {
		remainingDays = 0
	}

	// Unsettled days are counted from the last posting (or the start date when
	// nothing was ever posted) and capped at the contractual end so earnings
	// can never accrue past end_date.
	lastBase := DayBucket(sub.LastUpdateBase())
	sinceLast := DaysBetween(lastBase, today)
	if sinceLast < 0 {
		sinceLast = 0
	}
	effectiveEnd := today
	if end.Before(today) {
		effectiveEnd = end
	}
	if capDays := DaysBetween(lastBase, effectiveEnd); capDays < 0 {
		sinceLast = 0
	} else if sinceLast > capDays {
		sinceLast = capDays
	}

	status := sub.Status
	if remainingDays <= 0 && status == types.SubscriptionStatusActive {
		status = types.SubscriptionStatusCompleted
	}

	return Accrual{
		RemainingDays: remainingDays,
		TotalEarned:   totalEarned,
		NewEarnings:   float64(sinceLast) * dailyEarning,
		DailyEarning:  dailyEarning,
		Status:        status,
	}, nil
}
