package earnings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/types"
)

type settleCall struct {
	subID       string
	totalEarned float64
	prevUpdate  time.Time
	now         time.Time
}

// fakeStore is an in-memory Store with switchable failure modes.
type fakeStore struct {
	users map[string]*models.User

	settleCalls  []settleCall
	statusWrites map[string]types.SubscriptionStatus
	credits      []float64

	casMiss   bool
	settleErr error
	creditErr error
	userErr   error
}

func newFakeStore(users ...*models.User) *fakeStore {
	m := make(map[string]*models.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeStore{users: m, statusWrites: map[string]types.SubscriptionStatus{}}
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeStore) CreditUserBalance(_ context.Context, userID string, amount float64) error {
	if f.creditErr != nil {
		return f.creditErr
	}
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Balance += amount
	f.credits = append(f.credits, amount)
	return nil
}

func (f *fakeStore) SettleSubscriptionEarnings(_ context.Context, subID string, totalEarned float64, prevUpdate, now time.Time) (bool, error) {
	if f.settleErr != nil {
		return false, f.settleErr
	}
	if f.casMiss {
		return false, nil
	}
	f.settleCalls = append(f.settleCalls, settleCall{subID: subID, totalEarned: totalEarned, prevUpdate: prevUpdate, now: now})
	return true, nil
}

func (f *fakeStore) UpdateSubscriptionStatus(_ context.Context, subID string, status types.SubscriptionStatus) error {
	f.statusWrites[subID] = status
	return nil
}

type fakeNotifier struct {
	calls []struct {
		userID string
		amount float64
	}
	fail bool
}

func (f *fakeNotifier) NotifyAutomaticEarnings(userID string, amount float64) bool {
	f.calls = append(f.calls, struct {
		userID string
		amount float64
	}{userID, amount})
	return !f.fail
}

func mustAccrue(t *testing.T, sub *models.Subscription, now time.Time) Accrual {
	t.Helper()
	acc, err := Accrue(sub, now)
	require.NoError(t, err)
	return acc
}

func TestSettler_SettleCreditsOncePerDay(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1", Balance: 50})
	notifier := &fakeNotifier{}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	sub := newContract()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.InDelta(t, 30, credited, moneyEps)
	assert.InDelta(t, 80, store.users["user-1"].Balance, moneyEps)
	assert.InDelta(t, 30, sub.TotalEarned, moneyEps)
	assert.Equal(t, now, sub.LastEarningsUpdate)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "user-1", notifier.calls[0].userID)
	assert.InDelta(t, 30, notifier.calls[0].amount, moneyEps)

	// Second read the same day: the accrual is already zero, nothing moves.
	later := time.Date(2024, 1, 4, 18, 0, 0, 0, time.UTC)
	credited = settler.Settle(context.Background(), sub, mustAccrue(t, sub, later), later)
	assert.Zero(t, credited)
	assert.InDelta(t, 80, store.users["user-1"].Balance, moneyEps)
	assert.Len(t, store.settleCalls, 1)
	assert.Len(t, notifier.calls, 1)
}

func TestSettler_CASMissAbsorbedAsNoOp(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1", Balance: 50})
	store.casMiss = true
	notifier := &fakeNotifier{}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	sub := newContract()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.Zero(t, credited)
	assert.InDelta(t, 50, store.users["user-1"].Balance, moneyEps)
	assert.Zero(t, sub.TotalEarned)
	assert.Empty(t, notifier.calls)
}

func TestSettler_UserNotFoundSkipsEverything(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	sub := newContract()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.Zero(t, credited)
	assert.Empty(t, store.settleCalls, "earnings must not be written when the user is missing")
	assert.Zero(t, sub.TotalEarned)
	assert.Empty(t, notifier.calls)
}

func TestSettler_StatusTransitionPersisted(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1"})
	settler := NewSettler(store, &fakeNotifier{}, zap.NewNop().Sugar())

	sub := newContract()
	sub.TotalEarned = 450
	sub.LastEarningsUpdate = sub.EndDate
	now := sub.EndDate.AddDate(0, 0, 10)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.Zero(t, credited)
	assert.Equal(t, types.SubscriptionStatusCompleted, store.statusWrites[sub.ID])
	assert.Equal(t, types.SubscriptionStatusCompleted, sub.Status)

	// Re-applying on a later read is a no-op: the accrual reports the stored
	// status unchanged.
	credited = settler.Settle(context.Background(), sub, mustAccrue(t, sub, now.AddDate(0, 0, 1)), now.AddDate(0, 0, 1))
	assert.Zero(t, credited)
}

func TestSettler_SettleErrorDegrades(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1", Balance: 50})
	store.settleErr = assert.AnError
	notifier := &fakeNotifier{}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	sub := newContract()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.Zero(t, credited)
	assert.InDelta(t, 50, store.users["user-1"].Balance, moneyEps)
	assert.Empty(t, notifier.calls)
}

func TestSettler_NotifierFailureDoesNotAffectSettlement(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1", Balance: 0})
	notifier := &fakeNotifier{fail: true}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	sub := newContract()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	credited := settler.Settle(context.Background(), sub, mustAccrue(t, sub, now), now)
	assert.InDelta(t, 30, credited, moneyEps)
	assert.InDelta(t, 30, store.users["user-1"].Balance, moneyEps)
}

func TestSettler_SettleUserAggregatesCredits(t *testing.T) {
	store := newFakeStore(&models.User{ID: "user-1", Balance: 0})
	notifier := &fakeNotifier{}
	settler := NewSettler(store, notifier, zap.NewNop().Sugar())

	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	subA := newContract()
	subB := newContract()
	subB.ID = "sub-2"
	subB.PackagePrice = 200 // daily 20

	postings := []Posting{
		{Sub: subA, Accrual: mustAccrue(t, subA, now)},
		{Sub: subB, Accrual: mustAccrue(t, subB, now)},
	}
	credited := settler.SettleUser(context.Background(), "user-1", postings, now)
	assert.InDelta(t, 90, credited, moneyEps)
	assert.InDelta(t, 90, store.users["user-1"].Balance, moneyEps)
	require.Len(t, store.credits, 1, "one aggregated balance credit")
	require.Len(t, notifier.calls, 1, "one aggregated notification")
	assert.InDelta(t, 90, notifier.calls[0].amount, moneyEps)
	assert.Len(t, store.settleCalls, 2)
}
