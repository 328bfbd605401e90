package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/app/service/earnings"
	"github.com/moonvest/investd/internal/models"
	cfgpkg "github.com/moonvest/investd/pkg/config"
)

// Store is the slice of the repository façade this service consumes.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	DebitUserBalance(ctx context.Context, userID string, amount float64) (bool, error)
	CreditUserBalance(ctx context.Context, userID string, amount float64) error
	CreateSubscription(ctx context.Context, sub *models.Subscription) error
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	QuerySubscriptionsByUser(ctx context.Context, userID string) ([]*models.Subscription, error)
}

// Notifier announces purchases to the admin channel.
type Notifier interface {
	NotifySubscription(sub *models.Subscription) bool
}

// Service owns subscription purchase and the lazy accrual read path: every
// read first evaluates earnings against "now" and settles what is owed before
// the view is returned.
type Service struct {
	store    Store
	settler  *earnings.Settler
	notifier Notifier
	cfg      *cfgpkg.Config
	log      *zap.SugaredLogger

	now func() time.Time
}

func NewService(store Store, settler *earnings.Settler, notifier Notifier, cfg *cfgpkg.Config, log *zap.SugaredLogger) *Service {
	return &Service{
		store:    store,
		settler:  settler,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// View is a subscription snapshot enriched with the derived remaining-day
// count; remaining_days is never stored, only computed on read.
type View struct {
	*models.Subscription
	RemainingDays int `json:"remaining_days"`
}

// GetUserSubscriptions settles accrued earnings for every subscription the
// user owns, then returns the refreshed list sorted by creation time
// descending. Settlement failures degrade to the stored view.
func (s *Service) GetUserSubscriptions(ctx context.Context, userID string) ([]*View, error) {
	subs, err := s.store.QuerySubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	now := s.now()
	postings := make([]earnings.Posting, 0, len(subs))
	remaining := make(map[string]int, len(subs))
	for _, sub := range subs {
		acc, err := earnings.Accrue(sub, now)
		if err != nil {
			s.log.Errorw("skipping accrual for malformed subscription", "subscription_id", sub.ID, "err", err)
			remaining[sub.ID] = earnings.DaysBetween(now, sub.EndDate)
			continue
		}
		postings = append(postings, earnings.Posting{Sub: sub, Accrual: acc})
		remaining[sub.ID] = acc.RemainingDays
	}

	s.settler.SettleUser(ctx, userID, postings, now)

	return lo.Map(subs, func(sub *models.Subscription, _ int) *View {
		return &View{Subscription: sub, RemainingDays: max(0, remaining[sub.ID])}
	}), nil
}

// GetSubscription settles one subscription and returns its refreshed view.
// Returns the store's not-found error when the id is unknown.
func (s *Service) GetSubscription(ctx context.Context, id string) (*View, error) {
	sub, err := s.store.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	acc, err := earnings.Accrue(sub, now)
	if err != nil {
		s.log.Errorw("skipping accrual for malformed subscription", "subscription_id", sub.ID, "err", err)
		return &View{Subscription: sub, RemainingDays: max(0, earnings.DaysBetween(now, sub.EndDate))}, nil
	}

	s.settler.Settle(ctx, sub, acc, now)
	return &View{Subscription: sub, RemainingDays: acc.RemainingDays}, nil
}
