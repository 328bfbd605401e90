package earnings

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/logctx"
	"github.com/moonvest/investd/pkg/types"
)

// Store is the repository façade the settlement core writes through. The two
// mutation methods are deliberately narrow: the earnings write is a
// compare-and-swap guarded on the previously observed posting instant, and
// the balance write is an atomic increment, so concurrent same-day reads
// credit at most once.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreditUserBalance(ctx context.Context, userID string, amount float64) error
	// SettleSubscriptionEarnings persists totalEarned and moves the posting
	// instant to now, but only while last_earnings_update still equals
	// prevUpdate. It reports whether the write was applied.
	SettleSubscriptionEarnings(ctx context.Context, subscriptionID string, totalEarned float64, prevUpdate, now time.Time) (bool, error)
	UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status types.SubscriptionStatus) error
}

// Notifier is the admin side-channel. Best effort only: the settler logs a
// false return and moves on.
type Notifier interface {
	NotifyAutomaticEarnings(userID string, amount float64) bool
}

// Posting pairs a subscription with its evaluated accrual.
type Posting struct {
	Sub     *models.Subscription
	Accrual Accrual
}

// Settler applies accrual results to storage. All failures degrade: callers
// of the read path get the stored view back and nothing is retried.
type Settler struct {
	store    Store
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewSettler(store Store, notifier Notifier, log *zap.SugaredLogger) *Settler {
	return &Settler{store: store, notifier: notifier, log: log}
}

// Settle posts a single subscription's accrual and returns the amount
// actually credited to the user's balance.
func (s *Settler) Settle(ctx context.Context, sub *models.Subscription, acc Accrual, now time.Time) float64 {
	return s.SettleUser(ctx, sub.UserID, []Posting{{Sub: sub, Accrual: acc}}, now)
}

// SettleUser posts accruals for all of a user's subscriptions as one logical
/// settlement: per-subscription earnings writes, then a single balance credit
// for the sum, then one notification. Models are updated in place only for
// writes that actually landed.
func (s *Settler) SettleUser(ctx context.Context, userID string, postings []Posting, now time.Time) float64 {
	log := logctx.FromCtx(ctx, s.log)

	for _, p := range postings {
		if p.Accrual.Status == p.Sub.Status {
			continue
		}
		if err := s.store.UpdateSubscriptionStatus(ctx, p.Sub.ID, p.Accrual.Status); err != nil {
			log.Errorw("failed to update subscription status",
				"subscription_id", p.Sub.ID, "status", p.Accrual.Status, "err", err)
			continue
		}
		p.Sub.Status = p.Accrual.Status
	}

	pending := lo.Filter(postings, func(p Posting, _ int) bool {
		return p.Accrual.NewEarnings > 0
	})
	if len(pending) == 0 {
		return 0
	}

	// The owning user must exist before any earnings write: a missing user
	// means the whole settlement is skipped with state unchanged.
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warnw("skipping earnings settlement: user not found", "user_id", userID)
		} else {
			log.Errorw("skipping earnings settlement: failed to load user", "user_id", userID, "err", err)
		}
		return 0
	}

	var credited float64
	for _, p := range pending {
		applied, err := s.store.SettleSubscriptionEarnings(ctx, p.Sub.ID, p.Accrual.TotalEarned, p.Sub.LastUpdateBase(), now)
		if err != nil {
			log.Errorw("failed to settle subscription earnings",
				"subscription_id", p.Sub.ID, "err", err)
			continue
		}
		if !applied {
			// A concurrent read settled this subscription first today.
			log.Debugw("subscription already settled", "subscription_id", p.Sub.ID)
			continue
		}
		p.Sub.TotalEarned = p.Accrual.TotalEarned
		p.Sub.LastEarningsUpdate = now
		credited += p.Accrual.NewEarnings
	}
	if credited == 0 {
		return 0
	}

	if err := s.store.CreditUserBalance(ctx, user.ID, credited); err != nil {
		log.Errorw("failed to credit user balance", "user_id", user.ID, "amount", credited, "err", err)
		return 0
	}
	log.Infow("credited automatic earnings", "user_id", user.ID, "amount", credited)

	if !s.notifier.NotifyAutomaticEarnings(user.ID, credited) {
		log.Warnw("automatic earnings notification not delivered", "user_id", user.ID)
	}
	return credited
}
