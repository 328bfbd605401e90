package subscription

import (
	"context"
	"fmt"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/logctx"
	"github.com/moonvest/investd/pkg/tool"
	"github.com/moonvest/investd/pkg/types"
)

// CreateRequest carries the purchase parameters submitted by the mini-app.
type CreateRequest struct {
	UserID        string
	UserUsername  string
	UserFirstName string
	UserLastName  string
	PackageName   string
	PackagePrice  float64
	DailyReturn   types.Percent
	DurationDays  int
	TotalReturn   float64
}

// Create purchases a package: the price is debited from the user's balance
// and a new active subscription starts today. An insufficient balance rejects
// the purchase before any record is created.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Subscription, error) {
	log := logctx.FromCtx(ctx, s.log)

	// When a package catalog is configured, the client-submitted terms must
	// match it; an empty catalog accepts the submitted terms as-is.
	if len(s.cfg.Packages) > 0 {
		pkg := s.cfg.GetPackageByName(req.PackageName)
		if pkg == nil {
			return nil, fmt.Errorf("unknown package %q", req.PackageName)
		}
		if pkg.Price != req.PackagePrice || pkg.DailyReturn != req.DailyReturn || pkg.DurationDays != req.DurationDays {
			return nil, fmt.Errorf("package terms for %q do not match the catalog", req.PackageName)
		}
	}
	if _, err := req.DailyReturn.Fraction(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Balance < req.PackagePrice {
		return nil, &models.InsufficientBalanceError{CurrentBalance: user.Balance, Required: req.PackagePrice}
	}

	// The conditional debit re-checks the balance inside the update, so a
	// concurrent purchase or withdrawal cannot overdraw the account.
	applied, err := s.store.DebitUserBalance(ctx, req.UserID, req.PackagePrice)
	if err != nil {
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}
	if !applied {
		return nil, &models.InsufficientBalanceError{CurrentBalance: user.Balance, Required: req.PackagePrice}
	}

	now := s.now()
	sub := &models.Subscription{
		ID:                 tool.GenerateUUIDV7(),
		UserID:             req.UserID,
		UserUsername:       req.UserUsername,
		UserFirstName:      req.UserFirstName,
		UserLastName:       req.UserLastName,
		PackageName:        req.PackageName,
		PackagePrice:       req.PackagePrice,
		DailyReturn:        req.DailyReturn,
		DurationDays:       req.DurationDays,
		TotalReturn:        req.TotalReturn,
		StartDate:          now,
		EndDate:            now.AddDate(0, 0, req.DurationDays),
		Status:             types.SubscriptionStatusActive,
		TotalEarned:        0,
		LastEarningsUpdate: now,
	}
	if err := s.store.CreateSubscription(ctx, sub); err != nil {
		// Hand the debited amount back; the purchase did not happen.
		if crErr := s.store.CreditUserBalance(ctx, req.UserID, req.PackagePrice); crErr != nil {
			log.Errorw("failed to refund debit after create failure",
				"user_id", req.UserID, "amount", req.PackagePrice, "err", crErr)
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	log.Infow("subscription created",
		"subscription_id", sub.ID, "user_id", sub.UserID, "package", sub.PackageName, "price", sub.PackagePrice)

	go func() {
		if !s.notifier.NotifySubscription(sub) {
			s.log.Warnw("subscription notification not delivered", "subscription_id", sub.ID)
		}
	}()
	return sub, nil
}
