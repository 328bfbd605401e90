package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/logctx"
)

// Store is the slice of the repository façade this service consumes.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpsertUser(ctx context.Context, u *models.User) error
	ListDepositsByUser(ctx context.Context, userID string) ([]*models.Deposit, error)
	ListWithdrawalsByUser(ctx context.Context, userID string) ([]*models.Withdrawal, error)
}

// Service serves user profiles, balances and transaction statements.
type Service struct {
	store Store
	log   *zap.SugaredLogger
}

func NewService(store Store, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

// GetBalance returns only the balance field.
func (s *Service) GetBalance(ctx context.Context, userID string) (float64, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

// Upsert registers a user on mini-app login, refreshing the profile fields
// without touching an existing balance.
func (s *Service) Upsert(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if err := s.store.UpsertUser(ctx, u); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("user upserted", "user_id", u.ID)
	return nil
}

func (s *Service) ListDeposits(ctx context.Context, userID string) ([]*models.Deposit, error) {
	return s.store.ListDepositsByUser(ctx, userID)
}

func (s *Service) ListWithdrawals(ctx context.Context, userID string) ([]*models.Withdrawal, error) {
	return s.store.ListWithdrawalsByUser(ctx, userID)
}
