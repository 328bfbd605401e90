package transaction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/logctx"
	"github.com/moonvest/investd/pkg/tool"
	"github.com/moonvest/investd/pkg/types"
)

// Store is the slice of the repository façade this service consumes.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreateDeposit(ctx context.Context, d *models.Deposit) error
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error
}

// Notifier announces new money-movement requests to the admin channel.
type Notifier interface {
	NotifyDeposit(d *models.Deposit) bool
	NotifyWithdrawal(w *models.Withdrawal) bool
}

// Service records deposit and withdrawal requests. Both are self-reported and
// start pending; the balance is only verified here, an operator moves the
// money later.
type Service struct {
	store    Store
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewService(store Store, notifier Notifier, log *zap.SugaredLogger) *Service {
	return &Service{store: store, notifier: notifier, log: log}
}

// DepositRequest carries a self-reported on-chain transfer.
type DepositRequest struct {
	UserID         string
	UserUsername   string
	UserFirstName  string
	UserLastName   string
	Amount         float64
	TransactionRef string
	Network        string
	NetworkName    string
}

func (s *Service) CreateDeposit(ctx context.Context, req *DepositRequest) (*models.Deposit, error) {
	d := &models.Deposit{
		ID:             tool.GenerateUUIDV7(),
		UserID:         req.UserID,
		UserUsername:   req.UserUsername,
		UserFirstName:  req.UserFirstName,
		UserLastName:   req.UserLastName,
		Amount:         req.Amount,
		Status:         types.TransactionStatusPending,
		TransactionRef: req.TransactionRef,
		Network:        req.Network,
		NetworkName:    req.NetworkName,
	}
	if err := s.store.CreateDeposit(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("deposit recorded", "deposit_id", d.ID, "user_id", d.UserID, "amount", d.Amount)

	go func() {
		if !s.notifier.NotifyDeposit(d) {
			s.log.Warnw("deposit notification not delivered", "deposit_id", d.ID)
		}
	}()
	return d, nil
}

// WithdrawalRequest carries a payout request to an external address.
type WithdrawalRequest struct {
	UserID            string
	UserUsername      string
	UserFirstName     string
	UserLastName      string
	Amount            float64
	Network           string
	NetworkName       string
	WithdrawalAddress string
}

// CreateWithdrawal verifies the user's balance covers the amount before
// recording the pending request. Nothing is debited here.
func (s *Service) CreateWithdrawal(ctx context.Context, req *WithdrawalRequest) (*models.Withdrawal, error) {
	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if req.Amount > user.Balance {
		return nil, &models.InsufficientBalanceError{CurrentBalance: user.Balance, Required: req.Amount}
	}

	w := &models.Withdrawal{
		ID:                tool.GenerateUUIDV7(),
		UserID:            req.UserID,
		UserUsername:      req.UserUsername,
		UserFirstName:     req.UserFirstName,
		UserLastName:      req.UserLastName,
		Amount:            req.Amount,
		Status:            types.TransactionStatusPending,
		Network:           req.Network,
		NetworkName:       req.NetworkName,
		WithdrawalAddress: req.WithdrawalAddress,
	}
	if err := s.store.CreateWithdrawal(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("withdrawal recorded", "withdrawal_id", w.ID, "user_id", w.UserID, "amount", w.Amount)

	go func() {
		if !s.notifier.NotifyWithdrawal(w) {
			s.log.Warnw("withdrawal notification not delivered", "withdrawal_id", w.ID)
		}
	}()
	return w, nil
}
