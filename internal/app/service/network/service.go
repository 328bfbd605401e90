package network

import (
	"context"

	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/logctx"
	"github.com/moonvest/investd/pkg/types"
)

// Store is the slice of the repository façade this service consumes.
type Store interface {
	ListActiveNetworks(ctx context.Context) ([]*models.Network, error)
}

// Service serves the deposit and withdrawal network catalog. When the table
// is empty or unreachable it falls back to a built-in set so the client
// always has addresses to show.
type Service struct {
	store Store
	log   *zap.SugaredLogger
}

func NewService(store Store, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) List(ctx context.Context) []*models.Network {
	items, err := s.store.ListActiveNetworks(ctx)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("failed to list networks, serving fallback", "err", err)
		return fallbackNetworks()
	}
	if len(items) == 0 {
		return fallbackNetworks()
	}
	return items
}

func fallbackNetworks() []*models.Network {
	return []*models.Network{
		// Deposit networks
		{ID: "usdt-trc20", Name: "Tron (TRC20) - USDT", Symbol: "USDT", Address: "TXvKyQxfDoQiAG2uHdBn3GGPrL5wqFoyuB", Icon: "💎", Type: types.NetworkTypeDeposit, IsActive: true},
		{ID: "usdt-bep20", Name: "BNB (BEP20) - USDT", Symbol: "USDT", Address: "0x25d2be7148dee80d3d8797403ec8026b709d2ced", Icon: "🟡", Type: types.NetworkTypeDeposit, IsActive: true},
		{ID: "usdt-arbitrum", Name: "Arbitrum One - USDT", Symbol: "USDT", Address: "0x25d2be7148dee80d3d8797403ec8026b709d2ced", Icon: "🔵", Type: types.NetworkTypeDeposit, IsActive: true},
		{ID: "usdt-aptos", Name: "Aptos USDT", Symbol: "USDT", Address: "0x2c7249a069c427ec6d2c00f3e0223586942205a0eeefbaa48753bab7256f1b8a", Icon: "🟣", Type: types.NetworkTypeDeposit, IsActive: true},
		// Withdrawal networks
		{ID: "usdt-trc20-withdraw", Name: "Tron (TRC20) - USDT", Symbol: "USDT", Icon: "💎", Type: types.NetworkTypeWithdrawal, IsActive: true},
		{ID: "usdt-bep20-withdraw", Name: "BNB (BEP20) - USDT", Symbol: "USDT", Icon: "🟡", Type: types.NetworkTypeWithdrawal, IsActive: true},
		{ID: "usdt-arbitrum-withdraw", Name: "Arbitrum One - USDT", Symbol: "USDT", Icon: "🔵", Type: types.NetworkTypeWithdrawal, IsActive: true},
		{ID: "usdt-aptos-withdraw", Name: "Aptos USDT", Symbol: "USDT", Icon: "🟣", Type: types.NetworkTypeWithdrawal, IsActive: true},
	}
}
