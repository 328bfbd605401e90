package network

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/types"
)

type fakeStore struct {
	items []*models.Network
	err   error
}

func (f *fakeStore) ListActiveNetworks(context.Context) ([]*models.Network, error) {
	return f.items, f.err
}

func TestList_ReturnsStoredNetworks(t *testing.T) {
	stored := []*models.Network{{ID: "usdt-ton", Name: "TON - USDT", Type: types.NetworkTypeDeposit, IsActive: true}}
	svc := NewService(&fakeStore{items: stored}, zap.NewNop().Sugar())

	got := svc.List(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "usdt-ton", got[0].ID)
}

func TestList_FallsBackWhenTableEmpty(t *testing.T) {
	svc := NewService(&fakeStore{}, zap.NewNop().Sugar())

	got := svc.List(context.Background())
	require.NotEmpty(t, got)

	var deposits, withdrawals int
	for _, n := range got {
		switch n.Type {
		case types.NetworkTypeDeposit:
			deposits++
			assert.NotEmpty(t, n.Address, "deposit network %s needs an address", n.ID)
		case types.NetworkTypeWithdrawal:
			withdrawals++
		}
	}
	assert.Equal(t, 4, deposits)
	assert.Equal(t, 4, withdrawals)
}

func TestList_FallsBackOnStoreError(t *testing.T) {
	svc := NewService(&fakeStore{err: assert.AnError}, zap.NewNop().Sugar())

	got := svc.List(context.Background())
	require.NotEmpty(t, got)
	assert.Equal(t, "usdt-trc20", got[0].ID)
}
