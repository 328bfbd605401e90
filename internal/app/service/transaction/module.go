package transaction

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/app/repo"
	"github.com/moonvest/investd/internal/platform/telegram"
)

var Module = fx.Options(
	fx.Provide(func(st *repo.Store, n *telegram.Notifier, log *zap.SugaredLogger) *Service {
		return NewService(st, n, log)
	}),
)
