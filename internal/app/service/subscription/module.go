package subscription

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/app/repo"
	"github.com/moonvest/investd/internal/app/service/earnings"
	"github.com/moonvest/investd/internal/platform/telegram"
	cfgpkg "github.com/moonvest/investd/pkg/config"
)

var Module = fx.Options(
	fx.Provide(func(st *repo.Store, settler *earnings.Settler, n *telegram.Notifier, cfg *cfgpkg.Config, log *zap.SugaredLogger) *Service {
		return NewService(st, settler, n, cfg, log)
	}),
)
