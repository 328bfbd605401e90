package user

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/moonvest/investd/internal/app/repo"
)

var Module = fx.Options(
	fx.Provide(func(st *repo.Store, log *zap.SugaredLogger) *Service {
		return NewService(st, log)
	}),
)
