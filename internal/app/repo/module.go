package repo

import (
	"go.uber.org/fx"

	"github.com/moonvest/investd/internal/app/service/earnings"
)

// Module provides the concrete store and its binding as the settlement core's
// repository façade.
var Module = fx.Options(
	fx.Provide(NewStore),
	fx.Provide(func(s *Store) earnings.Store { return s }),
)
