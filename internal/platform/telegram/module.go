package telegram

import (
	"go.uber.org/fx"

	"github.com/moonvest/investd/internal/app/service/earnings"
)

var Module = fx.Options(
	fx.Provide(NewNotifier),
	fx.Provide(func(n *Notifier) earnings.Notifier { return n }),
)
