package earnings

import "go.uber.org/fx"

// Module exposes the settlement core via Fx. Store and Notifier bindings are
// provided by the repo and telegram modules.
var Module = fx.Options(
	fx.Provide(NewSettler),
)
