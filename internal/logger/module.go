package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module wires the zap logger and routes fx events through it.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l}
	}),
	fx.Invoke(registerSync),
)

func registerSync(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = l.Sync()
			return nil
		},
	})
}
