package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/outsourcing/internal/di"
)

const startTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.StartTimeout(startTimeout),
		di.Module(),
	)

	run(ctx, app)
}
