package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/config"
	"github.com/polkiloo/outsourcing/internal/metrics"
	"github.com/polkiloo/outsourcing/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewOutsourcingFacade,
		newHTTPServer,
		newStatsPublisher,
		newSeeder,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade  *OutsourcingFacade
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *zap.Logger
}

func newStatsPublisher(p workerParams) *worker.StatsPublisher {
	return worker.NewStatsPublisher(p.Facade, p.Metrics, p.Config.StatsInterval, p.Logger.Named("stats"))
}

// Seeder fills an empty supplier registry.
type Seeder interface {
	SeedSuppliers(ctx context.Context) (int, error)
}

func newSeeder(f *OutsourcingFacade) Seeder {
	return f
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
	Server     *http.Server
	Worker     *worker.StatsPublisher
	Seeder     Seeder
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if p.Config.SeedSuppliers {
				n, err := p.Seeder.SeedSuppliers(ctx)
				if err != nil {
					return err
				}
				if n > 0 {
					p.Logger.Info("supplier registry seeded", zap.Int("suppliers", n))
				}
			}

			p.Logger.Info("starting outsourcing service", zap.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", zap.Error(err))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("outsourcing service stopped")
			return nil
		},
	})
}
