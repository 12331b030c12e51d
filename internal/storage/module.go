package storage

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/config"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
	"github.com/polkiloo/outsourcing/internal/storage/memory"
	"github.com/polkiloo/outsourcing/internal/storage/postgres"
)

// Module selects the repository backend and exposes its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.SupplierRepository { return f.Suppliers() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *zap.Logger
}

var newPostgres = func(ctx context.Context, dsn string, logger *zap.Logger) (repository.Factory, error) {
	return postgres.New(ctx, dsn, logger)
}

// newFactory uses PostgreSQL when a DSN is configured and process memory otherwise.
func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("DATABASE_URI not set, using in-memory storage")
		return memory.NewStore(), nil
	}
	return newPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, f repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			f.Close()
			return nil
		},
	})
}
