package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/outsourcing/internal/adapter"
	"github.com/polkiloo/outsourcing/internal/app"
	"github.com/polkiloo/outsourcing/internal/config"
	"github.com/polkiloo/outsourcing/internal/logger"
	"github.com/polkiloo/outsourcing/internal/metrics"
	"github.com/polkiloo/outsourcing/internal/server/http/router"
	"github.com/polkiloo/outsourcing/internal/storage"
	"github.com/polkiloo/outsourcing/internal/usecase"
)

// Module assembles the whole service graph. Extra options are appended last
// so callers can replace or decorate any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		adapter.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
