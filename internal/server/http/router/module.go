package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/outsourcing/internal/app"
	"github.com/polkiloo/outsourcing/internal/server/http/handlers"
)

// Module registers HTTP router construction and binds the application facade to handlers.
var Module = fx.Options(
	fx.Provide(func(f *app.OutsourcingFacade) handlers.OutsourcingFacade { return f }),
	fx.Provide(Setup),
)
