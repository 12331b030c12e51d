package adapter

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/outsourcing/internal/adapter/catalog"
	"github.com/polkiloo/outsourcing/internal/adapter/simulator"
	"github.com/polkiloo/outsourcing/internal/config"
	"github.com/polkiloo/outsourcing/internal/usecase"
)

// Module exposes the product quote source to fx graph.
var Module = fx.Provide(newQuoteSource)

type sourceParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

// newQuoteSource prefers a real supplier catalog when one is configured.
func newQuoteSource(p sourceParams) (usecase.QuoteSource, error) {
	if p.Config.CatalogAddress != "" {
		p.Logger.Info("using supplier catalog", zap.String("address", p.Config.CatalogAddress))
		client, err := catalog.NewHTTPClient(p.Config.CatalogAddress, p.Logger.Named("catalog"))
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	p.Logger.Info("using simulated product search",
		zap.Duration("latency", p.Config.SearchLatency),
		zap.Int64("seed", p.Config.SearchSeed))
	return simulator.NewSeeded(p.Config.SearchLatency, p.Config.SearchSeed), nil
}
