package metrics

import "go.uber.org/fx"

// Module provides the metrics registry to fx graph.
var Module = fx.Provide(New)
