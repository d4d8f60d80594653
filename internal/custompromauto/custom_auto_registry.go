package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry *prometheus.Registry
	auto     promauto.Factory
)

func init() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: "txpager"}),
	)
	auto = promauto.With(registry)
}

// Auto returns a factory registering metrics on the txpager registry instead of the default one.
func Auto() promauto.Factory {
	return auto
}

func Registry() *prometheus.Registry {
	return registry
}
