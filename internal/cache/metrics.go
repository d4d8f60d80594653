package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpager/internal/custompromauto"
)

var (
	corruptReads = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_cache_corrupt_reads_total",
		Help: "Total number of cached values that could not be decoded and were treated as empty",
	})
	migrations = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "txpager_cache_migrations_total",
		Help: "Total number of cache backend migrations by target backend",
	}, []string{"target"})
	migratedKeys = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_cache_migrated_keys_total",
		Help: "Total number of keys copied between cache backends",
	})
	backendMismatches = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_cache_backend_mismatches_total",
		Help: "Total number of times the coordinated caches were found on different backends",
	})
)
