package otterscan

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpager/internal/custompromauto"
)

var failedCalls = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txpager_otterscan_failed_calls_total",
	Help: "Number of failed json-rpc calls by method",
}, []string{"method"})

var failedBlockRetrievals = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "txpager_otterscan_failed_block_retrievals_total",
	Help: "Number of failed block retrievals while streaming new heads",
})

var retrievedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "txpager_otterscan_block_retrievals_total",
	Help: "Number of blocks received while streaming new heads",
})
