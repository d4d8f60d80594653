package overview

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpager/internal/custompromauto"
)

var (
	blocksFailedProcessing = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_blocks_failed_processing_total",
		Help: "Total number of blocks whose overview update failed",
	})
	processedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_blocks_processed_total",
		Help: "Total number of blocks consumed by the overview tracker",
	})
	reorgDroppedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_reorg_dropped_blocks_total",
		Help: "Number of blocks dropped from the overview due to chain reorganization",
	})
	failedFeeRetrievals = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_failed_fee_retrievals_total",
		Help: "Number of failed gas price or priority fee retrievals",
	})
	failedBackfills = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_failed_backfills_total",
		Help: "Number of earlier blocks that could not be fetched to fill the overview window",
	})
	failedFavoriteRetrievals = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_overview_failed_favorite_retrievals_total",
		Help: "Number of failed favorite address transaction retrievals",
	})
)
