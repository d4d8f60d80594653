package paging

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpager/internal/custompromauto"
)

var (
	sourceFetches = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_paging_source_fetches_total",
		Help: "Total number of page fetches issued against the data source",
	})
	boundaryProbes = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_paging_boundary_probes_total",
		Help: "Total number of single record probes issued to decide a boundary page",
	})
	pagesFromReminder = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_paging_reminder_pages_total",
		Help: "Total number of pages served entirely from buffered groups",
	})
	failedActions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpager_paging_failed_actions_total",
		Help: "Total number of navigation actions that failed and were not committed",
	})
)
