package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairflow_orders_created_total",
		Help: "Total number of repair orders successfully created.",
	})

	TechnicianUnavailableTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairflow_technician_unavailable_total",
		Help: "Total number of order creations refused because no technician was available.",
	})

	ReportTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repairflow_report_transitions_total",
		Help: "Total number of report transition attempts by action and outcome.",
	},
		[]string{"action", "outcome"},
	)

	AccessDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repairflow_access_denied_total",
		Help: "Total number of report operations denied by the permission gate.",
	},
		[]string{"operation"},
	)

	CompletionPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repairflow_completion_publish_failures_total",
		Help: "Total number of completion events that could not be published.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repairflow_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
