// Package metrics exposes the Prometheus counters instrumenting the order
// flow and the external integrations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts successfully placed orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "veggo_orders_created_total",
		Help: "Number of orders successfully created.",
	})

	// OrdersCancelled counts cancelled orders, by actor kind.
	OrdersCancelled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veggo_orders_cancelled_total",
		Help: "Number of orders cancelled.",
	}, []string{"actor"})

	// DistanceFallback counts trips priced with the great-circle fallback
	// because the routing service did not answer in time.
	DistanceFallback = promauto.NewCounter(prometheus.CounterOpts{
		Name: "veggo_distance_fallback_total",
		Help: "Number of distance lookups served by the haversine fallback.",
	})

	// NotificationsFailed counts notification deliveries that were dropped.
	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "veggo_notifications_failed_total",
		Help: "Number of notifications that could not be delivered.",
	})
)
