// Package metrics defines Prometheus metrics for marketplace API calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopstore"

// Marketplace API metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of marketplace API requests.",
	}, []string{"vendor", "operation", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of marketplace API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"vendor", "operation"})

	APIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of marketplace API requests that failed before a response was received.",
	}, []string{"vendor", "operation"})
)

// Adapter-level metrics.
var (
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful token exchanges.",
	}, []string{"vendor"})

	ListingsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings accepted by a marketplace.",
	}, []string{"vendor"})

	ProductsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_fetched_total",
		Help:      "Total number of products returned from seller catalog calls.",
	}, []string{"vendor"})
)
