package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "construction_map_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "construction_map_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})

	ViewEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "construction_map_view_events_total",
		Help: "View state transitions by event type",
	}, []string{"type"})

	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "construction_map_cache_hits_total",
		Help: "Total GeoJSON cache hits",
	})

	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "construction_map_cache_misses_total",
		Help: "Total GeoJSON cache misses",
	})

	CatalogObjects = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "construction_map_catalog_objects",
		Help: "Number of construction objects in the loaded catalog",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(ViewEventsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(CatalogObjects)
}
