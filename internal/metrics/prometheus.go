package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablewise_search_duration_seconds",
			Help:    "Search processing duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"tool"},
	)

	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_search_total",
			Help: "Total number of searches processed",
		},
		[]string{"status"},
	)

	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_provider_calls_total",
			Help: "Total upstream provider calls",
		},
		[]string{"endpoint", "status"},
	)

	EnrichmentTriggered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_enrichment_triggered_total",
			Help: "Total hours-enrichment follow-up calls issued",
		},
	)

	EnrichmentFilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_enrichment_filled_total",
			Help: "Total businesses whose hours were filled by enrichment",
		},
	)

	BusinessesExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tablewise_businesses_extracted",
			Help:    "Businesses extracted per search after deduplication",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_cache_hits_total",
			Help: "Total cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_cache_misses_total",
			Help: "Total cache misses",
		},
		[]string{"cache_type"},
	)

	QuoteFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_quote_fallbacks_total",
			Help: "Total follow-up messages served from the template fallback",
		},
	)
)

func Init() {
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchTotal)
	prometheus.MustRegister(ProviderCalls)
	prometheus.MustRegister(EnrichmentTriggered)
	prometheus.MustRegister(EnrichmentFilled)
	prometheus.MustRegister(BusinessesExtracted)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(QuoteFallbacks)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
