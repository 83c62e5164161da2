package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog query Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogd",
			Name:      "search_requests_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"filtered"}, // "yes" when any of text/category/brand is set
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalogd",
			Name:      "search_results_returned",
			Help:      "Number of result tuples returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogd",
			Name:      "lookups_total",
			Help:      "Total keyed lookups by entity and outcome",
		},
		[]string{"entity", "outcome"}, // entity: product/vendor; outcome: hit/miss
	)

	CatalogEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "catalogd",
			Name:      "catalog_entities",
			Help:      "Entities in the loaded catalog",
		},
		[]string{"kind"}, // "products" / "vendors" / "listings"
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultsReturned)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(CatalogEntities)
	queryMetricsRegistered = true
}
