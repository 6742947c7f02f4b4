package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georod_requests_total",
		Help: "Total number of query API requests",
	}, []string{"route"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "georod_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	}, []string{"route"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georod_empty_results_total",
		Help: "Total number of responses with no matching record",
	}, []string{"route"})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georod_cache_hits_total",
		Help: "Total response cache hits by tier",
	}, []string{"tier"})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "georod_cache_misses_total",
		Help: "Total response cache misses across all tiers",
	})
	CacheErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "georod_cache_errors_total",
		Help: "Total redis cache errors",
	})
	IPLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georod_ip_lookups_total",
		Help: "IP to province lookups by result",
	}, []string{"result"})
	DatasetRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "georod_dataset_rows",
		Help: "Rows loaded per reference table",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(CacheErrorsTotal)
	prometheus.MustRegister(IPLookupsTotal)
	prometheus.MustRegister(DatasetRows)
}

// Handler：暴露已注册指标，供 Prometheus 抓取
func Handler() http.Handler { return promhttp.Handler() }
