// Package metrics exposes Prometheus counters for conversions and HTTP traffic.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "capcode_"

// ResultOK labels a conversion that produced a result. Failed conversions
// are labelled with their error code.
const ResultOK = "ok"

var (
	registerOnce sync.Once

	conversionsTotal  *prometheus.CounterVec
	conversionLatency *prometheus.HistogramVec
	httpRequestsTotal *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		conversionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "conversions_total",
				Help: "Total conversions by direction and result",
			},
			[]string{"direction", "result"},
		)
		conversionLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "conversion_latency_seconds",
				Help:    "Conversion latency in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"direction"},
		)
		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total web UI requests by route and status",
			},
			[]string{"route", "status"},
		)

		prometheus.MustRegister(
			conversionsTotal,
			conversionLatency,
			httpRequestsTotal,
		)
	})
}

// ObserveConversion records a conversion's result and duration.
func ObserveConversion(direction, result string, duration time.Duration) {
	if direction == "" {
		direction = "unknown"
	}
	if result == "" {
		result = ResultOK
	}
	if conversionsTotal != nil {
		conversionsTotal.WithLabelValues(direction, result).Inc()
	}
	if conversionLatency != nil {
		conversionLatency.WithLabelValues(direction).Observe(duration.Seconds())
	}
}

// IncHTTPRequest counts a served request. route is the mux pattern, not the raw path.
func IncHTTPRequest(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequestsTotal != nil {
		httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	}
}
