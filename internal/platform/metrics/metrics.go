package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fxconvert"

// Metrics holds the collectors exported on /metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	conversions      *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Currency conversions by outcome.",
		}, []string{"outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of exchange rate api calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	reg.MustRegister(
		m.conversions,
		m.upstreamDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveConversion(outcome string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records one exchange rate api call. statusCode 0 means no response was received.
func (m *Metrics) ObserveUpstream(statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.upstreamDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
