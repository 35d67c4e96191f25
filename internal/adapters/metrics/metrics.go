package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	UpstreamLogin = "login"
	UpstreamGraph = "graph"
)

var latencyBuckets = []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics holds the collectors for the relay endpoints and their upstream calls.
type Metrics struct {
	registry *prometheus.Registry

	APIRequests      *prometheus.CounterVec
	APIDuration      *prometheus.HistogramVec
	PresenceActions  *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, alongside the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		APIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gp_api_requests_total",
			Help: "Requests served by the relay endpoints, by route and status code",
		}, []string{"route", "code"}),
		APIDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gp_api_request_duration_seconds",
			Help:    "Time spent serving relay endpoint requests",
			Buckets: latencyBuckets,
		}, []string{"route"}),
		PresenceActions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gp_presence_actions_total",
			Help: "Presence relay calls by action and outcome",
		}, []string{"action", "outcome"}),
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gp_upstream_requests_total",
			Help: "Outbound calls to the identity provider and the Graph API",
		}, []string{"upstream", "code", "method"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gp_upstream_request_duration_seconds",
			Help:    "Latency of outbound calls to the identity provider and the Graph API",
			Buckets: latencyBuckets,
		}, []string{"upstream", "code", "method"}),
	}
}

// ObserveRequest records one served request. Call with time.Now() taken when
// the request arrived.
func (m *Metrics) ObserveRequest(route string, status int, start time.Time) {
	m.APIRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.APIDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObservePresenceAction(action string, status int) {
	outcome := "success"
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		outcome = "error"
	}
	m.PresenceActions.WithLabelValues(action, outcome).Inc()
}

// Transport instruments next with the upstream counters under the given
// upstream label. A nil next means http.DefaultTransport.
func (m *Metrics) Transport(upstream string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"upstream": upstream}

	return promhttp.InstrumentRoundTripperCounter(
		m.UpstreamRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(m.UpstreamDuration.MustCurryWith(labels), next),
	)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
