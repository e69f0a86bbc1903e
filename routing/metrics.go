package routing

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the Prometheus collectors a Router optionally
// reports through (spec.md's core stays I/O-free; registration is
// opt-in via Options.Registerer so a caller that doesn't want metrics
// pays nothing but a few nil checks). See SPEC_FULL.md's DOMAIN STACK
// section.
type Metrics struct {
	matchesTotal     *prometheus.CounterVec
	routesRegistered prometheus.Gauge
	addRouteErrors   prometheus.Counter
	matchDuration    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		matchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routecore_matches_total",
			Help: "Count of MatchRoute calls by phase and outcome.",
		}, []string{"phase", "outcome"}),
		routesRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routecore_routes_registered",
			Help: "Number of processed route records currently indexed.",
		}),
		addRouteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routecore_add_route_errors_total",
			Help: "Count of AddRoute calls that failed.",
		}),
		matchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routecore_match_duration_seconds",
			Help:    "Latency of MatchRoute calls.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
	}

	reg.MustRegister(m.matchesTotal, m.routesRegistered, m.addRouteErrors, m.matchDuration)
	return m
}

func (m *Metrics) observeMatch(phase, outcome string) {
	if m == nil {
		return
	}
	m.matchesTotal.WithLabelValues(phase, outcome).Inc()
}

func (m *Metrics) setRoutesRegistered(n int) {
	if m == nil {
		return
	}
	m.routesRegistered.Set(float64(n))
}

func (m *Metrics) incAddRouteErrors() {
	if m == nil {
		return
	}
	m.addRouteErrors.Inc()
}
