// Package metrics exposes Prometheus instruments for the GraphQL resolvers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeOK        = "ok"
	OutcomeUserError = "user_error"
	OutcomeError     = "error"
)

// Resolvers records one observation per resolver invocation
type Resolvers struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewResolvers creates the resolver instruments and registers them with reg
func NewResolvers(reg prometheus.Registerer) (*Resolvers, error) {
	m := &Resolvers{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackernews",
			Subsystem: "graphql",
			Name:      "resolver_calls_total",
			Help:      "Resolver invocations by field and outcome.",
		}, []string{"field", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hackernews",
			Subsystem: "graphql",
			Name:      "resolver_duration_seconds",
			Help:      "Resolver latency by field.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"field"}),
	}

	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records a finished resolver call
func (m *Resolvers) Observe(field, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(field, outcome).Inc()
	m.duration.WithLabelValues(field).Observe(time.Since(started).Seconds())
}
