// Package zoo implements the read and write operations over a store of
// animals. The GraphQL resolvers and the CLI are thin adapters over it.
package zoo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Metrics counts write operations by operation and outcome.
type Metrics struct {
	writes *prometheus.CounterVec
}

// NewMetrics registers the zoo collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		writes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "animals",
			Name:      "writes_total",
			Help:      "Animal write operations by operation and result.",
		}, []string{"operation", "result"}),
	}
}

func (m *Metrics) observe(op, result string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(op, result).Inc()
}

type options struct {
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*options)

// WithLogger sets the logger used to report writes. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics enables write counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
