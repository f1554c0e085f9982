package trace

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records query counts and latencies in Prometheus.
type Metrics struct {
	queries     *prometheus.CounterVec
	duration    prometheus.Histogram
	fieldErrors *prometheus.CounterVec
	invalid     prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_queries_total",
			Help: "GraphQL queries executed, by result.",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "graphql_query_duration_seconds",
			Help:    "Time spent executing GraphQL queries.",
			Buckets: prometheus.DefBuckets,
		}),
		fieldErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_field_errors_total",
			Help: "Resolver errors, by type and field.",
		}, []string{"type", "field"}),
		invalid: f.NewCounter(prometheus.CounterOpts{
			Name: "graphql_validation_failures_total",
			Help: "Queries rejected by validation.",
		}),
	}
}

func (m *Metrics) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, func([]*errors.QueryError)) {
	start := time.Now()
	return ctx, func(errs []*errors.QueryError) {
		m.duration.Observe(time.Since(start).Seconds())
		result := "ok"
		if len(errs) > 0 {
			result = "error"
		}
		m.queries.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, func(*errors.QueryError)) {
	if trivial {
		return ctx, noopField
	}
	return ctx, func(err *errors.QueryError) {
		if err != nil {
			m.fieldErrors.WithLabelValues(typeName, fieldName).Inc()
		}
	}
}

func (m *Metrics) TraceValidation(ctx context.Context) func([]*errors.QueryError) {
	return func(errs []*errors.QueryError) {
		if len(errs) > 0 {
			m.invalid.Inc()
		}
	}
}
