// Package trace provides the graphql-go tracers of the animals server and
// sets up the exporters behind them.
package trace

import (
	"context"
	"fmt"
	"io"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace/tracer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/graph-gophers/animals/config"
)

// ShutdownFunc flushes and stops an exporter.
type ShutdownFunc func(context.Context) error

func noShutdown(context.Context) error { return nil }

// Setup installs the exporter named by c and returns the tracer feeding it.
// The tracer is nil for config.ExporterNone. Stdout spans are written to w.
func Setup(ctx context.Context, c config.Tracing, w io.Writer) (tracer.Tracer, ShutdownFunc, error) {
	var exp sdktrace.SpanExporter
	switch c.Exporter {
	case "", config.ExporterNone:
		return nil, noShutdown, nil
	case config.ExporterOpenTracing:
		return OpenTracing{}, noShutdown, nil
	case config.ExporterStdout:
		e, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("trace: stdout exporter: %w", err)
		}
		exp = e
	case config.ExporterOTLP:
		e, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(c.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("trace: otlp exporter: %w", err)
		}
		exp = e
	default:
		return nil, nil, fmt.Errorf("trace: unknown exporter %q", c.Exporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", c.ServiceName))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return &OpenTelemetry{Tracer: tp.Tracer(c.ServiceName)}, tp.Shutdown, nil
}

// Multi fans every trace call out to ts in order. Nil tracers are skipped.
func Multi(ts ...tracer.Tracer) tracer.Tracer {
	var m multi
	for _, t := range ts {
		if t != nil {
			m = append(m, t)
		}
	}
	return m
}

type multi []tracer.Tracer

func (m multi) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, func([]*errors.QueryError)) {
	finishers := make([]func([]*errors.QueryError), len(m))
	for i, t := range m {
		ctx, finishers[i] = t.TraceQuery(ctx, queryString, operationName, variables, varTypes)
	}
	return ctx, func(errs []*errors.QueryError) {
		for i := len(finishers) - 1; i >= 0; i-- {
			finishers[i](errs)
		}
	}
}

func (m multi) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, func(*errors.QueryError)) {
	finishers := make([]func(*errors.QueryError), len(m))
	for i, t := range m {
		ctx, finishers[i] = t.TraceField(ctx, label, typeName, fieldName, trivial, args)
	}
	return ctx, func(err *errors.QueryError) {
		for i := len(finishers) - 1; i >= 0; i-- {
			finishers[i](err)
		}
	}
}

func (m multi) TraceValidation(ctx context.Context) func([]*errors.QueryError) {
	var finishers []func([]*errors.QueryError)
	for _, t := range m {
		if vt, ok := t.(tracer.ValidationTracer); ok {
			finishers = append(finishers, vt.TraceValidation(ctx))
		}
	}
	return func(errs []*errors.QueryError) {
		for i := len(finishers) - 1; i >= 0; i-- {
			finishers[i](errs)
		}
	}
}

func errorSummary(errs []*errors.QueryError) string {
	if len(errs) == 0 {
		return ""
	}
	msg := errs[0].Error()
	if len(errs) > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", len(errs)-1)
	}
	return msg
}

func noopField(*errors.QueryError) {}
