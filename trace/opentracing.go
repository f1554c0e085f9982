package trace

import (
	"context"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"

	"github.com/graph-gophers/animals/log"
)

// OpenTracing creates spans with the global OpenTracing tracer. Spans
// started by the HTTP layer are picked up from the context.
type OpenTracing struct{}

func (OpenTracing) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, func([]*errors.QueryError)) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL request")
	ext.Component.Set(span, "animals")
	span.SetTag("graphql.query", queryString)
	if operationName != "" {
		span.SetTag("graphql.operationName", operationName)
	}
	if id := log.RequestID(ctx); id != "" {
		span.SetTag("request.id", id)
	}
	if len(variables) != 0 {
		span.LogFields(otlog.Object("graphql.variables", variables))
	}

	return spanCtx, func(errs []*errors.QueryError) {
		if msg := errorSummary(errs); msg != "" {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", msg)
		}
		span.Finish()
	}
}

func (OpenTracing) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, func(*errors.QueryError)) {
	if trivial {
		return ctx, noopField
	}

	span, spanCtx := opentracing.StartSpanFromContext(ctx, label)
	span.SetTag("graphql.type", typeName)
	span.SetTag("graphql.field", fieldName)
	if species, ok := args["species"].(string); ok {
		span.SetTag("animal.species", species)
	}

	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}

func (OpenTracing) TraceValidation(ctx context.Context) func([]*errors.QueryError) {
	span, _ := opentracing.StartSpanFromContext(ctx, "Validate Query")

	return func(errs []*errors.QueryError) {
		if msg := errorSummary(errs); msg != "" {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", msg)
		}
		span.Finish()
	}
}
