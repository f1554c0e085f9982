package trace

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/graph-gophers/animals/log"
)

// OpenTelemetry creates spans with an OpenTelemetry tracer.
type OpenTelemetry struct {
	Tracer oteltrace.Tracer
}

func (t *OpenTelemetry) TraceQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, func([]*errors.QueryError)) {
	spanCtx, span := t.Tracer.Start(ctx, "GraphQL Request")

	attributes := []attribute.KeyValue{attribute.String("graphql.query", queryString)}
	if operationName != "" {
		attributes = append(attributes, attribute.String("graphql.operationName", operationName))
	}
	if len(variables) != 0 {
		attributes = append(attributes, attribute.String("graphql.variables", fmt.Sprintf("%v", variables)))
	}
	if id := log.RequestID(ctx); id != "" {
		attributes = append(attributes, attribute.String("request.id", id))
	}
	span.SetAttributes(attributes...)

	return spanCtx, func(errs []*errors.QueryError) {
		if msg := errorSummary(errs); msg != "" {
			span.SetStatus(codes.Error, msg)
		}
		span.End()
	}
}

func (t *OpenTelemetry) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, func(*errors.QueryError)) {
	if trivial {
		return ctx, noopField
	}

	spanCtx, span := t.Tracer.Start(ctx, label)
	span.SetAttributes(
		attribute.String("graphql.type", typeName),
		attribute.String("graphql.field", fieldName),
	)
	if species, ok := args["species"].(string); ok {
		span.SetAttributes(attribute.String("animal.species", species))
	}

	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func (t *OpenTelemetry) TraceValidation(ctx context.Context) func([]*errors.QueryError) {
	_, span := t.Tracer.Start(ctx, "GraphQL Validate")

	return func(errs []*errors.QueryError) {
		if msg := errorSummary(errs); msg != "" {
			span.SetStatus(codes.Error, msg)
		}
		span.End()
	}
}
