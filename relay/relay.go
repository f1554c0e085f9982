// Package relay serves a GraphQL schema over HTTP.
package relay

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	graphql "github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"github.com/graph-gophers/animals/log"
	"github.com/graph-gophers/animals/ratelimit"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ContentTypeJSON           = "application/json"
	ContentTypeGraphQL        = "application/graphql"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// Error codes of requests rejected before execution.
const (
	CodeRateLimited      = "RATE_LIMITED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// Handler executes GraphQL requests against Schema.
type Handler struct {
	Schema *graphql.Schema
	// Pretty indents responses.
	Pretty bool
	// RateLimiter may reject queries before they run. Nil allows all.
	RateLimiter ratelimit.RateLimiter
	Logger      *zap.Logger
}

type RequestOptions struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// requestOptionsCompatibility accepts `variables` sent as a JSON string.
type requestOptionsCompatibility struct {
	Query         string `json:"query"`
	Variables     string `json:"variables"`
	OperationName string `json:"operationName"`
}

func getFromForm(values url.Values) (*RequestOptions, error) {
	query := values.Get("query")
	if query == "" {
		return nil, nil
	}
	var variables map[string]interface{}
	if s := values.Get("variables"); s != "" {
		if err := json.UnmarshalFromString(s, &variables); err != nil {
			return nil, fmt.Errorf("invalid variables: %w", err)
		}
	}
	return &RequestOptions{
		Query:         query,
		Variables:     variables,
		OperationName: values.Get("operationName"),
	}, nil
}

// NewRequestOptions parses an http.Request into GraphQL request options. The
// query may come from the URL, or from a JSON, application/graphql or form
// encoded POST body. ServeHTTP only runs mutations for POST requests.
func NewRequestOptions(r *http.Request) (*RequestOptions, error) {
	if opts, err := getFromForm(r.URL.Query()); opts != nil || err != nil {
		return opts, err
	}

	if r.Method != http.MethodPost || r.Body == nil {
		return &RequestOptions{}, nil
	}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch contentType {
	case ContentTypeGraphQL:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		return &RequestOptions{Query: string(body)}, nil

	case ContentTypeFormURLEncoded:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		opts, err := getFromForm(r.PostForm)
		if opts == nil && err == nil {
			opts = &RequestOptions{}
		}
		return opts, err

	default:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		var opts RequestOptions
		if err := json.Unmarshal(body, &opts); err == nil {
			return &opts, nil
		}
		// Probably `variables` was sent as a string instead of an object.
		var compat requestOptionsCompatibility
		if err := json.Unmarshal(body, &compat); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
		opts = RequestOptions{Query: compat.Query, OperationName: compat.OperationName}
		if compat.Variables != "" {
			if err := json.UnmarshalFromString(compat.Variables, &opts.Variables); err != nil {
				return nil, fmt.Errorf("invalid variables: %w", err)
			}
		}
		return &opts, nil
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, finish := h.spanContext(r)
	defer finish()
	logger := log.For(ctx, h.logger())

	opts, err := NewRequestOptions(r)
	if err != nil {
		logger.Debug("malformed graphql request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	if opts.Query == "" {
		h.writeError(w, http.StatusBadRequest, "Must provide query string.", "")
		return
	}
	if r.Method == http.MethodGet && isMutation(opts.Query, opts.OperationName) {
		logger.Debug("mutation over GET rejected", zap.String("operation", opts.OperationName))
		w.Header().Set("Allow", http.MethodPost)
		h.writeError(w, http.StatusMethodNotAllowed, "Mutations must be sent with POST.", CodeMethodNotAllowed)
		return
	}
	if h.RateLimiter != nil && h.RateLimiter.LimitQuery(ctx, opts.Query, opts.OperationName, opts.Variables) {
		logger.Warn("graphql request rate limited", zap.String("operation", opts.OperationName))
		h.writeError(w, http.StatusTooManyRequests, "rate limit exceeded", CodeRateLimited)
		return
	}

	response := h.Schema.Exec(ctx, opts.Query, opts.OperationName, opts.Variables)
	if len(response.Errors) > 0 {
		logger.Debug("graphql request returned errors",
			zap.String("operation", opts.OperationName),
			zap.Int("errors", len(response.Errors)),
			zap.String("first", response.Errors[0].Message),
		)
	}
	h.write(w, http.StatusOK, response)
}

// spanContext continues an OpenTracing trace propagated in the request
// headers, if there is one.
func (h *Handler) spanContext(r *http.Request) (context.Context, func()) {
	ctx := r.Context()
	tracer := opentracing.GlobalTracer()
	wireCtx, err := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
	if err != nil {
		return ctx, func() {}
	}
	span := tracer.StartSpan("HTTP "+r.Method, ext.RPCServerOption(wireCtx))
	ext.HTTPMethod.Set(span, r.Method)
	ext.HTTPUrl.Set(span, r.URL.String())
	return opentracing.ContextWithSpan(ctx, span), span.Finish
}

type httpError struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, code string) {
	e := httpError{Message: msg}
	if code != "" {
		e.Extensions = map[string]string{"code": code}
	}
	h.write(w, status, map[string][]httpError{"errors": {e}})
}

func (h *Handler) write(w http.ResponseWriter, status int, v interface{}) {
	var (
		b   []byte
		err error
	)
	if h.Pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		h.logger().Debug("write graphql response", zap.Error(err))
	}
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}
