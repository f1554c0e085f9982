// Package server wires the zoo, its GraphQL schema and the HTTP routes into a
// runnable service.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/graph-gophers/animals/config"
	"github.com/graph-gophers/animals/log"
	"github.com/graph-gophers/animals/playground"
	"github.com/graph-gophers/animals/ratelimit"
	"github.com/graph-gophers/animals/relay"
	"github.com/graph-gophers/animals/resolvers"
	"github.com/graph-gophers/animals/store"
	"github.com/graph-gophers/animals/trace"
	"github.com/graph-gophers/animals/zoo"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-Id"

const defaultQuery = `{
  animals {
    __typename
    species
    sound
  }
}
`

type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	schema   *graphql.Schema
	registry *prometheus.Registry
	engine   *gin.Engine
	shutdown trace.ShutdownFunc

	closeOnce sync.Once
}

// Option configures a Server.
type Option func(*options)

type options struct {
	traceOutput io.Writer
}

// WithTraceOutput sets where the stdout exporter writes spans.
func WithTraceOutput(w io.Writer) Option {
	return func(o *options) {
		o.traceOutput = w
	}
}

// New builds a Server for cfg. The store starts with the seed animals.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	o := options{traceOutput: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tr, shutdown, err := trace.Setup(ctx, cfg.Tracing, o.traceOutput)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		store:    store.New(store.Seed()...),
		registry: reg,
		shutdown: shutdown,
	}

	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "animals",
		Name:      "stored",
		Help:      "Animal records currently in the store.",
	}, func() float64 {
		return float64(s.store.Len())
	})

	schemaOpts := []graphql.SchemaOpt{
		graphql.MaxDepth(cfg.MaxDepth),
		graphql.MaxParallelism(cfg.MaxParallelism),
		graphql.Tracer(trace.Multi(trace.NewMetrics(reg), tr)),
		graphql.Logger(&log.PanicLogger{Logger: logger}),
	}
	if !cfg.Introspection {
		schemaOpts = append(schemaOpts, graphql.DisableIntrospection())
	}
	d := zoo.NewDispatcher(s.store,
		zoo.WithLogger(logger.Named("zoo")),
		zoo.WithMetrics(zoo.NewMetrics(reg)),
	)
	s.schema, err = resolvers.NewSchema(zoo.NewQueries(s.store), d, schemaOpts...)
	if err != nil {
		if terr := shutdown(ctx); terr != nil {
			logger.Warn("flush traces", zap.Error(terr))
		}
		return nil, fmt.Errorf("server: parse schema: %w", err)
	}

	s.engine = s.routes(tr != nil && cfg.Tracing.Exporter != config.ExporterOpenTracing)
	return s, nil
}

// Schema returns the executable schema served by s.
func (s *Server) Schema() *graphql.Schema {
	return s.schema
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(otel bool) *gin.Engine {
	if !s.cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestID(), accessLog(s.logger), recovery(s.logger))
	if otel {
		r.Use(otelgin.Middleware(s.cfg.Tracing.ServiceName))
	}

	if s.cfg.GraphiQL {
		r.GET("/", gin.WrapF(playground.Handler(s.cfg.Endpoint, playground.WithDefaultQuery(defaultQuery))))
	}

	gql := gin.WrapH(&relay.Handler{
		Schema:      s.schema,
		Pretty:      s.cfg.Pretty,
		RateLimiter: ratelimit.New(s.cfg.RateLimit),
		Logger:      s.logger.Named("relay"),
	})
	r.GET(s.cfg.Endpoint, gql)
	r.POST(s.cfg.Endpoint, gql)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "animals": s.store.Len()})
	})
	if s.cfg.Metrics.Enabled {
		r.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully and
// flushes the trace exporter.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving", zap.String("addr", ln.Addr().String()), zap.String("endpoint", s.cfg.Endpoint))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if terr := s.Close(shutdownCtx); terr != nil {
			s.logger.Warn("flush traces", zap.Error(terr))
		}
		return err
	})
	return g.Wait()
}

// Close flushes and stops the trace exporter. Callers that execute queries
// through Schema without Serve must call it before exiting. Close is safe to
// call more than once.
func (s *Server) Close(ctx context.Context) error {
	var err error
	s.closeOnce.Do(func() {
		err = s.shutdown(ctx)
	})
	return err
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = ksuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.For(c.Request.Context(), logger).Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.For(c.Request.Context(), logger).Error("http handler panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
