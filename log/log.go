// Package log builds the zap loggers used across the server.
package log

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/graph-gophers/animals/config"
)

// New returns a production logger, or a development one when c.Development
// is set, at the configured level.
func New(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// For returns l annotated with the request ID of ctx, if any.
func For(ctx context.Context, l *zap.Logger) *zap.Logger {
	if id := RequestID(ctx); id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}

// PanicLogger logs panics recovered during query execution. It satisfies the
// graphql-go log.Logger interface.
type PanicLogger struct {
	Logger *zap.Logger
}

func (p *PanicLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	For(ctx, p.Logger).Error("graphql: panic occurred",
		zap.Any("panic", value),
		zap.ByteString("stack", buf),
	)
}
