// Package zaplog adapts zap loggers to ctxd.Logger.
package zaplog

import (
	"context"

	"github.com/bool64/ctxd"
	"go.uber.org/zap"
)

var _ ctxd.Logger = Logger{}

// Logger writes ctxd messages to a zap logger, context fields are prepended to keys and values.
type Logger struct {
	s *zap.SugaredLogger
}

// New creates Logger.
func New(l *zap.Logger) Logger {
	return Logger{s: l.Sugar()}
}

// Debug logs a message.
func (l Logger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, fields(ctx, keysAndValues)...)
}

// Info logs a message.
func (l Logger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, fields(ctx, keysAndValues)...)
}

// Important logs a message at info level.
func (l Logger) Important(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, fields(ctx, keysAndValues)...)
}

// Warn logs a message.
func (l Logger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, fields(ctx, keysAndValues)...)
}

// Error logs a message.
func (l Logger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, fields(ctx, keysAndValues)...)
}

func fields(ctx context.Context, keysAndValues []interface{}) []interface{} {
	ctxFields := ctxd.Fields(ctx)
	if len(ctxFields) == 0 {
		return keysAndValues
	}

	kv := make([]interface{}, 0, len(ctxFields)+len(keysAndValues))
	kv = append(kv, ctxFields...)

	return append(kv, keysAndValues...)
}
