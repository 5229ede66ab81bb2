// Package logging wraps zap behind the small Logger interface used across
// the application.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrlokans/birdwatch/internal/config"
)

type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	With(keysAndValues ...interface{}) Logger
}

type ZapLogger struct {
	s *zap.SugaredLogger
}

func NewZapLogger(s *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{s: s}
}

// New builds a logger from the logging configuration.
func New(cfg config.Logging) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewZapLogger(l.Sugar()), nil
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *ZapLogger {
	return NewZapLogger(zap.NewNop().Sugar())
}

// With returns a child logger carrying the given fields.
func (l *ZapLogger) With(keysAndValues ...interface{}) Logger {
	return &ZapLogger{s: l.s.With(keysAndValues...)}
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error { return l.s.Sync() }

func (l *ZapLogger) Info(args ...interface{})                       { l.s.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...interface{})       { l.s.Infof(format, args...) }
func (l *ZapLogger) Infow(msg string, keysAndValues ...interface{}) { l.s.Infow(msg, keysAndValues...) }
func (l *ZapLogger) Warn(args ...interface{})                       { l.s.Warn(args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})       { l.s.Warnf(format, args...) }
func (l *ZapLogger) Error(args ...interface{})                      { l.s.Error(args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{})      { l.s.Errorf(format, args...) }
func (l *ZapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}
func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l *ZapLogger) Fatalf(format string, args ...interface{}) { l.s.Fatalf(format, args...) }
