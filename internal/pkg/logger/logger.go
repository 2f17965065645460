// Package logger provides a global, Sugared Zap logger. It supports
// configuring log level and output via functional options and emits JSON logs
// (to stdout by default).
//
// Until Init is called every helper logs to a no-op logger, so library code
// and tests may log freely without initialization.
package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It is replaced once by Init.
	logger = zap.NewNop().Sugar()

	// mu guards logger against concurrent Init and use.
	mu sync.RWMutex

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// config holds configuration options for the logger.
type config struct {
	level  string              // the minimum log level (debug, info, warn, error, panic, fatal)
	output zapcore.WriteSyncer // destination of encoded entries
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects log entries to w instead of stdout.
func WithOutput(w zapcore.WriteSyncer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. It accepts zero or more Option values to
// customize behavior (e.g. WithLevel). By default, it logs JSON to stdout at
// the "info" level. Calling Init multiple times has no effect after the first
// successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: zapcore.AddSync(os.Stdout)}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			cfg.output,
			level,
		)

		mu.Lock()
		logger = zap.New(core).Sugar()
		mu.Unlock()
	})

	return nil
}

// current returns the active logger.
func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return current().Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	current().Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	current().Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	current().Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	current().Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	current().Fatalw(msg, keysAndValues...)
}
