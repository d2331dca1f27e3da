// Package logger configures log/slog for datacheck and carries loggers and
// log attributes through context.Context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/datacheck/envutil"
)

var subsystem atomic.Value //nolint:gochecknoglobals

var configMutex sync.Mutex //nolint:gochecknoglobals

var ErrInvalidLogOutput = errors.New("invalid log output")

type contextKey string

const (
	loggerKey    contextKey = "logger"
	valuesKey    contextKey = "loggerValues"
	subsystemKey contextKey = "subsystem"
	mutedKey     contextKey = "mute"
)

// Options controls the default slog handler.
type Options struct {
	// Subsystem is attached to every record as "subsystem".
	Subsystem string

	// JSON selects slog.JSONHandler instead of slog.TextHandler.
	JSON bool

	MinLevel slog.Level

	// Output defaults to os.Stderr, since stdout carries command output.
	Output io.Writer
}

type Option func(*Options)

func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLoggingWithOptions installs a new default slog logger built from opts.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging reads LOG_JSON, LOG_LEVEL and LOG_OUTPUT and installs the
// resulting logger as the slog default. Explicit options win over the environment.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT", envutil.Default("stderr")),
		func(name string) (io.Writer, error) {
			switch name {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, name)
			}
		}).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem: app,
		JSON:      logJSON,
		MinLevel:  minLevel,
		Output:    output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithLogger pins a specific logger to ctx; Get prefers it over slog.Default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ensure(ctx), loggerKey, logger)
}

func WithSubsystem(ctx context.Context, name string) context.Context {
	return context.WithValue(ensure(ctx), subsystemKey, name)
}

// WithMuted silences every logger obtained from ctx through Get.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return context.WithValue(ensure(ctx), mutedKey, muted)
}

// With returns a context whose loggers carry the extra key/value pairs.
func With(ctx context.Context, values ...any) context.Context {
	ctx = ensure(ctx)
	if len(values) == 0 {
		return ctx
	}

	prev := getValues(ctx)
	vals := make([]any, 0, len(prev)+len(values))
	vals = append(vals, prev...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey, vals)
}

func GetSubsystem(ctx context.Context) string {
	if name, ok := ensure(ctx).Value(subsystemKey).(string); ok {
		return name
	}

	if name, ok := subsystem.Load().(string); ok {
		return name
	}

	return ""
}

// Get returns the logger for the first non-nil ctx, decorated with the
// subsystem and any values added by With.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if muted, _ := realCtx.Value(mutedKey).(bool); muted {
		return nullLogger
	}

	logger, ok := realCtx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(valuesKey).([]any)

	return vals
}

func ensure(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

type nullHandler struct{}

func (nullHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (nullHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (n nullHandler) WithAttrs([]slog.Attr) slog.Handler {
	return n
}

func (n nullHandler) WithGroup(string) slog.Handler {
	return n
}

var nullLogger = slog.New(nullHandler{}) //nolint:gochecknoglobals
