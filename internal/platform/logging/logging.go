// Package logging provides component-scoped structured logging for the MCP
// server, built on the standard library slog package.
//
// Every record goes to the diagnostic stream (stderr by default) and never to
// stdout: stdout carries the MCP protocol's request/response framing and must
// not be interleaved with diagnostics.
//
// Logger construction:
//
//	logger := logging.New("server")
//	apiLog := logger.Child("api-client")
//
// MCP clients adjust verbosity with protocol level names (debug, info,
// notice, warning, error, critical, alert, emergency), which collapse onto
// the four internal levels. SetLevel changes one logger; SetGlobalLevel
// broadcasts the change to every logger in the registry.
package logging

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
)

// Fields carries optional structured metadata attached to a single record.
type Fields map[string]any

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// Option configures the New constructor.
type Option func(*options)

type options struct {
	w        io.Writer
	level    slog.Level
	registry *Registry
}

// WithWriter directs output to w instead of stderr. Tests use this to
// capture records; production code should not write diagnostics anywhere
// near stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.w = w
	}
}

// WithLevel sets the initial severity threshold. Defaults to info.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithRegistry registers the logger (and its children) in r instead of the
// package default registry, keeping global level changes isolated in tests.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// Logger writes structured records for one named component. The component
// name is fixed at construction; the severity threshold is mutable through
// SetLevel and Registry.SetGlobalLevel.
type Logger struct {
	component string
	w         io.Writer
	level     *slog.LevelVar
	registry  *Registry
	sl        *slog.Logger
}

// New creates a Logger for the given component and registers it in the
// registry. This is the factory every other module uses to obtain a scoped
// logger.
func New(component string, opts ...Option) *Logger {
	o := &options{
		w:        os.Stderr,
		level:    slog.LevelInfo,
		registry: defaultRegistry,
	}
	for _, opt := range opts {
		opt(o)
	}
	return newLogger(component, o.w, o.level, o.registry)
}

func newLogger(component string, w io.Writer, level slog.Level, registry *Registry) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lv,
		ReplaceAttr: newRedactAttr(),
	})

	l := &Logger{
		component: component,
		w:         w,
		level:     lv,
		registry:  registry,
		sl:        slog.New(handler).With(slog.String("component", component)),
	}
	registry.add(l)
	return l
}

// Component returns the immutable component label.
func (l *Logger) Component() string {
	return l.component
}

// Level returns the current severity threshold.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// SetLevel updates the threshold from an MCP protocol level name.
// Unrecognized names leave the current threshold untouched.
func (l *Logger) SetLevel(name string) {
	if level, ok := ParseMCPLevel(name); ok {
		l.level.Set(level)
	}
}

// Child returns a logger for a different component sharing this logger's
// writer and registry. The child starts at the parent's current threshold
// and is independent of the parent afterwards, except for SetGlobalLevel
// which overwrites both.
func (l *Logger) Child(component string) *Logger {
	return newLogger(component, l.w, l.level.Level(), l.registry)
}

// Debug logs at debug level with optional metadata.
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(slog.LevelDebug, msg, nil, fields)
}

// Info logs at info level with optional metadata.
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(slog.LevelInfo, msg, nil, fields)
}

// Warn logs at warn level with optional metadata.
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(slog.LevelWarn, msg, nil, fields)
}

// Error logs at error level. err may be nil when only metadata is relevant;
// when set, its message is emitted under the "error" key.
func (l *Logger) Error(msg string, err error, fields ...Fields) {
	l.log(slog.LevelError, msg, err, fields)
}

// log is the single emission path. Field keys are emitted in sorted order so
// records render deterministically. A log call must never take down the
// caller: panics raised while formatting attribute values are swallowed here.
func (l *Logger) log(level slog.Level, msg string, err error, fieldSets []Fields) {
	defer func() {
		_ = recover()
	}()

	merged := mergeFields(fieldSets)
	attrs := make([]slog.Attr, 0, len(merged)+1)
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		attrs = append(attrs, slog.Any(key, merged[key]))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.sl.LogAttrs(context.Background(), level, msg, attrs...)
}

// mergeFields flattens the variadic metadata sets into one; later sets win
// on key collisions.
func mergeFields(sets []Fields) Fields {
	if len(sets) == 1 {
		return sets[0]
	}
	merged := Fields{}
	for _, f := range sets {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// fallback is the process-wide default logger, created on first use by
// FromContext when no logger is stored in the context.
var fallback = sync.OnceValue(func() *Logger {
	return New("server")
})

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *Logger from the context. If no logger is stored,
// it returns the process-wide default instance.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return fallback()
}
