package logging

import "sync"

// Registry tracks every Logger created through it so protocol-driven level
// changes can be broadcast to all of them. Loggers live for the process
// lifetime; there is no deregistration.
type Registry struct {
	mu      sync.Mutex
	loggers []*Logger
}

// NewRegistry creates an empty logger registry. Production code uses the
// package default registry implicitly; tests inject their own through
// WithRegistry to keep level broadcasts isolated.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry backs loggers constructed without WithRegistry.
var defaultRegistry = NewRegistry()

// add registers a logger. Safe for concurrent use.
func (r *Registry) add(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = append(r.loggers, l)
}

// SetGlobalLevel overwrites the threshold of every registered logger with
// the level named by the MCP protocol level name. Unrecognized names are a
// no-op for all loggers.
func (r *Registry) SetGlobalLevel(name string) {
	level, ok := ParseMCPLevel(name)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.loggers {
		l.level.Set(level)
	}
}

// SetGlobalLevel applies the level change to every logger created through
// the package default registry.
func SetGlobalLevel(name string) {
	defaultRegistry.SetGlobalLevel(name)
}
