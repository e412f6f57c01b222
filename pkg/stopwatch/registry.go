package stopwatch

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	logpkg "github.com/rzbill/stopwatch/pkg/log"
)

// Registry hands out stopwatches under unique identifiers. Identifiers are
// never removed or reused. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Stopwatch

	mode   RestartMode
	logger logpkg.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for creation events.
func WithLogger(l logpkg.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRestartMode sets the restart mode of every stopwatch the registry creates.
func WithRestartMode(m RestartMode) RegistryOption {
	return func(r *Registry) { r.mode = m }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		instances: make(map[string]*Stopwatch),
		mode:      RestartMerge,
		logger:    logpkg.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("registry")
	return r
}

// Create registers and returns a new stopped stopwatch named id. It fails
// with ErrInvalidArgument when id is empty or only whitespace, and with
// ErrAlreadyExists when id is already registered. Concurrent calls with the
// same id produce exactly one success.
func (r *Registry) Create(id string) (*Stopwatch, error) {
	if strings.TrimSpace(id) == "" {
		r.logger.Debug("rejected blank stopwatch id", logpkg.Str("id", id))
		return nil, fmt.Errorf("create %q: %w", id, ErrInvalidArgument)
	}

	r.mu.Lock()
	if _, ok := r.instances[id]; ok {
		r.mu.Unlock()
		r.logger.Debug("rejected duplicate stopwatch id", logpkg.Str("id", id))
		return nil, fmt.Errorf("create %q: %w", id, ErrAlreadyExists)
	}
	sw := newStopwatch(id, r.mode)
	r.instances[id] = sw
	n := len(r.instances)
	r.mu.Unlock()

	r.logger.Debug("stopwatch created",
		logpkg.Str("id", id),
		logpkg.Str("restart_mode", r.mode.String()),
		logpkg.Int("registered", n),
	)
	return sw, nil
}

// Get returns the stopwatch registered under id.
func (r *Registry) Get(id string) (*Stopwatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sw, ok := r.instances[id]
	return sw, ok
}

// List returns a snapshot of every registered stopwatch sorted by id. The
// returned slice is owned by the caller and is never nil.
func (r *Registry) List() []*Stopwatch {
	r.mu.RLock()
	out := make([]*Stopwatch, 0, len(r.instances))
	for _, sw := range r.instances {
		out = append(out, sw)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Len returns the number of registered stopwatches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
