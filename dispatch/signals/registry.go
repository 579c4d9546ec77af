package signals

import (
	"sort"
	"sync"
)

// Registry is an explicitly owned table of named signals. Construct one at
// process start and hand it to producer and consumer collaborators; there is
// no process-wide registry, so tests build a fresh one per case.
type Registry struct {
	mu      sync.RWMutex
	signals map[string]*SignalImp
}

func NewRegistry() *Registry {
	return &Registry{signals: make(map[string]*SignalImp)}
}

// Signal returns the signal registered under name, creating it on first use.
// Signals live for the registry's lifetime; only their bindings come and go.
func (r *Registry) Signal(name string) *SignalImp {
	r.mu.RLock()
	s, ok := r.signals[name]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.signals[name]; ok {
		return s
	}
	s = NewSignal(name)
	r.signals[name] = s
	return s
}

// Lookup returns the signal registered under name without creating one.
func (r *Registry) Lookup(name string) (*SignalImp, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.signals[name]
	return s, ok
}

// Names lists the registered signal names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.signals))
	for name := range r.signals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
