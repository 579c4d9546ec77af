package lifecycle

import (
	"sync"

	"github.com/pkg/errors"
)

// Configurator collects collaborator registration functions and runs them
// exactly once, in the order they were added, before any dispatch occurs.
// It replaces registration-at-import side effects with an explicit phase.
type Configurator struct {
	mu  sync.Mutex
	fns []func() error
	ran bool
	err error
}

// Add queues a registration function. Adding after Run is a programming
// error and is rejected.
func (c *Configurator) Add(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ran {
		return errors.New("lifecycle: registration phase already completed")
	}
	c.fns = append(c.fns, fn)
	return nil
}

// Run executes the queued registrations once and stops at the first failure.
// Subsequent calls return the first run's result without re-running anything.
func (c *Configurator) Run() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ran {
		return c.err
	}
	c.ran = true
	for _, fn := range c.fns {
		if err := fn(); err != nil {
			c.err = errors.Wrap(err, "lifecycle: registration failed")
			break
		}
	}
	return c.err
}
