package signals

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/krew-solutions/dispatch-go/dispatch/disposable"
	"github.com/krew-solutions/dispatch-go/dispatch/option"
)

// ConnectOption tunes a single binding. The same options select the binding
// to remove on Disconnect (Weak is ignored there).
type ConnectOption func(*connectConfig)

// WithSender restricts the binding to dispatches whose sender is
// identity-equal to the given value. Without it the binding fires for every
// sender.
func WithSender(sender any) ConnectOption {
	return func(cfg *connectConfig) {
		cfg.sender = option.Some(sender)
	}
}

// WithReceiverID overrides the binding identity derived from the receiver
// function. IDs must be comparable.
func WithReceiverID(id any) ConnectOption {
	return func(cfg *connectConfig) {
		cfg.receiverID = option.Some(id)
	}
}

// Weak marks the binding non-owning: the registry does not keep the receiver
// reachable on its own. The probe is consulted on every dispatch pass; once
// it reports false the binding is pruned and never invoked again.
func Weak(alive func() bool) ConnectOption {
	return func(cfg *connectConfig) {
		cfg.alive = alive
	}
}

type connectConfig struct {
	sender     option.Option[any]
	receiverID option.Option[any]
	alive      func() bool
}

func applyOptions(opts []ConnectOption) connectConfig {
	cfg := connectConfig{
		sender:     option.Nothing[any](),
		receiverID: option.Nothing[any](),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type binding struct {
	receiverID any
	receiver   any
	call       receiverFunc
	sender     option.Option[any]
	alive      func() bool // nil for owning bindings
}

func (b binding) live() bool {
	return b.alive == nil || b.alive()
}

func (b binding) matches(filter option.Option[any]) bool {
	if filter.IsNothing() || b.sender.IsNothing() {
		return true
	}
	return identical(b.sender.Unwrap(), filter.Unwrap())
}

func sameBinding(a, b option.Option[any]) bool {
	if a.IsNothing() || b.IsNothing() {
		return a.IsNothing() && b.IsNothing()
	}
	return identical(a.Unwrap(), b.Unwrap())
}

type SignalImp struct {
	name string

	mu       sync.RWMutex
	bindings []binding
}

// NewSignal creates an empty signal. The name is an identity used for
// registry lookup and error reporting only; it carries no semantics.
func NewSignal(name string) *SignalImp {
	return &SignalImp{name: name}
}

func (s *SignalImp) Name() string {
	return s.name
}

// Connect registers receiver to run whenever the signal is dispatched with a
// matching sender. Connecting the same (receiver identity, sender filter)
// pair again is a no-op that keeps the original binding and its position.
// The returned Disposable disconnects the binding.
func (s *SignalImp) Connect(receiver any, opts ...ConnectOption) (disposable.Disposable, error) {
	cfg := applyOptions(opts)
	call, err := adaptReceiver(s.name, receiver)
	if err != nil {
		return nil, err
	}
	id := cfg.receiverID.UnwrapOrElse(func() any {
		return receiverKey(receiver).Unwrap()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bindings {
		if b.receiverID == id && sameBinding(b.sender, cfg.sender) {
			return s.disposeBinding(id, b.sender), nil
		}
	}
	s.bindings = append(s.bindings, binding{
		receiverID: id,
		receiver:   receiver,
		call:       call,
		sender:     cfg.sender,
		alive:      cfg.alive,
	})
	return s.disposeBinding(id, cfg.sender), nil
}

func (s *SignalImp) disposeBinding(id any, sender option.Option[any]) disposable.Disposable {
	return disposable.NewDisposable(func() {
		s.removeBinding(id, sender)
	})
}

// Disconnect removes the binding selected by receiver and options, reporting
// whether one was removed. Removing an absent binding is a silent no-op.
func (s *SignalImp) Disconnect(receiver any, opts ...ConnectOption) bool {
	cfg := applyOptions(opts)
	id := cfg.receiverID
	if id.IsNothing() {
		id = receiverKey(receiver)
	}
	if id.IsNothing() {
		return false
	}
	return s.removeBinding(id.Unwrap(), cfg.sender)
}

func (s *SignalImp) removeBinding(id any, sender option.Option[any]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bindings {
		if b.receiverID == id && sameBinding(b.sender, sender) {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			return true
		}
	}
	return false
}

// Send dispatches fail-fast: receivers run synchronously in registration
// order, and the first failure is wrapped in a *ReceiverError and returned
// immediately. Receivers after the failing one are not invoked and no partial
// result sequence is returned.
func (s *SignalImp) Send(sender any, payload Payload) (Responses, error) {
	matched := s.snapshot(option.Some(sender))
	responses := make(Responses, 0, len(matched))
	for _, b := range matched {
		value, err := b.call(sender, payload)
		if err != nil {
			return nil, newReceiverError(s.name, b.receiverID, err)
		}
		responses = append(responses, Response{
			Receiver:   b.receiver,
			ReceiverID: b.receiverID,
			Value:      value,
		})
	}
	return responses, nil
}

// SendRobust dispatches fail-safe: every matching receiver is attempted
// exactly once regardless of earlier failures, and each failure, including a
// panicking receiver, is captured into its outcome entry. Nothing escapes
// the call; inspect the entries or Responses.Err.
func (s *SignalImp) SendRobust(sender any, payload Payload) Responses {
	matched := s.snapshot(option.Some(sender))
	responses := make(Responses, 0, len(matched))
	for _, b := range matched {
		value, err := callGuarded(b, sender, payload)
		resp := Response{Receiver: b.receiver, ReceiverID: b.receiverID}
		if err != nil {
			resp.Err = newReceiverError(s.name, b.receiverID, err)
		} else {
			resp.Value = value
		}
		responses = append(responses, resp)
	}
	return responses
}

func callGuarded(b binding, sender any, payload Payload) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("receiver panicked: %v", r)
		}
	}()
	return b.call(sender, payload)
}

// HasListeners reports whether at least one live binding would fire for the
// given sender; with no argument it considers every sender. Producers use it
// to skip payload construction when nobody is listening.
func (s *SignalImp) HasListeners(sender ...any) bool {
	filter := option.Nothing[any]()
	if len(sender) > 0 {
		filter = option.Some(sender[0])
	}
	return len(s.snapshot(filter)) > 0
}

// snapshot copies the live bindings matching the sender filter under the read
// lock, so a dispatch never observes a torn list and receivers run without
// holding any lock. Dead non-owning bindings found along the way are pruned.
func (s *SignalImp) snapshot(filter option.Option[any]) []binding {
	s.mu.RLock()
	matched := make([]binding, 0, len(s.bindings))
	dead := false
	for _, b := range s.bindings {
		if !b.live() {
			dead = true
			continue
		}
		if b.matches(filter) {
			matched = append(matched, b)
		}
	}
	s.mu.RUnlock()
	if dead {
		s.prune()
	}
	return matched
}

func (s *SignalImp) prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]binding, 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.live() {
			kept = append(kept, b)
		}
	}
	s.bindings = kept
}
