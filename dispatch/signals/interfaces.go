package signals

import (
	"github.com/krew-solutions/dispatch-go/dispatch/disposable"
)

// Signal is a named broadcast channel with zero or more registered receivers.
//
// A receiver is any function with one of the following shapes:
//
//	func(sender any, payload Payload) (any, error)
//	func(sender any, payload Payload) error
//	func(sender any, payload Payload)
//
// The shape is verified when the receiver is connected, never during
// dispatch. Receivers must tolerate payload keys they do not know.
type Signal interface {
	Name() string
	Connect(receiver any, opts ...ConnectOption) (disposable.Disposable, error)
	Disconnect(receiver any, opts ...ConnectOption) bool
	Send(sender any, payload Payload) (Responses, error)
	SendRobust(sender any, payload Payload) Responses
	HasListeners(sender ...any) bool
}
