package signals

import (
	"fmt"
	"reflect"

	"github.com/krew-solutions/dispatch-go/dispatch/option"
)

// receiverFunc is the normalized shape every accepted receiver reduces to.
type receiverFunc func(sender any, payload Payload) (any, error)

// adaptReceiver verifies the receiver's calling contract and normalizes it.
// Misconfigured receivers are caught here, at connect time, not at dispatch.
func adaptReceiver(signal string, receiver any) (receiverFunc, error) {
	switch fn := receiver.(type) {
	case func(sender any, payload Payload) (any, error):
		if fn == nil {
			break
		}
		return fn, nil
	case func(sender any, payload Payload) error:
		if fn == nil {
			break
		}
		return func(sender any, payload Payload) (any, error) {
			return nil, fn(sender, payload)
		}, nil
	case func(sender any, payload Payload):
		if fn == nil {
			break
		}
		return func(sender any, payload Payload) (any, error) {
			fn(sender, payload)
			return nil, nil
		}, nil
	}
	return nil, &InvalidReceiverError{
		Signal:   signal,
		Receiver: receiver,
		Reason:   describeContract(receiver),
	}
}

func describeContract(receiver any) string {
	if receiver == nil {
		return "receiver is nil"
	}
	t := reflect.TypeOf(receiver)
	if t.Kind() != reflect.Func {
		return fmt.Sprintf("receiver must be a function, got %s", t)
	}
	return fmt.Sprintf("receiver %s must accept (sender any, payload Payload) and return nothing, error, or (any, error)", t)
}

// receiverKey derives the default binding identity for a receiver: the
// function's code pointer. Closures created from the same literal share that
// pointer, so distinct instances of one literal need WithReceiverID to be
// registered side by side.
func receiverKey(receiver any) option.Option[any] {
	v := reflect.ValueOf(receiver)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return option.Nothing[any]()
	}
	return option.Some[any](v.Pointer())
}

// identical reports identity equality between two sender values. Pointer-like
// senders compare by address, plain comparable values by value; values Go
// cannot compare never match.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	}
	if !av.Type().Comparable() {
		return false
	}
	return a == b
}
