package signals

import "fmt"

// InvalidReceiverError reports a receiver that does not satisfy the calling
// contract. It is returned by Connect only; a connected receiver can no
// longer fail this way during dispatch.
type InvalidReceiverError struct {
	Signal   string
	Receiver any
	Reason   string
}

func (e *InvalidReceiverError) Error() string {
	return fmt.Sprintf("signals: invalid receiver on %q: %s", e.Signal, e.Reason)
}

// ReceiverError wraps a failure produced by a receiver during dispatch.
// Send returns it to the producer; SendRobust captures it into the
// per-receiver outcome instead.
type ReceiverError struct {
	Signal     string
	ReceiverID any
	cause      error
}

func newReceiverError(signal string, receiverID any, cause error) *ReceiverError {
	return &ReceiverError{Signal: signal, ReceiverID: receiverID, cause: cause}
}

func (e *ReceiverError) Error() string {
	return fmt.Sprintf("signals: receiver %v failed on %q: %v", e.ReceiverID, e.Signal, e.cause)
}

func (e *ReceiverError) Unwrap() error {
	return e.cause
}

// Cause supports github.com/pkg/errors cause chains.
func (e *ReceiverError) Cause() error {
	return e.cause
}
