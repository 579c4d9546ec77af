package signals

import (
	"github.com/hashicorp/go-multierror"
)

// Response is the outcome of one receiver invocation. Exactly one of Value
// and Err is meaningful: SendRobust fills Err with a *ReceiverError when the
// receiver failed, Send never produces failed entries.
type Response struct {
	Receiver   any
	ReceiverID any
	Value      any
	Err        error
}

// Responses is the ordered outcome sequence of one dispatch, one entry per
// invoked receiver in registration order.
type Responses []Response

// Err aggregates the per-receiver failures, or nil when every receiver
// succeeded.
func (rs Responses) Err() error {
	var err error
	for _, r := range rs {
		if r.Err != nil {
			err = multierror.Append(err, r.Err)
		}
	}
	return err
}

// Values returns the return values in invocation order. Failed entries
// contribute nil.
func (rs Responses) Values() []any {
	values := make([]any, len(rs))
	for i, r := range rs {
		values[i] = r.Value
	}
	return values
}
