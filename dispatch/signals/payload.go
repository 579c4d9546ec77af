package signals

import (
	"github.com/krew-solutions/dispatch-go/dispatch/option"
)

// Payload carries the named auxiliary arguments of a dispatch. The dispatcher
// never interprets its contents; keys are part of the contract between a
// producer and its receivers, and receivers must ignore keys they do not know.
type Payload map[string]any

// Get returns the value stored under key.
func (p Payload) Get(key string) option.Option[any] {
	if v, ok := p[key]; ok {
		return option.Some(v)
	}
	return option.Nothing[any]()
}

// Bool returns the bool stored under key, or false when the key is absent or
// holds a different type.
func (p Payload) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Int returns the int stored under key, or zero when the key is absent or
// holds a different type.
func (p Payload) Int(key string) int {
	v, _ := p[key].(int)
	return v
}

// String returns the string stored under key, or "" when the key is absent or
// holds a different type.
func (p Payload) String(key string) string {
	v, _ := p[key].(string)
	return v
}
