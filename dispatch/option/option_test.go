package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome_IsSome(t *testing.T) {
	o := Some(42)
	assert.True(t, o.IsSome())
	assert.False(t, o.IsNothing())
	assert.Equal(t, 42, o.Unwrap())
}

func TestNothing_IsNothing(t *testing.T) {
	o := Nothing[int]()
	assert.False(t, o.IsSome())
	assert.True(t, o.IsNothing())
}

func TestUnwrap_PanicsOnNothing(t *testing.T) {
	o := Nothing[int]()
	assert.Panics(t, func() { o.Unwrap() })
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 1, Some(1).UnwrapOr(9))
	assert.Equal(t, 9, Nothing[int]().UnwrapOr(9))
}

func TestUnwrapOrElse(t *testing.T) {
	assert.Equal(t, 1, Some(1).UnwrapOrElse(func() int { return 9 }))
	assert.Equal(t, 9, Nothing[int]().UnwrapOrElse(func() int { return 9 }))
}

func TestMap(t *testing.T) {
	doubled := Map(Some(2), func(v int) int { return v * 2 })
	assert.Equal(t, 4, doubled.Unwrap())
	assert.True(t, Map(Nothing[int](), func(v int) int { return v * 2 }).IsNothing())
}
