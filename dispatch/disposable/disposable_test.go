package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_RunsCallback(t *testing.T) {
	called := false
	d := NewDisposable(func() { called = true })
	d.Dispose()
	assert.True(t, called)
}

func TestDisposable_DisposeTwiceRunsOnce(t *testing.T) {
	count := 0
	d := NewDisposable(func() { count++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, count)
}

func TestCompositeDisposable_DisposesAllDelegates(t *testing.T) {
	var order []int
	d := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
	)
	d.Dispose()
	assert.Equal(t, []int{1, 2}, order)
}

func TestCompositeDisposable_Empty(t *testing.T) {
	d := NewCompositeDisposable()
	d.Dispose() // should not panic
}
