package disposable

import "sync"

type DisposableImp struct {
	once    sync.Once
	dispose func()
}

// NewDisposable wraps a cleanup callback. Dispose runs it at most once.
func NewDisposable(dispose func()) *DisposableImp {
	return &DisposableImp{dispose: dispose}
}

func (d *DisposableImp) Dispose() {
	d.once.Do(d.dispose)
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
