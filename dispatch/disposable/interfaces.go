package disposable

type Disposable interface {
	Dispose()
}
