package heap

// Observer is notified synchronously of heap activity. count is the number
// of elements held after the operation.
type Observer interface {
	Inserted(count int)
	Extracted(count int)
	Empty(op string)
}

type options struct {
	capacity int
	observer Observer
}

// Option configures a heap at construction.
type Option func(*options)

// WithCapacity pre-sizes the backing storage.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithObserver attaches an observer to the heap.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
