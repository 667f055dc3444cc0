package mustawait

import "context"

// Func adapts a plain function to the Awaitable contract. The function runs
// on the driving goroutine, lazily, when Await is called; nothing happens
// before that. Func performs no memoization: each Await invocation runs the
// function again, so drive a Func-backed handle once.
type Func[T any] func(ctx context.Context) (T, error)

// Await runs the function on the calling goroutine.
func (fn Func[T]) Await(ctx context.Context) (T, error) {
	return fn(ctx)
}

// Defer converts a function into a must-use handle without starting it.
// The work runs on whichever goroutine eventually drives the handle, which
// keeps it on a single execution context unless the caller arranges
// otherwise. It panics if fn is nil.
func Defer[T any](fn func(ctx context.Context) (T, error)) Future[T] {
	if fn == nil {
		panic("mustawait: Defer called with nil function")
	}
	return Wrap[T](Func[T](fn))
}

// Go runs fn in its own goroutine and returns the already-wrapped handle
// for its result. The goroutine belongs to the computation, not the
// wrapper: the handle only observes it. fn receives a context derived from
// ctx that is canceled when the computation settles or when the handle is
// closed, so a context-respecting fn never leaks its goroutine. If ctx has
// already ended, fn is not called and the handle settles with ctx's error.
// Go panics if fn is nil.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) SharedFuture[T] {
	if fn == nil {
		panic("mustawait: Go called with nil function")
	}
	ctx, cancel := context.WithCancel(ctx)
	t := &task[T]{cancel: cancel, done: make(chan struct{})}
	go t.run(ctx, fn)
	return WrapShared[T](t)
}

// task is the goroutine-backed computation behind Go.
type task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	// Written once by run before done is closed; the close is the
	// happens-before edge for readers.
	result T
	err    error
}

func (t *task[T]) run(ctx context.Context, fn func(ctx context.Context) (T, error)) {
	defer close(t.done)
	defer t.cancel()

	// Pre-canceled context: settle without calling fn.
	select {
	case <-ctx.Done():
		t.err = ctx.Err()
		return
	default:
	}

	t.result, t.err = fn(ctx)
}

// Await returns the settled result, or ctx's error if ctx ends first.
// A settled result wins over an already-ended wait context. The wait
// context bounds the wait only; it does not cancel the computation.
func (t *task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	default:
	}
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns the completion channel.
func (t *task[T]) Done() <-chan struct{} {
	return t.done
}

// Close cancels the computation's context and returns immediately without
// waiting for fn to observe the cancellation. The task then settles with
// whatever fn returns, conventionally ctx.Err(). Close is idempotent.
func (t *task[T]) Close() error {
	t.cancel()
	return nil
}

var _ SharedAwaitable[struct{}] = (*task[struct{}])(nil)
