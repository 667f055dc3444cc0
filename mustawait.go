package mustawait

import (
	"context"
	"fmt"
	"io"
)

// Awaitable is the capability held by a future handle: a deferred
// computation that produces its result when actively driven.
//
// Await blocks until the computation settles or ctx ends, whichever comes
// first, and returns the computation's result and error. The context bounds
// the wait, not the computation itself; implementations that want
// cancellation to reach the work must arrange it themselves.
//
// Unless an implementation documents otherwise, a handle is driven once.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

// SharedAwaitable is an Awaitable that may be handed across goroutines.
//
// Implementations must make Await safe for concurrent use, with every call
// observing the same settled result, and must close the Done channel once
// the result is settled so that consumers can select on completion.
// An Awaitable without these guarantees must stay on the goroutine that
// owns it.
type SharedAwaitable[T any] interface {
	Awaitable[T]

	// Done returns a channel that is closed when the result is settled.
	Done() <-chan struct{}
}

// Future wraps exactly one Awaitable in a handle that static analysis can
// hold callers accountable for: the awaitcheck analyzer reports any call
// statement that produces a Future and drops it on the floor. The wrapper
// adds no behavior of its own; every call is forwarded to the wrapped
// computation unchanged.
//
// A Future is a small value and may be copied; copies share the same
// underlying computation. The zero Future holds no computation and panics
// on use; always construct one with Wrap or Defer.
type Future[T any] struct {
	inner Awaitable[T]
}

// Wrap converts an Awaitable into a must-use handle. It panics if inner is
// nil: a Future always holds exactly one computation.
func Wrap[T any](inner Awaitable[T]) Future[T] {
	if inner == nil {
		panic("mustawait: Wrap called with nil Awaitable")
	}
	return Future[T]{inner: inner}
}

// Await drives the wrapped computation, forwarding the call unchanged.
func (f Future[T]) Await(ctx context.Context) (T, error) {
	return f.use().Await(ctx)
}

// Close releases the wrapped computation. If the computation implements
// io.Closer the call is forwarded to it; otherwise Close is a no-op.
// Callers that abandon a handle without driving it should Close it so the
// computation can let go of anything it owns.
func (f Future[T]) Close() error {
	if c, ok := f.use().(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// String makes the handle visible under fmt verbs. It forwards to the
// wrapped computation's fmt.Stringer when implemented, and falls back to a
// stable placeholder naming the result type.
func (f Future[T]) String() string {
	if s, ok := f.inner.(fmt.Stringer); ok {
		return s.String()
	}
	var zero T
	return fmt.Sprintf("mustawait.Future[%T]", zero)
}

func (f Future[T]) use() Awaitable[T] {
	if f.inner == nil {
		panic("mustawait: use of zero Future; construct one with Wrap or Defer")
	}
	return f.inner
}

// SharedFuture is the must-use handle for computations that are safe to
// hand across goroutines. It differs from Future only in what it accepts:
// WrapShared requires a SharedAwaitable, so holding a SharedFuture is a
// static guarantee that the computation below it tolerates concurrent
// consumers. Like Future, it forwards every call unchanged and adds no
// behavior of its own.
//
// The zero SharedFuture holds no computation and panics on use; construct
// one with WrapShared or Go.
type SharedFuture[T any] struct {
	inner SharedAwaitable[T]
}

// WrapShared converts a SharedAwaitable into a must-use handle. It panics
// if inner is nil.
func WrapShared[T any](inner SharedAwaitable[T]) SharedFuture[T] {
	if inner == nil {
		panic("mustawait: WrapShared called with nil SharedAwaitable")
	}
	return SharedFuture[T]{inner: inner}
}

// Await drives the wrapped computation, forwarding the call unchanged.
// It is safe for concurrent use.
func (f SharedFuture[T]) Await(ctx context.Context) (T, error) {
	return f.use().Await(ctx)
}

// Done forwards the wrapped computation's completion channel.
func (f SharedFuture[T]) Done() <-chan struct{} {
	return f.use().Done()
}

// Close releases the wrapped computation, forwarding to its io.Closer
// implementation when present.
func (f SharedFuture[T]) Close() error {
	if c, ok := f.use().(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// String forwards to the wrapped computation's fmt.Stringer when
// implemented, falling back to a stable placeholder.
func (f SharedFuture[T]) String() string {
	if s, ok := f.inner.(fmt.Stringer); ok {
		return s.String()
	}
	var zero T
	return fmt.Sprintf("mustawait.SharedFuture[%T]", zero)
}

func (f SharedFuture[T]) use() SharedAwaitable[T] {
	if f.inner == nil {
		panic("mustawait: use of zero SharedFuture; construct one with WrapShared or Go")
	}
	return f.inner
}

// The wrappers expose the same driving interface as what they wrap, so a
// handle can stand in wherever the bare capability is accepted - including
// being wrapped again.
var (
	_ Awaitable[struct{}]       = Future[struct{}]{}
	_ SharedAwaitable[struct{}] = SharedFuture[struct{}]{}
)
