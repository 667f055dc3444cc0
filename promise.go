package mustawait

import (
	"context"
	"sync"
)

// Promise is a computation settled by hand: the producing side calls
// Resolve or Reject exactly once, and every consumer of the corresponding
// handle observes that result. It implements SharedAwaitable, so it is the
// natural source for handles that cross goroutines.
//
// The first settlement wins; later Resolve and Reject calls are no-ops.
// The zero Promise is not usable; construct one with NewPromise.
type Promise[T any] struct {
	once sync.Once
	done chan struct{}

	result T
	err    error
}

// NewPromise returns an unsettled promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolve settles the promise with a value. Only the first settlement
// takes effect.
func (p *Promise[T]) Resolve(value T) {
	p.settle(value, nil)
}

// Reject settles the promise with an error. Only the first settlement
// takes effect. Reject panics if err is nil, since a nil error would be
// indistinguishable from a resolution.
func (p *Promise[T]) Reject(err error) {
	if err == nil {
		panic("mustawait: Reject called with nil error")
	}
	var zero T
	p.settle(zero, err)
}

// Await returns the settled result, or ctx's error if ctx ends first.
// A settled result wins over an already-ended wait context. Await is safe
// for concurrent use.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	p.check()
	select {
	case <-p.done:
		return p.result, p.err
	default:
	}
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	p.check()
	return p.done
}

// Close abandons a pending promise, settling it with ErrClosed so that
// every waiter unblocks. Closing an already-settled promise has no effect.
// Close never fails; it returns an error only to satisfy io.Closer.
func (p *Promise[T]) Close() error {
	var zero T
	p.settle(zero, ErrClosed)
	return nil
}

func (p *Promise[T]) settle(value T, err error) {
	p.check()
	p.once.Do(func() {
		p.result = value
		p.err = err
		close(p.done)
	})
}

func (p *Promise[T]) check() {
	if p.done == nil {
		panic("mustawait: use of zero Promise; construct one with NewPromise")
	}
}

var _ SharedAwaitable[struct{}] = (*Promise[struct{}])(nil)
