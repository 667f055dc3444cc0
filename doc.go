// Package mustawait provides future handles that callers cannot silently
// drop: discarding one at a call site is reported by the companion vet
// analyzer in the awaitcheck package.
//
// A bare asynchronous result - a channel, a struct with a Wait method, a
// closure - does nothing when a caller forgets it, and Go's compiler does
// not object. This package puts such results behind a newtype, Future (and
// its cross-goroutine sibling SharedFuture), whose only job is to exist as
// a distinct static type that tooling can enforce. The wrapper forwards
// every call to the wrapped computation unchanged: no retries, no
// timeouts, no scheduling, no result transformation.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/dmitrymomot/mustawait"
//	)
//
//	func (s *Service) RebuildIndex(ctx context.Context) mustawait.SharedFuture[Stats] {
//	    return mustawait.Go(ctx, func(ctx context.Context) (Stats, error) {
//	        return s.index.Rebuild(ctx)
//	    })
//	}
//
//	func main() {
//	    ctx := context.Background()
//	    fut := svc.RebuildIndex(ctx)
//
//	    // ... other work ...
//
//	    stats, err := fut.Await(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(stats)
//	}
//
// Calling s.RebuildIndex(ctx) as a bare statement is reported by
// awaitcheck; assigning the handle to the blank identifier is treated as
// an explicit, deliberate discard and is not.
//
// # Enforcement
//
// The diagnostic lives in the awaitcheck analyzer, built on go/analysis.
// Install the vet tool and run it over a module:
//
//	go install github.com/dmitrymomot/mustawait/cmd/awaitcheck@latest
//	go vet -vettool=$(which awaitcheck) ./...
//
// The analyzer can also be registered with any go/analysis driver
// (golangci-lint module plugins, unitchecker pipelines) by importing
// awaitcheck.Analyzer directly. Its -types flag extends enforcement to
// handle types defined elsewhere.
//
// # The shared variant
//
// Future makes no promise about concurrent use: it is as shareable as the
// computation it wraps, which for Defer-built handles means not at all.
// SharedFuture can only be constructed from a SharedAwaitable, whose
// contract requires Await to be safe for concurrent use and a Done channel
// that closes on completion. Holding a SharedFuture is therefore a static
// guarantee that the handle may cross goroutines; an API that needs that
// guarantee should accept SharedFuture (or SharedAwaitable), and a plain
// Future will not compile there.
//
// # Sources
//
// The package ships the three computation sources the wrapper is usually
// combined with: Defer wraps a function that runs lazily on the driving
// goroutine, Go runs a function eagerly in its own goroutine, and Promise
// is settled by hand with Resolve or Reject. Anything else that implements
// Awaitable or SharedAwaitable can be wrapped the same way with Wrap and
// WrapShared.
//
// # Releasing a handle
//
// A caller that abandons a handle without driving it should Close it.
// Close forwards to the computation's io.Closer implementation when it has
// one: a Go task cancels its context, a pending Promise settles with
// ErrClosed, and a computation without a Closer treats Close as a no-op.
//
// # Error Handling
//
// The wrapper introduces no errors of its own: Await returns exactly what
// the computation returns, and context errors pass through unwrapped. The
// only sentinel in the package is ErrClosed, which a Promise settles with
// when it is closed before being resolved or rejected.
// Misuse - wrapping nil, using a zero-value handle - panics rather than
// limping along, because each of those violates the wrapper's one
// invariant: it always holds exactly one computation.
//
// # Thread Safety
//
// SharedFuture, Promise, and Go-built handles are safe for concurrent use.
// Future and Defer-built handles are confined to one goroutine at a time
// unless the wrapped computation documents otherwise.
package mustawait
