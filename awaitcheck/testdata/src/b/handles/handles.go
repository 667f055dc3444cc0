// Package handles declares a third-party computation handle used to
// exercise the -types flag.
package handles

import "context"

type Token struct {
	done chan struct{}
}

func (t Token) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
