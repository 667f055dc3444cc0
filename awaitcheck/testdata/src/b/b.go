package b

import (
	"context"

	"b/handles"
)

func issue(ctx context.Context) handles.Token {
	return handles.Token{}
}

func discards(ctx context.Context) {
	issue(ctx) // want `handles\.Token result discarded; await it or assign it to _`
}

func observes(ctx context.Context) {
	tok := issue(ctx)
	_ = tok.Wait(ctx)

	_ = issue(ctx)
}
