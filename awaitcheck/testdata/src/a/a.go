package a

import (
	"context"

	"github.com/dmitrymomot/mustawait"
)

func fetch(ctx context.Context) mustawait.Future[int] {
	return mustawait.Future[int]{}
}

func spawn(ctx context.Context) mustawait.SharedFuture[string] {
	return mustawait.SharedFuture[string]{}
}

func fetchPtr(ctx context.Context) *mustawait.Future[int] {
	return &mustawait.Future[int]{}
}

func fetchPair(ctx context.Context) (mustawait.Future[int], error) {
	return mustawait.Future[int]{}, nil
}

func plain(ctx context.Context) (int, error) {
	return 0, nil
}

type client struct{}

func (client) query(ctx context.Context) mustawait.Future[int] {
	return mustawait.Future[int]{}
}

func discards(ctx context.Context) {
	fetch(ctx)     // want `mustawait\.Future result discarded; await it or assign it to _`
	spawn(ctx)     // want `mustawait\.SharedFuture result discarded; await it or assign it to _`
	fetchPtr(ctx)  // want `mustawait\.Future result discarded`
	fetchPair(ctx) // want `mustawait\.Future result discarded`
	(fetch(ctx))   // want `mustawait\.Future result discarded`

	var c client
	c.query(ctx) // want `mustawait\.Future result discarded`

	f := fetch
	f(ctx) // want `mustawait\.Future result discarded`
}

func observes(ctx context.Context) {
	got, err := fetch(ctx).Await(ctx)
	_, _ = got, err

	fut := fetch(ctx)
	_, _ = fut.Await(ctx)

	_ = fetch(ctx)
	_, _ = fetchPair(ctx)
	_ = fetch(ctx).Close()

	plain(ctx) // plain results are not awaitcheck's business

	go spawn(ctx)
	defer cleanup(ctx)
}

func cleanup(ctx context.Context) mustawait.Future[int] {
	return mustawait.Future[int]{}
}
