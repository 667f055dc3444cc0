package mustawait

import "errors"

var (
	// ErrClosed reports that a computation was released before it settled.
	ErrClosed = errors.New("mustawait: computation closed before it settled")
)
