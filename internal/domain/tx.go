package domain

import "context"

// TxManager runs fn inside one storage transaction. Repository calls made
// with the ctx passed to fn join that transaction; fn returning an error
// rolls everything back. Transient contention (deadlock, serialization
// failure) is retried a bounded number of times before surfacing.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
