package domain

import "context"

// TxManager scopes a unit of work. Repository calls made with the context
// passed to fn run inside one transaction; fn returning an error (or
// panicking) rolls the whole unit back, nil commits it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
