// Package tx threads a *sql.Tx through context. Stores check for an ambient
// transaction and join it instead of writing through their own connection,
// which keeps store signatures free of transaction plumbing.
package tx

import (
	"context"
	"database/sql"
)

type key struct{}

// WithTx returns a context carrying txn. A nil txn leaves ctx unchanged.
func WithTx(ctx context.Context, txn *sql.Tx) context.Context {
	if txn == nil {
		return ctx
	}
	return context.WithValue(ctx, key{}, txn)
}

// From reports the ambient transaction, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	txn, ok := ctx.Value(key{}).(*sql.Tx)
	return txn, ok
}
