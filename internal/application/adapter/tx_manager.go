// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TxManager runs a function inside a single database transaction. The
// transaction is threaded through the context, so repository calls made with
// the derived context join the same atomic unit. Multi-step mutations
// (ledger write + pocket balance adjustment, transfers, cascading deletes)
// must go through this to keep cached balances consistent with the ledger.
type TxManager interface {
	// Do executes fn atomically. If fn returns an error the whole unit is
	// rolled back and the error is returned unchanged.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
