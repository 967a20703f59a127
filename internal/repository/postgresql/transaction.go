package postgresql

import (
	"context"

	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
)

// GetQuerier returns either the transaction carried by the context or the
// pool. Used in repositories so the same queries run inside and outside
// database.DB.InTx.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFrom(ctx); ok {
		return tx
	}
	return db.Pool
}
