//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertOwnership writes an ownership row directly, bypassing the purchase
// flow, for tests that need pre-existing records.
func InsertOwnership(t *testing.T, db DBLike, payerWallet, assetID, transactionRef string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO ownerships (id, payer_wallet, asset_id, transaction_ref, created_at) VALUES ($1, $2, $3, $4, $5)",
		id, payerWallet, assetID, transactionRef, createdAt)
	require.NoError(t, err)

	return id
}

func CountOwnerships(t *testing.T, db DBLike, assetID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ownerships WHERE asset_id = $1", assetID).Scan(&count)
	require.NoError(t, err)

	return count
}

// ResetDB restores a clean table state between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE ownerships")
	return err
}
