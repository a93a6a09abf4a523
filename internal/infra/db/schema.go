package db

import (
	"context"

	"nft-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The ownerships table is owned exclusively by this service and is
// insert-only. asset_id deliberately carries no uniqueness constraint:
// multiple records per asset are permitted.
const ownershipsSchema = `
CREATE TABLE IF NOT EXISTS ownerships (
    id              uuid PRIMARY KEY,
    payer_wallet    text NOT NULL,
    asset_id        text NOT NULL,
    transaction_ref text NOT NULL,
    created_at      timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ownerships_asset_id_idx
    ON ownerships (asset_id, created_at DESC);
`

// EnsureSchema creates the service's tables if they do not exist. It is
// idempotent and must run during startup, before any request is served.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, ownershipsSchema); err != nil {
		return errs.Wrap(err, "failed to ensure ownerships schema")
	}
	return nil
}
