package readstore

import (
	"context"
	"errors"

	"nft-market/internal/infra"
	"nft-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OwnershipReadStore struct {
	db *pgxpool.Pool
}

func NewOwnershipReadStore(db *pgxpool.Pool) *OwnershipReadStore {
	return &OwnershipReadStore{db: db}
}

// FindLatestByAssetID returns the most recently inserted record for the
// asset. The id tiebreak keeps the pick deterministic when two inserts land
// on the same timestamp.
func (r *OwnershipReadStore) FindLatestByAssetID(ctx context.Context, assetID string) (*queries.OwnershipView, error) {
	const query = `
		SELECT id, payer_wallet, asset_id, transaction_ref, created_at
		FROM ownerships
		WHERE asset_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var view queries.OwnershipView
	err := r.db.QueryRow(ctx, query, assetID).Scan(
		&view.ID,
		&view.PayerWallet,
		&view.AssetID,
		&view.TransactionRef,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("ownership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ownership by asset id", err)
	}
	return &view, nil
}
