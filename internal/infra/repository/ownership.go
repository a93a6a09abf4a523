package repository

import (
	"context"
	"errors"

	"nft-market/internal/domain/nft"
	"nft-market/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type OwnershipRepository struct {
	db *pgxpool.Pool
}

func NewOwnershipRepository(db *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

func (r *OwnershipRepository) Create(ctx context.Context, ownership *nft.Ownership) error {
	const query = `
		INSERT INTO ownerships (id, payer_wallet, asset_id, transaction_ref, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		ownership.ID(),
		ownership.PayerWallet().String(),
		ownership.AssetID().String(),
		ownership.TransactionRef().String(),
		ownership.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert ownership", err, classifyWriteError(err))
	}
	return nil
}

// A PgError means the server answered; anything else (dial failure, timeout,
// closed pool) is the storage layer being unreachable.
func classifyWriteError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgErrCodeUniqueViolation {
			return infra.KindDuplicateKey
		}
		return infra.KindDBFailure
	}
	return infra.KindUnavailable
}
