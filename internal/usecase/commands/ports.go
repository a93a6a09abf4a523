package commands

import (
	"context"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
)

// PaymentGateway moves a token amount between two ledger accounts and
// reports a durable reference once the ledger has confirmed the transfer.
//
// ProcessPayment is NOT idempotent: every call produces a distinct transfer
// and a distinct reference. Callers must not re-invoke it to repair a
// failure that happened after it returned successfully.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, payer, payee payment.WalletAddress, amount payment.TokenAmount) (payment.TransactionRef, error)
}

// OwnershipRepository persists ownership records. Writes are insert-only.
type OwnershipRepository interface {
	Create(ctx context.Context, ownership *nft.Ownership) error
}
