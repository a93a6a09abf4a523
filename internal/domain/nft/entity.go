package nft

import (
	"time"

	"nft-market/internal/domain/payment"

	"github.com/google/uuid"
)

// Ownership is the local durable proof that a wallet purchased an asset.
// Records are insert-only: created exactly once per successful purchase and
// never updated. The transaction reference of the payment that funded the
// record is denormalized onto it so a reconciliation after a failed write
// can be tied back to the committed transfer.
type Ownership struct {
	id             uuid.UUID
	payerWallet    payment.WalletAddress
	assetID        AssetID
	transactionRef payment.TransactionRef
	createdAt      time.Time
}

func NewOwnership(
	id uuid.UUID,
	payerWallet payment.WalletAddress,
	assetID AssetID,
	transactionRef payment.TransactionRef,
	now time.Time,
) *Ownership {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Ownership{
		id:             id,
		payerWallet:    payerWallet,
		assetID:        assetID,
		transactionRef: transactionRef,
		createdAt:      now,
	}
}

func (o *Ownership) ID() uuid.UUID                          { return o.id }
func (o *Ownership) PayerWallet() payment.WalletAddress     { return o.payerWallet }
func (o *Ownership) AssetID() AssetID                       { return o.assetID }
func (o *Ownership) TransactionRef() payment.TransactionRef { return o.transactionRef }
func (o *Ownership) CreatedAt() time.Time                   { return o.createdAt }
