//go:build unit || e2e

package builder

import (
	"time"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
	reqdto "nft-market/internal/handler/dto/request"
	"nft-market/internal/usecase/queries"

	"github.com/google/uuid"
)

// Valid base58 ledger identifiers for tests. The wallet values decode to
// real 32-byte public keys; the signature is a well-formed 64-byte one.
const (
	TestPayerWallet    = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	TestPayeeWallet    = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TestTransactionRef = "5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7"
)

type PurchaseBuilder struct {
	UserWallet     string
	NFTID          string
	TransactionRef string
	CreatedAt      time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		UserWallet:     TestPayerWallet,
		NFTID:          "nft-42",
		TransactionRef: TestTransactionRef,
		CreatedAt:      time.Now().UTC(),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PurchaseBuilder) BuildDomain() (*nft.Ownership, error) {
	payer, err := payment.NewWalletAddress(b.UserWallet)
	if err != nil {
		return nil, err
	}
	assetID, err := nft.NewAssetID(b.NFTID)
	if err != nil {
		return nil, err
	}
	txRef, err := payment.NewTransactionRef(b.TransactionRef)
	if err != nil {
		return nil, err
	}
	return nft.NewOwnership(uuid.Nil, payer, assetID, txRef, b.CreatedAt), nil
}

func (b *PurchaseBuilder) BuildPurchaseRequestDTO() reqdto.PurchaseNFTRequest {
	return reqdto.PurchaseNFTRequest{
		UserWallet: b.UserWallet,
		NFTID:      b.NFTID,
	}
}

func (b *PurchaseBuilder) BuildReconcileRequestDTO() reqdto.ReconcileRequest {
	return reqdto.ReconcileRequest{
		UserWallet:     b.UserWallet,
		NFTID:          b.NFTID,
		TransactionRef: b.TransactionRef,
	}
}

func (b *PurchaseBuilder) BuildOwnershipView() *queries.OwnershipView {
	return &queries.OwnershipView{
		ID:             uuid.New(),
		PayerWallet:    b.UserWallet,
		AssetID:        b.NFTID,
		TransactionRef: b.TransactionRef,
		CreatedAt:      b.CreatedAt,
	}
}

// Fluent builder methods
func (b *PurchaseBuilder) WithUserWallet(wallet string) *PurchaseBuilder {
	b.UserWallet = wallet
	return b
}

func (b *PurchaseBuilder) WithNFTID(id string) *PurchaseBuilder {
	b.NFTID = id
	return b
}

func (b *PurchaseBuilder) WithTransactionRef(ref string) *PurchaseBuilder {
	b.TransactionRef = ref
	return b
}

func (b *PurchaseBuilder) WithCreatedAt(createdAt time.Time) *PurchaseBuilder {
	b.CreatedAt = createdAt
	return b
}
