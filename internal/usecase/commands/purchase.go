package commands

import (
	"context"
	"fmt"
	"log/slog"

	"nft-market/internal/domain/nft"
	"nft-market/internal/domain/payment"
	reqdto "nft-market/internal/handler/dto/request"
	"nft-market/internal/pkg/clock"
	"nft-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStorageUnavailable = errs.New("ownership storage unavailable")

	// ErrPaymentSucceededRecordFailed marks the reconciliation gap: the
	// transfer is committed on the ledger but the local ownership record is
	// missing. The payment is never re-submitted to repair this.
	ErrPaymentSucceededRecordFailed = errs.New("payment succeeded but ownership record failed")
)

// RecordFailedError carries the reference of the committed transfer so an
// operator can replay the record step without re-charging the payer.
type RecordFailedError struct {
	TransactionRef string
	PayerWallet    string
	AssetID        string
	cause          error
}

func (e *RecordFailedError) Error() string {
	return fmt.Sprintf("payment %s succeeded but recording ownership of %s failed", e.TransactionRef, e.AssetID)
}

func (e *RecordFailedError) Unwrap() error {
	return e.cause
}

type PurchaseResult struct {
	TransactionRef string
	AssetID        string
}

// PurchaseConfig is the server-side half of every purchase: the account the
// transfer pays into and the fixed price. Both come from configuration,
// never from a request.
type PurchaseConfig struct {
	Payee payment.WalletAddress
	Price payment.TokenAmount
}

type PurchaseCommands interface {
	PurchaseNFT(ctx context.Context, req reqdto.PurchaseNFTRequest) (*PurchaseResult, error)
	ReplayRecord(ctx context.Context, req reqdto.ReconcileRequest) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	gateway       PaymentGateway
	ownershipRepo OwnershipRepository
	cfg           PurchaseConfig
	clock         clock.Clock
}

func NewPurchaseCommands(
	gateway PaymentGateway,
	ownershipRepo OwnershipRepository,
	cfg PurchaseConfig,
	clock clock.Clock,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		gateway:       gateway,
		ownershipRepo: ownershipRepo,
		cfg:           cfg,
		clock:         clock,
	}
}

// PurchaseNFT runs the purchase in strict sequence: the gateway call first,
// the ownership write only after the ledger has confirmed the transfer.
// A gateway failure aborts before any write. A write failure after a
// confirmed payment is surfaced as RecordFailedError; the gateway is never
// re-invoked for it.
func (u *purchaseUseCaseImpl) PurchaseNFT(ctx context.Context, req reqdto.PurchaseNFTRequest) (*PurchaseResult, error) {
	payer, err := payment.NewWalletAddress(req.UserWallet)
	if err != nil {
		return nil, err
	}

	assetID, err := nft.NewAssetID(req.NFTID)
	if err != nil {
		return nil, err
	}

	txRef, err := u.gateway.ProcessPayment(ctx, payer, u.cfg.Payee, u.cfg.Price)
	if err != nil {
		// Gateway errors propagate unmodified; no ledger transfer exists.
		return nil, err
	}

	ownership := nft.NewOwnership(uuid.Nil, payer, assetID, txRef, u.clock.Now())
	if err := u.ownershipRepo.Create(ctx, ownership); err != nil {
		recordErr := &RecordFailedError{
			TransactionRef: txRef.String(),
			PayerWallet:    payer.String(),
			AssetID:        assetID.String(),
			cause:          errs.Mark(err, ErrPaymentSucceededRecordFailed),
		}
		slog.Error("reconciliation gap: payment confirmed but ownership record failed",
			"transaction_ref", recordErr.TransactionRef,
			"payer_wallet", recordErr.PayerWallet,
			"asset_id", recordErr.AssetID,
			"error", err.Error(),
		)
		return nil, recordErr
	}

	return &PurchaseResult{
		TransactionRef: txRef.String(),
		AssetID:        assetID.String(),
	}, nil
}

// ReplayRecord re-attempts only the ownership write for a transfer that is
// already confirmed on the ledger. It exists to close reconciliation gaps
// and must never touch the payment gateway.
func (u *purchaseUseCaseImpl) ReplayRecord(ctx context.Context, req reqdto.ReconcileRequest) (*PurchaseResult, error) {
	payer, err := payment.NewWalletAddress(req.UserWallet)
	if err != nil {
		return nil, err
	}

	assetID, err := nft.NewAssetID(req.NFTID)
	if err != nil {
		return nil, err
	}

	txRef, err := payment.NewTransactionRef(req.TransactionRef)
	if err != nil {
		return nil, err
	}

	ownership := nft.NewOwnership(uuid.Nil, payer, assetID, txRef, u.clock.Now())
	if err := u.ownershipRepo.Create(ctx, ownership); err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	return &PurchaseResult{
		TransactionRef: txRef.String(),
		AssetID:        assetID.String(),
	}, nil
}
