package solana

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"nft-market/internal/domain/payment"
	"nft-market/internal/pkg/config"
	"nft-market/internal/pkg/errs"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// RPCClient is the slice of rpc.Client the gateway uses; tests substitute it.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Gateway executes SPL token transfers on an external Solana ledger. The
// configured authority signs as the token delegate of the payer account
// (clients approve the delegation when they onboard). Success is reported
// only after the cluster confirms the transaction, so a returned reference
// is a durable, queryable fact.
type Gateway struct {
	client         RPCClient
	mint           solana.PublicKey
	authority      solana.PrivateKey
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewGateway(cfg config.LedgerConfig) (*Gateway, error) {
	mint, err := solana.PublicKeyFromBase58(cfg.TokenMint)
	if err != nil {
		return nil, errs.Wrap(err, "invalid token mint address")
	}

	authority, err := solana.PrivateKeyFromBase58(cfg.AuthorityKey)
	if err != nil {
		return nil, errs.Wrap(err, "invalid authority key")
	}

	return NewGatewayWithClient(rpc.New(cfg.RPCEndpoint), mint, authority, cfg.ConfirmTimeout, cfg.ConfirmPollInterval), nil
}

func NewGatewayWithClient(
	client RPCClient,
	mint solana.PublicKey,
	authority solana.PrivateKey,
	confirmTimeout time.Duration,
	pollInterval time.Duration,
) *Gateway {
	return &Gateway{
		client:         client,
		mint:           mint,
		authority:      authority,
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
	}
}

// ProcessPayment transfers amount from payer to payee and blocks until the
// ledger confirms. Not idempotent: every call is a new transfer.
func (g *Gateway) ProcessPayment(ctx context.Context, payer, payee payment.WalletAddress, amount payment.TokenAmount) (payment.TransactionRef, error) {
	source, _, err := solana.FindAssociatedTokenAddress(payer.PublicKey(), g.mint)
	if err != nil {
		return payment.TransactionRef{}, errs.Mark(err, payment.ErrInvalidAddress)
	}
	dest, _, err := solana.FindAssociatedTokenAddress(payee.PublicKey(), g.mint)
	if err != nil {
		return payment.TransactionRef{}, errs.Mark(err, payment.ErrInvalidAddress)
	}

	ctx, cancel := context.WithTimeout(ctx, g.confirmTimeout)
	defer cancel()

	blockhash, err := g.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return payment.TransactionRef{}, g.mapRPCError(err, "failed to fetch recent blockhash")
	}

	transfer := token.NewTransferInstruction(
		amount.BaseUnits(),
		source,
		dest,
		g.authority.PublicKey(),
		nil,
	).Build()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transfer},
		blockhash.Value.Blockhash,
		solana.TransactionPayer(g.authority.PublicKey()),
	)
	if err != nil {
		return payment.TransactionRef{}, errs.Mark(err, payment.ErrTransferRejected)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(g.authority.PublicKey()) {
			return &g.authority
		}
		return nil
	}); err != nil {
		return payment.TransactionRef{}, errs.Mark(err, payment.ErrTransferRejected)
	}

	sig, err := g.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return payment.TransactionRef{}, g.mapRPCError(err, "failed to submit transfer")
	}

	if err := g.waitForConfirmation(ctx, sig); err != nil {
		return payment.TransactionRef{}, err
	}

	slog.Info("transfer confirmed",
		"signature", sig.String(),
		"payer", payer.String(),
		"amount_base_units", amount.BaseUnits(),
	)

	return payment.NewTransactionRef(sig.String())
}

// waitForConfirmation polls signature status until the cluster reports at
// least confirmed commitment. The context carries the bounded wait; running
// out of it means the transfer is not a known fact and the gateway reports
// the ledger as unavailable.
func (g *Gateway) waitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return errs.Mark(errs.Newf("transfer %s not confirmed within bounded wait", sig), payment.ErrLedgerUnavailable)
		case <-ticker.C:
		}

		statuses, err := g.client.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			if ctx.Err() != nil {
				return errs.Mark(err, payment.ErrLedgerUnavailable)
			}
			slog.Warn("signature status poll failed, retrying", "signature", sig.String(), "error", err.Error())
			continue
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return errs.Mark(errs.Newf("transfer %s failed on ledger: %v", sig, status.Err), payment.ErrTransferRejected)
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		}
	}
}

func (g *Gateway) mapRPCError(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Mark(errs.Wrap(err, msg), payment.ErrLedgerUnavailable)
	}

	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		if isInsufficientFunds(rpcErr) {
			return errs.Mark(errs.Wrap(err, msg), payment.ErrInsufficientFunds)
		}
		return errs.Mark(errs.Wrap(err, msg), payment.ErrTransferRejected)
	}

	// Transport-level failure: the ledger never answered.
	return errs.Mark(errs.Wrap(err, msg), payment.ErrLedgerUnavailable)
}

// The token program reports a short balance as custom program error 0x1;
// native lamport shortfalls come back as plain messages.
func isInsufficientFunds(rpcErr *jsonrpc.RPCError) bool {
	msg := strings.ToLower(rpcErr.Message)
	return strings.Contains(msg, "insufficient funds") ||
		strings.Contains(msg, "insufficient lamports") ||
		strings.Contains(msg, "custom program error: 0x1")
}
