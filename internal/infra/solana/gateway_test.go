//go:build unit

package solana_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nft-market/internal/domain/payment"
	gateway "nft-market/internal/infra/solana"
	"nft-market/tests/common/builder"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRPCClient substitutes the ledger RPC client with canned responses.
type stubRPCClient struct {
	blockhashErr error
	sendErr      error
	statusErr    error
	statuses     []*rpc.SignatureStatusesResult
	nilStatusFor int // number of initial polls answered with no status

	sendCalls   int
	statusCalls int
}

func (s *stubRPCClient) GetLatestBlockhash(_ context.Context, _ rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if s.blockhashErr != nil {
		return nil, s.blockhashErr
	}
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            solana.Hash{},
			LastValidBlockHeight: 100,
		},
	}, nil
}

func (s *stubRPCClient) SendTransactionWithOpts(_ context.Context, tx *solana.Transaction, _ rpc.TransactionOpts) (solana.Signature, error) {
	s.sendCalls++
	if s.sendErr != nil {
		return solana.Signature{}, s.sendErr
	}
	return tx.Signatures[0], nil
}

func (s *stubRPCClient) GetSignatureStatuses(_ context.Context, _ bool, _ ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	s.statusCalls++
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	if s.statusCalls <= s.nilStatusFor {
		return &rpc.GetSignatureStatusesResult{Value: nil}, nil
	}
	return &rpc.GetSignatureStatusesResult{Value: s.statuses}, nil
}

func confirmedStatus() []*rpc.SignatureStatusesResult {
	return []*rpc.SignatureStatusesResult{
		{ConfirmationStatus: rpc.ConfirmationStatusConfirmed},
	}
}

func newTestGateway(t *testing.T, client gateway.RPCClient, confirmTimeout time.Duration) *gateway.Gateway {
	t.Helper()
	mint := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	authority := solana.NewWallet().PrivateKey
	return gateway.NewGatewayWithClient(client, mint, authority, confirmTimeout, 5*time.Millisecond)
}

func testParties(t *testing.T) (payment.WalletAddress, payment.WalletAddress, payment.TokenAmount) {
	t.Helper()
	payer, err := payment.NewWalletAddress(builder.TestPayerWallet)
	require.NoError(t, err)
	payee, err := payment.NewWalletAddress(builder.TestPayeeWallet)
	require.NoError(t, err)
	amount, err := payment.NewTokenAmount(100)
	require.NoError(t, err)
	return payer, payee, amount
}

func TestProcessPayment(t *testing.T) {
	t.Run("returns the signature once the cluster confirms", func(t *testing.T) {
		client := &stubRPCClient{statuses: confirmedStatus()}
		g := newTestGateway(t, client, time.Second)
		payer, payee, amount := testParties(t)

		ref, err := g.ProcessPayment(context.Background(), payer, payee, amount)

		require.NoError(t, err)
		assert.False(t, ref.IsZero())
		assert.Equal(t, 1, client.sendCalls)
	})

	t.Run("keeps polling until a status arrives", func(t *testing.T) {
		client := &stubRPCClient{statuses: confirmedStatus(), nilStatusFor: 3}
		g := newTestGateway(t, client, time.Second)
		payer, payee, amount := testParties(t)

		ref, err := g.ProcessPayment(context.Background(), payer, payee, amount)

		require.NoError(t, err)
		assert.False(t, ref.IsZero())
		assert.Greater(t, client.statusCalls, 3)
	})

	t.Run("maps send failures onto the payment error taxonomy", func(t *testing.T) {
		cases := []struct {
			name    string
			sendErr error
			errIs   error
		}{
			{
				name:    "token balance too short",
				sendErr: &jsonrpc.RPCError{Code: -32002, Message: "Transaction simulation failed: Error processing Instruction 0: custom program error: 0x1"},
				errIs:   payment.ErrInsufficientFunds,
			},
			{
				name:    "fee payer short of lamports",
				sendErr: &jsonrpc.RPCError{Code: -32002, Message: "Attempt to debit an account but found insufficient funds"},
				errIs:   payment.ErrInsufficientFunds,
			},
			{
				name:    "any other rpc rejection",
				sendErr: &jsonrpc.RPCError{Code: -32002, Message: "Transaction simulation failed: invalid account data"},
				errIs:   payment.ErrTransferRejected,
			},
			{
				name:    "transport failure",
				sendErr: errors.New("connection refused"),
				errIs:   payment.ErrLedgerUnavailable,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				client := &stubRPCClient{sendErr: tc.sendErr}
				g := newTestGateway(t, client, time.Second)
				payer, payee, amount := testParties(t)

				ref, err := g.ProcessPayment(context.Background(), payer, payee, amount)

				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, ref.IsZero())
			})
		}
	})

	t.Run("blockhash fetch failure reports the ledger unavailable", func(t *testing.T) {
		client := &stubRPCClient{blockhashErr: errors.New("connection refused")}
		g := newTestGateway(t, client, time.Second)
		payer, payee, amount := testParties(t)

		_, err := g.ProcessPayment(context.Background(), payer, payee, amount)

		require.ErrorIs(t, err, payment.ErrLedgerUnavailable)
		assert.Zero(t, client.sendCalls, "no transfer may be submitted without a blockhash")
	})

	t.Run("on-ledger failure is a rejection, not a retry", func(t *testing.T) {
		client := &stubRPCClient{statuses: []*rpc.SignatureStatusesResult{
			{Err: map[string]any{"InstructionError": []any{0, "Custom"}}},
		}}
		g := newTestGateway(t, client, time.Second)
		payer, payee, amount := testParties(t)

		_, err := g.ProcessPayment(context.Background(), payer, payee, amount)

		require.ErrorIs(t, err, payment.ErrTransferRejected)
		assert.Equal(t, 1, client.sendCalls)
	})

	t.Run("confirmation never arriving within the bounded wait is unavailable", func(t *testing.T) {
		client := &stubRPCClient{statuses: nil}
		g := newTestGateway(t, client, 40*time.Millisecond)
		payer, payee, amount := testParties(t)

		_, err := g.ProcessPayment(context.Background(), payer, payee, amount)

		require.ErrorIs(t, err, payment.ErrLedgerUnavailable)
		assert.Equal(t, 1, client.sendCalls, "an unconfirmed transfer must not be re-sent")
	})
}
