package payment

import (
	"errors"
	"strings"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrInvalidAddress = errors.New("invalid wallet address")
	ErrInvalidAmount  = errors.New("token amount must be positive")
	ErrEmptyReference = errors.New("transaction reference must not be empty")
)

// WalletAddress is a validated account identifier on the external ledger.
// Validation happens here, before any RPC call is made with it.
type WalletAddress struct {
	key solana.PublicKey
}

func NewWalletAddress(s string) (WalletAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WalletAddress{}, ErrInvalidAddress
	}
	key, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return WalletAddress{}, ErrInvalidAddress
	}
	return WalletAddress{key: key}, nil
}

func (w WalletAddress) PublicKey() solana.PublicKey {
	return w.key
}

func (w WalletAddress) String() string {
	return w.key.String()
}

// TokenAmount is a transfer amount denominated in the token's base unit.
type TokenAmount struct {
	baseUnits uint64
}

func NewTokenAmount(baseUnits uint64) (TokenAmount, error) {
	if baseUnits == 0 {
		return TokenAmount{}, ErrInvalidAmount
	}
	return TokenAmount{baseUnits: baseUnits}, nil
}

func (a TokenAmount) BaseUnits() uint64 {
	return a.baseUnits
}

// TransactionRef is the opaque reference the ledger returns for a committed
// transfer. Each transfer yields a distinct reference; references are never
// reused across calls.
type TransactionRef struct {
	value string
}

func NewTransactionRef(s string) (TransactionRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TransactionRef{}, ErrEmptyReference
	}
	return TransactionRef{value: s}, nil
}

func (r TransactionRef) String() string {
	return r.value
}

func (r TransactionRef) IsZero() bool {
	return r.value == ""
}
