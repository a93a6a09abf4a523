package payment

import "errors"

// Gateway error taxonomy. Implementations mark their failures with exactly
// one of these so callers can branch without knowing the ledger behind the
// port.
var (
	// ErrInsufficientFunds: payer balance is below the transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrLedgerUnavailable: the ledger cannot be reached, or did not confirm
	// the transfer within the bounded wait.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrTransferRejected: any other ledger-side rejection (frozen account,
	// unauthorized signer, ...).
	ErrTransferRejected = errors.New("transfer rejected")
)
