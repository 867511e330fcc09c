// Package ledger defines the typed façade over the external ledger's
// read and transactional operations. Implementations map the raw
// binding output into models records at this boundary so no other
// component ever sees the binding's shape.
package ledger

import "errors"

// ErrNotReady is returned by every operation when the client is not
// connected to the expected network or has no signing identity.
var ErrNotReady = errors.New("ledger client not ready")

// ErrNotFound is returned when a requested record does not exist on the
// ledger.
var ErrNotFound = errors.New("ledger record not found")

// TxError carries a failed or reverted ledger transaction verbatim.
// It is never retried by the client.
type TxError struct {
	Reason string
	Err    error
}

func (e *TxError) Error() string {
	if e.Err != nil {
		return "ledger transaction failed: " + e.Reason + ": " + e.Err.Error()
	}
	return "ledger transaction failed: " + e.Reason
}

func (e *TxError) Unwrap() error { return e.Err }

// TxResult reports a confirmed ledger transaction.
type TxResult struct {
	TxHash string
}

// CreateResult reports a confirmed creation transaction together with
// the ledger-assigned identifier of the new record.
type CreateResult struct {
	TxResult
	Id int64
}

// Client is the complete ledger surface. Components should depend on
// the granular interfaces below instead of this one where possible.
type Client interface {
	// Ready reports whether the client is connected to the expected
	// network and able to read. It never blocks.
	Ready() bool

	// Account returns the connected signing identity, or "" when the
	// client has no signer.
	Account() string

	CampaignReader
	ResourceReader
	Writer
}
