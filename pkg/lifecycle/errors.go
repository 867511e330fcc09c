package lifecycle

import (
	"errors"

	"github.com/mygive/platform-core/pkg/ledger"
)

// Kind classifies a coordinator failure so callers can map it to a
// response without string matching.
type Kind string

const (
	// KindNotReady means the ledger client has no usable connection or
	// signer. The operation was never attempted.
	KindNotReady Kind = "not_ready"

	// KindValidation means the request failed a precondition checked
	// against fresh ledger state before any transaction was submitted.
	KindValidation Kind = "validation"

	// KindTransaction means the ledger rejected or reverted the
	// submitted transaction.
	KindTransaction Kind = "transaction"

	// KindTerminal means the target claim is already completed or
	// cancelled and no further transition is permitted.
	KindTerminal Kind = "terminal"
)

// Error is a classified coordinator failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func notReadyErr() *Error {
	return &Error{Kind: KindNotReady, Msg: "ledger unavailable", Err: ledger.ErrNotReady}
}

// NotReadyError reports an unavailable ledger. Exported for callers
// that detect unavailability themselves.
func NotReadyError() *Error { return notReadyErr() }

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func terminalErr(msg string) *Error {
	return &Error{Kind: KindTerminal, Msg: msg}
}

// classify wraps a ledger failure in a coordinator Error, preserving
// sentinel and transaction errors for errors.Is and errors.As.
func classify(err error, msg string) error {
	if err == nil {
		return nil
	}
	var coordErr *Error
	if errors.As(err, &coordErr) {
		return err
	}
	if errors.Is(err, ledger.ErrNotReady) {
		return &Error{Kind: KindNotReady, Msg: msg, Err: err}
	}
	if errors.Is(err, ledger.ErrNotFound) {
		return &Error{Kind: KindValidation, Msg: msg, Err: err}
	}
	return &Error{Kind: KindTransaction, Msg: msg, Err: err}
}

// KindOf extracts the classification from err, defaulting to
// KindTransaction for unclassified failures.
func KindOf(err error) Kind {
	var coordErr *Error
	if errors.As(err, &coordErr) {
		return coordErr.Kind
	}
	if errors.Is(err, ledger.ErrNotReady) {
		return KindNotReady
	}
	return KindTransaction
}
