package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failure modes of the sale ledger. Every
// externally visible operation fails with exactly one of these.
type ErrorKind string

const (
	// ErrPhaseClosed is returned for a deposit outside the enrollment window.
	ErrPhaseClosed ErrorKind = "PHASE_CLOSED"
	// ErrPhaseNotReached is returned for a release before the enrollment deadline.
	ErrPhaseNotReached            ErrorKind = "PHASE_NOT_REACHED"
	ErrCapExceeded                ErrorKind = "CAP_EXCEEDED"
	ErrUnknownAsset               ErrorKind = "UNKNOWN_ASSET"
	ErrOraclePriceUnavailable     ErrorKind = "ORACLE_PRICE_UNAVAILABLE"
	ErrPaymentMismatch            ErrorKind = "PAYMENT_MISMATCH"
	ErrPendingEntitlement         ErrorKind = "PENDING_ENTITLEMENT_NOT_RESOLVED"
	ErrInsufficientDepositBalance ErrorKind = "INSUFFICIENT_DEPOSIT_BALANCE"
	ErrInsufficientIssuedBalance  ErrorKind = "INSUFFICIENT_ISSUED_BALANCE"
	ErrPermissionDenied           ErrorKind = "PERMISSION_DENIED"
	ErrPayoutUnsupported          ErrorKind = "PAYOUT_UNSUPPORTED"
	ErrExternalCallFailed         ErrorKind = "EXTERNAL_CALL_FAILED"
)

func (k ErrorKind) String() string {
	return string(k)
}

// Error is the domain error type carried across the service boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed.
// Returns ErrExternalCallFailed for errors outside the domain set.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrExternalCallFailed
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.Kind == kind
}
