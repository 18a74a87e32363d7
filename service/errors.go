package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind tags every failure the ledger and its surrounding services can return.
type ErrorKind int

const (
	KindInvalidAmount ErrorKind = iota + 1
	KindInsufficientFunds
	KindDailyLimitExceeded
	KindATMInsufficientCash
	KindAccountNotFound
	KindATMNotFound
	KindInvalidTransfer
	KindDuplicateEmail
	KindDuplicateLocation
	KindStorage
)

var kindNames = map[ErrorKind]string{
	KindInvalidAmount:       "invalid_amount",
	KindInsufficientFunds:   "insufficient_funds",
	KindDailyLimitExceeded:  "daily_limit_exceeded",
	KindATMInsufficientCash: "atm_insufficient_cash",
	KindAccountNotFound:     "account_not_found",
	KindATMNotFound:         "atm_not_found",
	KindInvalidTransfer:     "invalid_transfer",
	KindDuplicateEmail:      "duplicate_email",
	KindDuplicateLocation:   "duplicate_location",
	KindStorage:             "storage_error",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// LedgerError is a typed failure. Only the fields relevant to Kind are set:
// Balance for InsufficientFunds and ATMInsufficientCash, Withdrawn and Limit
// for DailyLimitExceeded. Err holds the underlying cause, if any.
type LedgerError struct {
	Kind      ErrorKind
	Balance   decimal.Decimal
	Withdrawn decimal.Decimal
	Limit     decimal.Decimal
	Err       error
}

func (e *LedgerError) Error() string {
	switch e.Kind {
	case KindInvalidAmount:
		return "amount must be positive with at most 2 decimal places"
	case KindInsufficientFunds:
		return fmt.Sprintf("insufficient funds: current balance is $%s", e.Balance.StringFixed(2))
	case KindDailyLimitExceeded:
		return fmt.Sprintf("daily withdrawal limit of $%s exceeded: already withdrawn $%s in the last 24 hours",
			e.Limit.StringFixed(2), e.Withdrawn.StringFixed(2))
	case KindATMInsufficientCash:
		return "ATM does not have enough cash"
	case KindAccountNotFound:
		return "account not found"
	case KindATMNotFound:
		return "ATM not found"
	case KindInvalidTransfer:
		if errors.Is(e.Err, ErrInvalidAmount) {
			return "transfer amount must be positive with at most 2 decimal places"
		}
		return "cannot transfer money to the same account"
	case KindDuplicateEmail:
		return "an account with that email already exists"
	case KindDuplicateLocation:
		return "an ATM already exists at this location"
	case KindStorage:
		if e.Err != nil {
			return "storage error: " + e.Err.Error()
		}
		return "storage error"
	}
	return e.Kind.String()
}

func (e *LedgerError) Unwrap() error { return e.Err }

// Is matches any *LedgerError of the same kind, so the sentinels below work with errors.Is.
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is. Use errors.As to read the detail fields.
var (
	ErrInvalidAmount       = &LedgerError{Kind: KindInvalidAmount}
	ErrInsufficientFunds   = &LedgerError{Kind: KindInsufficientFunds}
	ErrDailyLimitExceeded  = &LedgerError{Kind: KindDailyLimitExceeded}
	ErrATMInsufficientCash = &LedgerError{Kind: KindATMInsufficientCash}
	ErrAccountNotFound     = &LedgerError{Kind: KindAccountNotFound}
	ErrATMNotFound         = &LedgerError{Kind: KindATMNotFound}
	ErrInvalidTransfer     = &LedgerError{Kind: KindInvalidTransfer}
	ErrDuplicateEmail      = &LedgerError{Kind: KindDuplicateEmail}
	ErrDuplicateLocation   = &LedgerError{Kind: KindDuplicateLocation}
	ErrStorage             = &LedgerError{Kind: KindStorage}
)

func storageError(err error) error {
	return &LedgerError{Kind: KindStorage, Err: err}
}

// asLedgerError passes typed failures through and wraps anything else as a storage error.
func asLedgerError(err error) error {
	var le *LedgerError
	if errors.As(err, &le) {
		return err
	}
	return storageError(err)
}
