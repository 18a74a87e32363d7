package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDailyWithdrawalLimit caps withdrawals per account over one WithdrawalWindow.
	DefaultDailyWithdrawalLimit = 5000
	// WithdrawalWindow is the sliding period the limit applies to.
	WithdrawalWindow = 24 * time.Hour
	// AmountScale is the number of decimal places balances and amounts are stored with.
	AmountScale = 2
)

// ValidAmount reports whether amount is positive and a whole number of cents.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(AmountScale))
}

// WithdrawalRequest is the consistent snapshot a withdrawal decision is made on.
// ATMBalance is nil when the withdrawal does not go through a machine.
type WithdrawalRequest struct {
	AccountBalance decimal.Decimal
	ATMBalance     *decimal.Decimal
	Amount         decimal.Decimal
	WithdrawnToday decimal.Decimal
}

// WithdrawalPolicy decides whether a withdrawal may proceed. It holds no state
// besides the limit and performs no I/O.
type WithdrawalPolicy struct {
	DailyLimit decimal.Decimal
}

func NewWithdrawalPolicy(dailyLimit decimal.Decimal) WithdrawalPolicy {
	return WithdrawalPolicy{DailyLimit: dailyLimit}
}

func DefaultWithdrawalPolicy() WithdrawalPolicy {
	return NewWithdrawalPolicy(decimal.NewFromInt(DefaultDailyWithdrawalLimit))
}

// Evaluate returns nil when the withdrawal is allowed, otherwise the first
// violated rule in this order: amount, account funds, daily limit, ATM cash.
func (p WithdrawalPolicy) Evaluate(req WithdrawalRequest) error {
	if !ValidAmount(req.Amount) {
		return ErrInvalidAmount
	}
	if req.AccountBalance.LessThan(req.Amount) {
		return &LedgerError{Kind: KindInsufficientFunds, Balance: req.AccountBalance}
	}
	if req.WithdrawnToday.Add(req.Amount).GreaterThan(p.DailyLimit) {
		return &LedgerError{Kind: KindDailyLimitExceeded, Withdrawn: req.WithdrawnToday, Limit: p.DailyLimit}
	}
	if req.ATMBalance != nil && req.ATMBalance.LessThan(req.Amount) {
		return &LedgerError{Kind: KindATMInsufficientCash, Balance: *req.ATMBalance}
	}
	return nil
}
