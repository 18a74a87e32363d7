package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdraw    TransactionType = "withdraw"
	TransactionTransferIn  TransactionType = "transfer_in"
	TransactionTransferOut TransactionType = "transfer_out"
)

// Valid reports whether t is one of the four known record types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdraw, TransactionTransferIn, TransactionTransferOut:
		return true
	}
	return false
}

// Transaction is an immutable ledger record. Amount is always positive;
// the direction is implied by Type.
type Transaction struct {
	ID              int             `json:"id"`
	AccountID       int             `json:"account_id"`
	TargetAccountID *int            `json:"target_account_id,omitempty"`
	ATMID           *int            `json:"atm_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type"`
	CreatedAt       time.Time       `json:"created_at"`
}
