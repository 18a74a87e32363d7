// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CreateAccountRequest defines the payload for opening a new account.
type CreateAccountRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Job     string `json:"job" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=255"`
}

// UpdateAccountRequest is a partial update; nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Job     *string `json:"job" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
}

// CreateATMRequest defines the payload for registering an ATM.
type CreateATMRequest struct {
	Location string `json:"location" validate:"required,min=1,max=255"`
}

// CashRequest is the body of a deposit or withdrawal. ATMID is optional;
// without it the operation does not touch any machine's cash.
type CashRequest struct {
	Amount decimal.Decimal `json:"amount"`
	ATMID  *int            `json:"atm_id" validate:"omitempty,gt=0"`
}

// TransferRequest moves value between two accounts.
type TransferRequest struct {
	FromAccountID int             `json:"from_account_id" validate:"required,gt=0"`
	ToAccountID   int             `json:"to_account_id" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
}
