package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ATM is a physical cash machine. Balance is the cash it currently holds.
type ATM struct {
	ID        int             `json:"id"`
	Location  string          `json:"location"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
