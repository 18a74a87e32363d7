package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Job       string          `json:"job"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
