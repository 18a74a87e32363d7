package repository

import (
	"context"
	"time"

	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
)

// Store opens atomic scopes over the ledger tables. Every read and write made
// through the Scope handed to fn commits together when fn returns nil, and is
// discarded entirely when fn returns an error.
type Store interface {
	WithinScope(ctx context.Context, fn func(Scope) error) error
}

// Scope is the unit of work used by the ledger engine. The ForUpdate reads lock
// the row until the scope ends, so a read-check-write sequence on the same row
// observes no intervening external write.
type Scope interface {
	GetAccountForUpdate(ctx context.Context, accountID int) (*model.Account, error)
	GetATMForUpdate(ctx context.Context, atmID int) (*model.ATM, error)
	UpdateAccountBalance(ctx context.Context, accountID int, newBalance decimal.Decimal) error
	UpdateATMBalance(ctx context.Context, atmID int, newBalance decimal.Decimal) error
	// CreateTransaction appends a record and fills in its ID.
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	// SumWithdrawnSince sums withdraw amounts for the account created at or after since.
	SumWithdrawnSince(ctx context.Context, accountID int, since time.Time) (decimal.Decimal, error)
}

// IAccountRepository defines the contract for account reads and detail writes.
// Balances are never written through it.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, accountID int) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAllAccounts(ctx context.Context) ([]*model.Account, error)
	UpdateAccountDetails(ctx context.Context, account *model.Account) error
}

// IATMRepository defines the contract for ATM registration and lookup.
type IATMRepository interface {
	CreateATM(ctx context.Context, atm *model.ATM) error
	GetATMByID(ctx context.Context, atmID int) (*model.ATM, error)
	GetAllATMs(ctx context.Context) ([]*model.ATM, error)
}

// ITransactionRepository defines the contract for reading the transaction log.
type ITransactionRepository interface {
	GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*model.Transaction, error)
}

// Backend bundles one storage implementation behind every repository contract.
type Backend struct {
	Store        Store
	Accounts     IAccountRepository
	ATMs         IATMRepository
	Transactions ITransactionRepository
}
