package repository

import (
	"context"
	"database/sql"
	"fmt"
	"go-bank-ledger/model"
	"time"

	"github.com/shopspring/decimal"
)

// PostgresStore runs ledger scopes as database transactions. Rows read through
// the scope are locked with SELECT ... FOR UPDATE until commit or rollback.
type PostgresStore struct {
	DB           *sql.DB
	accounts     *AccountRepository
	atms         *ATMRepository
	transactions *TransactionRepository
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		DB:           db,
		accounts:     NewAccountRepository(db),
		atms:         NewATMRepository(db),
		transactions: NewTransactionRepository(db),
	}
}

// NewPostgresBackend wires every repository contract onto one connection pool.
func NewPostgresBackend(db *sql.DB) Backend {
	store := NewPostgresStore(db)
	return Backend{
		Store:        store,
		Accounts:     store.accounts,
		ATMs:         store.atms,
		Transactions: store.transactions,
	}
}

func (s *PostgresStore) WithinScope(ctx context.Context, fn func(Scope) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&postgresScope{tx: tx, store: s}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

type postgresScope struct {
	tx    *sql.Tx
	store *PostgresStore
}

func (p *postgresScope) GetAccountForUpdate(ctx context.Context, accountID int) (*model.Account, error) {
	return p.store.accounts.GetAccountForUpdate(ctx, p.tx, accountID)
}

func (p *postgresScope) GetATMForUpdate(ctx context.Context, atmID int) (*model.ATM, error) {
	return p.store.atms.GetATMForUpdate(ctx, p.tx, atmID)
}

func (p *postgresScope) UpdateAccountBalance(ctx context.Context, accountID int, newBalance decimal.Decimal) error {
	return p.store.accounts.UpdateAccountBalance(ctx, p.tx, accountID, newBalance)
}

func (p *postgresScope) UpdateATMBalance(ctx context.Context, atmID int, newBalance decimal.Decimal) error {
	return p.store.atms.UpdateATMBalance(ctx, p.tx, atmID, newBalance)
}

func (p *postgresScope) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	return p.store.transactions.CreateTransaction(ctx, p.tx, transaction)
}

func (p *postgresScope) SumWithdrawnSince(ctx context.Context, accountID int, since time.Time) (decimal.Decimal, error) {
	return p.store.transactions.SumWithdrawnSince(ctx, p.tx, accountID, since)
}

var _ Store = (*PostgresStore)(nil)
