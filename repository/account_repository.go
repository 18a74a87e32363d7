package repository

import (
	"context"
	"database/sql"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const accountColumns = `id, name, job, email, address, balance, created_at`

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	var acc model.Account
	if err := row.Scan(&acc.ID, &acc.Name, &acc.Job, &acc.Email, &acc.Address, &acc.Balance, &acc.CreatedAt); err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount adds a new account to the database. The balance starts at zero.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithField("email", account.Email)
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (name, job, email, address) VALUES ($1, $2, $3, $4) RETURNING id, balance, created_at`
	err := r.DB.QueryRowContext(ctx, query, account.Name, account.Job, account.Email, account.Address).
		Scan(&account.ID, &account.Balance, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return translate(err)
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(ctx context.Context, accountID int) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("account_id", accountID).Error("Failed to execute get account query")
		}
		return nil, translate(err)
	}
	return acc, nil
}

// GetAccountByEmail looks an account up by exact, case-sensitive email.
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("email", email).Error("Failed to execute get account by email query")
		}
		return nil, translate(err)
	}
	return acc, nil
}

// GetAllAccounts retrieves all accounts ordered by id.
func (r *AccountRepository) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	log := logger.Log
	log.Info("Executing query to get all accounts")

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*model.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// UpdateAccountDetails rewrites the descriptive fields. Balance is left untouched.
func (r *AccountRepository) UpdateAccountDetails(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithField("account_id", account.ID)
	log.Info("Executing query to update account details")

	query := `UPDATE accounts SET name = $1, job = $2, email = $3, address = $4 WHERE id = $5`
	res, err := r.DB.ExecContext(ctx, query, account.Name, account.Job, account.Email, account.Address, account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account details query")
		return translate(err)
	}
	return expectOneRow(res)
}

func (r *AccountRepository) GetAccountForUpdate(ctx context.Context, tx *sql.Tx, accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Debug("Executing query to get account for update")

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	acc, err := scanAccount(tx.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, translate(err)
	}
	return acc, nil
}

func (r *AccountRepository) UpdateAccountBalance(ctx context.Context, tx *sql.Tx, accountID int, newBalance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": newBalance.String(),
	})
	log.Debug("Executing query to update account balance")

	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, newBalance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return translate(err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
