package repository

import (
	"context"
	"database/sql"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransactionRepository implements ITransactionRepository and the append side of the ledger scope.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction appends an immutable record inside tx and fills in its ID.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": transaction.AccountID,
		"type":       transaction.Type,
		"amount":     transaction.Amount.String(),
	})
	log.Debug("Executing query to create a new transaction")

	query := `INSERT INTO transactions (account_id, target_account_id, atm_id, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := tx.QueryRowContext(ctx, query,
		transaction.AccountID,
		nullableInt(transaction.TargetAccountID),
		nullableInt(transaction.ATMID),
		transaction.Amount,
		string(transaction.Type),
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return translate(err)
	}
	return nil
}

// SumWithdrawnSince returns the total of withdraw records for the account at or after since.
// Transfers and deposits never count. An empty result sums to zero.
func (r *TransactionRepository) SumWithdrawnSince(ctx context.Context, tx *sql.Tx, accountID int, since time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE account_id = $1 AND type = $2 AND created_at >= $3`

	var total decimal.Decimal
	err := tx.QueryRowContext(ctx, query, accountID, string(model.TransactionWithdraw), since).Scan(&total)
	if err != nil {
		logger.Log.WithError(err).WithField("account_id", accountID).Error("Failed to sum withdrawals")
		return decimal.Zero, err
	}
	return total, nil
}

// GetTransactionsByAccountID retrieves the records owned by an account, newest first.
func (r *TransactionRepository) GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get transactions by account ID")

	query := `
		SELECT id, account_id, target_account_id, atm_id, amount, type, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by account ID")
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*model.Transaction, 0)
	for rows.Next() {
		var (
			t           model.Transaction
			target, atm sql.NullInt64
			kind        string
		)
		if err := rows.Scan(&t.ID, &t.AccountID, &target, &atm, &t.Amount, &kind, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		t.TargetAccountID = intPtr(target)
		t.ATMID = intPtr(atm)
		t.Type = model.TransactionType(kind)
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
