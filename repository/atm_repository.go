// file: repository/atm_repository.go

package repository

import (
	"context"
	"database/sql"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ATMRepository implements IATMRepository and the ATM half of the ledger scope.
type ATMRepository struct {
	DB *sql.DB
}

// NewATMRepository creates a new ATMRepository.
func NewATMRepository(db *sql.DB) *ATMRepository {
	return &ATMRepository{DB: db}
}

func scanATM(row rowScanner) (*model.ATM, error) {
	var atm model.ATM
	if err := row.Scan(&atm.ID, &atm.Location, &atm.Balance, &atm.CreatedAt); err != nil {
		return nil, err
	}
	return &atm, nil
}

// CreateATM inserts a new ATM with an empty cash pool.
func (r *ATMRepository) CreateATM(ctx context.Context, atm *model.ATM) error {
	log := logger.Log.WithField("location", atm.Location)
	log.Info("Executing query to create a new ATM")

	query := `INSERT INTO atms (location) VALUES ($1) RETURNING id, balance, created_at`
	err := r.DB.QueryRowContext(ctx, query, atm.Location).Scan(&atm.ID, &atm.Balance, &atm.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create ATM query")
		return translate(err)
	}
	return nil
}

// GetATMByID retrieves a single ATM.
func (r *ATMRepository) GetATMByID(ctx context.Context, atmID int) (*model.ATM, error) {
	query := `SELECT id, location, balance, created_at FROM atms WHERE id = $1`
	atm, err := scanATM(r.DB.QueryRowContext(ctx, query, atmID))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("atm_id", atmID).Error("Failed to execute get ATM query")
		}
		return nil, translate(err)
	}
	return atm, nil
}

// GetAllATMs lists every ATM ordered by id.
func (r *ATMRepository) GetAllATMs(ctx context.Context) ([]*model.ATM, error) {
	query := `SELECT id, location, balance, created_at FROM atms ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all ATMs")
		return nil, err
	}
	defer rows.Close()

	atms := make([]*model.ATM, 0)
	for rows.Next() {
		atm, err := scanATM(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan ATM row")
			return nil, err
		}
		atms = append(atms, atm)
	}
	return atms, rows.Err()
}

// GetATMForUpdate reads and row-locks an ATM inside tx.
func (r *ATMRepository) GetATMForUpdate(ctx context.Context, tx *sql.Tx, atmID int) (*model.ATM, error) {
	log := logger.Log.WithField("atm_id", atmID)
	log.Debug("Executing query to get ATM for update")

	query := `SELECT id, location, balance, created_at FROM atms WHERE id = $1 FOR UPDATE`
	atm, err := scanATM(tx.QueryRowContext(ctx, query, atmID))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("ATM not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get ATM for update query")
		}
		return nil, translate(err)
	}
	return atm, nil
}

// UpdateATMBalance sets the ATM cash pool inside tx.
func (r *ATMRepository) UpdateATMBalance(ctx context.Context, tx *sql.Tx, atmID int, newBalance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"atm_id":      atmID,
		"new_balance": newBalance.String(),
	})
	log.Debug("Executing query to update ATM balance")

	query := `UPDATE atms SET balance = $1 WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, newBalance, atmID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update ATM balance query")
		return translate(err)
	}
	return expectOneRow(res)
}
