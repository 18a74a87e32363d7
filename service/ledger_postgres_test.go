package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"go-bank-ledger/repository"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectAccountForUpdate = regexp.QuoteMeta(`SELECT id, name, job, email, address, balance, created_at FROM accounts WHERE id = $1 FOR UPDATE`)
	selectATMForUpdate     = regexp.QuoteMeta(`SELECT id, location, balance, created_at FROM atms WHERE id = $1 FOR UPDATE`)
	updateAccountBalance   = regexp.QuoteMeta(`UPDATE accounts SET balance = $1 WHERE id = $2`)
	updateATMBalance       = regexp.QuoteMeta(`UPDATE atms SET balance = $1 WHERE id = $2`)
	sumWithdrawn           = `SELECT COALESCE\(SUM\(amount\), 0\) FROM transactions`
	insertTransaction      = `INSERT INTO transactions`
)

// decimalArg matches a driver value holding the same decimal, whatever its scale.
type decimalArg string

func (d decimalArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	got, err := decimal.NewFromString(s)
	return err == nil && got.Equal(decimal.RequireFromString(string(d)))
}

func accountRow(id int, balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "job", "email", "address", "balance", "created_at"}).
		AddRow(id, "Holder", "Tester", "holder@example.com", "1 Test Rd", balance, time.Now())
}

func atmRow(id int, balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "location", "balance", "created_at"}).
		AddRow(id, "Harbour", balance, time.Now())
}

func newPostgresLedger(t *testing.T) (*LedgerService, sqlmock.Sqlmock, *fakeClock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := newFakeClock()
	ledger := NewLedgerService(repository.NewPostgresStore(db), DefaultWithdrawalPolicy(), WithClock(clock.Now))
	return ledger, dbMock, clock
}

func TestLedgerService_Postgres_Deposit(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)
	atmID := 3

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(1).WillReturnRows(accountRow(1, "100.00"))
	dbMock.ExpectQuery(selectATMForUpdate).WithArgs(atmID).WillReturnRows(atmRow(atmID, "20.00"))
	dbMock.ExpectExec(updateAccountBalance).WithArgs(decimalArg("150"), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec(updateATMBalance).WithArgs(decimalArg("70"), atmID).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery(insertTransaction).
		WithArgs(1, nil, int64(atmID), decimalArg("50"), "deposit", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	dbMock.ExpectCommit()

	result, err := ledger.Deposit(context.Background(), 1, &atmID, dec("50"))

	require.NoError(t, err)
	assertDecimal(t, "150", result.Balance)
	assertDecimal(t, "70", *result.ATMBalance)
	assert.Equal(t, 11, result.Transaction.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLedgerService_Postgres_WithdrawDenied(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(1).WillReturnRows(accountRow(1, "9000.00"))
	dbMock.ExpectQuery(sumWithdrawn).
		WithArgs(1, "withdraw", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("4999.00"))
	dbMock.ExpectRollback()

	_, err := ledger.Withdraw(context.Background(), 1, nil, dec("2"))

	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLedgerService_Postgres_InsertFailureRollsBack(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)
	atmID := 2
	insertErr := errors.New("connection reset by peer")

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(1).WillReturnRows(accountRow(1, "500.00"))
	dbMock.ExpectQuery(selectATMForUpdate).WithArgs(atmID).WillReturnRows(atmRow(atmID, "500.00"))
	dbMock.ExpectQuery(sumWithdrawn).
		WithArgs(1, "withdraw", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))
	dbMock.ExpectExec(updateAccountBalance).WithArgs(decimalArg("400"), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec(updateATMBalance).WithArgs(decimalArg("400"), atmID).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery(insertTransaction).WillReturnError(insertErr)
	dbMock.ExpectRollback()

	_, err := ledger.Withdraw(context.Background(), 1, &atmID, dec("100"))

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, insertErr)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLedgerService_Postgres_TransferLocksInIDOrder(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(1).WillReturnRows(accountRow(1, "200.00"))
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(2).WillReturnRows(accountRow(2, "1000.00"))
	dbMock.ExpectExec(updateAccountBalance).WithArgs(decimalArg("700"), 2).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec(updateAccountBalance).WithArgs(decimalArg("500"), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectQuery(insertTransaction).
		WithArgs(2, int64(1), nil, decimalArg("300"), "transfer_out", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	dbMock.ExpectQuery(insertTransaction).
		WithArgs(1, int64(2), nil, decimalArg("300"), "transfer_in", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
	dbMock.ExpectCommit()

	result, err := ledger.Transfer(context.Background(), 2, 1, dec("300"))

	require.NoError(t, err)
	assertDecimal(t, "700", result.FromBalance)
	assertDecimal(t, "500", result.ToBalance)
	assert.Equal(t, 21, result.Outgoing.ID)
	assert.Equal(t, 22, result.Incoming.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLedgerService_Postgres_AccountNotFound(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "job", "email", "address", "balance", "created_at"}))
	dbMock.ExpectRollback()

	_, err := ledger.Deposit(context.Background(), 9, nil, dec("5"))

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLedgerService_Postgres_BeginAndCommitFailures(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		ledger, dbMock, _ := newPostgresLedger(t)
		dbMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		_, err := ledger.Deposit(context.Background(), 1, nil, dec("5"))

		assert.ErrorIs(t, err, ErrStorage)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("commit", func(t *testing.T) {
		ledger, dbMock, _ := newPostgresLedger(t)
		dbMock.ExpectBegin()
		dbMock.ExpectQuery(selectAccountForUpdate).WithArgs(1).WillReturnRows(accountRow(1, "0"))
		dbMock.ExpectExec(updateAccountBalance).WithArgs(decimalArg("5"), 1).WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectQuery(insertTransaction).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		dbMock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		_, err := ledger.Deposit(context.Background(), 1, nil, dec("5"))

		assert.ErrorIs(t, err, ErrStorage)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestLedgerService_Postgres_SubCentAmountsNeverReachTheDatabase(t *testing.T) {
	ledger, dbMock, _ := newPostgresLedger(t)
	ctx := context.Background()

	_, err := ledger.Deposit(ctx, 1, nil, dec("0.004"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ledger.Withdraw(ctx, 1, nil, dec("0.005"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ledger.Transfer(ctx, 1, 2, dec("10.001"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
