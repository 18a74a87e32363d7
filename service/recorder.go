package service

import (
	"context"
	"time"

	"go-bank-ledger/model"
	"go-bank-ledger/repository"

	"github.com/shopspring/decimal"
)

// Recorder appends transaction records inside a ledger scope and computes
// rolling withdrawal totals. Records are stamped with the recorder's clock.
type Recorder struct {
	now func() time.Time
}

func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Record appends one record owned by accountID. atmID may be nil.
func (r *Recorder) Record(ctx context.Context, scope repository.Scope, accountID int, atmID *int, amount decimal.Decimal, kind model.TransactionType) (*model.Transaction, error) {
	t := &model.Transaction{
		AccountID: accountID,
		ATMID:     atmID,
		Amount:    amount,
		Type:      kind,
		CreatedAt: r.now().UTC(),
	}
	if err := scope.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RecordTransferPair appends the transfer_out leg on fromID and the transfer_in
// leg on toID, each naming the other as target. Both land in the same scope, so
// either both commit or neither does.
func (r *Recorder) RecordTransferPair(ctx context.Context, scope repository.Scope, fromID, toID int, amount decimal.Decimal) (out, in *model.Transaction, err error) {
	at := r.now().UTC()
	target, source := toID, fromID

	out = &model.Transaction{
		AccountID:       fromID,
		TargetAccountID: &target,
		Amount:          amount,
		Type:            model.TransactionTransferOut,
		CreatedAt:       at,
	}
	if err := scope.CreateTransaction(ctx, out); err != nil {
		return nil, nil, err
	}

	in = &model.Transaction{
		AccountID:       toID,
		TargetAccountID: &source,
		Amount:          amount,
		Type:            model.TransactionTransferIn,
		CreatedAt:       at,
	}
	if err := scope.CreateTransaction(ctx, in); err != nil {
		return nil, nil, err
	}
	return out, in, nil
}

// WithdrawnSince sums the account's withdraw records created at or after since.
// Deposits and transfers never count. Never negative; zero when nothing matches.
func (r *Recorder) WithdrawnSince(ctx context.Context, scope repository.Scope, accountID int, since time.Time) (decimal.Decimal, error) {
	total, err := scope.SumWithdrawnSince(ctx, accountID, since)
	if err != nil {
		return decimal.Zero, err
	}
	if total.IsNegative() {
		return decimal.Zero, nil
	}
	return total, nil
}

// WithdrawnToday is WithdrawnSince over the trailing WithdrawalWindow.
func (r *Recorder) WithdrawnToday(ctx context.Context, scope repository.Scope, accountID int) (decimal.Decimal, error) {
	return r.WithdrawnSince(ctx, scope, accountID, r.now().UTC().Add(-WithdrawalWindow))
}
