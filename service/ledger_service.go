package service

import (
	"context"
	"errors"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OperationResult is returned by Deposit and Withdraw.
type OperationResult struct {
	AccountID   int                `json:"account_id"`
	Balance     decimal.Decimal    `json:"balance"`
	ATMID       *int               `json:"atm_id,omitempty"`
	ATMBalance  *decimal.Decimal   `json:"atm_balance,omitempty"`
	Transaction *model.Transaction `json:"transaction"`
}

// TransferResult is returned by Transfer.
type TransferResult struct {
	FromAccountID int                `json:"from_account_id"`
	ToAccountID   int                `json:"to_account_id"`
	Amount        decimal.Decimal    `json:"amount"`
	FromBalance   decimal.Decimal    `json:"from_balance"`
	ToBalance     decimal.Decimal    `json:"to_balance"`
	Outgoing      *model.Transaction `json:"outgoing"`
	Incoming      *model.Transaction `json:"incoming"`
}

// LedgerService applies deposits, withdrawals and transfers. Each call runs in
// a single store scope: balance reads, the policy decision, balance writes and
// the transaction records commit together or not at all.
//
// Rows are always locked in the same order: accounts by ascending id, then the ATM.
type LedgerService struct {
	store    repository.Store
	policy   WithdrawalPolicy
	recorder *Recorder
	cache    ICacheClient
	now      func() time.Time
}

type LedgerOption func(*LedgerService)

// WithClock replaces time.Now for record timestamps and the rolling window.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) { s.now = now }
}

// WithCache makes the service drop cached account views after each commit.
func WithCache(cache ICacheClient) LedgerOption {
	return func(s *LedgerService) { s.cache = cache }
}

func NewLedgerService(store repository.Store, policy WithdrawalPolicy, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		store:  store,
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recorder = NewRecorder(s.now)
	return s
}

// Deposit credits the account and, when atmID is set, the ATM's cash pool by
// the same amount, and records one deposit.
func (s *LedgerService) Deposit(ctx context.Context, accountID int, atmID *int, amount decimal.Decimal) (*OperationResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"operation":  "deposit",
		"account_id": accountID,
		"atm_id":     atmID,
		"amount":     amount.String(),
	})

	if !ValidAmount(amount) {
		log.Warn("Deposit rejected: invalid amount")
		return nil, ErrInvalidAmount
	}

	log.Info("Starting deposit")

	var result *OperationResult
	err := s.store.WithinScope(ctx, func(scope repository.Scope) error {
		account, atm, err := s.lockAccountAndATM(ctx, scope, accountID, atmID)
		if err != nil {
			return err
		}

		result = &OperationResult{AccountID: account.ID, Balance: account.Balance.Add(amount)}
		if err := scope.UpdateAccountBalance(ctx, account.ID, result.Balance); err != nil {
			return err
		}
		if atm != nil {
			atmBalance := atm.Balance.Add(amount)
			if err := scope.UpdateATMBalance(ctx, atm.ID, atmBalance); err != nil {
				return err
			}
			result.ATMID, result.ATMBalance = &atm.ID, &atmBalance
		}

		result.Transaction, err = s.recorder.Record(ctx, scope, account.ID, atmID, amount, model.TransactionDeposit)
		return err
	})
	if err != nil {
		return nil, s.fail(log, err)
	}

	invalidateAccounts(ctx, s.cache, accountID)
	log.WithField("new_balance", result.Balance.String()).Info("Deposit completed successfully")
	return result, nil
}

// Withdraw debits the account and, when atmID is set, the ATM's cash pool,
// after the withdrawal policy approves the amount against a snapshot read in
// the same scope.
func (s *LedgerService) Withdraw(ctx context.Context, accountID int, atmID *int, amount decimal.Decimal) (*OperationResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"operation":  "withdraw",
		"account_id": accountID,
		"atm_id":     atmID,
		"amount":     amount.String(),
	})

	if !ValidAmount(amount) {
		log.Warn("Withdrawal rejected: invalid amount")
		return nil, ErrInvalidAmount
	}

	log.Info("Starting withdrawal")

	var result *OperationResult
	err := s.store.WithinScope(ctx, func(scope repository.Scope) error {
		account, atm, err := s.lockAccountAndATM(ctx, scope, accountID, atmID)
		if err != nil {
			return err
		}

		withdrawn, err := s.recorder.WithdrawnToday(ctx, scope, account.ID)
		if err != nil {
			return err
		}

		req := WithdrawalRequest{
			AccountBalance: account.Balance,
			Amount:         amount,
			WithdrawnToday: withdrawn,
		}
		if atm != nil {
			req.ATMBalance = &atm.Balance
		}
		if err := s.policy.Evaluate(req); err != nil {
			return err
		}

		result = &OperationResult{AccountID: account.ID, Balance: account.Balance.Sub(amount)}
		if err := scope.UpdateAccountBalance(ctx, account.ID, result.Balance); err != nil {
			return err
		}
		if atm != nil {
			atmBalance := atm.Balance.Sub(amount)
			if err := scope.UpdateATMBalance(ctx, atm.ID, atmBalance); err != nil {
				return err
			}
			result.ATMID, result.ATMBalance = &atm.ID, &atmBalance
		}

		result.Transaction, err = s.recorder.Record(ctx, scope, account.ID, atmID, amount, model.TransactionWithdraw)
		return err
	})
	if err != nil {
		return nil, s.fail(log, err)
	}

	invalidateAccounts(ctx, s.cache, accountID)
	log.WithField("new_balance", result.Balance.String()).Info("Withdrawal completed successfully")
	return result, nil
}

// Transfer moves amount from one account to another and records the transfer
// pair. Transfers are not subject to the daily withdrawal limit or ATM cash.
func (s *LedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID int, amount decimal.Decimal) (*TransferResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"operation":       "transfer",
		"from_account_id": fromAccountID,
		"to_account_id":   toAccountID,
		"amount":          amount.String(),
	})

	if fromAccountID == toAccountID {
		log.Warn("Transfer rejected: same account")
		return nil, ErrInvalidTransfer
	}
	if !ValidAmount(amount) {
		log.Warn("Transfer rejected: invalid amount")
		return nil, &LedgerError{Kind: KindInvalidTransfer, Err: ErrInvalidAmount}
	}

	log.Info("Starting money transfer process")

	var result *TransferResult
	err := s.store.WithinScope(ctx, func(scope repository.Scope) error {
		first, second := fromAccountID, toAccountID
		if second < first {
			first, second = second, first
		}
		locked := make(map[int]*model.Account, 2)
		for _, id := range []int{first, second} {
			acc, err := s.lockAccount(ctx, scope, id)
			if err != nil {
				return err
			}
			locked[id] = acc
		}
		from, to := locked[fromAccountID], locked[toAccountID]

		if from.Balance.LessThan(amount) {
			return &LedgerError{Kind: KindInsufficientFunds, Balance: from.Balance}
		}

		result = &TransferResult{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        amount,
			FromBalance:   from.Balance.Sub(amount),
			ToBalance:     to.Balance.Add(amount),
		}
		if err := scope.UpdateAccountBalance(ctx, from.ID, result.FromBalance); err != nil {
			return err
		}
		if err := scope.UpdateAccountBalance(ctx, to.ID, result.ToBalance); err != nil {
			return err
		}

		var err error
		result.Outgoing, result.Incoming, err = s.recorder.RecordTransferPair(ctx, scope, from.ID, to.ID, amount)
		return err
	})
	if err != nil {
		return nil, s.fail(log, err)
	}

	invalidateAccounts(ctx, s.cache, fromAccountID, toAccountID)
	log.WithFields(logrus.Fields{
		"from_balance": result.FromBalance.String(),
		"to_balance":   result.ToBalance.String(),
	}).Info("Transfer completed successfully")
	return result, nil
}

func (s *LedgerService) lockAccount(ctx context.Context, scope repository.Scope, accountID int) (*model.Account, error) {
	acc, err := scope.GetAccountForUpdate(ctx, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	return acc, err
}

func (s *LedgerService) lockAccountAndATM(ctx context.Context, scope repository.Scope, accountID int, atmID *int) (*model.Account, *model.ATM, error) {
	account, err := s.lockAccount(ctx, scope, accountID)
	if err != nil {
		return nil, nil, err
	}
	if atmID == nil {
		return account, nil, nil
	}
	atm, err := scope.GetATMForUpdate(ctx, *atmID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrATMNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return account, atm, nil
}

// fail logs the outcome at the level its kind deserves and returns a typed error.
func (s *LedgerService) fail(log *logrus.Entry, err error) error {
	err = asLedgerError(err)
	if errors.Is(err, ErrStorage) {
		log.WithError(err).Error("Ledger operation rolled back")
	} else {
		log.WithField("reason", err.Error()).Warn("Ledger operation denied")
	}
	return err
}
