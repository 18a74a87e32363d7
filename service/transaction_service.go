package service

import (
	"context"
	"errors"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

// TransactionService reads the transaction log.
type TransactionService struct {
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
}

func NewTransactionService(accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// ListTransactionsForAccount retrieves the records owned by an account, newest first.
func (s *TransactionService) ListTransactionsForAccount(ctx context.Context, accountID int) ([]*model.Transaction, error) {
	if _, err := s.accountRepo.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, storageError(err)
	}

	transactions, err := s.transactionRepo.GetTransactionsByAccountID(ctx, accountID)
	if err != nil {
		logger.Log.WithError(err).WithField("account_id", accountID).Error("Could not list transactions")
		return nil, storageError(err)
	}
	return transactions, nil
}
