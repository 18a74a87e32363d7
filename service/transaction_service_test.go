// service/transaction_service_test.go
package service

import (
	"context"
	"errors"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransactionRepository is a mock for ITransactionRepository.
type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) GetTransactionsByAccountID(ctx context.Context, accountID int) ([]*model.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func TestTransactionService_ListTransactionsForAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		transactions := new(MockTransactionRepository)
		svc := NewTransactionService(accounts, transactions)

		expected := []*model.Transaction{
			{ID: 2, AccountID: 1, Amount: dec("10"), Type: model.TransactionWithdraw},
			{ID: 1, AccountID: 1, Amount: dec("50"), Type: model.TransactionDeposit},
		}
		accounts.On("GetAccountByID", ctx, 1).Return(sampleAccount(), nil).Once()
		transactions.On("GetTransactionsByAccountID", ctx, 1).Return(expected, nil).Once()

		got, err := svc.ListTransactionsForAccount(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		accounts.AssertExpectations(t)
		transactions.AssertExpectations(t)
	})

	t.Run("unknown account", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		transactions := new(MockTransactionRepository)
		svc := NewTransactionService(accounts, transactions)

		accounts.On("GetAccountByID", ctx, 8).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.ListTransactionsForAccount(ctx, 8)

		assert.ErrorIs(t, err, ErrAccountNotFound)
		transactions.AssertNotCalled(t, "GetTransactionsByAccountID", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		transactions := new(MockTransactionRepository)
		svc := NewTransactionService(accounts, transactions)
		dbErr := errors.New("db error")

		accounts.On("GetAccountByID", ctx, 1).Return(sampleAccount(), nil).Once()
		transactions.On("GetTransactionsByAccountID", ctx, 1).Return(nil, dbErr).Once()

		_, err := svc.ListTransactionsForAccount(ctx, 1)

		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, dbErr)
	})
}
