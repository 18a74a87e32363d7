// file: service/account_service.go

package service

import (
	"context"
	"errors"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

// AccountService manages account details. Balances are never written here;
// they change only through LedgerService.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

// NewAccountService accepts a nil cache, in which case every read goes to the repository.
func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// CreateAccount opens an account with a zero balance.
func (s *AccountService) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	account := &model.Account{
		Name:    req.Name,
		Job:     req.Job,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, s.translate(err)
	}

	invalidateAccounts(ctx, s.cache)
	logger.Log.WithField("account_id", account.ID).Info("Account created")
	return account, nil
}

// GetAccount reads a single account, cache-aside.
func (s *AccountService) GetAccount(ctx context.Context, accountID int) (*model.Account, error) {
	key := accountCacheKey(accountID)

	var cached model.Account
	if cacheGet(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, s.translate(err)
	}

	cacheSet(ctx, s.cache, key, account)
	return account, nil
}

// FindByEmail looks an account up by exact email. It always hits the repository.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, s.translate(err)
	}
	return account, nil
}

// ListAccounts lists every account ordered by id, cache-aside.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	var cached []*model.Account
	if cacheGet(ctx, s.cache, allAccountsCacheKey, &cached) {
		return cached, nil
	}

	accounts, err := s.repo.GetAllAccounts(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	cacheSet(ctx, s.cache, allAccountsCacheKey, accounts)
	return accounts, nil
}

// UpdateAccount applies the non-nil fields of req and returns the stored account.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID int, req model.UpdateAccountRequest) (*model.Account, error) {
	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, s.translate(err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Job != nil {
		account.Job = *req.Job
	}
	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.Address != nil {
		account.Address = *req.Address
	}

	if err := s.repo.UpdateAccountDetails(ctx, account); err != nil {
		return nil, s.translate(err)
	}

	invalidateAccounts(ctx, s.cache, accountID)
	logger.Log.WithField("account_id", accountID).Info("Account details updated")
	return account, nil
}

func (s *AccountService) translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return &LedgerError{Kind: KindDuplicateEmail, Err: err}
	default:
		return storageError(err)
	}
}
