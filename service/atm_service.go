package service

import (
	"context"
	"errors"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

// ATMService registers and lists ATMs. Cash moves only through LedgerService.
type ATMService struct {
	repo repository.IATMRepository
}

func NewATMService(repo repository.IATMRepository) *ATMService {
	return &ATMService{repo: repo}
}

// CreateATM registers a machine with an empty cash pool. Locations are unique.
func (s *ATMService) CreateATM(ctx context.Context, location string) (*model.ATM, error) {
	atm := &model.ATM{Location: location}
	if err := s.repo.CreateATM(ctx, atm); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &LedgerError{Kind: KindDuplicateLocation, Err: err}
		}
		return nil, storageError(err)
	}
	logger.Log.WithField("atm_id", atm.ID).Info("ATM registered")
	return atm, nil
}

func (s *ATMService) GetATM(ctx context.Context, atmID int) (*model.ATM, error) {
	atm, err := s.repo.GetATMByID(ctx, atmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrATMNotFound
		}
		return nil, storageError(err)
	}
	return atm, nil
}

func (s *ATMService) ListATMs(ctx context.Context) ([]*model.ATM, error) {
	atms, err := s.repo.GetAllATMs(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return atms, nil
}
