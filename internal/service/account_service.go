package service

import (
	"context"
	"errors"
	"fmt"

	"finance-api/internal/dto"
	"finance-api/internal/models"
	"finance-api/internal/repository"

	"go.uber.org/zap"
)

type AccountService struct {
	accountRepo AccountStore
	logger      *zap.Logger
}

func NewAccountService(accountRepo AccountStore, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID int64, req *dto.CreateAccountRequest) (*models.Account, error) {
	name := sanitizeName(req.Name)
	if name == "" {
		return nil, ErrInvalidAccountName
	}

	account := &models.Account{
		UserID:  userID,
		Name:    name,
		Balance: req.Balance,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account created", zap.Int64("account_id", account.ID), zap.Int64("user_id", userID))
	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, userID, id int64) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != userID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]*models.Account, error) {
	accounts, err := s.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
