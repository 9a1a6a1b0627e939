package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-api/internal/dto"
	"finance-api/internal/models"
	"finance-api/internal/repository"

	"go.uber.org/zap"
)

type TransactionService struct {
	txRepo      TransactionStore
	accountRepo AccountStore
	events      EventPublisher
	logger      *zap.Logger
}

func NewTransactionService(txRepo TransactionStore, accountRepo AccountStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:      txRepo,
		accountRepo: accountRepo,
		events:      noopPublisher{},
		logger:      logger,
	}
}

// WithEvents publishes a TransactionEvent after every successful write.
func (s *TransactionService) WithEvents(p EventPublisher) *TransactionService {
	s.events = p
	return s
}

// CreateTransaction records a transaction against one of the caller's accounts.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID int64, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	account, err := s.ownedAccount(ctx, userID, req.AccountID)
	if err != nil {
		return nil, err
	}

	category := models.DefaultCategory
	if req.Category != nil {
		category = *req.Category
	}

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: account.ID,
		Amount:    *req.Amount,
		IsDebit:   *req.IsDebit,
		Category:  category,
		Account: models.AccountView{
			ID:      account.ID,
			Balance: account.Balance,
		},
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Transaction created",
		zap.Int64("transaction_id", tx.ID),
		zap.Int64("user_id", userID),
		zap.Int64("account_id", tx.AccountID),
	)
	s.publish(ctx, models.TransactionCreated, tx)
	return tx, nil
}

// GetTransaction returns the caller's transaction. Other users' transactions
// are reported as not found.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	tx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	txs, err := s.txRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionService) ListAccountTransactions(ctx context.Context, userID, accountID int64) ([]*models.Transaction, error) {
	if _, err := s.ownedAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	txs, err := s.txRepo.ListByAccountID(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account transactions: %w", err)
	}
	return txs, nil
}

// UpdateTransaction applies patch to the caller's transaction. A patch that
// resubmits the stored amount is not written, category included; a patch
// without an amount is applied as is.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id int64, patch models.TransactionPatch) (*models.Transaction, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		s.logger.Warn("Rejected update of foreign transaction",
			zap.Int64("transaction_id", id),
			zap.Int64("user_id", userID),
		)
		return nil, ErrForbidden
	}

	if patch.KeepsAmount(current.Amount) {
		s.logger.Debug("Transaction amount unchanged, update skipped", zap.Int64("transaction_id", id))
		return current, nil
	}

	updated := patch.Apply(*current)
	if err := s.txRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.logger.Info("Transaction updated", zap.Int64("transaction_id", id), zap.Int64("user_id", userID))
	s.publish(ctx, models.TransactionUpdated, &updated)
	return &updated, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	current, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		s.logger.Warn("Rejected delete of foreign transaction",
			zap.Int64("transaction_id", id),
			zap.Int64("user_id", userID),
		)
		return ErrForbidden
	}

	if err := s.txRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.logger.Info("Transaction deleted", zap.Int64("transaction_id", id), zap.Int64("user_id", userID))
	s.publish(ctx, models.TransactionDeleted, current)
	return nil
}

func (s *TransactionService) load(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return tx, nil
}

func (s *TransactionService) ownedAccount(ctx context.Context, userID, accountID int64) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
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

// publish never fails the request; the write has already committed.
func (s *TransactionService) publish(ctx context.Context, eventType models.TransactionEventType, tx *models.Transaction) {
	event := models.NewTransactionEvent(eventType, tx, time.Now())
	if err := s.events.Publish(ctx, event.Key(), event); err != nil {
		s.logger.Warn("Failed to publish transaction event",
			zap.String("type", string(eventType)),
			zap.Int64("transaction_id", tx.ID),
			zap.Error(err),
		)
	}
}
