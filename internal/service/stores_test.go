package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"finance-api/internal/models"
	"finance-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

// -- testify mocks --

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountStore) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *mockAccountStore) ListByUserID(ctx context.Context, userID int64) ([]*models.Account, error) {
	args := m.Called(ctx, userID)
	accounts, _ := args.Get(0).([]*models.Account)
	return accounts, args.Error(1)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionStore) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*models.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionStore) ListByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	args := m.Called(ctx, userID)
	txs, _ := args.Get(0).([]*models.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionStore) ListByAccountID(ctx context.Context, userID, accountID int64) ([]*models.Transaction, error) {
	args := m.Called(ctx, userID, accountID)
	txs, _ := args.Get(0).([]*models.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionStore) Update(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionStore) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// -- in-memory store for behavioural tests --

// memoryStore keeps accounts and transactions in maps and mirrors the
// scoping rules of the postgres repositories.
type memoryStore struct {
	mu           sync.Mutex
	nextID       int64
	accounts     map[int64]models.Account
	transactions map[int64]models.Transaction
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:     make(map[int64]models.Account),
		transactions: make(map[int64]models.Transaction),
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memoryAccounts struct{ *memoryStore }

type memoryTransactions struct{ *memoryStore }

func (m memoryAccounts) Create(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.id()
	account.CreatedAt = time.Now()
	m.accounts[account.ID] = *account
	return nil
}

func (m memoryAccounts) GetByID(_ context.Context, id int64) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (m memoryAccounts) ListByUserID(_ context.Context, userID int64) ([]*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Account{}
	for _, a := range m.accounts {
		if a.UserID == userID {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryTransactions) Create(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx.ID = m.id()
	tx.CreatedAt = time.Now()
	m.transactions[tx.ID] = *tx
	return nil
}

func (m memoryTransactions) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tx, nil
}

func (m memoryTransactions) filter(keep func(models.Transaction) bool) []*models.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Transaction{}
	for _, tx := range m.transactions {
		if keep(tx) {
			tx := tx
			out = append(out, &tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m memoryTransactions) ListByUserID(_ context.Context, userID int64) ([]*models.Transaction, error) {
	return m.filter(func(tx models.Transaction) bool { return tx.UserID == userID }), nil
}

func (m memoryTransactions) ListByAccountID(_ context.Context, userID, accountID int64) ([]*models.Transaction, error) {
	return m.filter(func(tx models.Transaction) bool {
		return tx.UserID == userID && tx.AccountID == accountID
	}), nil
}

func (m memoryTransactions) Update(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.transactions[tx.ID]
	if !ok || stored.UserID != tx.UserID {
		return repository.ErrNotFound
	}
	stored.Amount = tx.Amount
	stored.Category = tx.Category
	m.transactions[tx.ID] = stored
	return nil
}

func (m memoryTransactions) Delete(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.transactions[id]
	if !ok || stored.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}
