package service

import (
	"context"
	"errors"
	"testing"

	"finance-api/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccountService_CreateAndGet(t *testing.T) {
	store := newMemoryStore()
	svc := NewAccountService(memoryAccounts{store}, zap.NewNop())

	account, err := svc.CreateAccount(context.Background(), alice, &dto.CreateAccountRequest{
		Name:    "  Savings  ",
		Balance: decimal.RequireFromString("250.00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, "Savings", account.Name)

	fetched, err := svc.GetAccount(context.Background(), alice, account.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(decimal.NewFromInt(250)))

	_, err = svc.GetAccount(context.Background(), bob, account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountService_ListScopedToUser(t *testing.T) {
	store := newMemoryStore()
	svc := NewAccountService(memoryAccounts{store}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, alice, &dto.CreateAccountRequest{Name: "A1"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, bob, &dto.CreateAccountRequest{Name: "B1"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, alice, &dto.CreateAccountRequest{Name: "A2"})
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(ctx, alice)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "A1", accounts[0].Name)
	assert.Equal(t, "A2", accounts[1].Name)
}

func TestAccountService_CreateStoreError(t *testing.T) {
	accountStore := new(mockAccountStore)
	accountStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).Return(errors.New("disk full"))
	svc := NewAccountService(accountStore, zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), alice, &dto.CreateAccountRequest{Name: "X"})
	assert.ErrorContains(t, err, "disk full")
	accountStore.AssertExpectations(t)
}

func TestAccountService_NameEmptyAfterSanitizing(t *testing.T) {
	accountStore := new(mockAccountStore)
	svc := NewAccountService(accountStore, zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), alice, &dto.CreateAccountRequest{Name: " \xff\xfe "})

	assert.ErrorIs(t, err, ErrInvalidAccountName)
	accountStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Wallet", sanitizeName(" Wallet\t"))
	assert.Equal(t, "ab", sanitizeName("a\xffb"))
	assert.Equal(t, "Кошелёк", sanitizeName("Кошелёк"))
}

var _ AccountStore = memoryAccounts{}
var _ TransactionStore = memoryTransactions{}
