package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, TransactionCategory("rent").Valid())
	assert.False(t, TransactionCategory("").Valid())
}

func TestTransactionPatch_Apply(t *testing.T) {
	tx := Transaction{Amount: decimal.RequireFromString("10.00"), Category: CategoryFood, IsDebit: true}
	amount := decimal.RequireFromString("12.50")
	category := CategoryShopping

	patched := TransactionPatch{Amount: &amount, Category: &category}.Apply(tx)

	assert.True(t, patched.Amount.Equal(amount))
	assert.Equal(t, CategoryShopping, patched.Category)
	assert.True(t, patched.IsDebit)
	assert.Equal(t, CategoryFood, tx.Category, "original must not be modified")
}

func TestTransactionPatch_ApplyEmpty(t *testing.T) {
	tx := Transaction{ID: 3, Amount: decimal.RequireFromString("1"), Category: CategoryOther}
	assert.Equal(t, tx, TransactionPatch{}.Apply(tx))
}

func TestTransactionPatch_KeepsAmount(t *testing.T) {
	current := decimal.RequireFromString("10.00")
	same := decimal.RequireFromString("10")
	other := decimal.RequireFromString("10.01")
	salary := CategorySalary

	assert.False(t, TransactionPatch{}.KeepsAmount(current))
	assert.False(t, TransactionPatch{Category: &salary}.KeepsAmount(current))
	assert.True(t, TransactionPatch{Amount: &same}.KeepsAmount(current))
	assert.True(t, TransactionPatch{Amount: &same, Category: &salary}.KeepsAmount(current))
	assert.False(t, TransactionPatch{Amount: &other}.KeepsAmount(current))
}
