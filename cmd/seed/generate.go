package main

import (
	"finance-api/internal/dto"
	"finance-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// randomTransactions builds n plausible create requests for accountID.
// The same faker seed always yields the same requests.
func randomTransactions(faker *gofakeit.Faker, accountID int64, n int) []*dto.CreateTransactionRequest {
	categories := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, string(c))
	}

	out := make([]*dto.CreateTransactionRequest, 0, n)
	for i := 0; i < n; i++ {
		amount := decimal.NewFromFloat(faker.Price(1, 500)).Round(2)
		category := models.TransactionCategory(faker.RandomString(categories))
		// Salary only ever comes in.
		isDebit := category != models.CategorySalary && faker.Number(1, 10) <= 8

		out = append(out, &dto.CreateTransactionRequest{
			Amount:    &amount,
			IsDebit:   &isDebit,
			AccountID: accountID,
			Category:  &category,
		})
	}
	return out
}
