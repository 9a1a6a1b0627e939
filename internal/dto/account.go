package dto

import (
	"time"

	"finance-api/internal/models"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Name    string          `json:"name" validate:"required,notblank,max=100"`
	Balance decimal.Decimal `json:"balance" validate:"money"`
}

type AccountResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func NewAccountResponses(accounts []*models.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = NewAccountResponse(a)
	}
	return out
}
