package handlers

import (
	"context"

	"finance-api/internal/dto"
	"finance-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type transactionService interface {
	CreateTransaction(ctx context.Context, userID int64, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)
	ListAccountTransactions(ctx context.Context, userID, accountID int64) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

type TransactionHandler struct {
	txService transactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService transactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Register mounts the transaction routes on r.
func (h *TransactionHandler) Register(r fiber.Router) {
	r.Post("/", h.CreateTransaction)
	r.Get("/", h.ListTransactions)
	r.Get("/:id", h.GetTransaction)
	r.Patch("/:id", h.UpdateTransaction)
	r.Delete("/:id", h.DeleteTransaction)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Record a debit or credit against one of the caller's accounts
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/transactions/ [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTransactionRequest
	if err := parseBody(c, &req); err != nil {
		return unprocessable(c, err)
	}

	tx, err := h.txService.CreateTransaction(c.UserContext(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	tx, err := h.txService.GetTransaction(c.UserContext(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get transaction")
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// ListTransactions godoc
// @Summary List transactions
// @Description All of the caller's transactions, or only one account's when account_id is given
// @Tags transactions
// @Produce json
// @Param account_id query int false "Account ID"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/ [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var query dto.ListTransactionsQuery
	if err := parseQuery(c, &query); err != nil {
		return unprocessable(c, err)
	}

	var txs []*models.Transaction
	if query.AccountID > 0 {
		txs, err = h.txService.ListAccountTransactions(c.UserContext(), userID, query.AccountID)
	} else {
		txs, err = h.txService.ListTransactions(c.UserContext(), userID)
	}
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list transactions")
	}

	return c.JSON(dto.NewTransactionResponses(txs))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Not written when the submitted amount equals the stored one
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Patch"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	var req dto.UpdateTransactionRequest
	if err := parseBody(c, &req); err != nil {
		return unprocessable(c, err)
	}

	tx, err := h.txService.UpdateTransaction(c.UserContext(), userID, id, req.Patch())
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update transaction")
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Security Bearer
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := h.txService.DeleteTransaction(c.UserContext(), userID, id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete transaction")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
