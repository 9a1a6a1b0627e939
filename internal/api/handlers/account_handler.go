package handlers

import (
	"context"

	"finance-api/internal/dto"
	"finance-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type accountService interface {
	CreateAccount(ctx context.Context, userID int64, req *dto.CreateAccountRequest) (*models.Account, error)
	GetAccount(ctx context.Context, userID, id int64) (*models.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]*models.Account, error)
}

type AccountHandler struct {
	accountService accountService
	logger         *zap.Logger
}

func NewAccountHandler(accountService accountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

func (h *AccountHandler) Register(r fiber.Router) {
	r.Post("/", h.CreateAccount)
	r.Get("/", h.ListAccounts)
	r.Get("/:id", h.GetAccount)
}

// CreateAccount godoc
// @Summary Open an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account"
// @Security Bearer
// @Success 201 {object} dto.AccountResponse
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/accounts/ [post]
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateAccountRequest
	if err := parseBody(c, &req); err != nil {
		return unprocessable(c, err)
	}

	account, err := h.accountService.CreateAccount(c.UserContext(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountResponse(account))
}

// GetAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Security Bearer
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	account, err := h.accountService.GetAccount(c.UserContext(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get account")
	}

	return c.JSON(dto.NewAccountResponse(account))
}

// ListAccounts godoc
// @Summary List the caller's accounts
// @Tags accounts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AccountResponse
// @Router /api/v1/accounts/ [get]
func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	accounts, err := h.accountService.ListAccounts(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list accounts")
	}

	return c.JSON(dto.NewAccountResponses(accounts))
}
