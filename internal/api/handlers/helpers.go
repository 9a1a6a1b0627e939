package handlers

import (
	"errors"

	"finance-api/internal/dto"
	"finance-api/internal/service"
	"finance-api/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("id must be a positive integer")

func getUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	return userID, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return int64(id), nil
}

type requestError struct {
	msg     string
	details []string
}

func (e *requestError) Error() string { return e.msg }

// parseBody decodes and validates a JSON body into req.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return &requestError{msg: "Invalid request body", details: []string{err.Error()}}
	}
	if err := dto.Validate(req); err != nil {
		return &requestError{msg: "Validation failed", details: dto.ValidationDetails(err)}
	}
	return nil
}

func parseQuery(c *fiber.Ctx, req interface{}) error {
	if err := c.QueryParser(req); err != nil {
		return &requestError{msg: "Invalid query parameters", details: []string{err.Error()}}
	}
	if err := dto.Validate(req); err != nil {
		return &requestError{msg: "Validation failed", details: dto.ValidationDetails(err)}
	}
	return nil
}

// unprocessable reports a parseBody failure. Malformed payloads and rule
// violations are both 422.
func unprocessable(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		body["details"] = reqErr.details
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": errInvalidID.Error(),
	})
}

// serviceError maps service sentinel errors onto HTTP statuses and logs the rest.
func serviceError(c *fiber.Ctx, logger *zap.Logger, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound), errors.Is(err, service.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidAccountName):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to perform action.",
		})
	default:
		logger.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
		})
	}
}
