package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"finance-api/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProtectedApp(t *testing.T, m *auth.JWTManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(RequestID(), RequestLogger(zap.NewNop()))
	app.Get("/me", AuthMiddleware(m, zap.NewNop()), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.SendString(strconv.FormatInt(id, 10))
	})
	return app
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour, time.Hour)
	token, err := m.GenerateToken(12, "carol", "carol@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newProtectedApp(t, m).Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "12", string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour, time.Hour)

	resp, err := newProtectedApp(t, m).Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour, time.Hour)
	refresh, err := m.GenerateRefreshToken(12)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err := newProtectedApp(t, m).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := newProtectedApp(t, m).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
