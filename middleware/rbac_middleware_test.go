package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"quickpay-backend/lib/auth"
	"quickpay-backend/lib/rbac"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
)

type fakeAuth struct {
	auth.Provider
	active map[string]bool
	err    error
}

func (f fakeAuth) IsActive(userID string) (bool, error) {
	return f.active[userID], f.err
}

type allowAll struct {
	rbac.Provider
}

func (allowAll) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	return func(userID string, role models.UserRole, uri string) bool { return true }, true
}

func newRbacTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub":  ctx.Get("X-Test-User"),
			"role": string(models.EmployeeRole),
		}})
		return ctx.Next()
	})
	app.Use(RbacMiddleware())
	app.Get("/api/v1/auth/me", func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("user_id").(string))
	})
	return app
}

func TestRbacMiddlewareAccountStatus(t *testing.T) {
	rbac.Instance = allowAll{}
	auth.Instance = fakeAuth{active: map[string]bool{"u1": true, "u2": false}}
	app := newRbacTestApp()

	call := func(userID string) (int, apimodels.Response) {
		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("X-Test-User", userID)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body apimodels.Response
		if resp.StatusCode != fiber.StatusOK {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		}
		return resp.StatusCode, body
	}

	t.Run("active user passes", func(t *testing.T) {
		status, _ := call("u1")
		require.Equal(t, fiber.StatusOK, status)
	})
	t.Run("blocked user is refused", func(t *testing.T) {
		status, body := call("u2")
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, "account has been blocked", body.Message)
	})
	t.Run("deleted user is refused", func(t *testing.T) {
		status, body := call("u3")
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, "account has been blocked", body.Message)
	})
	t.Run("missing subject is refused before lookup", func(t *testing.T) {
		status, body := call("")
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, forbiddenMessage, body.Message)
	})
	t.Run("lookup failure", func(t *testing.T) {
		auth.Instance = fakeAuth{err: errors.New("connection refused")}
		defer func() { auth.Instance = fakeAuth{active: map[string]bool{"u1": true}} }()
		status, _ := call("u1")
		require.Equal(t, fiber.StatusInternalServerError, status)
	})
}
