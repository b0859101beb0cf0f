package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"styledecor/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func guardedApp(t *testing.T, resolve RoleResolver, roles ...string) *fiber.App {
	t.Helper()

	guard := NewGuard(testSecret, resolve)
	app := fiber.New()
	app.Get("/protected", guard.RequireRoles(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": CurrentEmail(c), "role": CurrentRole(c)})
	})
	return app
}

func bearerRequest(t *testing.T, token string) *http.Request {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRequireRolesMissingToken(t *testing.T) {
	app := guardedApp(t, func(string) (string, error) { return constants.RoleUser, nil }, constants.RoleUser)

	resp, err := app.Test(bearerRequest(t, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRolesInvalidToken(t *testing.T) {
	app := guardedApp(t, func(string) (string, error) { return constants.RoleUser, nil }, constants.RoleUser)

	resp, err := app.Test(bearerRequest(t, "not-a-jwt"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRolesWrongRoleIsForbidden(t *testing.T) {
	// A decorator hitting an admin-only route gets 403, never the content.
	app := guardedApp(t, func(string) (string, error) { return constants.RoleDecorator, nil }, constants.RoleAdmin)

	token, err := IssueToken(testSecret, "deco@styledecor.io", "Deco", time.Hour)
	require.NoError(t, err)

	resp, err := app.Test(bearerRequest(t, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesUnresolvedRoleFailsClosed(t *testing.T) {
	// Role resolution completing without a role means no access, even with a
	// valid token.
	app := guardedApp(t, func(string) (string, error) {
		return "", errors.New("user not found")
	}, constants.RoleUser)

	token, err := IssueToken(testSecret, "ghost@styledecor.io", "Ghost", time.Hour)
	require.NoError(t, err)

	resp, err := app.Test(bearerRequest(t, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesAllowed(t *testing.T) {
	app := guardedApp(t, func(email string) (string, error) {
		assert.Equal(t, "admin@styledecor.io", email)
		return constants.RoleAdmin, nil
	}, constants.RoleAdmin)

	token, err := IssueToken(testSecret, "admin@styledecor.io", "Admin", time.Hour)
	require.NoError(t, err)

	resp, err := app.Test(bearerRequest(t, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRolesAnyAdmitsEveryRole(t *testing.T) {
	for _, role := range []string{constants.RoleUser, constants.RoleDecorator, constants.RoleAdmin} {
		app := guardedApp(t, func(string) (string, error) { return role, nil }, constants.RoleAny)

		token, err := IssueToken(testSecret, "someone@styledecor.io", "Someone", time.Hour)
		require.NoError(t, err)

		resp, err := app.Test(bearerRequest(t, token))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role=%s", role)
	}
}

func TestRequireRolesExpiredToken(t *testing.T) {
	app := guardedApp(t, func(string) (string, error) { return constants.RoleUser, nil }, constants.RoleUser)

	token, err := IssueToken(testSecret, "late@styledecor.io", "Late", -time.Minute)
	require.NoError(t, err)

	resp, err := app.Test(bearerRequest(t, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestExtractTokenCookieFallback(t *testing.T) {
	app := guardedApp(t, func(string) (string, error) { return constants.RoleUser, nil }, constants.RoleUser)

	token, err := IssueToken(testSecret, "cookie@styledecor.io", "Cookie", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
