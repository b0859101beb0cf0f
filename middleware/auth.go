package middleware

import (
	"strings"

	"styledecor/constants"
	"styledecor/logger"
	"styledecor/types"

	"github.com/gofiber/fiber/v2"
)

// RoleResolver maps an authenticated identity email onto its acting role.
// Returning an error means the role is unresolved and access is denied.
type RoleResolver func(email string) (string, error)

// Guard gates dashboard routes on the role resolved for the authenticated
// identity. Resolution happens per request; a stale token never grants a
// revoked role.
type Guard struct {
	secret  string
	resolve RoleResolver
}

func NewGuard(secret string, resolve RoleResolver) *Guard {
	return &Guard{secret: secret, resolve: resolve}
}

// RequireRoles returns a middleware that admits only the listed roles.
// Passing constants.RoleAny admits any authenticated identity.
func (g *Guard) RequireRoles(requiredRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := VerifyJWT(token, g.secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		email, _ := claims["email"].(string)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		// Resolve the acting role from the user record. Unresolved after a
		// completed lookup means no access.
		role, err := g.resolve(email)
		if err != nil {
			logger.Error("Role resolution failed for "+email, err)
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		if !roleAllowed(role, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		c.Locals("email", email)
		c.Locals("role", role)

		return c.Next()
	}
}

// RequireAuthentication only requires a valid token, any role.
func (g *Guard) RequireAuthentication() fiber.Handler {
	return g.RequireRoles(constants.RoleAny)
}

func roleAllowed(role string, requiredRoles []string) bool {
	for _, required := range requiredRoles {
		if required == constants.RoleAny || required == role {
			return true
		}
	}
	return false
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the access cookie.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}
	return c.Cookies("access")
}

// CurrentEmail returns the authenticated identity email stashed by the guard.
func CurrentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

// CurrentRole returns the resolved acting role stashed by the guard.
func CurrentRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
