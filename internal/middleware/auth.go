package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenVerifier validates a credential and returns the account id it
// asserts. The auth service is the one implementation.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates the Authorization header and stores the account
// id under "uid" in the echo context. Clients send the raw token; a
// Bearer prefix is tolerated. A missing header is 401, a token that
// fails verification is 400.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access Denied"})
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		uid, err := m.verifier.Verify(tokenStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Token"})
		}
		c.Set("uid", uid)
		return next(c)
	}
}
