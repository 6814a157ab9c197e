package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"NoticeBoard/internal/auth"
)

// JWTMiddleware guards admin endpoints. Auth is stateless: a valid token is
// accepted until natural expiry, there is no revocation list.
func JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing token"})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := auth.ValidateJWT(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		}
		c.Set("admin", claims)
		return next(c)
	}
}
