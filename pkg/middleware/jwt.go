package middleware

import (
	"errors"
	"net/http"
	"strings"

	"NotificationHub/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWT returns middleware that verifies a Bearer token and stores the
// decoded claims on the context under "user". Expired and otherwise
// invalid tokens get distinct messages.
func JWT(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: No token provided"})
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			claims, err := auth.ParseToken(secret, tokenString)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token has expired"})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Invalid token"})
			}

			c.Set("user", claims)
			return next(c)
		}
	}
}
