package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the bearer token into a user identity on the
// request context. Session issuance lives elsewhere; this only verifies the
// signature and extracts the subject. Requests without a valid token pass
// through anonymous and are rejected by handlers that need an identity.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return next(c)
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}

			if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
				c.Set("user_id", sub)
			}
			return next(c)
		}
	}
}
