package middlewares

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity is what the external identity provider tells us about the
// caller. The board performs no authorization with it; it exists so the
// request log can say who did what.
type Identity struct {
	Sub  uint
	Name string
}

type identityClaims struct {
	Sub  uint   `json:"sub"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

const identityKey = "auth.identity"

func extractBearer(c echo.Context) (string, bool) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// WithIdentity attaches the caller's identity to the context when a valid
// HS256 bearer token is present. It never rejects a request: an anonymous
// caller simply has no identity.
func WithIdentity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := extractBearer(c)
			if !ok {
				return next(c)
			}
			token, err := jwt.ParseWithClaims(tok, &identityClaims{}, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}
			if claims, ok := token.Claims.(*identityClaims); ok {
				c.Set(identityKey, Identity{Sub: claims.Sub, Name: claims.Name})
			}
			return next(c)
		}
	}
}

// CurrentUser reports the caller's identity, if any.
func CurrentUser(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
