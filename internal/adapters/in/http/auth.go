package http

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var errMissingPrincipal = errors.New("principal missing from request context")

// Claims carries the caller's role next to the registered claims. The
// subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens issued by the auth service and
// stores the resulting principal on the echo context.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) Authenticator {
	return Authenticator{secret: []byte(secret)}
}

func (a Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		principal, err := a.Verify(strings.TrimSpace(raw))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// Verify parses a token into a principal.
func (a Authenticator) Verify(token string) (user.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return user.Principal{}, err
	}
	if !parsed.Valid {
		return user.Principal{}, jwt.ErrTokenInvalidClaims
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Principal{}, err
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Principal{}, err
	}
	return user.NewPrincipal(id, role)
}

// RequireRole lets through principals holding one of roles.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFrom(c)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return errs.NewForbiddenError(c.Request().Method + " " + c.Path())
		}
	}
}

func principalFrom(c echo.Context) (user.Principal, error) {
	principal, ok := c.Get(principalKey).(user.Principal)
	if !ok {
		return user.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated").SetInternal(errMissingPrincipal)
	}
	return principal, nil
}
