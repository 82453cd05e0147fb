package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
)

// UserContextKey is where the resolved user is stored on the echo context.
const UserContextKey = "user"

// Resolver maps a presented bearer token to the user it identifies.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it to a user and injects the
// user into the request context. Every failure — missing header, bad
// scheme, corrupt token, token for a deleted account — produces the same
// 401 so callers cannot tell which one occurred.
func Auth(resolver Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
