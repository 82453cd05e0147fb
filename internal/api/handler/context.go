package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. A missing
// user means the route was registered without the middleware — fail closed
// with 401 rather than proceeding unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
	}
	return user, nil
}
