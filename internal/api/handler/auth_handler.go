package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// verifiedPage is the confirmation view rendered after a successful
// email verification.
var verifiedPage = template.Must(template.New("verified").Parse(`<!DOCTYPE html>
<html>
  <body>
    <div style="display:flex;align-items:center;justify-content:center;flex-direction:column">
      <h3>Email verified</h3>
      <p>Welcome {{.Username}}, your account is now active.</p>
    </div>
  </body>
</html>`))

// AuthHandler handles registration, token issuance and email verification.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new account and its business.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Status:  "ok",
		Message: fmt.Sprintf("hello %s, thanks for creating an account. Check your email and follow the link to verify it.", user.Username),
	})
}

// Token authenticates credentials and issues a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Router       /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.auth.IssueAccessToken(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Verify consumes an email-verification token.
//
// @Summary      Verify an email address
// @Tags         auth
// @Produce      html
// @Param        token  query  string  true  "Verification token"
// @Success      200  {string}  string  "Confirmation page"
// @Failure      401  {object}  errorResponse
// @Router       /verification [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		metrics.VerificationsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrUnauthorized.Error()})
	}

	user, err := h.auth.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		metrics.VerificationsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return err
	}

	var buf bytes.Buffer
	if err := verifiedPage.Execute(&buf, map[string]string{"Username": user.Username}); err != nil {
		return err
	}

	metrics.VerificationsTotal.WithLabelValues("success").Inc()
	return c.HTML(http.StatusOK, buf.String())
}
