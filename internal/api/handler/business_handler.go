package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// BusinessHandler handles HTTP requests for business profiles.
type BusinessHandler struct {
	service   ports.BusinessService
	uploadDir string
}

func NewBusinessHandler(service ports.BusinessService, uploadDir string) *BusinessHandler {
	return &BusinessHandler{service: service, uploadDir: uploadDir}
}

// GetOwn returns the authenticated user's own business.
//
// @Summary      Get own business
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  businessResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /business [get]
func (h *BusinessHandler) GetOwn(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	b, err := h.service.GetOwn(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toBusinessResponse(b))
}

// Update replaces the profile fields of the targeted business.
//
// @Summary      Update a business
// @Tags         business
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Business id"
// @Param        body  body      updateBusinessRequest  true  "Profile fields"
// @Success      200  {object}  businessResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /business/{id} [put]
func (h *BusinessHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	b, err := h.service.Update(c.Request().Context(), user, c.Param("id"), ports.UpdateBusinessInput{
		Name:        req.Name,
		City:        req.City,
		Region:      req.Region,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrBusinessNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toBusinessResponse(b))
}

// UploadLogo stores a new logo image for the targeted business.
//
// @Summary      Upload a business logo
// @Tags         business
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Business id"
// @Param        file  formData  file    true  "Logo image (.jpg/.jpeg/.png)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /business/{id}/logo [post]
func (h *BusinessHandler) UploadLogo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}

	name, err := saveUpload(file, h.uploadDir)
	if err != nil {
		if errors.Is(err, errBadExtension) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	if err := h.service.SetLogo(c.Request().Context(), user, c.Param("id"), name); err != nil {
		removeUpload(h.uploadDir, name)
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrBusinessNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, map[string]string{"logo": name})
}
