package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service   ports.ProductService
	uploadDir string
}

func NewProductHandler(service ports.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{service: service, uploadDir: uploadDir}
}

// List returns the public product catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]productResponse, 0, len(products))
	for _, p := range products {
		data = append(data, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, listProductsResponse{Data: data})
}

// Get returns a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Create publishes a product under the caller's own business.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	p, err := h.service.Create(c.Request().Context(), user, ports.ProductInput{
		Name:           req.Name,
		Category:       req.Category,
		OriginalPrice:  req.OriginalPrice,
		NewPrice:       req.NewPrice,
		OfferExpiresAt: req.OfferExpiresAt,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProductResponse(p))
}

// Update replaces the fields of the targeted product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	p, err := h.service.Update(c.Request().Context(), user, c.Param("id"), ports.ProductInput{
		Name:           req.Name,
		Category:       req.Category,
		OriginalPrice:  req.OriginalPrice,
		NewPrice:       req.NewPrice,
		OfferExpiresAt: req.OfferExpiresAt,
	})
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Delete removes the targeted product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return productError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadImage stores a new image for the targeted product.
//
// @Summary      Upload a product image
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Product id"
// @Param        file  formData  file    true  "Product image (.jpg/.jpeg/.png)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id}/image [post]
func (h *ProductHandler) UploadImage(c echo.Context) error {
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

	if err := h.service.SetImage(c.Request().Context(), user, c.Param("id"), name); err != nil {
		removeUpload(h.uploadDir, name)
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return productError(c, err)
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, map[string]string{"product_image": name})
}

// productError maps service errors from product mutations to HTTP responses.
func productError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrProductNotFound.Error()})
	}
	return err
}
