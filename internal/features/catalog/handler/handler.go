package handler

import (
	"errors"
	"net/http"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for products and categories.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns every active product, optionally filtered by category.
// @Tags Catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Success 200 {array} domain.Product
// @Failure 502 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var (
		products interface{}
		err      error
	)

	if categoryID := c.Query("categoryId"); categoryID != "" {
		products, err = h.service.ProductsByCategory(c.Context(), categoryID)
	} else {
		products, err = h.service.Products(c.Context())
	}
	if err != nil {
		return gatewayError(c, "Failed to list products", err)
	}
	return c.Status(http.StatusOK).JSON(products)
}

// FeaturedProducts handles GET /products/featured.
// @Summary List featured products
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products/featured [get]
func (h *CatalogHandler) FeaturedProducts(c *fiber.Ctx) error {
	products, err := h.service.Featured(c.Context())
	if err != nil {
		return gatewayError(c, "Failed to list featured products", err)
	}
	return c.Status(http.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id.
// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.ProductByID(c.Context(), c.Params("id"))
	if err != nil {
		return gatewayError(c, "Failed to fetch product", err)
	}
	return c.Status(http.StatusOK).JSON(product)
}

// GetProductBySlug handles GET /products/slug/:slug.
// @Summary Get product by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} domain.Product
// @Router /products/slug/{slug} [get]
func (h *CatalogHandler) GetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.ProductBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return gatewayError(c, "Failed to fetch product by slug", err)
	}
	return c.Status(http.StatusOK).JSON(product)
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context())
	if err != nil {
		return gatewayError(c, "Failed to list categories", err)
	}
	return c.Status(http.StatusOK).JSON(categories)
}

// GetCategory handles GET /categories/:id.
// @Summary Get category by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.CategoryByID(c.Context(), c.Params("id"))
	if err != nil {
		return gatewayError(c, "Failed to fetch category", err)
	}
	return c.Status(http.StatusOK).JSON(category)
}

// GetCategoryBySlug handles GET /categories/slug/:slug.
// @Summary Get category by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} domain.Category
// @Router /categories/slug/{slug} [get]
func (h *CatalogHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.service.CategoryBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return gatewayError(c, "Failed to fetch category by slug", err)
	}
	return c.Status(http.StatusOK).JSON(category)
}

// gatewayError maps backend failures onto the response, preserving the
// upstream status for APIError and hiding transport failures behind 502.
func gatewayError(c *fiber.Ctx, logMsg string, err error) error {
	logger.Get().Error(logMsg, zap.Error(err))

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"message": apiErr.Message})
	}
	return c.Status(http.StatusBadGateway).JSON(fiber.Map{
		"message": "Error del servidor. Por favor, intenta más tarde.",
	})
}
