package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/server/http/dto"
)

// CatalogHandler serves the public storefront catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// GetByURL handles GET /api/products/:url.
func (h *CatalogHandler) GetByURL(c *gin.Context) {
	product, err := h.facade.ProductByURL(c.Request.Context(), c.Param("url"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// GetByArticle handles GET /api/products/article/:article.
func (h *CatalogHandler) GetByArticle(c *gin.Context) {
	article, err := strconv.Atoi(c.Param("article"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.ProductByArticle(c.Request.Context(), article)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponses(categories))
}

// CategoryProducts handles GET /api/categories/:url/products.
func (h *CatalogHandler) CategoryProducts(c *gin.Context) {
	products, err := h.facade.ProductsByCategory(c.Request.Context(), c.Param("url"))
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

func catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrBlankIdentifier):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
