package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/server/http/dto"
)

// AdminHandler serves the back-office surface: catalog maintenance,
// order cleanup and user management.
type AdminHandler struct {
	facade CoffeeFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade CoffeeFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

func (h *AdminHandler) buildProduct(c *gin.Context, req dto.ProductRequest) (*model.Product, bool) {
	var category *model.Category
	if req.CategoryURL != "" {
		found, err := h.facade.CategoryByURL(c.Request.Context(), req.CategoryURL)
		if err != nil {
			catalogError(c, err)
			return nil, false
		}
		category = found
	}

	product := model.NewProductBuilder().
		Article(req.Article).
		Title(req.Title).
		URL(req.URL).
		Description(req.Description).
		PhotoURL(req.PhotoURL).
		Category(category).
		Price(req.Price).
		Build()
	return product, true
}

// CreateProduct handles POST /api/admin/products.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, ok := h.buildProduct(c, req)
	if !ok {
		return
	}

	created, err := h.facade.SaveProduct(c.Request.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrBlankIdentifier):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(created))
}

// UpdateProduct handles PUT /api/admin/products/:url.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	existing, err := h.facade.ProductByURL(c.Request.Context(), c.Param("url"))
	if err != nil {
		catalogError(c, err)
		return
	}

	product, ok := h.buildProduct(c, req)
	if !ok {
		return
	}
	product.SetID(existing.ID())

	if err := h.facade.UpdateProduct(c.Request.Context(), product); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			catalogError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// DeleteProduct handles DELETE /api/admin/products/:url.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.facade.DeleteProductByURL(c.Request.Context(), c.Param("url")); err != nil {
		catalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProductByArticle handles DELETE /api/admin/products/article/:article.
func (h *AdminHandler) DeleteProductByArticle(c *gin.Context) {
	article, err := strconv.Atoi(c.Param("article"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteProductByArticle(c.Request.Context(), article); err != nil {
		catalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllProducts handles DELETE /api/admin/products.
func (h *AdminHandler) DeleteAllProducts(c *gin.Context) {
	if err := h.facade.DeleteAllProducts(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.SaveCategory(c.Request.Context(), &model.Category{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrBlankIdentifier):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(created))
}

// DeleteCategory handles DELETE /api/admin/categories/:url.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.facade.DeleteCategoryByURL(c.Request.Context(), c.Param("url")); err != nil {
		catalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/admin/orders/:number.
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	if err := h.facade.DeleteByNumber(c.Request.Context(), c.Param("number")); err != nil {
		orderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllOrders handles DELETE /api/admin/orders.
func (h *AdminHandler) DeleteAllOrders(c *gin.Context) {
	if err := h.facade.DeleteAll(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// UsersByRole handles GET /api/admin/users with a role query param.
func (h *AdminHandler) UsersByRole(c *gin.Context) {
	role := model.UserRole(c.DefaultQuery("role", string(model.RoleClient)))
	if !role.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}

	users, err := h.facade.UsersByRole(c.Request.Context(), role)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
