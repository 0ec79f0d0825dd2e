package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/server/http/dto"
	"github.com/suoapvs/alexcoffee/internal/usecase"
)

// OrderHandler serves checkout, the client's order history and the
// manager's order views.
type OrderHandler struct {
	facade CoffeeFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade CoffeeFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout. Guests supply contact details;
// authenticated clients are resolved from their token.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentSessionID(c), usecase.CheckoutDetails{
		ClientID:        CurrentUserID(c),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		ShippingDetails: req.ShippingDetails,
		Description:     req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// MyOrders handles GET /api/orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.facade.ClientOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// List handles GET /api/manager/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /api/manager/orders/:number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.OrderByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// UpdateStatus handles PATCH /api/manager/orders/:number/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status := model.OrderStatus(req.Status)
	if !status.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateStatus(c.Request.Context(), c.Param("number"), status); err != nil {
		orderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AssignManager handles PATCH /api/manager/orders/:number/manager.
func (h *OrderHandler) AssignManager(c *gin.Context) {
	var req dto.AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AssignManager(c.Request.Context(), c.Param("number"), req.ManagerID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotManager):
			c.Status(http.StatusUnprocessableEntity)
		default:
			orderError(c, err)
		}
		return
	}
	c.Status(http.StatusOK)
}

func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrBlankIdentifier):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
