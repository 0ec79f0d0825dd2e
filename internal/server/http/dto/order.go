package dto

import (
	"time"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// CheckoutRequest carries the contact and shipping data entered at
// checkout. Contact fields are ignored for authenticated clients.
type CheckoutRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
	ShippingDetails string `json:"shipping_details"`
	Description     string `json:"description"`
}

// UpdateStatusRequest changes an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignManagerRequest attaches a manager to an order.
type AssignManagerRequest struct {
	ManagerID int64 `json:"manager_id"`
}

// OrderResponse is the full view of an order. The total and position
// prices are always derived from current product prices.
type OrderResponse struct {
	ID              int64                   `json:"id"`
	Number          string                  `json:"number"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	ShippingAddress string                  `json:"shipping_address,omitempty"`
	ShippingDetails string                  `json:"shipping_details,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Client          *UserResponse           `json:"client"`
	Manager         *UserResponse           `json:"manager,omitempty"`
	Positions       []*CartPositionResponse `json:"positions"`
	Total           float64                 `json:"total"`
}

// NewOrderResponse maps an order onto its response form.
func NewOrderResponse(order *model.Order) *OrderResponse {
	if order == nil {
		return nil
	}
	positions := order.SalePositions()
	result := &OrderResponse{
		ID:              order.ID(),
		Number:          order.Number(),
		Status:          string(order.Status()),
		CreatedAt:       order.CreatedAt(),
		ShippingAddress: order.ShippingAddress(),
		ShippingDetails: order.ShippingDetails(),
		Description:     order.Description(),
		Client:          NewUserResponse(order.Client()),
		Manager:         NewUserResponse(order.Manager()),
		Positions:       make([]*CartPositionResponse, 0, len(positions)),
		Total:           order.Price(),
	}
	for _, position := range positions {
		result.Positions = append(result.Positions, &CartPositionResponse{
			Product:  NewProductResponse(position.Product()),
			Quantity: position.Number(),
			Price:    position.Price(),
		})
	}
	return result
}

// NewOrderResponses maps an order list.
func NewOrderResponses(orders []*model.Order) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, NewOrderResponse(order))
	}
	return result
}
