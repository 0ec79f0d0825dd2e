package dto

import "github.com/suoapvs/alexcoffee/internal/domain/model"

// AddToCartRequest describes the payload for putting a product into
// the cart. Quantity defaults to one when omitted.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartPositionResponse is one cart line. Its price is the product's
// current price multiplied by quantity.
type CartPositionResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
	Price    float64          `json:"price"`
}

// CartResponse is the whole cart with derived totals.
type CartResponse struct {
	Positions []*CartPositionResponse `json:"positions"`
	Size      int                     `json:"size"`
	Price     float64                 `json:"price"`
}

// NewCartResponse maps a shopping cart onto its response form.
func NewCartResponse(cart *model.ShoppingCart) *CartResponse {
	positions := cart.SalePositions()
	result := &CartResponse{
		Positions: make([]*CartPositionResponse, 0, len(positions)),
		Size:      cart.Size(),
		Price:     cart.Price(),
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
