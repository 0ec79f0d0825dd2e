package model

// ShoppingCart is a session-scoped, pre-checkout basket of sale
// positions. None of its positions belong to an order yet.
//
// The cart performs no locking: exactly one request handles a session
// at a time in the target deployment, and the cart store serializes
// cross-request access.
type ShoppingCart struct {
	positions []*SalePosition
}

func NewShoppingCart() *ShoppingCart { return &ShoppingCart{} }

// AddSalePosition merges by product identity: if an entry for the
// same product already exists, its quantity grows by one and the
// incoming position is discarded (its carried quantity does not
// matter in that branch). Otherwise the position is appended as a new
// entry. A nil position is a no-op.
func (c *ShoppingCart) AddSalePosition(position *SalePosition) {
	if position == nil {
		return
	}
	for _, existing := range c.positions {
		if existing.Product().Equal(position.Product()) {
			existing.Increment()
			return
		}
	}
	c.positions = append(c.positions, position)
}

// AddSalePositions applies AddSalePosition per element in list order,
// so the first occurrence of a product anchors the merged entry.
func (c *ShoppingCart) AddSalePositions(positions []*SalePosition) {
	for _, p := range positions {
		c.AddSalePosition(p)
	}
}

// RemoveSalePosition drops an exact entry; absent entries are ignored.
func (c *ShoppingCart) RemoveSalePosition(position *SalePosition) {
	for i, p := range c.positions {
		if p == position {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			return
		}
	}
}

// RemoveSalePositions drops every listed entry.
func (c *ShoppingCart) RemoveSalePositions(positions []*SalePosition) {
	for _, p := range positions {
		c.RemoveSalePosition(p)
	}
}

// ClearSalePositions empties the cart.
func (c *ShoppingCart) ClearSalePositions() {
	c.positions = nil
}

// SalePositions returns a copy of the entries; never nil.
func (c *ShoppingCart) SalePositions() []*SalePosition {
	out := make([]*SalePosition, len(c.positions))
	copy(out, c.positions)
	return out
}

// Size is the total number of units across all entries.
func (c *ShoppingCart) Size() int {
	var n int
	for _, p := range c.positions {
		n += p.Number()
	}
	return n
}

// Price sums live entry prices on every call.
func (c *ShoppingCart) Price() float64 {
	var total float64
	for _, p := range c.positions {
		total += p.Price()
	}
	return total
}
