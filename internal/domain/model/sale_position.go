package model

// SalePosition pairs a product with a quantity. It owns no price of
// its own: Price is always product price times quantity, computed
// fresh on every call.
//
// The back-reference to the owning Order is written exclusively by the
// Order aggregate (attach on add, left intact on remove); there is no
// public setter for it.
type SalePosition struct {
	id      int64
	product *Product
	number  int
	order   *Order
}

// NewSalePosition builds a position with an explicit quantity. The
// quantity is clamped, not validated: a negative number becomes zero.
func NewSalePosition(product *Product, number int) *SalePosition {
	p := &SalePosition{}
	p.SetProduct(product)
	p.SetNumber(number)
	return p
}

func (p *SalePosition) ID() int64         { return p.id }
func (p *SalePosition) Product() *Product { return p.product }
func (p *SalePosition) Number() int       { return p.number }
func (p *SalePosition) Order() *Order     { return p.order }

// SetID assigns the store identifier once.
func (p *SalePosition) SetID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

// SetProduct stores the product reference. A line item with a product
// but unspecified quantity means one unit; a line item with no product
// carries no quantity.
func (p *SalePosition) SetProduct(product *Product) {
	p.product = product
	if product != nil {
		p.number = 1
	} else {
		p.number = 0
	}
}

// SetNumber floors negative quantities to zero instead of failing.
func (p *SalePosition) SetNumber(number int) {
	if number < 0 {
		number = 0
	}
	p.number = number
}

// Increment adds one unit. Used when a cart collapses a duplicate
// entry onto an existing one.
func (p *SalePosition) Increment() {
	p.number++
}

// Price returns the live product price times quantity. Never cached:
// an admin price update is visible on the next call.
func (p *SalePosition) Price() float64 {
	if p.product == nil {
		return 0
	}
	return p.product.Price() * float64(p.number)
}

// SalePositionBuilder resolves the quantity default at Build time:
// a position built with only a product gets quantity one.
type SalePositionBuilder struct {
	id      int64
	product *Product
	number  *int
}

func NewSalePositionBuilder() *SalePositionBuilder { return &SalePositionBuilder{} }

func (b *SalePositionBuilder) ID(id int64) *SalePositionBuilder {
	b.id = id
	return b
}

func (b *SalePositionBuilder) Product(product *Product) *SalePositionBuilder {
	b.product = product
	return b
}

func (b *SalePositionBuilder) Number(number int) *SalePositionBuilder {
	b.number = &number
	return b
}

// Build constructs an independent SalePosition. The product side
// effect runs first, then an explicitly supplied quantity overrides it.
func (b *SalePositionBuilder) Build() *SalePosition {
	p := &SalePosition{id: b.id}
	p.SetProduct(b.product)
	if b.number != nil {
		p.SetNumber(*b.number)
	}
	return p
}
