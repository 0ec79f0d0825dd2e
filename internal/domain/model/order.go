package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusWork      OrderStatus = "WORK"
	OrderStatusDelivery  OrderStatus = "DELIVERY"
	OrderStatusClosed    OrderStatus = "CLOSED"
	OrderStatusRejection OrderStatus = "REJECTION"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusWork, OrderStatusDelivery, OrderStatusClosed, OrderStatusRejection:
		return true
	}
	return false
}

// Order aggregates sale positions checked out from a cart, plus
// client, manager, status and shipping metadata.
//
// The aggregate owns the back-reference invariant: after every
// mutating operation, each position held by the order points back to
// this order. Positions are attached on add; removal deliberately
// leaves the removed position's back-reference intact, so callers can
// still reuse the orphaned line item.
//
// Status transitions are unconstrained: any status can be set at any
// time. Enforcing transition legality is an administrative policy
// decision that lives with the callers, not here.
type Order struct {
	id              int64
	number          string
	createdAt       time.Time
	shippingAddress string
	shippingDetails string
	description     string
	status          OrderStatus
	client          *User
	manager         *User
	positions       []*SalePosition
}

func (o *Order) ID() int64               { return o.id }
func (o *Order) Number() string          { return o.number }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) ShippingAddress() string { return o.shippingAddress }
func (o *Order) ShippingDetails() string { return o.shippingDetails }
func (o *Order) Description() string     { return o.description }
func (o *Order) Status() OrderStatus     { return o.status }
func (o *Order) Client() *User           { return o.client }
func (o *Order) Manager() *User          { return o.manager }

// SetID assigns the store identifier once.
func (o *Order) SetID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

func (o *Order) SetNumber(number string)           { o.number = number }
func (o *Order) SetShippingAddress(address string) { o.shippingAddress = address }
func (o *Order) SetShippingDetails(details string) { o.shippingDetails = details }
func (o *Order) SetDescription(description string) { o.description = description }
func (o *Order) SetStatus(status OrderStatus)      { o.status = status }
func (o *Order) SetClient(client *User)            { o.client = client }
func (o *Order) SetManager(manager *User)          { o.manager = manager }

// AddSalePosition appends a position and takes ownership of it.
// Idempotent: a position already held by this order is neither
// duplicated nor re-attached.
func (o *Order) AddSalePosition(position *SalePosition) {
	if position == nil {
		return
	}
	if !o.contains(position) {
		o.positions = append(o.positions, position)
	}
	if position.order != o {
		position.order = o
	}
}

// AddSalePositions attaches every position in list order.
func (o *Order) AddSalePositions(positions []*SalePosition) {
	for _, p := range positions {
		o.AddSalePosition(p)
	}
}

// SetSalePositions replaces the owned collection and re-parents every
// element of the new one.
func (o *Order) SetSalePositions(positions []*SalePosition) {
	o.positions = nil
	o.AddSalePositions(positions)
}

// RemoveSalePosition drops an exact position from the collection. The
// removed position keeps its back-reference: it becomes an orphaned
// value the caller may reuse or discard.
func (o *Order) RemoveSalePosition(position *SalePosition) {
	for i, p := range o.positions {
		if p == position {
			o.positions = append(o.positions[:i], o.positions[i+1:]...)
			return
		}
	}
}

// RemoveSalePositions drops every listed position; absent entries are
// silently ignored.
func (o *Order) RemoveSalePositions(positions []*SalePosition) {
	for _, p := range positions {
		o.RemoveSalePosition(p)
	}
}

// ClearSalePositions empties the collection.
func (o *Order) ClearSalePositions() {
	o.positions = nil
}

// SalePositions returns a copy of the owned collection; never nil.
func (o *Order) SalePositions() []*SalePosition {
	out := make([]*SalePosition, len(o.positions))
	copy(out, o.positions)
	return out
}

// Price sums the live prices of the current positions on every call.
func (o *Order) Price() float64 {
	var total float64
	for _, p := range o.positions {
		total += p.Price()
	}
	return total
}

func (o *Order) contains(position *SalePosition) bool {
	for _, p := range o.positions {
		if p == position {
			return true
		}
	}
	return false
}

// OrderBuilder accumulates caller intent and resolves defaults only at
// Build time: number to a fresh random code, creation time to now,
// shipping fields to empty strings, status to NEW and the client to a
// freshly built CLIENT user. Build never mutates entities supplied as
// references, except for the accumulated sale positions, which are
// re-parented to the newly built order once it exists.
type OrderBuilder struct {
	id              int64
	number          *string
	createdAt       *time.Time
	shippingAddress *string
	shippingDetails *string
	description     *string
	status          *OrderStatus
	client          *User
	manager         *User
	positions       []*SalePosition
}

func NewOrderBuilder() *OrderBuilder { return &OrderBuilder{} }

func (b *OrderBuilder) ID(id int64) *OrderBuilder {
	b.id = id
	return b
}

func (b *OrderBuilder) Number(number string) *OrderBuilder {
	b.number = &number
	return b
}

func (b *OrderBuilder) CreatedAt(t time.Time) *OrderBuilder {
	b.createdAt = &t
	return b
}

func (b *OrderBuilder) ShippingAddress(address string) *OrderBuilder {
	b.shippingAddress = &address
	return b
}

func (b *OrderBuilder) ShippingDetails(details string) *OrderBuilder {
	b.shippingDetails = &details
	return b
}

func (b *OrderBuilder) Description(description string) *OrderBuilder {
	b.description = &description
	return b
}

func (b *OrderBuilder) Status(status OrderStatus) *OrderBuilder {
	b.status = &status
	return b
}

func (b *OrderBuilder) Client(client *User) *OrderBuilder {
	b.client = client
	return b
}

func (b *OrderBuilder) Manager(manager *User) *OrderBuilder {
	b.manager = manager
	return b
}

func (b *OrderBuilder) SalePosition(position *SalePosition) *OrderBuilder {
	if position != nil {
		b.positions = append(b.positions, position)
	}
	return b
}

func (b *OrderBuilder) SalePositions(positions []*SalePosition) *OrderBuilder {
	for _, p := range positions {
		b.SalePosition(p)
	}
	return b
}

// Build constructs a fully defaulted, internally consistent Order and
// re-parents every accumulated position to it. Positions can only be
// attached here: during the setter calls the order does not exist yet.
func (b *OrderBuilder) Build() *Order {
	status := OrderStatusNew
	if b.status != nil && b.status.Valid() {
		status = *b.status
	}

	client := b.client
	if client == nil {
		client = NewUserBuilder().Build()
	}

	o := &Order{
		id:              b.id,
		number:          stringOrGenerated(b.number, generateOrderNumber),
		createdAt:       timeOrNow(b.createdAt),
		shippingAddress: stringOrEmpty(b.shippingAddress),
		shippingDetails: stringOrEmpty(b.shippingDetails),
		description:     stringOrEmpty(b.description),
		status:          status,
		client:          client,
		manager:         b.manager,
	}

	o.AddSalePositions(b.positions)
	return o
}
