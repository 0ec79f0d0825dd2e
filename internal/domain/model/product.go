package model

// Product is a catalog item and the authoritative source of its current
// unit price. Nothing downstream (sale positions, carts, orders) is
// allowed to cache the price: every aggregation reads it live.
type Product struct {
	id          int64
	article     int
	title       string
	url         string
	description string
	photoURL    string
	category    *Category
	price       float64
}

func (p *Product) ID() int64           { return p.id }
func (p *Product) Article() int        { return p.article }
func (p *Product) Title() string       { return p.title }
func (p *Product) URL() string         { return p.url }
func (p *Product) Description() string { return p.description }
func (p *Product) PhotoURL() string    { return p.photoURL }
func (p *Product) Category() *Category { return p.category }
func (p *Product) Price() float64      { return p.price }

// SetID assigns the store identifier. Called once by the persistence
// layer; the identifier is immutable afterwards.
func (p *Product) SetID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

func (p *Product) SetTitle(title string)             { p.title = title }
func (p *Product) SetURL(url string)                 { p.url = url }
func (p *Product) SetDescription(description string) { p.description = description }
func (p *Product) SetPhotoURL(url string)            { p.photoURL = url }
func (p *Product) SetCategory(category *Category)    { p.category = category }

// SetPrice clamps negative input to zero instead of rejecting it.
func (p *Product) SetPrice(price float64) {
	if price < 0 {
		price = 0
	}
	p.price = price
}

// Equal reports whether two products denote the same catalog item.
// Carts merge entries by this identity, not by object identity of the
// surrounding sale position.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.article == other.article && p.title == other.title && p.url == other.url
}

// ProductBuilder accumulates caller intent and resolves defaults only
// at Build time (deferred-default contract): an unset article gets a
// fresh random code, an unset price resolves to zero.
type ProductBuilder struct {
	id          int64
	article     *int
	title       *string
	url         *string
	description *string
	photoURL    *string
	category    *Category
	price       *float64
}

func NewProductBuilder() *ProductBuilder { return &ProductBuilder{} }

func (b *ProductBuilder) ID(id int64) *ProductBuilder {
	b.id = id
	return b
}

func (b *ProductBuilder) Article(article int) *ProductBuilder {
	b.article = &article
	return b
}

func (b *ProductBuilder) Title(title string) *ProductBuilder {
	b.title = &title
	return b
}

func (b *ProductBuilder) URL(url string) *ProductBuilder {
	b.url = &url
	return b
}

func (b *ProductBuilder) Description(description string) *ProductBuilder {
	b.description = &description
	return b
}

func (b *ProductBuilder) PhotoURL(url string) *ProductBuilder {
	b.photoURL = &url
	return b
}

func (b *ProductBuilder) Category(category *Category) *ProductBuilder {
	b.category = category
	return b
}

func (b *ProductBuilder) Price(price float64) *ProductBuilder {
	b.price = &price
	return b
}

// Build resolves every field to the supplied value or its computed
// default and returns an independent Product. Callable multiple times.
func (b *ProductBuilder) Build() *Product {
	p := &Product{
		id:          b.id,
		article:     intOrDefault(b.article, generateArticle),
		title:       stringOrEmpty(b.title),
		url:         stringOrEmpty(b.url),
		description: stringOrEmpty(b.description),
		photoURL:    stringOrEmpty(b.photoURL),
		category:    b.category,
	}
	p.SetPrice(floatOrZero(b.price))
	return p
}
