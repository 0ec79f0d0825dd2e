package model

// Category groups products in the catalog.
type Category struct {
	ID          int64
	Title       string
	URL         string
	Description string
}
