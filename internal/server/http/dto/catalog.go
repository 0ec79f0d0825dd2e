package dto

import "github.com/suoapvs/alexcoffee/internal/domain/model"

// ProductRequest describes the admin payload for creating or updating
// a catalog item. A zero article is replaced with a generated one.
type ProductRequest struct {
	Article     int     `json:"article"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	PhotoURL    string  `json:"photo_url"`
	CategoryURL string  `json:"category_url"`
	Price       float64 `json:"price"`
}

// CategoryRequest describes the admin payload for a category.
type CategoryRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ProductResponse is the public view of a catalog item.
type ProductResponse struct {
	ID          int64             `json:"id"`
	Article     int               `json:"article"`
	Title       string            `json:"title"`
	URL         string            `json:"url"`
	Description string            `json:"description,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Price       float64           `json:"price"`
}

// NewCategoryResponse maps a category onto its response form.
func NewCategoryResponse(category *model.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		URL:         category.URL,
		Description: category.Description,
	}
}

// NewCategoryResponses maps a category list.
func NewCategoryResponses(categories []*model.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, NewCategoryResponse(category))
	}
	return result
}

// NewProductResponse maps a product onto its response form.
func NewProductResponse(product *model.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	return &ProductResponse{
		ID:          product.ID(),
		Article:     product.Article(),
		Title:       product.Title(),
		URL:         product.URL(),
		Description: product.Description(),
		PhotoURL:    product.PhotoURL(),
		Category:    NewCategoryResponse(product.Category()),
		Price:       product.Price(),
	}
}

// NewProductResponses maps a product list.
func NewProductResponses(products []*model.Product) []*ProductResponse {
	result := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductResponse(product))
	}
	return result
}
