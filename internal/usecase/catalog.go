package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

// CatalogUseCase serves catalog browsing and administration. Lookups
// distinguish a blank identifier (caller precondition failure) from a
// valid identifier that matches nothing (not found).
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// Products lists the whole catalog.
func (u *CatalogUseCase) Products(ctx context.Context) ([]*model.Product, error) {
	return u.products.List(ctx)
}

// ProductByURL fetches one product by its slug.
func (u *CatalogUseCase) ProductByURL(ctx context.Context, url string) (*model.Product, error) {
	if strings.TrimSpace(url) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.products.GetByURL(ctx, url)
}

// ProductByArticle fetches one product by its article code.
func (u *CatalogUseCase) ProductByArticle(ctx context.Context, article int) (*model.Product, error) {
	if article == 0 {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.products.GetByArticle(ctx, article)
}

// ProductsByCategory lists products under a category slug.
func (u *CatalogUseCase) ProductsByCategory(ctx context.Context, categoryURL string) ([]*model.Product, error) {
	if strings.TrimSpace(categoryURL) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	if _, err := u.categories.GetByURL(ctx, categoryURL); err != nil {
		return nil, err
	}
	return u.products.ListByCategoryURL(ctx, categoryURL)
}

// CategoryByURL fetches one category by its slug.
func (u *CatalogUseCase) CategoryByURL(ctx context.Context, url string) (*model.Category, error) {
	if strings.TrimSpace(url) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.categories.GetByURL(ctx, url)
}

// Categories lists all categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]*model.Category, error) {
	return u.categories.List(ctx)
}

// SaveProduct persists a new catalog item.
func (u *CatalogUseCase) SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product == nil || strings.TrimSpace(product.URL()) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct persists changes to an existing catalog item.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product *model.Product) error {
	if product == nil || product.ID() == 0 {
		return domainErrors.ErrBlankIdentifier
	}
	return u.products.Update(ctx, product)
}

// DeleteProductByURL removes a product by slug.
func (u *CatalogUseCase) DeleteProductByURL(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return domainErrors.ErrBlankIdentifier
	}
	return u.products.DeleteByURL(ctx, url)
}

// DeleteProductByArticle removes a product by article code.
func (u *CatalogUseCase) DeleteProductByArticle(ctx context.Context, article int) error {
	if article == 0 {
		return domainErrors.ErrBlankIdentifier
	}
	return u.products.DeleteByArticle(ctx, article)
}

// DeleteAllProducts empties the catalog.
func (u *CatalogUseCase) DeleteAllProducts(ctx context.Context) error {
	return u.products.DeleteAll(ctx)
}

// SaveCategory persists a new category.
func (u *CatalogUseCase) SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category == nil || strings.TrimSpace(category.URL) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.categories.Create(ctx, category)
}

// DeleteCategoryByURL removes a category by slug.
func (u *CatalogUseCase) DeleteCategoryByURL(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return domainErrors.ErrBlankIdentifier
	}
	return u.categories.DeleteByURL(ctx, url)
}
