package repository

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog items.
// Lookups always produce products with their current price; nothing is
// cached on top of these reads.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByURL(ctx context.Context, url string) (*model.Product, error)
	GetByArticle(ctx context.Context, article int) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	ListByCategoryURL(ctx context.Context, categoryURL string) ([]*model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByURL(ctx context.Context, url string) error
	DeleteByArticle(ctx context.Context, article int) error
	DeleteAll(ctx context.Context) error
}
