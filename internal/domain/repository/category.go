package repository

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByURL(ctx context.Context, url string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	DeleteByURL(ctx context.Context, url string) error
}
