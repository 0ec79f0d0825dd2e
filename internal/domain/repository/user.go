package repository

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	Delete(ctx context.Context, id int64) error
}
