package repository

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// OrderRepository describes persistence operations for orders. Create
// persists the order together with its sale positions in one
// transaction; the back-reference invariant must already hold on the
// handed-off aggregate. Deleting an order cascades to its positions.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error
	AssignManager(ctx context.Context, number string, managerID int64) error
	DeleteByNumber(ctx context.Context, number string) error
	DeleteAll(ctx context.Context) error
}
