package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/suoapvs/alexcoffee/internal/adapter/events"
	"github.com/suoapvs/alexcoffee/internal/cartstore"
	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

// CheckoutDetails carries the contact and shipping input collected at
// checkout. Absent fields resolve to safe defaults inside the builders.
type CheckoutDetails struct {
	ClientID        int64
	Name            string
	Email           string
	Phone           string
	ShippingAddress string
	ShippingDetails string
	Description     string
}

// OrderUseCase drives checkout and order administration.
type OrderUseCase struct {
	orders    repository.OrderRepository
	users     repository.UserRepository
	carts     cartstore.Store
	publisher events.Publisher
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, carts cartstore.Store, publisher events.Publisher, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, carts: carts, publisher: publisher, logger: logger}
}

// Checkout drains the session's cart into a freshly built order,
// persists it, destroys the cart and emits an order-placed event.
// The built order is handed to the store with its back-reference
// invariant already holding: the builder re-parents every position.
func (u *OrderUseCase) Checkout(ctx context.Context, sessionID string, details CheckoutDetails) (*model.Order, error) {
	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.Size() == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	client, err := u.resolveClient(ctx, details)
	if err != nil {
		return nil, err
	}

	order := model.NewOrderBuilder().
		ShippingAddress(details.ShippingAddress).
		ShippingDetails(details.ShippingDetails).
		Description(details.Description).
		Client(client).
		SalePositions(cart.SalePositions()).
		Build()

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := u.carts.Delete(ctx, sessionID); err != nil {
		u.logger.Error("destroy cart after checkout failed",
			slog.String("session", sessionID), slog.String("error", err.Error()))
	}

	event := events.OrderPlaced{
		Number:      created.Number(),
		ClientName:  created.Client().Name,
		ClientEmail: created.Client().Email,
		Positions:   len(created.SalePositions()),
		Total:       created.Price(),
		PlacedAt:    created.CreatedAt(),
	}
	if err := u.publisher.PublishOrderPlaced(ctx, event); err != nil {
		// Checkout already succeeded; the event is best-effort.
		u.logger.Error("publish order event failed",
			slog.String("number", created.Number()), slog.String("error", err.Error()))
	}

	return created, nil
}

// resolveClient reuses the authenticated user when present, otherwise
// builds a transient CLIENT from the supplied contact details.
func (u *OrderUseCase) resolveClient(ctx context.Context, details CheckoutDetails) (*model.User, error) {
	if details.ClientID != 0 {
		client, err := u.users.GetByID(ctx, details.ClientID)
		if err == nil {
			return client, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}
	return model.NewUserBuilder().
		Name(details.Name).
		Email(details.Email).
		Phone(details.Phone).
		Build(), nil
}

// Orders lists every order for back-office views.
func (u *OrderUseCase) Orders(ctx context.Context) ([]*model.Order, error) {
	return u.orders.List(ctx)
}

// OrderByNumber fetches a single order by its code.
func (u *OrderUseCase) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	if strings.TrimSpace(number) == "" {
		return nil, domainErrors.ErrBlankIdentifier
	}
	return u.orders.GetByNumber(ctx, number)
}

// ClientOrders lists the authenticated client's own orders.
func (u *OrderUseCase) ClientOrders(ctx context.Context, clientID int64) ([]*model.Order, error) {
	return u.orders.ListByClient(ctx, clientID)
}

// UpdateStatus sets any status on the order. Transition legality is an
// administrative policy decision and deliberately not enforced here.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	if strings.TrimSpace(number) == "" {
		return domainErrors.ErrBlankIdentifier
	}
	return u.orders.UpdateStatus(ctx, number, status)
}

// AssignManager puts an order into a manager's hands.
func (u *OrderUseCase) AssignManager(ctx context.Context, number string, managerID int64) error {
	if strings.TrimSpace(number) == "" {
		return domainErrors.ErrBlankIdentifier
	}

	manager, err := u.users.GetByID(ctx, managerID)
	if err != nil {
		return err
	}
	if manager.Role != model.RoleManager && manager.Role != model.RoleAdmin {
		return domainErrors.ErrNotManager
	}

	return u.orders.AssignManager(ctx, number, managerID)
}

// DeleteByNumber removes an order and, by cascade, its positions.
func (u *OrderUseCase) DeleteByNumber(ctx context.Context, number string) error {
	if strings.TrimSpace(number) == "" {
		return domainErrors.ErrBlankIdentifier
	}
	return u.orders.DeleteByNumber(ctx, number)
}

// DeleteAll removes every order.
func (u *OrderUseCase) DeleteAll(ctx context.Context) error {
	return u.orders.DeleteAll(ctx)
}
