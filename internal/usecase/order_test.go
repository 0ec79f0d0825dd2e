package usecase_test

import (
	. "github.com/suoapvs/alexcoffee/internal/usecase"

	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/suoapvs/alexcoffee/internal/cartstore"
	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	testhelpers "github.com/suoapvs/alexcoffee/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type orderFixture struct {
	uc       *OrderUseCase
	carts    *cartstore.MemoryStore
	orders   *testhelpers.OrderRepositoryStub
	users    *testhelpers.UserRepositoryStub
	events   *testhelpers.PublisherStub
	products *testhelpers.ProductRepositoryStub
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		carts:  cartstore.NewMemoryStore(time.Minute),
		orders: testhelpers.NewOrderRepositoryStub(),
		users:  testhelpers.NewUserRepositoryStub(),
		events: &testhelpers.PublisherStub{},
		products: testhelpers.NewProductRepositoryStub(
			catalogProduct(1, 111, "espresso", nil),
			catalogProduct(2, 222, "latte", nil),
		),
	}
	f.uc = NewOrderUseCase(f.orders, f.users, f.carts, f.events, discardLogger())
	return f
}

func (f *orderFixture) fillCart(t *testing.T, sessionID string) {
	t.Helper()
	carts := NewCartUseCase(f.carts, f.products)
	ctx := context.Background()
	if _, err := carts.AddProduct(ctx, sessionID, 1, 2); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	if _, err := carts.AddProduct(ctx, sessionID, 2, 1); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func TestOrderUseCaseCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture()
	if _, err := f.uc.Checkout(context.Background(), "session", CheckoutDetails{}); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderUseCaseCheckoutGuest(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.fillCart(t, "session")

	order, err := f.uc.Checkout(ctx, "session", CheckoutDetails{
		Name:            "Walk-in",
		Email:           "",
		Phone:           "+100",
		ShippingAddress: "Main st. 1",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Number() == "" {
		t.Fatalf("expected order number to be generated")
	}
	if order.Status() != model.OrderStatusNew {
		t.Fatalf("expected NEW status, got %v", order.Status())
	}
	client := order.Client()
	if client == nil || client.Name != "Walk-in" || client.Role != model.RoleClient {
		t.Fatalf("unexpected client %+v", client)
	}
	if order.Price() != 30 {
		t.Fatalf("expected total 30, got %v", order.Price())
	}
	for _, position := range order.SalePositions() {
		if position.Order() != order {
			t.Fatalf("position not re-parented onto the order")
		}
	}

	// Cart is destroyed after a successful checkout.
	cart, err := f.carts.Get(ctx, "session")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.Size() != 0 {
		t.Fatalf("expected cart to be emptied, size %d", cart.Size())
	}

	if len(f.events.Published) != 1 {
		t.Fatalf("expected one published event, got %d", len(f.events.Published))
	}
	event := f.events.Published[0]
	if event.Number != order.Number() || event.Positions != 2 || event.Total != 30 {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestOrderUseCaseCheckoutAuthenticatedClient(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	client, err := f.users.Create(ctx, model.NewUserBuilder().
		Name("Carol").
		Email("carol@example.com").
		Build())
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	f.fillCart(t, "session")

	order, err := f.uc.Checkout(ctx, "session", CheckoutDetails{ClientID: client.ID})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Client() != client {
		t.Fatalf("expected stored client to be reused, got %+v", order.Client())
	}
}

func TestOrderUseCaseCheckoutPublishFailureIsNotFatal(t *testing.T) {
	f := newOrderFixture()
	f.events.Err = errors.New("broker down")
	f.fillCart(t, "session")

	order, err := f.uc.Checkout(context.Background(), "session", CheckoutDetails{Name: "Guest"})
	if err != nil {
		t.Fatalf("checkout must succeed despite publish failure: %v", err)
	}
	if _, err := f.orders.GetByNumber(context.Background(), order.Number()); err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
}

func TestOrderUseCaseCheckoutRepositoryError(t *testing.T) {
	f := newOrderFixture()
	f.orders.CreateFn = func(context.Context, *model.Order) (*model.Order, error) {
		return nil, errors.New("db down")
	}
	f.fillCart(t, "session")

	if _, err := f.uc.Checkout(context.Background(), "session", CheckoutDetails{}); err == nil {
		t.Fatalf("expected error from repository")
	}
	// The cart survives a failed checkout.
	cart, err := f.carts.Get(context.Background(), "session")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.Size() == 0 {
		t.Fatalf("expected cart to be kept on failure")
	}
	if len(f.events.Published) != 0 {
		t.Fatalf("no event expected on failure")
	}
}

func TestOrderUseCaseUpdateStatus(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.fillCart(t, "session")
	order, err := f.uc.Checkout(ctx, "session", CheckoutDetails{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if err := f.uc.UpdateStatus(ctx, order.Number(), model.OrderStatusWork); err != nil {
		t.Fatalf("update status: %v", err)
	}
	stored, err := f.uc.OrderByNumber(ctx, order.Number())
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if stored.Status() != model.OrderStatusWork {
		t.Fatalf("expected WORK status, got %v", stored.Status())
	}

	if err := f.uc.UpdateStatus(ctx, " ", model.OrderStatusClosed); !errors.Is(err, domainErrors.ErrBlankIdentifier) {
		t.Fatalf("expected ErrBlankIdentifier, got %v", err)
	}
	if err := f.uc.UpdateStatus(ctx, "UNKNOWN000", model.OrderStatusClosed); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderUseCaseAssignManager(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	manager, err := f.users.Create(ctx, model.NewUserBuilder().
		Email("manager@example.com").
		Role(model.RoleManager).
		Build())
	if err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	client, err := f.users.Create(ctx, model.NewUserBuilder().
		Email("client@example.com").
		Build())
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	f.fillCart(t, "session")
	order, err := f.uc.Checkout(ctx, "session", CheckoutDetails{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if err := f.uc.AssignManager(ctx, order.Number(), client.ID); !errors.Is(err, domainErrors.ErrNotManager) {
		t.Fatalf("expected ErrNotManager, got %v", err)
	}
	if err := f.uc.AssignManager(ctx, order.Number(), manager.ID); err != nil {
		t.Fatalf("assign manager: %v", err)
	}
	stored, err := f.uc.OrderByNumber(ctx, order.Number())
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if stored.Manager() == nil || stored.Manager().ID != manager.ID {
		t.Fatalf("manager not assigned: %+v", stored.Manager())
	}
}

func TestOrderUseCaseClientOrders(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	client, err := f.users.Create(ctx, model.NewUserBuilder().
		Email("carol@example.com").
		Build())
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	f.fillCart(t, "first")
	if _, err := f.uc.Checkout(ctx, "first", CheckoutDetails{ClientID: client.ID}); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	f.fillCart(t, "second")
	if _, err := f.uc.Checkout(ctx, "second", CheckoutDetails{Name: "Guest"}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	mine, err := f.uc.ClientOrders(ctx, client.ID)
	if err != nil {
		t.Fatalf("client orders: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one order for client, got %d", len(mine))
	}
	all, err := f.uc.Orders(ctx)
	if err != nil {
		t.Fatalf("all orders: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two orders, got %d", len(all))
	}
}

func TestOrderUseCaseDelete(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.fillCart(t, "session")
	order, err := f.uc.Checkout(ctx, "session", CheckoutDetails{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if err := f.uc.DeleteByNumber(ctx, ""); !errors.Is(err, domainErrors.ErrBlankIdentifier) {
		t.Fatalf("expected ErrBlankIdentifier, got %v", err)
	}
	if err := f.uc.DeleteByNumber(ctx, order.Number()); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := f.uc.OrderByNumber(ctx, order.Number()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	f.fillCart(t, "another")
	if _, err := f.uc.Checkout(ctx, "another", CheckoutDetails{}); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if err := f.uc.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	left, err := f.uc.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no orders, got %d", len(left))
	}
}
