package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/suoapvs/alexcoffee/internal/adapter/events"
	"github.com/suoapvs/alexcoffee/internal/app"
	"github.com/suoapvs/alexcoffee/internal/cartstore"
	"github.com/suoapvs/alexcoffee/internal/config"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
	"github.com/suoapvs/alexcoffee/internal/storage/postgres"
	"github.com/suoapvs/alexcoffee/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AuthSecret:      "secret",
		AuthTokenTTL:    time.Hour,
		CartTTL:         time.Minute,
		CartSweepPeriod: time.Millisecond,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	categoryRepo := test.NewCategoryRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()
	carts := cartstore.NewMemoryStore(time.Minute)
	publisher := &test.PublisherStub{}

	var facade *app.CoffeeFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CategoryRepository(categoryRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(cartstore.Store(carts)),
			fx.Replace(events.Publisher(publisher)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected coffee facade instance")
	}
}
