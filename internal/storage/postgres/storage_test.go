package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS categories",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS sale_positions",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
		"CREATE INDEX IF NOT EXISTS idx_orders_client",
		"CREATE INDEX IF NOT EXISTS idx_sale_positions_order",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("parse error", func(t *testing.T) {
		if _, err := New(context.Background(), ":://bad", logger); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("schema init", func(t *testing.T) {
		mock, err := pgxmockv3.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		original := newPgxPool
		newPgxPool = func(context.Context, string) (pgxPool, error) { return mock, nil }
		defer func() { newPgxPool = original }()

		expectSchema(mock)
		storage, err := New(context.Background(), "postgres://localhost/coffee", logger)
		if err != nil {
			t.Fatalf("new storage: %v", err)
		}
		if storage == nil {
			t.Fatal("expected storage")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("schema failure closes pool", func(t *testing.T) {
		mock, err := pgxmockv3.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		original := newPgxPool
		newPgxPool = func(context.Context, string) (pgxPool, error) { return mock, nil }
		defer func() { newPgxPool = original }()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))
		mock.ExpectClose()
		if _, err := New(context.Background(), "postgres://localhost/coffee", logger); err == nil {
			t.Fatal("expected schema error")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Carol", "carol@example.com", "+100", "hash", "CLIENT").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	created, err := repo.Create(context.Background(), &model.User{
		Name:         "Carol",
		Email:        "carol@example.com",
		Phone:        "+100",
		PasswordHash: "hash",
		Role:         model.RoleClient,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID != 7 || !created.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := repo.Create(context.Background(), &model.User{Email: "dup@example.com", Role: model.RoleClient}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, email, phone, password_hash, role, created_at FROM users").
		WithArgs("carol@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "email", "phone", "password_hash", "role", "created_at"}).
			AddRow(int64(7), "Carol", "carol@example.com", "+100", "hash", "CLIENT", now))

	user, err := repo.GetByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if user.ID != 7 || user.Role != model.RoleClient {
		t.Fatalf("unexpected user %+v", user)
	}

	mock.ExpectQuery("SELECT id, name, email, phone, password_hash, role, created_at FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "email", "phone", "password_hash", "role", "created_at"}))

	if _, err := repo.GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(8)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), 8); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Categories()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Coffee", "coffee", "Fresh beans").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(3)))

	created, err := repo.Create(context.Background(), &model.Category{Title: "Coffee", URL: "coffee", Description: "Fresh beans"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("unexpected category %+v", created)
	}

	mock.ExpectQuery("SELECT id, title, url, description FROM categories").
		WithArgs("coffee").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "title", "url", "description"}).
			AddRow(int64(3), "Coffee", "coffee", "Fresh beans"))

	fetched, err := repo.GetByURL(context.Background(), "coffee")
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if fetched.Title != "Coffee" {
		t.Fatalf("unexpected category %+v", fetched)
	}

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("coffee").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.DeleteByURL(context.Background(), "coffee"); err != nil {
		t.Fatalf("delete category: %v", err)
	}
}

var productRowColumns = []string{
	"id", "article", "title", "url", "description", "photo_url", "price",
	"c_id", "c_title", "c_url", "c_description",
}

func TestProductRepositoryGetByURL(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	mock.ExpectQuery("SELECT p.id, p.article").
		WithArgs("espresso").
		WillReturnRows(pgxmockv3.NewRows(productRowColumns).
			AddRow(int64(1), 12345, "Espresso", "espresso", "", "photo.jpg", 10.5,
				int64(3), "Coffee", "coffee", ""))

	product, err := repo.GetByURL(context.Background(), "espresso")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.ID() != 1 || product.Article() != 12345 || product.Price() != 10.5 {
		t.Fatalf("unexpected product %+v", product)
	}
	if product.Category() == nil || product.Category().URL != "coffee" {
		t.Fatalf("expected category to be joined, got %+v", product.Category())
	}
}

func TestProductRepositoryGetWithoutCategory(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	mock.ExpectQuery("SELECT p.id, p.article").
		WithArgs(int64(2)).
		WillReturnRows(pgxmockv3.NewRows(productRowColumns).
			AddRow(int64(2), 54321, "Mug", "mug", "", "", 4.0,
				nil, nil, nil, nil))

	product, err := repo.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.Category() != nil {
		t.Fatalf("expected nil category, got %+v", product.Category())
	}
}

func TestProductRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	product := model.NewProductBuilder().Article(12345).Title("Espresso").URL("espresso").Price(10).Build()
	if _, err := repo.Create(context.Background(), product); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestProductRepositoryUpdateMissing(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	mock.ExpectExec("UPDATE products").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	product := model.NewProductBuilder().Article(12345).Title("Espresso").URL("espresso").Build()
	product.SetID(99)
	if err := repo.Update(context.Background(), product); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()
	now := time.Now()

	product := model.NewProductBuilder().Article(12345).Title("Espresso").URL("espresso").Price(10).Build()
	product.SetID(1)
	order := model.NewOrderBuilder().
		Number("AAAA111122").
		CreatedAt(now).
		Client(model.NewUserBuilder().Name("Guest").Build()).
		SalePosition(model.NewSalePosition(product, 2)).
		Build()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Guest", "", "", "", "CLIENT").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectQuery("INSERT INTO sale_positions").
		WithArgs(int64(9), int64(1), 2).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.ID() != 9 {
		t.Fatalf("expected order id 9, got %d", created.ID())
	}
	if created.Client().ID != 5 {
		t.Fatalf("expected guest client to be stored, got %+v", created.Client())
	}
	if created.SalePositions()[0].ID() != 11 {
		t.Fatalf("expected position id to be assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryCreateDuplicateNumber(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	order := model.NewOrderBuilder().
		Number("AAAA111122").
		Client(&model.User{ID: 5, Role: model.RoleClient}).
		Build()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	if _, err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

var orderRowColumns = []string{
	"id", "number", "status", "shipping_address", "shipping_details", "description", "created_at",
	"c_id", "c_name", "c_email", "c_phone", "c_role", "c_created_at",
	"m_id", "m_name", "m_email", "m_phone", "m_role",
}

var positionRowColumns = []string{
	"id", "number",
	"p_id", "p_article", "p_title", "p_url", "p_description", "p_photo_url", "p_price",
	"c_id", "c_title", "c_url", "c_description",
}

func TestOrderRepositoryGetByNumber(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()
	now := time.Now()

	mock.ExpectQuery("SELECT o.id, o.number").
		WithArgs("AAAA111122").
		WillReturnRows(pgxmockv3.NewRows(orderRowColumns).
			AddRow(int64(9), "AAAA111122", "NEW", "Main st. 1", "", "", now,
				int64(5), "Guest", "", "", "CLIENT", now,
				nil, nil, nil, nil, nil))
	mock.ExpectQuery("SELECT sp.id, sp.number").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows(positionRowColumns).
			AddRow(int64(11), 2, int64(1), 12345, "Espresso", "espresso", "", "", 10.0,
				nil, nil, nil, nil).
			AddRow(int64(12), 1, int64(2), 54321, "Latte", "latte", "", "", 12.5,
				nil, nil, nil, nil))

	order, err := repo.GetByNumber(context.Background(), "AAAA111122")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.Status() != model.OrderStatusNew {
		t.Fatalf("unexpected status %v", order.Status())
	}
	if order.Manager() != nil {
		t.Fatalf("expected no manager, got %+v", order.Manager())
	}
	positions := order.SalePositions()
	if len(positions) != 2 {
		t.Fatalf("expected two positions, got %d", len(positions))
	}
	for _, position := range positions {
		if position.Order() != order {
			t.Fatalf("position not attached to order")
		}
	}
	// 2 * 10.0 + 1 * 12.5, derived from the joined product prices.
	if order.Price() != 32.5 {
		t.Fatalf("unexpected total %v", order.Price())
	}
}

func TestOrderRepositoryGetByNumberNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectQuery("SELECT o.id, o.number").
		WithArgs("MISSING000").
		WillReturnRows(pgxmockv3.NewRows(orderRowColumns))

	if _, err := repo.GetByNumber(context.Background(), "MISSING000"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("WORK", "AAAA111122").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), "AAAA111122", model.OrderStatusWork); err != nil {
		t.Fatalf("update status: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("WORK", "MISSING000").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), "MISSING000", model.OrderStatusWork); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepositoryAssignManager(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectExec("UPDATE orders SET manager_id").
		WithArgs(int64(4), "AAAA111122").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.AssignManager(context.Background(), "AAAA111122", 4); err != nil {
		t.Fatalf("assign manager: %v", err)
	}
}

func TestOrderRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectExec("DELETE FROM orders").
		WithArgs("AAAA111122").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.DeleteByNumber(context.Background(), "AAAA111122"); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	mock.ExpectExec("DELETE FROM orders").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 3))
	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check: %v", err)
	}
}
