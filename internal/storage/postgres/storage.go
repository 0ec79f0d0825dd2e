package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a mock pool through the same interface.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool builds the production connection pool. Declared as a
// variable so tests can swap in a mock.
var newPgxPool = func(ctx context.Context, dsn string) (pgxPool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return pool, nil
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	pool, err := newPgxPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            url TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            article INTEGER UNIQUE NOT NULL,
            title TEXT NOT NULL,
            url TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            photo_url TEXT NOT NULL DEFAULT '',
            category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
            price DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL,
            client_id BIGINT NOT NULL REFERENCES users(id),
            manager_id BIGINT REFERENCES users(id),
            shipping_address TEXT NOT NULL DEFAULT '',
            shipping_details TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sale_positions (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
            number INTEGER NOT NULL
        )`,
		// Guest checkout users carry a blank email, so uniqueness only
		// applies to real addresses.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email) WHERE email <> ''`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_sale_positions_order ON sale_positions(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, phone, password_hash, role)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	stored := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.Phone, user.PasswordHash, string(user.Role)).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

const userColumns = `id, name, email, phone, password_hash, role, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = model.UserRole(role)
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1 AND email <> ''`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role=$1 ORDER BY id`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (title, url, description) VALUES ($1, $2, $3) RETURNING id`
	stored := *category
	err := r.storage.pool.QueryRow(ctx, query, category.Title, category.URL, category.Description).Scan(&stored.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *categoryRepository) GetByURL(ctx context.Context, url string) (*model.Category, error) {
	const query = `SELECT id, title, url, description FROM categories WHERE url=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, url).Scan(&c.ID, &c.Title, &c.URL, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, title, url, description FROM categories ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.URL, &c.Description); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) DeleteByURL(ctx context.Context, url string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE url=$1`, url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `p.id, p.article, p.title, p.url, p.description, p.photo_url, p.price,
                        c.id, c.title, c.url, c.description`

const productFrom = ` FROM products p LEFT JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		id                             int64
		article                        int
		title, url, description, photo string
		price                          float64
		catID                          *int64
		catTitle, catURL, catDesc      *string
	)
	err := row.Scan(&id, &article, &title, &url, &description, &photo, &price,
		&catID, &catTitle, &catURL, &catDesc)
	if err != nil {
		return nil, err
	}

	var category *model.Category
	if catID != nil {
		category = &model.Category{ID: *catID}
		if catTitle != nil {
			category.Title = *catTitle
		}
		if catURL != nil {
			category.URL = *catURL
		}
		if catDesc != nil {
			category.Description = *catDesc
		}
	}

	product := model.NewProductBuilder().
		Article(article).
		Title(title).
		URL(url).
		Description(description).
		PhotoURL(photo).
		Category(category).
		Price(price).
		Build()
	product.SetID(id)
	return product, nil
}

func categoryID(product *model.Product) *int64 {
	if category := product.Category(); category != nil && category.ID != 0 {
		id := category.ID
		return &id
	}
	return nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (article, title, url, description, photo_url, category_id, price)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query,
		product.Article(), product.Title(), product.URL(), product.Description(),
		product.PhotoURL(), categoryID(product), product.Price()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	product.SetID(id)
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products SET article=$1, title=$2, url=$3, description=$4,
                   photo_url=$5, category_id=$6, price=$7 WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Article(), product.Title(), product.URL(), product.Description(),
		product.PhotoURL(), categoryID(product), product.Price(), product.ID())
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) getOne(ctx context.Context, where string, arg any) (*model.Product, error) {
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, `SELECT `+productColumns+productFrom+` WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return r.getOne(ctx, `p.id=$1`, id)
}

func (r *productRepository) GetByURL(ctx context.Context, url string) (*model.Product, error) {
	return r.getOne(ctx, `p.url=$1`, url)
}

func (r *productRepository) GetByArticle(ctx context.Context, article int) (*model.Product, error) {
	return r.getOne(ctx, `p.article=$1`, article)
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]*model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) List(ctx context.Context) ([]*model.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+productFrom+` ORDER BY p.id`)
}

func (r *productRepository) ListByCategoryURL(ctx context.Context, url string) ([]*model.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+productFrom+` WHERE c.url=$1 ORDER BY p.id`, url)
}

func (r *productRepository) deleteWhere(ctx context.Context, where string, arg any) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE `+where, arg)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.deleteWhere(ctx, `id=$1`, id)
}

func (r *productRepository) DeleteByURL(ctx context.Context, url string) error {
	return r.deleteWhere(ctx, `url=$1`, url)
}

func (r *productRepository) DeleteByArticle(ctx context.Context, article int) error {
	return r.deleteWhere(ctx, `article=$1`, article)
}

func (r *productRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM products`)
	return err
}

// --- OrderRepository implementation ---

// Create persists the order, its client when not yet stored, and its
// sale positions inside one transaction. Position rows carry only the
// product reference and quantity; money amounts are always derived
// from the current product price at read time.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		client := order.Client()
		if client.ID == 0 {
			const insertClient = `INSERT INTO users (name, email, phone, password_hash, role)
                                  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
			err := tx.QueryRow(ctx, insertClient, client.Name, client.Email, client.Phone,
				client.PasswordHash, string(client.Role)).Scan(&client.ID, &client.CreatedAt)
			if err != nil {
				return err
			}
		}

		var managerID *int64
		if manager := order.Manager(); manager != nil {
			managerID = &manager.ID
		}

		const insertOrder = `INSERT INTO orders (number, status, client_id, manager_id,
                             shipping_address, shipping_details, description, created_at)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		var orderID int64
		err := tx.QueryRow(ctx, insertOrder, order.Number(), string(order.Status()), client.ID, managerID,
			order.ShippingAddress(), order.ShippingDetails(), order.Description(), order.CreatedAt()).Scan(&orderID)
		if err != nil {
			return err
		}
		order.SetID(orderID)

		const insertPosition = `INSERT INTO sale_positions (order_id, product_id, number)
                                VALUES ($1, $2, $3) RETURNING id`
		for _, position := range order.SalePositions() {
			if position.Product() == nil {
				continue
			}
			var positionID int64
			if err := tx.QueryRow(ctx, insertPosition, orderID, position.Product().ID(), position.Number()).Scan(&positionID); err != nil {
				return err
			}
			position.SetID(positionID)
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.number, o.status, o.shipping_address, o.shipping_details, o.description, o.created_at,
                      c.id, c.name, c.email, c.phone, c.role, c.created_at,
                      m.id, m.name, m.email, m.phone, m.role`

const orderFrom = ` FROM orders o
                    JOIN users c ON c.id = o.client_id
                    LEFT JOIN users m ON m.id = o.manager_id`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		id                         int64
		number, status             string
		address, details, descr    string
		createdAt                  time.Time
		client                     model.User
		clientRole                 string
		mID                        *int64
		mName, mEmail, mPhone, mRl *string
	)
	err := row.Scan(&id, &number, &status, &address, &details, &descr, &createdAt,
		&client.ID, &client.Name, &client.Email, &client.Phone, &clientRole, &client.CreatedAt,
		&mID, &mName, &mEmail, &mPhone, &mRl)
	if err != nil {
		return nil, err
	}
	client.Role = model.UserRole(clientRole)

	var manager *model.User
	if mID != nil {
		manager = &model.User{ID: *mID}
		if mName != nil {
			manager.Name = *mName
		}
		if mEmail != nil {
			manager.Email = *mEmail
		}
		if mPhone != nil {
			manager.Phone = *mPhone
		}
		if mRl != nil {
			manager.Role = model.UserRole(*mRl)
		}
	}

	order := model.NewOrderBuilder().
		Number(number).
		Status(model.OrderStatus(status)).
		CreatedAt(createdAt).
		ShippingAddress(address).
		ShippingDetails(details).
		Description(descr).
		Client(&client).
		Manager(manager).
		Build()
	order.SetID(id)
	return order, nil
}

// loadPositions rebuilds an order's sale positions with their products
// joined in, so position prices reflect the current catalog.
func (r *orderRepository) loadPositions(ctx context.Context, order *model.Order) error {
	const query = `SELECT sp.id, sp.number, ` + productColumns + `
                   FROM sale_positions sp
                   JOIN products p ON p.id = sp.product_id
                   LEFT JOIN categories c ON c.id = p.category_id
                   WHERE sp.order_id=$1 ORDER BY sp.id`
	rows, err := r.storage.pool.Query(ctx, query, order.ID())
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			positionID                     int64
			quantity                       int
			productID                      int64
			article                        int
			title, url, description, photo string
			price                          float64
			catID                          *int64
			catTitle, catURL, catDesc      *string
		)
		err := rows.Scan(&positionID, &quantity, &productID, &article, &title, &url, &description, &photo, &price,
			&catID, &catTitle, &catURL, &catDesc)
		if err != nil {
			return err
		}

		var category *model.Category
		if catID != nil {
			category = &model.Category{ID: *catID}
			if catTitle != nil {
				category.Title = *catTitle
			}
			if catURL != nil {
				category.URL = *catURL
			}
			if catDesc != nil {
				category.Description = *catDesc
			}
		}

		product := model.NewProductBuilder().
			Article(article).
			Title(title).
			URL(url).
			Description(description).
			PhotoURL(photo).
			Category(category).
			Price(price).
			Build()
		product.SetID(productID)

		position := model.NewSalePosition(product, quantity)
		position.SetID(positionID)
		order.AddSalePosition(position)
	}
	return rows.Err()
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.number=$1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadPositions(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]*model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var result []*model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		result = append(result, order)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range result {
		if err := r.loadPositions(ctx, order); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *orderRepository) List(ctx context.Context) ([]*model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+orderFrom+` ORDER BY o.created_at DESC`)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int64) ([]*model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.client_id=$1 ORDER BY o.created_at DESC`, clientID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status=$1 WHERE number=$2`, string(status), number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) AssignManager(ctx context.Context, number string, managerID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET manager_id=$1 WHERE number=$2`, managerID, number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteByNumber(ctx context.Context, number string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE number=$1`, number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
