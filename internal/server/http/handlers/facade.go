package handlers

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
	pkgAuth "github.com/suoapvs/alexcoffee/internal/pkg/auth"
	"github.com/suoapvs/alexcoffee/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserAdminFacade manages user accounts from the back office.
type UserAdminFacade interface {
	UsersByRole(ctx context.Context, role model.UserRole) ([]*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogFacade serves public catalog browsing.
type CatalogFacade interface {
	Products(ctx context.Context) ([]*model.Product, error)
	ProductByURL(ctx context.Context, url string) (*model.Product, error)
	ProductByArticle(ctx context.Context, article int) (*model.Product, error)
	ProductsByCategory(ctx context.Context, categoryURL string) ([]*model.Product, error)
	Categories(ctx context.Context) ([]*model.Category, error)
	CategoryByURL(ctx context.Context, url string) (*model.Category, error)
}

// CatalogAdminFacade mutates the catalog from the back office.
type CatalogAdminFacade interface {
	SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProductByURL(ctx context.Context, url string) error
	DeleteProductByArticle(ctx context.Context, article int) error
	DeleteAllProducts(ctx context.Context) error
	SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategoryByURL(ctx context.Context, url string) error
}

// CartFacade exposes session cart operations.
type CartFacade interface {
	Cart(ctx context.Context, sessionID string) (*model.ShoppingCart, error)
	AddProduct(ctx context.Context, sessionID string, productID int64, quantity int) (*model.ShoppingCart, error)
	RemoveProduct(ctx context.Context, sessionID string, productID int64) (*model.ShoppingCart, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderFacade exposes checkout and the client's own order history.
type OrderFacade interface {
	Checkout(ctx context.Context, sessionID string, details usecase.CheckoutDetails) (*model.Order, error)
	ClientOrders(ctx context.Context, clientID int64) ([]*model.Order, error)
}

// OrderAdminFacade drives order administration.
type OrderAdminFacade interface {
	Orders(ctx context.Context) ([]*model.Order, error)
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error
	AssignManager(ctx context.Context, number string, managerID int64) error
	DeleteByNumber(ctx context.Context, number string) error
	DeleteAll(ctx context.Context) error
}

// CoffeeFacade aggregates the full set of operations used across handlers.
type CoffeeFacade interface {
	AuthFacade
	UserAdminFacade
	CatalogFacade
	CatalogAdminFacade
	CartFacade
	OrderFacade
	OrderAdminFacade
}
