package app

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
	pkgAuth "github.com/suoapvs/alexcoffee/internal/pkg/auth"
	"github.com/suoapvs/alexcoffee/internal/usecase"
)

// CoffeeFacade is the single entry point the HTTP layer talks to. It
// delegates to the use cases without adding behavior of its own.
type CoffeeFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	cart    *usecase.CartUseCase
	orders  *usecase.OrderUseCase
}

func NewCoffeeFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, cart *usecase.CartUseCase, orders *usecase.OrderUseCase) *CoffeeFacade {
	return &CoffeeFacade{auth: auth, catalog: catalog, cart: cart, orders: orders}
}

func (f *CoffeeFacade) Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, phone, password)
}

func (f *CoffeeFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CoffeeFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *CoffeeFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.UserByID(ctx, id)
}

func (f *CoffeeFacade) UsersByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	return f.auth.UsersByRole(ctx, role)
}

func (f *CoffeeFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.auth.DeleteUser(ctx, id)
}

func (f *CoffeeFacade) Products(ctx context.Context) ([]*model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *CoffeeFacade) ProductByURL(ctx context.Context, url string) (*model.Product, error) {
	return f.catalog.ProductByURL(ctx, url)
}

func (f *CoffeeFacade) ProductByArticle(ctx context.Context, article int) (*model.Product, error) {
	return f.catalog.ProductByArticle(ctx, article)
}

func (f *CoffeeFacade) ProductsByCategory(ctx context.Context, categoryURL string) ([]*model.Product, error) {
	return f.catalog.ProductsByCategory(ctx, categoryURL)
}

func (f *CoffeeFacade) Categories(ctx context.Context) ([]*model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *CoffeeFacade) CategoryByURL(ctx context.Context, url string) (*model.Category, error) {
	return f.catalog.CategoryByURL(ctx, url)
}

func (f *CoffeeFacade) SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.SaveProduct(ctx, product)
}

func (f *CoffeeFacade) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *CoffeeFacade) DeleteProductByURL(ctx context.Context, url string) error {
	return f.catalog.DeleteProductByURL(ctx, url)
}

func (f *CoffeeFacade) DeleteProductByArticle(ctx context.Context, article int) error {
	return f.catalog.DeleteProductByArticle(ctx, article)
}

func (f *CoffeeFacade) DeleteAllProducts(ctx context.Context) error {
	return f.catalog.DeleteAllProducts(ctx)
}

func (f *CoffeeFacade) SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.SaveCategory(ctx, category)
}

func (f *CoffeeFacade) DeleteCategoryByURL(ctx context.Context, url string) error {
	return f.catalog.DeleteCategoryByURL(ctx, url)
}

func (f *CoffeeFacade) Cart(ctx context.Context, sessionID string) (*model.ShoppingCart, error) {
	return f.cart.Cart(ctx, sessionID)
}

func (f *CoffeeFacade) AddProduct(ctx context.Context, sessionID string, productID int64, quantity int) (*model.ShoppingCart, error) {
	return f.cart.AddProduct(ctx, sessionID, productID, quantity)
}

func (f *CoffeeFacade) RemoveProduct(ctx context.Context, sessionID string, productID int64) (*model.ShoppingCart, error) {
	return f.cart.RemoveProduct(ctx, sessionID, productID)
}

func (f *CoffeeFacade) Clear(ctx context.Context, sessionID string) error {
	return f.cart.Clear(ctx, sessionID)
}

func (f *CoffeeFacade) Checkout(ctx context.Context, sessionID string, details usecase.CheckoutDetails) (*model.Order, error) {
	return f.orders.Checkout(ctx, sessionID, details)
}

func (f *CoffeeFacade) ClientOrders(ctx context.Context, clientID int64) ([]*model.Order, error) {
	return f.orders.ClientOrders(ctx, clientID)
}

func (f *CoffeeFacade) Orders(ctx context.Context) ([]*model.Order, error) {
	return f.orders.Orders(ctx)
}

func (f *CoffeeFacade) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.OrderByNumber(ctx, number)
}

func (f *CoffeeFacade) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, number, status)
}

func (f *CoffeeFacade) AssignManager(ctx context.Context, number string, managerID int64) error {
	return f.orders.AssignManager(ctx, number, managerID)
}

func (f *CoffeeFacade) DeleteByNumber(ctx context.Context, number string) error {
	return f.orders.DeleteByNumber(ctx, number)
}

func (f *CoffeeFacade) DeleteAll(ctx context.Context) error {
	return f.orders.DeleteAll(ctx)
}
