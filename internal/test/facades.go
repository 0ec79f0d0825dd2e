package test

import (
	"context"

	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/pkg/auth"
	"github.com/suoapvs/alexcoffee/internal/usecase"
)

// AuthFacadeStub implements handler-facing authentication interfaces.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn   func(string) (auth.Claims, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
	UsersByRoleFn  func(context.Context, model.UserRole) ([]*model.User, error)
	DeleteUserFn   func(context.Context, int64) error
}

func (s *AuthFacadeStub) Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	return s.RegisterFn(ctx, name, email, phone, password)
}

func (s *AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.AuthenticateFn(ctx, email, password)
}

func (s *AuthFacadeStub) ParseToken(token string) (auth.Claims, error) {
	return s.ParseTokenFn(token)
}

func (s *AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.UserByIDFn(ctx, id)
}

func (s *AuthFacadeStub) UsersByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	return s.UsersByRoleFn(ctx, role)
}

func (s *AuthFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	return s.DeleteUserFn(ctx, id)
}

// CatalogFacadeStub implements handler-facing catalog interfaces.
type CatalogFacadeStub struct {
	ProductsFn               func(context.Context) ([]*model.Product, error)
	ProductByURLFn           func(context.Context, string) (*model.Product, error)
	ProductByArticleFn       func(context.Context, int) (*model.Product, error)
	ProductsByCategoryFn     func(context.Context, string) ([]*model.Product, error)
	CategoriesFn             func(context.Context) ([]*model.Category, error)
	CategoryByURLFn          func(context.Context, string) (*model.Category, error)
	SaveProductFn            func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn          func(context.Context, *model.Product) error
	DeleteProductByURLFn     func(context.Context, string) error
	DeleteProductByArticleFn func(context.Context, int) error
	DeleteAllProductsFn      func(context.Context) error
	SaveCategoryFn           func(context.Context, *model.Category) (*model.Category, error)
	DeleteCategoryByURLFn    func(context.Context, string) error
}

func (s *CatalogFacadeStub) Products(ctx context.Context) ([]*model.Product, error) {
	return s.ProductsFn(ctx)
}

func (s *CatalogFacadeStub) ProductByURL(ctx context.Context, url string) (*model.Product, error) {
	return s.ProductByURLFn(ctx, url)
}

func (s *CatalogFacadeStub) ProductByArticle(ctx context.Context, article int) (*model.Product, error) {
	return s.ProductByArticleFn(ctx, article)
}

func (s *CatalogFacadeStub) ProductsByCategory(ctx context.Context, categoryURL string) ([]*model.Product, error) {
	return s.ProductsByCategoryFn(ctx, categoryURL)
}

func (s *CatalogFacadeStub) Categories(ctx context.Context) ([]*model.Category, error) {
	return s.CategoriesFn(ctx)
}

func (s *CatalogFacadeStub) CategoryByURL(ctx context.Context, url string) (*model.Category, error) {
	return s.CategoryByURLFn(ctx, url)
}

func (s *CatalogFacadeStub) SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return s.SaveProductFn(ctx, product)
}

func (s *CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.UpdateProductFn(ctx, product)
}

func (s *CatalogFacadeStub) DeleteProductByURL(ctx context.Context, url string) error {
	return s.DeleteProductByURLFn(ctx, url)
}

func (s *CatalogFacadeStub) DeleteProductByArticle(ctx context.Context, article int) error {
	return s.DeleteProductByArticleFn(ctx, article)
}

func (s *CatalogFacadeStub) DeleteAllProducts(ctx context.Context) error {
	return s.DeleteAllProductsFn(ctx)
}

func (s *CatalogFacadeStub) SaveCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return s.SaveCategoryFn(ctx, category)
}

func (s *CatalogFacadeStub) DeleteCategoryByURL(ctx context.Context, url string) error {
	return s.DeleteCategoryByURLFn(ctx, url)
}

// CartFacadeStub implements handler-facing cart interfaces.
type CartFacadeStub struct {
	CartFn          func(context.Context, string) (*model.ShoppingCart, error)
	AddProductFn    func(context.Context, string, int64, int) (*model.ShoppingCart, error)
	RemoveProductFn func(context.Context, string, int64) (*model.ShoppingCart, error)
	ClearFn         func(context.Context, string) error
}

func (s *CartFacadeStub) Cart(ctx context.Context, sessionID string) (*model.ShoppingCart, error) {
	return s.CartFn(ctx, sessionID)
}

func (s *CartFacadeStub) AddProduct(ctx context.Context, sessionID string, productID int64, quantity int) (*model.ShoppingCart, error) {
	return s.AddProductFn(ctx, sessionID, productID, quantity)
}

func (s *CartFacadeStub) RemoveProduct(ctx context.Context, sessionID string, productID int64) (*model.ShoppingCart, error) {
	return s.RemoveProductFn(ctx, sessionID, productID)
}

func (s *CartFacadeStub) Clear(ctx context.Context, sessionID string) error {
	return s.ClearFn(ctx, sessionID)
}

// OrderFacadeStub implements handler-facing order interfaces.
type OrderFacadeStub struct {
	CheckoutFn       func(context.Context, string, usecase.CheckoutDetails) (*model.Order, error)
	OrdersFn         func(context.Context) ([]*model.Order, error)
	OrderByNumberFn  func(context.Context, string) (*model.Order, error)
	ClientOrdersFn   func(context.Context, int64) ([]*model.Order, error)
	UpdateStatusFn   func(context.Context, string, model.OrderStatus) error
	AssignManagerFn  func(context.Context, string, int64) error
	DeleteByNumberFn func(context.Context, string) error
	DeleteAllFn      func(context.Context) error
}

func (s *OrderFacadeStub) Checkout(ctx context.Context, sessionID string, details usecase.CheckoutDetails) (*model.Order, error) {
	return s.CheckoutFn(ctx, sessionID, details)
}

func (s *OrderFacadeStub) Orders(ctx context.Context) ([]*model.Order, error) {
	return s.OrdersFn(ctx)
}

func (s *OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return s.OrderByNumberFn(ctx, number)
}

func (s *OrderFacadeStub) ClientOrders(ctx context.Context, clientID int64) ([]*model.Order, error) {
	return s.ClientOrdersFn(ctx, clientID)
}

func (s *OrderFacadeStub) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	return s.UpdateStatusFn(ctx, number, status)
}

func (s *OrderFacadeStub) AssignManager(ctx context.Context, number string, managerID int64) error {
	return s.AssignManagerFn(ctx, number, managerID)
}

func (s *OrderFacadeStub) DeleteByNumber(ctx context.Context, number string) error {
	return s.DeleteByNumberFn(ctx, number)
}

func (s *OrderFacadeStub) DeleteAll(ctx context.Context) error {
	return s.DeleteAllFn(ctx)
}

// TokenParserStub implements token parsing for middleware tests.
type TokenParserStub struct {
	Claims  auth.Claims
	Err     error
	ParseFn func(string) (auth.Claims, error)
}

func (s TokenParserStub) ParseToken(token string) (auth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return auth.Claims{}, s.Err
	}
	return s.Claims, nil
}

// CoffeeFacadeStub aggregates every handler-facing stub so router
// tests can wire the whole HTTP surface at once.
type CoffeeFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
}
