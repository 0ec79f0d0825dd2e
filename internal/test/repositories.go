package test

import (
	"context"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is already taken or the stub has an
// explicit error. Blank emails never collide, mirroring guest checkout users.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if user.Email != "" {
		if _, exists := s.ByEmail[user.Email]; exists {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	if stored.Email != "" {
		s.ByEmail[stored.Email] = &stored
	}
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRole returns every stored user carrying the requested role.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var users []*model.User
	for _, user := range s.ByID {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	if user.Email != "" {
		delete(s.ByEmail, user.Email)
	}
	return nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products []*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs an empty product repository stub.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Next: 1}
	for _, product := range products {
		if product.ID() >= stub.Next {
			stub.Next = product.ID() + 1
		}
		stub.Products = append(stub.Products, product)
	}
	return stub
}

// Create stores product rejecting duplicate articles and URLs.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Products {
		if existing.Article() == product.Article() || existing.URL() == product.URL() {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	product.SetID(s.Next)
	s.Next++
	s.Products = append(s.Products, product)
	return product, nil
}

// Update replaces the stored product matched by identifier.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	for i, existing := range s.Products {
		if existing.ID() == product.ID() {
			s.Products[i] = product
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, product := range s.Products {
		if product.ID() == id {
			return product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByURL fetches product by URL or returns not found.
func (s *ProductRepositoryStub) GetByURL(ctx context.Context, url string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, product := range s.Products {
		if product.URL() == url {
			return product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByArticle fetches product by article or returns not found.
func (s *ProductRepositoryStub) GetByArticle(ctx context.Context, article int) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, product := range s.Products {
		if product.Article() == article {
			return product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]*model.Product(nil), s.Products...), nil
}

// ListByCategoryURL returns products whose category matches the URL.
func (s *ProductRepositoryStub) ListByCategoryURL(ctx context.Context, url string) ([]*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var products []*model.Product
	for _, product := range s.Products {
		if category := product.Category(); category != nil && category.URL == url {
			products = append(products, product)
		}
	}
	return products, nil
}

// DeleteByID removes the product matched by identifier.
func (s *ProductRepositoryStub) DeleteByID(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, product := range s.Products {
		if product.ID() == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// DeleteByURL removes the product matched by URL.
func (s *ProductRepositoryStub) DeleteByURL(ctx context.Context, url string) error {
	if s.Err != nil {
		return s.Err
	}
	for i, product := range s.Products {
		if product.URL() == url {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// DeleteByArticle removes the product matched by article.
func (s *ProductRepositoryStub) DeleteByArticle(ctx context.Context, article int) error {
	if s.Err != nil {
		return s.Err
	}
	for i, product := range s.Products {
		if product.Article() == article {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// DeleteAll clears every stored product.
func (s *ProductRepositoryStub) DeleteAll(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	s.Products = nil
	return nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories []*model.Category
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs a category repository stub with seeds.
func NewCategoryRepositoryStub(categories ...*model.Category) *CategoryRepositoryStub {
	stub := &CategoryRepositoryStub{Next: 1}
	for _, category := range categories {
		if category.ID >= stub.Next {
			stub.Next = category.ID + 1
		}
		stub.Categories = append(stub.Categories, category)
	}
	return stub
}

// Create stores category rejecting duplicate URLs.
func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Categories {
		if existing.URL == category.URL {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	category.ID = s.Next
	s.Next++
	s.Categories = append(s.Categories, category)
	return category, nil
}

// GetByURL fetches category by URL or returns not found.
func (s *CategoryRepositoryStub) GetByURL(ctx context.Context, url string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, category := range s.Categories {
		if category.URL == url {
			return category, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]*model.Category(nil), s.Categories...), nil
}

// DeleteByURL removes the category matched by URL.
func (s *CategoryRepositoryStub) DeleteByURL(ctx context.Context, url string) error {
	if s.Err != nil {
		return s.Err
	}
	for i, category := range s.Categories {
		if category.URL == url {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour per call while
// falling back to a simple in-memory map.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, *model.Order) (*model.Order, error)
	GetByNumberFn   func(context.Context, string) (*model.Order, error)
	ListFn          func(context.Context) ([]*model.Order, error)
	ListByClientFn  func(context.Context, int64) ([]*model.Order, error)
	UpdateStatusFn  func(context.Context, string, model.OrderStatus) error
	AssignManagerFn func(context.Context, string, int64) error
	DeleteFn        func(context.Context, string) error
	DeleteAllFn     func(context.Context) error

	Orders map[string]*model.Order
	Next   int64
}

// NewOrderRepositoryStub constructs an order repository stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order), Next: 1}
}

// Create stores order unless a custom function is provided.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if _, exists := s.Orders[order.Number()]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order.SetID(s.Next)
	s.Next++
	s.Orders[order.Number()] = order
	return order, nil
}

// GetByNumber fetches order by number or returns not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	if order, ok := s.Orders[number]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]*model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	var orders []*model.Order
	for _, order := range s.Orders {
		orders = append(orders, order)
	}
	return orders, nil
}

// ListByClient returns orders placed by the given client.
func (s *OrderRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]*model.Order, error) {
	if s.ListByClientFn != nil {
		return s.ListByClientFn(ctx, clientID)
	}
	var orders []*model.Order
	for _, order := range s.Orders {
		if client := order.Client(); client != nil && client.ID == clientID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// UpdateStatus changes the status of the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, number, status)
	}
	order, ok := s.Orders[number]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.SetStatus(status)
	return nil
}

// AssignManager attaches a manager to the stored order.
func (s *OrderRepositoryStub) AssignManager(ctx context.Context, number string, managerID int64) error {
	if s.AssignManagerFn != nil {
		return s.AssignManagerFn(ctx, number, managerID)
	}
	order, ok := s.Orders[number]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.SetManager(&model.User{ID: managerID, Role: model.RoleManager})
	return nil
}

// DeleteByNumber removes the stored order or reports not found.
func (s *OrderRepositoryStub) DeleteByNumber(ctx context.Context, number string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, number)
	}
	if _, ok := s.Orders[number]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, number)
	return nil
}

// DeleteAll drops every stored order.
func (s *OrderRepositoryStub) DeleteAll(ctx context.Context) error {
	if s.DeleteAllFn != nil {
		return s.DeleteAllFn(ctx)
	}
	s.Orders = make(map[string]*model.Order)
	return nil
}
