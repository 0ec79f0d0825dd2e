package model

import "time"

// UserRole enumerates the access levels of the shop.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleClient  UserRole = "CLIENT"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	}
	return false
}

// User represents a shop actor: a registered client, a manager working
// on orders, or an administrator. Checkout also builds transient
// CLIENT users for guests who never registered.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// UserBuilder fills unset fields with defaults at Build time. The
// notable default is the role: an unspecified actor is a CLIENT.
type UserBuilder struct {
	id        int64
	name      *string
	email     *string
	phone     *string
	hash      *string
	role      *UserRole
	createdAt *time.Time
}

func NewUserBuilder() *UserBuilder { return &UserBuilder{} }

func (b *UserBuilder) ID(id int64) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) Name(name string) *UserBuilder {
	b.name = &name
	return b
}

func (b *UserBuilder) Email(email string) *UserBuilder {
	b.email = &email
	return b
}

func (b *UserBuilder) Phone(phone string) *UserBuilder {
	b.phone = &phone
	return b
}

func (b *UserBuilder) PasswordHash(hash string) *UserBuilder {
	b.hash = &hash
	return b
}

func (b *UserBuilder) Role(role UserRole) *UserBuilder {
	b.role = &role
	return b
}

func (b *UserBuilder) CreatedAt(t time.Time) *UserBuilder {
	b.createdAt = &t
	return b
}

// Build returns an independent User with every field resolved.
func (b *UserBuilder) Build() *User {
	role := RoleClient
	if b.role != nil && b.role.Valid() {
		role = *b.role
	}
	return &User{
		ID:           b.id,
		Name:         stringOrEmpty(b.name),
		Email:        stringOrEmpty(b.email),
		Phone:        stringOrEmpty(b.phone),
		PasswordHash: stringOrEmpty(b.hash),
		Role:         role,
		CreatedAt:    timeOrNow(b.createdAt),
	}
}
