package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	"github.com/suoapvs/alexcoffee/internal/domain/repository"
	pkgAuth "github.com/suoapvs/alexcoffee/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new CLIENT user and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, phone, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if err := pkgAuth.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := model.NewUserBuilder().
		Name(name).
		Email(email).
		Phone(phone).
		PasswordHash(hash).
		Build()

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: created.ID, Role: string(created.Role)})
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Authenticate validates credentials and returns an auth token
// carrying the user's current role.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: user.ID, Role: string(user.Role)})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ParseToken extracts claims from the provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByID fetches a user by identifier.
func (u *AuthUseCase) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UsersByRole lists users holding the given role.
func (u *AuthUseCase) UsersByRole(ctx context.Context, role model.UserRole) ([]*model.User, error) {
	return u.users.ListByRole(ctx, role)
}

// DeleteUser removes a user by identifier.
func (u *AuthUseCase) DeleteUser(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
