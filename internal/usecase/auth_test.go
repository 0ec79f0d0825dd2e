package usecase_test

import (
	. "github.com/suoapvs/alexcoffee/internal/usecase"

	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/suoapvs/alexcoffee/internal/domain/errors"
	"github.com/suoapvs/alexcoffee/internal/domain/model"
	pkgAuth "github.com/suoapvs/alexcoffee/internal/pkg/auth"
	testhelpers "github.com/suoapvs/alexcoffee/internal/test"
)

func newStrategyStub() *testhelpers.StrategyStub {
	return &testhelpers.StrategyStub{
		IssueFn: func(claims pkgAuth.Claims) (string, error) {
			return fmt.Sprintf("token-%d-%s", claims.UserID, claims.Role), nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice", "alice@example.com", "+100", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleClient {
		t.Fatalf("expected CLIENT role, got %v", user.Role)
	}
	if token != "token-1-CLIENT" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "", "secret1"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "", "secret1"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Eve", "", "", "secret1"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank email, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "Eve", "eve@example.com", "", "abc"); !errors.Is(err, pkgAuth.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Carol", "carol@example.com", "", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token == "" {
		t.Fatalf("expected token to be issued")
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "ghost@example.com", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthUseCaseTokenCarriesRole(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, &testhelpers.StrategyStub{})

	ctx := context.Background()
	admin := model.NewUserBuilder().
		Email("admin@example.com").
		PasswordHash("hash:root42").
		Role(model.RoleAdmin).
		Build()
	if _, err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "admin@example.com", "root42")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	claims, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != string(model.RoleAdmin) {
		t.Fatalf("expected ADMIN role in claims, got %q", claims.Role)
	}
}

func TestAuthUseCaseParseTokenEmpty(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthUseCaseUserAdministration(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	manager := model.NewUserBuilder().
		Email("manager@example.com").
		Role(model.RoleManager).
		Build()
	if _, err := repo.Create(ctx, manager); err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	if _, _, err := uc.Register(ctx, "Dave", "dave@example.com", "", "secret1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	managers, err := uc.UsersByRole(ctx, model.RoleManager)
	if err != nil {
		t.Fatalf("list by role: %v", err)
	}
	if len(managers) != 1 || managers[0].Email != "manager@example.com" {
		t.Fatalf("unexpected managers %+v", managers)
	}

	if err := uc.DeleteUser(ctx, managers[0].ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := uc.UserByID(ctx, managers[0].ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
