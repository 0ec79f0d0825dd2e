package test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/suoapvs/alexcoffee/internal/pkg/auth"
)

// HasherStub hashes passwords with a reversible prefix scheme.
type HasherStub struct {
	HashErr    error
	CompareErr error
}

// Hash prefixes the password so tests can assert on stored values.
func (h *HasherStub) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return "hash:" + password, nil
}

// Compare succeeds when the hash was produced by Hash for the same password.
func (h *HasherStub) Compare(hash, password string) error {
	if h.CompareErr != nil {
		return h.CompareErr
	}
	if hash != "hash:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// StrategyStub implements auth.Strategy with optional overrides. Without
// overrides it issues parseable "id|role" tokens.
type StrategyStub struct {
	IssueFn func(auth.Claims) (string, error)
	ParseFn func(string) (auth.Claims, error)
}

// IssueToken delegates to IssueFn or encodes claims as "id|role".
func (s *StrategyStub) IssueToken(claims auth.Claims) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(claims)
	}
	return fmt.Sprintf("%d|%s", claims.UserID, claims.Role), nil
}

// ParseToken delegates to ParseFn or decodes tokens produced by IssueToken.
func (s *StrategyStub) ParseToken(token string) (auth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.SplitN(token, "|", 2)
	if len(parts) != 2 {
		return auth.Claims{}, errors.New("malformed token")
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return auth.Claims{}, errors.New("malformed token")
	}
	return auth.Claims{UserID: id, Role: parts[1]}, nil
}

// Name identifies the stub strategy.
func (s *StrategyStub) Name() string { return "stub" }
