package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrBlankIdentifier    = errors.New("blank identifier")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("shopping cart is empty")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrNotManager         = errors.New("user is not a manager")
)
