package user

import "errors"

// Domain errors for user accounts.

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrNameTooShort       = errors.New("full name must be at least 2 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
)
