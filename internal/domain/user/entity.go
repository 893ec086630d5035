// Package user defines the user aggregate: account identity plus the
// nutrition profile that feeds the planning and analytics engines.
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nutriplan/v1/internal/domain/nutrition"
)

// User represents an account in the system.
type User struct {
	id           uuid.UUID
	email        string
	fullName     string
	passwordHash string
	isActive     bool
	profile      nutrition.Profile
	createdAt    time.Time
	updatedAt    time.Time
	lastLoginAt  *time.Time
}

// NewUser creates a user with a freshly hashed password.
func NewUser(email, fullName, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(fullName) < 2 {
		return nil, ErrNameTooShort
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        email,
		fullName:     fullName,
		passwordHash: string(hash),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a user from persisted state. It performs no
// validation; the persistence layer is trusted.
func Reconstitute(
	id uuid.UUID,
	email, fullName, passwordHash string,
	isActive bool,
	profile nutrition.Profile,
	createdAt, updatedAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		isActive:     isActive,
		profile:      profile,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastLoginAt:  lastLoginAt,
	}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// FullName returns the user's display name.
func (u *User) FullName() string { return u.fullName }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// IsActive reports whether the account is active.
func (u *User) IsActive() bool { return u.isActive }

// Profile returns the user's nutrition profile.
func (u *User) Profile() nutrition.Profile { return u.profile }

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the account was last updated.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// LastLoginAt returns the last login time, nil if the user never logged in.
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// Authenticate compares the given password against the stored hash.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// UpdateProfile replaces the nutrition profile after validating it.
func (u *User) UpdateProfile(p nutrition.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	u.profile = p
	u.updatedAt = time.Now()
	return nil
}

// UpdateName changes the display name.
func (u *User) UpdateName(fullName string) error {
	if len(fullName) < 2 {
		return ErrNameTooShort
	}
	u.fullName = fullName
	u.updatedAt = time.Now()
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
