// Package account models player accounts and password verification.
package account

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// Account is a player login. One account owns many characters.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash []byte    `json:"-"`
	Staff        bool      `json:"staff"`
	CreatedAt    time.Time `json:"created_at"`
}

const minPasswordLength = 8

// New validates the name and password and returns an account with the
// password hashed.
func New(name, email, password string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.CodeAccountNameEmpty, "account name is required")
	}
	if len(password) < minPasswordLength {
		return nil, errors.New(errors.CodeAccountBadPassword, "password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "hash password", err)
	}
	return &Account{
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
	}, nil
}

// CheckPassword verifies a login attempt.
func (a *Account) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		return errors.New(errors.CodeAccountBadPassword, "incorrect password")
	}
	return nil
}

// SetPassword replaces the stored hash.
func (a *Account) SetPassword(password string) error {
	if len(password) < minPasswordLength {
		return errors.New(errors.CodeAccountBadPassword, "password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "hash password", err)
	}
	a.PasswordHash = hash
	return nil
}
