package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// CreateAccount inserts a new account and fills in its ID.
func (s *Store) CreateAccount(ctx context.Context, acct *account.Account) error {
	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO accounts (name, email, password_hash, is_staff, created_at) VALUES (?, ?, ?, ?, ?)`,
		acct.Name, acct.Email, acct.PasswordHash, acct.Staff, toMillis(acct.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WithMetadata(errors.CodeAccountNameTaken, "account name is taken",
				map[string]string{"name": acct.Name})
		}
		return fmt.Errorf("insert account: %w", err)
	}
	acct.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("account id: %w", err)
	}
	return nil
}

// AccountByName looks up an account case-insensitively.
func (s *Store) AccountByName(ctx context.Context, name string) (*account.Account, error) {
	return s.scanAccount(s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, is_staff, created_at FROM accounts WHERE name = ?`,
		strings.TrimSpace(name)))
}

// AccountByID looks up an account by primary key.
func (s *Store) AccountByID(ctx context.Context, id int64) (*account.Account, error) {
	return s.scanAccount(s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, is_staff, created_at FROM accounts WHERE id = ?`, id))
}

// UpdateAccount persists password and staff changes.
func (s *Store) UpdateAccount(ctx context.Context, acct *account.Account) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`UPDATE accounts SET email = ?, password_hash = ?, is_staff = ? WHERE id = ?`,
		acct.Email, acct.PasswordHash, acct.Staff, acct.ID)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (s *Store) scanAccount(row *sql.Row) (*account.Account, error) {
	var acct account.Account
	var createdAt int64
	err := row.Scan(&acct.ID, &acct.Name, &acct.Email, &acct.PasswordHash, &acct.Staff, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.CodeAccountNotFound, "account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	acct.CreatedAt = fromMillis(createdAt)
	return &acct, nil
}

// isUniqueViolation detects SQLite unique constraint failures without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
