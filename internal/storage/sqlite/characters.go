package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/soma-satoro/PyReach/internal/character"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// Characters are stored as one JSON document per row. The sheet and
// live state change shape often; a document column avoids a migration
// per stat while name and ownership stay queryable.

// CreateCharacter inserts a character and fills in its ID.
func (s *Store) CreateCharacter(ctx context.Context, c *character.Character) error {
	if strings.TrimSpace(c.Name()) == "" {
		return errors.New(errors.CodeCharacterEmptyName, "character name is required")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal character: %w", err)
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO characters (account_id, name, approved, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.AccountID, c.Name(), c.Approved, data, toMillis(c.CreatedAt), toMillis(c.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WithMetadata(errors.CodeCharacterNameTaken, "character name is taken",
				map[string]string{"name": c.Name()})
		}
		return fmt.Errorf("insert character: %w", err)
	}
	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("character id: %w", err)
	}
	return nil
}

// SaveCharacter writes the current character state back to its row.
func (s *Store) SaveCharacter(ctx context.Context, c *character.Character) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal character: %w", err)
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE characters SET name = ?, approved = ?, data = ?, updated_at = ? WHERE id = ?`,
		c.Name(), c.Approved, data, toMillis(time.Now().UTC()), c.ID)
	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	if affected == 0 {
		return errors.New(errors.CodeCharacterNotFound, "character not found")
	}
	return nil
}

// CharacterByName looks up a character case-insensitively.
func (s *Store) CharacterByName(ctx context.Context, name string) (*character.Character, error) {
	return scanCharacter(s.sqlDB.QueryRowContext(ctx,
		`SELECT id, account_id, approved, data FROM characters WHERE name = ?`,
		strings.TrimSpace(name)))
}

// CharacterByID looks up a character by primary key.
func (s *Store) CharacterByID(ctx context.Context, id int64) (*character.Character, error) {
	return scanCharacter(s.sqlDB.QueryRowContext(ctx,
		`SELECT id, account_id, approved, data FROM characters WHERE id = ?`, id))
}

// CharactersForAccount lists an account's characters by creation
// order.
func (s *Store) CharactersForAccount(ctx context.Context, accountID int64) ([]*character.Character, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, account_id, approved, data FROM characters WHERE account_id = ? ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var out []*character.Character
	for rows.Next() {
		c, err := scanCharacterRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteCharacter removes a character permanently.
func (s *Store) DeleteCharacter(ctx context.Context, id int64) error {
	_, err := s.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row *sql.Row) (*character.Character, error) {
	c, err := scanCharacterRow(row)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.CodeCharacterNotFound, "character not found")
	}
	return c, err
}

func scanCharacterRow(row rowScanner) (*character.Character, error) {
	var id, accountID int64
	var approved bool
	var data []byte
	if err := row.Scan(&id, &accountID, &approved, &data); err != nil {
		return nil, err
	}
	var c character.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal character %d: %w", id, err)
	}
	// Row columns are authoritative over the document copy.
	c.ID = id
	c.AccountID = accountID
	c.Approved = approved
	return &c, nil
}
