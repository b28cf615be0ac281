// This file implements the users table accessors consumed by the login layer.
// Password hashes are unsalted SHA-256 hex digests: the format the original
// dashboard wrote, kept so existing databases keep authenticating. Migrating
// to a real KDF would orphan every stored credential.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// CheckCredentials reports whether the username exists and the password
// matches its stored hash. An unknown username is false, not an error.
func (s *Store) CheckCredentials(username, password string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var stored string
	err = db.QueryRow("SELECT password FROM users WHERE username = ?", username).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying user %s: %w", username, err)
	}
	return stored == hashPassword(password), nil
}

// AddUser creates a user and returns its id. Returns ErrUserExists when the
// username is taken.
func (s *Store) AddUser(username, password string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	if username == "" {
		return 0, types.ErrInvalidUsername
	}
	if password == "" {
		return 0, types.ErrInvalidPassword
	}

	var exists int
	err = db.QueryRow("SELECT 1 FROM users WHERE username = ?", username).Scan(&exists)
	if err == nil {
		return 0, types.ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("checking username %s: %w", username, err)
	}

	res, err := db.Exec(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, hashPassword(password),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting user %s: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading user id: %w", err)
	}

	s.log.Infow("added user", "user_id", id, "username", username)
	return id, nil
}

// SetPassword replaces the stored hash for a username. Returns ErrUnknownUser
// when no such user exists.
func (s *Store) SetPassword(username, password string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if password == "" {
		return types.ErrInvalidPassword
	}

	res, err := db.Exec(
		"UPDATE users SET password = ? WHERE username = ?",
		hashPassword(password), username,
	)
	if err != nil {
		return fmt.Errorf("updating password for %s: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrUnknownUser
	}
	return nil
}

// hashPassword returns the SHA-256 hex digest of a password.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
