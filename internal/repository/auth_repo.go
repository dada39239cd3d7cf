package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"timeboard/internal/models"
)

var (
	ErrUsernameTaken = errors.New("operator name already registered")
	ErrEmptyUsername = errors.New("operator name is empty")
)

// UserRepository stores operator accounts for the control API.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// OperatorName is the stored form of a login: trimmed and lowercased, so
// "Stage " and "stage" are one operator.
func OperatorName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isUniqueViolation matches the SQLite constraint error text; the driver
// error type is not part of database/sql.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create registers an operator and returns its ID. A second account with
// the same operator name fails with ErrUsernameTaken.
func (r *UserRepository) Create(username, passwordHash string) (int, error) {
	name := OperatorName(username)
	if name == "" {
		return 0, ErrEmptyUsername
	}
	res, err := r.db.Exec(insertUserSQL, name, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %q", ErrUsernameTaken, name)
		}
		return 0, fmt.Errorf("insert operator %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for operator %q: %w", name, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) when no operator has that name.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	name := OperatorName(username)
	if name == "" {
		return nil, nil
	}
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, name).Scan(&u.ID, &u.Username, &u.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("select operator %q: %w", name, err)
	}
	return &u, nil
}
