package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and returns it with the generated ID populated.
func (r *UserRepository) CreateUser(name, email string) (model.User, error) {
	result, err := r.db.Exec(
		`INSERT INTO users (name, email) VALUES (?, ?)`,
		name, email,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to read inserted user id: %w", err)
	}

	return r.GetUser(id)
}

// GetUser retrieves a single user by ID.
// Returns apperrors.ErrUserNotFound when no user with that ID exists.
func (r *UserRepository) GetUser(userID int64) (model.User, error) {
	var u model.User
	var createdAt string

	err := r.db.QueryRow(
		`SELECT id, name, email, created_at FROM users WHERE id = ?`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query users table: %w", err)
	}

	if u.CreatedAt, err = ParseTimestamp(createdAt); err != nil {
		return model.User{}, err
	}

	return u, nil
}

// GetUsers retrieves all users ordered by ID.
// Returns an empty slice if no users exist.
func (r *UserRepository) GetUsers() ([]model.User, error) {
	rows, err := r.db.Query(`SELECT id, name, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users table: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan users table results: %w", err)
		}
		if u.CreatedAt, err = ParseTimestamp(createdAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users table: %w", err)
	}

	return users, nil
}
