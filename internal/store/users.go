package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// UserWithSecret carries the password hash alongside the user for login
type UserWithSecret struct {
	models.User
	PasswordHash *string
}

// GetUserByUsername looks a user up for authentication
func GetUserByUsername(ctx context.Context, db Querier, username string) (*UserWithSecret, error) {
	query := `
		SELECT id, username, name, password_hash, role, login_enabled,
		       allowed_projects, created_at, updated_at
		FROM users
		WHERE LOWER(username) = $1
	`

	var u UserWithSecret
	err := db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(username))).Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.LoginEnabled,
		&u.AllowedProjects,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &u, nil
}

// GetUserByName returns the user with the given display name, used to
// resolve the viewer's cohort restrictions.
func GetUserByName(ctx context.Context, db Querier, name string) (*models.User, error) {
	query := `
		SELECT id, username, name, role, login_enabled, allowed_projects,
		       created_at, updated_at
		FROM users
		WHERE name = $1
	`

	var u models.User
	err := db.QueryRow(ctx, query, name).Scan(
		&u.ID,
		&u.Username,
		&u.Name,
		&u.Role,
		&u.LoginEnabled,
		&u.AllowedProjects,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by name %s: %w", name, err)
	}
	return &u, nil
}
