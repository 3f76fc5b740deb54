// Package users persists user accounts.
package users

import (
	"context"

	"github.com/guilhermegsr/password-manager-LP/internal/models"
)

// Repository describes storage operations for User rows.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user with the given (case-sensitive)
	// username, or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
