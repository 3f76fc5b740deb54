// Package vaults persists vault rows, one per user.
package vaults

import (
	"context"

	"github.com/guilhermegsr/password-manager-LP/internal/models"
)

// Repository describes storage operations for Vault rows.
type Repository interface {
	// Create inserts a new vault.
	Create(ctx context.Context, vault *models.Vault) error

	// GetByUserID returns the vault owned by the user, or common.ErrNotFound.
	GetByUserID(ctx context.Context, userID string) (*models.Vault, error)
}
