// Package credentials persists credential rows. Every read and write is
// scoped by vault id so a row owned by another vault behaves exactly like a
// missing row.
package credentials

import (
	"context"

	"github.com/guilhermegsr/password-manager-LP/internal/models"
)

// Repository describes storage operations for Credential rows.
type Repository interface {
	// Create inserts a new credential.
	Create(ctx context.Context, cred *models.Credential) error

	// GetAllByVaultID lists the non-secret fields of every credential in the
	// vault, ordered by name.
	GetAllByVaultID(ctx context.Context, vaultID string) ([]models.CredentialSummary, error)

	// Search lists credentials whose name, username or url contains the
	// query, case-insensitively. Plaintext columns only; no decryption.
	Search(ctx context.Context, vaultID, query string) ([]models.CredentialSummary, error)

	// GetByID loads a full row scoped to the vault, or common.ErrNotFound.
	GetByID(ctx context.Context, vaultID, id string) (*models.Credential, error)

	// Update rewrites all mutable columns of the row identified by
	// (cred.ID, cred.VaultID). Returns common.ErrNotFound when no row matched.
	Update(ctx context.Context, cred *models.Credential) error

	// DeleteByID removes the row scoped to the vault, or common.ErrNotFound.
	DeleteByID(ctx context.Context, vaultID, id string) error
}
