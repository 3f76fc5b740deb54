package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"github.com/guilhermegsr/password-manager-LP/internal/dbx"
	"github.com/guilhermegsr/password-manager-LP/internal/models"
	"github.com/guilhermegsr/password-manager-LP/internal/storage"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, vault *models.Vault) error {
	query := `INSERT INTO vaults (id, user_id, vault_key_cipher, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		vault.ID, vault.UserID, vault.VaultKeyCipher,
		storage.FormatTime(vault.CreatedAt), storage.FormatTime(vault.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert vault: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUserID(ctx context.Context, userID string) (*models.Vault, error) {
	query := `SELECT id, user_id, vault_key_cipher, created_at, updated_at
			FROM vaults WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	v := &models.Vault{}
	var createdAt, updatedAt string
	if err := row.Scan(&v.ID, &v.UserID, &v.VaultKeyCipher, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select vault: %w", err)
	}

	var err error
	if v.CreatedAt, err = storage.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at: %w", err)
	}
	if v.UpdatedAt, err = storage.ParseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("bad updated_at: %w", err)
	}
	return v, nil
}
