package credentials

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

func (r *SQLiteRepository) Create(ctx context.Context, cred *models.Credential) error {
	query := `INSERT INTO credentials
			(id, vault_id, name, username, url, notes, password_cipher, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		cred.ID, cred.VaultID, cred.Name, cred.Username, cred.URL,
		cred.Notes, cred.PasswordCipher,
		storage.FormatTime(cred.CreatedAt), storage.FormatTime(cred.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAllByVaultID(ctx context.Context, vaultID string) ([]models.CredentialSummary, error) {
	query := `SELECT id, name, username, url, updated_at
			FROM credentials WHERE vault_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *SQLiteRepository) Search(ctx context.Context, vaultID, query string) ([]models.CredentialSummary, error) {
	// LIKE is case-insensitive for ASCII in sqlite; % and _ in the query are
	// escaped so they match literally.
	pattern := "%" + escapeLike(query) + "%"
	q := `SELECT id, name, username, url, updated_at
			FROM credentials
			WHERE vault_id = ?
			  AND (name LIKE ? ESCAPE '\'
			    OR COALESCE(username, '') LIKE ? ESCAPE '\'
			    OR COALESCE(url, '') LIKE ? ESCAPE '\')
			ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, vaultID, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search credentials: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, vaultID, id string) (*models.Credential, error) {
	query := `SELECT id, vault_id, name, username, url, notes, password_cipher, created_at, updated_at
			FROM credentials WHERE id = ? AND vault_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, vaultID)

	c := &models.Credential{}
	var username, url sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.VaultID, &c.Name, &username, &url,
		&c.Notes, &c.PasswordCipher, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select credential: %w", err)
	}

	c.Username = fromNullString(username)
	c.URL = fromNullString(url)
	if c.CreatedAt, err = storage.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at: %w", err)
	}
	if c.UpdatedAt, err = storage.ParseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("bad updated_at: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, cred *models.Credential) error {
	query := `UPDATE credentials
			SET name = ?, username = ?, url = ?, notes = ?, password_cipher = ?, updated_at = ?
			WHERE id = ? AND vault_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		cred.Name, cred.Username, cred.URL, cred.Notes, cred.PasswordCipher,
		storage.FormatTime(cred.UpdatedAt), cred.ID, cred.VaultID)
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, vaultID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ? AND vault_id = ?`, id, vaultID)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanSummaries(rows *sql.Rows) ([]models.CredentialSummary, error) {
	var result []models.CredentialSummary
	for rows.Next() {
		var item models.CredentialSummary
		var username, url sql.NullString
		var updatedAt string
		if err := rows.Scan(&item.ID, &item.Name, &username, &url, &updatedAt); err != nil {
			return nil, err
		}
		item.Username = fromNullString(username)
		item.URL = fromNullString(url)
		var err error
		if item.UpdatedAt, err = storage.ParseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("bad updated_at: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
