package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"github.com/guilhermegsr/password-manager-LP/internal/models"
	"github.com/guilhermegsr/password-manager-LP/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:credrepo_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := storage.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	now := storage.FormatTime(time.Now())
	for _, stmt := range []string{
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES ('u1', 'alice', x'00', '` + now + `', '` + now + `')`,
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES ('u2', 'bob', x'00', '` + now + `', '` + now + `')`,
		`INSERT INTO vaults (id, user_id, vault_key_cipher, created_at, updated_at) VALUES ('v1', 'u1', x'00', '` + now + `', '` + now + `')`,
		`INSERT INTO vaults (id, user_id, vault_key_cipher, created_at, updated_at) VALUES ('v2', 'u2', x'00', '` + now + `', '` + now + `')`,
	} {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func newCred(id, vaultID, name string) *models.Credential {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Credential{
		ID:        id,
		VaultID:   vaultID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	cred := newCred("c1", "v1", "GitHub")
	cred.Username = strPtr("alice@x.com")
	cred.PasswordCipher = []byte{1, 2, 3}
	require.NoError(t, repo.Create(ctx, cred))

	got, err := repo.GetByID(ctx, "v1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Name)
	require.NotNil(t, got.Username)
	assert.Equal(t, "alice@x.com", *got.Username)
	assert.Nil(t, got.URL, "unset field must stay absent")
	assert.Equal(t, []byte{1, 2, 3}, got.PasswordCipher)
	assert.Nil(t, got.Notes)
	assert.True(t, got.UpdatedAt.Equal(cred.UpdatedAt))
}

func TestGetByID_CrossVaultIsNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCred("c1", "v1", "GitHub")))

	_, err := repo.GetByID(ctx, "v2", "c1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAllByVaultID_ScopedAndOrdered(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCred("c1", "v1", "mail")))
	require.NoError(t, repo.Create(ctx, newCred("c2", "v1", "GitHub")))
	require.NoError(t, repo.Create(ctx, newCred("c3", "v2", "other-vault")))

	list, err := repo.GetAllByVaultID(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "GitHub", list[0].Name)
	assert.Equal(t, "mail", list[1].Name)
}

func TestSearch(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	gh := newCred("c1", "v1", "GitHub")
	gh.URL = strPtr("https://github.com")
	require.NoError(t, repo.Create(ctx, gh))

	mail := newCred("c2", "v1", "mail")
	mail.Username = strPtr("alice@example.org")
	require.NoError(t, repo.Create(ctx, mail))

	other := newCred("c3", "v2", "github-of-bob")
	require.NoError(t, repo.Create(ctx, other))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case-insensitive name match", "github", []string{"GitHub"}},
		{"username match", "EXAMPLE.ORG", []string{"mail"}},
		{"url match", "github.com", []string{"GitHub"}},
		{"no match", "zzz", nil},
		{"wildcards are literal", "%", nil},
		{"empty query matches all", "", []string{"GitHub", "mail"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Search(ctx, "v1", tc.query)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Name)
			}
			if tc.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tc.want, names)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	cred := newCred("c1", "v1", "GitHub")
	require.NoError(t, repo.Create(ctx, cred))

	cred.Name = "GitHub (work)"
	cred.PasswordCipher = []byte{9, 9}
	cred.UpdatedAt = cred.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, cred))

	got, err := repo.GetByID(ctx, "v1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "GitHub (work)", got.Name)
	assert.Equal(t, []byte{9, 9}, got.PasswordCipher)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdate_CrossVaultIsNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	cred := newCred("c1", "v1", "GitHub")
	require.NoError(t, repo.Create(ctx, cred))

	foreign := *cred
	foreign.VaultID = "v2"
	assert.ErrorIs(t, repo.Update(ctx, &foreign), common.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCred("c1", "v1", "GitHub")))

	require.NoError(t, repo.DeleteByID(ctx, "v1", "c1"))
	_, err := repo.GetByID(ctx, "v1", "c1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteByID(ctx, "v1", "c1"), common.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, "v2", "c1"), common.ErrNotFound)
}
