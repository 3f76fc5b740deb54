package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"github.com/guilhermegsr/password-manager-LP/internal/cryptox"
	"github.com/guilhermegsr/password-manager-LP/internal/logging"
	"github.com/guilhermegsr/password-manager-LP/internal/models"
	"github.com/guilhermegsr/password-manager-LP/internal/repositories/credentials"
)

// CredentialInput carries the fields for a new credential. Optional fields
// are pointers: nil means absent, a pointer to "" means set-to-empty.
type CredentialInput struct {
	Name     string
	Username *string
	URL      *string
	Password *string
	Notes    *string
}

// CredentialUpdate carries the fields to change on an existing credential.
// nil leaves a field untouched. Set secrets are re-encrypted with fresh
// nonces; an old blob is never reused.
type CredentialUpdate struct {
	Name     *string
	Username *string
	URL      *string
	Password *string
	Notes    *string
}

// CredentialService exposes the credential operations of an unlocked vault.
// Every call requires an active Session; rows owned by another vault are
// reported as common.ErrNotFound, indistinguishable from missing rows.
type CredentialService interface {
	Create(ctx context.Context, session *Session, in CredentialInput) (*models.CredentialSummary, error)
	List(ctx context.Context, session *Session) ([]models.CredentialSummary, error)
	Search(ctx context.Context, session *Session, query string) ([]models.CredentialSummary, error)
	GetFull(ctx context.Context, session *Session, id string) (*models.CredentialDetails, error)
	Update(ctx context.Context, session *Session, id string, in CredentialUpdate) error
	Delete(ctx context.Context, session *Session, id string) error
}

type credentialService struct {
	db  *sql.DB
	log logging.Logger
}

// NewCredentialService constructs a CredentialService bound to the given database.
func NewCredentialService(db *sql.DB, log logging.Logger) CredentialService {
	return &credentialService{db: db, log: log}
}

func (s *credentialService) repo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

// requireSession rejects nil or destroyed sessions.
func requireSession(session *Session) error {
	if !session.Active() {
		return common.ErrAuthentication
	}
	return nil
}

// Create encrypts the optional password and notes under the session's vault
// key and persists the row. The returned summary never carries the secrets.
func (s *credentialService) Create(ctx context.Context, session *Session, in CredentialInput) (*models.CredentialSummary, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", common.ErrValidation)
	}

	passwordCipher, err := s.encryptOptional(session, in.Password)
	if err != nil {
		return nil, err
	}
	notesCipher, err := s.encryptOptional(session, in.Notes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cred := &models.Credential{
		ID:             uuid.NewString(),
		VaultID:        session.VaultID,
		Name:           in.Name,
		Username:       in.Username,
		URL:            in.URL,
		Notes:          notesCipher,
		PasswordCipher: passwordCipher,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo().Create(ctx, cred); err != nil {
		return nil, s.storageErr(ctx, "create credential", err)
	}

	s.log.Debug(ctx, "credential created", "id", cred.ID, "vault_id", cred.VaultID)
	return &models.CredentialSummary{
		ID:        cred.ID,
		Name:      cred.Name,
		Username:  cred.Username,
		URL:       cred.URL,
		UpdatedAt: cred.UpdatedAt,
	}, nil
}

// List returns the non-secret fields of every credential in the session's
// vault. Nothing is decrypted.
func (s *credentialService) List(ctx context.Context, session *Session) ([]models.CredentialSummary, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	list, err := s.repo().GetAllByVaultID(ctx, session.VaultID)
	if err != nil {
		return nil, s.storageErr(ctx, "list credentials", err)
	}
	return list, nil
}

// Search matches the query against the plaintext name, username and url
// columns, case-insensitively. Encrypted fields are deliberately out of the
// search scope.
func (s *credentialService) Search(ctx context.Context, session *Session, query string) ([]models.CredentialSummary, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	list, err := s.repo().Search(ctx, session.VaultID, query)
	if err != nil {
		return nil, s.storageErr(ctx, "search credentials", err)
	}
	return list, nil
}

// GetFull loads a credential scoped to the session's vault and decrypts the
// secret fields that are present. The caller owns the plaintext and should
// not retain it longer than needed. A failed tag check is surfaced as
// common.ErrIntegrity, distinct from not-found.
func (s *credentialService) GetFull(ctx context.Context, session *Session, id string) (*models.CredentialDetails, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	cred, err := s.repo().GetByID(ctx, session.VaultID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, s.storageErr(ctx, "load credential", err)
	}

	password, err := s.decryptOptional(ctx, session, cred.PasswordCipher)
	if err != nil {
		return nil, err
	}
	notes, err := s.decryptOptional(ctx, session, cred.Notes)
	if err != nil {
		return nil, err
	}

	return &models.CredentialDetails{
		CredentialSummary: models.CredentialSummary{
			ID:        cred.ID,
			Name:      cred.Name,
			Username:  cred.Username,
			URL:       cred.URL,
			UpdatedAt: cred.UpdatedAt,
		},
		Password: password,
		Notes:    notes,
	}, nil
}

// Update applies the set fields of in to the stored row. Changed secrets are
// re-encrypted under the vault key with fresh nonces and updated_at is
// stamped, even when the new plaintext equals the old one.
func (s *credentialService) Update(ctx context.Context, session *Session, id string, in CredentialUpdate) error {
	if err := requireSession(session); err != nil {
		return err
	}

	repo := s.repo()
	cred, err := repo.GetByID(ctx, session.VaultID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return s.storageErr(ctx, "load credential", err)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", common.ErrValidation)
		}
		cred.Name = *in.Name
	}
	if in.Username != nil {
		cred.Username = in.Username
	}
	if in.URL != nil {
		cred.URL = in.URL
	}
	if in.Password != nil {
		cipher, err := s.encryptOptional(session, in.Password)
		if err != nil {
			return err
		}
		cred.PasswordCipher = cipher
	}
	if in.Notes != nil {
		cipher, err := s.encryptOptional(session, in.Notes)
		if err != nil {
			return err
		}
		cred.Notes = cipher
	}
	cred.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, cred); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return s.storageErr(ctx, "update credential", err)
	}

	s.log.Debug(ctx, "credential updated", "id", id, "vault_id", session.VaultID)
	return nil
}

// Delete removes the credential scoped to the session's vault.
func (s *credentialService) Delete(ctx context.Context, session *Session, id string) error {
	if err := requireSession(session); err != nil {
		return err
	}

	if err := s.repo().DeleteByID(ctx, session.VaultID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return s.storageErr(ctx, "delete credential", err)
	}

	s.log.Debug(ctx, "credential deleted", "id", id, "vault_id", session.VaultID)
	return nil
}

// encryptOptional seals a present field under the vault key. nil stays nil:
// absence is not encrypted, but an explicit empty string is.
func (s *credentialService) encryptOptional(session *Session, value *string) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	blob, err := cryptox.EncryptField(session.VaultKey(), []byte(*value))
	if err != nil {
		return nil, fmt.Errorf("encrypt field: %w", err)
	}
	return blob, nil
}

// decryptOptional opens a present blob under the vault key. nil stays nil.
func (s *credentialService) decryptOptional(ctx context.Context, session *Session, blob []byte) (*string, error) {
	if blob == nil {
		return nil, nil
	}
	plaintext, err := cryptox.DecryptField(session.VaultKey(), blob)
	if err != nil {
		if errors.Is(err, common.ErrIntegrity) {
			s.log.Warn(ctx, "ciphertext failed integrity check", "vault_id", session.VaultID)
			return nil, common.ErrIntegrity
		}
		return nil, err
	}
	value := string(plaintext)
	common.WipeByteArray(plaintext)
	return &value, nil
}

func (s *credentialService) storageErr(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, "storage failure", "op", op, "error", err)
	return common.ErrStorage
}
