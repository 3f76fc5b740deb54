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
	"github.com/guilhermegsr/password-manager-LP/internal/dbx"
	"github.com/guilhermegsr/password-manager-LP/internal/logging"
	"github.com/guilhermegsr/password-manager-LP/internal/models"
	"github.com/guilhermegsr/password-manager-LP/internal/repositories/users"
	"github.com/guilhermegsr/password-manager-LP/internal/repositories/vaults"
)

// decoyHash is a syntactically valid Argon2id record that no passphrase
// matches. Login burns a verification against it when the username is
// unknown, so "no such user" and "wrong passphrase" cost about the same.
const decoyHash = "$argon2id$v=19$m=65536,t=3,p=2$MTIzNDU2Nzg5MGFiY2RlZg$MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"

// AuthService defines the account and session lifecycle.
//
// Contract:
//   - Register: create a user together with its vault, atomically.
//   - Login: verify the passphrase, unwrap the vault key, return a Session.
//   - Logout: destroy the session's key material.
//
// Every login failure — unknown username, wrong passphrase, failed unwrap —
// surfaces as the same common.ErrAuthentication.
type AuthService interface {
	Register(ctx context.Context, username string, passphrase []byte) error
	Login(ctx context.Context, username string, passphrase []byte) (*Session, error)
	Logout(ctx context.Context, session *Session) error
}

type authService struct {
	db  *sql.DB
	log logging.Logger
}

// NewAuthService constructs an AuthService bound to the given database.
func NewAuthService(db *sql.DB, log logging.Logger) AuthService {
	return &authService{db: db, log: log}
}

// Register creates the user and its vault in a single transaction: both rows
// exist afterwards or neither does. The fresh vault key is wrapped under a
// key derived from the passphrase and wiped before returning; registering
// does not produce a Session.
func (a *authService) Register(ctx context.Context, username string, passphrase []byte) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username must not be empty", common.ErrValidation)
	}
	if len(passphrase) == 0 {
		return fmt.Errorf("%w: passphrase must not be empty", common.ErrValidation)
	}

	userRepo := users.NewSQLiteRepository(a.db)
	if _, err := userRepo.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username already registered", common.ErrValidation)
	} else if !errors.Is(err, common.ErrNotFound) {
		a.log.Error(ctx, "user lookup failed", "error", err)
		return common.ErrStorage
	}

	passwordHash := cryptox.HashPassphrase(passphrase)

	vaultKey, keyCipher, err := cryptox.CreateVaultKey(passphrase)
	if err != nil {
		a.log.Error(ctx, "vault key creation failed", "error", err)
		return common.ErrStorage
	}
	common.WipeByteArray(vaultKey)

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: []byte(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	vault := &models.Vault{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		VaultKeyCipher: keyCipher,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).Create(ctx, user); err != nil {
			return err
		}
		return vaults.NewSQLiteRepository(tx).Create(ctx, vault)
	})
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return common.ErrStorage
	}

	a.log.Info(ctx, "user registered", "username", username)
	return nil
}

// Login verifies the passphrase against the stored hash, unwraps the vault
// key, and returns a Session owning it. The caller must Destroy the session
// when done; the passphrase itself is not retained.
func (a *authService) Login(ctx context.Context, username string, passphrase []byte) (*Session, error) {
	userRepo := users.NewSQLiteRepository(a.db)

	user, err := userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			cryptox.VerifyPassphrase(passphrase, decoyHash)
			return nil, common.ErrAuthentication
		}
		a.log.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrStorage
	}

	if !cryptox.VerifyPassphrase(passphrase, string(user.PasswordHash)) {
		return nil, common.ErrAuthentication
	}

	vault, err := vaults.NewSQLiteRepository(a.db).GetByUserID(ctx, user.ID)
	if err != nil {
		// Registration is atomic, so a verified user without a vault means a
		// damaged database, not a bad passphrase.
		a.log.Error(ctx, "vault lookup failed", "user_id", user.ID, "error", err)
		return nil, common.ErrStorage
	}

	vaultKey, err := cryptox.UnwrapVaultKey(passphrase, vault.VaultKeyCipher)
	if err != nil {
		return nil, common.ErrAuthentication
	}

	a.log.Info(ctx, "login successful", "username", username)
	return NewSession(username, vault.ID, vaultKey), nil
}

// Logout destroys the session. Calling it with a nil or already destroyed
// session is a no-op.
func (a *authService) Logout(ctx context.Context, session *Session) error {
	session.Destroy()
	a.log.Info(ctx, "session destroyed")
	return nil
}
