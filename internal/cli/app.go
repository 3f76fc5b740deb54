package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/guilhermegsr/password-manager-LP/internal/config"
	"github.com/guilhermegsr/password-manager-LP/internal/logging"
	"github.com/guilhermegsr/password-manager-LP/internal/services"
	"github.com/guilhermegsr/password-manager-LP/internal/storage"
)

// App ties the interactive client together: configuration, the database,
// the application services and the current session, if any.
type App struct {
	config            *config.Config
	log               logging.Logger
	db                *sql.DB
	authService       services.AuthService
	credentialService services.CredentialService
	session           *services.Session
	reader            *bufio.Reader
}

// NewApp opens the vault database at the configured path, applying pending
// migrations, and wires the application services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, storage.DSN(c.DatabasePath))
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config:            c,
		log:               log,
		db:                db,
		authService:       services.NewAuthService(db, log),
		credentialService: services.NewCredentialService(db, log),
		reader:            bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits. Key material and the
// database handle are released on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.session.Destroy()
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	printlnFn("Vault CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return fmt.Sprintf("(%s)", a.session.Username)
	}
	return ""
}
