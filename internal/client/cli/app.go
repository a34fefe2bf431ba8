// Package cli implements the interactive foodprint client. It wires the
// configuration, local session storage and the API client together and
// exposes a small REPL for account and session commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/foodprint-app/foodprint/internal/client/api"
	"github.com/foodprint-app/foodprint/internal/client/config"
	"github.com/foodprint-app/foodprint/internal/client/services"
	"github.com/foodprint-app/foodprint/internal/client/storage"
)

type App struct {
	config  *config.Config
	client  api.Client
	session services.SessionManager
	db      *sql.DB
	reader  *bufio.Reader
}

// NewApp opens the local session database, builds the API client and the
// session manager, and restores any remembered session from a previous run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	sm := services.NewSessionManager(apiClient, db)

	if err := sm.Restore(ctx); err != nil {
		log.Printf("error restoring session: %s", err.Error())
	}

	return &App{config: c, client: apiClient, session: sm, db: db, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt suffix: "(username)" when a session is
// active, empty otherwise.
func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Username + ")"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to foodprint CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
