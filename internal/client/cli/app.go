package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/client/config"
	"github.com/editaisbr/editais/internal/client/repositories/localstore"
	"github.com/editaisbr/editais/internal/client/services"
	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reports where session and notice data comes from.
type Mode string

const (
	// ModeRemote: a backend is configured; remote data merged with samples.
	ModeRemote Mode = "remote"
	// ModeLocal: no backend; persisted record and samples only.
	ModeLocal Mode = "local"
)

// App wires the configuration, the local store, the backend client and the
// services together behind the REPL commands.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	client  client.Client // nil in local mode
	session services.SessionService
	notices services.NoticeService
	profile services.ProfileService
	metrics services.MetricsService
	Mode    Mode
	reader  *bufio.Reader
}

// NewApp builds the application. A missing or unreachable backend
// configuration is not an error: the app degrades to local-only mode.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstore.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	store := localstore.NewSQLiteRepository(db)

	var apiClient client.Client
	mode := ModeLocal
	if c.BackendBaseURL != "" {
		httpClient, err := client.NewHTTPClient(c.BackendBaseURL, c.BackendAPIKey,
			client.WithTimeout(c.RequestTimeout))
		if err != nil {
			log.Warn(ctx, "backend not usable, running local-only", "error", err)
		} else {
			// Restore the persisted token so the immediate subscription
			// notification can resolve the previous session.
			if data, err := store.Get(ctx, common.StorageKeyToken); err == nil && data != nil {
				httpClient.SetToken(string(data))
			}
			apiClient = httpClient
			mode = ModeRemote
		}
	}

	session := services.NewSessionService(apiClient, store, log)
	notices := services.NewNoticeService(apiClient, store, session, log, c.PerUserFavorites)
	profile := services.NewProfileService(apiClient, store, session, log)
	metrics := services.NewMetricsService(apiClient, session, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		client:  apiClient,
		session: session,
		notices: notices,
		profile: profile,
		metrics: metrics,
		Mode:    mode,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the resolver, loads the merged listing and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Start(ctx)
	a.notices.Load(ctx)

	printlnFn("Bem-vindo ao EditaisBR (digite 'help' para os comandos)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close tears down the resolver, the backend client and the local store.
func (a *App) Close() {
	a.session.Close()
	if a.client != nil {
		_ = a.client.Close()
	}
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	who := "anônimo"
	if user := a.session.Current(); user != nil {
		who = user.Email
	}
	return fmt.Sprintf("(%s %s)", who, a.Mode)
}
