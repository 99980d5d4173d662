package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/fintechdocs/creditapp/internal/client/api"
	"github.com/fintechdocs/creditapp/internal/client/authgate"
	"github.com/fintechdocs/creditapp/internal/client/config"
	"github.com/fintechdocs/creditapp/internal/client/repositories/state"
	"github.com/fintechdocs/creditapp/internal/client/services"
	"github.com/fintechdocs/creditapp/internal/client/session"
	"github.com/fintechdocs/creditapp/internal/logging"
	"log/slog"

	_ "modernc.org/sqlite"
)

// App is the interactive terminal client. It owns the wiring: local state
// database, API client, session store, auth gate, and the services on top.
//
// The screen loop in Run always shows the screen the auth gate dictates, so
// the binary restarts into exactly the state the last session left behind.
type App struct {
	config *config.Config
	log    logging.Logger

	apiClient api.Client
	store     *session.Store
	gate      *authgate.Gate

	auth          *services.AuthService
	notifications *services.NotificationService
	comments      *services.CommentService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires all client components from the given configuration.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(slog.LevelInfo)

	db, err := state.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerAddr, c.RequestTimeout, log)
	store := session.NewStore(db)
	gate := authgate.New(store)

	return &App{
		config:        c,
		log:           log,
		apiClient:     apiClient,
		store:         store,
		gate:          gate,
		auth:          services.NewAuthService(apiClient, store, gate, log),
		notifications: services.NewNotificationService(apiClient, store, log),
		comments:      services.NewCommentService(apiClient, store, log),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run derives the initial state and loops over the gated screens until the
// user quits. Each screen returns true when the user asked to leave.
func (a *App) Run(ctx context.Context) error {
	defer a.apiClient.Close()

	if _, err := a.gate.Refresh(ctx); err != nil {
		return err
	}

	for {
		var quit bool
		switch a.gate.Current() {
		case authgate.StateLoggedOut:
			quit = a.loginScreen(ctx)
		case authgate.StateAwaitingPinSetup:
			quit = a.pinSetupScreen(ctx)
		case authgate.StateAwaitingPinEntry:
			quit = a.pinEntryScreen(ctx)
		default:
			quit = a.mainScreen(ctx)
		}
		if quit {
			return nil
		}
	}
}
