// Package cli is the console's view layer: a REPL that renders store
// snapshots and dispatches user intents back into the stores. All state
// lives in the session and resource stores; the view only presents it.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/config"
	"github.com/roadfleet/roadfleet/internal/console/credstore"
	"github.com/roadfleet/roadfleet/internal/console/guard"
	"github.com/roadfleet/roadfleet/internal/console/resources"
	"github.com/roadfleet/roadfleet/internal/console/session"
	"github.com/roadfleet/roadfleet/internal/logging"
)

type App struct {
	config    *config.Config
	session   *session.Store
	bookings  *resources.Bookings
	vehicles  *resources.Vehicles
	users     *resources.Users
	dashboard *resources.Dashboard
	analytics *resources.AnalyticsStore
	logger    logging.Logger
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr)

	db, err := credstore.InitDatabase(ctx, c.CredentialDB)
	if err != nil {
		return nil, err
	}

	client := api.NewRESTClient(c.ServerBaseURL, c.RequestTimeout)
	sess := session.NewStore(client, credstore.NewSQLiteRepository(db), logger)
	client.SetTokenSource(sess.Token)
	client.SetUnauthorizedHook(sess.HandleUnauthorized)

	return &App{
		config:    c,
		session:   sess,
		bookings:  resources.NewBookings(client),
		vehicles:  resources.NewVehicles(client),
		users:     resources.NewUsers(client),
		dashboard: resources.NewDashboard(client),
		analytics: resources.NewAnalytics(client),
		logger:    logger,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run rehydrates the session from durable storage, then hands control to
// the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Rehydrate(ctx); err != nil {
		return err
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// requireSession is the guard in front of every protected command: allow,
// or redirect to the login view. The login view itself is unguarded.
func (a *App) requireSession(ctx context.Context) bool {
	if guard.Check(a.session) == guard.Allow {
		return true
	}
	printlnFn("Not logged in, redirecting to login.")
	a.Login(ctx)
	return guard.Check(a.session) == guard.Allow
}

func (a *App) status() string {
	if identity, ok := a.session.Identity(); ok {
		return "(" + identity.Email + ")"
	}
	return ""
}
