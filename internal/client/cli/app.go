package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gofinances/internal/client/config"
	"github.com/dmitrijs2005/gofinances/internal/client/ledger"
	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/client/oauth"
	"github.com/dmitrijs2005/gofinances/internal/client/session"
	"github.com/dmitrijs2005/gofinances/internal/client/storage"
	"github.com/dmitrijs2005/gofinances/internal/filex"
	"github.com/dmitrijs2005/gofinances/internal/logging"
)

// SessionService is the part of session.Manager the App uses.
type SessionService interface {
	State() session.State
	Subscribe(fn func(session.State)) (unsubscribe func())
	WaitRestored(ctx context.Context) error
	SignIn(ctx context.Context, provider string) error
	SignOut(ctx context.Context) error
}

// LedgerService is the part of ledger.Accessor the App uses.
type LedgerService interface {
	Append(ctx context.Context, userID string, tx models.Transaction) (models.Transaction, error)
	List(ctx context.Context, userID string) ([]models.Transaction, error)
	Summarize(ctx context.Context, userID string) (ledger.Summary, error)
}

type App struct {
	config  *config.Config
	session SessionService
	ledger  LedgerService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closeFn func() error
}

// NewApp opens the local database, builds the providers and starts the
// session manager, which begins restoring the stored session right away.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		logger.Error(ctx, "error creating database directory", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	store := storage.NewSQLiteStore(db)

	reader := bufio.NewReader(os.Stdin)

	google := oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:    c.GoogleClientID,
		RedirectURI: c.GoogleRedirectURI,
		AuthURL:     c.GoogleAuthURL,
		UserInfoURL: c.GoogleUserInfoURL,
		Scopes:      c.GoogleScopes,
	}, oauth.NewConsoleBrowserFlow(reader, os.Stdout), nil)

	apple := oauth.NewAppleProvider(
		oauth.NewConsoleCredentialRequester(reader, os.Stdout, int(os.Stdin.Fd())),
		c.AvatarURL,
	)

	mgr := session.NewManager(ctx, store, logger.With("component", "session"), google, apple)

	return &App{
		config:  c,
		session: mgr,
		ledger:  ledger.NewAccessor(store),
		logger:  logger,
		reader:  reader,
		out:     os.Stdout,
		closeFn: db.Close,
	}, nil
}

// Run waits for the stored session, then serves the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	fmt.Fprintln(a.out, "Loading...")
	if err := a.session.WaitRestored(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.logger.Warn(ctx, "stored session was not restored", "error", err)
	}

	unsubscribe := a.session.Subscribe(a.onSessionChange)
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to GoFinances (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.logger.Error(context.Background(), "error closing database", "error", err)
	}
}

func (a *App) user() models.User {
	return a.session.State().User
}

func (a *App) isLoggedIn() bool {
	return a.user().IsAuthenticated()
}

func (a *App) status() string {
	u := a.user()
	if !u.IsAuthenticated() {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s)", u.DisplayName())
}

func (a *App) onSessionChange(st session.State) {
	if st.User.IsAuthenticated() {
		fmt.Fprintf(a.out, "Hello, %s!\n", st.User.DisplayName())
		return
	}
	fmt.Fprintln(a.out, "Signed out")
}
