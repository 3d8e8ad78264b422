package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/ahmchowd27/safesnap-client/internal/client/api"
	"github.com/ahmchowd27/safesnap-client/internal/client/config"
	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/ahmchowd27/safesnap-client/internal/client/services"
	"github.com/ahmchowd27/safesnap-client/internal/client/session"
	"github.com/ahmchowd27/safesnap-client/internal/client/store"
	"github.com/ahmchowd27/safesnap-client/internal/client/upload"
	"github.com/ahmchowd27/safesnap-client/internal/logging"
	"github.com/ahmchowd27/safesnap-client/internal/netx"

	_ "modernc.org/sqlite"
)

// Narrow views of the services, so command handlers can be tested against
// stubs.

type authService interface {
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error)
	Logout(ctx context.Context) error
}

type incidentService interface {
	Report(ctx context.Context, draft models.IncidentDraft, uploads services.Uploads) (*models.Incident, error)
	List(ctx context.Context) ([]models.Incident, error)
	Get(ctx context.Context, id int64) (*models.Incident, error)
	SetStatus(ctx context.Context, id int64, status string) (*models.Incident, error)
	RequestRCA(ctx context.Context, incidentID int64) (*models.RCAReport, error)
	RCA(ctx context.Context, incidentID int64) (*models.RCAReport, error)
}

type uploader interface {
	UploadAll(ctx context.Context, files []models.File, kind models.FileKind) (*upload.BatchResult, error)
	ImageURLs() []string
	AudioURLs() []string
	RemoveImageURL(url string) bool
	RemoveAudioURL(url string) bool
	Reset()
	FileExists(ctx context.Context, url string) bool
	DownloadURL(ctx context.Context, url string) (*models.DownloadLink, error)
}

type App struct {
	config    *config.Config
	log       logging.Logger
	sessions  *session.Manager
	guard     *session.Guard
	auth      authService
	incidents incidentService
	uploads   uploader
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local store: %w", err)
	}

	sessions := session.NewManager(db, logger)

	app := &App{
		config:   c,
		log:      logger,
		sessions: sessions,
		guard:    session.NewGuard(sessions),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	gateway := api.New(c.ServerBaseURL,
		api.WithTokenSource(sessions),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger),
		api.WithUnauthorizedHook(app.onUnauthorized),
	)

	app.auth = services.NewAuthService(gateway, sessions)
	app.incidents = services.NewIncidentService(gateway)
	app.uploads = upload.NewCoordinator(gateway, netx.NewTransfer(&http.Client{Timeout: c.RequestTimeout}), logger)

	if sessions.Restore(ctx) {
		if s, ok := sessions.Current(); ok {
			fmt.Fprintf(app.out, "Welcome back, %s!\n", s.User.Name)
		}
	}

	return app, nil
}

// onUnauthorized is the 401 hook: whatever call hit the stale token, the
// session is purged and the user is sent back to the login prompt.
func (a *App) onUnauthorized() {
	_ = a.sessions.Logout(context.Background())
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) status() string {
	s, ok := a.sessions.Current()
	if !ok {
		return "logged out"
	}
	return fmt.Sprintf("%s (%s)", s.User.Name, s.User.Role)
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
