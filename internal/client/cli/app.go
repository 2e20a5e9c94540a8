package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/apiclient/internal/client/client"
	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/apiclient/internal/client/session"
	"github.com/dmitrijs2005/apiclient/internal/logging"
)

// apiService is the part of *client.Client the CLI drives.
type apiService interface {
	Login(ctx context.Context, creds models.LoginData) client.Result[models.AuthResponse]
	Signup(ctx context.Context, data models.SignupData) client.Result[models.AuthResponse]
	CurrentUser(ctx context.Context) client.Result[models.CurrentUser]
	Logout(ctx context.Context) error

	UploadFile(ctx context.Context, f models.UploadFile) client.Result[models.Payload]
	UploadFiles(ctx context.Context, files []models.UploadFile) client.Result[models.Payload]

	Status(ctx context.Context) client.Result[models.Payload]
	ProtectedData(ctx context.Context) client.Result[models.Payload]
	Profile(ctx context.Context) client.Result[models.Payload]
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) client.Result[models.Payload]
	Data(ctx context.Context) client.Result[models.Payload]
	Health(ctx context.Context) client.Result[models.Payload]

	IsAuthenticated() bool
	Token() (string, bool)
	BaseURL() string
}

// sessionInspector reports on the persisted session.
type sessionInspector interface {
	Info(ctx context.Context) (session.Info, error)
}

// Deps are the collaborators of an App. Sessions, History and Logger are
// optional.
type Deps struct {
	API      apiService
	Sessions sessionInspector
	History  uploads.Repository
	Logger   logging.Logger
	In       io.Reader
	Out      io.Writer
}

type App struct {
	api      apiService
	sessions sessionInspector
	history  uploads.Repository
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	return &App{
		api:      d.API,
		sessions: d.Sessions,
		history:  d.History,
		log:      d.Logger,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
	}
}

// Run greets the user, resolves who a restored session belongs to and
// starts the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "API client for %s (type 'help' for commands)\n", a.api.BaseURL())

	if a.api.IsAuthenticated() {
		if res := a.api.CurrentUser(ctx); res.OK() {
			a.userName = res.Data.User.Email
		} else {
			a.log.Warn(ctx, "restored session was not accepted", "error", res.Error)
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

func (a *App) getStatus() string {
	switch {
	case a.userName != "":
		return fmt.Sprintf("(%s)", a.userName)
	case a.isLoggedIn():
		return "(authenticated)"
	default:
		return "(anonymous)"
	}
}

// printResult writes the payload as indented JSON, or the error message.
func printResult[T any](w io.Writer, res client.Result[T]) error {
	if !res.OK() {
		fmt.Fprintf(w, "error: %s\n", res.Error)
		return res.Err()
	}
	b, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
