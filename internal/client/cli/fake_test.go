package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/apiclient/internal/client/client"
	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/client/session"
)

// fakeAPI records what the CLI asked for and replays canned results.
type fakeAPI struct {
	token string

	loginIn  models.LoginData
	signupIn models.SignupData
	authRes  client.Result[models.AuthResponse]

	meRes     client.Result[models.CurrentUser]
	meCalls   int
	logoutErr error

	uploaded  []string // names, in order
	contents  []string
	uploadRes client.Result[models.Payload]

	updateIn models.ProfileUpdate
	payload  client.Result[models.Payload]
	calls    []string
}

func (f *fakeAPI) Login(_ context.Context, creds models.LoginData) client.Result[models.AuthResponse] {
	f.loginIn = creds
	if f.authRes.OK() && f.authRes.Data.Token != "" {
		f.token = f.authRes.Data.Token
	}
	return f.authRes
}

func (f *fakeAPI) Signup(_ context.Context, data models.SignupData) client.Result[models.AuthResponse] {
	f.signupIn = data
	if f.authRes.OK() && f.authRes.Data.Token != "" {
		f.token = f.authRes.Data.Token
	}
	return f.authRes
}

func (f *fakeAPI) CurrentUser(context.Context) client.Result[models.CurrentUser] {
	f.meCalls++
	return f.meRes
}

func (f *fakeAPI) Logout(context.Context) error {
	f.token = ""
	return f.logoutErr
}

func (f *fakeAPI) record(name string, files []models.UploadFile) client.Result[models.Payload] {
	f.calls = append(f.calls, name)
	for _, file := range files {
		b, _ := io.ReadAll(file.Reader)
		f.uploaded = append(f.uploaded, file.Name)
		f.contents = append(f.contents, string(b))
	}
	return f.payload
}

func (f *fakeAPI) UploadFile(_ context.Context, file models.UploadFile) client.Result[models.Payload] {
	return f.record("upload", []models.UploadFile{file})
}

func (f *fakeAPI) UploadFiles(_ context.Context, files []models.UploadFile) client.Result[models.Payload] {
	return f.record("uploadmany", files)
}

func (f *fakeAPI) Status(context.Context) client.Result[models.Payload] {
	return f.record("status", nil)
}

func (f *fakeAPI) ProtectedData(context.Context) client.Result[models.Payload] {
	return f.record("protected", nil)
}

func (f *fakeAPI) Profile(context.Context) client.Result[models.Payload] {
	return f.record("profile", nil)
}

func (f *fakeAPI) UpdateProfile(_ context.Context, upd models.ProfileUpdate) client.Result[models.Payload] {
	f.updateIn = upd
	return f.record("profile-update", nil)
}

func (f *fakeAPI) Data(context.Context) client.Result[models.Payload] {
	return f.record("data", nil)
}

func (f *fakeAPI) Health(context.Context) client.Result[models.Payload] {
	return f.record("health", nil)
}

func (f *fakeAPI) IsAuthenticated() bool { return f.token != "" }

func (f *fakeAPI) Token() (string, bool) { return f.token, f.token != "" }

func (f *fakeAPI) BaseURL() string { return "http://api.test" }

// memHistory is an in-memory uploads.Repository.
type memHistory struct {
	recs   []models.UploadRecord
	addErr error
	err    error
}

func (m *memHistory) Add(_ context.Context, rec *models.UploadRecord) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.recs = append(m.recs, *rec)
	return nil
}

func (m *memHistory) List(_ context.Context, limit int) ([]models.UploadRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.UploadRecord, 0, len(m.recs))
	for i := len(m.recs) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.recs[i])
	}
	return out, nil
}

func (m *memHistory) Clear(context.Context) error {
	m.recs = nil
	return nil
}

type fakeSessions struct {
	info session.Info
	err  error
}

func (f fakeSessions) Info(context.Context) (session.Info, error) { return f.info, f.err }

func newTestApp(api *fakeAPI, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := NewApp(Deps{API: api, In: strings.NewReader(input), Out: &out})
	return a, &out
}

// stubInputs feeds answers to getSimpleText in order and a fixed password.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		s := answers[0]
		answers = answers[1:]
		return s, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
