package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// captured is what the fake server saw of one request.
type captured struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
	Files  map[string][]string // multipart field -> filenames
	Values map[string][]string // multipart field -> non-file values
}

type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []captured
}

// newFakeAPI serves handler and records every request before it runs.
func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := captured{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()}
		if isMultipart(r) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			c.Files = map[string][]string{}
			for field, hs := range r.MultipartForm.File {
				for _, h := range hs {
					c.Files[field] = append(c.Files[field], h.Filename)
				}
			}
			c.Values = r.MultipartForm.Value
		} else if r.Body != nil {
			c.Body, _ = io.ReadAll(r.Body)
		}
		f.mu.Lock()
		f.requests = append(f.requests, c)
		f.mu.Unlock()

		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(f.Close)
	return f
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (f *fakeAPI) Requests() []captured {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]captured(nil), f.requests...)
}

func (f *fakeAPI) Last(t *testing.T) captured {
	t.Helper()
	reqs := f.Requests()
	require.NotEmpty(t, reqs, "no request reached the server")
	return reqs[len(reqs)-1]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(code int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, code, v)
	}
}

func mintToken(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newClient(t *testing.T, baseURL string, store TokenStore, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), baseURL, store, opts...)
	require.NoError(t, err)
	return c
}

// stubStore is a TokenStore whose calls can be made to fail.
type stubStore struct {
	mu        sync.Mutex
	token     string
	loadErr   error
	saveErr   error
	removeErr error
	saves     int
	removes   int
}

func (s *stubStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.loadErr
}

func (s *stubStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *stubStore) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes++
	if s.removeErr != nil {
		return s.removeErr
	}
	s.token = ""
	return nil
}
