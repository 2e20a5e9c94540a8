// Package session persists the single bearer token that represents the
// client's login session.
//
// SQLiteStore keeps it in the local metadata table under common.AuthTokenKey,
// optionally sealed with a passphrase (see cryptox). MemoryStore keeps it for
// the lifetime of the process only.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/apiclient/internal/common"
	"github.com/dmitrijs2005/apiclient/internal/cryptox"
	"github.com/dmitrijs2005/apiclient/internal/dbx"
)

// Stored values carry a one-byte format tag.
const (
	tagPlain  byte = 'p'
	tagSealed byte = 's'
)

// ErrUnknownFormat is returned for a stored token with an unrecognized tag.
var ErrUnknownFormat = errors.New("unknown stored token format")

// Info describes what is currently persisted.
type Info struct {
	HasToken bool
	Sealed   bool
	SavedAt  time.Time
}

type SQLiteStore struct {
	db         *sql.DB
	passphrase []byte
	now        func() time.Time
}

type Option func(*SQLiteStore)

// WithPassphrase seals tokens at rest. An empty passphrase leaves them plain.
func WithPassphrase(p string) Option {
	return func(s *SQLiteStore) {
		if p != "" {
			s.passphrase = []byte(p)
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(s *SQLiteStore) { s.now = now }
}

func NewSQLiteStore(db *sql.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted token, or "" when none is stored.
func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.AuthTokenKey)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	switch raw[0] {
	case tagPlain:
		return string(raw[1:]), nil
	case tagSealed:
		if s.passphrase == nil {
			return "", fmt.Errorf("%w: passphrase required", cryptox.ErrSealedValue)
		}
		plain, err := cryptox.Open(raw[1:], s.passphrase)
		if err != nil {
			return "", err
		}
		return string(plain), nil
	default:
		return "", ErrUnknownFormat
	}
}

// Save replaces the persisted token and its timestamp in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	value, err := s.encode(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	savedAt := s.now().UTC().Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, value); err != nil {
			return err
		}
		return repo.Set(ctx, common.AuthTokenSavedAtKey, []byte(savedAt))
	})
}

// Remove deletes the persisted token. Removing nothing is not an error.
func (s *SQLiteStore) Remove(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.AuthTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.AuthTokenSavedAtKey)
	})
}

// Info reports whether a token is stored, in which form, and when it was saved.
func (s *SQLiteStore) Info(ctx context.Context) (Info, error) {
	all, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return Info{}, err
	}

	var info Info
	if raw := all[common.AuthTokenKey]; len(raw) > 0 {
		info.HasToken = true
		info.Sealed = raw[0] == tagSealed
	}
	if ts := all[common.AuthTokenSavedAtKey]; len(ts) > 0 {
		if t, err := time.Parse(time.RFC3339, string(ts)); err == nil {
			info.SavedAt = t
		}
	}
	return info, nil
}

func (s *SQLiteStore) encode(token string) ([]byte, error) {
	if s.passphrase == nil {
		return append([]byte{tagPlain}, token...), nil
	}
	sealed, err := cryptox.Seal([]byte(token), s.passphrase)
	if err != nil {
		return nil, err
	}
	return append([]byte{tagSealed}, sealed...), nil
}
