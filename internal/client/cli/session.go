package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ShowToken prints the claims of the session token. The signature is not
// verified; only the server can do that.
func (a *App) ShowToken(ctx context.Context) error {
	token, ok := a.api.Token()
	if !ok {
		fmt.Fprintf(a.out, "error: %v\n", common.ErrNoSession)
		return common.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// opaque tokens are valid session credentials too
		a.log.Debug(ctx, "session token is not a JWT", "error", err)
		fmt.Fprintln(a.out, "Session token is opaque")
		return nil
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Fprintf(a.out, "subject:  %s\n", sub)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		fmt.Fprintf(a.out, "issued:   %s\n", iat.UTC().Format(time.RFC3339))
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		state := "valid"
		if exp.Before(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "expires:  %s (%s)\n", exp.UTC().Format(time.RFC3339), state)
	}
	return nil
}

// ShowSession describes the local session state.
func (a *App) ShowSession(ctx context.Context) error {
	if !a.api.IsAuthenticated() {
		fmt.Fprintln(a.out, "No active session")
		return nil
	}
	if a.sessions == nil {
		fmt.Fprintln(a.out, "Active session (not persisted)")
		return nil
	}

	info, err := a.sessions.Info(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if !info.HasToken {
		fmt.Fprintln(a.out, "Active session (not persisted)")
		return nil
	}

	enc := "plain"
	if info.Sealed {
		enc = "encrypted"
	}
	saved := "unknown"
	if !info.SavedAt.IsZero() {
		saved = info.SavedAt.UTC().Format(time.RFC3339)
	}
	fmt.Fprintf(a.out, "Active session, persisted %s at %s\n", enc, saved)
	return nil
}
