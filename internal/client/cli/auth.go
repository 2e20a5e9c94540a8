package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/common"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

// Signup prompts for name, email and password and creates an account. A
// successful signup also starts a session.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.api.Signup(ctx, models.SignupData{Email: email, Password: string(password), Name: name})
	if !res.OK() {
		fmt.Fprintf(a.out, "Signup failed: %s\n", res.Error)
		return res.Err()
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(res.Data.User))
	a.adoptUser(res.Data)
	return nil
}

// Login prompts for credentials and authenticates. On failure the previous
// session, if any, stays active.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.api.Login(ctx, models.LoginData{Email: email, Password: string(password)})
	if !res.OK() {
		fmt.Fprintf(a.out, "Login failed: %s\n", res.Error)
		return res.Err()
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", displayName(res.Data.User))
	a.adoptUser(res.Data)
	return nil
}

// adoptUser names the prompt after the user only when the response actually
// started a session.
func (a *App) adoptUser(ar models.AuthResponse) {
	if ar.Token == "" || !a.api.IsAuthenticated() {
		fmt.Fprintln(a.out, "Server returned no session token; still not logged in")
		return
	}
	a.userName = ar.User.Email
}

// Me shows the user the current session belongs to.
func (a *App) Me(ctx context.Context) error {
	res := a.api.CurrentUser(ctx)
	if res.OK() {
		a.userName = res.Data.User.Email
	}
	return printResult(a.out, res)
}

// Logout ends the session locally. The in-memory session is gone even when
// the persisted token could not be removed.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	if err := a.api.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logged out, but the saved session could not be removed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
