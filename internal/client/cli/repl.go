package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Me(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	UploadMany(ctx context.Context, paths []string) error
	Status(ctx context.Context) error
	Protected(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Data(ctx context.Context) error
	Health(ctx context.Context) error
	ShowToken(ctx context.Context) error
	ShowSession(ctx context.Context) error
	Uploads(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: signup, login, status, health, data, upload <file>, uploadmany <file>..., uploads, session, exit"
	helpLoggedIn  = "Available commands: me, profile, profile-update, protected, status, health, data, upload <file>, uploadmany <file>..., uploads, token, session, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// Commands read their own prompts from the same reader, so the loop must not
// buffer ahead of them.
//
// Errors returned by command handlers have already been shown to the user
// and are ignored here. The loop exits on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("api %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "me":
			_ = a.Me(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			if len(args) != 1 {
				printlnFn("Usage: upload <file>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "uploadmany":
			if len(args) == 0 {
				printlnFn("Usage: uploadmany <file> [<file>...]")
				continue
			}
			_ = a.UploadMany(ctx, args)

		case "uploads":
			_ = a.Uploads(ctx)

		case "status":
			_ = a.Status(ctx)

		case "protected":
			_ = a.Protected(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "profile-update":
			_ = a.UpdateProfile(ctx)

		case "data":
			_ = a.Data(ctx)

		case "health":
			_ = a.Health(ctx)

		case "token":
			_ = a.ShowToken(ctx)

		case "session":
			_ = a.ShowSession(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no trailing newline
			return
		}
	}
}
