// Package cli provides the interactive command-line front end of the API
// client.
//
// It drives a *client.Client through a simple REPL: authenticate, inspect the
// session, call the generic endpoints and upload files. Every command prints
// either the JSON payload returned by the server or "error: <message>".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command table.
package cli
