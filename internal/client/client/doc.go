// Package client is the HTTP facade over the API server's REST endpoints.
//
// # Overview
//
// A *Client is built once at startup (New) and shared by reference. It:
//  1. Exposes one typed method per endpoint (Login, Signup, CurrentUser,
//     UploadFile, UploadFiles, Status, ProtectedData, Profile, UpdateProfile,
//     Data, Health).
//  2. Routes every request through a single executor (Call) that sets the
//     JSON content type, layers caller headers on top, attaches
//     "Authorization: Bearer <token>" while a session is held, and normalizes
//     the response into a Result.
//  3. Owns the session token: it is read once from the injected TokenStore in
//     New, replaced on successful Login/Signup and cleared by Logout.
//
// # Results
//
// I/O methods never return a Go error and never panic. They return a
// Result[T]: either Data (Error == "") or a non-empty Error string. Transport
// failures, non-2xx statuses and malformed JSON bodies all produce the error
// variant; for non-2xx responses the server's "error" field is used verbatim
// when present, otherwise "HTTP <code>: <status text>". Result.Err bridges to
// the error world; the returned *APIError matches ErrUnauthorized and
// ErrUnavailable with errors.Is.
//
// # Sessions
//
// IsAuthenticated reports token presence only; no expiry is checked. Calls may
// run concurrently. Concurrent Login/Logout calls are not ordered: the last
// one to complete wins.
//
// There are no retries and no client-level timeout unless WithHTTPTimeout is
// given; cancel a call through its context.
package client
