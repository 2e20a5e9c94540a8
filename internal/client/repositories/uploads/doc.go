// Package uploads persists the local history of file uploads.
//
// # Overview
//
// Every upload attempted from the CLI is recorded with its file name, size,
// the URL returned by the server and whether it succeeded. The history is
// local only; the server is never asked for it.
//
// Key Types
//
//   - type Repository      : contract used by the CLI
//   - type SQLiteRepository: SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := uploads.NewSQLiteRepository(db)
//	_ = repo.Add(ctx, &rec)
//	recent, _ := repo.List(ctx, 20)
package uploads
