package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/client/client"
	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/filex"
)

const historyLimit = 20

func (a *App) Status(ctx context.Context) error {
	return printResult(a.out, a.api.Status(ctx))
}

func (a *App) Protected(ctx context.Context) error {
	return printResult(a.out, a.api.ProtectedData(ctx))
}

func (a *App) Profile(ctx context.Context) error {
	return printResult(a.out, a.api.Profile(ctx))
}

func (a *App) Data(ctx context.Context) error {
	return printResult(a.out, a.api.Data(ctx))
}

func (a *App) Health(ctx context.Context) error {
	return printResult(a.out, a.api.Health(ctx))
}

// UpdateProfile asks for the new name and email; blank answers are not sent.
func (a *App) UpdateProfile(ctx context.Context) error {
	var upd models.ProfileUpdate
	var err error

	if upd.Name, err = getOptionalText(a.reader, "New name", a.out); err != nil {
		return err
	}
	if upd.Email, err = getOptionalText(a.reader, "New email", a.out); err != nil {
		return err
	}
	if upd.Name == nil && upd.Email == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}
	return printResult(a.out, a.api.UpdateProfile(ctx, upd))
}

// Upload sends one local file.
func (a *App) Upload(ctx context.Context, path string) error {
	return a.upload(ctx, []string{path}, func(files []models.UploadFile) client.Result[models.Payload] {
		return a.api.UploadFile(ctx, files[0])
	})
}

// UploadMany sends several local files in one request.
func (a *App) UploadMany(ctx context.Context, paths []string) error {
	return a.upload(ctx, paths, func(files []models.UploadFile) client.Result[models.Payload] {
		return a.api.UploadFiles(ctx, files)
	})
}

func (a *App) upload(ctx context.Context, paths []string, send func([]models.UploadFile) client.Result[models.Payload]) error {
	opened, closeAll, err := filex.OpenFiles(paths)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer func() {
		if err := closeAll(); err != nil {
			a.log.Warn(ctx, "close upload files", "error", err)
		}
	}()

	files := make([]models.UploadFile, 0, len(opened))
	for _, f := range opened {
		files = append(files, models.UploadFile{Name: filepath.Base(f.Name()), Reader: f})
	}

	res := send(files)
	a.recordUploads(ctx, opened, res)
	return printResult(a.out, res)
}

// recordUploads appends the attempt to the local history. History failures
// never fail the upload.
func (a *App) recordUploads(ctx context.Context, opened []*os.File, res client.Result[models.Payload]) {
	if a.history == nil {
		return
	}
	now := time.Now()
	urls := uploadedURLs(res.Data, len(opened))

	for i, f := range opened {
		rec := models.UploadRecord{
			FileName:   filepath.Base(f.Name()),
			URL:        urls[i],
			Status:     models.UploadStatusCompleted,
			UploadedAt: now,
		}
		if fi, err := f.Stat(); err == nil {
			rec.Size = fi.Size()
		}
		if !res.OK() {
			rec.Status = models.UploadStatusFailed
			rec.Error = res.Error
		}
		if err := a.history.Add(ctx, &rec); err != nil {
			a.log.Warn(ctx, "record upload", "file", rec.FileName, "error", err)
		}
	}
}

// uploadedURLs extracts per-file URLs from an upload response: "url" for a
// single file, "files"[i]."url" for several.
func uploadedURLs(p models.Payload, n int) []string {
	urls := make([]string, n)
	if n == 1 {
		if u, ok := models.StringField(p, "url"); ok {
			urls[0] = u
			return urls
		}
	}
	v, _ := models.Field(p, "files")
	items, _ := v.([]any)
	for i := 0; i < n && i < len(items); i++ {
		if m, ok := items[i].(map[string]any); ok {
			urls[i], _ = m["url"].(string)
		}
	}
	return urls
}

// Uploads lists the most recent local upload attempts.
func (a *App) Uploads(ctx context.Context) error {
	if a.history == nil {
		fmt.Fprintln(a.out, "Upload history is not available")
		return nil
	}
	recs, err := a.history.List(ctx, historyLimit)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No uploads yet")
		return nil
	}
	for _, r := range recs {
		detail := r.URL
		if r.Status == models.UploadStatusFailed {
			detail = r.Error
		}
		fmt.Fprintf(a.out, "%s  %-9s  %8d  %s  %s\n",
			r.UploadedAt.Local().Format(time.DateTime), r.Status, r.Size, r.FileName, detail)
	}
	return nil
}
