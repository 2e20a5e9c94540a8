package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/dbx"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, rec *models.UploadRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now()
	}

	query := `INSERT INTO uploads (id, file_name, size, url, status, error, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.FileName, rec.Size, rec.URL, rec.Status, rec.Error,
		rec.UploadedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert upload %s: %w", rec.FileName, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	query := `SELECT id, file_name, size, url, status, error, uploaded_at
			FROM uploads ORDER BY uploaded_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var result []models.UploadRecord
	for rows.Next() {
		var (
			rec models.UploadRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.Size, &rec.URL, &rec.Status, &rec.Error, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		if rec.UploadedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("upload %s: bad timestamp %q: %w", rec.ID, ts, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate uploads: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM uploads`); err != nil {
		return fmt.Errorf("failed to clear uploads: %w", err)
	}
	return nil
}
