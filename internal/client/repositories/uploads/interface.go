package uploads

import (
	"context"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
)

// Repository describes the upload history store.
type Repository interface {
	// Add inserts a record. An empty ID is filled in.
	Add(ctx context.Context, rec *models.UploadRecord) error

	// List returns up to limit records, newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]models.UploadRecord, error)

	// Clear removes the whole history.
	Clear(ctx context.Context) error
}
