package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/common"
)

const (
	PathUploadSingle   = "/api/upload/single"
	PathUploadMultiple = "/api/upload/multiple"

	// multipart field names expected by the server
	fieldSingleFile    = "file"
	fieldMultipleFiles = "files"
)

// UploadFile sends one file as the multipart part "file".
func (c *Client) UploadFile(ctx context.Context, f models.UploadFile) Result[models.Payload] {
	return Call[models.Payload](ctx, c, http.MethodPost, PathUploadSingle,
		withMultipart(fieldSingleFile, []models.UploadFile{f}),
		withFallbackError(fallbackUploadError),
	)
}

// UploadFiles sends every file as a repeated multipart part "files".
// An empty list fails locally without a request.
func (c *Client) UploadFiles(ctx context.Context, files []models.UploadFile) Result[models.Payload] {
	if len(files) == 0 {
		return failure[models.Payload](0, common.ErrNoFiles.Error())
	}
	return Call[models.Payload](ctx, c, http.MethodPost, PathUploadMultiple,
		withMultipart(fieldMultipleFiles, files),
		withFallbackError(fallbackUploadError),
	)
}
