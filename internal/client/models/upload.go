package models

import "time"

const (
	UploadStatusCompleted = "completed"
	UploadStatusFailed    = "failed"
)

// UploadRecord is one entry of the local upload history.
type UploadRecord struct {
	ID         string
	FileName   string
	Size       int64
	URL        string // empty when the server did not return one
	Status     string
	Error      string
	UploadedAt time.Time
}
