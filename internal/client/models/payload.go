package models

import "io"

// Payload holds endpoint responses whose shape the server decides
// (status, profile, data, health, uploads). It is whatever JSON value the
// server sent: an object, an array, a string, a number, a bool or nil.
type Payload = any

// Field returns p[key] when p is a JSON object holding key.
func Field(p Payload, key string) (any, bool) {
	obj, ok := p.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// StringField returns p[key] when p is a JSON object and the value is a
// JSON string.
func StringField(p Payload, key string) (string, bool) {
	v, _ := Field(p, key)
	s, ok := v.(string)
	return s, ok
}

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	// Name is sent as the part's filename.
	Name   string
	Reader io.Reader
}
