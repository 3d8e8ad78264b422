package models

import "time"

// FileKind is the coarse storage bucket the backend distinguishes.
type FileKind string

const (
	FileKindImage FileKind = "IMAGE"
	FileKindAudio FileKind = "AUDIO"
)

// File is a single user-selected attachment, read fully into memory before
// upload. ContentType is what the picker declared; it may be empty.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadGrant is a short-lived permission to PUT one object directly to
// storage. PublicURL is the stable address the object will have afterwards.
// ExpiresIn is advisory: nothing aborts an in-flight transfer on expiry.
type UploadGrant struct {
	UploadURL string
	PublicURL string
	ExpiresIn time.Duration
}

// DownloadLink is a fresh, time-bounded URL for a previously uploaded object.
type DownloadLink struct {
	URL       string
	ExpiresIn time.Duration
}
