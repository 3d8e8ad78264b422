package upload

import (
	"strings"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

// TaskState is the per-file state machine: Pending → Uploaded | Failed.
// A task reaches exactly one terminal state; siblings are unaffected.
type TaskState int

const (
	TaskPending TaskState = iota
	TaskUploaded
	TaskFailed
)

func (s TaskState) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskUploaded:
		return "uploaded"
	case TaskFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TaskResult is the immutable snapshot of one file's outcome.
type TaskResult struct {
	ID    string
	Name  string
	Kind  models.FileKind
	State TaskState
	URL   string
	Err   error
}

// BatchResult is the snapshot of a whole batch after every task reached a
// terminal state.
type BatchResult struct {
	Tasks    []TaskResult
	Uploaded int
	Failed   int
}

// bucketFor normalizes a file's MIME type to the backend's coarse buckets.
// The declared content type wins; when the picker declared nothing, the
// bytes are sniffed. Types that are neither image/* nor audio/* fall back to
// the batch's declared category.
func bucketFor(f models.File, fallback models.FileKind) models.FileKind {
	ct := f.ContentType
	if ct == "" {
		ct = mimetype.Detect(f.Data).String()
	}
	switch {
	case strings.HasPrefix(ct, "image/"):
		return models.FileKindImage
	case strings.HasPrefix(ct, "audio/"):
		return models.FileKindAudio
	default:
		return fallback
	}
}

// extensionOf derives the extension from the file name alone, independent of
// how the browser or picker reported the MIME type: lower-cased substring
// after the final dot, empty when there is none.
func extensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
