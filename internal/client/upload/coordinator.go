// Package upload turns user-selected files into publicly addressable URLs
// via a three-step protocol per file: request a presigned grant, PUT the
// bytes directly to storage, record the resulting public URL. Files fail
// independently; one bad file never cancels its siblings.
package upload

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/ahmchowd27/safesnap-client/internal/logging"
	"github.com/google/uuid"
)

// ErrBatchFailed is the single aggregate error surfaced when at least one
// task in a batch failed. Per-file detail stays in the BatchResult;
// already-succeeded URLs remain in the result lists.
var ErrBatchFailed = errors.New("some files could not be uploaded")

// DefaultDownloadExpiry is assumed when the backend omits an explicit expiry
// on a download link.
const DefaultDownloadExpiry = 3600 * time.Second

// Storage is the backend surface the coordinator needs. The API gateway
// satisfies it.
type Storage interface {
	CreateUploadGrant(ctx context.Context, kind models.FileKind, extension string) (*models.UploadGrant, error)
	ResolveDownloadURL(ctx context.Context, s3URL string) (*models.DownloadLink, error)
	FileExists(ctx context.Context, s3URL string) (bool, error)
}

// Transfer performs the direct PUT to a presigned URL, outside the gateway.
type Transfer interface {
	Put(ctx context.Context, url string, contentType string, body []byte) error
}

// Coordinator tracks upload state for one form-editing session: the two
// append-only URL lists and the batch-in-flight flag. Batches run
// sequentially in submission order; the mutex keeps state consistent if a
// caller drives the coordinator from more than one goroutine.
type Coordinator struct {
	storage  Storage
	transfer Transfer
	log      logging.Logger

	mu        sync.Mutex
	uploading bool
	imageURLs []string
	audioURLs []string
}

func NewCoordinator(storage Storage, transfer Transfer, log logging.Logger) *Coordinator {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Coordinator{storage: storage, transfer: transfer, log: log}
}

// UploadAll runs the per-file protocol for every file in submission order
// and appends each success to the list for the batch's category. It returns
// the batch snapshot, with ErrBatchFailed when at least one task failed.
// The uploading flag is true from batch start until every task is terminal.
func (c *Coordinator) UploadAll(ctx context.Context, files []models.File, kind models.FileKind) (*BatchResult, error) {
	c.setUploading(true)
	defer c.setUploading(false)

	res := &BatchResult{Tasks: make([]TaskResult, 0, len(files))}

	for _, f := range files {
		tr := c.uploadOne(ctx, f, kind)
		if tr.State == TaskUploaded {
			res.Uploaded++
			c.appendURL(kind, tr.URL)
		} else {
			res.Failed++
			c.log.Warn(ctx, "file upload failed", "name", tr.Name, "err", tr.Err)
		}
		res.Tasks = append(res.Tasks, tr)
	}

	if res.Failed > 0 {
		return res, ErrBatchFailed
	}
	return res, nil
}

// uploadOne runs the strictly ordered three steps for a single file. It
// never runs step 2 before step 1 succeeded, and the public URL is only
// recorded after the transfer reported success. No automatic retries.
func (c *Coordinator) uploadOne(ctx context.Context, f models.File, batchKind models.FileKind) TaskResult {
	tr := TaskResult{
		ID:    uuid.NewString(),
		Name:  f.Name,
		Kind:  bucketFor(f, batchKind),
		State: TaskPending,
	}

	grant, err := c.storage.CreateUploadGrant(ctx, tr.Kind, extensionOf(f.Name))
	if err != nil {
		tr.State = TaskFailed
		tr.Err = err
		return tr
	}
	// grant expiry is advisory; nothing aborts an in-flight transfer
	c.log.Debug(ctx, "upload grant obtained", "name", f.Name, "expires_in", grant.ExpiresIn)

	if err := c.transfer.Put(ctx, grant.UploadURL, f.ContentType, f.Data); err != nil {
		tr.State = TaskFailed
		tr.Err = err
		return tr
	}

	tr.State = TaskUploaded
	tr.URL = grant.PublicURL
	return tr
}

func (c *Coordinator) setUploading(v bool) {
	c.mu.Lock()
	c.uploading = v
	c.mu.Unlock()
}

// Uploading reports whether a batch is in flight.
func (c *Coordinator) Uploading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploading
}

func (c *Coordinator) appendURL(kind models.FileKind, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if kind == models.FileKindAudio {
		c.audioURLs = append(c.audioURLs, url)
		return
	}
	c.imageURLs = append(c.imageURLs, url)
}

// ImageURLs returns a copy of the uploaded image URLs, in completion order.
func (c *Coordinator) ImageURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.imageURLs...)
}

// AudioURLs returns a copy of the uploaded audio URLs, in completion order.
func (c *Coordinator) AudioURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.audioURLs...)
}

// RemoveImageURL drops the first occurrence of url from the image list.
// Pure local mutation, no network call. Returns whether anything was removed.
func (c *Coordinator) RemoveImageURL(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ok bool
	c.imageURLs, ok = removeFirst(c.imageURLs, url)
	return ok
}

// RemoveAudioURL drops the first occurrence of url from the audio list.
func (c *Coordinator) RemoveAudioURL(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ok bool
	c.audioURLs, ok = removeFirst(c.audioURLs, url)
	return ok
}

func removeFirst(urls []string, url string) ([]string, bool) {
	for i, u := range urls {
		if u == url {
			return append(urls[:i], urls[i+1:]...), true
		}
	}
	return urls, false
}

// Reset drops both URL lists. Called when the form they belong to is
// submitted or abandoned; the lists never outlive one editing session.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imageURLs = nil
	c.audioURLs = nil
}

// FileExists confirms the object behind a previously obtained public URL
// still exists. Fail-safe-false: any transport or server error resolves to
// "does not exist" instead of propagating.
func (c *Coordinator) FileExists(ctx context.Context, url string) bool {
	exists, err := c.storage.FileExists(ctx, url)
	if err != nil {
		c.log.Debug(ctx, "file-exists check failed, assuming absent", "url", url, "err", err)
		return false
	}
	return exists
}

// DownloadURL fetches a fresh time-bounded download link for a stored public
// URL, assuming DefaultDownloadExpiry when the backend omits one.
func (c *Coordinator) DownloadURL(ctx context.Context, url string) (*models.DownloadLink, error) {
	link, err := c.storage.ResolveDownloadURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if link.ExpiresIn == 0 {
		link.ExpiresIn = DefaultDownloadExpiry
	}
	return link, nil
}
