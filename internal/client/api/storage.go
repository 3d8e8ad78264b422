package api

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
)

type uploadGrantRequest struct {
	FileType      string `json:"fileType"`
	FileExtension string `json:"fileExtension"`
}

// uploadGrantResponse absorbs the backend's inconsistent field naming for the
// resulting public URL. s3Url is treated as canonical; fileUrl and
// downloadUrl are accepted as aliases, in that order.
type uploadGrantResponse struct {
	UploadURL        string `json:"uploadUrl"`
	S3URL            string `json:"s3Url"`
	FileURL          string `json:"fileUrl"`
	DownloadURL      string `json:"downloadUrl"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

type downloadURLRequest struct {
	S3URL string `json:"s3Url"`
}

type downloadURLResponse struct {
	DownloadURL      string `json:"downloadUrl"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

type fileExistsResponse struct {
	Exists bool `json:"exists"`
}

// CreateUploadGrant requests a presigned upload slot for one file.
func (g *Gateway) CreateUploadGrant(ctx context.Context, kind models.FileKind, extension string) (*models.UploadGrant, error) {
	var resp uploadGrantResponse
	body := uploadGrantRequest{FileType: string(kind), FileExtension: extension}
	if err := g.Post(ctx, "/s3/upload-url", body, &resp); err != nil {
		return nil, err
	}

	if resp.UploadURL == "" {
		return nil, fmt.Errorf("upload grant carries no upload url")
	}

	public := resp.S3URL
	if public == "" && resp.FileURL != "" {
		public = resp.FileURL
		g.log.Debug(ctx, "upload grant used alias field", "field", "fileUrl")
	}
	if public == "" && resp.DownloadURL != "" {
		public = resp.DownloadURL
		g.log.Debug(ctx, "upload grant used alias field", "field", "downloadUrl")
	}
	if public == "" {
		return nil, fmt.Errorf("upload grant carries no public url")
	}

	return &models.UploadGrant{
		UploadURL: resp.UploadURL,
		PublicURL: public,
		ExpiresIn: time.Duration(resp.ExpiresInMinutes) * time.Minute,
	}, nil
}

// ResolveDownloadURL asks for a fresh time-bounded link to a stored object.
// ExpiresIn is zero when the backend omits it; the upload coordinator applies
// the default.
func (g *Gateway) ResolveDownloadURL(ctx context.Context, s3URL string) (*models.DownloadLink, error) {
	var resp downloadURLResponse
	if err := g.Post(ctx, "/s3/download-url", downloadURLRequest{S3URL: s3URL}, &resp); err != nil {
		return nil, err
	}
	if resp.DownloadURL == "" {
		return nil, fmt.Errorf("download-url response carries no url")
	}
	return &models.DownloadLink{
		URL:       resp.DownloadURL,
		ExpiresIn: time.Duration(resp.ExpiresInSeconds) * time.Second,
	}, nil
}

// FileExists asks the backend whether the object behind a public URL still
// exists. Errors propagate here; the fail-safe-false policy lives in the
// upload coordinator.
func (g *Gateway) FileExists(ctx context.Context, s3URL string) (bool, error) {
	var resp fileExistsResponse
	if err := g.Get(ctx, "/s3/file-exists", map[string]string{"s3Url": s3URL}, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}
