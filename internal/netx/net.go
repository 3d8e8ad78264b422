// Package netx holds the direct-transfer half of the upload protocol:
// a raw PUT of file bytes to a presigned storage URL.
//
// This deliberately bypasses the API gateway client. A presigned URL carries
// its own credentials in the query string, and the request must not include
// the gateway's Authorization header.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transfer performs presigned-URL uploads.
type Transfer struct {
	client *http.Client
}

func NewTransfer(client *http.Client) *Transfer {
	if client == nil {
		client = &http.Client{}
	}
	return &Transfer{client: client}
}

// Put uploads the file bytes to a presigned URL with the given content type.
// Any non-2xx status is an error; the response body is included to aid
// debugging of storage-side rejections (signature mismatch, expired grant).
func (t *Transfer) Put(ctx context.Context, url string, contentType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
