package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_Put(t *testing.T) {
	file := []byte("hello, storage")
	ctx := context.Background()

	t.Run("success 200", func(t *testing.T) {
		var gotBody []byte
		var gotCT string
		var gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = body
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		tr := NewTransfer(nil)
		err := tr.Put(ctx, ts.URL+"/presigned?X-Amz-Signature=abc", "image/jpeg", file)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "image/jpeg", gotCT)
		assert.Equal(t, file, gotBody)
	})

	t.Run("any 2xx is success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		tr := NewTransfer(nil)
		assert.NoError(t, tr.Put(ctx, ts.URL, "audio/mpeg", file))
	})

	t.Run("empty content type falls back to octet-stream", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		tr := NewTransfer(nil)
		require.NoError(t, tr.Put(ctx, ts.URL, "", file))
		assert.Equal(t, "application/octet-stream", gotCT)
	})

	t.Run("non-2xx is an error with status and body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("signature expired"))
		}))
		defer ts.Close()

		tr := NewTransfer(nil)
		err := tr.Put(ctx, ts.URL, "image/png", file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "signature expired")
	})

	t.Run("transport error propagates", func(t *testing.T) {
		tr := NewTransfer(&http.Client{Timeout: 50 * time.Millisecond})
		err := tr.Put(ctx, "http://127.0.0.1:1/unreachable", "image/png", file)
		assert.Error(t, err)
	})
}
