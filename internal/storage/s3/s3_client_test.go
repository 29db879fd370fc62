package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/port"
)

// fakeBucket serves path-style S3 requests for a single bucket.
type fakeBucket struct {
	mu      sync.Mutex
	name    string
	objects map[string][]byte
	headers map[string]http.Header
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if bucket != f.name {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	switch {
	case r.Method == http.MethodHead && key == "":
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		f.headers[key] = r.Header.Clone()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		data, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		_, _ = w.Write(data)
	case r.Method == http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestStore(t *testing.T) (port.ObjectStorage, *fakeBucket) {
	t.Helper()
	fake := &fakeBucket{name: "ledger", objects: map[string][]byte{}, headers: map[string]http.Header{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewS3Client(&config.S3Config{
		Region:    "ap-south-1",
		Bucket:    "ledger",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)
	return store, fake
}

func TestNewS3Client_RequiresBucket(t *testing.T) {
	_, err := NewS3Client(&config.S3Config{Region: "ap-south-1"})
	assert.Error(t, err)
}

func TestBucketStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t)

	data := []byte(`{"bills":[],"expenses":[]}`)
	require.NoError(t, store.Put(ctx, port.PutObjectInput{
		Key:                "ledger/k.json",
		Body:               bytes.NewReader(data),
		Size:               int64(len(data)),
		ContentType:        "application/json",
		ContentDisposition: `attachment; filename="k.json"`,
	}))
	assert.Equal(t, "application/json", fake.headers["ledger/k.json"].Get("Content-Type"))
	assert.Equal(t, `attachment; filename="k.json"`, fake.headers["ledger/k.json"].Get("Content-Disposition"))

	got, err := store.Get(ctx, "ledger/k.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "ledger/k.json"))
	_, err = store.Get(ctx, "ledger/k.json")
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
}

func TestBucketStore_PresignGet(t *testing.T) {
	store, _ := newTestStore(t)

	link, err := store.PresignGet(context.Background(), "invoices/b1/KSP-001.pdf", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, link, "/ledger/invoices/b1/KSP-001.pdf")
	assert.Contains(t, link, "X-Amz-Expires=3600")
	assert.Contains(t, link, "X-Amz-Signature=")
}

func TestBucketStore_Ping(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
