package archive

import (
	"context"
	"crypto/md5" //nolint:gosec // matches the upload header
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mws-toolkit/internal/config"
)

// fakeS3 is a path-style S3 endpoint that keeps objects in memory.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string][]byte
	headers map[string]http.Header
}

func newFakeS3(buckets ...string) *fakeS3 {
	f := &fakeS3{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
		headers: make(map[string]http.Header),
	}
	for _, b := range buckets {
		f.buckets[b] = true
	}
	return f
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := strings.TrimPrefix(r.URL.Path, "/")
	bucket, key, _ := strings.Cut(p, "/")
	hasKey := key != ""

	switch {
	case r.Method == http.MethodHead && !hasKey:
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut && !hasKey:
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		if !f.buckets[bucket] {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<Error><Code>NoSuchBucket</Code><Message>no such bucket</Message></Error>`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.objects[p] = body
		f.headers[p] = r.Header.Clone()
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestArchiver(t *testing.T, srv *httptest.Server) *S3Archiver {
	t.Helper()
	a, err := NewS3Archiver(context.Background(), &config.ArchiveConfig{
		Enabled:         true,
		Bucket:          "mws-reports",
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		UsePathStyle:    true,
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return a
}

func TestNewS3Archiver_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		_, err := NewS3Archiver(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := NewS3Archiver(context.Background(), &config.ArchiveConfig{Region: "us-east-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})
}

func TestS3Archiver_PutReport(t *testing.T) {
	t.Parallel()

	fake := newFakeS3("mws-reports")
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a := newTestArchiver(t, srv)
	body := []byte("sku\tprice\tquantity\nABC-1\t9.99\t4\n")

	const key = "reports/us/get_merchant_listings_data/898899473.txt"

	obj, err := a.PutReport(context.Background(), key, body)
	require.NoError(t, err)

	sum := md5.Sum(body) //nolint:gosec // test helper
	wantMD5 := base64.StdEncoding.EncodeToString(sum[:])

	assert.Equal(t, "mws-reports", obj.Bucket)
	assert.Equal(t, int64(len(body)), obj.Size)
	assert.Equal(t, wantMD5, obj.ContentMD5)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", obj.ETag)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, body, fake.objects["mws-reports/"+key])
	hdr := fake.headers["mws-reports/"+key]
	assert.Equal(t, wantMD5, hdr.Get("Content-Md5"))
	assert.Contains(t, hdr.Get("Authorization"), "AKIDEXAMPLE")
}

func TestS3Archiver_PutReport_EmptyKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newFakeS3("mws-reports"))
	defer srv.Close()

	_, err := newTestArchiver(t, srv).PutReport(context.Background(), "", []byte("x"))
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestS3Archiver_PutReport_MissingBucket(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newFakeS3())
	defer srv.Close()

	_, err := newTestArchiver(t, srv).PutReport(context.Background(), "k.txt", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "putting s3://mws-reports/k.txt")
}

func TestS3Archiver_EnsureBucket(t *testing.T) {
	t.Parallel()

	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a := newTestArchiver(t, srv)
	require.NoError(t, a.EnsureBucket(context.Background()))

	fake.mu.Lock()
	assert.True(t, fake.buckets["mws-reports"])
	fake.mu.Unlock()

	// Second call sees the existing bucket.
	require.NoError(t, a.EnsureBucket(context.Background()))
	assert.Equal(t, "mws-reports", a.Bucket())
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	available := time.Date(2017, 2, 25, 18, 10, 21, 0, time.UTC)

	tests := []struct {
		name       string
		prefix     string
		reportType string
		want       string
	}{
		{
			name:       "underscores trimmed and lowercased",
			prefix:     "reports/",
			reportType: "_GET_FLAT_FILE_ORDERS_DATA_",
			want:       "reports/us/get_flat_file_orders_data/2017/02/25/898899474.txt",
		},
		{
			name:       "empty prefix",
			reportType: "_GET_MERCHANT_LISTINGS_DATA_",
			want:       "us/get_merchant_listings_data/2017/02/25/898899474.txt",
		},
		{
			name:       "blank type",
			prefix:     "r/",
			reportType: "__",
			want:       "r/us/unknown/2017/02/25/898899474.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ObjectKey(tt.prefix, "us", tt.reportType, "898899474", available))
		})
	}
}

// compile-time interface check.
var _ Archiver = (*S3Archiver)(nil)
