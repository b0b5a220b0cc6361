package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*CloudinaryClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewCloudinaryClient("demo-cloud", "key123", "secret456", 5*time.Second)
	c.SetBaseURL(srv.URL)
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c, srv
}

func expectedSignature(query, secret string) string {
	sum := sha1.Sum([]byte(query + secret))
	return hex.EncodeToString(sum[:])
}

func TestCloudinaryUpload_SignedRequest(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	var gotFile []byte

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))

		gotForm = map[string]string{}
		for k, vs := range r.MultipartForm.Value {
			gotForm[k] = vs[0]
		}

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotFile, _ = io.ReadAll(f)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"public_id": "nextjs-cloudinary/abc123",
			"bytes":     1048576,
			"duration":  12.0,
		})
	})

	result, err := c.Upload(context.Background(), []byte("video-bytes"), "demo.mp4", "nextjs-cloudinary")
	require.NoError(t, err)

	assert.Equal(t, "/demo-cloud/auto/upload", gotPath)
	assert.Equal(t, []byte("video-bytes"), gotFile)
	assert.Equal(t, "key123", gotForm["api_key"])
	assert.Equal(t, "nextjs-cloudinary", gotForm["folder"])
	assert.Equal(t, "1700000000", gotForm["timestamp"])
	assert.Equal(t,
		expectedSignature("folder=nextjs-cloudinary&timestamp=1700000000", "secret456"),
		gotForm["signature"])

	assert.Equal(t, "nextjs-cloudinary/abc123", result.PublicID)
	assert.Equal(t, int64(1048576), result.Bytes)
	assert.Equal(t, 12.0, result.Duration)
}

func TestCloudinaryUpload_HostErrorSurfacesMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid image file"}}`)
	})

	_, err := c.Upload(context.Background(), []byte("junk"), "x.bin", "f")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
}

func TestCloudinaryUpload_MissingPublicIDRejected(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bytes": 10}`)
	})

	_, err := c.Upload(context.Background(), []byte("data"), "x.bin", "f")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no public id")
}

func TestCloudinaryDestroy_SignedRequest(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotForm = map[string]string{}
		for k, vs := range r.MultipartForm.Value {
			gotForm[k] = vs[0]
		}
		fmt.Fprint(w, `{"result":"ok"}`)
	})

	err := c.Destroy(context.Background(), "nextjs-cloudinary/abc123")
	require.NoError(t, err)

	assert.Equal(t, "/demo-cloud/video/destroy", gotPath)
	assert.Equal(t, "nextjs-cloudinary/abc123", gotForm["public_id"])
	assert.Equal(t,
		expectedSignature("public_id=nextjs-cloudinary/abc123&timestamp=1700000000", "secret456"),
		gotForm["signature"])
}

func TestCloudinaryUpload_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewCloudinaryClient("demo-cloud", "key123", "secret456", 50*time.Millisecond)
	c.SetBaseURL(srv.URL)

	_, err := c.Upload(context.Background(), []byte("data"), "x.bin", "f")
	require.Error(t, err)
}
