package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

// recordingBackend captures the order of mutating requests.
type recordingBackend struct {
	mu     sync.Mutex
	calls  []string
	photos []backend.ProductPhoto
}

func (rb *recordingBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/productPhotos/{productId}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(rb.photos)
	})
	mux.HandleFunc("PUT /api/productPhotos/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in backend.PhotoInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		rb.mu.Lock()
		rb.calls = append(rb.calls, fmt.Sprintf("PUT %s primary=%v", r.PathValue("id"), in.IsPrimary))
		rb.mu.Unlock()
		_ = json.NewEncoder(w).Encode(backend.ProductPhoto{})
	})
	mux.HandleFunc("POST /api/productPhotos", func(w http.ResponseWriter, r *http.Request) {
		rb.mu.Lock()
		rb.calls = append(rb.calls, "POST new")
		rb.mu.Unlock()
		_ = json.NewEncoder(w).Encode(backend.ProductPhoto{ID: 99})
	})
	return mux
}

func newService(t *testing.T, h http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(backend.New(srv.URL, "session", 2*time.Second, log))
}

func TestGalleryOrder(t *testing.T) {
	t.Parallel()

	rb := &recordingBackend{photos: []backend.ProductPhoto{
		{ID: 3, DisplayOrder: 2},
		{ID: 1, DisplayOrder: 1},
		{ID: 2, DisplayOrder: 1, IsPrimary: true},
	}}
	svc := newService(t, rb.handler(t))

	out, err := svc.Gallery(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(2), out[0].ID, "primary first")
	require.Equal(t, int64(1), out[1].ID)
	require.Equal(t, int64(3), out[2].ID)
}

func TestSavePrimaryDemotesExistingFirst(t *testing.T) {
	t.Parallel()

	rb := &recordingBackend{photos: []backend.ProductPhoto{
		{ID: 1, ProductID: 5, IsPrimary: true, PhotoURL: "http://img/1.jpg"},
		{ID: 2, ProductID: 5},
	}}
	svc := newService(t, rb.handler(t))

	_, err := svc.Save(context.Background(), 0, backend.PhotoInput{
		ProductID: 5, PhotoURL: "http://img/new.jpg", IsPrimary: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"PUT 1 primary=false", "POST new"}, rb.calls,
		"demotion must complete before the new primary is written")
}

func TestSaveNonPrimarySkipsDemotion(t *testing.T) {
	t.Parallel()

	rb := &recordingBackend{photos: []backend.ProductPhoto{
		{ID: 1, ProductID: 5, IsPrimary: true},
	}}
	svc := newService(t, rb.handler(t))

	_, err := svc.Save(context.Background(), 0, backend.PhotoInput{ProductID: 5, PhotoURL: "http://img/x.jpg"})
	require.NoError(t, err)
	require.Equal(t, []string{"POST new"}, rb.calls)
}

func TestSavePromoteExistingKeepsItUntouchedByDemotion(t *testing.T) {
	t.Parallel()

	rb := &recordingBackend{photos: []backend.ProductPhoto{
		{ID: 1, ProductID: 5, IsPrimary: true},
		{ID: 2, ProductID: 5},
	}}
	svc := newService(t, rb.handler(t))

	_, err := svc.Save(context.Background(), 2, backend.PhotoInput{
		ProductID: 5, PhotoURL: "http://img/2.jpg", IsPrimary: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"PUT 1 primary=false", "PUT 2 primary=true"}, rb.calls)
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	require.True(t, ValidURL("https://cdn.example.com/shirt.jpg"))
	require.True(t, ValidURL("http://cdn.example.com/shirt.jpg"))
	require.False(t, ValidURL(""))
	require.False(t, ValidURL("ftp://cdn.example.com/shirt.jpg"))
	require.False(t, ValidURL("not a url"))
	require.False(t, ValidURL("https://"))
}
