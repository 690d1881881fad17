package wishlist

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

type fakeStore struct {
	items    []backend.WishlistItem
	contains bool
	deleted  []int64
	added    []backend.WishlistAdd
	missing  map[int64]bool // product ids answering 404
}

func (f *fakeStore) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/wishlist/user/{id}/items", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(f.items)
	})
	mux.HandleFunc("GET /api/wishlist/user/{id}/check/{pid}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"inWishlist": f.contains})
	})
	mux.HandleFunc("POST /api/wishlist/add", func(w http.ResponseWriter, r *http.Request) {
		var in backend.WishlistAdd
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		f.added = append(f.added, in)
		_ = json.NewEncoder(w).Encode(backend.WishlistItem{ID: 100})
	})
	mux.HandleFunc("DELETE /api/wishlistItems/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.deleted = append(f.deleted, id)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if f.missing[id] {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(backend.Product{ID: id, Name: "Shirt"})
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

func TestRemoveFindsItemByProduct(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{items: []backend.WishlistItem{
		{ID: 21, UserID: 7, ProductID: 5},
		{ID: 22, UserID: 7, ProductID: 6},
	}}
	svc := newService(t, fs.handler(t))

	require.NoError(t, svc.Remove(context.Background(), 7, 6))
	require.Equal(t, []int64{22}, fs.deleted)
}

func TestRemoveAbsentIsNoError(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{items: []backend.WishlistItem{{ID: 21, ProductID: 5}}}
	svc := newService(t, fs.handler(t))

	require.NoError(t, svc.Remove(context.Background(), 7, 99))
	require.Empty(t, fs.deleted)
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{contains: false}
	svc := newService(t, fs.handler(t))

	added, err := svc.Toggle(context.Background(), 7, 5)
	require.NoError(t, err)
	require.True(t, added)
	require.Len(t, fs.added, 1)
	require.Equal(t, int64(5), fs.added[0].ProductID)
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{
		contains: true,
		items:    []backend.WishlistItem{{ID: 21, ProductID: 5}},
	}
	svc := newService(t, fs.handler(t))

	added, err := svc.Toggle(context.Background(), 7, 5)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, []int64{21}, fs.deleted)
}

func TestLinesSkipsMissingProducts(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{
		items: []backend.WishlistItem{
			{ID: 21, ProductID: 5},
			{ID: 22, ProductID: 6},
		},
		missing: map[int64]bool{6: true},
	}
	svc := newService(t, fs.handler(t))

	lines, err := svc.Lines(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(5), lines[0].Product.ID)
}
