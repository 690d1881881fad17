package cart

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
)

type fakeStore struct {
	product backend.Product
	added   []backend.CartAdd
}

func (f *fakeStore) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(f.product)
	})
	mux.HandleFunc("GET /api/cart/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(backend.Cart{ID: 11, UserID: 7})
	})
	mux.HandleFunc("POST /api/cart/add", func(w http.ResponseWriter, r *http.Request) {
		var in backend.CartAdd
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		f.added = append(f.added, in)
		_ = json.NewEncoder(w).Encode(backend.CartItem{ID: 1})
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

func TestAddPlainItemUsesProductPrice(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{product: backend.Product{ID: 5, Name: "Home Shirt", Price: 149.90}}
	svc := newService(t, fs.handler(t))

	_, err := svc.Add(context.Background(), 7, AddInput{ProductID: 5, Size: "L", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, fs.added, 1)
	require.Equal(t, 149.90, fs.added[0].Price)
	require.Equal(t, int64(11), fs.added[0].CartID)
}

func TestAddPersonalizedItemAddsFee(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{product: backend.Product{ID: 5, Price: 149.90}}
	svc := newService(t, fs.handler(t))

	_, err := svc.Add(context.Background(), 7, AddInput{
		ProductID: 5, Size: "M", Quantity: 1, PlayerName: "HAGI", PlayerNumber: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 149.90+PersonalizationFee, fs.added[0].Price)
	require.Equal(t, "HAGI", fs.added[0].PlayerName)
}

func TestAddNumberOnlyPersonalizationAddsFee(t *testing.T) {
	t.Parallel()

	fs := &fakeStore{product: backend.Product{ID: 5, Price: 100}}
	svc := newService(t, fs.handler(t))

	_, err := svc.Add(context.Background(), 7, AddInput{ProductID: 5, Size: "M", Quantity: 1, PlayerNumber: 9})
	require.NoError(t, err)
	require.Equal(t, 100+PersonalizationFee, fs.added[0].Price)
}

func TestAddRejectsUnknownSizeLocally(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid size")
	}))

	_, err := svc.Add(context.Background(), 7, AddInput{ProductID: 5, Size: "XS", Quantity: 1})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.Invalid, ae.Kind)
}

func TestAddRejectsZeroQuantity(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := svc.Add(context.Background(), 7, AddInput{ProductID: 5, Size: "M", Quantity: 0})
	require.Error(t, err)
}

func TestCount(t *testing.T) {
	t.Parallel()

	crt := backend.Cart{Items: []backend.CartItem{
		{Quantity: 2},
		{Quantity: 1},
		{Quantity: -3}, // negative quantities are ignored
	}}
	require.Equal(t, 3, Count(crt))
	require.Equal(t, 0, Count(backend.Cart{}))
}
