package orders

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
)

func newService(t *testing.T, h http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(backend.New(srv.URL, "session", 2*time.Second, log))
}

func TestPendingFiltersAndSorts(t *testing.T) {
	t.Parallel()

	in := []backend.Order{
		{ID: 5, Status: backend.OrderPending},
		{ID: 2, Status: backend.OrderCompleted},
		{ID: 1, Status: backend.OrderPending},
		{ID: 4, Status: backend.OrderCanceled},
	}
	out := Pending(in)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(5), out[1].ID)
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	require.True(t, CanTransition(backend.OrderPending, backend.OrderCompleted))
	require.True(t, CanTransition(backend.OrderPending, backend.OrderCanceled))
	require.False(t, CanTransition(backend.OrderCompleted, backend.OrderCanceled))
	require.False(t, CanTransition(backend.OrderCanceled, backend.OrderPending))
	require.False(t, CanTransition(backend.OrderPending, backend.OrderPending))
	require.False(t, CanTransition(backend.OrderPending, "SHIPPED"))
}

func TestUpdateStatusGuardsDecidedOrders(t *testing.T) {
	t.Parallel()

	putSeen := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(backend.Order{ID: 3, Status: backend.OrderCompleted})
		case http.MethodPut:
			putSeen = true
		}
	}))

	_, err := svc.UpdateStatus(context.Background(), 3, backend.OrderCanceled)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.False(t, putSeen, "a decided order must never be written")
}

func TestUpdateStatusCompletesPendingOrder(t *testing.T) {
	t.Parallel()

	var put backend.OrderUpdate
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(backend.Order{ID: 3, Status: backend.OrderPending})
		case http.MethodPut:
			require.Equal(t, "/api/orders/3", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			_ = json.NewEncoder(w).Encode(backend.Order{ID: 3, Status: backend.OrderCompleted})
		}
	}))

	o, err := svc.UpdateStatus(context.Background(), 3, backend.OrderCompleted)
	require.NoError(t, err)
	require.Equal(t, backend.OrderCompleted, o.Status)
	require.Equal(t, backend.OrderCompleted, put.Status)
}

func TestUpdateAddressClearsStatus(t *testing.T) {
	t.Parallel()

	var put map[string]any
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
		_ = json.NewEncoder(w).Encode(backend.Order{ID: 3})
	}))

	_, err := svc.UpdateAddress(context.Background(), 3, backend.OrderUpdate{
		Status: backend.OrderCanceled, // must be dropped
		City:   "Cluj-Napoca",
	})
	require.NoError(t, err)
	require.NotContains(t, put, "status")
	require.Equal(t, "Cluj-Napoca", put["city"])
}

func TestForUserNewestFirst(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/user/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]backend.Order{{ID: 1}, {ID: 9}, {ID: 4}})
	}))

	out, err := svc.ForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, []int64{9, 4, 1}, []int64{out[0].ID, out[1].ID, out[2].ID})
}
