package discounts

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

func newService(t *testing.T, h http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(backend.New(srv.URL, "session", 2*time.Second, log))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.Empty(t, Validate(backend.DiscountInput{Code: "SUMMER", DiscountPercentage: 0}))
	require.Empty(t, Validate(backend.DiscountInput{Code: "SUMMER", DiscountPercentage: 100}))

	errs := Validate(backend.DiscountInput{Code: "  ", DiscountPercentage: 101})
	require.Contains(t, errs, "code")
	require.Contains(t, errs, "percentage")

	errs = Validate(backend.DiscountInput{Code: "X", DiscountPercentage: -1})
	require.Contains(t, errs, "percentage")
}

func TestSaveRejectsOutOfRangeWithoutRequest(t *testing.T) {
	t.Parallel()

	called := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := svc.Save(context.Background(), 0, backend.DiscountInput{Code: "X", DiscountPercentage: 150})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.Invalid, ae.Kind)
	require.False(t, called, "invalid input must not reach the API")
}

func TestSaveUppercasesCode(t *testing.T) {
	t.Parallel()

	var got backend.DiscountInput
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(backend.Discount{ID: 1, Code: got.Code})
	}))

	_, err := svc.Save(context.Background(), 0, backend.DiscountInput{Code: " summer10 ", DiscountPercentage: 10, Active: true})
	require.NoError(t, err)
	require.Equal(t, "SUMMER10", got.Code)
}

func TestSaveUpdatesById(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/discount/4", r.URL.Path)
		_ = json.NewEncoder(w).Encode(backend.Discount{ID: 4})
	}))

	_, err := svc.Save(context.Background(), 4, backend.DiscountInput{Code: "WINTER", DiscountPercentage: 25})
	require.NoError(t, err)
}

func TestCheckTrimsCode(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "WINTER", r.URL.Query().Get("code"))
		_ = json.NewEncoder(w).Encode(backend.DiscountValidation{Valid: true, DiscountPercentage: 25})
	}))

	v, err := svc.Check(context.Background(), " WINTER ")
	require.NoError(t, err)
	require.True(t, v.Valid)
}

func TestListSortsById(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]backend.Discount{{ID: 3}, {ID: 1}, {ID: 2}})
	}))

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(3), out[2].ID)
}
