package products

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

func newService(t *testing.T, items []backend.Product) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(items)
	}))
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(backend.New(srv.URL, "session", 2*time.Second, log))
}

func ids(items []backend.Product) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestSortKeys(t *testing.T) {
	t.Parallel()

	base := []backend.Product{
		{ID: 1, Name: "Steaua Home", Price: 120},
		{ID: 2, Name: "dinamo Away", Price: 99.5},
		{ID: 3, Name: "Rapid Third", Price: 120},
	}

	cases := []struct {
		key  string
		want []int64
	}{
		{SortNameAsc, []int64{2, 3, 1}},
		{SortNameDesc, []int64{1, 3, 2}},
		{SortPriceAsc, []int64{2, 1, 3}},
		{SortPriceDesc, []int64{1, 3, 2}},
		{"", []int64{2, 3, 1}},      // default is name ascending
		{"bogus", []int64{2, 3, 1}}, // unknown keys fall back
	}

	for _, tc := range cases {
		items := make([]backend.Product, len(base))
		copy(items, base)
		Sort(items, tc.key)
		require.Equal(t, tc.want, ids(items), "key %q", tc.key)
	}
}

func TestSortNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	items := []backend.Product{
		{ID: 1, Name: "zimbru"},
		{ID: 2, Name: "Arges"},
	}
	Sort(items, SortNameAsc)
	require.Equal(t, []int64{2, 1}, ids(items))
}

func TestSearchMatchesNameOrTeam(t *testing.T) {
	t.Parallel()

	svc := newService(t, []backend.Product{
		{ID: 1, Name: "Home Shirt", Team: "FCSB"},
		{ID: 2, Name: "Away Shirt", Team: "CFR Cluj"},
		{ID: 3, Name: "FCSB Scarf", Team: "FCSB"},
	})

	out, err := svc.Search(context.Background(), "fcsb")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1}, ids(out))
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	svc := newService(t, []backend.Product{
		{ID: 1, Name: "B"},
		{ID: 2, Name: "A"},
	})

	out, err := svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	require.Equal(t, []int64{2, 1}, ids(out))
}
