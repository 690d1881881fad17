package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

func TestAvailableSizesFixedOrder(t *testing.T) {
	t.Parallel()

	// inventory reported out of order and with gaps
	inv := []backend.InventoryItem{
		{Size: "L", Quantity: 3},
		{Size: "S", Quantity: 1},
	}

	out := AvailableSizes(inv)
	require.Len(t, out, 5)

	sizes := make([]string, 0, len(out))
	for _, s := range out {
		sizes = append(sizes, s.Size)
	}
	require.Equal(t, []string{"S", "M", "L", "XL", "XXL"}, sizes)

	require.True(t, out[0].Available)  // S
	require.False(t, out[1].Available) // M
	require.True(t, out[2].Available)  // L
	require.False(t, out[3].Available) // XL
	require.False(t, out[4].Available) // XXL
}

func TestAvailableSizesZeroStockDisabled(t *testing.T) {
	t.Parallel()

	inv := []backend.InventoryItem{{Size: "M", Quantity: 0}}
	out := AvailableSizes(inv)
	require.False(t, out[1].Available)
}

func TestAvailableSizesSumsDuplicates(t *testing.T) {
	t.Parallel()

	inv := []backend.InventoryItem{
		{Size: "M", Quantity: 0},
		{Size: "M", Quantity: 2},
	}
	out := AvailableSizes(inv)
	require.True(t, out[1].Available)
	require.Equal(t, 2, out[1].Quantity)
}

func TestValidSize(t *testing.T) {
	t.Parallel()

	for _, s := range AllSizes {
		require.True(t, ValidSize(s))
	}
	require.False(t, ValidSize("XS"))
	require.False(t, ValidSize("m"))
	require.False(t, ValidSize(""))
}
