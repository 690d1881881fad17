package catalog

import "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"

// AllSizes is the fixed display order of the size selector.
var AllSizes = []string{"S", "M", "L", "XL", "XXL"}

type SizeAvailability struct {
	Size      string
	Quantity  int
	Available bool
}

// AvailableSizes returns every size in fixed order, flagged available only
// when the inventory holds stock for it. Sizes the inventory never mentions
// stay disabled.
func AvailableSizes(inv []backend.InventoryItem) []SizeAvailability {
	stock := make(map[string]int, len(inv))
	for _, it := range inv {
		stock[it.Size] += it.Quantity
	}

	out := make([]SizeAvailability, 0, len(AllSizes))
	for _, size := range AllSizes {
		out = append(out, SizeAvailability{
			Size:      size,
			Quantity:  stock[size],
			Available: stock[size] > 0,
		})
	}
	return out
}

// ValidSize reports whether size is one of the known jersey sizes.
func ValidSize(size string) bool {
	for _, s := range AllSizes {
		if s == size {
			return true
		}
	}
	return false
}
