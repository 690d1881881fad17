package view

// ProductCard is one tile on the listing pages.
type ProductCard struct {
	ID       int64
	Name     string
	Team     string
	Price    string
	Licenced bool
	ImageURL string
}

type ProductsPage struct {
	Page
	Products []ProductCard
	Sort     string
	Query    string
}

// SizeOption is one entry of the fixed-order size selector; Available is
// false when the inventory has no stock for that size.
type SizeOption struct {
	Size      string
	Available bool
}

type ProductDetail struct {
	Page
	ID          int64
	Name        string
	Team        string
	Description string
	Price       string
	Licenced    bool
	Photos      []string
	Sizes       []SizeOption
	InWishlist  bool
	Errors      map[string]string
}

type WishlistPage struct {
	Page
	Items []WishlistLine
}

type WishlistLine struct {
	ItemID    int64
	ProductID int64
	Name      string
	Team      string
	Price     string
}
