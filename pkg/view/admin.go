package view

type AdminUsersPage struct {
	Page
	Users  []AdminUserRow
	Editing *AdminUserRow
	Errors map[string]string
}

type AdminUserRow struct {
	ID    int64
	Email string
	Role  string
}

type AdminProductsPage struct {
	Page
	Products []AdminProductRow
	Editing  *AdminProductRow
	Errors   map[string]string
}

type AdminProductRow struct {
	ID          int64
	Name        string
	Description string
	Team        string
	Price       string
	PriceValue  float64
	Licenced    bool
}

type AdminCouponsPage struct {
	Page
	Coupons []AdminCouponRow
	Editing *AdminCouponRow
	Errors  map[string]string
}

type AdminCouponRow struct {
	ID         int64
	Code       string
	Percentage int
	Active     bool
}

type AdminOrdersPage struct {
	Page
	Orders      []OrderCard
	PendingOnly bool
}

type AdminOrderDetailPage struct {
	Page
	Order  OrderCard
	City       string
	Street     string
	Number     string
	PostalCode string
	CanDecide  bool // true while the order is still pending
	Errors     map[string]string
}

type AdminPhotosPage struct {
	Page
	Products  []AdminProductRow
	ProductID int64
	Photos    []AdminPhotoRow
	Errors    map[string]string
}

type AdminPhotoRow struct {
	ID           int64
	PhotoURL     string
	IsPrimary    bool
	DisplayOrder int
}

type AdminStockPage struct {
	Page
	Products  []AdminProductRow
	ProductID int64
	Rows      []AdminStockRow
}

type AdminStockRow struct {
	Size     string
	Quantity int
	InStock  bool
}

type AdminDashboardPage struct {
	Page
	UserCount    int
	ProductCount int
	OrderCount   int
	PendingCount int
}
