package view

type OrderItemRow struct {
	Name     string
	Size     string
	Quantity int
	Player   string
	Price    string
}

type OrderCard struct {
	ID      int64
	Status  string
	Label   string
	Total   string
	Address string
	Items   []OrderItemRow
}

type AccountOrdersPage struct {
	Page
	Orders []OrderCard
}

type OrderConfirmationPage struct {
	Page
	Order OrderCard
}
