package backend

// DTOs mirrored from the store API. The backend owns every lifecycle; these
// are transient copies held only for the duration of a request.

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Team        string  `json:"team"`
	Licenced    bool    `json:"licenced"`
}

type ProductPhoto struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	PhotoURL     string `json:"photoUrl"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder"`
}

type Discount struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discountPercentage"`
	Active             bool   `json:"active"`
}

type DiscountValidation struct {
	Valid              bool  `json:"valid"`
	DiscountID         int64 `json:"discountId"`
	DiscountPercentage int   `json:"discountPercentage"`
}

const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderCanceled  = "CANCELED"
)

type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status"`
	City       string      `json:"city"`
	Street     string      `json:"street"`
	Number     string      `json:"number"`
	PostalCode string      `json:"postalCode"`
	OrderItems []OrderItem `json:"orderItems,omitempty"`
}

type OrderItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Size         string  `json:"size"`
	PlayerName   string  `json:"playerName,omitempty"`
	PlayerNumber int     `json:"playerNumber,omitempty"`
}

type Cart struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	PlayerName   string  `json:"playerName,omitempty"`
	PlayerNumber int     `json:"playerNumber,omitempty"`
}

type WishlistItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

type InventoryItem struct {
	ProductID int64  `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}
