package view

import "fmt"

// Money formats a price in the shop currency.
// E.g., 129.9 -> "129.90 lei"
func Money(amount float64) string {
	return fmt.Sprintf("%.2f lei", amount)
}

// StatusLabel maps an order status to its display label.
func StatusLabel(status string) string {
	switch status {
	case "PENDING":
		return "Pending"
	case "COMPLETED":
		return "Completed"
	case "CANCELED":
		return "Canceled"
	default:
		return status
	}
}

// RoleLabel maps a user role to its display label.
func RoleLabel(role string) string {
	switch role {
	case "ADMIN":
		return "Administrator"
	default:
		return "Customer"
	}
}
