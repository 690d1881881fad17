package view

// CartLine is one row of the cart or checkout summary.
type CartLine struct {
	Name     string
	Size     string
	Quantity int
	Player   string // "NAME 10" when the jersey is personalized
	Unit     string
	Line     string
}

type CartPage struct {
	Page
	Items    []CartLine
	Count    int
	Subtotal string
}

// CheckoutForm holds the address and coupon inputs as submitted, so a failed
// validation re-renders with the user's values intact.
type CheckoutForm struct {
	City       string
	Street     string
	Number     string
	PostalCode string
	CouponCode string
}

// CheckoutSummary carries the client-computed totals. These are display
// values only; the backend recomputes the authoritative total on creation.
type CheckoutSummary struct {
	Lines         []CartLine
	Subtotal      string
	Discount      string
	Total         string
	DiscountPct   int
	CouponApplied bool
}

type CheckoutPage struct {
	Page
	Form      CheckoutForm
	Summary   CheckoutSummary
	Errors    map[string]string
	CouponMsg string
	PageErr   string
}
