package view

// Page carries what every rendered page needs: the one-shot notification, the
// session user (nil when anonymous) and the cart badge count.
type Page struct {
	Title     string
	Flash     *Flash
	User      *SessionUser
	CartCount int
}

type SessionUser struct {
	ID    int64
	Email string
	Role  string
}

func (p Page) Authed() bool { return p.User != nil }

func (p Page) IsAdmin() bool { return p.User != nil && p.User.Role == "ADMIN" }
