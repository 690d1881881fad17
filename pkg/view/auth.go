package view

type LoginForm struct {
	Email string
}

type LoginPage struct {
	Page
	Form     LoginForm
	ReturnTo string
	Errors   map[string]string
	PageErr  string
}
