package handler

// Field names match the original HTML form inputs (uname, email, pass) and
// are accepted both form-encoded and as JSON.

type registerForm struct {
	Username string `form:"uname" json:"uname" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"pass" json:"pass" validate:"required"`
}

type loginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"pass" json:"pass" validate:"required"`
}

// viewData is the payload handed to the HTML templates.
type viewData struct {
	Message  string
	Username string
	Email    string
}
