package flow

import "errors"

var ErrLoginFieldsRequired = errors.New("Please fill in all fields")

type LoginForm struct {
	Email    string
	Password string
}

// Validate short-circuits before any network call when either field is empty.
func (f *LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return ErrLoginFieldsRequired
	}
	return nil
}

// LoginOutcome is the structured result of a login attempt, so the caller can
// route an unconfirmed account back to verification instead of showing a
// generic error.
type LoginOutcome struct {
	Err                       string
	RequiresEmailVerification bool
}
