package flow

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrInvalidResetLink   = errors.New("Invalid password reset link. Please request a new one.")
	ErrResetPasswordShort = errors.New("Password must be at least 6 characters long")
)

const minPasswordLength = 6

// ParseResetFragment extracts the provider-issued access token from the URL
// fragment of an emailed reset link. An absent token is an immediate error
// state with no further action possible.
func ParseResetFragment(fragment string) (string, error) {
	fragment = strings.TrimPrefix(fragment, "#")

	values, err := url.ParseQuery(fragment)
	if err != nil {
		return "", ErrInvalidResetLink
	}

	token := values.Get("access_token")
	if token == "" {
		return "", ErrInvalidResetLink
	}

	return token, nil
}

// ValidateNewPassword runs the client-side checks of the reset commit form.
func ValidateNewPassword(password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return ErrResetPasswordShort
	}
	return nil
}
