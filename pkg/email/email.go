package email

import "regexp"

var emailPattern = regexp.MustCompile(`^\w+([.+-]\w+)*@\w+([.-]\w+)*\.\w{2,}$`)

// IsEmailValid checks the address against a permissive RFC-ish pattern.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}
