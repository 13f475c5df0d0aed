// Package identity maps account emails to record keys and talks to the
// upstream identity provider that owns login credentials.
package identity

import (
	"errors"
	"net/mail"
	"strings"
)

// Separators substituted into record keys. Neither may appear in an accepted email.
const (
	atSeparator  = ":"
	dotSeparator = ","
)

// ErrInvalidEmail is returned for addresses that cannot be mapped to a record key.
var ErrInvalidEmail = errors.New("invalid email")

// CleanEmail trims surrounding whitespace and validates the address.
// Case is preserved.
func CleanEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, atSeparator+dotSeparator+`" `) {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}

	return email, nil
}

// Normalize returns the record key for email. Every '@' and every '.' is
// replaced. All components derive keys through this function.
func Normalize(email string) (string, error) {
	cleaned, err := CleanEmail(email)
	if err != nil {
		return "", err
	}

	key := strings.ReplaceAll(cleaned, "@", atSeparator)
	return strings.ReplaceAll(key, ".", dotSeparator), nil
}

// EmailFromKey inverts Normalize.
func EmailFromKey(key string) string {
	email := strings.ReplaceAll(key, dotSeparator, ".")
	return strings.ReplaceAll(email, atSeparator, "@")
}

// LocalPart returns the part of email before '@'.
func LocalPart(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
