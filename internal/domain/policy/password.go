// Package policy holds pure business rules that need no collaborators.
package policy

import "strings"

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// MaxPasswordLength is the bcrypt input limit in bytes. Every accepted character is ASCII,
// so bytes and characters coincide.
const MaxPasswordLength = 72

// PasswordSpecialChars is the full set of accepted non-alphanumeric characters.
const PasswordSpecialChars = "@#$%^&+="

// ValidPassword reports whether password satisfies the registration policy:
// MinPasswordLength to MaxPasswordLength characters drawn only from A-Z, a-z, 0-9 and
// PasswordSpecialChars, with at least one character of each of those classes.
func ValidPassword(password string) bool {
	if len(password) > MaxPasswordLength {
		return false
	}

	var count int
	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, r := range password {
		count++

		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			hasSpecial = true
		default:
			return false
		}
	}

	return count >= MinPasswordLength && hasUpper && hasLower && hasDigit && hasSpecial
}
