package domain

import (
	"strings"
	"time"
	"unicode"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account in the identity system. PasswordHash never leaves
// the process: the json tag is a backstop on top of the explicit response
// mapping in the API layer.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	Age          *int      `json:"age" bson:"age"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// NormalizeEmail applies the canonical email form used for storage and
// lookups. Emails compare case-insensitively; passwords never do.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the local@domain shape: exactly one '@', non-empty
// local and domain parts, and no empty dot-segments in the domain.
func ValidateEmail(email string) error {
	if strings.Count(email, "@") != 1 {
		return ErrInvalidInput
	}
	at := strings.Index(email, "@")
	local, dom := email[:at], email[at+1:]
	if local == "" || dom == "" {
		return ErrInvalidInput
	}
	if strings.HasPrefix(dom, ".") || strings.HasSuffix(dom, ".") || strings.Contains(dom, "..") {
		return ErrInvalidInput
	}
	return nil
}

const minPasswordLength = 8

// commonPasswords is a small denylist of values rejected outright regardless
// of composition.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"12345678":   {},
	"123456789":  {},
	"qwertyuiop": {},
	"letmein123": {},
}

// ValidatePassword enforces the registration password policy: at least
// minPasswordLength bytes, not a known common value, and mixed composition
// (purely numeric and purely alphabetic values are rejected).
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrInvalidInput
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		return ErrInvalidInput
	}
	hasLetter, hasOther := false, false
	for _, r := range password {
		if unicode.IsLetter(r) {
			hasLetter = true
		} else {
			hasOther = true
		}
	}
	if !hasLetter || !hasOther {
		return ErrInvalidInput
	}
	return nil
}
