package service

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. Each call
// to Hash draws a fresh salt, so two hashes of the same password differ;
// CompareHashAndPassword is constant-time by construction.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
