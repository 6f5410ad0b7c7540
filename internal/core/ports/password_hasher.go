package ports

// PasswordHasher performs one-way, salted password hashing. Hash output
// differs between calls for the same input (per-call salt); Verify compares
// in constant time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
