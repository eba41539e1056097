package service

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier implements PasswordVerifier with bcrypt
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier hashing at cost (bcrypt.DefaultCost when out of range)
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash hashes a plain password
func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash
func (v *BcryptVerifier) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
