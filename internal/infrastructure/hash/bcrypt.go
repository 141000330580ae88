// Package hash provides credential hashing backed by bcrypt.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with a configurable cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. Costs outside the
// bcrypt range fall back to the library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of text.
func (b *Bcrypt) Hash(text string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(text), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether text matches the stored hash.
func (b *Bcrypt) Verify(text, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(text)) == nil
}
