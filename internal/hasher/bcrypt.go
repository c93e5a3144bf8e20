package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BCrypt produces one-way password digests. It satisfies the Hasher
// interface the user service expects.
type BCrypt struct {
	cost int
}

func NewBCrypt() *BCrypt {
	return &BCrypt{cost: bcrypt.DefaultCost}
}

func (b *BCrypt) Hash(plaintext string) (string, error) {
	const op = "hasher.bcrypt.Hash"

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(digest), nil
}
