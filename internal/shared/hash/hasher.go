package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

type Hasher interface {
	Hash(plaintext string) (string, error)
}

// New selects a digest scheme by name. sha256 is the default because the
// existing server compares sha256 hex digests at login; bcrypt is available
// for stores that never authenticate through it.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hash scheme %q", scheme)
	}
}

type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
