package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"sales/pkg/domain/model"
)

// SHA256Manager hashes passwords as the hex encoded SHA-256 digest, which is
// the format stored in existing user records.
type SHA256Manager struct{}

var _ model.PasswordManager = SHA256Manager{}

func NewSHA256Manager() SHA256Manager {
	return SHA256Manager{}
}

func (SHA256Manager) Hash(plainTextPassword string) (string, error) {
	sum := sha256.Sum256([]byte(plainTextPassword))
	return hex.EncodeToString(sum[:]), nil
}

func (m SHA256Manager) Check(hashedPassword, plainTextPassword string) (bool, error) {
	hash, err := m.Hash(plainTextPassword)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(hashedPassword)) == 1, nil
}
