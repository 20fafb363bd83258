package service

import (
	"crypto/subtle"
	"fmt"

	commoncrypto "github.com/ametova/valentine-api/internal/common/crypto"
)

// CredentialVerifier checks submitted credentials against the single
// configured pair. The configured password is hashed once at construction
// so comparisons run in constant time.
type CredentialVerifier struct {
	username     string
	passwordHash string
	hasher       commoncrypto.PasswordHasher
}

func NewCredentialVerifier(username, password string, hasher commoncrypto.PasswordHasher) (*CredentialVerifier, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash configured password: %w", err)
	}

	return &CredentialVerifier{
		username:     username,
		passwordHash: hash,
		hasher:       hasher,
	}, nil
}

func (v *CredentialVerifier) Verify(username, password string) bool {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordOK := v.hasher.Compare(v.passwordHash, password) == nil
	return usernameOK && passwordOK
}
