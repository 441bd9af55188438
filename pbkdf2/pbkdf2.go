// Package pbkdf2 derives keys with PBKDF2 over HMAC-SHA256, the pseudo random function scrypt is built on.
package pbkdf2

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key derives keyLen bytes from password and salt with iter iterations
func Key(password, salt []byte, iter, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iter, keyLen, sha256.New)
}
