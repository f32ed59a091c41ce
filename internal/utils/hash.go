package utils

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters used for every credential in the store. Changing them
// invalidates previously stored hashes, so they are encoded into the hash
// string and read back at verification time.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// ErrMalformedHash is returned by VerifyPassword when the stored hash string
// cannot be decoded. It signals an internal storage problem, never a simple
// password mismatch.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives an argon2id hash of the given plaintext password using
// the process-wide salt and returns it in an encoded, self-describing form:
//
//	argon2id$v=19$m=65536,t=1,p=4$<base64(hash)>
//
// The salt is configured once at startup; the plaintext is never stored or
// logged.
func HashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(key))
}

// VerifyPassword recomputes the argon2id hash of password and compares it to
// the stored encoded hash in constant time.
//
// Returns:
//   - (true, nil) when the password matches;
//   - (false, nil) when the password does not match;
//   - (false, ErrMalformedHash) when the stored hash cannot be decoded — an
//     internal failure that callers must not conflate with a wrong password.
func VerifyPassword(encodedHash, password, salt string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 4 || parts[0] != "argon2id" {
		return false, ErrMalformedHash
	}

	storedKey, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if len(storedKey) != argonKeyLen {
		return false, ErrMalformedHash
	}

	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)

	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
