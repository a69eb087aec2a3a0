package out

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	accountout "fieldreport/internal/modules/account/port/out"
)

const (
	argonMemory      = 19 * 1024
	argonIterations  = 2
	argonParallelism = 1
	argonKeyLength   = 32
	argonSaltLength  = 16
	argonPrefix      = "$argon2id$"
)

// Argon2Hasher stores credentials as PHC-encoded Argon2id strings. Anything
// else found in the state blob is a plaintext credential from an older
// backup and is compared directly, then flagged for rehash.
type Argon2Hasher struct{}

func NewArgon2Hasher() accountout.PasswordHasher {
	return Argon2Hasher{}
}

func (Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)
	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func (Argon2Hasher) Verify(password, encoded string) (bool, bool, error) {
	if !strings.HasPrefix(encoded, argonPrefix) {
		ok := subtle.ConstantTimeCompare([]byte(password), []byte(encoded)) == 1
		return ok, ok, nil
	}

	// $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[2] != "v=19" {
		return false, false, fmt.Errorf("invalid hash format")
	}
	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return false, false, fmt.Errorf("parse hash parameters: %w", err)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, false, fmt.Errorf("decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, false, fmt.Errorf("decode hash: %w", err)
	}
	computed := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1, false, nil
}
