// Package crypto provides password hashing for account credentials.
//
// Hashing uses Argon2id via golang.org/x/crypto/argon2 with
// OWASP-recommended parameters. The encoded hash is self-describing so
// verification never needs side-channel configuration beyond the stored
// string itself.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// params tunes the Argon2id cost. Values follow OWASP's 2024 guidance:
// 64 MiB memory, 1 iteration, 4 lanes, 32-byte output.
type params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

var defaultParams = params{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
	saltLen: 16,
}

// dummyHash is verified against whenever the caller needs to spend
// roughly the same CPU time on a nonexistent account as on a real one,
// so that login timing does not reveal whether a username exists.
var dummyHash = mustHash("copypasta-dummy-password-for-timing-parity")

// HashPassword returns a self-describing Argon2id-encoded hash of
// password, in the form:
//
//	argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt-b64>$<hash-b64>
func HashPassword(password string) (string, error) {
	return hashWithParams(password, defaultParams)
}

func hashWithParams(password string, p params) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	encoded := fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	return encoded, nil
}

func mustHash(password string) string {
	encoded, err := hashWithParams(password, defaultParams)
	if err != nil {
		panic(err)
	}
	return encoded
}

// VerifyPassword reports whether password matches the Argon2id-encoded
// hash produced by HashPassword, decoding the parameters and salt from the
// hash itself rather than from the caller's current defaults.
func VerifyPassword(encodedHash, password string) (bool, error) {
	p, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// VerifyDummyPassword spends the same CPU time as VerifyPassword against a
// real account, without revealing anything about real account state. Used
// by credential verification when the supplied username does not exist.
func VerifyDummyPassword(password string) {
	_, _ = VerifyPassword(dummyHash, password)
}

var errMalformedHash = errors.New("malformed password hash")

func decodeHash(encoded string) (params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return params{}, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil {
		return params{}, nil, nil, errMalformedHash
	}

	var p params
	var threads int
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.memory, &p.time, &threads); err != nil {
		return params{}, nil, nil, errMalformedHash
	}
	p.threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return params{}, nil, nil, fmt.Errorf("%w: decoding salt: %v", errMalformedHash, err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params{}, nil, nil, fmt.Errorf("%w: decoding hash: %v", errMalformedHash, err)
	}

	return p, salt, hash, nil
}
