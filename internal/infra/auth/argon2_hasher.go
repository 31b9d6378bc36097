// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"markd/config"
	"markd/internal/domain/service"
)

const (
	argon2SaltLen = 16
	argon2KeyLen  = 32

	defaultArgon2MemoryKiB   = 64 * 1024
	defaultArgon2Iterations  = 1
	defaultArgon2Parallelism = 4
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id, a memory-hard KDF resistant to offline brute force.
type argon2Hasher struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher. Parameters come from
// config when present, otherwise the RFC 9106 low-memory profile defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		memoryKiB:   defaultArgon2MemoryKiB,
		iterations:  defaultArgon2Iterations,
		parallelism: defaultArgon2Parallelism,
	}

	if cfg != nil && cfg.Auth != nil && cfg.Auth.Argon2 != nil {
		params := cfg.Auth.Argon2
		if params.MemoryKiB > 0 {
			hasher.memoryKiB = params.MemoryKiB
		}
		if params.Iterations > 0 {
			hasher.iterations = params.Iterations
		}
		if params.Parallelism > 0 {
			hasher.parallelism = params.Parallelism
		}
	}

	return hasher
}

// Hash generates a salted argon2id hash in PHC string format:
// $argon2id$v=19$m=...,t=...,p=...$<b64 salt>$<b64 key>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memoryKiB, h.parallelism, argon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with a stored argon2id hash.
// The comparison is constant-time, and a malformed stored hash yields false
// rather than a distinguishable error.
func (h *argon2Hasher) Check(password, hash string) bool {
	memoryKiB, iterations, parallelism, salt, key, ok := parseArgon2Hash(hash)
	if !ok {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memoryKiB, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// parseArgon2Hash decodes a PHC-formatted argon2id string back into its
// parameters. Verification must use the parameters recorded in the hash, not
// the hasher's current configuration, so old hashes stay checkable.
func parseArgon2Hash(hash string) (memoryKiB, iterations uint32, parallelism uint8, salt, key []byte, ok bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	var memory, times uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &times, &threads); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memory == 0 || times == 0 || threads == 0 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, times, threads, salt, key, true
}
