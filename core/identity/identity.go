package identity

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// EmptyHash is the digest of the empty string. Absent identifiers hash to it.
var EmptyHash = Hash("")

// NoCreatorHashes are the digests of the creator IDs clients send for
// uncrafted items.
var NoCreatorHashes = map[string]struct{}{
	EmptyHash: {},
	Hash("0"): {},
}

// Hash returns the lowercase hex SHA-256 digest of raw.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// HashAPIKey returns the lowercase hex SHA-512 digest of an API key.
func HashAPIKey(raw string) string {
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// HashOptional hashes raw when it is set and returns "" otherwise.
func HashOptional(raw *string) string {
	if raw == nil {
		return ""
	}
	return Hash(*raw)
}

// IsSentinel reports whether hash is empty or the digest of a placeholder creator ID.
func IsSentinel(hash string) bool {
	if hash == "" {
		return true
	}
	_, ok := NoCreatorHashes[hash]
	return ok
}
