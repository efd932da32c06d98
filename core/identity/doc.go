// Package identity pseudonymizes identifiers before they are persisted.
//
// Character, retainer, listing and uploader identifiers are replaced by a
// lowercase hex SHA-256 digest. API keys act as credentials and use SHA-512.
// Hashing is one-way and deterministic, so hashed values stay joinable across
// uploads while the original identifiers are never stored.
//
// # Sentinels
//
// Some clients upload "0" or an empty string when a listing has no creator.
// NoCreatorHashes holds the digests of those placeholders so that read paths
// can tell a crafted item from a placeholder without ever seeing the raw ID.
package identity
