package util

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// FingerprintIP returns the visitor fingerprint of a client IP: hex SHA-256 of salt+ip.
// An empty ip yields an empty fingerprint.
func FingerprintIP(ip, salt string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(salt + ip))
	return hex.EncodeToString(sum[:])
}
