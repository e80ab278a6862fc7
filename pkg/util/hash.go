package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashedIPLength is the number of hex characters kept from the IP digest
const HashedIPLength = 16

// HashIP returns a truncated one-way SHA-256 digest of salt+ip.
// The clear IP never leaves the enrichment step.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(salt + ip))
	return hex.EncodeToString(sum[:])[:HashedIPLength]
}
