package identity

import (
	"crypto/md5"
	"encoding/hex"
)

// Hash returns the MD5 digest of the UTF-8 encoding of s as a 32-character
// lowercase hexadecimal string. Every node ID in the graph is derived from
// this function, and callers slice fixed prefixes (8 and 4 characters) from
// the result, so the algorithm and formatting must stay stable across
// releases. Changing it would shift every ID in existing graphs.
func Hash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
