package test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. Whitespace anywhere in the string is ignored so
// long fixtures can be split across lines
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Concat joins byte slices into a newly allocated slice
func Concat(parts ...[]byte) []byte {
	var ret []byte
	for _, part := range parts {
		ret = append(ret, part...)
	}
	return ret
}

// Sha256 returns the SHA-256 digest of the concatenation of parts. Fixtures use
// it to compute expected digests by hand
func Sha256(parts ...[]byte) []byte {
	sum := sha256.Sum256(Concat(parts...))
	return sum[:]
}
