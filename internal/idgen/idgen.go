// Package idgen produces the opaque public identifiers assigned to users
// and addresses. Identifiers are fixed-length random alphanumeric strings.
package idgen

import (
	"crypto/rand"
	"io"
)

// Length is the number of characters in every generated identifier.
const Length = 30

const symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bytes at or above this bound are rejected so every symbol is equally likely.
const maxUnbiasedByte = 256 - 256%len(symbols)

var entropy io.Reader = rand.Reader

// Generate returns a new identifier of Length characters drawn from [a-zA-Z0-9].
// With 62^30 possible values collisions are negligible.
func Generate() string {
	result := make([]byte, 0, Length)
	buf := make([]byte, Length+Length/4)

	for len(result) < Length {
		if _, err := io.ReadFull(entropy, buf); err != nil {
			panic("idgen: entropy source failed: " + err.Error())
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			result = append(result, symbols[int(b)%len(symbols)])
			if len(result) == Length {
				break
			}
		}
	}

	return string(result)
}

// IsValid reports whether id has the shape of an identifier produced by Generate.
func IsValid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isUpper := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isUpper && !isDigit {
			return false
		}
	}

	return true
}
