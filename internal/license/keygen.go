// Package license generates license keys for provisioned product licenses.
package license

import (
	"crypto/rand"
	"fmt"
)

// KeyLength is the fixed length of generated license keys.
const KeyLength = 24

// Alphabet is the character set keys are drawn from. Easily-confused
// characters (0/O, 1/I/l) are excluded so keys survive being read aloud or
// retyped from an email.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789abcdefghijkmnopqrstuvwxyz"

// NewKey returns a fresh KeyLength-character key drawn from Alphabet using
// crypto/rand. It fails only when the platform's random source does.
func NewKey() (string, error) {
	buf := make([]byte, KeyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("license: read random bytes: %w", err)
	}
	out := make([]byte, KeyLength)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}
