// Package id generates the opaque identifiers used as table keys.
package id

import "math/rand"

// Alphabet is URL-safe: ids can appear in a path segment without escaping.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

const Length = 10

// New returns a fresh random identifier. Collisions are treated as
// negligible; no uniqueness check is made against existing keys.
func New() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}
