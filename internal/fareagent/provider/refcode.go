package provider

import (
	"strings"
)

// referenceAlphabet is EASE2FLY's accepted character set, hyphens and
// slashes included. Wire compatibility; do not tidy.
const referenceAlphabet = "-/ABCDEFGHIJKLMNOPQRSTUVWXYZ-/abcdefghijklmnopqrstuvwxyz-/0123456789-/"

const referenceLength = 36

var refRand = NewSafeRand()

// NewReferenceCode generates the partner-facing reference token attached
// to every EASE2FLY booking request. Drawn from SafeRand so concurrent
// requests cannot collide through shared PRNG state.
func NewReferenceCode() string {
	var b strings.Builder
	b.Grow(referenceLength)
	for i := 0; i < referenceLength; i++ {
		b.WriteByte(referenceAlphabet[refRand.Intn(len(referenceAlphabet))])
	}
	return b.String()
}
