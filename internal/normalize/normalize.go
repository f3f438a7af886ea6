// Package normalize applies the light input cleanup the tokenizer expects
// before chunking: long whitespace runs collapsed to one space, and a size
// cap so pathological input is a no-op rather than an expensive rewrite.
// It never rewrites Hangul spelling — spec §5's Non-goals rule out any
// dictionary-driven word-form correction, and offsets reported by
// internal/chunk assume the caller passed the text it wants offsets into.
package normalize

import (
	"strings"
	"unicode"
)

// maxInputBytes bounds Normalize's rewrite cost; larger input is returned
// unchanged rather than scanned rune by rune.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize replaces every run of whitespace runes (a single tab or
// newline included) with a single ASCII space and trims leading/trailing
// whitespace. Empty or oversized input is returned unchanged.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	wrote := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && wrote {
			b.WriteByte(' ')
		}
		inSpace = false
		wrote = true
		b.WriteRune(r)
	}
	return b.String()
}
