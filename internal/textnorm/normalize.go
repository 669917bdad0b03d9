package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for case-insensitive comparison: NFC
// composition, lowercase folding, non-word characters replaced with spaces,
// whitespace runs collapsed to a single space, and the result trimmed.
func Normalize(text string) string {
	return normalize(text, false)
}

// NormalizeKeepCase applies the same pipeline as Normalize without the case
// fold. Used where letter case carries signal for downstream consumers.
func NormalizeKeepCase(text string) string {
	return normalize(text, true)
}

func normalize(text string, keepCase bool) string {
	cleaned := norm.NFC.String(text)
	if !keepCase {
		cleaned = strings.ToLower(cleaned)
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	prevSpace := false
	for _, r := range cleaned {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		default:
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// StripAccents removes combining diacritical marks after NFD decomposition.
func StripAccents(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Batch splits items into consecutive groups of at most size elements. The
// final group may be shorter. A non-positive size yields a single group.
func Batch(items []string, size int) [][]string {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		group := make([]string, len(items))
		copy(group, items)
		return [][]string{group}
	}
	batches := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		group := make([]string, end-start)
		copy(group, items[start:end])
		batches = append(batches, group)
	}
	return batches
}
