package timecache

import (
	"fmt"
	"strings"
)

const (
	// Placeholder replaces the millisecond specifier in a normalized pattern.
	// It survives formatting as is, so callers can find it in the output and patch in the digits.
	Placeholder = '#'

	millisLetter = 'S'
	quote        = '\''
)

// TidyPattern replaces the millisecond specifier S outside of quoted literals with Placeholder.
//
// Formatted values of a tidy pattern only depend on the whole second, which makes them cacheable.
// Unterminated quotes are passed through and reported later by CompileLayout.
func TidyPattern(pattern string) string {
	if strings.IndexByte(pattern, millisLetter) == -1 {
		return pattern
	}

	var (
		escape bool
		b      strings.Builder
	)

	b.Grow(len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if escape || c != millisLetter {
			b.WriteByte(c)
		} else {
			b.WriteByte(Placeholder)
		}

		if c == quote {
			escape = !escape
		}
	}

	return b.String()
}

// normalizePattern validates raw pattern and returns its tidy form.
func normalizePattern(pattern string) (string, error) {
	if i := strings.IndexByte(pattern, Placeholder); i != -1 {
		return "", fmt.Errorf("%w: %q at position %d", ErrPlaceholderInPattern, pattern, i)
	}

	return TidyPattern(pattern), nil
}
