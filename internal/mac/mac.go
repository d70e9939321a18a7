// Package mac turns raw MAC address strings into the OUI used as a search key.
package mac

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinLength and MaxLength bound the raw input, separators included.
	MinLength = 12
	MaxLength = 17

	// OUIWidth is the number of characters in an OUI.
	OUIWidth = 6
)

var (
	ErrInvalidLength = errors.New("invalid MAC address length")
	ErrNotHex        = errors.New("OUI is not hexadecimal")
)

// separators are stripped wherever they appear.
var separators = strings.NewReplacer("-", "", ":", "", ".", "", " ", "")

// Normalize validates the raw MAC address length and returns its OUI:
// the first six characters after separators are removed, uppercased.
// The remaining characters are not checked for hex digits.
func Normalize(raw string) (string, error) {
	n := utf8.RuneCountInString(raw)
	if n < MinLength || n > MaxLength {
		return "", fmt.Errorf("%w: %q has %d characters, want %d-%d",
			ErrInvalidLength, raw, n, MinLength, MaxLength)
	}

	cleaned := clean(raw)
	if utf8.RuneCountInString(cleaned) < OUIWidth {
		return "", fmt.Errorf("%w: %q has fewer than %d characters besides separators",
			ErrInvalidLength, raw, OUIWidth)
	}

	return prefix(cleaned), nil
}

// Canonical applies the same transform as Normalize without the length
// check. Canonical of an OUI returned by Normalize is that OUI.
func Canonical(s string) string {
	return prefix(clean(s))
}

// ValidateHex reports ErrNotHex if oui contains anything but hex digits.
func ValidateHex(oui string) error {
	for _, r := range oui {
		if !isHex(r) {
			return fmt.Errorf("%w: %q", ErrNotHex, oui)
		}
	}
	return nil
}

func clean(s string) string {
	return upperASCII(separators.Replace(s))
}

// prefix returns the first OUIWidth runes of s, or all of s if shorter.
func prefix(s string) string {
	count := 0
	for i := range s {
		if count == OUIWidth {
			return s[:i]
		}
		count++
	}
	return s
}

// upperASCII folds a-z only; other runes pass through unchanged.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}
