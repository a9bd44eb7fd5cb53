// Package symbol maps raw ticker strings to the canonical,
// exchange-qualified form understood by the upstream provider.
package symbol

import "strings"

// Recognized Taiwanese exchange suffixes. Symbols carrying one of these
// are already canonical.
const (
	suffixTWSE = ".TW"  // Taiwan Stock Exchange
	suffixTPEx = ".TWO" // Taipei Exchange (over-the-counter)
)

// Normalize returns the canonical symbol for a raw ticker string.
//
// Rules:
//   - Whitespace is trimmed and the result uppercased.
//   - A symbol already ending in .TW or .TWO is returned unchanged.
//   - A symbol whose first character is a digit is assumed to be a
//     Taiwanese listing and gets .TW appended (e.g. "2330" -> "2330.TW").
//   - Anything else (e.g. "AAPL") is treated as a US listing and returned
//     uppercased with no suffix.
//
// Normalize is total and idempotent; it accepts the empty string.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if strings.HasSuffix(s, suffixTWSE) || strings.HasSuffix(s, suffixTPEx) {
		return s
	}
	if len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		return s + suffixTWSE
	}
	return s
}
