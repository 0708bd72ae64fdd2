// Package phone normalizes raw phone input into the 10-digit identity key
// used across the registry, blacklist, group, and check-in operations.
package phone

import "strings"

// Normalize strips every non-digit character from raw and returns the
// canonical 10-digit key. An 11-digit number with a leading 1 (US country
// code) is accepted with the 1 dropped. Anything else is rejected.
//
// The second return value reports whether raw normalized successfully.
func Normalize(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) == 10:
		return digits, true
	case len(digits) == 11 && digits[0] == '1':
		return digits[1:], true
	default:
		return "", false
	}
}
