// Package natsort orders human-entered labels like "A1", "A10" or "Row 2"
// the way people expect: embedded digit runs compare numerically, text runs
// compare case-insensitively.
package natsort

import (
	"sort"
	"strings"
)

// Compare returns a negative, zero or positive value ordering a before,
// equal to, or after b. Labels are split into maximal runs of digits and
// non-digits and compared run by run; when one label is a strict prefix of
// the other's runs, the shorter sorts first. The result is a total order,
// safe for sort.Slice.
func Compare(a, b string) int {
	aParts := split(a)
	bParts := split(b)

	n := len(aParts)
	if len(bParts) < n {
		n = len(bParts)
	}

	for i := 0; i < n; i++ {
		ap, bp := aParts[i], bParts[i]

		if isDigits(ap) && isDigits(bp) {
			if c := compareNumeric(ap, bp); c != 0 {
				return c
			}
			continue
		}

		as := strings.ToLower(ap)
		bs := strings.ToLower(bp)
		if as != bs {
			if as < bs {
				return -1
			}
			return 1
		}
	}

	return len(aParts) - len(bParts)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts ss in place using natural order. The sort is stable so
// labels that compare equal keep their input order.
func Strings(ss []string) {
	sort.SliceStable(ss, func(i, j int) bool {
		return Compare(ss[i], ss[j]) < 0
	})
}

// split breaks s into maximal runs of digits and non-digits.
func split(s string) []string {
	if s == "" {
		return nil
	}

	var parts []string
	start := 0
	digits := isDigit(rune(s[0]))

	for i, r := range s {
		d := isDigit(r)
		if d != digits {
			parts = append(parts, s[start:i])
			start = i
			digits = d
		}
	}
	parts = append(parts, s[start:])

	return parts
}

// compareNumeric compares two digit runs by value without parsing, so
// arbitrarily long runs cannot overflow. Leading zeros are ignored for
// magnitude; a longer trimmed run is always the bigger number.
func compareNumeric(a, b string) int {
	at := strings.TrimLeft(a, "0")
	bt := strings.TrimLeft(b, "0")

	if len(at) != len(bt) {
		return len(at) - len(bt)
	}
	return strings.Compare(at, bt)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return s != ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
