// Package version provides a tolerant, totally ordered representation of
// package version strings as they appear in NuGet feeds.
//
// Parsing never fails. Anything that is not a decimal number degrades to a
// lexical comparison, so feed data cannot abort a query.
package version

import (
	"strings"
)

// Key is the comparable form of a version string
type Key struct {
	raw        string
	release    []segment
	prerelease []string
}

// segment is one dot-separated release part, e.g. "10" or "2rc"
type segment struct {
	num    string // decimal digits, leading zeros stripped, "0" when absent
	suffix string // whatever follows the digits
}

// Parse converts a raw version string into a Key
func Parse(raw string) Key {
	k := Key{raw: raw}

	s := strings.TrimSpace(raw)
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') && isDigit(s[1]) {
		s = s[1:]
	}

	// Build metadata never participates in ordering
	if idx := strings.IndexByte(s, '+'); idx >= 0 {
		s = s[:idx]
	}

	release, pre, hasPre := strings.Cut(s, "-")
	if hasPre {
		k.prerelease = strings.Split(pre, ".")
	}

	if release != "" {
		for _, part := range strings.Split(release, ".") {
			k.release = append(k.release, parseSegment(part))
		}
	}

	// 1.0 and 1.0.0 are the same version
	for len(k.release) > 0 {
		last := k.release[len(k.release)-1]
		if last.num != "0" || last.suffix != "" {
			break
		}
		k.release = k.release[:len(k.release)-1]
	}

	return k
}

func parseSegment(part string) segment {
	i := 0
	for i < len(part) && isDigit(part[i]) {
		i++
	}
	return segment{num: normalizeDigits(part[:i]), suffix: part[i:]}
}

// String returns the raw string the key was parsed from
func (k Key) String() string {
	return k.raw
}

// IsPrerelease reports whether the version carries a prerelease label
func (k Key) IsPrerelease() bool {
	return len(k.prerelease) > 0
}

// Compare returns -1, 0 or +1 when k is less than, equal to or greater than other
func (k Key) Compare(other Key) int {
	return Compare(k, other)
}

// Less reports whether k sorts before other
func (k Key) Less(other Key) bool {
	return Compare(k, other) < 0
}

// Equal reports whether k and other denote the same version.
// Keys parsed from differently formatted strings can be equal.
func (k Key) Equal(other Key) bool {
	return Compare(k, other) == 0
}

// Compare orders two keys. Release segments are compared first, missing
// segments counting as zero. On equal releases a version without a
// prerelease label sorts after one with a label.
func Compare(a, b Key) int {
	n := len(a.release)
	if len(b.release) > n {
		n = len(b.release)
	}
	for i := 0; i < n; i++ {
		if c := compareSegment(segmentAt(a.release, i), segmentAt(b.release, i)); c != 0 {
			return c
		}
	}

	switch {
	case len(a.prerelease) == 0 && len(b.prerelease) == 0:
		return 0
	case len(a.prerelease) == 0:
		return 1
	case len(b.prerelease) == 0:
		return -1
	}

	for i := 0; i < len(a.prerelease) && i < len(b.prerelease); i++ {
		if c := compareIdentifier(a.prerelease[i], b.prerelease[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a.prerelease), len(b.prerelease))
}

func segmentAt(segs []segment, i int) segment {
	if i < len(segs) {
		return segs[i]
	}
	return segment{num: "0"}
}

func compareSegment(a, b segment) int {
	if c := compareDigits(a.num, b.num); c != 0 {
		return c
	}
	return strings.Compare(a.suffix, b.suffix)
}

// compareIdentifier follows semver prerelease rules: numeric identifiers
// compare numerically and sort before alphanumeric ones.
func compareIdentifier(a, b string) int {
	an, bn := isNumeric(a), isNumeric(b)
	switch {
	case an && bn:
		return compareDigits(normalizeDigits(a), normalizeDigits(b))
	case an:
		return -1
	case bn:
		return 1
	}
	return strings.Compare(a, b)
}

// compareDigits compares normalized decimal strings of any length
func compareDigits(a, b string) int {
	if c := compareInt(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func normalizeDigits(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
