package bytealg

import "unicode/utf8"

// CommonPrefix returns the length in bytes of the longest common prefix of a
// and b that ends on a UTF-8 sequence boundary in both strings.
func CommonPrefix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	// Compare 8 bytes at a time while both strings have them.
	for i+8 <= n && a[i:i+8] == b[i:i+8] {
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	for i > 0 && (midRune(a, i) || midRune(b, i)) {
		i--
	}
	return i
}

// CommonSuffix returns the length in bytes of the longest common suffix of a
// and b that starts on a UTF-8 sequence boundary in both strings.
func CommonSuffix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i+8 <= n && a[len(a)-i-8:len(a)-i] == b[len(b)-i-8:len(b)-i] {
		i += 8
	}
	for i < n && a[len(a)-i-1] == b[len(b)-i-1] {
		i++
	}
	for i > 0 && (!utf8.RuneStart(a[len(a)-i]) || !utf8.RuneStart(b[len(b)-i])) {
		i--
	}
	return i
}

// midRune reports whether offset i falls inside a multi-byte sequence of s.
func midRune(s string, i int) bool {
	return i < len(s) && !utf8.RuneStart(s[i])
}
