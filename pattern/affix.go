package pattern

import "github.com/mhr3/bitmatch/internal/bytealg"

func CommonPrefixLen[C comparable](a, b []C) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func CommonSuffixLen[C comparable](a, b []C) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// TrimCommonAffix strips the common prefix and then the common suffix of a
// and b. Characters in a shared affix never change an edit distance, so
// distance algorithms run on the trimmed remainder.
func TrimCommonAffix[C comparable](a, b []C) (a2, b2 []C, prefix, suffix int) {
	prefix = CommonPrefixLen(a, b)
	a, b = a[prefix:], b[prefix:]
	suffix = CommonSuffixLen(a, b)
	return a[:len(a)-suffix], b[:len(b)-suffix], prefix, suffix
}

// TrimCommonAffixString is TrimCommonAffix for strings. The affix lengths are
// in bytes and never split a UTF-8 sequence.
func TrimCommonAffixString(a, b string) (a2, b2 string, prefix, suffix int) {
	prefix = bytealg.CommonPrefix(a, b)
	a, b = a[prefix:], b[prefix:]
	suffix = bytealg.CommonSuffix(a, b)
	return a[:len(a)-suffix], b[:len(b)-suffix], prefix, suffix
}

// ResultCutoff returns score if it reaches cutoff and 0 otherwise.
func ResultCutoff(score, cutoff float64) float64 {
	if score >= cutoff {
		return score
	}
	return 0
}
