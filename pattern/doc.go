// Package pattern provides the character-to-bitmask tables used by
// bit-parallel string matching algorithms such as Myers' edit distance.
//
// A pattern is inserted once and then queried once per character of each
// text it is matched against. The mask returned for a character has bit i set
// when the pattern holds that character at position i. Characters that do
// not occur in the pattern map to 0.
//
// PatternVector covers patterns of up to 64 characters. BlockedPatternVector
// splits longer patterns into 64-character blocks. Both keep codes 0-255 in a
// directly indexed table and fall back to a small fixed-size hash map for
// wider codes.
//
// Misuse, such as an out-of-range block index or a bit position outside
// [0, 64), panics. Neither type is safe for concurrent mutation; a fully
// built vector may be read from any number of goroutines.
package pattern
