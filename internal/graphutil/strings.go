package graphutil

import "strings"

// JoinTrimmed joins parts with sep after dropping the last trim segments.
// A trim of zero joins everything; trimming all segments or more yields "".
func JoinTrimmed(sep string, parts []string, trim int) string {
	if trim < 0 {
		trim = 0
	}
	if trim >= len(parts) {
		return ""
	}
	return strings.Join(parts[:len(parts)-trim], sep)
}
