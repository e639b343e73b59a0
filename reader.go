package desk

import "unicode/utf8"

// splitIncomplete separates a trailing incomplete UTF-8 sequence from data.
// The incomplete tail is carried over to the next read.
func splitIncomplete(data []byte) (complete, tail []byte) {
	for i := 1; i <= utf8.UTFMax-1 && i <= len(data); i++ {
		start := len(data) - i
		if !utf8.RuneStart(data[start]) {
			continue
		}
		if data[start] < utf8.RuneSelf || utf8.FullRune(data[start:]) {
			return data, nil
		}
		return data[:start], data[start:]
	}
	return data, nil
}
