// Package engine holds the character-level mechanics shared by the codec:
// measuring lines, slicing them into fixed-width segments and fitting text
// back into a fixed width. Widths are counted in runes.
package engine

import (
	"strings"
	"unicode/utf8"
)

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Split cuts line into consecutive segments of the given widths. The caller
// guarantees RuneLen(line) equals the sum of widths.
func Split(line string, widths []int) []string {
	out := make([]string, len(widths))
	if len(line) == RuneLen(line) {
		// ASCII fast path: byte offsets equal character offsets
		pos := 0
		for i, w := range widths {
			out[i] = line[pos : pos+w]
			pos += w
		}
		return out
	}
	pos := 0
	for i, w := range widths {
		start := pos
		for n := 0; n < w && pos < len(line); n++ {
			_, size := utf8.DecodeRuneInString(line[pos:])
			pos += size
		}
		out[i] = line[start:pos]
	}
	return out
}

// TrimRight strips trailing spaces and NUL bytes, the filler of a
// left-justified fixed-width segment.
func TrimRight(seg string) string {
	return strings.TrimRight(seg, " \x00")
}

// AppendFit appends s left-justified into exactly width characters,
// truncating or filling with spaces.
func AppendFit(b []byte, s string, width int) []byte {
	n := 0
	pos := 0
	for pos < len(s) && n < width {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
		n++
	}
	b = append(b, s[:pos]...)
	return AppendBlank(b, width-n)
}

// AppendBlank appends n spaces.
func AppendBlank(b []byte, n int) []byte {
	for ; n > 0; n-- {
		b = append(b, ' ')
	}
	return b
}
