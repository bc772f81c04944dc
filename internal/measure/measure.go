// Package measure computes the natural size of text content in layout units.
//
// One layout unit is one display cell: East Asian wide and fullwidth runes
// occupy two cells, combining marks and format characters none.
package measure

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/width"

	"github.com/grindlemire/go-shadow/internal/layout"
)

// Text returns the width of the widest line and the number of lines in s.
// The empty string measures 0x0; any other string has at least one line.
func Text(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	for _, line := range strings.Split(s, "\n") {
		w = max(w, Cells(line))
		h++
	}
	return w, h
}

// Cells returns the display width of a single line.
func Cells(line string) int {
	n := 0
	for _, r := range line {
		n += RuneCells(r)
	}
	return n
}

// RuneCells returns the display width of r.
func RuneCells(r rune) int {
	if r == '\t' {
		return 1
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) || unicode.IsControl(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Direction returns the direction of the first strong character in s, or
// Inherit when s has none (digits, punctuation, whitespace).
func Direction(s string) layout.WritingDirection {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return layout.LTR
		case bidi.R, bidi.AL:
			return layout.RTL
		}
	}
	return layout.Inherit
}
