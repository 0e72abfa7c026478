package linesplit

import (
	"iter"
	"strings"
)

// Split breaks text into lines. Both "\n" and "\r\n" end a line; a "\r" that
// is not followed by "\n" is kept as part of the line.
//
// Text without any terminator comes back as a single line, so Split("") is
// [""]. Otherwise trailing empty lines are dropped: "a\nb\n" gives [a b] and
// "\n" gives an empty slice.
func Split(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for line := range Lines(text) {
		lines = append(lines, line)
	}
	return lines
}

// Lines is the lazy form of Split. It yields the same lines in the same order
// and may be ranged over more than once.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.IndexByte(text, '\n') < 0 {
			yield(text)
			return
		}

		// empty lines are held back until something non-empty follows them,
		// which is how trailing empties get dropped
		held := 0
		rest := text
		for {
			i := strings.IndexByte(rest, '\n')
			last := i < 0

			var line string
			if last {
				line = rest
			} else {
				line = strings.TrimSuffix(rest[:i], "\r")
				rest = rest[i+1:]
			}

			if line == "" {
				held++
			} else {
				for ; held > 0; held-- {
					if !yield("") {
						return
					}
				}
				if !yield(line) {
					return
				}
			}

			if last {
				return
			}
		}
	}
}

// Line is a single line of text and its 1-based position in the input.
type Line struct {
	Number int
	Text   string
}

// Number is like Lines but attaches the position of each line.
func Number(text string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := 0
		for s := range Lines(text) {
			n++
			if !yield(Line{Number: n, Text: s}) {
				return
			}
		}
	}
}

// Numbered attaches positions to lines that were already split.
func Numbered(lines []string) []Line {
	n := 0
	return Map(func(text string) Line {
		n++
		return Line{Number: n, Text: text}
	}, lines)
}
