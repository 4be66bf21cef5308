package util

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Max returns the largest integer
func Max(first int, second int) int {
	if first >= second {
		return first
	}
	return second
}

// Min returns the smallest integer
func Min(first int, second int) int {
	if first <= second {
		return first
	}
	return second
}

// Constrain limits the given integer with the upper and lower bounds
func Constrain(val int, min int, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// StringWidth returns the display width of the string
func StringWidth(str string) int {
	return runewidth.StringWidth(str)
}

// RunesWidth returns the display width of the runes and the index at which
// the width exceeds the limit, or -1 if it never does
func RunesWidth(runes []rune, prefixWidth int, tabstop int, limit int) (int, int) {
	width := 0
	for idx, r := range runes {
		var w int
		if r == '\t' {
			w = tabstop - (prefixWidth+width)%tabstop
		} else {
			w = runewidth.RuneWidth(r)
		}
		width += w
		if width > limit {
			return width, idx
		}
	}
	return width, -1
}

// Truncate returns the longest prefix of the string that fits within the
// limit, and its width
func Truncate(input string, limit int) ([]rune, int) {
	runes := []rune{}
	width := 0
	for _, r := range input {
		w := runewidth.RuneWidth(r)
		if width+w > limit {
			return runes, width
		}
		width += w
		runes = append(runes, r)
	}
	return runes, width
}

// IsTty returns true if the file is a terminal
func IsTty(file *os.File) bool {
	return isatty.IsTerminal(file.Fd())
}

// ToTty returns true if stdout is a terminal
func ToTty() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Once returns a function that returns the specified boolean value only once
func Once(nextResponse bool) func() bool {
	state := nextResponse
	return func() bool {
		prevState := state
		state = false
		return prevState
	}
}
