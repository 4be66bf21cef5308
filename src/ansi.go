package sift

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/sift-dev/sift/src/util"
)

// AnsiColor is the color and attribute state set by SGR sequences.
// -1 denotes the terminal default color.
type AnsiColor struct {
	Fg   int
	Bg   int
	Bold bool
}

// AnsiOffset associates a byte range of the stripped text with the color
// that applied to it
type AnsiOffset struct {
	Offset [2]int32
	Color  AnsiColor
}

// AnsiString is a line with its ANSI escape sequences interpreted: the
// stripped plain text plus the color spans over it. Interpretation is
// linewise; no sequence is assumed to affect more than one line.
type AnsiString struct {
	stripped string
	offsets  []AnsiOffset
}

// NewAnsiString wraps plain text that carries no color information
func NewAnsiString(str string) *AnsiString {
	return &AnsiString{stripped: str}
}

// Stripped returns the text with all escape sequences removed
func (as *AnsiString) Stripped() string {
	return as.stripped
}

// ColorOffsets returns the color spans, in ascending byte order
func (as *AnsiString) ColorOffsets() []AnsiOffset {
	return as.offsets
}

// DisplayWidth returns the display width of the stripped text
func (as *AnsiString) DisplayWidth() int {
	return util.StringWidth(as.stripped)
}

// Clone returns an independent copy
func (as *AnsiString) Clone() *AnsiString {
	dupe := AnsiString{stripped: as.stripped}
	if as.offsets != nil {
		dupe.offsets = make([]AnsiOffset, len(as.offsets))
		copy(dupe.offsets, as.offsets)
	}
	return &dupe
}

func (c *AnsiColor) colored() bool {
	return c.Fg != -1 || c.Bg != -1 || c.Bold
}

func (c *AnsiColor) equals(other *AnsiColor) bool {
	if other == nil {
		return !c.colored()
	}
	return c.Fg == other.Fg && c.Bg == other.Bg && c.Bold == other.Bold
}

var ansiRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")

// ParseAnsi interprets the SGR sequences in the string and returns the
// stripped text along with the color spans
func ParseAnsi(str string) *AnsiString {
	offsets := make([]AnsiOffset, 0)

	var output bytes.Buffer
	var state *AnsiColor

	idx := 0
	for _, offset := range ansiRegex.FindAllStringIndex(str, -1) {
		output.WriteString(str[idx:offset[0]])
		newLen := int32(output.Len())
		newState := interpretCode(str[offset[0]:offset[1]], state)

		if !newState.equals(state) {
			if state != nil {
				// Update last offset
				(&offsets[len(offsets)-1]).Offset[1] = int32(output.Len())
			}

			if newState.colored() {
				// Append new offset
				state = newState
				offsets = append(offsets, AnsiOffset{[2]int32{newLen, newLen}, *state})
			} else {
				// Discard state
				state = nil
			}
		}

		idx = offset[1]
	}

	rest := str[idx:]
	if len(rest) > 0 {
		output.WriteString(rest)
		if state != nil {
			// Update last offset
			(&offsets[len(offsets)-1]).Offset[1] = int32(output.Len())
		}
	}
	return &AnsiString{stripped: output.String(), offsets: offsets}
}

func interpretCode(ansiCode string, prevState *AnsiColor) *AnsiColor {
	// State
	var state *AnsiColor
	if prevState == nil {
		state = &AnsiColor{-1, -1, false}
	} else {
		state = &AnsiColor{prevState.Fg, prevState.Bg, prevState.Bold}
	}

	ptr := &state.Fg
	state256 := 0

	init := func() {
		state.Fg = -1
		state.Bg = -1
		state.Bold = false
		state256 = 0
	}

	ansiCode = ansiCode[2 : len(ansiCode)-1]
	if len(ansiCode) == 0 {
		// ESC[m is equivalent to ESC[0m
		init()
	}
	for _, code := range strings.Split(ansiCode, ";") {
		if num, err := strconv.Atoi(code); err == nil {
			switch state256 {
			case 0:
				switch num {
				case 38:
					ptr = &state.Fg
					state256++
				case 48:
					ptr = &state.Bg
					state256++
				case 39:
					state.Fg = -1
				case 49:
					state.Bg = -1
				case 1:
					state.Bold = true
				case 0:
					init()
				default:
					if num >= 30 && num <= 37 {
						state.Fg = num - 30
					} else if num >= 40 && num <= 47 {
						state.Bg = num - 40
					}
				}
			case 1:
				switch num {
				case 5:
					state256++
				default:
					state256 = 0
				}
			case 2:
				*ptr = num
				state256 = 0
			}
		}
	}
	return state
}
