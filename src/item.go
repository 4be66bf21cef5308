package sift

import (
	"github.com/sift-dev/sift/src/util"
)

// ItemIndex identifies where an item came from: the ingestion run and the
// position within that run
type ItemIndex [2]int32

// ItemOptions determines how the matchable and displayable text of an item
// is derived from the input line. The decision is made once, when the item
// is constructed.
type ItemOptions struct {
	// Ansi interprets ANSI escape sequences in the line
	Ansi bool

	// Delimiter splits the line into fields for WithNth and Nth
	Delimiter Delimiter

	// WithNth replaces the displayed and matched text with the given fields
	WithNth []FieldRange

	// Nth restricts matching to the given fields of the canonical text
	Nth []FieldRange
}

// Item stores everything one input line needs to be matched, displayed and
// printed.
//
// The simplest item is a plain line of text, but things get more complex:
// the line may carry ANSI codes that need to be interpreted, and the text
// can be transformed and limited while searching. ANSI interpretation is
// linewise; no escape sequence is assumed to affect more than one line.
type Item struct {
	index ItemIndex

	// The text that will be output when the user accepts the item
	origText string

	// The derived representation shown on the screen; nil unless a
	// transform or ANSI interpretation was requested
	text *AnsiString

	matchingRanges [][2]int

	// The transformed ANSI case needs another pass over origText on output
	transformed bool
	ansi        bool
}

// NewItem builds an Item from a line of input. Whether a transform and/or
// ANSI interpretation is active selects how the canonical text is derived:
//
//	       transformed | ANSI             | output
//	------------------------------------------------
//	                   +- T -> trans+ANSI | ANSI
//	                   |                  |
//	     +- T -> trans +- F -> trans      | orig
//	orig |                                |
//	     +- F -> orig  +- T -> ANSI     ==| ANSI
//	                   |                  |
//	                   +- F -> orig       | orig
//
// In the plain case no derived representation is built and the original
// line is used as is.
func NewItem(origText string, index ItemIndex, opts ItemOptions) *Item {
	transformed := len(opts.WithNth) > 0

	var text *AnsiString
	if transformed && opts.Ansi {
		text = ParseAnsi(TransformFields(opts.Delimiter, origText, opts.WithNth))
	} else if transformed {
		text = NewAnsiString(TransformFields(opts.Delimiter, origText, opts.WithNth))
	} else if opts.Ansi {
		text = ParseAnsi(origText)
	}

	item := &Item{
		index:       index,
		origText:    origText,
		text:        text,
		transformed: transformed,
		ansi:        opts.Ansi,
	}

	if len(opts.Nth) > 0 {
		item.matchingRanges = MatchingFields(opts.Delimiter, item.Text(), opts.Nth)
	} else {
		item.matchingRanges = [][2]int{{0, len(item.Text())}}
	}
	return item
}

// Text returns the canonical text that matching operates on. When neither
// a transform nor ANSI interpretation is active this is the original line
// itself, without any copy.
func (item *Item) Text() string {
	if item.text == nil {
		return item.origText
	}
	return item.text.stripped
}

// TextStruct returns the derived representation with its color spans, or
// nil when none was built
func (item *Item) TextStruct() *AnsiString {
	return item.text
}

// OutputText returns the text to print when the item is accepted. A
// transform only ever affects matching and display, never the content:
// the transformed ANSI case therefore re-interprets the full original
// line instead of using the transformed text.
func (item *Item) OutputText() string {
	if item.transformed && item.ansi {
		return ParseAnsi(item.origText).stripped
	} else if item.ansi {
		return item.text.stripped
	}
	return item.origText
}

// Index returns the position of the item within its run
func (item *Item) Index() int32 {
	return item.index[1]
}

// FullIndex returns the (run, position) pair
func (item *Item) FullIndex() ItemIndex {
	return item.index
}

// MatchingRanges returns the byte ranges of Text() eligible for matching.
// When no Nth restriction was given there is exactly one range spanning
// the whole canonical text.
func (item *Item) MatchingRanges() [][2]int {
	return item.matchingRanges
}

// DisplayWidth returns the display width of the canonical text
func (item *Item) DisplayWidth() int {
	if item.text != nil {
		return item.text.DisplayWidth()
	}
	return util.StringWidth(item.origText)
}

// Clone returns a fully independent copy of the item
func (item *Item) Clone() *Item {
	dupe := *item
	if item.text != nil {
		dupe.text = item.text.Clone()
	}
	dupe.matchingRanges = make([][2]int, len(item.matchingRanges))
	copy(dupe.matchingRanges, item.matchingRanges)
	return &dupe
}
