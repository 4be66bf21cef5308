package sift

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sift-dev/sift/src/util"
)

const rangeEllipsis = 0

// FieldRange represents an nth-expression: a single field, a bounded span,
// or a span open at either end. Fields are 1-based; negative indices count
// from the last field.
type FieldRange struct {
	begin int
	end   int
}

// Token is one field of a line along with its byte offset within the line.
// The delimiter that follows a field stays attached to it.
type Token struct {
	text         string
	prefixLength int
}

// Text returns the field content, including the attached delimiter
func (t Token) Text() string {
	return t.text
}

// PrefixLength returns the byte offset of the field within the line
func (t Token) PrefixLength() int {
	return t.prefixLength
}

// Delimiter determines how a line is split into fields. The zero value
// splits awk-style on runs of spaces and tabs.
type Delimiter struct {
	str   *string
	regex *regexp.Regexp
}

// StringDelimiter splits fields on the given literal string
func StringDelimiter(str string) Delimiter {
	return Delimiter{str: &str}
}

// RegexDelimiter splits fields on matches of the given regular expression
func RegexDelimiter(regex *regexp.Regexp) Delimiter {
	return Delimiter{regex: regex}
}

func newFieldRange(begin int, end int) FieldRange {
	if begin == 1 {
		begin = rangeEllipsis
	}
	if end == -1 {
		end = rangeEllipsis
	}
	return FieldRange{begin, end}
}

// ParseFieldRange parses an nth-expression such as "3", "-1", "2..-2",
// "..4", "3.." or ".."
func ParseFieldRange(str string) (FieldRange, error) {
	if str == ".." {
		return newFieldRange(rangeEllipsis, rangeEllipsis), nil
	} else if strings.HasPrefix(str, "..") {
		end, err := strconv.Atoi(str[2:])
		if err != nil || end == 0 {
			return FieldRange{}, errors.Errorf("invalid field range expression: %s", str)
		}
		return newFieldRange(rangeEllipsis, end), nil
	} else if strings.HasSuffix(str, "..") {
		begin, err := strconv.Atoi(str[:len(str)-2])
		if err != nil || begin == 0 {
			return FieldRange{}, errors.Errorf("invalid field range expression: %s", str)
		}
		return newFieldRange(begin, rangeEllipsis), nil
	} else if strings.Contains(str, "..") {
		ns := strings.Split(str, "..")
		if len(ns) != 2 {
			return FieldRange{}, errors.Errorf("invalid field range expression: %s", str)
		}
		begin, err1 := strconv.Atoi(ns[0])
		end, err2 := strconv.Atoi(ns[1])
		if err1 != nil || err2 != nil || begin == 0 || end == 0 {
			return FieldRange{}, errors.Errorf("invalid field range expression: %s", str)
		}
		return newFieldRange(begin, end), nil
	}

	n, err := strconv.Atoi(str)
	if err != nil || n == 0 {
		return FieldRange{}, errors.Errorf("invalid field range expression: %s", str)
	}
	return newFieldRange(n, n), nil
}

// ParseFieldRanges parses a comma-separated list of nth-expressions
func ParseFieldRanges(str string) ([]FieldRange, error) {
	tokens := strings.Split(str, ",")
	ranges := make([]FieldRange, len(tokens))
	for idx, token := range tokens {
		r, err := ParseFieldRange(token)
		if err != nil {
			return nil, err
		}
		ranges[idx] = r
	}
	return ranges, nil
}

const (
	awkNil = iota
	awkBlack
	awkWhite
)

func awkTokenize(text string) []Token {
	// 9, 32
	tokens := []Token{}
	begin := 0
	state := awkNil
	for i := 0; i < len(text); i++ {
		white := text[i] == 9 || text[i] == 32
		switch state {
		case awkNil:
			if !white {
				begin = i
				state = awkBlack
			}
		case awkBlack:
			if white {
				state = awkWhite
			}
		case awkWhite:
			if !white {
				tokens = append(tokens, Token{text[begin:i], begin})
				begin = i
				state = awkBlack
			}
		}
	}
	if state != awkNil {
		tokens = append(tokens, Token{text[begin:], begin})
	}
	return tokens
}

// Tokenize splits the line into fields with the delimiter. Offsets are in
// bytes so that the resulting ranges index directly into the line.
func Tokenize(text string, delimiter Delimiter) []Token {
	if delimiter.str == nil && delimiter.regex == nil {
		// AWK-style (\S+\s*)
		return awkTokenize(text)
	}

	tokens := []Token{}
	if delimiter.str != nil {
		prefixLength := 0
		for _, part := range strings.SplitAfter(text, *delimiter.str) {
			tokens = append(tokens, Token{part, prefixLength})
			prefixLength += len(part)
		}
	} else {
		prefixLength := 0
		for len(text) > 0 {
			loc := delimiter.regex.FindStringIndex(text)
			if loc == nil {
				loc = []int{0, len(text)}
			}
			last := util.Max(loc[1], 1)
			tokens = append(tokens, Token{text[:last], prefixLength})
			prefixLength += last
			text = text[last:]
		}
	}
	return tokens
}

// fieldSpan resolves the range against the token count into a 0-based
// half-open token span
func fieldSpan(r FieldRange, numTokens int) (int, int, bool) {
	begin, end := r.begin, r.end
	if begin == rangeEllipsis && end == rangeEllipsis {
		return 0, numTokens, numTokens > 0
	}
	if begin == rangeEllipsis {
		begin = 1
	} else if begin < 0 {
		begin += numTokens + 1
	}
	if end == rangeEllipsis {
		end = numTokens
	} else if end < 0 {
		end += numTokens + 1
	}
	begin = util.Max(1, begin)
	end = util.Min(numTokens, end)
	if begin > end {
		return 0, 0, false
	}
	return begin - 1, end, true
}

// TransformFields extracts the display text selected by the field ranges,
// joining the selected fields in the order the ranges are given. Ranges
// that select no field contribute nothing.
func TransformFields(delimiter Delimiter, text string, ranges []FieldRange) string {
	tokens := Tokenize(text, delimiter)
	var transformed strings.Builder
	for _, r := range ranges {
		begin, end, ok := fieldSpan(r, len(tokens))
		if !ok {
			continue
		}
		for _, token := range tokens[begin:end] {
			transformed.WriteString(token.text)
		}
	}
	return transformed.String()
}

// MatchingFields resolves the field ranges against the text into the byte
// ranges eligible for matching. Ranges that select no field are skipped.
func MatchingFields(delimiter Delimiter, text string, ranges []FieldRange) [][2]int {
	tokens := Tokenize(text, delimiter)
	result := make([][2]int, 0, len(ranges))
	for _, r := range ranges {
		begin, end, ok := fieldSpan(r, len(tokens))
		if !ok {
			continue
		}
		first := tokens[begin]
		last := tokens[end-1]
		result = append(result, [2]int{first.prefixLength, last.prefixLength + len(last.text)})
	}
	return result
}
