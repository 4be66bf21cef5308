package sift

import (
	"regexp"
	"testing"
)

func TestParseFieldRange(t *testing.T) {
	check := func(str string, begin int, end int) {
		r, err := ParseFieldRange(str)
		if err != nil || r.begin != begin || r.end != end {
			t.Errorf("%s => %v (%v)", str, r, err)
		}
	}
	check("..", rangeEllipsis, rangeEllipsis)
	check("3..", 3, rangeEllipsis)
	check("..4", rangeEllipsis, 4)
	check("3..5", 3, 5)
	check("-3..-5", -3, -5)
	check("3", 3, 3)
	check("-1", -1, rangeEllipsis)
	check("1", rangeEllipsis, 1)
	check("1..-1", rangeEllipsis, rangeEllipsis)

	for _, invalid := range []string{"", "0", "..0", "a", "3..b", "1..2..3"} {
		if _, err := ParseFieldRange(invalid); err == nil {
			t.Errorf("%s should not parse", invalid)
		}
	}
}

func TestParseFieldRanges(t *testing.T) {
	result, err := ParseFieldRanges("1,3..5,-1")
	if err != nil || len(result) != 3 {
		t.Fatalf("%v (%v)", result, err)
	}
	if result[1].begin != 3 || result[1].end != 5 {
		t.Error("Invalid range:", result[1])
	}

	if _, err := ParseFieldRanges("1,x"); err == nil {
		t.Error("Invalid list should not parse")
	}
}

func TestTokenizeAwk(t *testing.T) {
	tokens := Tokenize("  abc:  def:  ghi  ", Delimiter{})
	if len(tokens) != 3 ||
		tokens[0].Text() != "abc:  " || tokens[0].PrefixLength() != 2 ||
		tokens[1].Text() != "def:  " || tokens[1].PrefixLength() != 8 ||
		tokens[2].Text() != "ghi  " || tokens[2].PrefixLength() != 14 {
		t.Error("Invalid tokens:", tokens)
	}

	if len(Tokenize("", Delimiter{})) != 0 || len(Tokenize("   ", Delimiter{})) != 0 {
		t.Error("Blank line should have no fields")
	}
}

func TestTokenizeDelimiter(t *testing.T) {
	tokens := Tokenize("a:b:c", StringDelimiter(":"))
	if len(tokens) != 3 ||
		tokens[0].Text() != "a:" || tokens[0].PrefixLength() != 0 ||
		tokens[1].Text() != "b:" || tokens[1].PrefixLength() != 2 ||
		tokens[2].Text() != "c" || tokens[2].PrefixLength() != 4 {
		t.Error("Invalid tokens:", tokens)
	}

	// A trailing delimiter yields a trailing empty field
	tokens = Tokenize("a:b:", StringDelimiter(":"))
	if len(tokens) != 3 || tokens[2].Text() != "" || tokens[2].PrefixLength() != 4 {
		t.Error("Invalid tokens:", tokens)
	}
}

func TestTokenizeRegex(t *testing.T) {
	tokens := Tokenize("a  b c", RegexDelimiter(regexp.MustCompile(`\s+`)))
	if len(tokens) != 3 ||
		tokens[0].Text() != "a  " || tokens[0].PrefixLength() != 0 ||
		tokens[1].Text() != "b " || tokens[1].PrefixLength() != 3 ||
		tokens[2].Text() != "c" || tokens[2].PrefixLength() != 5 {
		t.Error("Invalid tokens:", tokens)
	}
}

func TestTransformFields(t *testing.T) {
	check := func(expr string, expected string) {
		result := TransformFields(Delimiter{}, "foo bar baz", ranges(t, expr))
		if result != expected {
			t.Errorf("%s => %q (expected %q)", expr, result, expected)
		}
	}
	check("2", "bar ")
	check("2,1", "bar foo ")
	check("2..", "bar baz")
	check("..2", "foo bar ")
	check("-1", "baz")
	check("..", "foo bar baz")
	check("4", "")
}

func TestMatchingFields(t *testing.T) {
	check := func(expr string, expected [][2]int) {
		result := MatchingFields(Delimiter{}, "foo bar baz", ranges(t, expr))
		if len(result) != len(expected) {
			t.Fatalf("%s => %v (expected %v)", expr, result, expected)
		}
		for idx := range result {
			if result[idx] != expected[idx] {
				t.Errorf("%s => %v (expected %v)", expr, result, expected)
			}
		}
	}
	check("1,3", [][2]int{{0, 4}, {8, 11}})
	check("..", [][2]int{{0, 11}})
	check("2..3", [][2]int{{4, 11}})
	check("-1", [][2]int{{8, 11}})

	// Out-of-range expressions select nothing
	check("5", [][2]int{})
}
