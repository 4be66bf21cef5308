package sift

// Rank is the sort key of a matched item: match score first, then the item
// index, then the begin and end offsets of the match. Comparison is purely
// lexicographic; the matching engine decides what each slot holds and
// whether better results compare greater or lesser.
type Rank [4]int64

// Compare returns -1, 0 or 1 depending on the lexicographic order of the
// two ranks
func (rank Rank) Compare(other Rank) int {
	for idx := range rank {
		if rank[idx] < other[idx] {
			return -1
		}
		if rank[idx] > other[idx] {
			return 1
		}
	}
	return 0
}

func compareRanks(irank Rank, jrank Rank) bool {
	return irank.Compare(jrank) < 0
}

// MatchedRange tells which part of the canonical text matched the pattern:
// either a contiguous byte range or the positions of the individual
// matched characters. It is used for highlighting only and plays no role
// in ordering.
type MatchedRange struct {
	begin int
	end   int
	chars []int
	mode  matchedRangeMode
}

type matchedRangeMode int

const (
	matchedByteRange matchedRangeMode = iota
	matchedChars
)

// NewByteRange annotates a contiguous byte range of the canonical text
func NewByteRange(begin int, end int) MatchedRange {
	return MatchedRange{begin: begin, end: end, mode: matchedByteRange}
}

// NewMatchedChars annotates the individual character positions that matched
func NewMatchedChars(chars []int) MatchedRange {
	return MatchedRange{chars: chars, mode: matchedChars}
}

// ByteRange returns the byte range, if that is what the annotation holds
func (mr MatchedRange) ByteRange() (int, int, bool) {
	if mr.mode != matchedByteRange {
		return 0, 0, false
	}
	return mr.begin, mr.end, true
}

// Chars returns the matched character positions, if that is what the
// annotation holds
func (mr MatchedRange) Chars() ([]int, bool) {
	if mr.mode != matchedChars {
		return nil, false
	}
	return mr.chars, true
}

// MatchedItem pairs a shared item with the rank the matching engine gave
// it and, optionally, the range that matched
type MatchedItem struct {
	item         *Item
	rank         Rank
	matchedRange *MatchedRange
}

// NewMatchedItem starts a matched item with a zero rank and no matched
// range. Rank and range are assigned afterwards; rank values are not
// validated.
func NewMatchedItem(item *Item) *MatchedItem {
	return &MatchedItem{item: item}
}

// WithRank assigns the rank and returns the matched item for chaining
func (mi *MatchedItem) WithRank(rank Rank) *MatchedItem {
	mi.rank = rank
	return mi
}

// WithMatchedRange assigns the matched range annotation and returns the
// matched item for chaining
func (mi *MatchedItem) WithMatchedRange(mr MatchedRange) *MatchedItem {
	mi.matchedRange = &mr
	return mi
}

// WithByteRange annotates a contiguous byte range and returns the matched
// item for chaining
func (mi *MatchedItem) WithByteRange(begin int, end int) *MatchedItem {
	return mi.WithMatchedRange(NewByteRange(begin, end))
}

// WithChars annotates the matched character positions and returns the
// matched item for chaining
func (mi *MatchedItem) WithChars(chars []int) *MatchedItem {
	return mi.WithMatchedRange(NewMatchedChars(chars))
}

// Item returns the underlying shared item
func (mi *MatchedItem) Item() *Item {
	return mi.item
}

// Rank returns the assigned rank
func (mi *MatchedItem) Rank() Rank {
	return mi.rank
}

// MatchedRange returns the annotation and whether one was assigned
func (mi *MatchedItem) MatchedRange() (MatchedRange, bool) {
	if mi.matchedRange == nil {
		return MatchedRange{}, false
	}
	return *mi.matchedRange, true
}

// ByRank sorts matched items in ascending rank order
type ByRank []*MatchedItem

func (a ByRank) Len() int {
	return len(a)
}

func (a ByRank) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

func (a ByRank) Less(i, j int) bool {
	return compareRanks(a[i].rank, a[j].rank)
}
