// The codepoint subpackage decides which Unicode code points are
// candidates for rendering. It knows nothing about fonts: whether a
// candidate has a glyph or not is checked later, when rendering.
package codepoint

import "unicode"
import "unicode/utf8"

import "golang.org/x/text/unicode/rangetable"

// The largest Unicode scalar value.
const MaxCodePoint rune = unicode.MaxRune

// A Selector produces a finite, ordered and deduplicated sequence of
// Unicode scalar values. Surrogates are never included.
type Selector interface {
	Candidates() []rune
}

// The table used by [Default](). It keeps letters, numbers, punctuation
// and symbols, plus the code points with the Other_Alphabetic property
// (which combined with letters and Nl make up the derived Alphabetic
// property). Controls, separators, unassigned code points, private use
// areas and marks outside Other_Alphabetic are excluded.
//
// This list has been derived empirically and is not meant to be
// authoritative; see [ParseCategories]() to use a different one.
var DefaultTable = rangetable.Merge(
	unicode.L, // Lu, Ll, Lt, Lm (modifier letters), Lo (other letters)
	unicode.N, // Nd, Nl, No
	unicode.P, // punctuation
	unicode.S, // Sm, Sc, Sk (modifier symbols), So (other symbols)
	unicode.Other_Alphabetic,
)

// Selects every code point contained in a Unicode range table.
type TableSelector struct {
	Table *unicode.RangeTable
}

// Returns a selector over [DefaultTable].
func Default() TableSelector {
	return TableSelector{ Table: DefaultTable }
}

// Satisfies the [Selector] interface. Code points are returned in
// ascending order.
func (self TableSelector) Candidates() []rune {
	if self.Table == nil { return nil }
	candidates := make([]rune, 0, 1024)
	last := rune(-1)
	rangetable.Visit(self.Table, func(codePoint rune) {
		// custom tables may include surrogates or be unsorted
		if !utf8.ValidRune(codePoint) || codePoint <= last { return }
		candidates = append(candidates, codePoint)
		last = codePoint
	})
	return candidates
}

// Selects every scalar value in the inclusive range [Start, End],
// without any category filtering. Surrogates inside the range
// are skipped, as they aren't scalar values.
type RangeSelector struct {
	Start rune
	End rune
}

// Satisfies the [Selector] interface. Invalid ranges (see
// [RangeSelector.Validate]()) produce no candidates.
func (self RangeSelector) Candidates() []rune {
	if self.Validate() != nil { return nil }
	candidates := make([]rune, 0, self.End - self.Start + 1)
	for codePoint := self.Start; codePoint <= self.End; codePoint++ {
		if !utf8.ValidRune(codePoint) { continue }
		candidates = append(candidates, codePoint)
	}
	return candidates
}

// Returns an error wrapping [ErrRangeParse] if the range bounds are
// not scalar values or if Start > End.
func (self RangeSelector) Validate() error {
	if !utf8.ValidRune(self.Start) { return rangeErrorf("invalid range start %U", self.Start) }
	if !utf8.ValidRune(self.End) { return rangeErrorf("invalid range end %U", self.End) }
	if self.Start > self.End {
		return rangeErrorf("range start %U is after range end %U", self.Start, self.End)
	}
	return nil
}
