package tnfa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestParseLiteralSequence(t *testing.T) {
	pr, err := parsePattern("abc")
	assert.NilError(t, err)
	assert.Equal(t, pr.CaptureCount, 1)

	want := &Node{
		Op:         NodeSequence,
		Value:      0,
		Quantifier: quantOne,
		Children: []*Node{
			literalNode('a'),
			literalNode('b'),
			literalNode('c'),
		},
	}
	if diff := cmp.Diff(want, pr.AST); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCaptureIndexAssignedOnOpenParen(t *testing.T) {
	pr, err := parsePattern("((a)(b))")
	assert.NilError(t, err)
	assert.Equal(t, pr.CaptureCount, 4)

	outer := pr.AST.Children[0]
	assert.Equal(t, outer.Value, 1)
	assert.Equal(t, outer.Children[0].Value, 2)
	assert.Equal(t, outer.Children[1].Value, 3)
}

func TestParseAlternation(t *testing.T) {
	pr, err := parsePattern("a|b|c")
	assert.NilError(t, err)

	assert.Equal(t, pr.AST.Op, NodeAlternation)
	assert.Equal(t, pr.AST.Value, 0)
	// Right-recursion: only the outermost alternation node carries the
	// capture value; nested continuations carry noCapture.
	assert.Equal(t, pr.AST.Children[1].Op, NodeAlternation)
	assert.Equal(t, pr.AST.Children[1].Value, noCapture)
}

func TestParseQuantifiers(t *testing.T) {
	cases := []struct {
		pattern string
		want    Quantifier
	}{
		{"a*", Quantifier{Kind: QuantZeroOrMore}},
		{"a+", Quantifier{Kind: QuantOneOrMore}},
		{"a?", Quantifier{Kind: QuantOptional}},
		{"a{3}", Quantifier{Kind: QuantRange, Min: 3, Max: 3}},
		{"a{3,}", Quantifier{Kind: QuantRange, Min: 3, Max: -1}},
		{"a{3,5}", Quantifier{Kind: QuantRange, Min: 3, Max: 5}},
		{"a{,5}", Quantifier{Kind: QuantRange, Min: 0, Max: 5}},
	}
	for _, c := range cases {
		pr, err := parsePattern(c.pattern)
		assert.NilError(t, err, c.pattern)
		got := pr.AST.Children[0].Quantifier
		assert.Equal(t, got, c.want, c.pattern)
	}
}

func TestParseClassEscapeRegistersMatcher(t *testing.T) {
	pr, err := parsePattern(`\d`)
	assert.NilError(t, err)
	assert.Equal(t, pr.AST.Children[0].Op, NodeMatcherRef)
	assert.Equal(t, len(pr.Matchers), 1)
	assert.Assert(t, pr.Matchers[0].Match('5'))
}

func TestParseAssertions(t *testing.T) {
	cases := []struct {
		pattern string
		want    NodeOp
	}{
		{"^", NodeLineStart},
		{"$", NodeLineEnd},
		{`\b`, NodeWordBoundary},
		{`\B`, NodeNotWordBoundary},
		{"\\`", NodeSubjectBegin},
		{`\'`, NodeSubjectEnd},
	}
	for _, c := range cases {
		pr, err := parsePattern(c.pattern)
		assert.NilError(t, err, c.pattern)
		assert.Equal(t, pr.AST.Children[0].Op, c.want, c.pattern)
	}
}

func TestParseControlEscapes(t *testing.T) {
	pr, err := parsePattern(`\n\t`)
	assert.NilError(t, err)
	assert.Equal(t, rune(pr.AST.Children[0].Value), '\n')
	assert.Equal(t, rune(pr.AST.Children[1].Value), '\t')
}

func TestParseBracketClass(t *testing.T) {
	pr, err := parsePattern(`[a-cX-Z]`)
	assert.NilError(t, err)
	m := pr.Matchers[pr.AST.Children[0].Value]
	assert.Assert(t, m.Match('b'))
	assert.Assert(t, m.Match('Y'))
	assert.Assert(t, !m.Match('d'))
}

func TestParseBracketLeadingDash(t *testing.T) {
	pr, err := parsePattern(`[-a]`)
	assert.NilError(t, err)
	m := pr.Matchers[pr.AST.Children[0].Value]
	assert.Assert(t, m.Match('-'))
	assert.Assert(t, m.Match('a'))
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"a|",
		"|",
		"(a",
		"[a",
		"a{5,2}",
		"a{",
		`\q`,
		"a)",
	}
	for _, pattern := range cases {
		_, err := parsePattern(pattern)
		assert.ErrorType(t, err, (*SyntaxError)(nil))
	}
}

func TestParseInvalidBracketRange(t *testing.T) {
	_, err := parsePattern("[z-a]")
	assert.ErrorType(t, err, (*SyntaxError)(nil))
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	cases := []string{
		"a\xffb",
		"\\\xff",
		"[a\xffb]",
		"[a-\xff]",
	}
	for _, pattern := range cases {
		_, err := parsePattern(pattern)
		assert.ErrorType(t, err, (*SyntaxError)(nil), pattern)
	}
}

func TestSyntaxErrorMessageHasPositionMarker(t *testing.T) {
	_, err := parsePattern("a(b")
	assert.Assert(t, err != nil)
	assert.Assert(t, cmp.Diff("regex parse error: unclosed parenthesis at 'a(b«HERE»'", err.Error()) == "")
}
