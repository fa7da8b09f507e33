package tnfa

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestClassEscapeMatcherOppositePolarity(t *testing.T) {
	dEntry, ok := lookupClassEscape('d')
	assert.Assert(t, ok)
	DEntry, ok := lookupClassEscape('D')
	assert.Assert(t, ok)

	d := classEscapeMatcher(dEntry)
	bigD := classEscapeMatcher(DEntry)

	assert.Assert(t, d.Match('5'))
	assert.Assert(t, !d.Match('x'))
	assert.Assert(t, !bigD.Match('5'))
	assert.Assert(t, bigD.Match('x'))
}

func TestClassEscapeSAndBigSAreDistinct(t *testing.T) {
	sEntry, ok := lookupClassEscape('s')
	assert.Assert(t, ok)
	bigSEntry, ok := lookupClassEscape('S')
	assert.Assert(t, ok)
	assert.Assert(t, sEntry.negated != bigSEntry.negated)

	s := classEscapeMatcher(sEntry)
	bigS := classEscapeMatcher(bigSEntry)
	assert.Assert(t, s.Match(' '))
	assert.Assert(t, !bigS.Match(' '))
	assert.Assert(t, !s.Match('x'))
	assert.Assert(t, bigS.Match('x'))
}

func TestWordEscapeIncludesUnderscore(t *testing.T) {
	wEntry, _ := lookupClassEscape('w')
	w := classEscapeMatcher(wEntry)
	assert.Assert(t, w.Match('_'))
	assert.Assert(t, w.Match('a'))
	assert.Assert(t, w.Match('9'))
	assert.Assert(t, !w.Match(' '))
}

func TestBracketBuilderRangesAndClasses(t *testing.T) {
	var b bracketBuilder
	b.addRange('a', 'c')
	dEntry, _ := lookupClassEscape('d')
	b.addClassEscape(dEntry)
	m := b.matcher()

	assert.Assert(t, m.Match('b'))
	assert.Assert(t, m.Match('5'))
	assert.Assert(t, !m.Match('z'))
}

func TestBracketBuilderNegation(t *testing.T) {
	var b bracketBuilder
	b.negate = true
	b.addRange('a', 'z')
	m := b.matcher()

	assert.Assert(t, !m.Match('m'))
	assert.Assert(t, m.Match('M'))
}

func TestIsWord(t *testing.T) {
	assert.Assert(t, isWord('_'))
	assert.Assert(t, isWord('a'))
	assert.Assert(t, isWord('9'))
	assert.Assert(t, !isWord(' '))
	assert.Assert(t, !isWord('.'))
}
