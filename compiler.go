package tnfa

import "unicode/utf8"

// searchPrefixSize is the fixed length, in bytes, of the canonical
// search prefix written by writeSearchPrefix:
//
//	Split_PrioritizeChild <enter_pattern>
//	AnyChar
//	Split_PrioritizeParent <loop_back_to_AnyChar>
const searchPrefixSize = 1 + offsetSize + 1 + 1 + offsetSize

// compiler turns a ParsedRegex into a Program by walking the AST once,
// emitting bytecode and back-patching jump/split offsets once their
// targets become known.
type compiler struct {
	prog Program
}

// compileParsedRegex compiles pr into a Program. The bytecode always
// begins with the search prefix; anchored (full-match) execution
// simply starts the virtual machine past it.
func compileParsedRegex(pr *ParsedRegex) *Program {
	c := &compiler{}
	c.prog.matchers = pr.Matchers
	c.prog.saveSlotCount = pr.CaptureCount * 2

	c.writeSearchPrefix()
	c.compileNode(pr.AST)
	c.emitOp(OpMatch)
	return &c.prog
}

func (c *compiler) here() int { return len(c.prog.bytecode) }

func (c *compiler) emitOp(op byte) {
	c.prog.bytecode = append(c.prog.bytecode, op)
}

func (c *compiler) emitByte(b byte) {
	c.prog.bytecode = append(c.prog.bytecode, b)
}

func (c *compiler) emitCodepoint(cp rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	c.prog.bytecode = append(c.prog.bytecode, buf[:n]...)
}

// allocOffset reserves offsetSize placeholder bytes and returns their
// position, to be resolved later with patch.
func (c *compiler) allocOffset() int {
	pos := c.here()
	c.prog.bytecode = append(c.prog.bytecode, make([]byte, offsetSize)...)
	return pos
}

func (c *compiler) patch(pos, target int) {
	putOffset(c.prog.bytecode[pos:pos+offsetSize], uint32(target))
}

// writeSearchPrefix writes the canonical unanchored-search preamble: a
// choice between entering the pattern immediately (higher priority) or
// consuming one AnyChar and retrying, so a match may begin at any
// offset while the earliest start still wins.
func (c *compiler) writeSearchPrefix() {
	c.emitOp(OpSplitPrioritizeChild)
	enterPattern := c.allocOffset()

	anyCharPos := c.here()
	c.emitOp(OpAnyChar)

	c.emitOp(OpSplitPrioritizeParent)
	loopBack := c.allocOffset()
	c.patch(loopBack, anyCharPos)

	c.patch(enterPattern, c.here())
}

// compileNode emits a node's body wrapped by its quantifier, per the
// six-step recipe: an optional skip-split when the quantifier allows
// zero repetitions, the mandatory repetitions, then either a
// loop-back split (unbounded) or a chain of optional trailing
// repetitions (bounded). It returns the byte offset the node's code
// starts at, including any leading skip-split.
func (c *compiler) compileNode(n *Node) int {
	q := n.Quantifier
	pos := c.here()

	var gotoEnd []int
	if q.AllowsNone() {
		c.emitOp(OpSplitPrioritizeParent)
		gotoEnd = append(gotoEnd, c.allocOffset())
	}

	innerPos := c.compileNodeInner(n)
	for i := 1; i < q.Min; i++ {
		innerPos = c.compileNodeInner(n)
	}

	if q.AllowsInfinite() {
		c.emitOp(OpSplitPrioritizeChild)
		off := c.allocOffset()
		c.patch(off, innerPos)
	} else {
		for i := max(1, q.Min); i < q.Max; i++ {
			c.emitOp(OpSplitPrioritizeParent)
			gotoEnd = append(gotoEnd, c.allocOffset())
			c.compileNodeInner(n)
		}
	}

	for _, off := range gotoEnd {
		c.patch(off, c.here())
	}
	return pos
}

// compileNodeInner emits one occurrence of a node's body: the
// operator's own instruction(s), wrapped in Save 2g / Save 2g+1 if the
// node opens capture group g.
func (c *compiler) compileNodeInner(n *Node) int {
	startPos := c.here()

	capture := noCapture
	if n.Op == NodeSequence || n.Op == NodeAlternation {
		capture = n.Value
	}
	if capture != noCapture {
		c.emitOp(OpSave)
		c.emitByte(byte(capture * 2))
	}

	switch n.Op {
	case NodeLiteral:
		c.emitOp(OpLiteral)
		c.emitCodepoint(rune(n.Value))
	case NodeAnyChar:
		c.emitOp(OpAnyChar)
	case NodeMatcherRef:
		c.emitOp(OpMatcher)
		c.emitByte(byte(n.Value))
	case NodeSequence:
		for _, child := range n.Children {
			c.compileNode(child)
		}
	case NodeAlternation:
		c.emitOp(OpSplitPrioritizeParent)
		splitOff := c.allocOffset()
		c.compileNode(n.Children[0])
		c.emitOp(OpJump)
		jumpOff := c.allocOffset()
		rightPos := c.compileNode(n.Children[1])
		c.patch(splitOff, rightPos)
		c.patch(jumpOff, c.here())
	case NodeLineStart:
		c.emitOp(OpLineStart)
	case NodeLineEnd:
		c.emitOp(OpLineEnd)
	case NodeWordBoundary:
		c.emitOp(OpWordBoundary)
	case NodeNotWordBoundary:
		c.emitOp(OpNotWordBoundary)
	case NodeSubjectBegin:
		c.emitOp(OpSubjectBegin)
	case NodeSubjectEnd:
		c.emitOp(OpSubjectEnd)
	}

	if capture != noCapture {
		c.emitOp(OpSave)
		c.emitByte(byte(capture*2 + 1))
	}

	return startPos
}
