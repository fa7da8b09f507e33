package tnfa

// QuantifierKind identifies the shape of a repetition operator.
type QuantifierKind int

const (
	QuantOne QuantifierKind = iota
	QuantOptional
	QuantZeroOrMore
	QuantOneOrMore
	QuantRange
)

// Quantifier is the tagged {kind, min, max} record attached to every
// Node. Min and Max are only meaningful for QuantRange; there, Max ==
// -1 denotes no upper bound.
type Quantifier struct {
	Kind QuantifierKind
	Min  int
	Max  int
}

var quantOne = Quantifier{Kind: QuantOne}

// AllowsNone reports whether zero repetitions are permitted.
func (q Quantifier) AllowsNone() bool {
	switch q.Kind {
	case QuantOptional, QuantZeroOrMore:
		return true
	case QuantRange:
		return q.Min <= 0
	default:
		return false
	}
}

// AllowsInfinite reports whether there is no upper bound on repetitions.
func (q Quantifier) AllowsInfinite() bool {
	switch q.Kind {
	case QuantZeroOrMore, QuantOneOrMore:
		return true
	case QuantRange:
		return q.Max == -1
	default:
		return false
	}
}

// NodeOp identifies the operator an AST Node represents.
type NodeOp int

const (
	NodeLiteral NodeOp = iota
	NodeAnyChar
	NodeMatcherRef
	NodeSequence
	NodeAlternation
	NodeLineStart
	NodeLineEnd
	NodeWordBoundary
	NodeNotWordBoundary
	NodeSubjectBegin
	NodeSubjectEnd
)

// noCapture marks a Sequence/Alternation node that does not open a
// capture group.
const noCapture = -1

// Node is an abstract-syntax-tree node. Value holds the literal
// codepoint for NodeLiteral, the matcher-table index for
// NodeMatcherRef, or the capture-group index for a Sequence/
// Alternation that opens a group (noCapture otherwise).
type Node struct {
	Op         NodeOp
	Value      int
	Quantifier Quantifier
	Children   []*Node
}

func newNode(op NodeOp) *Node {
	return &Node{Op: op, Value: noCapture, Quantifier: quantOne}
}

func literalNode(cp rune) *Node {
	return &Node{Op: NodeLiteral, Value: int(cp), Quantifier: quantOne}
}

// ParsedRegex is the parser's output: an AST plus the matcher table
// its NodeMatcherRef nodes index into and the total capture count
// (including implicit group 0).
type ParsedRegex struct {
	AST          *Node
	CaptureCount int
	Matchers     []Matcher
}
