// Package tnfa implements a regular-expression engine over a
// restricted, ECMAScript-like pattern syntax. A pattern is parsed into
// an abstract syntax tree, compiled to a compact bytecode program, and
// executed against a UTF-8 subject by a threaded (Thompson-style NFA)
// virtual machine that reports submatch captures.
//
// Supported syntax:
//
//	.            any codepoint
//	a|b          alternation
//	(a)          capturing group
//	a* a+ a?     zero-or-more, one-or-more, zero-or-one (greedy)
//	a{n} a{n,} a{n,m} a{,m}   bounded repetition
//	[a-z] [^a-z] bracket character class, with \d \D \w \W \s \S inside
//	\d \D \w \W \s \S         character-class escapes
//	\f \n \r \t \v            control-character escapes
//	^ $                       line-start / line-end anchors
//	\b \B                     word-boundary / non-word-boundary anchors
//	\` \'                     subject-begin / subject-end anchors
//
// Not supported: lookahead/lookbehind, backreferences, named captures,
// case-insensitive/multiline/dotall flags, numeric or hex escapes,
// atomic groups, possessive quantifiers, and lazy quantifiers.
//
// Matching is priority-order (leftmost, greedy), not POSIX
// leftmost-longest: where a pattern is ambiguous, the earliest
// alternative and the greediest repetition wins, exactly as it would
// walking the bytecode by hand.
package tnfa
