package tnfa

import "fmt"

// SyntaxError reports an ill-formed pattern: an unclosed group or
// class, an empty alternative, a bad range, an unknown escape, invalid
// UTF-8, or a missing "}". Error renders a position marker so a caller
// can point a user at the offending byte offset in the pattern.
type SyntaxError struct {
	msg     string
	pattern string
	pos     int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex parse error: %s at '%s«HERE»%s'", e.msg, e.pattern[:e.pos], e.pattern[e.pos:])
}

var _ error = (*SyntaxError)(nil)

func newSyntaxError(pattern string, pos int, msg string) *SyntaxError {
	return &SyntaxError{msg: msg, pattern: pattern, pos: pos}
}

// InternalError reports a violated bytecode invariant (a Jump/Split
// offset that does not land on an opcode boundary, an unknown opcode,
// a matcher id out of range). It should never surface for a program
// produced by Compile; it exists for Dump and hand-assembled programs.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return "tnfa: internal error: " + e.msg
}

var _ error = (*InternalError)(nil)

func newInternalError(msg string) *InternalError {
	return &InternalError{msg: msg}
}
