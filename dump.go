package tnfa

import (
	"fmt"
	"io"
)

// Dump writes a disassembly of p's bytecode to w, one instruction per
// line, prefixed by its byte offset. It is a developer diagnostic, not
// a stable machine-readable format.
func (p *Program) Dump(w io.Writer) error {
	code := p.bytecode
	pos := 0
	for pos < len(code) {
		start := pos
		op := code[pos]
		pos++

		switch op {
		case OpLiteral:
			cp, width := decodeCodepoint(code[pos:])
			pos += width
			if _, err := fmt.Fprintf(w, "%6d  literal %q\n", start, cp); err != nil {
				return err
			}
		case OpJump, OpSplitPrioritizeParent, OpSplitPrioritizeChild:
			if pos+offsetSize > len(code) {
				return newInternalError(fmt.Sprintf("truncated offset operand at %d", start))
			}
			target := getOffset(code[pos:])
			pos += offsetSize
			if _, err := fmt.Fprintf(w, "%6d  %s %d\n", start, opName(op), target); err != nil {
				return err
			}
		case OpSave, OpMatcher:
			if pos >= len(code) {
				return newInternalError(fmt.Sprintf("truncated byte operand at %d", start))
			}
			arg := code[pos]
			pos++
			if _, err := fmt.Fprintf(w, "%6d  %s %d\n", start, opName(op), arg); err != nil {
				return err
			}
		default:
			if int(op) >= len(opNames) || opNames[op] == "" {
				return newInternalError(fmt.Sprintf("unknown opcode %d at offset %d", op, start))
			}
			if _, err := fmt.Fprintf(w, "%6d  %s\n", start, opName(op)); err != nil {
				return err
			}
		}
	}
	return nil
}
