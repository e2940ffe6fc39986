package bfvm

type OpCode byte

const (
	OpRight     OpCode = '>'
	OpLeft      OpCode = '<'
	OpInc       OpCode = '+'
	OpDec       OpCode = '-'
	OpLoopStart OpCode = '['
	OpLoopEnd   OpCode = ']'
	OpOutput    OpCode = '.'
	OpInput     OpCode = ','
)

// IsOp reports whether b is one of the eight instructions. Every other byte is a no-op.
func IsOp(b byte) bool {
	switch OpCode(b) {
	case OpRight, OpLeft, OpInc, OpDec, OpLoopStart, OpLoopEnd, OpOutput, OpInput:
		return true
	}
	return false
}
