package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedBracket = errors.New("unmatched bracket")
	ErrProgramTooLarge  = errors.New("program too large")
)

// Fault is a fatal condition raised by the instruction at IP.
// The machine is left in the state it had when the fault was detected.
type Fault struct {
	IP  int
	Op  OpCode
	Err error
}

func (f *Fault) Error() string {
	if IsOp(byte(f.Op)) {
		return fmt.Sprintf("fault at ip %d (%c): %v", f.IP, f.Op, f.Err)
	}
	return fmt.Sprintf("fault at ip %d: %v", f.IP, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
