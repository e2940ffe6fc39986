package bfvm

import (
	"fmt"

	"github.com/reusee/taibf/memory"
)

// matcher resolves loop jumps.
// forward returns the position of the ']' matching the '[' at ip,
// backward returns the position of the '[' matching the ']' at ip.
type matcher interface {
	forward(program *memory.Memory, ip int) (int, error)
	backward(program *memory.Memory, ip int) (int, error)
}

func unmatched(op OpCode, ip int) error {
	return fmt.Errorf("%w: %c at %d", ErrUnmatchedBracket, op, ip)
}

// scanMatcher rescans the program with a nesting counter on every jump.
type scanMatcher struct{}

var _ matcher = scanMatcher{}

func (scanMatcher) forward(program *memory.Memory, ip int) (int, error) {
	depth := 0
	for pos := ip + 1; ; pos++ {
		b, err := program.Read(pos)
		if err != nil {
			return 0, unmatched(OpLoopStart, ip)
		}
		switch OpCode(b) {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			if depth == 0 {
				return pos, nil
			}
			depth--
		}
	}
}

func (scanMatcher) backward(program *memory.Memory, ip int) (int, error) {
	depth := 0
	for pos := ip - 1; ; pos-- {
		b, err := program.Read(pos)
		if err != nil {
			return 0, unmatched(OpLoopEnd, ip)
		}
		switch OpCode(b) {
		case OpLoopEnd:
			depth++
		case OpLoopStart:
			if depth == 0 {
				return pos, nil
			}
			depth--
		}
	}
}

// tableMatcher holds jump targets computed once per loaded program.
// Unmatched brackets map to -1 and fail only when a jump needs them.
type tableMatcher struct {
	jumps []int
}

var _ matcher = new(tableMatcher)

func newTableMatcher(program []byte) *tableMatcher {
	jumps := make([]int, len(program))
	var stack []int
	for pos, b := range program {
		jumps[pos] = -1
		switch OpCode(b) {
		case OpLoopStart:
			stack = append(stack, pos)
		case OpLoopEnd:
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = pos
			jumps[pos] = open
		}
	}
	return &tableMatcher{
		jumps: jumps,
	}
}

func (t *tableMatcher) lookup(ip int) int {
	if ip < 0 || ip >= len(t.jumps) {
		return -1
	}
	return t.jumps[ip]
}

func (t *tableMatcher) forward(_ *memory.Memory, ip int) (int, error) {
	target := t.lookup(ip)
	if target < 0 {
		return 0, unmatched(OpLoopStart, ip)
	}
	return target, nil
}

func (t *tableMatcher) backward(_ *memory.Memory, ip int) (int, error) {
	target := t.lookup(ip)
	if target < 0 {
		return 0, unmatched(OpLoopEnd, ip)
	}
	return target, nil
}
