package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// Step flushes pending output, then executes the instruction at the instruction pointer.
// It reports true once the instruction pointer has passed the end of the program.
func (m *Machine) Step() (bool, error) {

	// output staged by the previous instruction
	if m.hasPending {
		if _, err := m.output.Write([]byte{m.pending}); err != nil {
			return false, m.fault(0, fmt.Errorf("write output: %w", err))
		}
		m.pending = 0
		m.hasPending = false
	}

	if m.ip >= m.rom.Len() {
		return true, nil
	}

	b, err := m.rom.Read(m.ip)
	if err != nil {
		return false, m.fault(0, err)
	}
	op := OpCode(b)

	switch op {

	case OpRight:
		m.dp++
		m.ip++

	case OpLeft:
		m.dp--
		m.ip++

	case OpInc, OpDec:
		value, err := m.ram.Read(m.dp)
		if err != nil {
			return false, m.fault(op, err)
		}
		if op == OpInc {
			value++
		} else {
			value--
		}
		if err := m.ram.Write(m.dp, value); err != nil {
			return false, m.fault(op, err)
		}
		m.ip++

	case OpLoopStart:
		value, err := m.ram.Read(m.dp)
		if err != nil {
			return false, m.fault(op, err)
		}
		if value != 0 {
			m.ip++
			break
		}
		end, err := m.matcher.forward(m.rom, m.ip)
		if err != nil {
			return false, m.fault(op, err)
		}
		m.ip = end + 1

	case OpLoopEnd:
		value, err := m.ram.Read(m.dp)
		if err != nil {
			return false, m.fault(op, err)
		}
		if value == 0 {
			m.ip++
			break
		}
		start, err := m.matcher.backward(m.rom, m.ip)
		if err != nil {
			return false, m.fault(op, err)
		}
		m.ip = start

	case OpOutput:
		value, err := m.ram.Read(m.dp)
		if err != nil {
			return false, m.fault(op, err)
		}
		m.stage(value)
		m.ip++

	case OpInput:
		value, err := m.input.ReadByte()
		if errors.Is(err, io.EOF) {
			m.ip++
			break
		}
		if err != nil {
			return false, m.fault(op, fmt.Errorf("read input: %w", err))
		}
		// a successful read does not advance the instruction pointer
		if err := m.ram.Write(m.dp, value); err != nil {
			return false, m.fault(op, err)
		}

	default:
		m.ip++
	}

	m.cycles++
	return false, nil
}

func (m *Machine) stage(value byte) {
	if value == 0 && m.zeroSentinel {
		m.pending = 0
		m.hasPending = false
		return
	}
	m.pending = value
	m.hasPending = true
}

func (m *Machine) fault(op OpCode, err error) error {
	m.logger.Debug("machine fault",
		"ip", m.ip,
		"dp", m.dp,
		"error", err,
	)
	return &Fault{
		IP:  m.ip,
		Op:  op,
		Err: err,
	}
}
