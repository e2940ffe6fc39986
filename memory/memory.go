package memory

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("address out of bounds")

type OutOfBoundsError struct {
	Address int
	Size    int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: address %d, size %d", ErrOutOfBounds, e.Address, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Memory is a fixed-size byte buffer. Its length never changes after creation.
type Memory struct {
	cells []byte
}

func New(size int) *Memory {
	if size < 0 {
		panic(fmt.Errorf("negative memory size: %d", size))
	}
	return &Memory{
		cells: make([]byte, size),
	}
}

func FromBytes(b []byte) *Memory {
	cells := make([]byte, len(b))
	copy(cells, b)
	return &Memory{
		cells: cells,
	}
}

func (m *Memory) Len() int {
	return len(m.cells)
}

func (m *Memory) check(addr int) error {
	if addr < 0 || addr >= len(m.cells) {
		return &OutOfBoundsError{
			Address: addr,
			Size:    len(m.cells),
		}
	}
	return nil
}

func (m *Memory) Read(addr int) (byte, error) {
	if err := m.check(addr); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

func (m *Memory) Write(addr int, value byte) error {
	if err := m.check(addr); err != nil {
		return err
	}
	m.cells[addr] = value
	return nil
}

func (m *Memory) Bytes() []byte {
	ret := make([]byte, len(m.cells))
	copy(ret, m.cells)
	return ret
}

func (m *Memory) Clear() {
	clear(m.cells)
}
