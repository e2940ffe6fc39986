package bfvm

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/memory"
)

type Machine struct {
	ip      int
	dp      int
	romSize int
	rom     *memory.Memory
	ram     *memory.Memory

	pending    byte
	hasPending bool
	// zeroSentinel treats a staged zero byte as nothing pending
	zeroSentinel bool

	jumpTable bool
	matcher   matcher

	input  io.ByteReader
	output io.Writer
	logger logs.Logger

	cycles int
}

type Option func(*Machine)

func WithInput(r io.Reader) Option {
	return func(m *Machine) {
		m.input = toByteReader(r)
	}
}

func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.output = w
	}
}

func WithLogger(logger logs.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

func WithJumpTable(enabled bool) Option {
	return func(m *Machine) {
		m.jumpTable = enabled
	}
}

func WithZeroSentinel(enabled bool) Option {
	return func(m *Machine) {
		m.zeroSentinel = enabled
	}
}

// New creates a machine with zero-filled instruction and data memories.
func New(romSize, ramSize int, options ...Option) *Machine {
	m := &Machine{
		romSize: romSize,
		rom:     memory.New(romSize),
		ram:     memory.New(ramSize),
		input:   toByteReader(os.Stdin),
		output:  os.Stdout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(m)
	}
	m.matcher = m.newMatcher(m.rom.Bytes())
	return m
}

func (m *Machine) newMatcher(program []byte) matcher {
	if m.jumpTable {
		return newTableMatcher(program)
	}
	return scanMatcher{}
}

// LoadProgram replaces the instruction memory with program and resets both pointers.
// Data memory is left untouched.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > m.romSize {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrProgramTooLarge, len(program), m.romSize)
	}
	m.rom = memory.FromBytes(program)
	m.matcher = m.newMatcher(program)
	m.ip = 0
	m.dp = 0
	return nil
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) DP() int {
	return m.dp
}

func (m *Machine) Cycles() int {
	return m.cycles
}

func (m *Machine) Data() *memory.Memory {
	return m.ram
}

func (m *Machine) Program() []byte {
	return m.rom.Bytes()
}

func (m *Machine) Pending() (byte, bool) {
	return m.pending, m.hasPending
}

type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

func toByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{
		r: r,
	}
}
