package bfvm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/taibf/memory"
)

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("bfvm: snapshot enc mode: %w", err))
	}
	snapshotEncMode = em
}

// State is the serialized form of a machine.
type State struct {
	IP         int    `cbor:"1,keyasint"`
	DP         int    `cbor:"2,keyasint"`
	ROMSize    int    `cbor:"3,keyasint"`
	Program    []byte `cbor:"4,keyasint"`
	Data       []byte `cbor:"5,keyasint"`
	Pending    byte   `cbor:"6,keyasint"`
	HasPending bool   `cbor:"7,keyasint"`
	Cycles     int    `cbor:"8,keyasint"`
}

func (m *Machine) State() State {
	return State{
		IP:         m.ip,
		DP:         m.dp,
		ROMSize:    m.romSize,
		Program:    m.rom.Bytes(),
		Data:       m.ram.Bytes(),
		Pending:    m.pending,
		HasPending: m.hasPending,
		Cycles:     m.cycles,
	}
}

func (m *Machine) SetState(state State) error {
	if len(state.Program) > state.ROMSize {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrProgramTooLarge, len(state.Program), state.ROMSize)
	}
	m.ip = state.IP
	m.dp = state.DP
	m.romSize = state.ROMSize
	m.rom = memory.FromBytes(state.Program)
	m.ram = memory.FromBytes(state.Data)
	m.pending = state.Pending
	m.hasPending = state.HasPending
	m.cycles = state.Cycles
	m.matcher = m.newMatcher(state.Program)
	return nil
}

func (m *Machine) Snapshot(w io.Writer) error {
	if err := snapshotEncMode.NewEncoder(w).Encode(m.State()); err != nil {
		return fmt.Errorf("bfvm: encode snapshot: %w", err)
	}
	return nil
}

func (m *Machine) Restore(r io.Reader) error {
	var state State
	if err := cbor.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("bfvm: decode snapshot: %w", err)
	}
	return m.SetState(state)
}
