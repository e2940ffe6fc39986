package bfvm

import (
	"bytes"
	"errors"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	for _, jumpTable := range []bool{false, true} {
		m, out := newTestMachine(t, helloWorld, "", WithJumpTable(jumpTable))
		for range 500 {
			if step(t, m) {
				t.Fatal("should not halt")
			}
		}
		prefix := out.String()

		buf := new(bytes.Buffer)
		if err := m.Snapshot(buf); err != nil {
			t.Fatal(err)
		}

		out2 := new(bytes.Buffer)
		restored := New(0, 0, WithOutput(out2), WithJumpTable(jumpTable))
		if err := restored.Restore(buf); err != nil {
			t.Fatal(err)
		}
		if restored.IP() != m.IP() || restored.DP() != m.DP() || restored.Cycles() != m.Cycles() {
			t.Fatalf("got %v %v %v", restored.IP(), restored.DP(), restored.Cycles())
		}
		if !bytes.Equal(restored.Data().Bytes(), m.Data().Bytes()) {
			t.Fatal("data mismatch")
		}
		runToHalt(t, restored)
		if prefix+out2.String() != "Hello World!\n" {
			t.Fatalf("got %q + %q", prefix, out2.String())
		}

		// capacity travels with the snapshot
		if err := restored.LoadProgram(make([]byte, 256)); err != nil {
			t.Fatal(err)
		}
		if err := restored.LoadProgram(make([]byte, 257)); !errors.Is(err, ErrProgramTooLarge) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestSnapshotPending(t *testing.T) {
	m, _ := newTestMachine(t, "+.", "")
	step(t, m)
	step(t, m)
	state := m.State()
	if !state.HasPending || state.Pending != 1 {
		t.Fatalf("got %+v", state)
	}

	out := new(bytes.Buffer)
	restored := New(0, 0, WithOutput(out))
	if err := restored.SetState(state); err != nil {
		t.Fatal(err)
	}
	if !step(t, restored) {
		t.Fatal("should halt")
	}
	if !bytes.Equal(out.Bytes(), []byte{1}) {
		t.Fatalf("got %q", out.Bytes())
	}
}

func TestSetStateTooLarge(t *testing.T) {
	m := New(1, 1)
	err := m.SetState(State{
		ROMSize: 1,
		Program: []byte("++"),
	})
	if !errors.Is(err, ErrProgramTooLarge) {
		t.Fatalf("got %v", err)
	}
}

func TestRestoreBadInput(t *testing.T) {
	m := New(1, 1)
	if err := m.Restore(bytes.NewReader([]byte{0xff, 0x00})); err == nil {
		t.Fatal("should error")
	}
}
