package bfvm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
)

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newMachine NewMachine,
	) {
		out := new(bytes.Buffer)
		m := newMachine(strings.NewReader(""), out)
		if m.Data().Len() != bfconfigs.DefaultRAMSize {
			t.Fatalf("got %v", m.Data().Len())
		}
		if err := m.LoadProgram([]byte(helloWorld)); err != nil {
			t.Fatal(err)
		}
		if err := m.Run(t.Context()); err != nil {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestModuleConfigured(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() bfconfigs.RAMSize {
			return 2
		},
		func() bfconfigs.ZeroSentinel {
			return true
		},
	).Call(func(
		newMachine NewMachine,
	) {
		out := new(bytes.Buffer)
		m := newMachine(strings.NewReader(""), out)
		if m.Data().Len() != 2 {
			t.Fatalf("got %v", m.Data().Len())
		}
		if err := m.LoadProgram([]byte(".")); err != nil {
			t.Fatal(err)
		}
		if err := m.Run(t.Context()); err != nil {
			t.Fatal(err)
		}
		if out.Len() != 0 {
			t.Fatalf("got %q", out.Bytes())
		}
	})
}
