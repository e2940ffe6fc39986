package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-file", Func(func(string) {}).Desc("program file"))
	executor.Define("-tap", Func(func() {}).Desc("inspect faults").Alias("-debug"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	for _, expected := range []string{
		"-file <string>",
		"program file",
		"-tap, -debug",
		"-h, help, -help, --help",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("%q not in %q", expected, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Fatalf("got %v lines: %q", n, out)
	}
}

func TestDescribe(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-rom-size", Func(func(int) {}))
	executor.Describe("-rom-size", "instruction memory capacity")
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	if out := buf.String(); !strings.Contains(out, "-rom-size <int>") ||
		!strings.Contains(out, "instruction memory capacity") {
		t.Fatalf("got %q", out)
	}

	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Describe("-ram-size", "data memory size")
}
