package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if tt != t {
			t.Fatal("should provide the test")
		}
	})
}

func TestModeString(t *testing.T) {
	if s := ModeProduction.String(); s != "production" {
		t.Fatalf("got %v", s)
	}
	if s := Mode(0).String(); s != "unknown" {
		t.Fatalf("got %v", s)
	}
}
