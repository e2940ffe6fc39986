package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"ip": 42,
		})
	})
}

func TestGlobalsDict(t *testing.T) {
	dict := stringDict(map[string]any{
		"ip":   1,
		"data": []byte{0, 3},
	})
	if len(dict) != 2 {
		t.Fatalf("got %v", dict)
	}
	if s := dict["ip"].String(); s != "1" {
		t.Fatalf("got %v", s)
	}
}

func TestGlobalsDictFuncs(t *testing.T) {
	ip := 0
	dict := stringDict(map[string]any{
		"ip": func() int {
			return ip
		},
		"step": func() {
			ip++
		},
	})
	thread := new(starlark.Thread)
	eval := func(src string) string {
		v, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "", src, dict)
		if err != nil {
			t.Fatal(err)
		}
		return v.String()
	}
	if s := eval("ip()"); s != "0" {
		t.Fatalf("got %v", s)
	}
	eval("step()")
	if s := eval("ip()"); s != "1" {
		t.Fatalf("got %v", s)
	}
}
