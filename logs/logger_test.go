package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("halted", "ip", 42)
		if !strings.Contains(buf.String(), "ip=42") {
			t.Fatalf("got %q", buf.String())
		}

		logger.With("machine", "a").Info("with attrs")
		if !strings.Contains(buf.String(), "machine=a") {
			t.Fatalf("got %q", buf.String())
		}

		buf.Reset()
		ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
		logger.ErrorContext(ctx, "execution halted", "error", "fault")
		if n := strings.Count(buf.String(), "abc"); n != 1 {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestJournalKey(t *testing.T) {
	if key := journalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %v", key)
	}
}
