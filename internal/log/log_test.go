package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/uriparser/internal/log"
	"github.com/ghettovoice/uriparser/uri"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, dev := range []bool{false, true} {
		var buf bytes.Buffer
		logger := log.New(&buf, dev, slog.LevelInfo)
		logger.Info("resolved",
			"target", uri.MustParse("http://example.com/a?b=1"),
			"pairs", uri.DecodeWWWForm("b=1"),
		)
		logger.Debug("hidden")

		out := buf.String()
		if !strings.Contains(out, "http://example.com/a?b=1") {
			t.Errorf("log.New(buf, %v, info) output %q does not contain the URI", dev, out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("log.New(buf, %v, info) output %q contains debug record", dev, out)
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("log.Noop.Enabled(ctx, error) = true, want false")
	}
}

func TestFmtValue(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }
	if got, want := log.FmtValue(pair{1, 2}, false).LogValue().String(), "{A:1 B:2}"; got != want {
		t.Errorf("log.FmtValue(v, false) = %q, want %q", got, want)
	}
	if got, want := log.StringValue([]byte("abc")).LogValue().String(), "abc"; got != want {
		t.Errorf("log.StringValue(v) = %q, want %q", got, want)
	}
}
