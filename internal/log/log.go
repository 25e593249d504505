// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/uriparser/internal/constraints"
	"github.com/ghettovoice/uriparser/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(e *uri.SyntaxError) slog.Value {
		return slog.GroupValue(
			slog.String("message", e.Error()),
			slog.Int("pos", e.Pos),
			slog.String("remainder", e.Remainder()),
		)
	}),
	slogformatter.FormatByType(func(pairs []uri.FormPair) slog.Value {
		attrs := make([]slog.Attr, 0, len(pairs))
		for _, p := range pairs {
			if p.HasValue {
				attrs = append(attrs, slog.String(p.Key, p.Value))
			} else {
				attrs = append(attrs, slog.Bool(p.Key, true))
			}
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(c *uri.Components) slog.Value {
		return slog.GroupValue(
			slog.String("scheme", c.Scheme),
			slog.String("userinfo", c.UserInfo),
			slog.String("host", c.Host),
			slog.String("port", c.Port),
			slog.String("path", c.Path),
			slog.String("query", c.Query),
			slog.String("fragment", c.Fragment),
		)
	}),
)

// New creates a logger writing to w.
// Dev mode uses the verbose developer handler, otherwise the compact console handler is used.
func New(w io.Writer, dev bool, level slog.Leveler) *slog.Logger {
	if dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger writing to stderr.
var Def = New(os.Stderr, false, slog.LevelDebug)

// Dev is a developer logger writing to stderr.
var Dev = New(os.Stderr, true, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
