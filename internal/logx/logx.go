// Package logx provides the silent default logger shared by the editor
// packages. Stores accept an injected *slog.Logger and fall back to this
// one, so the editor produces no log output unless the caller opts in.
package logx

import (
	"context"
	"log/slog"
)

// nopHandler discards all records. Enabled returns false so callers skip
// message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that silently discards all output.
func Nop() *slog.Logger {
	return slog.New(nopHandler{})
}

// Or returns l, or the silent logger when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
