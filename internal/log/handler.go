package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxValueLen is the maximum length in bytes of a string attribute value.
const MaxValueLen = 256

// TruncatedSuffix is appended to string values that were shortened.
const TruncatedSuffix = "...(truncated)"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// RunIDKey is the attribute key that identifies a run.
const RunIDKey = "run_id"

// SanitizeHandler wraps an slog.Handler and bounds string attribute values.
// Long values are truncated on a rune boundary and invalid UTF-8 is
// replaced with U+FFFD.
type SanitizeHandler struct {
	// handler receives the sanitized records.
	handler slog.Handler
}

// NewSanitizeHandler creates a SanitizeHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSanitizeHandler(handler slog.Handler) *SanitizeHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SanitizeHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *SanitizeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it on.
func (h *SanitizeHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, sanitizeString(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a handler with the sanitized attributes added.
func (h *SanitizeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitized := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitized[i] = sanitizeAttr(a)
	}
	return &SanitizeHandler{handler: h.handler.WithAttrs(sanitized)}
}

// WithGroup returns a handler with the given group name.
func (h *SanitizeHandler) WithGroup(name string) slog.Handler {
	return &SanitizeHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes one attribute, recursing into groups.
func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		sanitized := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			sanitized[i] = sanitizeAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitized...)}
	case slog.KindString:
		return slog.String(a.Key, sanitizeString(a.Value.String()))
	case slog.KindAny:
		if s, ok := a.Value.Any().(fmt.Stringer); ok {
			return slog.String(a.Key, sanitizeString(s.String()))
		}
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, sanitizeString(err.Error()))
		}
	}
	return a
}

// sanitizeString replaces invalid UTF-8 and truncates s to MaxValueLen bytes.
func sanitizeString(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	if len(s) <= MaxValueLen {
		return s
	}
	cut := MaxValueLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + TruncatedSuffix
}

// Options configures New.
type Options struct {
	// Verbose sets the level to Debug; otherwise Warn.
	Verbose bool

	// Format is FormatText or FormatJSON. Empty means FormatText.
	Format string
}

// New creates a sanitizing logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.Format == FormatJSON {
		return NewJSONLogger(w, opts.Verbose)
	}
	return NewLogger(w, opts.Verbose)
}

// NewLogger creates a sanitizing text logger.
// If verbose is true the level is Debug; otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSanitizeHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a sanitizing JSON logger.
// If verbose is true the level is Debug; otherwise Warn.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSanitizeHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}

// WithRunID returns a logger that tags every record with a fresh random
// run ID, together with that ID.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return logger.With(RunIDKey, id), id
}
