package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type consoleStyles struct {
	debug, info, ok, warn, err lipgloss.Style
	attr                       lipgloss.Style
}

func newConsoleStyles(r *lipgloss.Renderer) consoleStyles {
	return consoleStyles{
		debug: r.NewStyle().Foreground(lipgloss.Color("241")),
		info:  r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		attr:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ConsoleHandler is a slog.Handler printing one colour-coded status line per
// record: "[info]", "[ok]", "[warn]" or "[err]", the message, then attributes
// as key=value pairs. Colours are dropped when the writer is not a terminal.
type ConsoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	styles consoleStyles
	attrs  []slog.Attr
	prefix string
}

// NewConsoleHandler creates a handler writing records at or above level to w.
// A nil level means slog.LevelInfo.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:     &sync.Mutex{},
		w:      w,
		level:  level,
		styles: newConsoleStyles(lipgloss.NewRenderer(w)),
	}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.label(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	var pairs []string
	for _, a := range h.attrs {
		pairs = appendAttr(pairs, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		pairs = appendAttr(pairs, h.prefix, a)
		return true
	})
	if len(pairs) > 0 {
		b.WriteByte(' ')
		b.WriteString(h.styles.attr.Render(strings.Join(pairs, " ")))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *ConsoleHandler) label(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.styles.err.Render("[err]")
	case level >= slog.LevelWarn:
		return h.styles.warn.Render("[warn]")
	case level >= LevelOK:
		return h.styles.ok.Render("[ok]")
	case level >= slog.LevelInfo:
		return h.styles.info.Render("[info]")
	default:
		return h.styles.debug.Render("[debug]")
	}
}

func appendAttr(pairs []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return pairs
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range group {
			pairs = appendAttr(pairs, prefix, ga)
		}
		return pairs
	}

	value := a.Value.String()
	if strings.ContainsAny(value, " \t\"=") {
		value = fmt.Sprintf("%q", value)
	}
	return append(pairs, prefix+a.Key+"="+value)
}
