package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// verbose describes whether the logger should output information that is typically useful for debugging
	verbose = false

	out io.Writer = os.Stderr
	mu            = &sync.Mutex{}
)

// SetVerbose sets the verbosity of the logger. Verbose being true results in all logs being printed to user which
// typically is useful for debugging.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput changes where loggers created afterwards write. Logs go to stderr by default so
// rendered files printed on stdout can be piped. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()
	out = w
}

func new() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	return slog.New(&handler{
		out: out,
		mu:  mu,
	})
}

// handler prints records in a cli-friendly format and adheres to the verbose global
type handler struct {
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
	out    io.Writer
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	if verbose {
		return true
	}

	return l >= slog.LevelInfo
}

// Handle prints the message followed by its attributes. Levels are only shown for errors
// and timestamps only when verbose.
func (h *handler) Handle(_ context.Context, r slog.Record) error {
	output := []interface{}{r.Message}

	if r.Level > slog.LevelWarn {
		output = append([]interface{}{r.Level.String()}, output...)
	}

	r.Attrs(func(a slog.Attr) bool {
		output = append(output, a)
		return true
	})

	for _, attr := range h.attrs {
		output = append(output, attr)
	}

	if len(h.groups) != 0 {
		output = append(output, slog.String("group", strings.Join(h.groups, "-")))
	}

	if verbose && !r.Time.IsZero() {
		output = append(output, slog.String(slog.TimeKey, r.Time.Format("2006-01-02T15:04:05.999Z")))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	log.New(h.out, "", 0).Println(output...)

	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := *h
	h2.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(h2.attrs, h.attrs)
	h2.attrs = append(h2.attrs, attrs...)

	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)

	return &h2
}
