// Package log configures apex/log for the not command and exposes leveled
// helpers. Diagnostics always go to a stream separate from the filtered
// output.
package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// Levels accepted by Init and ParseLevel.
var levels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// ParseLevel maps a level name to an apex level. Case-insensitive.
func ParseLevel(s string) (log.Level, error) {
	if l, ok := levels[strings.ToLower(s)]; ok {
		return l, nil
	}
	return log.ErrorLevel, fmt.Errorf("unknown log level %q", s)
}

// Init installs the handler writing to w (os.Stderr when nil) at the given
// level. Unknown levels fall back to error.
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l, err := ParseLevel(level)
	if err != nil {
		l = log.ErrorLevel
	}
	log.SetHandler(&Handler{w: w, now: time.Now})
	log.SetLevel(l)
}

// Handler formats entries as "time L message key=value ...".
type Handler struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	var b strings.Builder
	b.WriteString(h.now().Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	b.WriteString(levelLetter(e.Level))
	b.WriteByte(' ')
	b.WriteString(e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func levelLetter(l log.Level) string {
	switch l {
	case log.DebugLevel:
		return "D"
	case log.InfoLevel:
		return "I"
	case log.WarnLevel:
		return "W"
	case log.ErrorLevel:
		return "E"
	case log.FatalLevel:
		return "F"
	default:
		return "?"
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// WithField returns an entry carrying key=value.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
