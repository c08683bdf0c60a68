// Package diag is the diagnostic sink for the backend. The compiler path
// collects messages in memory and keeps going; tool surfaces can route the
// same messages through commonlog.
package diag

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/vela-lang/vela/pkg/tree"
)

// Severity ranks a diagnostic.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Reporter receives diagnostics. Implementations must not panic; the
// surrounding compilation continues after every report.
type Reporter interface {
	Errorf(pos tree.Pos, format string, args ...any)
	Warnf(pos tree.Pos, format string, args ...any)
}

// Diagnostic is one collected message.
type Diagnostic struct {
	Severity Severity
	Pos      tree.Pos
	Message  string
}

// String renders the diagnostic as "pos: severity: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Collector accumulates diagnostics in order. The zero value is ready to
// use. Collector is not safe for concurrent use; each compilation phase
// owns its own.
type Collector struct {
	diags []Diagnostic
}

func (c *Collector) Errorf(pos tree.Pos, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{SeverityError, pos, fmt.Sprintf(format, args...)})
}

func (c *Collector) Warnf(pos tree.Pos, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{SeverityWarning, pos, fmt.Sprintf(format, args...)})
}

// Diagnostics returns the collected messages in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err summarizes collected errors as a single error, or nil.
func (c *Collector) Err() error {
	var msgs []string
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			msgs = append(msgs, d.String())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%d error(s):\n%s", len(msgs), strings.Join(msgs, "\n"))
}

// Logger routes diagnostics to a commonlog logger. Used by CLI surfaces;
// the compiler path prefers Collector.
type Logger struct {
	log commonlog.Logger
}

// NewLogger creates a reporter logging under the given name hierarchy.
func NewLogger(name ...string) *Logger {
	return &Logger{log: commonlog.GetLogger(strings.Join(name, "."))}
}

func (l *Logger) Errorf(pos tree.Pos, format string, args ...any) {
	l.log.Errorf("%s: %s", pos, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(pos tree.Pos, format string, args ...any) {
	l.log.Warningf("%s: %s", pos, fmt.Sprintf(format, args...))
}
