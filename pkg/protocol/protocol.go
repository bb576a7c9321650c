// Package protocol writes the `::kind::...` status lines read by medic.
package protocol

import (
	"io"
	"strings"
	"sync"
)

// Outdated is one outdated dependency as printed on an ::outdated:: line.
type Outdated struct {
	Name      string
	Installed string
	Latest    string
	Parent    string // empty for direct dependencies
}

// Writer emits status lines. It is safe for concurrent use; each line is
// written with a single Write call so lines never interleave mid-line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) line(parts ...string) {
	text := "::" + strings.Join(parts, "::") + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, text)
}

// Action announces an in-progress action, e.g. installing a helper.
func (s *Writer) Action(tag, message string) {
	s.line("action", tag, message)
}

// Info forwards a log line produced while an action runs.
func (s *Writer) Info(tag, message string) {
	s.line("info", tag, message)
}

// Success marks the action tagged tag as completed.
func (s *Writer) Success(tag string) {
	s.line("success", tag, "")
}

// Failure marks the action tagged tag as failed.
func (s *Writer) Failure(tag string) {
	s.line("failure", tag, "")
}

// FailureMessage reports a fatal failure that is not tied to an action.
func (s *Writer) FailureMessage(message string) {
	s.line("failure", message)
}

// Outdated reports one outdated dependency.
func (s *Writer) Outdated(d Outdated) {
	parts := []string{
		"outdated",
		"name=" + d.Name,
		"version=" + d.Installed,
		"latest=" + d.Latest,
	}
	if d.Parent != "" {
		parts = append(parts, "parent="+d.Parent)
	}
	s.line(parts...)
}

// Remedy suggests a command that fixes the reported problems.
func (s *Writer) Remedy(command string) {
	s.line("remedy", command)
}
