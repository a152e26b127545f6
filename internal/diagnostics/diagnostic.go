// Package diagnostics collects and renders compiler diagnostics.
package diagnostics

import (
	"ncc/internal/source"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic is a single compiler message.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // error code like "L0001"
	Location *source.Location
	Help     string // suggestion for fixing the error
}

// NewError creates a new error diagnostic.
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewWarning creates a new warning diagnostic.
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

// NewInfo creates a new info diagnostic.
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{Severity: Info, Message: message}
}

// WithCode sets the error code.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLocation attaches a source location.
func (d *Diagnostic) WithLocation(loc source.Location) *Diagnostic {
	d.Location = &loc
	return d
}

// WithHelp sets a suggestion for fixing the error.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
