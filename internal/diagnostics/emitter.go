package diagnostics

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Emitter renders diagnostics one per line:
//
//	error[L0001]: missing ending at (main.c:3:5)
//
// Severity headers are colored when the writer supports it; termenv
// degrades to plain text otherwise.
type Emitter struct {
	out *termenv.Output
}

// NewEmitter creates an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{out: termenv.NewOutput(w)}
}

// Emit renders a single diagnostic.
func (e *Emitter) Emit(d *Diagnostic) {
	head := d.Severity.String()
	if d.Code != "" {
		head = fmt.Sprintf("%s[%s]", d.Severity, d.Code)
	}
	styled := e.out.String(head).Foreground(e.severityColor(d.Severity)).Bold()

	fmt.Fprintf(e.out, "%s: %s", styled, d.Message)
	if d.Location != nil {
		fmt.Fprintf(e.out, " at (%s)", d.Location)
	}
	fmt.Fprintln(e.out)

	if d.Help != "" {
		fmt.Fprintf(e.out, "  help: %s\n", d.Help)
	}
}

func (e *Emitter) severityColor(s Severity) termenv.Color {
	switch s {
	case Error:
		return termenv.ANSIRed
	case Warning:
		return termenv.ANSIYellow
	case Info:
		return termenv.ANSIBlue
	default:
		return termenv.ANSICyan
	}
}
