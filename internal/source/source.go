// Package source provides source positions shared by the frontend and
// diagnostics.
package source

import "fmt"

// Location is an immutable (file, line, column) triple. Line and column
// are 1-based; column counts bytes since the start of the current line.
type Location struct {
	File   string
	Line   int
	Column int
}

// NewLocation creates a location for the given file position.
func NewLocation(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// String renders the location as "file:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
