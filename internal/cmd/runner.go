// Package cmd drives the lexical front end: it reads a source file,
// tokenizes it, and renders the token dump.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ncc/internal/diagnostics"
	"ncc/internal/frontend/lexer"
)

// Options configures a single run of the front end. Populated from the
// command line and immutable afterwards.
type Options struct {
	Verbose      bool     // -v: report phase progress on stderr
	OutputPath   string   // -o: write the token dump here instead of stdout
	Defines      []string // -D macro definitions (reserved for the preprocessor)
	IncludePaths []string // -I header search paths (reserved for the preprocessor)
	Std          string   // -std=: language standard
}

// Runner owns one lex-and-dump pass over a source file.
// Lexical errors land in Diagnostics; Run also returns them.
type Runner struct {
	Options     *Options
	Diagnostics *diagnostics.Bag
}

// NewRunner creates a runner with the given options.
func NewRunner(options *Options) *Runner {
	if options == nil {
		options = &Options{}
	}
	return &Runner{
		Options:     options,
		Diagnostics: diagnostics.NewBag(),
	}
}

// Run tokenizes the file at path and writes the dump to w, or to
// Options.OutputPath when set. On a lexical error no dump is produced.
func (r *Runner) Run(path string, w io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read %s: %w", path, err)
	}

	if r.Options.Verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing %s (%d bytes)\n", path, len(content))
	}

	tokenizer := lexer.New(path, string(content))
	tokens, err := tokenizer.Tokenize()
	if err != nil {
		r.Diagnostics.Add(diagnosticFromError(err))
		return fmt.Errorf("lexer failed on %s: %w", path, err)
	}

	if r.Options.Verbose {
		fmt.Fprintf(os.Stderr, "  Generated %d token(s)\n", len(tokens))
	}

	dump := lexer.Dump(tokens)
	if r.Options.OutputPath != "" {
		if err := os.WriteFile(r.Options.OutputPath, []byte(dump+"\n"), 0644); err != nil {
			return fmt.Errorf("couldn't write %s: %w", r.Options.OutputPath, err)
		}
		return nil
	}

	fmt.Fprintln(w, dump)
	return nil
}

// diagnosticFromError converts a lexer error into a diagnostic, keeping
// its code and location when it carries them.
func diagnosticFromError(err error) *diagnostics.Diagnostic {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return diagnostics.NewError(lexErr.Message).
			WithCode(string(lexErr.Code)).
			WithLocation(lexErr.Location)
	}
	return diagnostics.NewError(err.Error())
}
