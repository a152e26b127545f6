package lexer

import "strings"

// Dump renders the non-trivia tokens one per line for diagnostic output.
// Lines are joined with a single newline, no trailing newline; zero
// qualifying tokens render as the empty string.
func Dump(tokens []Token) string {
	var b strings.Builder
	first := true
	for _, tok := range tokens {
		if tok.IsTrivia() {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(tok.String())
		first = false
	}
	return b.String()
}
