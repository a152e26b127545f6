// Package lexer converts a raw source buffer into an ordered sequence of
// located tokens.
//
// The tokenizer offers the current cursor position to a fixed-priority list
// of sub-scanners (comment, newline, whitespace, string, char, identifier,
// operator, number). The first one that consumes input wins the step; a byte
// no sub-scanner claims is skipped without a token. Every error is fatal and
// returned as a typed *Error carrying an error code and source location.
package lexer

import (
	"ncc/internal/source"
)

// cursor is the mutable scan position: byte index into the buffer plus the
// 1-based line and column of the next unconsumed byte. It is owned by the
// Tokenizer and only mutated by the sub-scanner that wins a dispatch step.
type cursor struct {
	index  int
	line   int
	column int
}

// Tokenizer scans a single in-memory source buffer. It is single-use:
// create one per scan.
type Tokenizer struct {
	file   string
	src    []byte
	cur    cursor
	tokens []Token
}

// New creates a tokenizer for the given file name and content. The content
// is held fully in memory; no I/O happens during scanning.
func New(file, content string) *Tokenizer {
	return &Tokenizer{
		file: file,
		src:  []byte(content),
		cur:  cursor{line: 1, column: 1},
	}
}

// Tokenize runs the dispatch loop over the whole buffer and returns the
// token sequence, trivia included. On a lexical error the partial sequence
// is discarded and the error returned.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	for t.cur.index < len(t.src) {
		consumed, err := t.step()
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		// No sub-scanner claimed the byte. Skip it without a token.
		t.cur.index++
		t.cur.column++
	}
	return t.tokens, nil
}

// step offers the cursor to each sub-scanner in priority order. Operator
// runs before number but only fires on punctuation, so digits always fall
// through to the number scanner.
func (t *Tokenizer) step() (bool, *Error) {
	for _, scan := range [...]func() (bool, *Error){
		t.scanComment,
		t.scanNewline,
		t.scanWhitespace,
		t.scanString,
		t.scanChar,
		t.scanIdentifier,
		t.scanOperator,
		t.scanNumber,
	} {
		consumed, err := scan()
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}
	return false, nil
}

// here is the location of the next unconsumed byte.
func (t *Tokenizer) here() source.Location {
	return source.NewLocation(t.file, t.cur.line, t.cur.column)
}

func (t *Tokenizer) add(loc source.Location, kind TokenKind, lexeme string) {
	t.tokens = append(t.tokens, Token{Location: loc, Kind: kind, Value: lexeme})
}

func (t *Tokenizer) scanComment() (bool, *Error) {
	if len(t.src)-t.cur.index < 2 || t.src[t.cur.index] != '/' {
		return false, nil
	}
	switch t.src[t.cur.index+1] {
	case '*':
		return t.scanBlockComment()
	case '/':
		return t.scanLineComment()
	}
	return false, nil
}

// scanBlockComment consumes "/* ... */". The emitted token is located at
// the opening "/*"; line and column advance across embedded newlines.
func (t *Tokenizer) scanBlockComment() (bool, *Error) {
	start := t.cur.index
	line, column := t.cur.line, t.cur.column
	t.cur.index += 2
	t.cur.column += 2

	for {
		// The closing "*/" needs two bytes; fewer means the comment
		// never terminates.
		if len(t.src)-t.cur.index < 2 {
			return false, t.errorAt(ErrUnterminatedComment, line, column, "'/*' missing ending")
		}

		c := t.src[t.cur.index]
		if c == '\n' {
			t.cur.line++
			t.cur.column = 1
			t.cur.index++
			continue
		}
		if c == '*' && t.src[t.cur.index+1] == '/' {
			t.cur.index += 2
			t.cur.column += 2
			t.add(source.NewLocation(t.file, line, column), COMMENT_TOKEN, string(t.src[start:t.cur.index]))
			return true, nil
		}
		t.cur.index++
		t.cur.column++
	}
}

// scanLineComment consumes "//..." up to but not including the terminating
// newline, which is left for the newline scanner. A line comment ended by
// end-of-buffer is valid.
func (t *Tokenizer) scanLineComment() (bool, *Error) {
	start := t.cur.index
	line, column := t.cur.line, t.cur.column
	t.cur.index += 2
	t.cur.column += 2

	for t.cur.index < len(t.src) && t.src[t.cur.index] != '\n' {
		t.cur.index++
		t.cur.column++
	}

	t.add(source.NewLocation(t.file, line, column), COMMENT_TOKEN, string(t.src[start:t.cur.index]))
	return true, nil
}

func (t *Tokenizer) scanNewline() (bool, *Error) {
	if t.src[t.cur.index] != '\n' {
		return false, nil
	}
	t.add(t.here(), NEWLINE_TOKEN, "\n")
	t.cur.index++
	t.cur.line++
	t.cur.column = 1
	return true, nil
}

// scanWhitespace matches a single space byte. Tabs and other whitespace
// are not recognized here and fall through to the skip path.
func (t *Tokenizer) scanWhitespace() (bool, *Error) {
	if t.src[t.cur.index] != ' ' {
		return false, nil
	}
	t.add(t.here(), WHITESPACE_TOKEN, " ")
	t.cur.index++
	t.cur.column++
	return true, nil
}

// scanIdentifier consumes a letter-or-underscore run extended by letters,
// digits and underscores. The run must end at whitespace, punctuation or
// end-of-buffer; any other byte mid-run is fatal.
func (t *Tokenizer) scanIdentifier() (bool, *Error) {
	c := t.src[t.cur.index]
	if !isAlpha(c) && c != '_' {
		return false, nil
	}

	start := t.cur.index
	index, column := t.cur.index, t.cur.column

	for index < len(t.src) {
		c = t.src[index]
		if isAlpha(c) || isDigit(c) || c == '_' {
			index++
			column++
			continue
		}
		if isRunTerminator(c) {
			break
		}
		return false, t.errorAt(ErrInvalidIdentifier, t.cur.line, t.cur.column, "'%c' cannot be an identifier", c)
	}

	t.add(t.here(), IDENTIFIER_TOKEN, string(t.src[start:index]))
	t.cur.index = index
	t.cur.column = column
	return true, nil
}

// scanOperator matches one byte of ASCII punctuation. Multi-character
// operators are not recognized and every token carries the OP_EQ sub-kind.
func (t *Tokenizer) scanOperator() (bool, *Error) {
	c := t.src[t.cur.index]
	if !isPunct(c) {
		return false, nil
	}
	t.tokens = append(t.tokens, Token{
		Location: t.here(),
		Kind:     OPERATOR_TOKEN,
		Value:    string(c),
		Op:       OP_EQ,
	})
	t.cur.index++
	t.cur.column++
	return true, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isPunct reports ASCII punctuation: the ranges !-/, :-@, [-` and {-~.
func isPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

// isRunTerminator reports whether c ends an identifier or number run.
// Note that '_' is in the punctuation range; identifier scanning treats it
// as a continuation byte, number scanning does not.
func isRunTerminator(c byte) bool {
	switch c {
	case ' ', ';', ',', '\t', '\n', '\f', '\r':
		return true
	}
	return isPunct(c)
}
