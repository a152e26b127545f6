package lexer

// scanString consumes a double-quoted literal, both quotes included, with
// escape sequences left unprocessed. Position inside the literal is tracked
// in locals so the cursor's line/column are only committed when the literal
// closes; until then they still point at the opening quote.
func (t *Tokenizer) scanString() (bool, *Error) {
	if t.src[t.cur.index] != '"' {
		return false, nil
	}

	start := t.cur.index
	line, column := t.cur.line, t.cur.column+1
	escaped := false
	t.cur.index++

	for {
		if t.cur.index >= len(t.src) {
			return false, t.errorAt(ErrUnterminatedString, t.cur.line, t.cur.column, `missing '"' at the end`)
		}

		c := t.src[t.cur.index]
		switch c {
		case '"':
			if !escaped {
				t.cur.index++
				t.add(t.here(), STRING_TOKEN, string(t.src[start:t.cur.index]))
				t.cur.line = line
				t.cur.column = column + 1
				return true, nil
			}
			escaped = false
		case '\\':
			// A backslash always arms the escape flag, so "\\" escapes
			// the closing quote rather than closing the literal.
			escaped = true
		case '\n':
			escaped = false
			line++
			column = 0
		default:
			escaped = false
		}
		t.cur.index++
		column++
	}
}

// scanChar consumes a single-quoted literal. One content byte is allowed
// between the quotes; a backslash extends the budget by one for a two-byte
// escape. Content must be ASCII.
func (t *Tokenizer) scanChar() (bool, *Error) {
	if t.src[t.cur.index] != '\'' {
		return false, nil
	}

	start := t.cur.index
	column := t.cur.column + 1
	escaped := false
	budget := start + 2
	t.cur.index++

	for {
		if t.cur.index >= len(t.src) {
			return false, t.errorAt(ErrUnterminatedChar, t.cur.line, t.cur.column, `missing "'" at the end`)
		}
		if t.cur.index > budget {
			return false, t.errorAt(ErrCharTooLong, t.cur.line, t.cur.column, "there can only be one character between ''")
		}

		c := t.src[t.cur.index]
		switch c {
		case '\'':
			if !escaped {
				t.cur.index++
				t.add(t.here(), CHAR_TOKEN, string(t.src[start:t.cur.index]))
				t.cur.column = column + 1
				return true, nil
			}
			escaped = false
		case '\\':
			escaped = true
			budget = start + 3
		default:
			escaped = false
			if c >= 0x80 {
				return false, t.errorAt(ErrNonASCIIChar, t.cur.line, column, "[%d] is not an ascii character", c)
			}
		}
		t.cur.index++
		column++
	}
}
