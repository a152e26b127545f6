package lexer

// numberBase is the base classification of a numeric run, determined by
// its prefix and digit content.
type numberBase int

const (
	baseUnknown numberBase = iota
	baseBinary
	baseOctal
	baseDecimal
	baseHex
)

// numberState is the classification built up while a digit run grows.
// Base-overflow violations are unambiguous and fail immediately at the
// offending byte; malformed marks the deferred case where the run abuts
// identifier characters and the error is only raised at the terminator.
type numberState struct {
	base      numberBase
	isFloat   bool
	malformed bool
}

const (
	msgBinaryOverflow  = "the number of binary values exceeds 1"
	msgOctalOverflow   = "the number of octal values exceeds 7"
	msgDecimalOverflow = "the number of decimal values exceeds 9"
	msgLeadingDigit    = "identifiers cannot start with a number"
)

// scanNumber consumes a run that starts with an ASCII digit. The emitted
// kind is uniformly NUMBER_TOKEN; the float flag is tracked but never
// changes the kind.
func (t *Tokenizer) scanNumber() (bool, *Error) {
	if !isDigit(t.src[t.cur.index]) {
		return false, nil
	}

	start := t.cur.index
	index, column := t.cur.index, t.cur.column
	var st numberState

	for {
		if index >= len(t.src) {
			return t.finishNumber(start, index, column, st)
		}
		c := t.src[index]
		if isRunTerminator(c) {
			return t.finishNumber(start, index, column, st)
		}
		if err := t.classifyNumberByte(&st, c, start, index, column); err != nil {
			return false, err
		}
		index++
		column++
	}
}

// finishNumber emits the accumulated run, or raises the deferred error at
// the run's starting column when the run turned out malformed.
func (t *Tokenizer) finishNumber(start, index, column int, st numberState) (bool, *Error) {
	if st.malformed {
		return false, t.errorAt(ErrLeadingDigit, t.cur.line, t.cur.column, msgLeadingDigit)
	}
	t.add(t.here(), NUMBER_TOKEN, string(t.src[start:index]))
	t.cur.index = index
	t.cur.column = column
	return true, nil
}

// classifyNumberByte applies one byte to the run's classification.
// Returned errors are the immediate base-overflow failures, reported at
// the offending byte's column.
func (t *Tokenizer) classifyNumberByte(st *numberState, c byte, start, index, column int) *Error {
	if st.malformed {
		// Once the run is known malformed, remaining bytes only grow the
		// lexeme; the error is reported at the terminator.
		return nil
	}

	switch {
	case c == '0':
		if st.isFloat {
			st.malformed = true
		} else if index == start {
			st.base = baseOctal
		}

	case c == '1':
		if st.isFloat {
			st.malformed = true
		} else if st.base == baseUnknown {
			st.base = baseDecimal
		}

	case c >= '2' && c <= '7':
		if st.isFloat {
			st.malformed = true
			break
		}
		if st.base == baseUnknown {
			st.base = baseDecimal
		}
		if st.base == baseBinary {
			return t.errorAt(ErrBinaryDigitOverflow, t.cur.line, column, msgBinaryOverflow)
		}

	case c == '8' || c == '9':
		if st.isFloat {
			st.malformed = true
			break
		}
		if st.base == baseUnknown {
			st.base = baseDecimal
		}
		if st.base == baseBinary {
			return t.errorAt(ErrBinaryDigitOverflow, t.cur.line, column, msgBinaryOverflow)
		}
		if st.base == baseOctal {
			return t.errorAt(ErrOctalDigitOverflow, t.cur.line, column, msgOctalOverflow)
		}

	case c == 'x' || c == 'X':
		// Valid only as the base prefix immediately after a lone leading 0.
		if st.base == baseOctal && index-start == 1 {
			st.base = baseHex
		} else {
			st.malformed = true
		}

	case c == 'b' || c == 'B':
		switch st.base {
		case baseOctal:
			if index-start == 1 {
				st.base = baseBinary
			} else {
				return t.errorAt(ErrOctalDigitOverflow, t.cur.line, column, msgOctalOverflow)
			}
		case baseBinary:
			return t.errorAt(ErrBinaryDigitOverflow, t.cur.line, column, msgBinaryOverflow)
		case baseDecimal:
			return t.errorAt(ErrDecimalDigitOverflow, t.cur.line, column, msgDecimalOverflow)
		case baseUnknown:
			st.malformed = true
		}
		// baseHex: b is an ordinary hex digit.

	case c == 'f' || c == 'F':
		if st.base == baseHex {
			break
		}
		if index > start && isDigit(t.src[index-1]) {
			// Float suffix. A second one makes the run malformed.
			if st.isFloat {
				st.malformed = true
			} else {
				st.isFloat = true
			}
			break
		}
		switch st.base {
		case baseBinary:
			return t.errorAt(ErrBinaryDigitOverflow, t.cur.line, column, msgBinaryOverflow)
		case baseOctal:
			return t.errorAt(ErrOctalDigitOverflow, t.cur.line, column, msgOctalOverflow)
		case baseDecimal:
			return t.errorAt(ErrDecimalDigitOverflow, t.cur.line, column, msgDecimalOverflow)
		}

	case isHexLetter(c):
		if st.isFloat {
			st.malformed = true
			break
		}
		switch st.base {
		case baseBinary:
			return t.errorAt(ErrBinaryDigitOverflow, t.cur.line, column, msgBinaryOverflow)
		case baseOctal:
			return t.errorAt(ErrOctalDigitOverflow, t.cur.line, column, msgOctalOverflow)
		case baseDecimal:
			return t.errorAt(ErrDecimalDigitOverflow, t.cur.line, column, msgDecimalOverflow)
		case baseUnknown:
			st.malformed = true
		}

	default:
		st.malformed = true
	}

	return nil
}

// isHexLetter covers the hex digits handled by no other classification
// arm: a, c-e and their uppercase forms. b, f and x have dedicated arms.
func isHexLetter(c byte) bool {
	return c == 'a' || c == 'A' || (c >= 'c' && c <= 'e') || (c >= 'C' && c <= 'E')
}
