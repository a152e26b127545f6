package lexer

import (
	"fmt"

	"ncc/internal/source"
)

// ErrorCode identifies a class of lexical error.
type ErrorCode string

const (
	ErrUnterminatedComment  ErrorCode = "L0001"
	ErrUnterminatedString   ErrorCode = "L0002"
	ErrUnterminatedChar     ErrorCode = "L0003"
	ErrCharTooLong          ErrorCode = "L0004"
	ErrNonASCIIChar         ErrorCode = "L0005"
	ErrInvalidIdentifier    ErrorCode = "L0006"
	ErrBinaryDigitOverflow  ErrorCode = "L0007"
	ErrOctalDigitOverflow   ErrorCode = "L0008"
	ErrDecimalDigitOverflow ErrorCode = "L0009"
	ErrLeadingDigit         ErrorCode = "L0010"
)

// Error is a fatal lexical error. Scanning stops at the first one; there is
// no recovery and no accumulation.
type Error struct {
	Code     ErrorCode
	Message  string
	Location source.Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("\"%s\" at (%s)", e.Message, e.Location)
}

func (t *Tokenizer) errorAt(code ErrorCode, line, column int, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: source.NewLocation(t.file, line, column),
	}
}
