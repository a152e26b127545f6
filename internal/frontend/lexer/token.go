package lexer

import (
	"fmt"

	"ncc/internal/source"
)

// TokenKind is the closed set of token categories produced by the tokenizer.
type TokenKind int

const (
	COMMENT_TOKEN TokenKind = iota
	NEWLINE_TOKEN
	WHITESPACE_TOKEN
	KEYWORD_TOKEN
	NUMBER_TOKEN
	FLOAT_NUMBER_TOKEN
	STRING_TOKEN
	CHAR_TOKEN
	IDENTIFIER_TOKEN
	OPERATOR_TOKEN
)

func (k TokenKind) String() string {
	switch k {
	case COMMENT_TOKEN:
		return "Comment"
	case NEWLINE_TOKEN:
		return "NewLine"
	case WHITESPACE_TOKEN:
		return "Space"
	case KEYWORD_TOKEN:
		return "Keyword"
	case NUMBER_TOKEN:
		return "Number"
	case FLOAT_NUMBER_TOKEN:
		return "FloatNumber"
	case STRING_TOKEN:
		return "Str"
	case CHAR_TOKEN:
		return "Char"
	case IDENTIFIER_TOKEN:
		return "Identifier"
	case OPERATOR_TOKEN:
		return "Operator"
	default:
		return "Unknown"
	}
}

// KeywordKind enumerates the language keywords. No keyword matching is
// performed yet; alphabetic runs always lex as IDENTIFIER_TOKEN.
type KeywordKind int

const (
	KW_VOID KeywordKind = iota
	KW_CHAR
	KW_INT
	KW_FLOAT
	KW_DOUBLE
)

// OperatorKind is the operator sub-kind. The operator scanner recognizes
// single punctuation bytes only and tags every one of them OP_EQ.
type OperatorKind int

const (
	OP_EQ OperatorKind = iota
	OP_ASSIGN
)

func (o OperatorKind) String() string {
	switch o {
	case OP_EQ:
		return "OpEq"
	case OP_ASSIGN:
		return "OpAssign"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit. Value holds the exact source substring
// consumed, delimiters and escape sequences included.
type Token struct {
	Location source.Location
	Kind     TokenKind
	Value    string
	Op       OperatorKind // sub-kind, meaningful for OPERATOR_TOKEN only
}

// IsTrivia reports whether the token is excluded from the diagnostic dump.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case COMMENT_TOKEN, NEWLINE_TOKEN, WHITESPACE_TOKEN:
		return true
	}
	return false
}

// String renders the token in the dump format:
//
//	'<lexeme>' [<kind>] Loc:(<file>:<line>:<column>)
func (t Token) String() string {
	kind := t.Kind.String()
	if t.Kind == OPERATOR_TOKEN {
		kind = fmt.Sprintf("Operator(%s)", t.Op)
	}
	return fmt.Sprintf("'%s' [%s] Loc:(%s)", t.Value, kind, t.Location)
}
