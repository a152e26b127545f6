package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tokens := mustTokenize(t, "x=1")
	require.Len(t, tokens, 3)

	assert.Equal(t, "'x' [Identifier] Loc:(test.c:1:1)", tokens[0].String())
	assert.Equal(t, "'=' [Operator(OpEq)] Loc:(test.c:1:2)", tokens[1].String())
	assert.Equal(t, "'1' [Number] Loc:(test.c:1:3)", tokens[2].String())
}

func TestDumpSkipsTrivia(t *testing.T) {
	dump := Dump(mustTokenize(t, "int x = 1; // decl\n"))

	want := strings.Join([]string{
		"'int' [Identifier] Loc:(test.c:1:1)",
		"'x' [Identifier] Loc:(test.c:1:5)",
		"'=' [Operator(OpEq)] Loc:(test.c:1:7)",
		"'1' [Number] Loc:(test.c:1:9)",
		"';' [Operator(OpEq)] Loc:(test.c:1:10)",
	}, "\n")
	assert.Equal(t, want, dump)
	assert.False(t, strings.HasSuffix(dump, "\n"))
}

func TestDumpEmpty(t *testing.T) {
	assert.Equal(t, "", Dump(nil))
	assert.Equal(t, "", Dump(mustTokenize(t, " \n ")))
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{COMMENT_TOKEN, "Comment"},
		{NEWLINE_TOKEN, "NewLine"},
		{WHITESPACE_TOKEN, "Space"},
		{KEYWORD_TOKEN, "Keyword"},
		{NUMBER_TOKEN, "Number"},
		{FLOAT_NUMBER_TOKEN, "FloatNumber"},
		{STRING_TOKEN, "Str"},
		{CHAR_TOKEN, "Char"},
		{IDENTIFIER_TOKEN, "Identifier"},
		{OPERATOR_TOKEN, "Operator"},
		{TokenKind(99), "Unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
	assert.Equal(t, "OpEq", OP_EQ.String())
	assert.Equal(t, "OpAssign", OP_ASSIGN.String())
}
