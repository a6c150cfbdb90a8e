/*
File    : go-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens (the trailing EOF is implicit)
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// checkTokens scans the input and compares types and lexemes against the
// expected list, ignoring position metadata
func checkTokens(t *testing.T, input string, expected []Token) {
	lex := NewLexer(input)
	tokens := lex.ConsumeTokens()

	// The token list is always terminated by the EOF sentinel
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
	tokens = tokens[:len(tokens)-1]

	assert.Equal(t, len(expected), len(tokens), "token count mismatch for input: %s", input)
	for i, expectedToken := range expected {
		if i >= len(tokens) {
			break
		}
		assert.Equal(t, expectedToken.Type, tokens[i].Type, "token %d type mismatch for input: %s", i, input)
		assert.Equal(t, expectedToken.Literal, tokens[i].Literal, "token %d literal mismatch for input: %s", i, input)
	}
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + ( )  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <= >= < > == != ! = `,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(NOT_OP, "!"),
				NewToken(ASSIGN_OP, "="),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `3.14 * 2.5 / 10`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "3.14"),
				NewToken(STAR_OP, "*"),
				NewToken(NUMBER_LIT, "2.5"),
				NewToken(SLASH_OP, "/"),
				NewToken(NUMBER_LIT, "10"),
			},
		},
		{
			Input: `obj.field, x; __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "obj"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "field"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
	}

	for _, tt := range tests {
		checkTokens(t, tt.Input, tt.ExpectedTokens)
	}
}

// TestNewLexer_Keywords verifies every reserved word is recognized as a
// keyword token and not as an identifier
func TestNewLexer_Keywords(t *testing.T) {
	checkTokens(t, `and class else false for fun if nil or return super this true var while break`, []Token{
		NewToken(AND_KEY, "and"),
		NewToken(CLASS_KEY, "class"),
		NewToken(ELSE_KEY, "else"),
		NewToken(FALSE_KEY, "false"),
		NewToken(FOR_KEY, "for"),
		NewToken(FUN_KEY, "fun"),
		NewToken(IF_KEY, "if"),
		NewToken(NIL_KEY, "nil"),
		NewToken(OR_KEY, "or"),
		NewToken(RETURN_KEY, "return"),
		NewToken(SUPER_KEY, "super"),
		NewToken(THIS_KEY, "this"),
		NewToken(TRUE_KEY, "true"),
		NewToken(VAR_KEY, "var"),
		NewToken(WHILE_KEY, "while"),
		NewToken(BREAK_KEY, "break"),
	})

	// Keyword prefixes are still plain identifiers
	checkTokens(t, `classes forx variable`, []Token{
		NewToken(IDENTIFIER_ID, "classes"),
		NewToken(IDENTIFIER_ID, "forx"),
		NewToken(IDENTIFIER_ID, "variable"),
	})
}

// TestNewLexer_Comments verifies comments and whitespace produce no tokens
func TestNewLexer_Comments(t *testing.T) {
	// Whitespace/comment-only text yields only EOF
	lex := NewLexer("  \t\r\n  // just a comment\n// another\n")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, EOF_TYPE, tokens[0].Type)
	assert.False(t, lex.HasErrors())

	// A comment runs to end of line only
	checkTokens(t, "var x; // trailing comment\nvar y;", []Token{
		NewToken(VAR_KEY, "var"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(VAR_KEY, "var"),
		NewToken(IDENTIFIER_ID, "y"),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

// TestNewLexer_LineTracking verifies line numbers on emitted tokens,
// including newlines inside string literals
func TestNewLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var a;\nvar b;\nvar c;")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, tokens[0].Line) // first 'var'
	assert.Equal(t, 2, tokens[3].Line) // second 'var'
	assert.Equal(t, 3, tokens[6].Line) // third 'var'

	// A multi-line string advances the line counter
	lex = NewLexer("\"one\ntwo\"\nvar x;")
	tokens = lex.ConsumeTokens()
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "one\ntwo", tokens[0].Literal)
	assert.Equal(t, 3, tokens[1].Line) // 'var' after the two-line string
}

// TestNewLexer_NumberEdgeCases verifies fractional parsing rules
func TestNewLexer_NumberEdgeCases(t *testing.T) {
	// A dot not followed by a digit is not part of the number
	checkTokens(t, `12.hi`, []Token{
		NewToken(NUMBER_LIT, "12"),
		NewToken(DOT_OP, "."),
		NewToken(IDENTIFIER_ID, "hi"),
	})

	// A second dot inside a number is a scan error
	lex := NewLexer("1.2.3")
	lex.ConsumeTokens()
	assert.True(t, lex.HasErrors())
	assert.Contains(t, lex.GetErrors()[0], "Unexpected character.")
}

// TestNewLexer_Errors verifies scan error reporting
func TestNewLexer_Errors(t *testing.T) {
	// Unexpected character: reported, skipped, scanning continues
	lex := NewLexer("var x = 1 # 2;")
	tokens := lex.ConsumeTokens()
	assert.True(t, lex.HasErrors())
	assert.Equal(t, "[line 1] Error: Unexpected character.", lex.GetErrors()[0])
	// The tokens around the bad byte still come through
	assert.Equal(t, 7, len(tokens)) // var x = 1 2 ; EOF

	// Unterminated string: reported, scan terminates
	lex = NewLexer(`var s = "oops`)
	tokens = lex.ConsumeTokens()
	assert.True(t, lex.HasErrors())
	assert.Equal(t, "[line 1] Error: Unterminated string.", lex.GetErrors()[0])
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
}

// TestNewLexer_LexemeInvariant verifies that for non-string tokens the
// lexeme matches the backing source text
func TestNewLexer_LexemeInvariant(t *testing.T) {
	src := `var answer = 42.5 >= count;`
	lex := NewLexer(src)
	for _, tok := range lex.ConsumeTokens() {
		if tok.Type == EOF_TYPE || tok.Type == STRING_LIT {
			continue
		}
		assert.Contains(t, src, tok.Literal)
	}
}
