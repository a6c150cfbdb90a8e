/*
File    : go-lox/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace checks if a character is a whitespace character.
// Whitespace includes space, tab, carriage return, and newline.
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// isNumeric checks if a character is a decimal digit (0-9).
func isNumeric(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha checks if a character can start an identifier.
// Identifier start characters are letters and the underscore,
// strictly [A-Za-z_] - digits are handled by isNumeric before
// this test is ever reached.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isAlphaNumeric checks if a character can continue an identifier,
// i.e. [A-Za-z0-9_].
func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isNumeric(ch)
}

// readNumber reads a numeric literal from the source.
// A number is an integer part optionally followed by '.' and a fractional
// part; the '.' is only consumed when a digit follows it, so "12.hi" scans
// as the number 12 followed by '.' and an identifier. A second '.' inside
// a number (as in "1.2.3") is a scan error.
//
// The token's Literal is the raw lexeme; the parser converts it to a
// 64-bit float.
func readNumber(lex *Lexer) Token {
	start := lex.Position
	line := lex.Line
	column := lex.Column

	// Integer part
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// Optional fractional part: '.' must be followed by a digit
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // consume '.'
		for isNumeric(lex.Current) {
			lex.Advance()
		}

		// A second '.' right after the fraction is malformed, e.g. "1.2.3"
		if lex.Current == '.' {
			lex.addError("Unexpected character.")
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(NUMBER_LIT, lexeme, line, column)
}

// readStringLiteral reads a string literal from the source.
// The opening quote has already been seen; characters are consumed until
// the closing quote, counting newlines so multi-line strings keep line
// tracking accurate. The stored Literal excludes the surrounding quotes.
//
// Reaching end of file before the closing quote is a scan error
// ("Unterminated string.") and terminates the scan with an EOF token.
func readStringLiteral(lex *Lexer) Token {
	line := lex.Line
	column := lex.Column

	lex.Advance() // consume opening '"'
	start := lex.Position

	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0 // the Advance below moves onto column 1
		}
		lex.Advance()
	}

	if lex.Current == 0 {
		// Ran off the end of the source without a closing quote
		lex.addError("Unterminated string.")
		return NewTokenWithMetadata(EOF_TYPE, "EOF", lex.Line, lex.Column)
	}

	value := lex.Src[start:lex.Position]
	lex.Advance() // consume closing '"'

	return NewTokenWithMetadata(STRING_LIT, value, line, column)
}

// readIdentifier reads an identifier or keyword from the source.
// The lexeme is matched against KEYWORDS_MAP; a match yields the keyword
// token type, anything else is a user-defined IDENTIFIER_ID.
func readIdentifier(lex *Lexer) Token {
	start := lex.Position
	line := lex.Line
	column := lex.Column

	for isAlphaNumeric(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(lexeme), lexeme, line, column)
}
