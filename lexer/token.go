/*
File    : go-lox/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Lox language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Lox language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"

	// Single-character tokens
	LEFT_PAREN      TokenType = "(" // Left parenthesis - grouping, call arguments
	RIGHT_PAREN     TokenType = ")" // Right parenthesis
	LEFT_BRACE      TokenType = "{" // Left brace - blocks, class and function bodies
	RIGHT_BRACE     TokenType = "}" // Right brace
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and arguments
	DOT_OP          TokenType = "." // Dot - property access
	MINUS_OP        TokenType = "-" // Subtraction / numeric negation
	PLUS_OP         TokenType = "+" // Addition / string concatenation
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator
	STAR_OP         TokenType = "*" // Multiplication operator
	SLASH_OP        TokenType = "/" // Division operator

	// One-or-two-character tokens
	NOT_OP    TokenType = "!"  // Logical NOT operator
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	EQ_OP     TokenType = "==" // Equality comparison
	GT_OP     TokenType = ">"  // Greater than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LT_OP     TokenType = "<"  // Less than
	LE_OP     TokenType = "<=" // Less than or equal to

	// Literals
	// Token types for literal values in the source code
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined identifier (variable/function/class name)
	NUMBER_LIT    TokenType = "NumberLiteral" // Numeric literal (e.g., 42, 3.14) - always a 64-bit float
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g., "hello")

	// Keywords
	// Language keywords for control flow, declarations, and OOP
	AND_KEY    TokenType = "and"    // Logical AND (short-circuiting)
	CLASS_KEY  TokenType = "class"  // Class declaration keyword
	ELSE_KEY   TokenType = "else"   // Conditional else keyword
	FALSE_KEY  TokenType = "false"  // Boolean false literal
	FOR_KEY    TokenType = "for"    // For loop keyword
	FUN_KEY    TokenType = "fun"    // Function declaration keyword
	IF_KEY     TokenType = "if"     // Conditional if keyword
	NIL_KEY    TokenType = "nil"    // Nil literal
	OR_KEY     TokenType = "or"     // Logical OR (short-circuiting)
	RETURN_KEY TokenType = "return" // Return statement keyword
	SUPER_KEY  TokenType = "super"  // Superclass method access keyword
	THIS_KEY   TokenType = "this"   // Current instance keyword
	TRUE_KEY   TokenType = "true"   // Boolean true literal
	VAR_KEY    TokenType = "var"    // Variable declaration keyword
	WHILE_KEY  TokenType = "while"  // While loop keyword
	BREAK_KEY  TokenType = "break"  // Loop break keyword
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined names).
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"and":    AND_KEY,    // Logical AND
	"class":  CLASS_KEY,  // Class declaration
	"else":   ELSE_KEY,   // Conditional else
	"false":  FALSE_KEY,  // Boolean false
	"for":    FOR_KEY,    // For loop
	"fun":    FUN_KEY,    // Function declaration
	"if":     IF_KEY,     // Conditional if
	"nil":    NIL_KEY,    // Nil literal
	"or":     OR_KEY,     // Logical OR
	"return": RETURN_KEY, // Return from function
	"super":  SUPER_KEY,  // Superclass access
	"this":   THIS_KEY,   // Current instance
	"true":   TRUE_KEY,   // Boolean true
	"var":    VAR_KEY,    // Variable declaration
	"while":  WHILE_KEY,  // While loop
	"break":  BREAK_KEY,  // Break from loop
}

// Token represents a single lexical token in the Lox source code.
// It contains the token's type, its literal string representation from the source,
// and metadata about its position in the source file (line and column numbers).
//
// Fields:
//   - Type: The category of the token (e.g., operator, keyword, literal)
//   - Literal: The actual string from the source code that this token represents.
//     For string literals, the surrounding quotes are excluded.
//   - Line: The line number where this token appears in the source (1-indexed)
//   - Column: The column number where this token starts in the source (1-indexed)
//
// Example:
//
//	For the source code "var x = 123" at line 5, column 10:
//	Token{Type: VAR_KEY, Literal: "var", Line: 5, Column: 10}
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source file (1-indexed)
	Column  int       // Column number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including position.
// This constructor should be used during lexical analysis to preserve source location
// information, which is essential for error reporting and debugging.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Print outputs a human-readable representation of the token to standard output.
// The format is "literal:type", which shows both the actual text and its classification.
// This is primarily used for debugging and development purposes.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// ErrorAt formats a diagnostic message positioned at the given token.
// The same format is shared by the parser, the resolver, and the evaluator:
//
//	[line N] Error at end: <message>        (for the EOF token)
//	[line N] Error at 'lexeme': <message>   (for any other token)
func ErrorAt(tok Token, message string) string {
	if tok.Type == EOF_TYPE {
		return fmt.Sprintf("[line %d] Error at end: %s", tok.Line, message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Literal, message)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in KEYWORDS_MAP.
// If found, it returns the corresponding keyword token type; otherwise, it returns
// IDENTIFIER_ID to indicate a user-defined identifier.
func lookupIdent(ident string) TokenType {
	// Check if the identifier is a keyword
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	// Not a keyword, so it's a user-defined identifier
	return IDENTIFIER_ID
}
