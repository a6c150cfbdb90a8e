/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Lox
programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (assignment, logical, equality, comparison, arithmetic, unary, calls, property access)
- Statements (declarations, blocks, control flow, returns, breaks)
- Functions and methods (declarations with up to 255 parameters)
- Classes with single inheritance
- For loops, which are desugared into while loops at parse time

Key Features:
- One grammar rule per function, descending from lowest to highest precedence
- Error collection (doesn't panic on first error)
- Panic-mode recovery: after an error inside a declaration the parser
  synchronizes at the next statement boundary and keeps going, so one
  mistake doesn't drown the rest of the file in spurious diagnostics
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Lox source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex:    lex,
		Errors: make([]string, 0),
	}

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()

	return par
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currIs checks whether the current token has the given type.
func (par *Parser) currIs(expected lexer.TokenType) bool {
	return par.CurrToken.Type == expected
}

// nextIs checks whether the lookahead token has the given type.
func (par *Parser) nextIs(expected lexer.TokenType) bool {
	return par.NextToken.Type == expected
}

// match consumes the current token if it has the given type.
//
// Returns:
//
//	true if the token matched and was consumed, false otherwise
func (par *Parser) match(expected lexer.TokenType) bool {
	if !par.currIs(expected) {
		return false
	}
	par.advance()
	return true
}

// consume requires the current token to have the given type.
// On a match the token is consumed and returned; on a mismatch an error
// is recorded at the offending token and parsing continues without
// consuming it.
//
// Returns:
//
//	The consumed (or offending) token, and whether it matched
func (par *Parser) consume(expected lexer.TokenType, message string) (lexer.Token, bool) {
	if par.currIs(expected) {
		tok := par.CurrToken
		par.advance()
		return tok, true
	}
	par.errorAt(par.CurrToken, message)
	return par.CurrToken, false
}

// errorAt records a parse error positioned at the given token.
func (par *Parser) errorAt(tok lexer.Token, message string) {
	par.Errors = append(par.Errors, lexer.ErrorAt(tok, message))
}

// HasErrors returns true if there are scan or parse errors.
// This should be checked after parsing to determine if the parse was successful.
func (par *Parser) HasErrors() bool {
	return par.Lex.HasErrors() || len(par.Errors) > 0
}

// GetErrors returns all errors collected during scanning and parsing,
// scan errors first. This allows the caller to display all errors to the user.
func (par *Parser) GetErrors() []string {
	errs := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errs = append(errs, par.Lex.Errors...)
	errs = append(errs, par.Errors...)
	return errs
}

// synchronize performs panic-mode error recovery.
// After a parse error the token stream is advanced until it reaches a
// likely statement boundary: just past a semicolon, or just before a
// token that begins a declaration or statement. Parsing then resumes
// from that point.
func (par *Parser) synchronize() {
	prev := par.CurrToken
	par.advance()

	for !par.currIs(lexer.EOF_TYPE) {
		if prev.Type == lexer.SEMICOLON_DELIM {
			return
		}

		switch par.CurrToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.RETURN_KEY:
			return
		}

		prev = par.CurrToken
		par.advance()
	}
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses declarations until reaching the end of the file (EOF),
// building up a RootNode that contains all the parsed statements.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse declarations until we reach the end of file
	for !par.currIs(lexer.EOF_TYPE) {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}

	return root
}
