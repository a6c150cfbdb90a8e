/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// MAX_PARAMETERS caps the number of parameters of a function and the
// number of arguments of a call. Exceeding it is reported but does not
// abort the parse.
const MAX_PARAMETERS = 255

// parseDeclaration parses one declaration:
//
//	declaration := classDecl | funDecl | varDecl | statement
//
// On a parse error inside the declaration the parser synchronizes at the
// next statement boundary and returns nil, so the caller can keep going.
func (par *Parser) parseDeclaration() StatementNode {
	var stmt StatementNode

	switch par.CurrToken.Type {
	case lexer.CLASS_KEY:
		stmt = par.parseClassDeclaration()
	case lexer.FUN_KEY:
		par.advance() // consume 'fun'
		stmt = par.parseFunction("function")
	case lexer.VAR_KEY:
		stmt = par.parseVarDeclaration()
	default:
		stmt = par.parseStatement()
	}

	if stmt == nil {
		par.synchronize()
	}
	return stmt
}

// parseVarDeclaration parses a variable declaration:
//
//	varDecl := "var" IDENT ( "=" expression )? ";"
//
// A missing initializer leaves the variable bound to nil at runtime.
func (par *Parser) parseVarDeclaration() StatementNode {
	varToken := par.CurrToken
	par.advance() // consume 'var'

	name, ok := par.consume(lexer.IDENTIFIER_ID, "Expect variable name.")
	if !ok {
		return nil
	}

	var initializer ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		initializer = par.parseExpression()
		if initializer == nil {
			return nil
		}
	}

	if _, ok := par.consume(lexer.SEMICOLON_DELIM, `Expect ";" after variable declaration.`); !ok {
		return nil
	}

	return &DeclarativeStatementNode{Token: varToken, Name: name, Initializer: initializer}
}

// parseStatement parses one statement:
//
//	statement := exprStmt | forStmt | ifStmt | returnStmt
//	           | whileStmt | breakStmt | block
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.BREAK_KEY:
		return par.parseBreakStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseBlockStatement parses a braced block:
//
//	block := "{" declaration* "}"
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	braceToken := par.CurrToken
	par.advance() // consume '{'

	statements := make([]StatementNode, 0)
	for !par.currIs(lexer.RIGHT_BRACE) && !par.currIs(lexer.EOF_TYPE) {
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	par.consume(lexer.RIGHT_BRACE, `Expect "}" after block.`)

	return &BlockStatementNode{Token: braceToken, Statements: statements}
}

// parseIfStatement parses a conditional:
//
//	ifStmt := "if" "(" expression ")" statement ( "else" statement )?
//
// The else binds to the nearest if, which falls out of the recursion here.
func (par *Parser) parseIfStatement() StatementNode {
	ifToken := par.CurrToken
	par.advance() // consume 'if'

	if _, ok := par.consume(lexer.LEFT_PAREN, `Expect "(" after "if".`); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after if condition.`); !ok {
		return nil
	}

	thenBranch := par.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}

	return &IfStatementNode{Token: ifToken, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// parseWhileStatement parses a while loop:
//
//	whileStmt := "while" "(" expression ")" statement
func (par *Parser) parseWhileStatement() StatementNode {
	whileToken := par.CurrToken
	par.advance() // consume 'while'

	if _, ok := par.consume(lexer.LEFT_PAREN, `Expect "(" after "while".`); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after condition.`); !ok {
		return nil
	}

	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileLoopStatementNode{Token: whileToken, Condition: condition, Body: body}
}

// parseForStatement parses a for loop and desugars it into a while loop:
//
//	forStmt := "for" "(" ( varDecl | exprStmt | ";" )
//	                     expression? ";"
//	                     expression? ")" statement
//
// The lowering is:
//
//	for (init; cond; incr) body  =>  { init; while (cond) { body; incr; } }
//
// with a missing condition replaced by a literal true. Each of init, cond,
// and incr may be absent independently.
func (par *Parser) parseForStatement() StatementNode {
	forToken := par.CurrToken
	par.advance() // consume 'for'

	if _, ok := par.consume(lexer.LEFT_PAREN, `Expect "(" after "for".`); !ok {
		return nil
	}

	// Initializer clause: a var declaration, an expression statement, or nothing
	var initializer StatementNode
	if par.match(lexer.SEMICOLON_DELIM) {
		initializer = nil
	} else if par.currIs(lexer.VAR_KEY) {
		initializer = par.parseVarDeclaration()
		if initializer == nil {
			return nil
		}
	} else {
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause: an expression or nothing
	var condition ExpressionNode
	if !par.currIs(lexer.SEMICOLON_DELIM) {
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
	}
	if _, ok := par.consume(lexer.SEMICOLON_DELIM, `Expect ";" after loop condition.`); !ok {
		return nil
	}

	// Increment clause: an expression or nothing
	var increment ExpressionNode
	if !par.currIs(lexer.RIGHT_PAREN) {
		increment = par.parseExpression()
		if increment == nil {
			return nil
		}
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after for clauses.`); !ok {
		return nil
	}

	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar bottom-up: append the increment to the body, default the
	// condition to true, wrap in a while, and prepend the initializer.
	if increment != nil {
		body = &BlockStatementNode{
			Token:      forToken,
			Statements: []StatementNode{body, increment},
		}
	}

	if condition == nil {
		condition = &BooleanLiteralExpressionNode{
			Token: lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", forToken.Line, forToken.Column),
			Value: true,
		}
	}
	var loop StatementNode = &WhileLoopStatementNode{Token: forToken, Condition: condition, Body: body}

	if initializer != nil {
		loop = &BlockStatementNode{
			Token:      forToken,
			Statements: []StatementNode{initializer, loop},
		}
	}

	return loop
}

// parseReturnStatement parses a return statement:
//
//	returnStmt := "return" expression? ";"
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.CurrToken
	par.advance() // consume 'return'

	var value ExpressionNode
	if !par.currIs(lexer.SEMICOLON_DELIM) {
		value = par.parseExpression()
		if value == nil {
			return nil
		}
	}

	if _, ok := par.consume(lexer.SEMICOLON_DELIM, `Expect ";" after return value.`); !ok {
		return nil
	}

	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

// parseBreakStatement parses a break statement:
//
//	breakStmt := "break" ";"
//
// Whether the break actually sits inside a loop is checked by the resolver.
func (par *Parser) parseBreakStatement() StatementNode {
	keyword := par.CurrToken
	par.advance() // consume 'break'

	if _, ok := par.consume(lexer.SEMICOLON_DELIM, `Expect ";" after "break".`); !ok {
		return nil
	}

	return &BreakStatementNode{Token: keyword}
}

// parseExpressionStatement parses an expression followed by a semicolon.
// Expressions are statements themselves, so the expression node doubles
// as the statement node.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if _, ok := par.consume(lexer.SEMICOLON_DELIM, `Expect ";" after expression.`); !ok {
		return nil
	}
	return expr
}

// parseFunction parses a function declaration or a class method:
//
//	function := IDENT "(" parameters? ")" block
//
// The kind parameter ("function" or "method") only flavors error messages.
func (par *Parser) parseFunction(kind string) *FunctionStatementNode {
	name, ok := par.consume(lexer.IDENTIFIER_ID, "Expect "+kind+" name.")
	if !ok {
		return nil
	}

	if _, ok := par.consume(lexer.LEFT_PAREN, `Expect "(" after `+kind+` name.`); !ok {
		return nil
	}

	params := make([]lexer.Token, 0)
	if !par.currIs(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= MAX_PARAMETERS {
				// Report but keep parsing; the declaration stays usable
				par.errorAt(par.CurrToken, "Can't have more than 255 parameters.")
			}
			param, ok := par.consume(lexer.IDENTIFIER_ID, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after parameters.`); !ok {
		return nil
	}

	if !par.currIs(lexer.LEFT_BRACE) {
		par.errorAt(par.CurrToken, `Expect "{" before `+kind+` body.`)
		return nil
	}
	body := par.parseBlockStatement()

	return &FunctionStatementNode{Name: name, Params: params, Body: body.Statements}
}

// parseClassDeclaration parses a class declaration:
//
//	classDecl := "class" IDENT ( "<" IDENT )? "{" function* "}"
func (par *Parser) parseClassDeclaration() StatementNode {
	par.advance() // consume 'class'

	name, ok := par.consume(lexer.IDENTIFIER_ID, "Expect class name.")
	if !ok {
		return nil
	}

	var superclass *IdentifierExpressionNode
	if par.match(lexer.LT_OP) {
		superToken, ok := par.consume(lexer.IDENTIFIER_ID, "Expect superclass name.")
		if !ok {
			return nil
		}
		superclass = &IdentifierExpressionNode{Token: superToken, Name: superToken.Literal}
	}

	if _, ok := par.consume(lexer.LEFT_BRACE, `Expect "{" before class body.`); !ok {
		return nil
	}

	methods := make([]*FunctionStatementNode, 0)
	for !par.currIs(lexer.RIGHT_BRACE) && !par.currIs(lexer.EOF_TYPE) {
		method := par.parseFunction("method")
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}

	par.consume(lexer.RIGHT_BRACE, `Expect "}" after class body.`)

	return &ClassStatementNode{Name: name, Superclass: superclass, Methods: methods}
}
