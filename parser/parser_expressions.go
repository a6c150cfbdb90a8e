/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-lox/lexer"
)

// The expression grammar descends from lowest to highest precedence:
//
//	expression := assignment
//	assignment := ( call "." )? IDENT "=" assignment | logic_or
//	logic_or   := logic_and ( "or" logic_and )*
//	logic_and  := equality ( "and" equality )*
//	equality   := comparison ( ( "!=" | "==" ) comparison )*
//	comparison := term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       := factor ( ( "-" | "+" ) factor )*
//	factor     := unary ( ( "/" | "*" ) unary )*
//	unary      := ( "!" | "-" ) unary | call
//	call       := primary ( "(" arguments? ")" | "." IDENT )*
//	primary    := "true" | "false" | "nil" | NUMBER | STRING
//	            | "this" | IDENT | "super" "." IDENT
//	            | "(" expression ")"

// parseExpression parses any expression, starting at the lowest
// precedence level.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseAssignment()
}

// parseAssignment parses an assignment or anything of higher precedence.
// Assignment is right-associative, so the right-hand side recurses back
// into parseAssignment.
//
// The left-hand side is parsed as an ordinary expression first and then
// inspected: a variable reference becomes an assignment, a property read
// becomes a property write, and anything else is reported as an invalid
// assignment target at the '=' token. Parsing continues with the
// left-hand side as the result, so one bad target yields one diagnostic.
func (par *Parser) parseAssignment() ExpressionNode {
	expr := par.parseLogicalOr()
	if expr == nil {
		return nil
	}

	if par.currIs(lexer.ASSIGN_OP) {
		equals := par.CurrToken
		par.advance() // consume '='

		value := par.parseAssignment()
		if value == nil {
			return nil
		}

		switch target := expr.(type) {
		case *IdentifierExpressionNode:
			return &AssignmentExpressionNode{Name: target.Token, Value: value}
		case *GetExpressionNode:
			return &SetExpressionNode{Object: target.Object, Name: target.Name, Value: value}
		default:
			par.errorAt(equals, "Invalid assignment target.")
		}
	}

	return expr
}

// parseLogicalOr parses a short-circuiting 'or' chain.
func (par *Parser) parseLogicalOr() ExpressionNode {
	expr := par.parseLogicalAnd()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.OR_KEY) {
		op := par.CurrToken
		par.advance()
		right := par.parseLogicalAnd()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseLogicalAnd parses a short-circuiting 'and' chain.
func (par *Parser) parseLogicalAnd() ExpressionNode {
	expr := par.parseEquality()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.AND_KEY) {
		op := par.CurrToken
		par.advance()
		right := par.parseEquality()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseEquality parses == and != chains.
func (par *Parser) parseEquality() ExpressionNode {
	expr := par.parseComparison()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.EQ_OP) || par.currIs(lexer.NE_OP) {
		op := par.CurrToken
		par.advance()
		right := par.parseComparison()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseComparison parses >, >=, <, <= chains.
func (par *Parser) parseComparison() ExpressionNode {
	expr := par.parseTerm()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.GT_OP) || par.currIs(lexer.GE_OP) ||
		par.currIs(lexer.LT_OP) || par.currIs(lexer.LE_OP) {
		op := par.CurrToken
		par.advance()
		right := par.parseTerm()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseTerm parses + and - chains.
func (par *Parser) parseTerm() ExpressionNode {
	expr := par.parseFactor()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.PLUS_OP) || par.currIs(lexer.MINUS_OP) {
		op := par.CurrToken
		par.advance()
		right := par.parseFactor()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseFactor parses * and / chains.
func (par *Parser) parseFactor() ExpressionNode {
	expr := par.parseUnary()
	if expr == nil {
		return nil
	}

	for par.currIs(lexer.STAR_OP) || par.currIs(lexer.SLASH_OP) {
		op := par.CurrToken
		par.advance()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}

	return expr
}

// parseUnary parses prefix ! and - operators, right-associatively.
func (par *Parser) parseUnary() ExpressionNode {
	if par.currIs(lexer.NOT_OP) || par.currIs(lexer.MINUS_OP) {
		op := par.CurrToken
		par.advance()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		return &UnaryExpressionNode{Operation: op, Right: right}
	}

	return par.parseCall()
}

// parseCall parses a primary expression followed by any number of call
// and property-access postfixes:
//
//	call := primary ( "(" arguments? ")" | "." IDENT )*
func (par *Parser) parseCall() ExpressionNode {
	expr := par.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		if par.currIs(lexer.LEFT_PAREN) {
			par.advance() // consume '('
			expr = par.finishCall(expr)
			if expr == nil {
				return nil
			}
		} else if par.currIs(lexer.DOT_OP) {
			par.advance() // consume '.'
			name, ok := par.consume(lexer.IDENTIFIER_ID, `Expect property name after ".".`)
			if !ok {
				return nil
			}
			expr = &GetExpressionNode{Object: expr, Name: name}
		} else {
			break
		}
	}

	return expr
}

// finishCall parses the argument list and closing parenthesis of a call.
// The '(' has already been consumed. The closing ')' token is stored on
// the node so runtime errors can point at the call site.
func (par *Parser) finishCall(callee ExpressionNode) ExpressionNode {
	args := make([]ExpressionNode, 0)

	if !par.currIs(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= MAX_PARAMETERS {
				// Report but keep parsing; the call stays usable
				par.errorAt(par.CurrToken, "Can't have more than 255 arguments.")
			}
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	paren, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after arguments.`)
	if !ok {
		return nil
	}

	return &CallExpressionNode{Callee: callee, Paren: paren, Args: args}
}

// parsePrimary parses the highest-precedence expressions: literals,
// variable references, this/super, and parenthesized groupings.
func (par *Parser) parsePrimary() ExpressionNode {
	tok := par.CurrToken

	switch tok.Type {
	case lexer.FALSE_KEY:
		par.advance()
		return &BooleanLiteralExpressionNode{Token: tok, Value: false}

	case lexer.TRUE_KEY:
		par.advance()
		return &BooleanLiteralExpressionNode{Token: tok, Value: true}

	case lexer.NIL_KEY:
		par.advance()
		return &NilLiteralExpressionNode{Token: tok}

	case lexer.NUMBER_LIT:
		par.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			par.errorAt(tok, "Expect expression.")
			return nil
		}
		return &NumberLiteralExpressionNode{Token: tok, Value: value}

	case lexer.STRING_LIT:
		par.advance()
		return &StringLiteralExpressionNode{Token: tok, Value: tok.Literal}

	case lexer.THIS_KEY:
		par.advance()
		return &ThisExpressionNode{Keyword: tok}

	case lexer.SUPER_KEY:
		par.advance()
		if _, ok := par.consume(lexer.DOT_OP, `Expect "." after "super".`); !ok {
			return nil
		}
		method, ok := par.consume(lexer.IDENTIFIER_ID, "Expect superclass method name.")
		if !ok {
			return nil
		}
		return &SuperExpressionNode{Keyword: tok, Method: method}

	case lexer.IDENTIFIER_ID:
		par.advance()
		return &IdentifierExpressionNode{Token: tok, Name: tok.Literal}

	case lexer.LEFT_PAREN:
		par.advance()
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		if _, ok := par.consume(lexer.RIGHT_PAREN, `Expect ")" after expression.`); !ok {
			return nil
		}
		return &ParenthesizedExpressionNode{Token: tok, Expr: expr}

	default:
		par.errorAt(tok, "Expect expression.")
		return nil
	}
}
