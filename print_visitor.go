/*
File    : go-lox/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-lox/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that prints the AST nodes as an indented
// tree, one node per line. Used by the --dump-ast flag.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent indents the buffer by the current indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// String returns the accumulated dump
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitRootNode visits the root node and recursively visits all statements
func (p *PrintingVisitor) VisitRootNode(node *parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Root (%d statements)\n", len(node.Statements)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitNumberLiteralExpressionNode visits a number literal node
func (p *PrintingVisitor) VisitNumberLiteralExpressionNode(node *parser.NumberLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Number [%s]\n", node.Literal()))
}

// VisitStringLiteralExpressionNode visits a string literal node
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node *parser.StringLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("String [%q]\n", node.Value))
}

// VisitBooleanLiteralExpressionNode visits a boolean literal node
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node *parser.BooleanLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Boolean [%t]\n", node.Value))
}

// VisitNilLiteralExpressionNode visits the nil literal node
func (p *PrintingVisitor) VisitNilLiteralExpressionNode(node *parser.NilLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString("Nil\n")
}

// VisitBinaryExpressionNode visits a binary expression node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node *parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Binary [%s]\n", node.Operation.Literal))
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitUnaryExpressionNode visits a unary expression node
func (p *PrintingVisitor) VisitUnaryExpressionNode(node *parser.UnaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Unary [%s]\n", node.Operation.Literal))
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitLogicalExpressionNode visits a logical expression node
func (p *PrintingVisitor) VisitLogicalExpressionNode(node *parser.LogicalExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Logical [%s]\n", node.Operation.Literal))
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitParenthesizedExpressionNode visits a parenthesized expression node
func (p *PrintingVisitor) VisitParenthesizedExpressionNode(node *parser.ParenthesizedExpressionNode) {
	p.indent()
	p.Buf.WriteString("Grouping\n")
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitIdentifierExpressionNode visits an identifier node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node *parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Identifier [%s]\n", node.Name))
}

// VisitAssignmentExpressionNode visits an assignment expression node
func (p *PrintingVisitor) VisitAssignmentExpressionNode(node *parser.AssignmentExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Assign [%s]\n", node.Name.Literal))
	p.Indent += INDENT_SIZE
	node.Value.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a call expression node
func (p *PrintingVisitor) VisitCallExpressionNode(node *parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Call (%d args)\n", len(node.Args)))
	p.Indent += INDENT_SIZE
	node.Callee.Accept(p)
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitGetExpressionNode visits a property read node
func (p *PrintingVisitor) VisitGetExpressionNode(node *parser.GetExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Get [%s]\n", node.Name.Literal))
	p.Indent += INDENT_SIZE
	node.Object.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitSetExpressionNode visits a property write node
func (p *PrintingVisitor) VisitSetExpressionNode(node *parser.SetExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Set [%s]\n", node.Name.Literal))
	p.Indent += INDENT_SIZE
	node.Object.Accept(p)
	node.Value.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitThisExpressionNode visits a 'this' node
func (p *PrintingVisitor) VisitThisExpressionNode(node *parser.ThisExpressionNode) {
	p.indent()
	p.Buf.WriteString("This\n")
}

// VisitSuperExpressionNode visits a 'super' node
func (p *PrintingVisitor) VisitSuperExpressionNode(node *parser.SuperExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Super [%s]\n", node.Method.Literal))
}

// VisitDeclarativeStatementNode visits a variable declaration node
func (p *PrintingVisitor) VisitDeclarativeStatementNode(node *parser.DeclarativeStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Var [%s]\n", node.Name.Literal))
	if node.Initializer != nil {
		p.Indent += INDENT_SIZE
		node.Initializer.Accept(p)
		p.Indent -= INDENT_SIZE
	}
}

// VisitBlockStatementNode visits a block node
func (p *PrintingVisitor) VisitBlockStatementNode(node *parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString("Block\n")
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIfStatementNode visits an if statement node
func (p *PrintingVisitor) VisitIfStatementNode(node *parser.IfStatementNode) {
	p.indent()
	p.Buf.WriteString("If\n")
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.ThenBranch.Accept(p)
	if node.ElseBranch != nil {
		node.ElseBranch.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitWhileLoopStatementNode visits a while loop node
func (p *PrintingVisitor) VisitWhileLoopStatementNode(node *parser.WhileLoopStatementNode) {
	p.indent()
	p.Buf.WriteString("While\n")
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBreakStatementNode visits a break statement node
func (p *PrintingVisitor) VisitBreakStatementNode(node *parser.BreakStatementNode) {
	p.indent()
	p.Buf.WriteString("Break\n")
}

// VisitFunctionStatementNode visits a function declaration node
func (p *PrintingVisitor) VisitFunctionStatementNode(node *parser.FunctionStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Function [%s] (%d params)\n", node.Name.Literal, len(node.Params)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Body {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits a return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node *parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString("Return\n")
	if node.Value != nil {
		p.Indent += INDENT_SIZE
		node.Value.Accept(p)
		p.Indent -= INDENT_SIZE
	}
}

// VisitClassStatementNode visits a class declaration node
func (p *PrintingVisitor) VisitClassStatementNode(node *parser.ClassStatementNode) {
	p.indent()
	if node.Superclass != nil {
		p.Buf.WriteString(fmt.Sprintf("Class [%s < %s]\n", node.Name.Literal, node.Superclass.Name))
	} else {
		p.Buf.WriteString(fmt.Sprintf("Class [%s]\n", node.Name.Literal))
	}
	p.Indent += INDENT_SIZE
	for _, method := range node.Methods {
		method.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}
