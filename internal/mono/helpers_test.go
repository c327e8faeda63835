package mono

import (
	"pyrite/internal/ast"
	"pyrite/internal/token"
)

// Shared builders for monomorphization tests. Positions are filled in so
// error-annotation paths have something to report.

func tok(tt token.TokenType, lit string) token.Token {
	return token.Token{Type: tt, Literal: lit, Line: 1, Column: 1}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Token: tok(token.IDENT, name), Value: name}
}

func intArg(v int64) *ast.IntegerLiteral {
	lit := intLiteral(v, tok(token.INT, ""))
	return lit
}

func boolArg(v bool) *ast.Boolean {
	return boolLiteral(v, tok(token.TRUE, ""))
}

func intType() *ast.NamedType {
	return &ast.NamedType{Token: tok(token.IDENT, "int"), Name: "int"}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Token: tok(token.LBRACE, "{"), Statements: stmts}
}

func ret(value ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Token: tok(token.RETURN, "return"), ReturnValue: value}
}

func infix(left ast.Expression, op string, right ast.Expression) *ast.InfixExpression {
	return &ast.InfixExpression{Token: tok(token.TokenType(op), op), Left: left, Operator: op, Right: right}
}

func call(name string, ctArgs []ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{
		Token:           tok(token.LPAREN, "("),
		Function:        ident(name),
		CompileTimeArgs: ctArgs,
		Arguments:       args,
	}
}

func exprStmt(expr ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Token: tok(token.IDENT, ""), Expression: expr}
}

// genericFn builds fn <name>[N: int]() -> int { <body> }
func genericFn(name string, body ...ast.Statement) *ast.FunctionStatement {
	return &ast.FunctionStatement{
		Token: tok(token.FUNCTION, "fn"),
		Name:  ident(name),
		CompileTimeParams: []*ast.CompileTimeParam{
			{Token: tok(token.IDENT, "N"), Name: "N", Kind: ast.CompileTimeInt},
		},
		ReturnType: intType(),
		Body:       block(body...),
	}
}

// plainFn builds fn <name>() { <body> }
func plainFn(name string, body ...ast.Statement) *ast.FunctionStatement {
	return &ast.FunctionStatement{
		Token: tok(token.FUNCTION, "fn"),
		Name:  ident(name),
		Body:  block(body...),
	}
}
