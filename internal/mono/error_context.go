package mono

import (
	"pyrite/internal/ast"
	"pyrite/internal/token"
)

func tokenFromNode(node ast.Node) (token.Token, bool) {
	switch n := node.(type) {
	case *ast.Identifier:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.IntegerLiteral:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.Boolean:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.CallExpression:
		// Prefer the callee's position over the paren token.
		if tok, ok := tokenFromNode(n.Function); ok {
			return tok, true
		}
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.MethodCallExpression:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.InfixExpression:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.PrefixExpression:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.FunctionStatement:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.LetStatement:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.ReturnStatement:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	case *ast.ExpressionStatement:
		return n.Token, n.Token.Line > 0 && n.Token.Column > 0
	}
	return token.Token{}, false
}
