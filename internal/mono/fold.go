package mono

import (
	"strconv"

	"pyrite/internal/ast"
	"pyrite/internal/token"
)

// tryConstFold evaluates a binary operation whose operands are both
// literals after substitution. Integer + - * / % and boolean && || fold;
// division and modulo by a zero literal refuse to fold and keep the
// original node so the error surfaces at run time, not here.
func tryConstFold(expr *ast.InfixExpression) ast.Expression {
	if left, ok := expr.Left.(*ast.IntegerLiteral); ok {
		if right, ok := expr.Right.(*ast.IntegerLiteral); ok {
			return foldIntegers(expr, left.Value, right.Value)
		}
	}
	if left, ok := expr.Left.(*ast.Boolean); ok {
		if right, ok := expr.Right.(*ast.Boolean); ok {
			return foldBooleans(expr, left.Value, right.Value)
		}
	}
	return expr
}

func foldIntegers(expr *ast.InfixExpression, left, right int64) ast.Expression {
	switch expr.Operator {
	case "+":
		return intLiteral(left+right, expr.Token)
	case "-":
		return intLiteral(left-right, expr.Token)
	case "*":
		return intLiteral(left*right, expr.Token)
	case "/":
		if right != 0 {
			return intLiteral(floorDiv(left, right), expr.Token)
		}
	case "%":
		if right != 0 {
			return intLiteral(floorMod(left, right), expr.Token)
		}
	}
	return expr
}

func foldBooleans(expr *ast.InfixExpression, left, right bool) ast.Expression {
	switch expr.Operator {
	case "&&":
		return boolLiteral(left && right, expr.Token)
	case "||":
		return boolLiteral(left || right, expr.Token)
	}
	return expr
}

// floorDiv rounds toward negative infinity, the language's division rule
// for integers. Go's native / truncates toward zero instead.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((a < 0) != (b < 0)) {
		r += b
	}
	return r
}

func intLiteral(v int64, at token.Token) *ast.IntegerLiteral {
	lit := strconv.FormatInt(v, 10)
	return &ast.IntegerLiteral{
		Token: token.Token{Type: token.INT, Literal: lit, Line: at.Line, Column: at.Column},
		Value: v,
	}
}

func boolLiteral(v bool, at token.Token) *ast.Boolean {
	tok := token.Token{Type: token.FALSE, Literal: "false", Line: at.Line, Column: at.Column}
	if v {
		tok.Type = token.TRUE
		tok.Literal = "true"
	}
	return &ast.Boolean{Token: tok, Value: v}
}
