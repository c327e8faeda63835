package mono

import (
	"pyrite/internal/ast"
	"pyrite/internal/token"
)

// Substitution rewrites every occurrence of a compile-time parameter name
// inside an already-cloned declaration with the literal value bound at the
// call site. It edits the clone in place; nodes without a matching
// identifier pass through as the same node.

func substituteBlock(block *ast.BlockStatement, subs map[string]Value) *ast.BlockStatement {
	if block == nil {
		return nil
	}
	for i, stmt := range block.Statements {
		block.Statements[i] = substituteStatement(stmt, subs)
	}
	return block
}

func substituteStatement(stmt ast.Statement, subs map[string]Value) ast.Statement {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		if s.Value != nil {
			s.Value = substituteExpression(s.Value, subs)
		}
		if s.Type != nil {
			s.Type = substituteType(s.Type, subs)
		}
		return s

	case *ast.AssignStatement:
		s.Target = substituteExpression(s.Target, subs)
		s.Value = substituteExpression(s.Value, subs)
		return s

	case *ast.ReturnStatement:
		if s.ReturnValue != nil {
			s.ReturnValue = substituteExpression(s.ReturnValue, subs)
		}
		return s

	case *ast.IfStatement:
		s.Condition = substituteExpression(s.Condition, subs)
		s.Consequence = substituteBlock(s.Consequence, subs)
		for _, clause := range s.ElifClauses {
			clause.Condition = substituteExpression(clause.Condition, subs)
			clause.Body = substituteBlock(clause.Body, subs)
		}
		if s.Alternative != nil {
			s.Alternative = substituteBlock(s.Alternative, subs)
		}
		return s

	case *ast.WhileStatement:
		s.Condition = substituteExpression(s.Condition, subs)
		s.Body = substituteBlock(s.Body, subs)
		return s

	case *ast.ForStatement:
		// The loop variable itself is a binding, never substituted.
		s.Iterable = substituteExpression(s.Iterable, subs)
		s.Body = substituteBlock(s.Body, subs)
		return s

	case *ast.MatchStatement:
		s.Subject = substituteExpression(s.Subject, subs)
		for _, arm := range s.Arms {
			if arm.Guard != nil {
				arm.Guard = substituteExpression(arm.Guard, subs)
			}
			arm.Body = substituteBlock(arm.Body, subs)
		}
		return s

	case *ast.WithStatement:
		s.Value = substituteExpression(s.Value, subs)
		s.Body = substituteBlock(s.Body, subs)
		return s

	case *ast.ExpressionStatement:
		s.Expression = substituteExpression(s.Expression, subs)
		return s

	case *ast.DeferStatement:
		s.Body = substituteBlock(s.Body, subs)
		return s
	}

	// Other statement kinds (break, continue, nested declarations) carry
	// no substitutable positions and pass through unchanged.
	return stmt
}

func substituteExpression(expr ast.Expression, subs map[string]Value) ast.Expression {
	switch e := expr.(type) {
	case *ast.Identifier:
		if value, ok := subs[e.Value]; ok {
			switch value.Kind {
			case IntValue, BoolValue:
				return literalFor(value, e.Token)
			}
		}
		return e

	case *ast.InfixExpression:
		e.Left = substituteExpression(e.Left, subs)
		e.Right = substituteExpression(e.Right, subs)
		// Both sides may have become literals; fold if they did.
		return tryConstFold(e)

	case *ast.PrefixExpression:
		e.Right = substituteExpression(e.Right, subs)
		return e

	case *ast.CallExpression:
		e.Function = substituteExpression(e.Function, subs)
		for i, arg := range e.Arguments {
			e.Arguments[i] = substituteExpression(arg, subs)
		}
		for i, arg := range e.CompileTimeArgs {
			e.CompileTimeArgs[i] = substituteExpression(arg, subs)
		}
		return e

	case *ast.MethodCallExpression:
		e.Object = substituteExpression(e.Object, subs)
		for i, arg := range e.Arguments {
			e.Arguments[i] = substituteExpression(arg, subs)
		}
		return e

	case *ast.MemberAccessExpression:
		e.Object = substituteExpression(e.Object, subs)
		return e

	case *ast.IndexExpression:
		e.Left = substituteExpression(e.Left, subs)
		e.Index = substituteExpression(e.Index, subs)
		return e

	case *ast.SliceExpression:
		e.Left = substituteExpression(e.Left, subs)
		if e.Start != nil {
			e.Start = substituteExpression(e.Start, subs)
		}
		if e.End != nil {
			e.End = substituteExpression(e.End, subs)
		}
		return e

	case *ast.ArrayLiteral:
		for i, el := range e.Elements {
			e.Elements[i] = substituteExpression(el, subs)
		}
		return e

	case *ast.TupleLiteral:
		for i, el := range e.Elements {
			e.Elements[i] = substituteExpression(el, subs)
		}
		return e

	case *ast.StructLiteral:
		for _, field := range e.Fields {
			field.Value = substituteExpression(field.Value, subs)
		}
		return e

	case *ast.TryExpression:
		e.Inner = substituteExpression(e.Inner, subs)
		return e

	case *ast.TernaryExpression:
		e.Consequence = substituteExpression(e.Consequence, subs)
		e.Condition = substituteExpression(e.Condition, subs)
		e.Alternative = substituteExpression(e.Alternative, subs)
		return e
	}

	// Literals and other leaf expressions pass through unchanged.
	return expr
}

func substituteType(t ast.Type, subs map[string]Value) ast.Type {
	switch tt := t.(type) {
	case *ast.ArrayType:
		// [u8; N] with N bound to 256 becomes [u8; 256].
		if tt.Size != nil {
			tt.Size = substituteExpression(tt.Size, subs)
		}
		if tt.Element != nil {
			tt.Element = substituteType(tt.Element, subs)
		}
		return tt

	case *ast.GenericType:
		// Value-argument slots are identifier expressions until they are
		// baked in here; true type arguments are left untouched.
		for i, arg := range tt.Args {
			switch a := arg.(type) {
			case ast.Type:
				tt.Args[i] = substituteType(a, subs)
			case ast.Expression:
				tt.Args[i] = substituteExpression(a, subs)
			}
		}
		return tt
	}

	// Other type kinds pass through unchanged.
	return t
}

// literalFor builds the literal node for a compile-time value, keeping
// the replaced identifier's source position.
func literalFor(value Value, at token.Token) ast.Expression {
	if value.Kind == BoolValue {
		return boolLiteral(value.Bool, at)
	}
	return intLiteral(value.Int, at)
}
