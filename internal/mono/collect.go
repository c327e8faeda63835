package mono

import "pyrite/internal/ast"

// CollectCalls returns every call expression reachable from node in
// pre-order, left-to-right. Calls nested inside other calls' arguments,
// literals, match arms and deferred blocks are all discovered, so
// specialization and rewriting happen in source order.
func CollectCalls(node ast.Node) []*ast.CallExpression {
	var calls []*ast.CallExpression
	collectCalls(node, &calls)
	return calls
}

func collectCalls(node ast.Node, out *[]*ast.CallExpression) {
	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Statements {
			collectCalls(stmt, out)
		}

	case *ast.FunctionStatement:
		collectCalls(n.Body, out)

	case *ast.BlockStatement:
		if n == nil {
			return
		}
		for _, stmt := range n.Statements {
			collectCalls(stmt, out)
		}

	case *ast.LetStatement:
		if n.Value != nil {
			collectCalls(n.Value, out)
		}

	case *ast.AssignStatement:
		collectCalls(n.Target, out)
		collectCalls(n.Value, out)

	case *ast.ReturnStatement:
		if n.ReturnValue != nil {
			collectCalls(n.ReturnValue, out)
		}

	case *ast.ExpressionStatement:
		collectCalls(n.Expression, out)

	case *ast.IfStatement:
		collectCalls(n.Condition, out)
		collectCalls(n.Consequence, out)
		for _, clause := range n.ElifClauses {
			collectCalls(clause.Condition, out)
			collectCalls(clause.Body, out)
		}
		if n.Alternative != nil {
			collectCalls(n.Alternative, out)
		}

	case *ast.WhileStatement:
		collectCalls(n.Condition, out)
		collectCalls(n.Body, out)

	case *ast.ForStatement:
		collectCalls(n.Iterable, out)
		collectCalls(n.Body, out)

	case *ast.MatchStatement:
		collectCalls(n.Subject, out)
		for _, arm := range n.Arms {
			if arm.Guard != nil {
				collectCalls(arm.Guard, out)
			}
			collectCalls(arm.Body, out)
		}

	case *ast.WithStatement:
		collectCalls(n.Value, out)
		collectCalls(n.Body, out)

	case *ast.DeferStatement:
		collectCalls(n.Body, out)

	case *ast.CallExpression:
		*out = append(*out, n)
		collectCalls(n.Function, out)
		for _, arg := range n.CompileTimeArgs {
			collectCalls(arg, out)
		}
		for _, arg := range n.Arguments {
			collectCalls(arg, out)
		}

	case *ast.MethodCallExpression:
		collectCalls(n.Object, out)
		for _, arg := range n.Arguments {
			collectCalls(arg, out)
		}

	case *ast.InfixExpression:
		collectCalls(n.Left, out)
		collectCalls(n.Right, out)

	case *ast.PrefixExpression:
		collectCalls(n.Right, out)

	case *ast.TernaryExpression:
		collectCalls(n.Consequence, out)
		collectCalls(n.Condition, out)
		collectCalls(n.Alternative, out)

	case *ast.MemberAccessExpression:
		collectCalls(n.Object, out)

	case *ast.IndexExpression:
		collectCalls(n.Left, out)
		collectCalls(n.Index, out)

	case *ast.SliceExpression:
		collectCalls(n.Left, out)
		if n.Start != nil {
			collectCalls(n.Start, out)
		}
		if n.End != nil {
			collectCalls(n.End, out)
		}

	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			collectCalls(el, out)
		}

	case *ast.TupleLiteral:
		for _, el := range n.Elements {
			collectCalls(el, out)
		}

	case *ast.StructLiteral:
		for _, field := range n.Fields {
			collectCalls(field.Value, out)
		}

	case *ast.TryExpression:
		collectCalls(n.Inner, out)
	}

	// Identifiers, literals and remaining leaf kinds contain no calls.
}
