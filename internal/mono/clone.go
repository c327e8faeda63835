package mono

import "pyrite/internal/ast"

// Deep copies of declarations about to be specialized. Substitution then
// edits the copy in place, so the original registered declaration is
// never disturbed and can seed further specializations.

func cloneFunction(fn *ast.FunctionStatement) *ast.FunctionStatement {
	out := &ast.FunctionStatement{Token: fn.Token}
	if fn.Name != nil {
		out.Name = &ast.Identifier{Token: fn.Name.Token, Value: fn.Name.Value}
	}
	if len(fn.CompileTimeParams) > 0 {
		out.CompileTimeParams = make([]*ast.CompileTimeParam, len(fn.CompileTimeParams))
		for i, p := range fn.CompileTimeParams {
			out.CompileTimeParams[i] = &ast.CompileTimeParam{Token: p.Token, Name: p.Name, Kind: p.Kind}
		}
	}
	if len(fn.Parameters) > 0 {
		out.Parameters = make([]*ast.FunctionParameter, len(fn.Parameters))
		for i, p := range fn.Parameters {
			param := &ast.FunctionParameter{}
			if p.Name != nil {
				param.Name = &ast.Identifier{Token: p.Name.Token, Value: p.Name.Value}
			}
			param.Type = cloneType(p.Type)
			out.Parameters[i] = param
		}
	}
	out.ReturnType = cloneType(fn.ReturnType)
	out.Body = cloneBlock(fn.Body)
	return out
}

func cloneBlock(block *ast.BlockStatement) *ast.BlockStatement {
	if block == nil {
		return nil
	}
	out := &ast.BlockStatement{Token: block.Token}
	if len(block.Statements) > 0 {
		out.Statements = make([]ast.Statement, len(block.Statements))
		for i, stmt := range block.Statements {
			out.Statements[i] = cloneStatement(stmt)
		}
	}
	return out
}

func cloneStatement(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return &ast.LetStatement{
			Token:   s.Token,
			Name:    cloneIdentifier(s.Name),
			Mutable: s.Mutable,
			Type:    cloneType(s.Type),
			Value:   cloneExpression(s.Value),
		}
	case *ast.AssignStatement:
		return &ast.AssignStatement{
			Token:  s.Token,
			Target: cloneExpression(s.Target),
			Value:  cloneExpression(s.Value),
		}
	case *ast.ReturnStatement:
		return &ast.ReturnStatement{Token: s.Token, ReturnValue: cloneExpression(s.ReturnValue)}
	case *ast.ExpressionStatement:
		return &ast.ExpressionStatement{Token: s.Token, Expression: cloneExpression(s.Expression)}
	case *ast.IfStatement:
		out := &ast.IfStatement{
			Token:       s.Token,
			Condition:   cloneExpression(s.Condition),
			Consequence: cloneBlock(s.Consequence),
			Alternative: cloneBlock(s.Alternative),
		}
		if len(s.ElifClauses) > 0 {
			out.ElifClauses = make([]*ast.ElifClause, len(s.ElifClauses))
			for i, clause := range s.ElifClauses {
				out.ElifClauses[i] = &ast.ElifClause{
					Token:     clause.Token,
					Condition: cloneExpression(clause.Condition),
					Body:      cloneBlock(clause.Body),
				}
			}
		}
		return out
	case *ast.WhileStatement:
		return &ast.WhileStatement{
			Token:     s.Token,
			Condition: cloneExpression(s.Condition),
			Body:      cloneBlock(s.Body),
		}
	case *ast.ForStatement:
		return &ast.ForStatement{
			Token:    s.Token,
			Variable: cloneIdentifier(s.Variable),
			Iterable: cloneExpression(s.Iterable),
			Body:     cloneBlock(s.Body),
		}
	case *ast.MatchStatement:
		out := &ast.MatchStatement{Token: s.Token, Subject: cloneExpression(s.Subject)}
		if len(s.Arms) > 0 {
			out.Arms = make([]*ast.MatchArm, len(s.Arms))
			for i, arm := range s.Arms {
				out.Arms[i] = &ast.MatchArm{
					Token:   arm.Token,
					Pattern: clonePattern(arm.Pattern),
					Guard:   cloneExpression(arm.Guard),
					Body:    cloneBlock(arm.Body),
				}
			}
		}
		return out
	case *ast.WithStatement:
		return &ast.WithStatement{
			Token:    s.Token,
			Variable: cloneIdentifier(s.Variable),
			Value:    cloneExpression(s.Value),
			Body:     cloneBlock(s.Body),
		}
	case *ast.DeferStatement:
		return &ast.DeferStatement{Token: s.Token, Body: cloneBlock(s.Body)}
	case *ast.BreakStatement:
		return &ast.BreakStatement{Token: s.Token}
	case *ast.ContinueStatement:
		return &ast.ContinueStatement{Token: s.Token}
	case *ast.BlockStatement:
		return cloneBlock(s)
	case *ast.FunctionStatement:
		return cloneFunction(s)
	}
	return stmt
}

func cloneIdentifier(id *ast.Identifier) *ast.Identifier {
	if id == nil {
		return nil
	}
	return &ast.Identifier{Token: id.Token, Value: id.Value}
}

func cloneExpressions(exprs []ast.Expression) []ast.Expression {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = cloneExpression(e)
	}
	return out
}

func cloneExpression(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		return cloneIdentifier(e)
	case *ast.IntegerLiteral:
		return &ast.IntegerLiteral{Token: e.Token, Value: e.Value}
	case *ast.FloatLiteral:
		return &ast.FloatLiteral{Token: e.Token, Value: e.Value}
	case *ast.StringLiteral:
		return &ast.StringLiteral{Token: e.Token, Value: e.Value}
	case *ast.CharLiteral:
		return &ast.CharLiteral{Token: e.Token, Value: e.Value}
	case *ast.Boolean:
		return &ast.Boolean{Token: e.Token, Value: e.Value}
	case *ast.NoneLiteral:
		return &ast.NoneLiteral{Token: e.Token}
	case *ast.PrefixExpression:
		return &ast.PrefixExpression{Token: e.Token, Operator: e.Operator, Right: cloneExpression(e.Right)}
	case *ast.InfixExpression:
		return &ast.InfixExpression{
			Token:    e.Token,
			Left:     cloneExpression(e.Left),
			Operator: e.Operator,
			Right:    cloneExpression(e.Right),
		}
	case *ast.TernaryExpression:
		return &ast.TernaryExpression{
			Token:       e.Token,
			Consequence: cloneExpression(e.Consequence),
			Condition:   cloneExpression(e.Condition),
			Alternative: cloneExpression(e.Alternative),
		}
	case *ast.CallExpression:
		return &ast.CallExpression{
			Token:           e.Token,
			Function:        cloneExpression(e.Function),
			CompileTimeArgs: cloneExpressions(e.CompileTimeArgs),
			Arguments:       cloneExpressions(e.Arguments),
		}
	case *ast.MethodCallExpression:
		return &ast.MethodCallExpression{
			Token:     e.Token,
			Object:    cloneExpression(e.Object),
			Method:    cloneIdentifier(e.Method),
			Arguments: cloneExpressions(e.Arguments),
		}
	case *ast.MemberAccessExpression:
		return &ast.MemberAccessExpression{
			Token:  e.Token,
			Object: cloneExpression(e.Object),
			Field:  cloneIdentifier(e.Field),
		}
	case *ast.IndexExpression:
		return &ast.IndexExpression{
			Token: e.Token,
			Left:  cloneExpression(e.Left),
			Index: cloneExpression(e.Index),
		}
	case *ast.SliceExpression:
		return &ast.SliceExpression{
			Token: e.Token,
			Left:  cloneExpression(e.Left),
			Start: cloneExpression(e.Start),
			End:   cloneExpression(e.End),
		}
	case *ast.ArrayLiteral:
		return &ast.ArrayLiteral{Token: e.Token, Elements: cloneExpressions(e.Elements)}
	case *ast.TupleLiteral:
		return &ast.TupleLiteral{Token: e.Token, Elements: cloneExpressions(e.Elements)}
	case *ast.StructLiteral:
		out := &ast.StructLiteral{Token: e.Token, Name: e.Name}
		if len(e.Fields) > 0 {
			out.Fields = make([]*ast.StructLiteralField, len(e.Fields))
			for i, f := range e.Fields {
				out.Fields[i] = &ast.StructLiteralField{Name: f.Name, Value: cloneExpression(f.Value)}
			}
		}
		return out
	case *ast.TryExpression:
		return &ast.TryExpression{Token: e.Token, Inner: cloneExpression(e.Inner)}
	}
	return expr
}

func cloneType(t ast.Type) ast.Type {
	switch tt := t.(type) {
	case nil:
		return nil
	case *ast.NamedType:
		return &ast.NamedType{Token: tt.Token, Name: tt.Name}
	case *ast.ReferenceType:
		return &ast.ReferenceType{Token: tt.Token, Mutable: tt.Mutable, Inner: cloneType(tt.Inner)}
	case *ast.ArrayType:
		return &ast.ArrayType{
			Token:   tt.Token,
			Element: cloneType(tt.Element),
			Size:    cloneExpression(tt.Size),
		}
	case *ast.SliceType:
		return &ast.SliceType{Token: tt.Token, Element: cloneType(tt.Element)}
	case *ast.GenericType:
		out := &ast.GenericType{Token: tt.Token, Name: tt.Name}
		if len(tt.Args) > 0 {
			out.Args = make([]ast.Node, len(tt.Args))
			for i, arg := range tt.Args {
				switch a := arg.(type) {
				case ast.Type:
					out.Args[i] = cloneType(a)
				case ast.Expression:
					out.Args[i] = cloneExpression(a)
				default:
					out.Args[i] = arg
				}
			}
		}
		return out
	case *ast.FunctionType:
		out := &ast.FunctionType{Token: tt.Token, ReturnType: cloneType(tt.ReturnType)}
		if len(tt.Parameters) > 0 {
			out.Parameters = make([]ast.Type, len(tt.Parameters))
			for i, p := range tt.Parameters {
				out.Parameters[i] = cloneType(p)
			}
		}
		return out
	case *ast.TupleType:
		out := &ast.TupleType{Token: tt.Token}
		if len(tt.Elements) > 0 {
			out.Elements = make([]ast.Type, len(tt.Elements))
			for i, e := range tt.Elements {
				out.Elements[i] = cloneType(e)
			}
		}
		return out
	}
	return t
}

func clonePattern(p ast.Pattern) ast.Pattern {
	switch pp := p.(type) {
	case nil:
		return nil
	case *ast.LiteralPattern:
		return &ast.LiteralPattern{Token: pp.Token, Value: cloneExpression(pp.Value)}
	case *ast.IdentifierPattern:
		return &ast.IdentifierPattern{Token: pp.Token, Name: pp.Name}
	case *ast.WildcardPattern:
		return &ast.WildcardPattern{Token: pp.Token}
	case *ast.TuplePattern:
		out := &ast.TuplePattern{Token: pp.Token}
		if len(pp.Elements) > 0 {
			out.Elements = make([]ast.Pattern, len(pp.Elements))
			for i, e := range pp.Elements {
				out.Elements[i] = clonePattern(e)
			}
		}
		return out
	}
	return p
}
