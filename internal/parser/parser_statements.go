package parser

import (
	"pyrite/internal/ast"
	"pyrite/internal/token"
)

// parseStatement dispatches to specific statement parsers based on token type
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.FUNCTION:
		stmt := p.parseFunctionStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	case token.STRUCT:
		stmt := p.parseStructStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	case token.LET, token.VAR:
		stmt := p.parseLetStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	case token.RETURN:
		stmt := p.parseReturnStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.MATCH:
		return p.parseMatchStatement()
	case token.WITH:
		return p.parseWithStatement()
	case token.DEFER:
		return p.parseDeferStatement()
	case token.BREAK:
		stmt := p.parseBreakStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	case token.CONTINUE:
		stmt := p.parseContinueStatement()
		if stmt == nil {
			return nil
		}
		return stmt
	default:
		return p.parseExpressionStatement()
	}
}

// parseFunctionStatement handles:
// fn <name>[<compile-time params>](<params>) -> <type> { <body> }
func (p *Parser) parseFunctionStatement() *ast.FunctionStatement {
	stmt := &ast.FunctionStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		params, ok := p.parseCompileTimeParams()
		if !ok {
			return nil
		}
		stmt.CompileTimeParams = params
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Parameters = p.parseFunctionParameters()
	if stmt.Parameters == nil {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		returnType := p.parseType()
		if returnType == nil {
			return nil
		}
		stmt.ReturnType = returnType
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseCompileTimeParams parses [N: int, Flag: bool]
// Caller sits on the opening bracket.
func (p *Parser) parseCompileTimeParams() ([]*ast.CompileTimeParam, bool) {
	params := []*ast.CompileTimeParam{}

	if p.peekTokenIs(token.RBRACKET) {
		p.addError(p.peekToken, "compile-time parameter list cannot be empty")
		return nil, false
	}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		param := &ast.CompileTimeParam{Token: p.curToken, Name: p.curToken.Literal}
		if !p.expectPeek(token.COLON) {
			return nil, false
		}
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		switch p.curToken.Literal {
		case "int":
			param.Kind = ast.CompileTimeInt
		case "bool":
			param.Kind = ast.CompileTimeBool
		default:
			p.addError(p.curToken, "compile-time parameter must be int or bool, got %s", p.curToken.Literal)
			return nil, false
		}
		params = append(params, param)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil, false
	}
	return params, true
}

// parseFunctionParameters parses the parameter list: x: int, y: [u8]
func (p *Parser) parseFunctionParameters() []*ast.FunctionParameter {
	params := []*ast.FunctionParameter{}

	// Empty params: fn()
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken() // Advance to first param

	param := p.parseFunctionParameter()
	if param == nil {
		return nil
	}
	params = append(params, param)

	// More params separated by commas
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // skip comma
		p.nextToken() // advance to next param
		param := p.parseFunctionParameter()
		if param == nil {
			return nil
		}
		params = append(params, param)
	}

	// Expect closing )
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return params
}

func (p *Parser) parseFunctionParameter() *ast.FunctionParameter {
	if !p.curTokenIs(token.IDENT) {
		p.addError(p.curToken, "function parameter name must be an identifier")
		return nil
	}
	param := &ast.FunctionParameter{
		Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseType()
		if param.Type == nil {
			return nil
		}
	}

	return param
}

func (p *Parser) parseStructStatement() *ast.StructStatement {
	stmt := &ast.StructStatement{Token: p.curToken, Fields: []*ast.StructField{}}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if !p.curTokenIs(token.IDENT) {
			p.addError(p.curToken, "struct field name must be an identifier")
			return nil
		}
		field := &ast.StructField{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Type = p.parseType()
		if field.Type == nil {
			return nil
		}
		stmt.Fields = append(stmt.Fields, field)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				p.nextToken()
				break
			}
			p.nextToken()
			continue
		}
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		break
	}
	return stmt
}

// parseLetStatement handles: let <name>: <type> = <value>;
// A var declaration uses the same shape and marks the binding mutable.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken, Mutable: p.curTokenIs(token.VAR)}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.Type = p.parseType()
		if stmt.Type == nil {
			return nil
		}
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		if stmt.Type == nil {
			p.addError(p.curToken, "declaration without value requires explicit type annotation")
			return nil
		}
		return stmt
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseReturnStatement handles: return <expression>;
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.ReturnValue = nil
		return stmt
	}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{Token: p.curToken}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseIfStatement handles: if (<cond>) { } elif (<cond>) { } else { }
func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()

	for p.peekTokenIs(token.ELIF) {
		p.nextToken()
		clause := &ast.ElifClause{Token: p.curToken}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		p.nextToken()
		clause.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		clause.Body = p.parseBlockStatement()
		stmt.ElifClauses = append(stmt.ElifClauses, clause)
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}

	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseForStatement handles: for <variable> in <iterable> { <body> }
func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	stmt.Iterable = p.parseBareExpression()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseMatchStatement handles: match <subject> { <pattern> if <guard> => { } ... }
func (p *Parser) parseMatchStatement() ast.Statement {
	stmt := &ast.MatchStatement{Token: p.curToken}
	p.nextToken()
	stmt.Subject = p.parseBareExpression()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		arm := p.parseMatchArm()
		if arm == nil {
			return nil
		}
		stmt.Arms = append(stmt.Arms, arm)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return stmt
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	arm := &ast.MatchArm{Token: p.curToken}
	arm.Pattern = p.parsePattern()
	if arm.Pattern == nil {
		return nil
	}

	if p.peekTokenIs(token.IF) {
		p.nextToken()
		p.nextToken()
		arm.Guard = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(token.FATARROW) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	arm.Body = p.parseBlockStatement()

	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
	}
	return arm
}

func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.IDENT:
		if p.curToken.Literal == "_" {
			return &ast.WildcardPattern{Token: p.curToken}
		}
		return &ast.IdentifierPattern{Token: p.curToken, Name: p.curToken.Literal}
	case token.INT, token.FLOAT, token.STRING, token.CHAR, token.TRUE, token.FALSE, token.NONE, token.MINUS:
		tok := p.curToken
		value := p.parseExpression(PREFIX)
		if value == nil {
			return nil
		}
		return &ast.LiteralPattern{Token: tok, Value: value}
	case token.LPAREN:
		return p.parseTuplePattern()
	default:
		p.addError(p.curToken, "unexpected token %s in pattern", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseTuplePattern() ast.Pattern {
	pattern := &ast.TuplePattern{Token: p.curToken}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return pattern
	}
	p.nextToken()
	first := p.parsePattern()
	if first == nil {
		return nil
	}
	pattern.Elements = append(pattern.Elements, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		pattern.Elements = append(pattern.Elements, el)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return pattern
}

// parseWithStatement handles: with <variable> = <value> { <body> }
func (p *Parser) parseWithStatement() ast.Statement {
	stmt := &ast.WithStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseBareExpression()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseDeferStatement handles: defer { <body> }
func (p *Parser) parseDeferStatement() ast.Statement {
	stmt := &ast.DeferStatement{Token: p.curToken}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseBareExpression parses an expression in a position that is followed
// by a block, with struct literals suppressed so the block is not eaten
// as a literal body.
func (p *Parser) parseBareExpression() ast.Expression {
	p.structLiteralDepth++
	expr := p.parseExpression(LOWEST)
	p.structLiteralDepth--
	return expr
}

// parseExpressionStatement handles expressions used as statements,
// plus assignments whose target is an arbitrary lvalue expression.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	// Assignment: <target> = <value>;
	if p.peekTokenIs(token.ASSIGN) {
		switch stmt.Expression.(type) {
		case *ast.Identifier, *ast.IndexExpression, *ast.MemberAccessExpression:
			p.nextToken() // '='
			assign := &ast.AssignStatement{Token: p.curToken, Target: stmt.Expression}
			p.nextToken() // value expression start
			assign.Value = p.parseExpression(LOWEST)
			if !p.expectPeek(token.SEMICOLON) {
				return nil
			}
			return assign
		default:
			p.addError(p.peekToken, "invalid assignment target")
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseBlockStatement parses a sequence of statements inside { }
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return block
}
