package parser

import (
	"strconv"

	"pyrite/internal/ast"
	"pyrite/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	// First, find a prefix parser for current token
	// This handles: literals, identifiers, prefix operators (!, -), grouped expressions
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	// While next token is an infix operator with higher precedence than ours,
	// consume it and build the expression tree
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()            // Advance to the operator
		leftExp = infix(leftExp) // Parse with left side already known
	}

	return leftExp
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	p.addError(p.curToken, "no prefix parse function for %s found", t)
}

// parseIdentifier parses a variable name, or a struct literal when the
// name is directly followed by a brace: Point { x: 1, y: 2 }
func (p *Parser) parseIdentifier() ast.Expression {
	if p.peekTokenIs(token.LBRACE) && p.structLiteralDepth == 0 {
		return p.parseStructLiteral()
	}
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIntegerLiteral parses a number
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	// Convert string to int64
	value, err := strconv.ParseInt(p.curToken.Literal, 0, 64)
	if err != nil {
		p.addError(p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError(p.curToken, "could not parse %q as float", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	if len(p.curToken.Literal) != 1 {
		p.addError(p.curToken, "invalid char literal")
		return nil
	}
	return &ast.CharLiteral{Token: p.curToken, Value: rune(p.curToken.Literal[0])}
}

// parseBoolean handles true/false
func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{
		Token: p.curToken,
		Value: p.curTokenIs(token.TRUE),
	}
}

func (p *Parser) parseNoneLiteral() ast.Expression {
	return &ast.NoneLiteral{Token: p.curToken}
}

// parsePrefixExpression handles !<expr>, -<expr> and &<expr>
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken() // Advance past the operator

	// Parse the operand with PREFIX precedence (high)
	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parseInfixExpression handles <left> <op> <right>
// Called with left side already parsed
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseTernaryExpression handles <consequence> if <condition> else <alternative>
// Called with the consequence already parsed and current token on IF.
func (p *Parser) parseTernaryExpression(consequence ast.Expression) ast.Expression {
	expression := &ast.TernaryExpression{
		Token:       p.curToken,
		Consequence: consequence,
	}

	p.nextToken()
	expression.Condition = p.parseExpression(TERNARY)

	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	// Right-associative: a if c1 else b if c2 else d nests to the right
	expression.Alternative = p.parseExpression(TERNARY - 1)

	return expression
}

// parseTryExpression handles the postfix <expr>? operator
func (p *Parser) parseTryExpression(inner ast.Expression) ast.Expression {
	return &ast.TryExpression{Token: p.curToken, Inner: inner}
}

// parseGroupedExpression handles ( <expr> ) and tuple literals (a, b)
// Parentheses let us override precedence: (5 + 3) * 2
func (p *Parser) parseGroupedExpression() ast.Expression {
	lparen := p.curToken

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken() // )
		return &ast.TupleLiteral{Token: lparen, Elements: []ast.Expression{}}
	}

	p.nextToken() // Advance past (

	// Struct literals come back inside parentheses
	depth := p.structLiteralDepth
	p.structLiteralDepth = 0
	defer func() { p.structLiteralDepth = depth }()

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if p.peekTokenIs(token.COMMA) {
		tuple := &ast.TupleLiteral{Token: lparen, Elements: []ast.Expression{first}}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken() // ,
			p.nextToken() // next element
			el := p.parseExpression(LOWEST)
			if el == nil {
				return nil
			}
			tuple.Elements = append(tuple.Elements, el)
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return tuple
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

// parseArrayLiteral handles [expr1, expr2, ...]
func (p *Parser) parseArrayLiteral() ast.Expression {
	lit := &ast.ArrayLiteral{Token: p.curToken}
	lit.Elements = []ast.Expression{}

	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return lit
}

// parseStructLiteral handles Point { x: 1, y: 2 }
// Called with the current token on the struct name.
func (p *Parser) parseStructLiteral() ast.Expression {
	lit := &ast.StructLiteral{Token: p.curToken, Name: p.curToken.Literal}
	p.nextToken() // {

	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return lit
	}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		field := &ast.StructLiteralField{Name: p.curToken.Literal}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Value = p.parseExpression(LOWEST)
		lit.Fields = append(lit.Fields, field)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return lit
}

// parseCallExpression handles: <function>(<arguments>)
// Called when we see ( after parsing a function expression
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

// parseBracketSuffix disambiguates the three bracket forms that follow an
// expression: indexing a[i], slicing a[start..end], and compile-time
// argument lists f[256](data). A bracket list directly followed by a call
// is the compile-time form.
func (p *Parser) parseBracketSuffix(left ast.Expression) ast.Expression {
	lbracket := p.curToken

	// a[..] or a[..end]
	if p.peekTokenIs(token.DOTDOT) {
		p.nextToken()
		slice := &ast.SliceExpression{Token: lbracket, Left: left}
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			slice.End = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return slice
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}

	// a[start..] or a[start..end]
	if p.peekTokenIs(token.DOTDOT) {
		p.nextToken()
		slice := &ast.SliceExpression{Token: lbracket, Left: left, Start: first}
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			slice.End = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return slice
	}

	// f[a, b](...) - multiple values can only be compile-time arguments
	if p.peekTokenIs(token.COMMA) {
		ctArgs := []ast.Expression{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			arg := p.parseExpression(LOWEST)
			if arg == nil {
				return nil
			}
			ctArgs = append(ctArgs, arg)
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		exp := &ast.CallExpression{Token: p.curToken, Function: left, CompileTimeArgs: ctArgs}
		exp.Arguments = p.parseCallArguments()
		return exp
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	// f[a](...) - a single bracketed value followed by a call
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		exp := &ast.CallExpression{Token: p.curToken, Function: left, CompileTimeArgs: []ast.Expression{first}}
		exp.Arguments = p.parseCallArguments()
		return exp
	}

	return &ast.IndexExpression{Token: lbracket, Left: left, Index: first}
}

// parseMethodCallExpression handles a.b (member access) and a.b(...) (method call)
func (p *Parser) parseMethodCallExpression(left ast.Expression) ast.Expression {
	dot := p.curToken

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.peekTokenIs(token.LPAREN) {
		return &ast.MemberAccessExpression{
			Token:  dot,
			Object: left,
			Field:  prop,
		}
	}

	p.nextToken() // (
	exp := &ast.MethodCallExpression{
		Token:  dot,
		Object: left,
		Method: prop,
	}
	exp.Arguments = p.parseCallArguments()
	return exp
}

// parseCallArguments parses argument list: 1, 2, 3
// Called with the current token on the opening parenthesis.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}
