package parser

import (
	"pyrite/internal/ast"
	"pyrite/internal/token"
)

// parseType parses a type annotation with the current token on its first
// token: int, &var Buffer, [u8; N], [int], List[int], Matrix[f64, N],
// fn(int) -> int, (int, string)
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parseNamedOrGenericType()
	case token.AMP:
		return p.parseReferenceType()
	case token.LBRACKET:
		return p.parseArrayOrSliceType()
	case token.FUNCTION:
		return p.parseFunctionType()
	case token.LPAREN:
		return p.parseTupleType()
	default:
		p.addError(p.curToken, "unexpected token %s in type", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseNamedOrGenericType() ast.Type {
	nameTok := p.curToken

	if !p.peekTokenIs(token.LBRACKET) {
		return &ast.NamedType{Token: nameTok, Name: nameTok.Literal}
	}

	p.nextToken() // [
	generic := &ast.GenericType{Token: nameTok, Name: nameTok.Literal}

	p.nextToken()
	first := p.parseGenericArg()
	if first == nil {
		return nil
	}
	generic.Args = append(generic.Args, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseGenericArg()
		if arg == nil {
			return nil
		}
		generic.Args = append(generic.Args, arg)
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return generic
}

// parseGenericArg parses one argument slot of a generic type. Value slots
// hold expressions: integer literals, booleans, and bare names that may be
// compile-time parameters. A bare name doubles as a type name; it stays an
// identifier expression here because only later passes can tell the two
// apart, and both render the same.
func (p *Parser) parseGenericArg() ast.Node {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBoolean()
	case token.MINUS:
		return p.parsePrefixExpression()
	case token.IDENT:
		if p.peekTokenIs(token.LBRACKET) {
			return p.parseNamedOrGenericType()
		}
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	default:
		t := p.parseType()
		if t == nil {
			return nil
		}
		return t
	}
}

func (p *Parser) parseReferenceType() ast.Type {
	ref := &ast.ReferenceType{Token: p.curToken}
	if p.peekTokenIs(token.VAR) {
		p.nextToken()
		ref.Mutable = true
	}
	p.nextToken()
	ref.Inner = p.parseType()
	if ref.Inner == nil {
		return nil
	}
	return ref
}

// parseArrayOrSliceType parses [T] (slice) or [T; N] (sized array)
func (p *Parser) parseArrayOrSliceType() ast.Type {
	lbracket := p.curToken

	p.nextToken()
	element := p.parseType()
	if element == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken() // ;
		p.nextToken()
		arr := &ast.ArrayType{Token: lbracket, Element: element}
		arr.Size = p.parseExpression(LOWEST)
		if arr.Size == nil {
			return nil
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return arr
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.SliceType{Token: lbracket, Element: element}
}

func (p *Parser) parseFunctionType() ast.Type {
	fnType := &ast.FunctionType{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		param := p.parseType()
		if param == nil {
			return nil
		}
		fnType.Parameters = append(fnType.Parameters, param)
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			param := p.parseType()
			if param == nil {
				return nil
			}
			fnType.Parameters = append(fnType.Parameters, param)
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		fnType.ReturnType = p.parseType()
		if fnType.ReturnType == nil {
			return nil
		}
	}
	return fnType
}

func (p *Parser) parseTupleType() ast.Type {
	tuple := &ast.TupleType{Token: p.curToken}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return tuple
	}

	p.nextToken()
	first := p.parseType()
	if first == nil {
		return nil
	}
	tuple.Elements = append(tuple.Elements, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		el := p.parseType()
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
