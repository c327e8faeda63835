package ast

import (
	"bytes"
	"strings"

	"pyrite/internal/token"
)

// LiteralPattern matches a single literal value: 0, true, "x"
type LiteralPattern struct {
	Token token.Token
	Value Expression // Only literal expressions are valid here
}

func (lp *LiteralPattern) patternNode()         {}
func (lp *LiteralPattern) TokenLiteral() string { return lp.Token.Literal }
func (lp *LiteralPattern) String() string {
	if lp.Value != nil {
		return lp.Value.String()
	}
	return ""
}

// IdentifierPattern binds the matched value to a name
type IdentifierPattern struct {
	Token token.Token
	Name  string
}

func (ip *IdentifierPattern) patternNode()         {}
func (ip *IdentifierPattern) TokenLiteral() string { return ip.Token.Literal }
func (ip *IdentifierPattern) String() string       { return ip.Name }

// WildcardPattern matches anything without binding: _
type WildcardPattern struct {
	Token token.Token
}

func (wp *WildcardPattern) patternNode()         {}
func (wp *WildcardPattern) TokenLiteral() string { return wp.Token.Literal }
func (wp *WildcardPattern) String() string       { return "_" }

// TuplePattern destructures a tuple: (a, b)
type TuplePattern struct {
	Token    token.Token // The ( token
	Elements []Pattern
}

func (tp *TuplePattern) patternNode()         {}
func (tp *TuplePattern) TokenLiteral() string { return tp.Token.Literal }
func (tp *TuplePattern) String() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(tp.Elements))
	for _, e := range tp.Elements {
		parts = append(parts, e.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	return out.String()
}
