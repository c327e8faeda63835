package ast

import (
	"bytes"
	"strings"

	"pyrite/internal/token"
)

// NamedType is a plain type name: int, bool, u8, Buffer
type NamedType struct {
	Token token.Token
	Name  string
}

func (nt *NamedType) typeNode()            {}
func (nt *NamedType) TokenLiteral() string { return nt.Token.Literal }
func (nt *NamedType) String() string       { return nt.Name }

// ReferenceType represents &T or &var T
type ReferenceType struct {
	Token   token.Token // The & token
	Mutable bool
	Inner   Type
}

func (rt *ReferenceType) typeNode()            {}
func (rt *ReferenceType) TokenLiteral() string { return rt.Token.Literal }
func (rt *ReferenceType) String() string {
	var out bytes.Buffer
	out.WriteString("&")
	if rt.Mutable {
		out.WriteString("var ")
	}
	if rt.Inner != nil {
		out.WriteString(rt.Inner.String())
	}
	return out.String()
}

// ArrayType represents [T; N] where N is a constant expression
// The size expression may name a compile-time parameter.
type ArrayType struct {
	Token   token.Token // The [ token
	Element Type
	Size    Expression // Optional
}

func (at *ArrayType) typeNode()            {}
func (at *ArrayType) TokenLiteral() string { return at.Token.Literal }
func (at *ArrayType) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	if at.Element != nil {
		out.WriteString(at.Element.String())
	}
	if at.Size != nil {
		out.WriteString("; ")
		out.WriteString(at.Size.String())
	}
	out.WriteString("]")
	return out.String()
}

// SliceType represents [T]
type SliceType struct {
	Token   token.Token // The [ token
	Element Type
}

func (st *SliceType) typeNode()            {}
func (st *SliceType) TokenLiteral() string { return st.Token.Literal }
func (st *SliceType) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	if st.Element != nil {
		out.WriteString(st.Element.String())
	}
	out.WriteString("]")
	return out.String()
}

// GenericType represents List[T] or Matrix[Rows, Cols]
// An argument slot holds either a Type or an Expression: value arguments
// like Rows are expressions until monomorphization bakes them in.
type GenericType struct {
	Token token.Token
	Name  string
	Args  []Node
}

func (gt *GenericType) typeNode()            {}
func (gt *GenericType) TokenLiteral() string { return gt.Token.Literal }
func (gt *GenericType) String() string {
	var out bytes.Buffer
	out.WriteString(gt.Name)
	out.WriteString("[")
	parts := make([]string, 0, len(gt.Args))
	for _, a := range gt.Args {
		parts = append(parts, a.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("]")
	return out.String()
}

// FunctionType represents fn(int, int) -> int
type FunctionType struct {
	Token      token.Token // The FN token
	Parameters []Type
	ReturnType Type // Optional
}

func (ft *FunctionType) typeNode()            {}
func (ft *FunctionType) TokenLiteral() string { return ft.Token.Literal }
func (ft *FunctionType) String() string {
	var out bytes.Buffer
	out.WriteString("fn(")
	parts := make([]string, 0, len(ft.Parameters))
	for _, p := range ft.Parameters {
		parts = append(parts, p.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	if ft.ReturnType != nil {
		out.WriteString(" -> ")
		out.WriteString(ft.ReturnType.String())
	}
	return out.String()
}

// TupleType represents (int, string)
type TupleType struct {
	Token    token.Token // The ( token
	Elements []Type
}

func (tt *TupleType) typeNode()            {}
func (tt *TupleType) TokenLiteral() string { return tt.Token.Literal }
func (tt *TupleType) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	parts := make([]string, 0, len(tt.Elements))
	for _, e := range tt.Elements {
		parts = append(parts, e.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	return out.String()
}
