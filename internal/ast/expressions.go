package ast

import (
	"bytes"
	"strings"

	"pyrite/internal/token"
)

// Identifier represents a variable name
// It's an expression because it produces a value (the variable's value)
type Identifier struct {
	Token token.Token // The IDENT token
	Value string      // The actual name: "x", "foo"
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral represents a number like 5 or 42
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// FloatLiteral represents a floating-point number like 3.14
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }

// StringLiteral represents a string like "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }

// CharLiteral represents a character like 'a'
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()      {}
func (cl *CharLiteral) TokenLiteral() string { return cl.Token.Literal }
func (cl *CharLiteral) String() string       { return "'" + string(cl.Value) + "'" }

// Boolean represents true or false
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) String() string       { return b.Token.Literal }

// NoneLiteral represents none.
type NoneLiteral struct {
	Token token.Token
}

func (nl *NoneLiteral) expressionNode()      {}
func (nl *NoneLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NoneLiteral) String() string       { return "none" }

// PrefixExpression represents !<expr> or -<expr>
type PrefixExpression struct {
	Token    token.Token // The prefix token (! or -)
	Operator string      // "!" or "-"
	Right    Expression  // The operand
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }

func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// InfixExpression represents <left> <op> <right>
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }

func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// TernaryExpression represents <consequence> if <condition> else <alternative>
type TernaryExpression struct {
	Token       token.Token // The IF token
	Consequence Expression
	Condition   Expression
	Alternative Expression
}

func (te *TernaryExpression) expressionNode()      {}
func (te *TernaryExpression) TokenLiteral() string { return te.Token.Literal }
func (te *TernaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(te.Consequence.String())
	out.WriteString(" if ")
	out.WriteString(te.Condition.String())
	out.WriteString(" else ")
	out.WriteString(te.Alternative.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression represents <function>[<compile-time args>](<arguments>)
type CallExpression struct {
	Token           token.Token // The ( token
	Function        Expression  // Usually an Identifier
	CompileTimeArgs []Expression
	Arguments       []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }

func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	if len(ce.CompileTimeArgs) > 0 {
		ctArgs := make([]string, 0, len(ce.CompileTimeArgs))
		for _, a := range ce.CompileTimeArgs {
			ctArgs = append(ctArgs, a.String())
		}
		out.WriteString("[")
		out.WriteString(strings.Join(ctArgs, ", "))
		out.WriteString("]")
	}
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// MethodCallExpression represents <object>.<method>(<arguments>)
type MethodCallExpression struct {
	Token     token.Token // The . token
	Object    Expression
	Method    *Identifier
	Arguments []Expression
}

func (mce *MethodCallExpression) expressionNode()      {}
func (mce *MethodCallExpression) TokenLiteral() string { return mce.Token.Literal }
func (mce *MethodCallExpression) String() string {
	var out bytes.Buffer
	if mce.Object != nil {
		out.WriteString(mce.Object.String())
	}
	out.WriteString(".")
	if mce.Method != nil {
		out.WriteString(mce.Method.String())
	}
	out.WriteString("(")

	args := make([]string, 0, len(mce.Arguments))
	for _, a := range mce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// MemberAccessExpression represents <object>.<field>
type MemberAccessExpression struct {
	Token  token.Token // The . token
	Object Expression
	Field  *Identifier
}

func (mae *MemberAccessExpression) expressionNode()      {}
func (mae *MemberAccessExpression) TokenLiteral() string { return mae.Token.Literal }
func (mae *MemberAccessExpression) String() string {
	var out bytes.Buffer
	if mae.Object != nil {
		out.WriteString(mae.Object.String())
	}
	out.WriteString(".")
	if mae.Field != nil {
		out.WriteString(mae.Field.String())
	}
	return out.String()
}

// IndexExpression represents: <left>[<index>]
type IndexExpression struct {
	Token token.Token // The '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ie.Left.String())
	out.WriteString("[")
	out.WriteString(ie.Index.String())
	out.WriteString("]")
	return out.String()
}

// SliceExpression represents: <left>[<start>..<end>]
// Start and End are both optional.
type SliceExpression struct {
	Token token.Token // The '[' token
	Left  Expression
	Start Expression
	End   Expression
}

func (se *SliceExpression) expressionNode()      {}
func (se *SliceExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SliceExpression) String() string {
	var out bytes.Buffer
	out.WriteString(se.Left.String())
	out.WriteString("[")
	if se.Start != nil {
		out.WriteString(se.Start.String())
	}
	out.WriteString("..")
	if se.End != nil {
		out.WriteString(se.End.String())
	}
	out.WriteString("]")
	return out.String()
}

// ArrayLiteral represents [expr1, expr2, ...]
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(al.Elements))
	for _, el := range al.Elements {
		parts = append(parts, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("]")
	return out.String()
}

// TupleLiteral represents (expr1, expr2, ...)
type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (tl *TupleLiteral) expressionNode()      {}
func (tl *TupleLiteral) TokenLiteral() string { return tl.Token.Literal }
func (tl *TupleLiteral) String() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(tl.Elements))
	for _, el := range tl.Elements {
		parts = append(parts, el.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	return out.String()
}

// StructLiteralField is one field initializer in a StructLiteral
type StructLiteralField struct {
	Name  string
	Value Expression
}

func (slf *StructLiteralField) String() string {
	var out bytes.Buffer
	out.WriteString(slf.Name)
	out.WriteString(": ")
	if slf.Value != nil {
		out.WriteString(slf.Value.String())
	}
	return out.String()
}

// StructLiteral represents Point { x: 1, y: 2 }
type StructLiteral struct {
	Token  token.Token // The struct name token
	Name   string
	Fields []*StructLiteralField
}

func (sl *StructLiteral) expressionNode()      {}
func (sl *StructLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StructLiteral) String() string {
	var out bytes.Buffer
	out.WriteString(sl.Name)
	out.WriteString(" { ")
	parts := make([]string, 0, len(sl.Fields))
	for _, f := range sl.Fields {
		parts = append(parts, f.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(" }")
	return out.String()
}

// TryExpression represents <expr>? for error propagation
type TryExpression struct {
	Token token.Token // The ? token
	Inner Expression
}

func (te *TryExpression) expressionNode()      {}
func (te *TryExpression) TokenLiteral() string { return te.Token.Literal }
func (te *TryExpression) String() string {
	var out bytes.Buffer
	if te.Inner != nil {
		out.WriteString(te.Inner.String())
	}
	out.WriteString("?")
	return out.String()
}
