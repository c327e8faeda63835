package ast

import (
	"bytes"
	"strings"

	"pyrite/internal/token"
)

// Node is the base interface for all AST nodes
// Every node must provide a TokenLiteral (for debugging) and String (for printing)
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement nodes don't produce values
// Examples: let x = 5; return 10;
type Statement interface {
	Node
	statementNode() // Dummy method to distinguish statements from expressions
}

// Expression nodes produce values
// Examples: 5, x, add(2, 3), 5 + 3
type Expression interface {
	Node
	expressionNode() // Dummy method to distinguish expressions from statements
}

// Type nodes are type annotations
// Examples: int, &Buffer, [u8; N], List[int]
type Type interface {
	Node
	typeNode()
}

// Pattern nodes appear on the left of match arms
type Pattern interface {
	Node
	patternNode()
}

// Program is the root node of every AST
// It contains a slice of statements (the top-level items)
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String builds the program back into source code (useful for debugging)
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// CompileTimeKind is the primitive kind of a compile-time parameter
type CompileTimeKind string

const (
	CompileTimeInt  CompileTimeKind = "int"
	CompileTimeBool CompileTimeKind = "bool"
)

// CompileTimeParam represents a compile-time parameter: N: int or Flag: bool
// Its value must be known at every call site; monomorphization erases it.
type CompileTimeParam struct {
	Token token.Token // The parameter name token
	Name  string
	Kind  CompileTimeKind
}

func (cp *CompileTimeParam) String() string {
	return cp.Name + ": " + string(cp.Kind)
}

// FunctionParameter is an ordinary (run-time) parameter
type FunctionParameter struct {
	Name *Identifier
	Type Type
}

func (fp *FunctionParameter) String() string {
	var out bytes.Buffer
	out.WriteString(fp.Name.String())
	if fp.Type != nil {
		out.WriteString(": ")
		out.WriteString(fp.Type.String())
	}
	return out.String()
}

// FunctionStatement represents fn <name>[<compile-time params>](<params>) -> <type> { <body> }
type FunctionStatement struct {
	Token             token.Token // The FN token
	Name              *Identifier
	CompileTimeParams []*CompileTimeParam
	Parameters        []*FunctionParameter
	ReturnType        Type // Optional
	Body              *BlockStatement
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	if fs.Name != nil {
		out.WriteString(fs.Name.String())
	}
	if len(fs.CompileTimeParams) > 0 {
		parts := make([]string, 0, len(fs.CompileTimeParams))
		for _, p := range fs.CompileTimeParams {
			parts = append(parts, p.String())
		}
		out.WriteString("[")
		out.WriteString(strings.Join(parts, ", "))
		out.WriteString("]")
	}
	params := make([]string, 0, len(fs.Parameters))
	for _, p := range fs.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(")")
	if fs.ReturnType != nil {
		out.WriteString(" -> ")
		out.WriteString(fs.ReturnType.String())
	}
	out.WriteString(" ")
	if fs.Body != nil {
		out.WriteString("{")
		out.WriteString(fs.Body.String())
		out.WriteString("}")
	}
	return out.String()
}

// LetStatement represents: let <name>: <type> = <value>;
// Mutable declarations use var instead of let.
type LetStatement struct {
	Token   token.Token // The LET or VAR token
	Name    *Identifier
	Mutable bool
	Type    Type       // Optional explicit type annotation
	Value   Expression // Optional initializer
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }

func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(ls.Name.String())
	if ls.Type != nil {
		out.WriteString(": ")
		out.WriteString(ls.Type.String())
	}
	if ls.Value != nil {
		out.WriteString(" = ")
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// AssignStatement represents: <target> = <value>;
// The target is any lvalue expression: x, obj.field, arr[i].
type AssignStatement struct {
	Token  token.Token // The ASSIGN token
	Target Expression
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }

func (as *AssignStatement) String() string {
	var out bytes.Buffer
	if as.Target != nil {
		out.WriteString(as.Target.String())
	}
	out.WriteString(" = ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement represents: return <expression>;
type ReturnStatement struct {
	Token       token.Token // The RETURN token
	ReturnValue Expression  // Optional
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }

func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(rs.TokenLiteral())
	if rs.ReturnValue != nil {
		out.WriteString(" ")
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement is a wrapper for expressions used as statements
// Example: 5 + 5; or add(2, 3);
// The expression is evaluated, then its value is discarded
type ExpressionStatement struct {
	Token      token.Token // First token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// ElifClause is one elif arm of an IfStatement
type ElifClause struct {
	Token     token.Token // The ELIF token
	Condition Expression
	Body      *BlockStatement
}

func (ec *ElifClause) String() string {
	var out bytes.Buffer
	out.WriteString("elif (")
	if ec.Condition != nil {
		out.WriteString(ec.Condition.String())
	}
	out.WriteString(") {")
	if ec.Body != nil {
		out.WriteString(ec.Body.String())
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement represents if (<condition>) { } elif (<condition>) { } else { }
type IfStatement struct {
	Token       token.Token // The IF token
	Condition   Expression
	Consequence *BlockStatement
	ElifClauses []*ElifClause
	Alternative *BlockStatement // Optional
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	if is.Condition != nil {
		out.WriteString(is.Condition.String())
	}
	out.WriteString(") ")
	if is.Consequence != nil {
		out.WriteString("{")
		out.WriteString(is.Consequence.String())
		out.WriteString("}")
	}
	for _, clause := range is.ElifClauses {
		out.WriteString(" ")
		out.WriteString(clause.String())
	}
	if is.Alternative != nil {
		out.WriteString(" else {")
		out.WriteString(is.Alternative.String())
		out.WriteString("}")
	}
	return out.String()
}

// WhileStatement represents while (<condition>) { <body> }
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	if ws.Condition != nil {
		out.WriteString(ws.Condition.String())
	}
	out.WriteString(") ")
	if ws.Body != nil {
		out.WriteString("{")
		out.WriteString(ws.Body.String())
		out.WriteString("}")
	}
	return out.String()
}

// ForStatement represents for <variable> in <iterable> { <body> }
type ForStatement struct {
	Token    token.Token // The FOR token
	Variable *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	if fs.Variable != nil {
		out.WriteString(fs.Variable.String())
	}
	out.WriteString(" in ")
	if fs.Iterable != nil {
		out.WriteString(fs.Iterable.String())
	}
	out.WriteString(" ")
	if fs.Body != nil {
		out.WriteString("{")
		out.WriteString(fs.Body.String())
		out.WriteString("}")
	}
	return out.String()
}

// MatchArm is one arm of a MatchStatement: <pattern> if <guard> => { <body> }
type MatchArm struct {
	Token   token.Token
	Pattern Pattern
	Guard   Expression // Optional
	Body    *BlockStatement
}

func (ma *MatchArm) String() string {
	var out bytes.Buffer
	if ma.Pattern != nil {
		out.WriteString(ma.Pattern.String())
	}
	if ma.Guard != nil {
		out.WriteString(" if ")
		out.WriteString(ma.Guard.String())
	}
	out.WriteString(" => {")
	if ma.Body != nil {
		out.WriteString(ma.Body.String())
	}
	out.WriteString("}")
	return out.String()
}

// MatchStatement represents match <subject> { <arms> }
type MatchStatement struct {
	Token   token.Token // The MATCH token
	Subject Expression
	Arms    []*MatchArm
}

func (ms *MatchStatement) statementNode()       {}
func (ms *MatchStatement) TokenLiteral() string { return ms.Token.Literal }
func (ms *MatchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("match ")
	if ms.Subject != nil {
		out.WriteString(ms.Subject.String())
	}
	out.WriteString(" { ")
	parts := make([]string, 0, len(ms.Arms))
	for _, arm := range ms.Arms {
		parts = append(parts, arm.String())
	}
	out.WriteString(strings.Join(parts, " "))
	out.WriteString(" }")
	return out.String()
}

// WithStatement represents with <variable> = <value> { <body> }
// The bound resource is released when the block exits.
type WithStatement struct {
	Token    token.Token // The WITH token
	Variable *Identifier
	Value    Expression
	Body     *BlockStatement
}

func (ws *WithStatement) statementNode()       {}
func (ws *WithStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WithStatement) String() string {
	var out bytes.Buffer
	out.WriteString("with ")
	if ws.Variable != nil {
		out.WriteString(ws.Variable.String())
		out.WriteString(" = ")
	}
	if ws.Value != nil {
		out.WriteString(ws.Value.String())
	}
	out.WriteString(" ")
	if ws.Body != nil {
		out.WriteString("{")
		out.WriteString(ws.Body.String())
		out.WriteString("}")
	}
	return out.String()
}

// DeferStatement represents defer { <body> }
// The body runs when the enclosing scope exits.
type DeferStatement struct {
	Token token.Token // The DEFER token
	Body  *BlockStatement
}

func (ds *DeferStatement) statementNode()       {}
func (ds *DeferStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DeferStatement) String() string {
	var out bytes.Buffer
	out.WriteString("defer ")
	if ds.Body != nil {
		out.WriteString("{")
		out.WriteString(ds.Body.String())
		out.WriteString("}")
	}
	return out.String()
}

// BreakStatement represents break;
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement represents continue;
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string       { return "continue;" }

// StructField is one field declaration inside a StructStatement
type StructField struct {
	Token token.Token
	Name  *Identifier
	Type  Type
}

func (sf *StructField) String() string {
	var out bytes.Buffer
	if sf.Name != nil {
		out.WriteString(sf.Name.String())
	}
	out.WriteString(": ")
	if sf.Type != nil {
		out.WriteString(sf.Type.String())
	}
	return out.String()
}

// StructStatement represents: struct Name { field: type, ... }
type StructStatement struct {
	Token  token.Token
	Name   *Identifier
	Fields []*StructField
}

func (ss *StructStatement) statementNode()       {}
func (ss *StructStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *StructStatement) String() string {
	var out bytes.Buffer
	out.WriteString("struct ")
	if ss.Name != nil {
		out.WriteString(ss.Name.String())
	}
	out.WriteString(" { ")
	parts := make([]string, 0, len(ss.Fields))
	for _, f := range ss.Fields {
		parts = append(parts, f.String())
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(" }")
	return out.String()
}

// BlockStatement is a sequence of statements inside braces
type BlockStatement struct {
	Token      token.Token // The { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }

func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}
