// Package mono replaces every function that declares compile-time
// parameters with one concrete specialization per distinct argument tuple
// actually used, and rewrites the call sites to target the specialized
// names. It runs between type checking and code generation and assumes a
// well-formed, type-checked tree.
package mono

import (
	"strconv"
	"strings"

	"pyrite/internal/ast"
)

// ValueKind tags the primitive kind of a compile-time value.
type ValueKind int

const (
	IntValue ValueKind = iota
	BoolValue
)

// Value is one compile-time argument: a 64-bit integer or a boolean.
// It is a small comparable struct so argument tuples can be compared and
// hashed by value rather than by source text.
type Value struct {
	Kind ValueKind
	Int  int64
	Bool bool
}

func IntVal(v int64) Value { return Value{Kind: IntValue, Int: v} }
func BoolVal(v bool) Value { return Value{Kind: BoolValue, Bool: v} }

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	}
	return "kind" + strconv.Itoa(int(v.Kind))
}

// specializationKey identifies one (function, argument tuple) pair.
// Go maps cannot key on slices, so the tuple is flattened to a stable
// string encoding; two value-equal tuples always produce the same key.
type specializationKey struct {
	Name string
	Args string
}

func argsKey(args []Value) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte('#')
		}
		switch arg.Kind {
		case IntValue:
			b.WriteByte('i')
			b.WriteString(strconv.FormatInt(arg.Int, 10))
		case BoolValue:
			b.WriteByte('b')
			b.WriteString(strconv.FormatBool(arg.Bool))
		default:
			b.WriteByte('k')
			b.WriteString(strconv.Itoa(int(arg.Kind)))
		}
	}
	return b.String()
}

// UseSite records one call that requested a specialization.
type UseSite struct {
	Caller string // Enclosing function name, "" for top-level code
	Line   int
	Column int
}

// Context owns the original-function registry and the specialization
// cache for one compilation. It is not safe for concurrent use; create a
// fresh Context per MonomorphizeProgram call.
type Context struct {
	originals   map[string]*ast.FunctionStatement
	specialized map[specializationKey]*ast.FunctionStatement
	order       []*ast.FunctionStatement
	useSites    map[specializationKey][]UseSite
}

func NewContext() *Context {
	return &Context{
		originals:   make(map[string]*ast.FunctionStatement),
		specialized: make(map[specializationKey]*ast.FunctionStatement),
		useSites:    make(map[specializationKey][]UseSite),
	}
}

// NeedsSpecialization reports whether fn declares compile-time parameters.
func NeedsSpecialization(fn *ast.FunctionStatement) bool {
	return len(fn.CompileTimeParams) > 0
}

// RegisterOriginalFunction stores fn in the registry keyed by name.
// A duplicate registration is a silent no-op; the first one wins.
func (c *Context) RegisterOriginalFunction(fn *ast.FunctionStatement) {
	name := fn.Name.Value
	if _, ok := c.originals[name]; !ok {
		c.originals[name] = fn
	}
}

// Original returns the registered declaration for name, if any.
func (c *Context) Original(name string) (*ast.FunctionStatement, bool) {
	fn, ok := c.originals[name]
	return fn, ok
}

// SpecializedName computes the mangled name for base specialized with args.
// process[256, true] becomes process_256_true; negative integers spell the
// sign out: offset[-10] becomes offset_neg10. An empty tuple leaves the
// name unchanged.
func SpecializedName(base string, args []Value) string {
	if len(args) == 0 {
		return base
	}
	segments := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg.Kind {
		case BoolValue:
			if arg.Bool {
				segments = append(segments, "true")
			} else {
				segments = append(segments, "false")
			}
		case IntValue:
			s := strconv.FormatInt(arg.Int, 10)
			if strings.HasPrefix(s, "-") {
				s = "neg" + s[1:]
			}
			segments = append(segments, s)
		default:
			// Unreachable on type-checked input; still mangle something
			// deterministic instead of crashing.
			segments = append(segments, "k"+strconv.Itoa(int(arg.Kind)))
		}
	}
	return base + "_" + strings.Join(segments, "_")
}

// SpecializedName is the method form used by the driver and the rewriter.
func (c *Context) SpecializedName(base string, args []Value) string {
	return SpecializedName(base, args)
}

// SpecializeFunction returns the specialization of fn for args, creating
// it on first request. Repeated requests with a value-equal tuple return
// the same declaration pointer, never a second copy.
func (c *Context) SpecializeFunction(fn *ast.FunctionStatement, args []Value) *ast.FunctionStatement {
	key := specializationKey{Name: fn.Name.Value, Args: argsKey(args)}
	if cached, ok := c.specialized[key]; ok {
		return cached
	}

	subs := make(map[string]Value, len(fn.CompileTimeParams))
	for i, param := range fn.CompileTimeParams {
		if i >= len(args) {
			break
		}
		subs[param.Name] = args[i]
	}

	specialized := cloneFunction(fn)
	specialized.Name = &ast.Identifier{
		Token: fn.Name.Token,
		Value: SpecializedName(fn.Name.Value, args),
	}
	specialized.Name.Token.Literal = specialized.Name.Value
	specialized.CompileTimeParams = nil
	specialized.Body = substituteBlock(specialized.Body, subs)
	if specialized.ReturnType != nil {
		specialized.ReturnType = substituteType(specialized.ReturnType, subs)
	}
	for _, param := range specialized.Parameters {
		if param.Type != nil {
			param.Type = substituteType(param.Type, subs)
		}
	}

	c.specialized[key] = specialized
	c.order = append(c.order, specialized)
	return specialized
}

// Specializations returns every specialization created so far, in the
// order each was first created.
func (c *Context) Specializations() []*ast.FunctionStatement {
	return c.order
}

// UseSites returns the recorded call sites that requested the given
// specialization, in discovery order.
func (c *Context) UseSites(name string, args []Value) []UseSite {
	return c.useSites[specializationKey{Name: name, Args: argsKey(args)}]
}

func (c *Context) recordUseSite(name string, args []Value, site UseSite) {
	key := specializationKey{Name: name, Args: argsKey(args)}
	c.useSites[key] = append(c.useSites[key], site)
}
