package mono

import "pyrite/internal/ast"

// MonomorphizeProgram replaces every generic function in program with the
// set of specializations its call sites actually use.
//
// The pass runs in five steps:
//  1. register every top-level function that declares compile-time params
//  2. collect every call expression in every top-level item, source order
//  3. specialize each call that targets a registered generic function
//  4. rewrite the marked calls in place to the specialized names
//  5. assemble the output: non-generic originals in input order, then
//     every specialization in first-creation order
//
// Original generic declarations never reach the output, even when no call
// used them. A non-literal compile-time argument aborts the whole pass
// with no partial output.
func MonomorphizeProgram(program *ast.Program) (*ast.Program, error) {
	return NewContext().MonomorphizeProgram(program)
}

// MonomorphizeProgram runs the pass against c, which afterwards holds
// the registry, the cache and the recorded use sites for inspection.
func (c *Context) MonomorphizeProgram(program *ast.Program) (*ast.Program, error) {
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*ast.FunctionStatement); ok && NeedsSpecialization(fn) {
			c.RegisterOriginalFunction(fn)
		}
	}

	var marked []*ast.CallExpression
	for _, stmt := range program.Statements {
		caller := ""
		if fn, ok := stmt.(*ast.FunctionStatement); ok {
			caller = fn.Name.Value
		}
		for _, call := range CollectCalls(stmt) {
			if len(call.CompileTimeArgs) == 0 {
				continue
			}
			name, ok := calleeName(call)
			if !ok {
				continue
			}
			original, ok := c.Original(name)
			if !ok {
				continue
			}
			args, err := ExtractCompileTimeArgs(call)
			if err != nil {
				return nil, err
			}
			c.SpecializeFunction(original, args)
			if tok, ok := tokenFromNode(call); ok {
				c.recordUseSite(name, args, UseSite{Caller: caller, Line: tok.Line, Column: tok.Column})
			} else {
				c.recordUseSite(name, args, UseSite{Caller: caller})
			}
			marked = append(marked, call)
		}
	}

	for _, call := range marked {
		if err := rewriteCall(call, c); err != nil {
			return nil, err
		}
	}

	items := make([]ast.Statement, 0, len(program.Statements)+len(c.order))
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*ast.FunctionStatement); ok && NeedsSpecialization(fn) {
			continue
		}
		items = append(items, stmt)
	}
	for _, specialized := range c.Specializations() {
		items = append(items, specialized)
	}

	return &ast.Program{Statements: items}, nil
}
