package mono

import "pyrite/internal/ast"

// calleeName extracts the callee's simple name, if the callee is a bare
// identifier. Calls through field accesses or other computed callees
// return false and are never rewritten.
func calleeName(call *ast.CallExpression) (string, bool) {
	if id, ok := call.Function.(*ast.Identifier); ok {
		return id.Value, true
	}
	return "", false
}

// rewriteCall redirects one call site at its specialization: the callee
// name becomes the mangled name and the compile-time argument list is
// cleared, since the values are now baked into the target. A call is
// rewritten only when it carries compile-time arguments, its callee is a
// bare name, and that name is a registered generic function; everything
// else is left untouched. Rewriting never creates specializations.
func rewriteCall(call *ast.CallExpression, ctx *Context) error {
	if len(call.CompileTimeArgs) == 0 {
		return nil
	}
	name, ok := calleeName(call)
	if !ok {
		return nil
	}
	if _, ok := ctx.Original(name); !ok {
		return nil
	}

	args, err := ExtractCompileTimeArgs(call)
	if err != nil {
		return err
	}

	if id, ok := call.Function.(*ast.Identifier); ok {
		id.Value = ctx.SpecializedName(name, args)
	}
	call.CompileTimeArgs = nil
	return nil
}
