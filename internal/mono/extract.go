package mono

import (
	"pyrite/internal/ast"
	"pyrite/internal/diag"
)

// ExtractCompileTimeArgs maps each compile-time argument expression of a
// call to its literal value, in declaration order.
//
//	create_buffer[256]()      -> (256)
//	process[256, true](data)  -> (256, true)
//
// Compile-time arguments must be resolvable without evaluation; any
// argument that is not an integer or boolean literal is a hard
// compilation error naming the offending call.
func ExtractCompileTimeArgs(call *ast.CallExpression) ([]Value, error) {
	args := make([]Value, 0, len(call.CompileTimeArgs))
	for _, expr := range call.CompileTimeArgs {
		switch lit := expr.(type) {
		case *ast.IntegerLiteral:
			args = append(args, IntVal(lit.Value))
		case *ast.Boolean:
			args = append(args, BoolVal(lit.Value))
		default:
			err := diag.Errorf("compile-time arguments must be literals, got %T", expr)
			return nil, annotateError(err, call)
		}
	}
	return args, nil
}

// annotateError fills in the source context and position of a CodeError
// from the node it concerns, keeping anything already set.
func annotateError(err *diag.CodeError, node ast.Node) *diag.CodeError {
	if node == nil {
		return err
	}
	if err.Context == "" {
		err.Context = node.String()
	}
	if tok, ok := tokenFromNode(node); ok {
		if err.Line <= 0 {
			err.Line = tok.Line
		}
		if err.Column <= 0 {
			err.Column = tok.Column
		}
	}
	return err
}
