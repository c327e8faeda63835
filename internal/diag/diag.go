package diag

import (
	"fmt"
	"strings"
)

// CodeError is a compilation error tied to a place in the source program.
// Context holds the offending construct rendered back to source text.
type CodeError struct {
	Message string
	Context string
	Line    int
	Column  int
}

func (e *CodeError) Error() string {
	var out strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&out, "%d:%d: ", e.Line, e.Column)
	}
	out.WriteString(e.Message)
	if ctx := strings.TrimSpace(e.Context); ctx != "" {
		out.WriteString(": `")
		out.WriteString(ctx)
		out.WriteString("`")
	}
	return out.String()
}

// Errorf builds a CodeError without position information.
// Callers annotate position and context from the offending node afterwards.
func Errorf(format string, args ...any) *CodeError {
	return &CodeError{Message: fmt.Sprintf(format, args...)}
}
