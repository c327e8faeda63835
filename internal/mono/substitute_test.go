package mono

import (
	"testing"

	"pyrite/internal/ast"
	"pyrite/internal/token"
)

func specializeBody(t *testing.T, fn *ast.FunctionStatement, args ...Value) *ast.BlockStatement {
	t.Helper()
	ctx := NewContext()
	return ctx.SpecializeFunction(fn, args).Body
}

func TestSubstituteReturnValue(t *testing.T) {
	// fn f[N: int]() -> int { return N; } with N=42
	body := specializeBody(t, genericFn("f", ret(ident("N"))), IntVal(42))

	retStmt := body.Statements[0].(*ast.ReturnStatement)
	lit, ok := retStmt.ReturnValue.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("return value is %T, want IntegerLiteral", retStmt.ReturnValue)
	}
	if lit.Value != 42 {
		t.Fatalf("return value=%d want=42", lit.Value)
	}
}

func TestSubstituteBoolParam(t *testing.T) {
	fn := &ast.FunctionStatement{
		Token: tok(token.FUNCTION, "fn"),
		Name:  ident("debug"),
		CompileTimeParams: []*ast.CompileTimeParam{
			{Token: tok(token.IDENT, "Flag"), Name: "Flag", Kind: ast.CompileTimeBool},
		},
		Body: block(ret(ident("Flag"))),
	}
	body := specializeBody(t, fn, BoolVal(true))

	lit, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.Boolean)
	if !ok || !lit.Value {
		t.Fatalf("expected boolean literal true")
	}
}

func TestConstFoldMultiply(t *testing.T) {
	// fn f[N: int]() -> int { return N * 2; } with N=10
	body := specializeBody(t, genericFn("f", ret(infix(ident("N"), "*", intArg(2)))), IntVal(10))

	lit, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("expected multiplication to fold to a literal")
	}
	if lit.Value != 20 {
		t.Fatalf("folded value=%d want=20", lit.Value)
	}
}

func TestConstFoldOperators(t *testing.T) {
	tests := []struct {
		op   string
		n    int64
		rhs  int64
		want int64
	}{
		{"+", 10, 3, 13},
		{"-", 10, 3, 7},
		{"*", 10, 3, 30},
		{"/", 10, 3, 3},
		{"%", 10, 3, 1},
		{"/", -7, 2, -4}, // floor, not truncation
		{"%", -7, 2, 1},
	}
	for _, tt := range tests {
		body := specializeBody(t, genericFn("f", ret(infix(ident("N"), tt.op, intArg(tt.rhs)))), IntVal(tt.n))
		lit, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.IntegerLiteral)
		if !ok {
			t.Fatalf("%d %s %d did not fold", tt.n, tt.op, tt.rhs)
		}
		if lit.Value != tt.want {
			t.Fatalf("%d %s %d=%d want=%d", tt.n, tt.op, tt.rhs, lit.Value, tt.want)
		}
	}
}

func TestConstFoldBooleans(t *testing.T) {
	fn := func(op string) *ast.FunctionStatement {
		f := genericFn("f", ret(infix(ident("Flag"), op, boolArg(true))))
		f.CompileTimeParams = []*ast.CompileTimeParam{
			{Token: tok(token.IDENT, "Flag"), Name: "Flag", Kind: ast.CompileTimeBool},
		}
		return f
	}

	body := specializeBody(t, fn("&&"), BoolVal(false))
	lit, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.Boolean)
	if !ok || lit.Value {
		t.Fatalf("false && true should fold to false")
	}

	body = specializeBody(t, fn("||"), BoolVal(false))
	lit, ok = body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.Boolean)
	if !ok || !lit.Value {
		t.Fatalf("false || true should fold to true")
	}
}

func TestDivisionByZeroNeverFolds(t *testing.T) {
	for _, op := range []string{"/", "%"} {
		body := specializeBody(t, genericFn("f", ret(infix(ident("N"), op, intArg(0)))), IntVal(10))
		if _, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.InfixExpression); !ok {
			t.Fatalf("N %s 0 must stay a binary expression", op)
		}
	}
}

func TestComparisonOperatorsNotFolded(t *testing.T) {
	body := specializeBody(t, genericFn("f", ret(infix(ident("N"), "==", intArg(10)))), IntVal(10))
	expr, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("unsupported operator must not fold")
	}
	if _, ok := expr.Left.(*ast.IntegerLiteral); !ok {
		t.Fatalf("operands must still be substituted")
	}
}

func TestUnaryOperandNotFolded(t *testing.T) {
	// return -N stays a prefix expression even though the operand is now a literal
	neg := &ast.PrefixExpression{Token: tok(token.MINUS, "-"), Operator: "-", Right: ident("N")}
	body := specializeBody(t, genericFn("f", ret(neg)), IntVal(5))

	pref, ok := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.PrefixExpression)
	if !ok {
		t.Fatalf("unary expression folded away")
	}
	if lit, ok := pref.Right.(*ast.IntegerLiteral); !ok || lit.Value != 5 {
		t.Fatalf("unary operand not substituted")
	}
}

func TestLoopVariableNeverSubstituted(t *testing.T) {
	// fn f[N: int]() { for N in xs { g(N); } }
	loop := &ast.ForStatement{
		Token:    tok(token.FOR, "for"),
		Variable: ident("N"),
		Iterable: ident("xs"),
		Body:     block(exprStmt(call("g", nil, ident("N")))),
	}
	body := specializeBody(t, genericFn("f", loop), IntVal(3))

	got := body.Statements[0].(*ast.ForStatement)
	if got.Variable.Value != "N" {
		t.Fatalf("loop variable renamed to %q", got.Variable.Value)
	}
	// Occurrences in the body are still substituted.
	inner := got.Body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if lit, ok := inner.Arguments[0].(*ast.IntegerLiteral); !ok || lit.Value != 3 {
		t.Fatalf("body occurrence not substituted")
	}
}

func TestUnrelatedIdentifierPassesThroughUnchanged(t *testing.T) {
	other := ident("other")
	body := specializeBody(t, genericFn("f", ret(other)), IntVal(1))

	if got := body.Statements[0].(*ast.ReturnStatement).ReturnValue.(*ast.Identifier); got.Value != "other" {
		t.Fatalf("unrelated identifier changed to %q", got.Value)
	}
}

func TestSubstituteControlFlow(t *testing.T) {
	// if (N > 0) { x = N; } elif (N < 0) { return N; } else { while (N) { g(N); } }
	stmt := &ast.IfStatement{
		Token:     tok(token.IF, "if"),
		Condition: infix(ident("N"), ">", intArg(0)),
		Consequence: block(&ast.AssignStatement{
			Token:  tok(token.ASSIGN, "="),
			Target: ident("x"),
			Value:  ident("N"),
		}),
		ElifClauses: []*ast.ElifClause{{
			Token:     tok(token.ELIF, "elif"),
			Condition: infix(ident("N"), "<", intArg(0)),
			Body:      block(ret(ident("N"))),
		}},
		Alternative: block(&ast.WhileStatement{
			Token:     tok(token.WHILE, "while"),
			Condition: ident("N"),
			Body:      block(exprStmt(call("g", nil, ident("N")))),
		}),
	}
	body := specializeBody(t, genericFn("f", stmt), IntVal(7))

	got := body.Statements[0].(*ast.IfStatement)
	cond := got.Condition.(*ast.InfixExpression)
	if lit, ok := cond.Left.(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("if condition not substituted")
	}
	assign := got.Consequence.Statements[0].(*ast.AssignStatement)
	if lit, ok := assign.Value.(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("assignment value not substituted")
	}
	elifCond := got.ElifClauses[0].Condition.(*ast.InfixExpression)
	if lit, ok := elifCond.Left.(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("elif condition not substituted")
	}
	elifRet := got.ElifClauses[0].Body.Statements[0].(*ast.ReturnStatement)
	if lit, ok := elifRet.ReturnValue.(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("elif body not substituted")
	}
	loop := got.Alternative.Statements[0].(*ast.WhileStatement)
	if lit, ok := loop.Condition.(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("while condition not substituted")
	}
}

func TestSubstituteMatchAndWith(t *testing.T) {
	match := &ast.MatchStatement{
		Token:   tok(token.MATCH, "match"),
		Subject: ident("N"),
		Arms: []*ast.MatchArm{{
			Token:   tok(token.IDENT, "_"),
			Pattern: &ast.WildcardPattern{Token: tok(token.IDENT, "_")},
			Guard:   infix(ident("N"), ">", intArg(0)),
			Body:    block(ret(ident("N"))),
		}},
	}
	with := &ast.WithStatement{
		Token:    tok(token.WITH, "with"),
		Variable: ident("handle"),
		Value:    call("open", nil, ident("N")),
		Body:     block(exprStmt(ident("N"))),
	}
	body := specializeBody(t, genericFn("f", match, with), IntVal(9))

	gotMatch := body.Statements[0].(*ast.MatchStatement)
	if lit, ok := gotMatch.Subject.(*ast.IntegerLiteral); !ok || lit.Value != 9 {
		t.Fatalf("match subject not substituted")
	}
	guard := gotMatch.Arms[0].Guard.(*ast.InfixExpression)
	if lit, ok := guard.Left.(*ast.IntegerLiteral); !ok || lit.Value != 9 {
		t.Fatalf("match guard not substituted")
	}
	armRet := gotMatch.Arms[0].Body.Statements[0].(*ast.ReturnStatement)
	if lit, ok := armRet.ReturnValue.(*ast.IntegerLiteral); !ok || lit.Value != 9 {
		t.Fatalf("match arm body not substituted")
	}

	gotWith := body.Statements[1].(*ast.WithStatement)
	arg := gotWith.Value.(*ast.CallExpression).Arguments[0]
	if lit, ok := arg.(*ast.IntegerLiteral); !ok || lit.Value != 9 {
		t.Fatalf("with value not substituted")
	}
	inner := gotWith.Body.Statements[0].(*ast.ExpressionStatement).Expression
	if lit, ok := inner.(*ast.IntegerLiteral); !ok || lit.Value != 9 {
		t.Fatalf("with body not substituted")
	}
}

func TestSubstituteExpressions(t *testing.T) {
	// defer { buf[N] = arr[N..N]; } plus literals and accesses using N
	deferStmt := &ast.DeferStatement{
		Token: tok(token.DEFER, "defer"),
		Body: block(&ast.AssignStatement{
			Token:  tok(token.ASSIGN, "="),
			Target: &ast.IndexExpression{Token: tok(token.LBRACKET, "["), Left: ident("buf"), Index: ident("N")},
			Value: &ast.SliceExpression{
				Token: tok(token.LBRACKET, "["),
				Left:  ident("arr"),
				Start: ident("N"),
				End:   ident("N"),
			},
		}),
	}
	structLit := &ast.StructLiteral{
		Token:  tok(token.IDENT, "Config"),
		Name:   "Config",
		Fields: []*ast.StructLiteralField{{Name: "size", Value: ident("N")}},
	}
	arrayLit := &ast.ArrayLiteral{Token: tok(token.LBRACKET, "["), Elements: []ast.Expression{ident("N"), intArg(1)}}
	tern := &ast.TernaryExpression{
		Token:       tok(token.IF, "if"),
		Consequence: ident("N"),
		Condition:   infix(ident("N"), ">", intArg(0)),
		Alternative: intArg(0),
	}
	try := &ast.TryExpression{Token: tok(token.QUESTION, "?"), Inner: call("g", nil, ident("N"))}
	method := &ast.MethodCallExpression{
		Token:     tok(token.DOT, "."),
		Object:    ident("N"),
		Method:    ident("abs"),
		Arguments: []ast.Expression{ident("N")},
	}
	member := &ast.MemberAccessExpression{
		Token:  tok(token.DOT, "."),
		Object: call("wrap", nil, ident("N")),
		Field:  ident("value"),
	}

	body := specializeBody(t, genericFn("f",
		deferStmt,
		exprStmt(structLit),
		exprStmt(arrayLit),
		exprStmt(tern),
		exprStmt(try),
		exprStmt(method),
		exprStmt(member),
	), IntVal(4))

	isFour := func(e ast.Expression) bool {
		lit, ok := e.(*ast.IntegerLiteral)
		return ok && lit.Value == 4
	}

	gotDefer := body.Statements[0].(*ast.DeferStatement)
	gotAssign := gotDefer.Body.Statements[0].(*ast.AssignStatement)
	if !isFour(gotAssign.Target.(*ast.IndexExpression).Index) {
		t.Fatalf("index not substituted inside defer")
	}
	gotSlice := gotAssign.Value.(*ast.SliceExpression)
	if !isFour(gotSlice.Start) || !isFour(gotSlice.End) {
		t.Fatalf("slice bounds not substituted")
	}

	gotStruct := body.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.StructLiteral)
	if gotStruct.Fields[0].Name != "size" || !isFour(gotStruct.Fields[0].Value) {
		t.Fatalf("struct literal field not substituted or renamed")
	}

	gotArray := body.Statements[2].(*ast.ExpressionStatement).Expression.(*ast.ArrayLiteral)
	if !isFour(gotArray.Elements[0]) {
		t.Fatalf("array element not substituted")
	}

	gotTern := body.Statements[3].(*ast.ExpressionStatement).Expression.(*ast.TernaryExpression)
	if !isFour(gotTern.Consequence) {
		t.Fatalf("ternary consequence not substituted")
	}
	if !isFour(gotTern.Condition.(*ast.InfixExpression).Left) {
		t.Fatalf("ternary condition not substituted")
	}

	gotTry := body.Statements[4].(*ast.ExpressionStatement).Expression.(*ast.TryExpression)
	if !isFour(gotTry.Inner.(*ast.CallExpression).Arguments[0]) {
		t.Fatalf("try inner call not substituted")
	}

	gotMethod := body.Statements[5].(*ast.ExpressionStatement).Expression.(*ast.MethodCallExpression)
	if !isFour(gotMethod.Object) || !isFour(gotMethod.Arguments[0]) {
		t.Fatalf("method receiver or argument not substituted")
	}

	gotMember := body.Statements[6].(*ast.ExpressionStatement).Expression.(*ast.MemberAccessExpression)
	if !isFour(gotMember.Object.(*ast.CallExpression).Arguments[0]) {
		t.Fatalf("member access receiver not substituted")
	}
}

func TestSubstituteCompileTimeArgsOfNestedCalls(t *testing.T) {
	// fn f[N: int]() { g[N](N); } — both argument lists are substituted
	nested := call("g", []ast.Expression{ident("N")}, ident("N"))
	body := specializeBody(t, genericFn("f", exprStmt(nested)), IntVal(8))

	got := body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if lit, ok := got.CompileTimeArgs[0].(*ast.IntegerLiteral); !ok || lit.Value != 8 {
		t.Fatalf("compile-time argument list not substituted")
	}
	if lit, ok := got.Arguments[0].(*ast.IntegerLiteral); !ok || lit.Value != 8 {
		t.Fatalf("ordinary argument list not substituted")
	}
}

func TestSubstituteTypePositions(t *testing.T) {
	fn := genericFn("f", ret(intArg(0)))
	fn.Parameters = []*ast.FunctionParameter{{
		Name: ident("data"),
		Type: &ast.ArrayType{
			Token:   tok(token.LBRACKET, "["),
			Element: &ast.NamedType{Token: tok(token.IDENT, "u8"), Name: "u8"},
			Size:    ident("N"),
		},
	}}
	fn.ReturnType = &ast.GenericType{
		Token: tok(token.IDENT, "Matrix"),
		Name:  "Matrix",
		Args:  []ast.Node{intType(), ident("N")},
	}

	ctx := NewContext()
	specialized := ctx.SpecializeFunction(fn, []Value{IntVal(16)})

	arrType := specialized.Parameters[0].Type.(*ast.ArrayType)
	if lit, ok := arrType.Size.(*ast.IntegerLiteral); !ok || lit.Value != 16 {
		t.Fatalf("array size not substituted: %v", arrType.Size)
	}
	genType := specialized.ReturnType.(*ast.GenericType)
	if named, ok := genType.Args[0].(*ast.NamedType); !ok || named.Name != "int" {
		t.Fatalf("true type argument must be untouched")
	}
	if lit, ok := genType.Args[1].(*ast.IntegerLiteral); !ok || lit.Value != 16 {
		t.Fatalf("value type argument not substituted")
	}
}

func TestLiteralKindsPassThrough(t *testing.T) {
	str := &ast.StringLiteral{Token: tok(token.STRING, "s"), Value: "s"}
	flt := &ast.FloatLiteral{Token: tok(token.FLOAT, "1.5"), Value: 1.5}
	chr := &ast.CharLiteral{Token: tok(token.CHAR, "c"), Value: 'c'}
	non := &ast.NoneLiteral{Token: tok(token.NONE, "none")}

	body := specializeBody(t, genericFn("f",
		exprStmt(str), exprStmt(flt), exprStmt(chr), exprStmt(non),
	), IntVal(1))

	if got, ok := body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.StringLiteral); !ok || got.Value != "s" {
		t.Fatalf("string literal changed")
	}
	if got, ok := body.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.FloatLiteral); !ok || got.Value != 1.5 {
		t.Fatalf("float literal changed")
	}
	if got, ok := body.Statements[2].(*ast.ExpressionStatement).Expression.(*ast.CharLiteral); !ok || got.Value != 'c' {
		t.Fatalf("char literal changed")
	}
	if _, ok := body.Statements[3].(*ast.ExpressionStatement).Expression.(*ast.NoneLiteral); !ok {
		t.Fatalf("none literal changed")
	}
}
