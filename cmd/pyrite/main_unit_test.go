package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLIString(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runCLI(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCLINoArgs(t *testing.T) {
	code, _, stderr := runCLIString(t, nil, "")
	if code != 1 {
		t.Fatalf("runCLI() code=%d want=1", code)
	}
	if !strings.Contains(stderr, "Usage: pyrite") {
		t.Fatalf("expected usage output, got:\n%s", stderr)
	}
}

func TestMainUsesExitFn(t *testing.T) {
	oldArgs := os.Args
	oldExit := exitFn
	defer func() {
		os.Args = oldArgs
		exitFn = oldExit
	}()

	os.Args = []string{"pyrite"}
	var got int
	exitFn = func(code int) { got = code }
	main()
	if got != 1 {
		t.Fatalf("main exit code=%d want=1", got)
	}
}

func TestRunCLIParseErrorFromStdin(t *testing.T) {
	code, _, stderr := runCLIString(t, []string{"-"}, "let x = 1\n")
	if code != 1 {
		t.Fatalf("expected parse error code=1, got=%d", code)
	}
	if !strings.Contains(stderr, "Parse error:") {
		t.Fatalf("expected parse error output, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "--> <stdin>:") {
		t.Fatalf("expected stdin position marker, got:\n%s", stderr)
	}
}

func TestRunCLIMonomorphizeError(t *testing.T) {
	source := "fn f[N: int]() { }\nfn main() { f[x](); }\n"
	code, _, stderr := runCLIString(t, []string{"-"}, source)
	if code != 1 {
		t.Fatalf("expected monomorphize error code=1, got=%d", code)
	}
	if !strings.Contains(stderr, "Monomorphize error:") {
		t.Fatalf("expected monomorphize error output, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "compile-time arguments must be literals") {
		t.Fatalf("expected literal diagnostic, got:\n%s", stderr)
	}
}

func TestRunCLIRewritesProgram(t *testing.T) {
	source := "fn double[N: int](x: int) -> int { return x * N; }\nfn main() { double[2](5); }\n"
	code, stdout, stderr := runCLIString(t, []string{"-"}, source)
	if code != 0 {
		t.Fatalf("runCLI code=%d stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "fn double_2") {
		t.Fatalf("specialization missing from output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "double_2(5)") {
		t.Fatalf("call site not rewritten:\n%s", stdout)
	}
	if strings.Contains(stdout, "double[") {
		t.Fatalf("generic original survived:\n%s", stdout)
	}
}

func TestRunCLIWritesOutputFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "ok.pyr")
	source := "fn f[N: int]() -> int { return N; }\nfn main() { f[7](); }\n"
	if err := os.WriteFile(src, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.pyr")

	code, stdout, stderr := runCLIString(t, []string{"-o", out, src}, "")
	if code != 0 {
		t.Fatalf("runCLI code=%d stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "Wrote: "+out) {
		t.Fatalf("expected write confirmation, got:\n%s", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "fn f_7") {
		t.Fatalf("output file missing specialization:\n%s", data)
	}
}

func TestRunCLICheckMode(t *testing.T) {
	code, stdout, stderr := runCLIString(t, []string{"-check", "-"}, "fn main() { }\n")
	if code != 0 {
		t.Fatalf("runCLI code=%d stderr:\n%s", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("check mode printed the program:\n%s", stdout)
	}
}

func TestRunCLIMissingFile(t *testing.T) {
	code, _, stderr := runCLIString(t, []string{filepath.Join(t.TempDir(), "absent.pyr")}, "")
	if code != 1 || !strings.Contains(stderr, "Read error:") {
		t.Fatalf("expected read error, code=%d stderr:\n%s", code, stderr)
	}
}

func TestSplitPosition(t *testing.T) {
	tests := []struct {
		msg        string
		line, col  int
		restPrefix string
	}{
		{"2:3: no prefix parse function", 2, 3, "no prefix"},
		{"expected next token to be ;", 0, 0, "expected next"},
		{"12: odd prefix", 0, 0, "12: odd prefix"},
	}
	for _, tt := range tests {
		line, col, rest := splitPosition(tt.msg)
		if line != tt.line || col != tt.col {
			t.Fatalf("splitPosition(%q) position=%d:%d want=%d:%d", tt.msg, line, col, tt.line, tt.col)
		}
		if !strings.HasPrefix(rest, tt.restPrefix) {
			t.Fatalf("splitPosition(%q) rest=%q", tt.msg, rest)
		}
	}
}

func TestSourceLine(t *testing.T) {
	source := "first\nsecond\nthird"
	if got := sourceLine(source, 2); got != "second" {
		t.Fatalf("sourceLine(2)=%q", got)
	}
	if got := sourceLine(source, 0); got != "" {
		t.Fatalf("sourceLine(0)=%q", got)
	}
	if got := sourceLine(source, 9); got != "" {
		t.Fatalf("sourceLine(9)=%q", got)
	}
}
