package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"pyrite/internal/ast"
	"pyrite/internal/diag"
	"pyrite/internal/lexer"
	"pyrite/internal/mono"
	"pyrite/internal/parser"
)

var exitFn = os.Exit

func main() {
	exitFn(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runCLI parses a source file, runs the monomorphization pass and prints
// the rewritten program. The source argument "-" reads from stdin.
func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pyrite", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "write the rewritten program to `file` instead of stdout")
	check := fs.Bool("check", false, "parse and expand without printing the program")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: pyrite [-o output] [-check] <source.pyr | ->")
		return 1
	}

	name := fs.Arg(0)
	source, err := readSource(name, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Read error: %v\n", err)
		return 1
	}
	if name == "-" {
		name = "<stdin>"
	}

	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		for _, msg := range errs {
			printParseError(stderr, name, source, msg)
		}
		return 1
	}

	expanded, err := mono.MonomorphizeProgram(program)
	if err != nil {
		printPassError(stderr, name, source, err)
		return 1
	}

	if *check {
		return 0
	}

	rendered := renderProgram(expanded)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			fmt.Fprintf(stderr, "Write error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote: %s\n", *output)
		return 0
	}
	fmt.Fprint(stdout, rendered)
	return 0
}

func readSource(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

// renderProgram writes one top-level statement per line so the output
// stays diffable against the input program.
func renderProgram(program *ast.Program) string {
	var b strings.Builder
	for _, stmt := range program.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func printParseError(w io.Writer, name, source, msg string) {
	line, col, rest := splitPosition(msg)
	fmt.Fprintf(w, "Parse error: %s\n", rest)
	if line <= 0 {
		fmt.Fprintf(w, "  --> %s\n", name)
		return
	}
	fmt.Fprintf(w, "  --> %s:%d:%d\n", name, line, col)
	printSourceLine(w, source, line, col)
}

func printPassError(w io.Writer, name, source string, err error) {
	var ce *diag.CodeError
	if !errors.As(err, &ce) {
		fmt.Fprintf(w, "Monomorphize error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Monomorphize error: %s\n", ce.Message)
	if ce.Line > 0 {
		fmt.Fprintf(w, "  --> %s:%d:%d\n", name, ce.Line, ce.Column)
		printSourceLine(w, source, ce.Line, ce.Column)
		return
	}
	fmt.Fprintf(w, "  --> %s\n", name)
	if ce.Context != "" {
		fmt.Fprintf(w, "  context: %s\n", ce.Context)
	}
}

func printSourceLine(w io.Writer, source string, line, col int) {
	src := sourceLine(source, line)
	if src == "" {
		return
	}
	fmt.Fprintf(w, "   | %s\n", src)
	if col > 0 {
		fmt.Fprintf(w, "   | %s^\n", strings.Repeat(" ", col-1))
	}
}

// splitPosition strips the "line:column: " prefix diagnostics carry.
func splitPosition(msg string) (line, col int, rest string) {
	head, tail, ok := strings.Cut(msg, ": ")
	if !ok {
		return 0, 0, msg
	}
	if _, err := fmt.Sscanf(head, "%d:%d", &line, &col); err != nil || line <= 0 {
		return 0, 0, msg
	}
	return line, col, tail
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
