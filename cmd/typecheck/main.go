// Command typecheck reads a JSON-described program from stdin, type-checks
// it, and writes the textual form of every checked statement to stdout —
// one line per statement, in source order. It has no algorithmic logic of
// its own; the check package does the work.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kit-lang/typecheck"
	"github.com/kit-lang/typecheck/ast"
)

var verbose = flag.Bool("v", false, "print ambiguity and checkpoint counts to stderr")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: typecheck [-v] < program.json")
	}
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "typecheck:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out, errOut io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	file, scope, err := decodeProgram(raw)
	if err != nil {
		return err
	}

	tc := check.NewTypeChecker(file, scope)
	if err := tc.TypeCheck(); err != nil {
		return err
	}

	for _, stmt := range file.Statements {
		fmt.Fprintln(out, ast.String(stmt))
	}

	if *verbose {
		fmt.Fprintf(errOut, "ambiguities: %d, checkpoints: %d\n", tc.AmbiguityCount(), tc.CheckpointCount())
	}
	return nil
}
