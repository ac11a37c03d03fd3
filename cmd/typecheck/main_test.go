package main

import (
	"bytes"
	"strings"
	"testing"
)

// A closure body referencing its own parameter by name is the only
// realistic shape a Closure takes as JSON input (UnresolvedDeclRef is
// the sole name-reference kind the format accepts). This only resolves
// if pre-check scopes the parameter into the name-resolution context
// used to check the closure body.
func TestRunResolvesClosureParameterByName(t *testing.T) {
	program := `{
		"statements": [
			{
				"kind": "VariableDecl",
				"name": "g",
				"type": {"kind": "function", "param": {"kind": "primitive", "name": "Int"}, "result": {"kind": "primitive", "name": "Int"}},
				"initializer": {
					"kind": "Closure",
					"param": "x",
					"body": [{"kind": "UnresolvedDeclRef", "name": "x"}]
				}
			}
		]
	}`

	var out, errOut bytes.Buffer
	if err := run(strings.NewReader(program), &out, &errOut); err != nil {
		t.Fatalf("run() = %v, want nil", err)
	}

	want := `(VariableDecl name=g type="(Int) -> Int" initializer=(Closure parameter=x body=[(DeclRef target=x type="Int")] type="(Int) -> Int"))` + "\n"
	if out.String() != want {
		t.Fatalf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

// A closure body can still reach a name declared in the program's outer
// symbol table; the parameter's child scope must fall through, not
// replace, the outer context.
func TestRunClosureBodySeesOuterDecl(t *testing.T) {
	program := `{
		"decls": [
			{"name": "one", "type": {"kind": "function", "param": {"kind": "primitive", "name": "Int"}, "result": {"kind": "primitive", "name": "Int"}}}
		],
		"statements": [
			{
				"kind": "VariableDecl",
				"name": "g",
				"type": {"kind": "function", "param": {"kind": "primitive", "name": "Int"}, "result": {"kind": "primitive", "name": "Int"}},
				"initializer": {
					"kind": "Closure",
					"param": "x",
					"paramType": {"kind": "primitive", "name": "Int"},
					"returnType": {"kind": "primitive", "name": "Int"},
					"body": [{
						"kind": "Call",
						"callee": {"kind": "UnresolvedDeclRef", "name": "one"},
						"argument": {"kind": "UnresolvedDeclRef", "name": "x"}
					}]
				}
			}
		]
	}`

	var out, errOut bytes.Buffer
	if err := run(strings.NewReader(program), &out, &errOut); err != nil {
		t.Fatalf("run() = %v, want nil\nstderr: %s", err, errOut.String())
	}
	if out.Len() == 0 {
		t.Fatal("run() produced no output")
	}
}
