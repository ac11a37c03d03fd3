package construct

import (
	"testing"

	"github.com/kit-lang/typecheck/ast"
)

func TestScopeResolveFallsThroughToParent(t *testing.T) {
	outer := Func("one", Fn(Int(), Int()))
	parent := NewScope()
	parent.Declare("one", outer)

	child := NewChildScope(parent)
	if got := child.Resolve("one"); len(got) != 1 || got[0] != outer {
		t.Fatalf("child.Resolve(%q) = %v, want [outer]", "one", got)
	}
}

func TestScopeResolveShadowsParent(t *testing.T) {
	outerX := LetVar("x", Int(), nil)
	parent := NewScope()
	parent.Declare("x", outerX)

	innerX := LetVar("x", Bool(), nil)
	child := NewChildScope(parent)
	child.Declare("x", innerX)

	got := child.Resolve("x")
	if len(got) != 1 || got[0] != ast.ValueDecl(innerX) {
		t.Fatalf("child.Resolve(%q) = %v, want [innerX] (shadowed, not merged)", "x", got)
	}
}

func TestScopeResolveMissWithNoParentReturnsNil(t *testing.T) {
	s := NewScope()
	if got := s.Resolve("missing"); got != nil {
		t.Fatalf("Resolve(%q) = %v, want nil", "missing", got)
	}
}

func TestScopeDeclareBuildsOverloadSet(t *testing.T) {
	f1 := Func("f", Fn(Int(), Int()))
	f2 := Func("f", Fn(Int(), Opt(Int())))
	s := NewScope()
	s.Declare("f", f1).Declare("f", f2)

	got := s.Resolve("f")
	if len(got) != 2 || got[0] != ast.ValueDecl(f1) || got[1] != ast.ValueDecl(f2) {
		t.Fatalf("Resolve(%q) = %v, want [f1, f2]", "f", got)
	}
}
