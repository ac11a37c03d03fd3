package solve

import (
	"testing"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

func TestSolveFullyDeterminedProgramHasExactlyOneSolution(t *testing.T) {
	sys := NewSystem()
	node := &ast.IntegerLiteral{}
	v := types.NewVar(0)
	sys = sys.SetType(node, v)
	sys = sys.AddConstraint(constraint.NewBind(v, &types.Primitive{Name: "Int"}), true)

	w := Solve(sys, Options{})
	if len(w.Solutions) != 1 {
		t.Fatalf("got %d solutions, want exactly 1", len(w.Solutions))
	}
	got, ok := w.Solutions[0].FixedType(node)
	if !ok || !got.Equal(&types.Primitive{Name: "Int"}) {
		t.Fatalf("FixedType(node) = %v, %v; want Int, true", got, ok)
	}
}

func TestSolveExploresBothDisjunctionAlternatives(t *testing.T) {
	sys := NewSystem()
	node := &ast.IntegerLiteral{}
	v := types.NewVar(0)
	sys = sys.SetType(node, v)

	sys, err := sys.AddDisjunction([]constraint.Constraint{
		constraint.NewBind(v, &types.Primitive{Name: "Int"}),
		constraint.NewBind(v, &types.Primitive{Name: "Bool"}),
	})
	if err != nil {
		t.Fatal(err)
	}

	w := Solve(sys, Options{})
	if len(w.Solutions) != 2 {
		t.Fatalf("got %d solutions, want 2 (one per alternative)", len(w.Solutions))
	}
	if w.Checkpoints == 0 {
		t.Fatal("expected at least one checkpoint to have been taken")
	}
}

func TestSolveUnderconstrainedProgramHasNoSolution(t *testing.T) {
	sys := NewSystem()
	node := &ast.IntegerLiteral{}
	sys = sys.SetType(node, types.NewVar(0))
	// No constraint at all mentions the variable: nothing pins it down.

	w := Solve(sys, Options{})
	if len(w.Solutions) != 0 {
		t.Fatalf("got %d solutions, want 0 for an underconstrained system", len(w.Solutions))
	}
}

func TestSolveResolvesFreeVariableViaConversionPotentialBinding(t *testing.T) {
	sys := NewSystem()
	node := &ast.IntegerLiteral{}
	v := types.NewVar(0)
	sys = sys.SetType(node, v)
	sys = sys.AddConstraint(constraint.NewConversion(v, &types.Primitive{Name: "Int"}), true)

	w := Solve(sys, Options{})
	if len(w.Solutions) != 1 {
		t.Fatalf("got %d solutions, want exactly 1", len(w.Solutions))
	}
	got, ok := w.Solutions[0].FixedType(node)
	if !ok || !got.Equal(&types.Primitive{Name: "Int"}) {
		t.Fatalf("FixedType(node) = %v, %v; want Int, true", got, ok)
	}
}

func TestSolveRejectsNonViableBindingCandidates(t *testing.T) {
	sys := NewSystem()
	node := &ast.IntegerLiteral{}
	v := types.NewVar(0)
	sys = sys.SetType(node, v)
	sys = sys.AddConstraint(constraint.NewConversion(v, &types.Primitive{Name: "Int"}), true)

	rejectEverything := Options{IsViableBinding: func(PotentialBinding) bool { return false }}
	w := Solve(sys, rejectEverything)
	if len(w.Solutions) != 0 {
		t.Fatalf("got %d solutions, want 0 when every candidate is rejected", len(w.Solutions))
	}
}
