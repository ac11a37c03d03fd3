package constraint

import (
	"testing"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/types"
)

func TestAddAndFindFirstActive(t *testing.T) {
	s := New()
	s, _ = s.Add(NewBind(types.NewVar(0), &types.Primitive{Name: "Int"}), true)
	e, ok := s.FindFirstActive()
	if !ok {
		t.Fatal("expected an active entry")
	}
	if _, ok := e.Constraint.(*BindOrConversion); !ok {
		t.Fatalf("wrong constraint type: %T", e.Constraint)
	}
}

func TestRemoveDropsOnlyMatchingEntry(t *testing.T) {
	s := New()
	s, id1 := s.Add(NewBind(types.NewVar(0), &types.Primitive{Name: "Int"}), true)
	s, id2 := s.Add(NewBind(types.NewVar(1), &types.Primitive{Name: "Bool"}), true)
	s = s.Remove(id1)
	entries := s.Entries()
	if len(entries) != 1 || entries[0].ID() != id2 {
		t.Fatalf("Remove left wrong entries: %+v", entries)
	}
}

func TestSetActiveIsIndependentAcrossSnapshots(t *testing.T) {
	s := New()
	s, id := s.Add(NewBind(types.NewVar(0), &types.Primitive{Name: "Int"}), false)
	snapshot := s
	s = s.SetActive(id, true)

	if snapshot.Entries()[0].IsActive() {
		t.Fatal("activating the new store must not affect the snapshot")
	}
	if !s.Entries()[0].IsActive() {
		t.Fatal("expected the entry to be active in the new store")
	}
}

func TestAddDisjunctionCollapsesSingleton(t *testing.T) {
	s := New()
	s, err := s.AddDisjunction([]Constraint{NewBind(types.NewVar(0), &types.Primitive{Name: "Int"})})
	if err != nil {
		t.Fatal(err)
	}
	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if _, ok := entries[0].Constraint.(*DisjunctionConstraint); ok {
		t.Fatal("a singleton disjunction must not be wrapped")
	}
	if !entries[0].IsActive() {
		t.Fatal("a collapsed singleton must be active so it is processed")
	}
}

func TestAddDisjunctionWrapsMultiple(t *testing.T) {
	s := New()
	alts := []Constraint{
		NewBind(types.NewVar(0), &types.Primitive{Name: "Int"}),
		NewBind(types.NewVar(0), &types.Primitive{Name: "Bool"}),
	}
	s, err := s.AddDisjunction(alts)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := s.FindFirstDisjunction()
	if !ok {
		t.Fatal("expected to find the disjunction by direct scan")
	}
	dc := e.Constraint.(*DisjunctionConstraint)
	if len(dc.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(dc.Alternatives))
	}
}

func TestAddDisjunctionRejectsEmpty(t *testing.T) {
	s := New()
	if _, err := s.AddDisjunction(nil); err != ErrEmptyDisjunction {
		t.Fatalf("expected ErrEmptyDisjunction, got %v", err)
	}
}

type fakeDecl struct {
	name string
	ty   types.Type
}

func (d *fakeDecl) NodeKind() string          { return "FakeDecl" }
func (d *fakeDecl) InterfaceType() types.Type { return d.ty }

func TestResolveOverloadRecordsSelectionAndBind(t *testing.T) {
	s := New()
	decl := &fakeDecl{name: "f", ty: &types.Primitive{Name: "Int"}}
	loc := &ast.IntegerLiteral{}
	v := types.NewVar(0)

	s = s.ResolveOverload(v, OverloadChoice{Decl: decl}, loc)

	sel, ok := s.Selection(loc)
	if !ok {
		t.Fatal("expected a recorded selection")
	}
	if sel.Choice.Decl != decl {
		t.Fatal("selection recorded the wrong declaration")
	}
	if !sel.OpenedType.Equal(decl.ty) {
		t.Fatalf("OpenedType = %v, want %v", sel.OpenedType, decl.ty)
	}

	e, ok := s.FindFirstActive()
	if !ok {
		t.Fatal("expected the bind constraint to be active")
	}
	bc := e.Constraint.(*BindOrConversion)
	if bc.Left != v || !bc.Right.Equal(decl.ty) {
		t.Fatalf("unexpected bind constraint: %+v", bc)
	}
}

func TestFailPreservesFirstFailure(t *testing.T) {
	s := New()
	first := NewBind(types.NewVar(0), &types.Primitive{Name: "Int"})
	second := NewBind(types.NewVar(1), &types.Primitive{Name: "Bool"})
	s = s.Fail(first)
	s = s.Fail(second)
	got, ok := s.FailedConstraint()
	if !ok || got != Constraint(first) {
		t.Fatalf("FailedConstraint() = %v, %v; want first failure preserved", got, ok)
	}
}
