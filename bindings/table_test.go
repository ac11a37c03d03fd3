package bindings

import (
	"testing"

	"github.com/kit-lang/typecheck/types"
)

func TestMergePicksSmallerIdAsRepresentative(t *testing.T) {
	tbl := New()
	tbl = tbl.Merge(5, 2)
	if rep := tbl.Representative(5); rep != 2 {
		t.Fatalf("Representative(5) = %d, want 2", rep)
	}
	if rep := tbl.Representative(2); rep != 2 {
		t.Fatalf("Representative(2) = %d, want 2", rep)
	}
}

func TestMergeRepointsExistingTransfers(t *testing.T) {
	tbl := New()
	tbl = tbl.Merge(5, 3) // 5 -> 3
	tbl = tbl.Merge(3, 1) // 3 is displaced by 1, so 3 -> 1 and the existing 5 -> 3 is re-pointed to 5 -> 1
	if rep := tbl.Representative(5); rep != 1 {
		t.Fatalf("Representative(5) = %d, want 1", rep)
	}
	if rep := tbl.Representative(3); rep != 1 {
		t.Fatalf("Representative(3) = %d, want 1", rep)
	}
}

func TestAssignFixesTypeForWholeClass(t *testing.T) {
	tbl := New()
	tbl = tbl.Merge(4, 2)
	intType := &types.Primitive{Name: "Int"}
	tbl = tbl.Assign(2, intType)
	for _, id := range []int{2, 4} {
		got, ok := tbl.FixedType(id)
		if !ok || !got.Equal(intType) {
			t.Fatalf("FixedType(%d) = %v, %v; want Int, true", id, got, ok)
		}
	}
}

func TestSimplifyResolvesNestedVariables(t *testing.T) {
	tbl := New()
	tbl = tbl.Merge(1, 0)
	intType := &types.Primitive{Name: "Int"}
	tbl = tbl.Assign(0, intType)
	fn := &types.Function{Parameter: types.NewVar(1), Result: &types.Primitive{Name: "Bool"}}
	got := tbl.Simplify(fn)
	gotFn, ok := got.(*types.Function)
	if !ok {
		t.Fatalf("Simplify did not return a Function: %v", got)
	}
	if !gotFn.Parameter.Equal(intType) {
		t.Fatalf("Simplify(param) = %v, want Int", gotFn.Parameter)
	}
}

func TestSimplifyLeavesFreeVariable(t *testing.T) {
	tbl := New()
	got := tbl.Simplify(types.NewVar(7))
	tv, ok := got.(*types.TypeVariable)
	if !ok || tv.ID != 7 {
		t.Fatalf("Simplify(free var) = %v, want $T7", got)
	}
}

func TestCheckpointRestoreByValue(t *testing.T) {
	tbl := New()
	tbl = tbl.Merge(2, 1)
	snapshot := tbl
	tbl = tbl.Assign(1, &types.Primitive{Name: "Int"})
	if _, ok := snapshot.FixedType(1); ok {
		t.Fatal("mutating the new table must not affect the snapshot")
	}
}
