package solve

import (
	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/bindings"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// Solution is an immutable snapshot of a fully-solved constraint system:
// every free variable from the original constraints now has a fixed
// type, every overload reference has a chosen declaration, and every
// implicit conversion used along the way is recorded for apply to
// consult.
type Solution struct {
	Bindings   bindings.Table
	Types      map[ast.Node]types.Type
	Selections map[ast.Node]constraint.OverloadSelection
	Relations  []constraint.TypeConversionRelation
}

// FixedType returns node's final, fully-simplified type.
func (s Solution) FixedType(node ast.Node) (types.Type, bool) {
	t, ok := s.Types[node]
	return t, ok
}

func snapshot(sys System) Solution {
	out := map[ast.Node]types.Type{}
	itr := sys.Types.Iterator()
	for !itr.Done() {
		k, v := itr.Next()
		node := k.(ast.Node)
		out[node] = sys.Bindings.Simplify(v.(types.Type))
	}
	return Solution{
		Bindings:   sys.Bindings,
		Types:      out,
		Selections: sys.Store.Selections(),
		Relations:  sys.Store.Relations(),
	}
}
