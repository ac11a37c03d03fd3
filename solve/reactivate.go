package solve

import (
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// reactivate re-activates every inactive entry in sys.Store whose
// constraint mentions a type variable currently representing rep. This
// is the bindings-change hook required whenever a merge or assign
// narrows an equivalence class: a constraint that looked unsimplifiable
// before may now be worth another pass.
func reactivate(sys System, rep int) System {
	for _, e := range sys.Store.Entries() {
		if e.IsActive() {
			continue
		}
		for _, id := range constraintVarIDs(e.Constraint) {
			if sys.Bindings.Representative(id) == rep {
				sys.Store = sys.Store.SetActive(e.ID(), true)
				break
			}
		}
	}
	return sys
}

// constraintVarIDs collects every type-variable id mentioned anywhere in
// c, recursing into Disjunction alternatives.
func constraintVarIDs(c constraint.Constraint) []int {
	switch c := c.(type) {
	case *constraint.BindOrConversion:
		return append(varIDs(c.Left), varIDs(c.Right)...)
	case *constraint.ApplicableFunctionConstraint:
		return append(varIDs(c.Left), varIDs(c.Right)...)
	case *constraint.BindOverloadConstraint:
		return []int{c.Left.ID}
	case *constraint.DisjunctionConstraint:
		var ids []int
		for _, alt := range c.Alternatives {
			ids = append(ids, constraintVarIDs(alt)...)
		}
		return ids
	default:
		return nil
	}
}

func varIDs(t types.Type) []int {
	vars := types.ContainedVars(t)
	if len(vars) == 0 {
		return nil
	}
	ids := make([]int, len(vars))
	for i, v := range vars {
		ids[i] = v.ID
	}
	return ids
}
