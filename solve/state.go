package solve

import (
	"github.com/benbjohnson/immutable"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/bindings"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/internal/nodeid"
	"github.com/kit-lang/typecheck/types"
)

// System is the complete state of one expression's constraint system:
// the bindings table, the constraint store (worklist, overload
// selections, conversion relations, failure marker), and the per-node
// tentative/final type map. Every field is a persistent, value-copyable
// structure, so a System held by value — exactly what a Go assignment
// already does — is a correct, independent checkpoint: later mutation
// through one copy can never be observed through another. This is the
// StepState the solver's checkpoint/restore discipline operates on.
type System struct {
	Bindings bindings.Table
	Store    constraint.Store
	Types    *immutable.Map
}

// NewSystem returns an empty constraint system.
func NewSystem() System {
	return System{
		Bindings: bindings.New(),
		Store:    constraint.New(),
		Types:    immutable.NewMap(nodeid.Hasher{}),
	}
}

// SetType records node's tentative (pre-solve) or final (post-solve)
// type.
func (sys System) SetType(node ast.Node, t types.Type) System {
	sys.Types = sys.Types.Set(node, t)
	return sys
}

// TypeOf looks up the type most recently recorded for node.
func (sys System) TypeOf(node ast.Node) (types.Type, bool) {
	v, ok := sys.Types.Get(node)
	if !ok {
		return nil, false
	}
	return v.(types.Type), true
}

// AddConstraint appends c to the worklist with the given active bit.
func (sys System) AddConstraint(c constraint.Constraint, active bool) System {
	sys.Store, _ = sys.Store.Add(c, active)
	return sys
}

// AddDisjunction appends a choice point over alternatives, per
// constraint.Store.AddDisjunction's collapsing rules.
func (sys System) AddDisjunction(alternatives []constraint.Constraint) (System, error) {
	store, err := sys.Store.AddDisjunction(alternatives)
	if err != nil {
		return sys, err
	}
	sys.Store = store
	return sys, nil
}

// mergeVars unifies v1 and v2's equivalence classes and reactivates every
// entry whose constraint mentions a member of the resulting class.
func (sys System) mergeVars(v1, v2 int) System {
	sys.Bindings = sys.Bindings.Merge(v1, v2)
	return reactivate(sys, sys.Bindings.Representative(v1))
}

// assignVar fixes v's representative to t and reactivates every entry
// whose constraint mentions a member of v's equivalence class.
func (sys System) assignVar(v int, t types.Type) System {
	sys.Bindings = sys.Bindings.Assign(v, t)
	return reactivate(sys, v)
}

// simplifyAll drains the active worklist: repeatedly take one active
// entry, deactivate it, simplify it, and act on the outcome — removing a
// solved entry, leaving an ambiguous one inactive in place, or marking
// the system failed and stopping. Returns false iff the system ends up
// failed.
func (sys System) simplifyAll() (bool, System) {
	for {
		if sys.Store.IsFailed() {
			return false, sys
		}
		entry, ok := sys.Store.FindFirstActive()
		if !ok {
			return true, sys
		}
		sys.Store = sys.Store.SetActive(entry.ID(), false)
		res, next := simplifyConstraint(entry.Constraint, sys)
		sys = next
		switch res {
		case failure:
			sys.Store = sys.Store.Remove(entry.ID())
			sys.Store = sys.Store.Fail(entry.Constraint)
			return false, sys
		case solved:
			sys.Store = sys.Store.Remove(entry.ID())
		case ambiguous:
			// Already deactivated above; leave it for a later
			// reactivation or for ComponentStep's disjunction/binding
			// scan to pick up.
		}
	}
}
