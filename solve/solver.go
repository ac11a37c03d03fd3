package solve

import (
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// Work accumulates the results of one Solve run: every Solution found
// by any explored branch, plus observability counters the checker
// façade can surface. The reference design keeps the accumulated
// solution list owned by the outer search rather than threaded through
// return values, since every step's own return is just "did this
// subtree solve" — this mirrors that shape.
type Work struct {
	Solutions   []Solution
	Checkpoints int

	opts Options
}

// Solve runs the three-level backtracking search over sys and returns
// every solution found. The checker consumes Solutions[0]; this package
// does not rank solutions.
func Solve(sys System, opts Options) *Work {
	w := &Work{opts: opts}
	w.componentStep(sys)
	return w
}

// componentStep runs simplification to a fixed point, then decides what
// to do with what's left: explore a disjunction, try candidate bindings
// for the best-determined free variable, declare the branch
// underconstrained, or — if nothing remains to resolve — record a
// Solution.
func (w *Work) componentStep(sys System) bool {
	ok, sys := sys.simplifyAll()
	if !ok {
		return false
	}

	if e, found := sys.Store.FindFirstDisjunction(); found {
		return w.disjunctionStep(sys, e)
	}

	if best, found := bestPotentialBindings(sys, w.opts); found {
		return w.typeVariableStep(sys, best)
	}

	if hasFreeVariables(sys) {
		return false
	}

	w.Solutions = append(w.Solutions, snapshot(sys))
	return true
}

// typeVariableStep tries each candidate binding for one free variable in
// turn, checkpointing before each attempt and restoring after, so that
// failed or merely non-exhaustive branches never leak into the next
// candidate.
func (w *Work) typeVariableStep(sys System, pb PotentialBindings) bool {
	any := false
	for _, b := range pb.Bindings {
		checkpoint := sys
		w.Checkpoints++

		attempt := sys.AddConstraint(constraint.NewBind(types.NewVar(pb.Var), b.Type), true)
		if ok, attempt := attempt.simplifyAll(); ok {
			if w.componentStep(attempt) {
				any = true
			}
		}

		sys = checkpoint
	}
	return any
}

// disjunctionStep removes the chosen disjunction entry (restored for the
// caller on exit, since sys is passed by value) and tries each
// alternative in turn: simplify it directly, fold an ambiguous outcome
// back into the store as a fresh entry, and recurse into ComponentStep
// on success.
func (w *Work) disjunctionStep(sys System, e constraint.Entry) bool {
	dc := e.Constraint.(*constraint.DisjunctionConstraint)
	base := sys
	base.Store = base.Store.Remove(e.ID())

	any := false
	for _, alt := range dc.Alternatives {
		checkpoint := base
		w.Checkpoints++

		attempt := base
		res, attempt := simplifyConstraint(alt, attempt)
		switch res {
		case failure:
			attempt.Store = attempt.Store.Fail(alt)
		case ambiguous:
			attempt = attempt.AddConstraint(alt, false)
		}

		if ok, attempt := attempt.simplifyAll(); ok {
			if w.componentStep(attempt) {
				any = true
			}
		}

		base = checkpoint
	}
	return any
}

// hasFreeVariables reports whether any node's tentative type still
// mentions a free variable once simplified — the underconstrained case
// ComponentStep must reject rather than report as solved.
func hasFreeVariables(sys System) bool {
	itr := sys.Types.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		simplified := sys.Bindings.Simplify(v.(types.Type))
		for _, tv := range types.ContainedVars(simplified) {
			if sys.Bindings.IsFree(tv.ID) {
				return true
			}
		}
	}
	return false
}
