package solve

import (
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// simplifyConstraint dispatches a single constraint to its matching
// logic. Callers are responsible for the worklist bookkeeping (removal
// on solved, leaving inactive on ambiguous, failing the store on
// failure) — this function only ever inspects and extends the store, it
// never removes the entry being simplified.
func simplifyConstraint(c constraint.Constraint, sys System) (result, System) {
	switch c := c.(type) {
	case *constraint.BindOrConversion:
		if !c.HasChosen {
			return matchTypes(c.Kind, c.Left, c.Right, sys, matchOptions{})
		}
		return applyConversion(c.Kind, sys.Bindings.Simplify(c.Left), sys.Bindings.Simplify(c.Right), c.Conversion, sys)

	case *constraint.ApplicableFunctionConstraint:
		return simplifyApplicableFunction(c, sys)

	case *constraint.BindOverloadConstraint:
		sys.Store = sys.Store.ResolveOverload(c.Left, c.Choice, c.Location)
		return solved, sys

	case *constraint.DisjunctionConstraint:
		// A disjunction can't be simplified in place; it's the solver's
		// job to pick a branch via DisjunctionStep.
		return ambiguous, sys

	default:
		return failure, sys
	}
}

// applyConversion runs the conversion-specific matcher for an already
// chosen conversion, and on success records the proof as a
// TypeConversionRelation for the apply phase to consult later.
func applyConversion(kind constraint.Kind, left, right types.Type, conv constraint.Conversion, sys System) (result, System) {
	var res result
	switch conv {
	case constraint.DeepEquality:
		res, sys = matchDeepEqualityTypes(left, right, sys)

	case constraint.ValueToOptional:
		ro, ok := right.(*types.Optional)
		if !ok {
			return failure, sys
		}
		res, sys = matchTypes(kind, left, ro.Wrapped, sys, matchOptions{})

	case constraint.OptionalToOptional:
		lo, lok := left.(*types.Optional)
		ro, rok := right.(*types.Optional)
		if !lok || !rok {
			return failure, sys
		}
		res, sys = matchTypes(kind, lo.Wrapped, ro.Wrapped, sys, matchOptions{})

	default:
		return failure, sys
	}

	if res == solved {
		sys.Store = sys.Store.AddRelation(constraint.TypeConversionRelation{
			Conversion: conv, Left: left, Right: right,
		})
	}
	return res, sys
}

// simplifyApplicableFunction handles Call's constraint: right (the
// callee's type) must simplify to a Function before the parameter and
// result can be matched against it.
func simplifyApplicableFunction(c *constraint.ApplicableFunctionConstraint, sys System) (result, System) {
	right := sys.Bindings.Simplify(c.Right)
	if _, isVar := right.(*types.TypeVariable); isVar {
		return ambiguous, sys
	}
	rfn, ok := right.(*types.Function)
	if !ok {
		return failure, sys
	}

	paramResult, sys := matchTypes(constraint.Conv, c.Left.Parameter, rfn.Parameter, sys, matchOptions{})
	if paramResult == failure {
		return failure, sys
	}
	resultResult, sys := matchTypes(constraint.Bind, c.Left.Result, rfn.Result, sys, matchOptions{})
	if resultResult == failure {
		return failure, sys
	}
	if paramResult == ambiguous || resultResult == ambiguous {
		return ambiguous, sys
	}
	return solved, sys
}
