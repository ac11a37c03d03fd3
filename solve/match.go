package solve

import (
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// matchTypes is the workhorse of the constraint system: it simplifies
// both sides against the current bindings, then either resolves a free
// variable (merge, assign, or defer) or decomposes a fixed/fixed pair by
// shape.
func matchTypes(kind constraint.Kind, left, right types.Type, sys System, opts matchOptions) (result, System) {
	l := sys.Bindings.Simplify(left)
	r := sys.Bindings.Simplify(right)
	lv, lIsVar := l.(*types.TypeVariable)
	rv, rIsVar := r.(*types.TypeVariable)

	switch {
	case lIsVar && rIsVar:
		if lv.ID == rv.ID {
			return solved, sys
		}
		if kind == constraint.Bind {
			sys = sys.mergeVars(lv.ID, rv.ID)
			return solved, sys
		}
		return deferOrAmbiguous(kind, l, r, sys, opts)

	case lIsVar:
		if kind == constraint.Bind {
			return matchTypesBind(lv, r, sys)
		}
		return deferOrAmbiguous(kind, l, r, sys, opts)

	case rIsVar:
		if kind == constraint.Bind {
			return matchTypesBind(rv, l, sys)
		}
		return deferOrAmbiguous(kind, l, r, sys, opts)

	default:
		return matchFixedTypes(kind, l, r, sys)
	}
}

// matchTypesBind performs the occurs check and, if it passes, assigns v
// the fixed type t.
func matchTypesBind(v *types.TypeVariable, t types.Type, sys System) (result, System) {
	if types.ContainsVar(t, v) {
		return failure, sys
	}
	sys = sys.assignVar(v.ID, t)
	return solved, sys
}

// deferOrAmbiguous handles a Conversion constraint with a free variable
// on either side. Such a constraint cannot be resolved yet; if the
// caller permits (decomposition contexts do), it is re-queued as a fresh
// inactive entry and the current decomposition step is reported solved.
// Otherwise it is reported ambiguous, leaving the caller's own worklist
// entry in place.
func deferOrAmbiguous(kind constraint.Kind, left, right types.Type, sys System, opts matchOptions) (result, System) {
	if !opts.generateWhenAmbiguous {
		return ambiguous, sys
	}
	var c constraint.Constraint
	if kind == constraint.Bind {
		c = constraint.NewBind(left, right)
	} else {
		c = constraint.NewConversion(left, right)
	}
	sys = sys.AddConstraint(c, false)
	return solved, sys
}

// matchFixedTypes decomposes a pair of concrete (variable-free) types by
// shape, choosing among the conversions that could relate them.
func matchFixedTypes(kind constraint.Kind, left, right types.Type, sys System) (result, System) {
	lf, lIsFn := left.(*types.Function)
	rf, rIsFn := right.(*types.Function)
	if lIsFn && rIsFn {
		return matchFunctionTypes(kind, lf, rf, sys)
	}

	var candidates []constraint.Conversion

	lp, lIsPrim := left.(*types.Primitive)
	rp, rIsPrim := right.(*types.Primitive)
	_, lIsOpt := left.(*types.Optional)
	_, rIsOpt := right.(*types.Optional)

	if (lIsPrim && rIsPrim && lp.Name == rp.Name) || (lIsOpt && rIsOpt) {
		candidates = append(candidates, constraint.DeepEquality)
	}

	if kind == constraint.Conv {
		if lIsOpt && rIsOpt {
			candidates = append(candidates, constraint.OptionalToOptional)
		}
		leftDepth := len(types.LookThroughAllOptionals(left))
		rightDepth := len(types.LookThroughAllOptionals(right))
		if leftDepth < rightDepth {
			candidates = append(candidates, constraint.ValueToOptional)
		}
	}

	switch len(candidates) {
	case 0:
		return failure, sys
	case 1:
		return applyConversion(kind, left, right, candidates[0], sys)
	default:
		alts := make([]constraint.Constraint, len(candidates))
		for i, conv := range candidates {
			subKind := kind
			if conv == constraint.DeepEquality {
				subKind = constraint.Bind
			}
			alts[i] = &constraint.BindOrConversion{
				Kind: subKind, Left: left, Right: right,
				Conversion: conv, HasChosen: true,
			}
		}
		sys, err := sys.AddDisjunction(alts)
		if err != nil {
			return failure, sys
		}
		return solved, sys
	}
}

// matchFunctionTypes decomposes a pair of function types: contravariant
// in the parameter, covariant in the result. Both sub-matches run with
// decompositionOptions, so an ambiguous outcome here is a precondition
// violation rather than a real possibility — the sub-match would instead
// defer by queuing a fresh constraint and reporting solved.
func matchFunctionTypes(kind constraint.Kind, left, right *types.Function, sys System) (result, System) {
	paramResult, sys := matchTypes(kind, right.Parameter, left.Parameter, sys, decompositionOptions)
	if paramResult == failure {
		return failure, sys
	}
	resultResult, sys := matchTypes(kind, left.Result, right.Result, sys, decompositionOptions)
	if resultResult == failure {
		return failure, sys
	}
	return solved, sys
}

// matchDeepEqualityTypes checks structural equality once both sides are
// known concrete and have already been chosen to relate by DeepEquality.
func matchDeepEqualityTypes(left, right types.Type, sys System) (result, System) {
	switch l := left.(type) {
	case *types.Primitive:
		r, ok := right.(*types.Primitive)
		if ok && r.Name == l.Name {
			return solved, sys
		}
		return failure, sys
	case *types.Optional:
		r, ok := right.(*types.Optional)
		if !ok {
			return failure, sys
		}
		return matchTypes(constraint.Bind, l.Wrapped, r.Wrapped, sys, matchOptions{})
	default:
		return failure, sys
	}
}
