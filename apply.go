package check

import (
	"fmt"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/solve"
	"github.com/kit-lang/typecheck/types"
)

// apply performs the post-order solution-application walk of spec.md
// §4.8: every visited node gets its solved type, and Call/Closure gain
// coerced argument/body slots where the solution required an implicit
// conversion.
func apply(e ast.Expr, sol solve.Solution) (ast.Expr, error) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return setSolvedType(n, sol)

	case *ast.DeclRef:
		return setSolvedType(n, sol)

	case *ast.OverloadedDeclRef:
		return setSolvedType(n, sol)

	case *ast.Call:
		callee, err := apply(n.Callee, sol)
		if err != nil {
			return nil, err
		}
		n.Callee = callee

		argument, err := apply(n.Argument, sol)
		if err != nil {
			return nil, err
		}
		n.Argument = argument

		if _, err := setSolvedType(n, sol); err != nil {
			return nil, err
		}

		if fn, ok := n.Callee.Type().(*types.Function); ok {
			coerced, err := coerce(n.Argument, fn.Parameter, sol)
			if err != nil {
				return nil, err
			}
			n.Argument = coerced
		}
		return n, nil

	case *ast.Closure:
		body, err := apply(n.Body[0], sol)
		if err != nil {
			return nil, err
		}
		n.Body[0] = body

		if t, ok := sol.FixedType(n.Parameter); ok {
			n.Parameter.SetType(t)
		}

		if _, err := setSolvedType(n, sol); err != nil {
			return nil, err
		}

		if n.ReturnType != nil {
			coerced, err := coerce(n.Body[0], n.ReturnType, sol)
			if err != nil {
				return nil, err
			}
			n.Body[0] = coerced
		}
		return n, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidNodeDuringApply, e.NodeKind())
	}
}

func setSolvedType(e ast.Expr, sol solve.Solution) (ast.Expr, error) {
	t, ok := sol.FixedType(e)
	if !ok {
		return nil, fmt.Errorf("%w: no recorded type for %s", ErrInvalidNodeDuringApply, e.NodeKind())
	}
	e.SetType(t)
	return e, nil
}

// coerce inserts whatever implicit-conversion wrapper the solution's
// recorded relations (or, failing that, toTy's own optional shape)
// demand to take expr from its current type to toTy, per spec.md §4.8.
func coerce(expr ast.Expr, toTy types.Type, sol solve.Solution) (ast.Expr, error) {
	fromTy := expr.Type()
	if fromTy.Equal(toTy) {
		return expr, nil
	}

	for _, rel := range sol.Relations {
		if !rel.Left.Equal(fromTy) || !rel.Right.Equal(toTy) {
			continue
		}
		switch rel.Conversion {
		case constraint.DeepEquality:
			return expr, nil

		case constraint.ValueToOptional:
			opt, ok := toTy.(*types.Optional)
			if !ok {
				return nil, fmt.Errorf("%w: ValueToOptional target %s is not Optional", ErrCoerceUnconsidered, types.String(toTy))
			}
			inner, err := coerce(expr, opt.Wrapped, sol)
			if err != nil {
				return nil, err
			}
			wrapped := &ast.InjectIntoOptional{Sub: inner}
			wrapped.SetType(toTy)
			return wrapped, nil

		case constraint.OptionalToOptional:
			return coerceOptionalToOptional(expr, toTy, sol)
		}
	}

	if opt, ok := toTy.(*types.Optional); ok {
		if _, fromIsOpt := fromTy.(*types.Optional); fromIsOpt {
			return coerceOptionalToOptional(expr, toTy, sol)
		}
		inner, err := coerce(expr, opt.Wrapped, sol)
		if err != nil {
			return nil, err
		}
		wrapped := &ast.InjectIntoOptional{Sub: inner}
		wrapped.SetType(toTy)
		return wrapped, nil
	}

	return nil, fmt.Errorf("%w: no conversion from %s to %s", ErrCoerceUnconsidered, types.String(fromTy), types.String(toTy))
}

// coerceOptionalToOptional relates two Optional types: a pure structural
// lift when toTy's optional chain literally contains fromTy, otherwise
// the bind/evaluate sandwich that re-coerces the unwrapped payload and
// re-wraps it.
func coerceOptionalToOptional(expr ast.Expr, toTy types.Type, sol solve.Solution) (ast.Expr, error) {
	fromTy := expr.Type()
	fromOpt, ok := fromTy.(*types.Optional)
	if !ok {
		return nil, fmt.Errorf("%w: coerceOptionalToOptional requires an Optional source, got %s", ErrCoerceUnconsidered, types.String(fromTy))
	}
	toOpt, ok := toTy.(*types.Optional)
	if !ok {
		return nil, fmt.Errorf("%w: coerceOptionalToOptional requires an Optional target, got %s", ErrCoerceUnconsidered, types.String(toTy))
	}

	fromChain := types.LookThroughAllOptionals(fromTy)
	toChain := types.LookThroughAllOptionals(toTy)
	fromDepth, toDepth := len(fromChain), len(toChain)

	if toDepth > fromDepth && toChain[toDepth-fromDepth].Equal(fromTy) {
		n := toDepth - fromDepth
		cur := expr
		for i := n - 1; i >= 0; i-- {
			wrapped := &ast.InjectIntoOptional{Sub: cur}
			wrapped.SetType(toChain[i])
			cur = wrapped
		}
		return cur, nil
	}

	bound := &ast.BindOptional{Sub: expr}
	bound.SetType(fromOpt.Wrapped)

	innerCoerced, err := coerce(bound, toOpt.Wrapped, sol)
	if err != nil {
		return nil, err
	}

	injected := &ast.InjectIntoOptional{Sub: innerCoerced}
	injected.SetType(toTy)

	eval := &ast.OptionalEvaluation{Sub: injected}
	eval.SetType(toTy)
	return eval, nil
}
