package check

import (
	"fmt"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/internal/varalloc"
	"github.com/kit-lang/typecheck/solve"
	"github.com/kit-lang/typecheck/types"
)

// generator walks an expression tree post-order, recording each node's
// tentative type in the constraint system and emitting the constraints
// spec.md §4.7 describes per node kind.
type generator struct {
	tracker *varalloc.Tracker
}

func (g *generator) generate(e ast.Expr, sys solve.System) (types.Type, solve.System, error) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		t := types.Type(&types.Primitive{Name: "Int"})
		sys = sys.SetType(n, t)
		return t, sys, nil

	case *ast.DeclRef:
		tv := g.tracker.Fresh()
		sys = sys.SetType(n, tv)
		sys.Store = sys.Store.ResolveOverload(tv, constraint.OverloadChoice{Decl: n.Target}, n)
		return tv, sys, nil

	case *ast.OverloadedDeclRef:
		tv := g.tracker.Fresh()
		sys = sys.SetType(n, tv)
		alts := make([]constraint.Constraint, len(n.Targets))
		for i, target := range n.Targets {
			alts[i] = constraint.NewBindOverload(tv, constraint.OverloadChoice{Decl: target}, n)
		}
		next, err := sys.AddDisjunction(alts)
		if err != nil {
			return nil, sys, err
		}
		return tv, next, nil

	case *ast.Call:
		calleeTy, sys, err := g.generate(n.Callee, sys)
		if err != nil {
			return nil, sys, err
		}
		argTy, sys, err := g.generate(n.Argument, sys)
		if err != nil {
			return nil, sys, err
		}
		tv := g.tracker.Fresh()
		sys = sys.SetType(n, tv)
		sys = sys.AddConstraint(constraint.NewApplicableFunction(&types.Function{Parameter: argTy, Result: tv}, calleeTy), true)
		return tv, sys, nil

	case *ast.Closure:
		if len(n.Body) != 1 {
			return nil, sys, fmt.Errorf("%w: %w (got %d statements)", ErrInvalidNodeDuringGeneration, ErrUnsupportedClosureBody, len(n.Body))
		}

		paramTy := n.Parameter.TypeAnnotation
		if paramTy == nil {
			paramTy = g.tracker.Fresh()
		}
		n.Parameter.SetType(paramTy)
		sys = sys.SetType(n.Parameter, paramTy)

		bodyTy, sys, err := g.generate(n.Body[0], sys)
		if err != nil {
			return nil, sys, err
		}

		resultTy := n.ReturnType
		if resultTy == nil {
			resultTy = g.tracker.Fresh()
		}
		sys = sys.AddConstraint(constraint.NewConversion(bodyTy, resultTy), true)

		fnTy := &types.Function{Parameter: paramTy, Result: resultTy}
		sys = sys.SetType(n, fnTy)
		return fnTy, sys, nil

	case *ast.UnresolvedDeclRef:
		return nil, sys, fmt.Errorf("%w: UnresolvedDeclRef must be resolved before generation", ErrInvalidNodeDuringGeneration)

	default:
		return nil, sys, fmt.Errorf("%w: %s", ErrInvalidNodeDuringGeneration, e.NodeKind())
	}
}
