package check

import (
	"fmt"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/construct"
)

// resolveExpr rewrites every UnresolvedDeclRef reachable from e into a
// DeclRef or OverloadedDeclRef, using context. It mutates Call/Closure
// children in place and returns the (possibly replaced) root.
func resolveExpr(e ast.Expr, context ast.DeclContext) (ast.Expr, error) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return n, nil

	case *ast.DeclRef, *ast.OverloadedDeclRef:
		return n, nil

	case *ast.UnresolvedDeclRef:
		targets := context.Resolve(n.Name)
		switch len(targets) {
		case 0:
			return nil, fmt.Errorf("%w: %s", ErrNameUnresolved, n.Name)
		case 1:
			return &ast.DeclRef{Target: targets[0]}, nil
		default:
			return &ast.OverloadedDeclRef{Targets: targets}, nil
		}

	case *ast.Call:
		callee, err := resolveExpr(n.Callee, context)
		if err != nil {
			return nil, err
		}
		argument, err := resolveExpr(n.Argument, context)
		if err != nil {
			return nil, err
		}
		n.Callee = callee
		n.Argument = argument
		return n, nil

	case *ast.Closure:
		inner := construct.NewChildScope(context).Declare(n.Parameter.Name, n.Parameter)
		for i, stmt := range n.Body {
			resolved, err := resolveExpr(stmt, inner)
			if err != nil {
				return nil, err
			}
			n.Body[i] = resolved
		}
		return n, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidNodeDuringGeneration, e.NodeKind())
	}
}
