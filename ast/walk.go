package ast

// Walk visits e and every sub-expression in post-order: children before
// parents. f is called once per node, children first.
func Walk(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case nil:
		return
	case *IntegerLiteral, *DeclRef, *OverloadedDeclRef, *UnresolvedDeclRef:
		f(e)
	case *Call:
		Walk(e.Callee, f)
		Walk(e.Argument, f)
		f(e)
	case *Closure:
		for _, stmt := range e.Body {
			Walk(stmt, f)
		}
		f(e)
	case *InjectIntoOptional:
		Walk(e.Sub, f)
		f(e)
	case *BindOptional:
		Walk(e.Sub, f)
		f(e)
	case *OptionalEvaluation:
		Walk(e.Sub, f)
		f(e)
	default:
		panic("ast.Walk: unknown expression kind " + e.NodeKind())
	}
}
