package check

import (
	"fmt"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/internal/varalloc"
	"github.com/kit-lang/typecheck/solve"
)

// TypeChecker type-checks every statement of a SourceFile in order,
// mutating nodes in place as solutions are applied. Construct one with
// NewTypeChecker and call TypeCheck.
type TypeChecker struct {
	Source  *ast.SourceFile
	Context ast.DeclContext
	Options solve.Options

	// DidGenerateConstraints, DidFoundSolution, and DidApplySolution are
	// the three optional callback hooks of spec.md §6's external
	// interface, invoked for every statement's expression type-check
	// (bare expression statements and VariableDecl initializers alike).
	DidGenerateConstraints func(sys solve.System, expr ast.Expr, context ast.DeclContext) solve.System
	DidFoundSolution       func(sol solve.Solution, expr ast.Expr, context ast.DeclContext) ast.Expr
	DidApplySolution       func(sol solve.Solution, expr ast.Expr, context ast.DeclContext) ast.Expr

	tracker         *varalloc.Tracker
	ambiguityCount  int
	checkpointCount int
}

// NewTypeChecker returns a TypeChecker ready to check source against
// context's name resolution.
func NewTypeChecker(source *ast.SourceFile, context ast.DeclContext) *TypeChecker {
	return &TypeChecker{
		Source:  source,
		Context: context,
		tracker: varalloc.New(),
	}
}

// TypeCheck checks every statement in Source in order. A VariableDecl
// statement's own declared/inferred type, and its initializer's type
// (if any), are both assigned; a bare expression statement's applied
// tree replaces it in Source.Statements. Fails immediately (no partial
// success) on the first error.
func (c *TypeChecker) TypeCheck() error {
	for i, stmt := range c.Source.Statements {
		switch s := stmt.(type) {
		case *ast.VariableDecl:
			if err := c.typeCheckVariableDecl(s); err != nil {
				return err
			}
		case ast.Expr:
			applied, _, err := c.typeCheckExpr(s, nil)
			if err != nil {
				return err
			}
			c.Source.Statements[i] = applied
		default:
			return fmt.Errorf("%w: %s", ErrInvalidNodeDuringGeneration, s.NodeKind())
		}
	}
	return nil
}

// AmbiguityCount reports the total number of solutions beyond the first
// found across every statement checked so far — a program is ambiguous
// wherever this is nonzero, even though TypeCheck still succeeds by
// picking an arbitrary first solution per statement.
func (c *TypeChecker) AmbiguityCount() int { return c.ambiguityCount }

// CheckpointCount reports the total number of checkpoint/restore cycles
// performed by the solver across every statement checked so far.
func (c *TypeChecker) CheckpointCount() int { return c.checkpointCount }

// typeCheckVariableDecl assigns vd its declared or fresh type, and — if
// present — type-checks its initializer under the extra constraint that
// the initializer's type converts to vd's own type, then coerces the
// applied initializer to vd's solved type (inserting any
// implicit-conversion wrappers that conversion needs).
func (c *TypeChecker) typeCheckVariableDecl(vd *ast.VariableDecl) error {
	declaredTy := vd.TypeAnnotation
	if declaredTy == nil {
		declaredTy = c.tracker.Fresh()
	}
	vd.SetType(declaredTy)

	if vd.Initializer == nil {
		if vd.TypeAnnotation == nil {
			return fmt.Errorf("%w: variable %q has neither a type annotation nor an initializer", ErrNoSolution, vd.Name)
		}
		return nil
	}

	extra := func(sys solve.System, resolvedInitializer ast.Expr) solve.System {
		initTy, _ := sys.TypeOf(resolvedInitializer)
		sys = sys.SetType(vd, declaredTy)
		return sys.AddConstraint(constraint.NewConversion(initTy, declaredTy), true)
	}

	applied, sol, err := c.typeCheckExpr(vd.Initializer, extra)
	if err != nil {
		return err
	}
	vd.Initializer = applied

	if t, ok := sol.FixedType(vd); ok {
		vd.SetType(t)
	}

	coerced, err := coerce(vd.Initializer, vd.Type(), sol)
	if err != nil {
		return err
	}
	vd.Initializer = coerced
	return nil
}

// typeCheckExpr runs the full pre-check / generate / solve / apply
// pipeline for a single expression. extra, if non-nil, adds further
// constraints once generation has run but before solving, given the
// post-pre-check expression (which may be a different node than e, if e
// itself was an UnresolvedDeclRef).
func (c *TypeChecker) typeCheckExpr(e ast.Expr, extra func(sys solve.System, resolved ast.Expr) solve.System) (ast.Expr, solve.Solution, error) {
	resolved, err := resolveExpr(e, c.Context)
	if err != nil {
		return nil, solve.Solution{}, err
	}
	e = resolved

	g := &generator{tracker: c.tracker}
	sys := solve.NewSystem()
	if _, sys, err = g.generate(e, sys); err != nil {
		return nil, solve.Solution{}, err
	}

	if extra != nil {
		sys = extra(sys, e)
	}
	if c.DidGenerateConstraints != nil {
		sys = c.DidGenerateConstraints(sys, e, c.Context)
	}

	work := solve.Solve(sys, c.Options)
	c.checkpointCount += work.Checkpoints
	if len(work.Solutions) == 0 {
		return nil, solve.Solution{}, ErrNoSolution
	}
	if len(work.Solutions) > 1 {
		c.ambiguityCount += len(work.Solutions) - 1
	}
	sol := work.Solutions[0]

	if c.DidFoundSolution != nil {
		e = c.DidFoundSolution(sol, e, c.Context)
	}

	applied, err := apply(e, sol)
	if err != nil {
		return nil, solve.Solution{}, err
	}
	e = applied

	if c.DidApplySolution != nil {
		e = c.DidApplySolution(sol, e, c.Context)
	}

	return e, sol, nil
}
