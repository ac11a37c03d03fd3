package check

import (
	"errors"
	"testing"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/construct"
)

// Scenario 1: let x: Int = 1
func TestCheckScenarioAnnotatedLiteral(t *testing.T) {
	file := construct.File(construct.LetVar("x", construct.Int(), construct.IntLit(1)))
	tc := NewTypeChecker(file, construct.NewScope())
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
	want := `(VariableDecl name=x type="Int" initializer=(IntegerLiteral value=1 type="Int"))`
	if got := ast.String(file.Statements[0]); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// Scenario 2: let x = 1 — x's type is inferred as Int.
func TestCheckScenarioInferredLiteral(t *testing.T) {
	file := construct.File(construct.LetVar("x", nil, construct.IntLit(1)))
	tc := NewTypeChecker(file, construct.NewScope())
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
	want := `(VariableDecl name=x type="Int" initializer=(IntegerLiteral value=1 type="Int"))`
	if got := ast.String(file.Statements[0]); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// Scenario 3: let x: Int? = 1 — the initializer is wrapped in InjectIntoOptional.
func TestCheckScenarioOptionalAnnotationWrapsLiteral(t *testing.T) {
	file := construct.File(construct.LetVar("x", construct.Opt(construct.Int()), construct.IntLit(1)))
	tc := NewTypeChecker(file, construct.NewScope())
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
	want := `(VariableDecl name=x type="Int?" initializer=(InjectIntoOptional sub=(IntegerLiteral value=1 type="Int") type="Int?"))`
	if got := ast.String(file.Statements[0]); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// Scenario 4: overload set {f:(Int)->Int, f:(Int)->Int?}; let y: Int? =
// f(1) selects the Int?-returning overload, so no InjectIntoOptional
// wraps the call.
func TestCheckScenarioOverloadSelectionAvoidsUnnecessaryWrap(t *testing.T) {
	fOptInt := construct.Func("f", construct.Fn(construct.Int(), construct.Opt(construct.Int())))
	fInt := construct.Func("f", construct.Fn(construct.Int(), construct.Int()))

	scope := construct.NewScope()
	scope.Declare("f", fOptInt).Declare("f", fInt)

	call := construct.CallExpr(construct.Unresolved("f"), construct.IntLit(1))
	file := construct.File(construct.LetVar("y", construct.Opt(construct.Int()), call))

	tc := NewTypeChecker(file, scope)
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}

	vd := file.Statements[0].(*ast.VariableDecl)
	resolvedCall, ok := vd.Initializer.(*ast.Call)
	if !ok {
		t.Fatalf("initializer = %T, want *ast.Call (no coercion wrapper)", vd.Initializer)
	}
	if _, isIntLit := resolvedCall.Argument.(*ast.IntegerLiteral); !isIntLit {
		t.Fatalf("call argument = %T, want unwrapped *ast.IntegerLiteral", resolvedCall.Argument)
	}
	if got := vd.Initializer.Type(); !got.Equal(construct.Opt(construct.Int())) {
		t.Fatalf("initializer type = %v, want Int?", got)
	}
}

// Scenario 5: a closure `{ x in x }` used where (Int)->Int is expected is
// typed as (Int)->Int. The body references the parameter by name — an
// UnresolvedDeclRef, the only shape a name reference has before
// pre-check — which only resolves if pre-check scopes the parameter into
// a child context for the closure body.
func TestCheckScenarioClosureAgainstExpectedFunctionType(t *testing.T) {
	param := construct.LetVar("x", nil, nil)
	closure := construct.ClosureExpr(param, nil, construct.Unresolved("x"))

	file := construct.File(construct.LetVar("g", construct.Fn(construct.Int(), construct.Int()), closure))
	tc := NewTypeChecker(file, construct.NewScope())
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}

	vd := file.Statements[0].(*ast.VariableDecl)
	gotClosure, ok := vd.Initializer.(*ast.Closure)
	if !ok {
		t.Fatalf("initializer = %T, want *ast.Closure", vd.Initializer)
	}
	wantTy := construct.Fn(construct.Int(), construct.Int())
	if got := gotClosure.Type(); !got.Equal(wantTy) {
		t.Fatalf("closure type = %v, want %v", got, wantTy)
	}
	ref, isRef := gotClosure.Body[0].(*ast.DeclRef)
	if !isRef {
		t.Fatalf("closure body = %T, want resolved *ast.DeclRef", gotClosure.Body[0])
	}
	if ref.Target != param {
		t.Fatalf("closure body resolved to %v, want the closure's own parameter", ref.Target)
	}
}

// A name declared in an outer scope is still visible from inside a
// closure body — child scoping must fall through on a miss, not hide
// the parent entirely.
func TestCheckScenarioClosureBodySeesOuterScope(t *testing.T) {
	outer := construct.Func("one", construct.Fn(construct.Int(), construct.Int()))
	scope := construct.NewScope()
	scope.Declare("one", outer)

	param := construct.LetVar("x", construct.Int(), nil)
	call := construct.CallExpr(construct.Unresolved("one"), construct.Unresolved("x"))
	closure := construct.ClosureExpr(param, construct.Int(), call)

	file := construct.File(construct.LetVar("g", construct.Fn(construct.Int(), construct.Int()), closure))
	tc := NewTypeChecker(file, scope)
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
}

// Scenario 6: let y: Int?? = 1 produces two nested InjectIntoOptional
// wrappers.
func TestCheckScenarioDoubleOptionalWrapsTwice(t *testing.T) {
	doubleOpt := construct.Opt(construct.Opt(construct.Int()))
	file := construct.File(construct.LetVar("y", doubleOpt, construct.IntLit(1)))
	tc := NewTypeChecker(file, construct.NewScope())
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
	want := `(VariableDecl name=y type="Int??" initializer=` +
		`(InjectIntoOptional sub=(InjectIntoOptional sub=(IntegerLiteral value=1 type="Int") type="Int?") type="Int??"))`
	if got := ast.String(file.Statements[0]); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// Scenario 7: a name not in scope fails pre-check with a name-unresolved
// error.
func TestCheckScenarioUnresolvedNameFailsPreCheck(t *testing.T) {
	file := construct.File(construct.Unresolved("foo"))
	tc := NewTypeChecker(file, construct.NewScope())
	err := tc.TypeCheck()
	if err == nil {
		t.Fatal("TypeCheck() = nil, want a name-unresolved error")
	}
	if !errors.Is(err, ErrNameUnresolved) {
		t.Fatalf("err = %v, want errors.Is(err, ErrNameUnresolved)", err)
	}
	want := "failed to resolve: foo"
	if err.Error() != want {
		t.Fatalf("err.Error() = %q, want %q", err.Error(), want)
	}
}

func TestCheckUnderconstrainedProgramFailsWithNoSolution(t *testing.T) {
	param := construct.LetVar("x", nil, nil)
	closure := construct.ClosureExpr(param, nil, construct.Unresolved("x"))
	file := construct.File(closure)

	tc := NewTypeChecker(file, construct.NewScope())
	err := tc.TypeCheck()
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("err = %v, want errors.Is(err, ErrNoSolution)", err)
	}
}

func TestCheckAmbiguityCountReflectsExtraSolutions(t *testing.T) {
	fInt := construct.Func("f", construct.Fn(construct.Int(), construct.Int()))
	fOptInt := construct.Func("f", construct.Fn(construct.Int(), construct.Opt(construct.Int())))
	scope := construct.NewScope()
	scope.Declare("f", fInt).Declare("f", fOptInt)

	call := construct.CallExpr(construct.Unresolved("f"), construct.IntLit(1))
	file := construct.File(construct.LetVar("y", construct.Opt(construct.Int()), call))

	tc := NewTypeChecker(file, scope)
	if err := tc.TypeCheck(); err != nil {
		t.Fatalf("TypeCheck() = %v, want nil", err)
	}
	if tc.AmbiguityCount() == 0 {
		t.Fatal("AmbiguityCount() = 0, want nonzero: two overloads both satisfy the declared type")
	}
}
