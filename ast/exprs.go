package ast

import "github.com/kit-lang/typecheck/types"

// IntegerLiteral: `1`, `42`, ...
type IntegerLiteral struct {
	Value    int64
	inferred types.Type
}

func (e *IntegerLiteral) NodeKind() string      { return "IntegerLiteral" }
func (e *IntegerLiteral) Type() types.Type      { return e.inferred }
func (e *IntegerLiteral) SetType(t types.Type)  { e.inferred = t }

// DeclRef is a reference already resolved to a single declaration.
type DeclRef struct {
	Target   ValueDecl
	inferred types.Type
}

func (e *DeclRef) NodeKind() string     { return "DeclRef" }
func (e *DeclRef) Type() types.Type     { return e.inferred }
func (e *DeclRef) SetType(t types.Type) { e.inferred = t }

// OverloadedDeclRef is a reference resolved to more than one candidate
// declaration; the solver chooses among Targets via a Disjunction of
// BindOverload constraints.
type OverloadedDeclRef struct {
	Targets  []ValueDecl
	inferred types.Type
}

func (e *OverloadedDeclRef) NodeKind() string     { return "OverloadedDeclRef" }
func (e *OverloadedDeclRef) Type() types.Type     { return e.inferred }
func (e *OverloadedDeclRef) SetType(t types.Type) { e.inferred = t }

// UnresolvedDeclRef names an identifier that pre-check must resolve into a
// DeclRef or OverloadedDeclRef before constraint generation runs. It must
// never survive pre-check.
type UnresolvedDeclRef struct {
	Name     string
	inferred types.Type
}

func (e *UnresolvedDeclRef) NodeKind() string     { return "UnresolvedDeclRef" }
func (e *UnresolvedDeclRef) Type() types.Type     { return e.inferred }
func (e *UnresolvedDeclRef) SetType(t types.Type) { e.inferred = t }

// Call: `callee(argument)`.
type Call struct {
	Callee   Expr
	Argument Expr
	inferred types.Type
}

func (e *Call) NodeKind() string     { return "Call" }
func (e *Call) Type() types.Type     { return e.inferred }
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Closure: `{ parameter in body... }`. Only single-expression bodies are
// supported; see the module's notes on deferred multi-statement bodies.
type Closure struct {
	Parameter  *VariableDecl
	ReturnType types.Type // nil if not annotated
	Body       []Expr
	inferred   types.Type
}

func (e *Closure) NodeKind() string     { return "Closure" }
func (e *Closure) Type() types.Type     { return e.inferred }
func (e *Closure) SetType(t types.Type) { e.inferred = t }

// InjectIntoOptional wraps a value expression to produce an optional:
// `x` of type T becomes `InjectIntoOptional(x)` of type T?. Inserted only
// during solution application, never during generation.
type InjectIntoOptional struct {
	Sub      Expr
	inferred types.Type
}

func (e *InjectIntoOptional) NodeKind() string     { return "InjectIntoOptional" }
func (e *InjectIntoOptional) Type() types.Type     { return e.inferred }
func (e *InjectIntoOptional) SetType(t types.Type) { e.inferred = t }

// BindOptional unwraps an optional for use in an optional-to-optional
// coercion sandwich. Inserted only during solution application.
type BindOptional struct {
	Sub      Expr
	inferred types.Type
}

func (e *BindOptional) NodeKind() string     { return "BindOptional" }
func (e *BindOptional) Type() types.Type     { return e.inferred }
func (e *BindOptional) SetType(t types.Type) { e.inferred = t }

// OptionalEvaluation closes an optional-to-optional coercion sandwich
// opened by a BindOptional. Inserted only during solution application.
type OptionalEvaluation struct {
	Sub      Expr
	inferred types.Type
}

func (e *OptionalEvaluation) NodeKind() string     { return "OptionalEvaluation" }
func (e *OptionalEvaluation) Type() types.Type     { return e.inferred }
func (e *OptionalEvaluation) SetType(t types.Type) { e.inferred = t }
