package ast

import "github.com/kit-lang/typecheck/types"

// VariableDecl declares a name, optionally with an explicit type
// annotation and/or an initializer expression: `let x: Int = 1`.
type VariableDecl struct {
	Name           string
	TypeAnnotation types.Type // nil if absent
	Initializer    Expr       // nil if absent

	declaredType types.Type // set by generation: TypeAnnotation or a fresh variable
}

func (d *VariableDecl) NodeKind() string { return "VariableDecl" }

// InterfaceType is the type through which a DeclRef to this declaration is
// bound: the declaration's own tentative/final type.
func (d *VariableDecl) InterfaceType() types.Type { return d.declaredType }

// Type returns the type assigned to the declaration itself (distinct from
// the type of its Initializer expression).
func (d *VariableDecl) Type() types.Type { return d.declaredType }

// SetType assigns the declaration's type. Called during constraint
// generation (fresh variable or annotation) and overwritten during apply
// (final solved type).
func (d *VariableDecl) SetType(t types.Type) { d.declaredType = t }

// FunctionDecl declares a function with a fixed interface type. Function
// bodies are outside this module's scope; only the signature matters to
// the checker, since FunctionDecl only ever appears as a DeclRef target.
type FunctionDecl struct {
	Name          string
	InterfaceTy   *types.Function
}

func (d *FunctionDecl) NodeKind() string { return "FunctionDecl" }

func (d *FunctionDecl) InterfaceType() types.Type { return d.InterfaceTy }
