// Package construct provides small builder functions for types and AST
// nodes, for use by tests and by embedders assembling a pre-resolved AST
// without hand-rolling struct literals.
package construct

import (
	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/types"
)

// Types

// Int, Bool, String are common primitive type constructors.
func Int() *types.Primitive    { return &types.Primitive{Name: "Int"} }
func Bool() *types.Primitive   { return &types.Primitive{Name: "Bool"} }
func String() *types.Primitive { return &types.Primitive{Name: "String"} }

// Primitive constructs a nominal type by name.
func Primitive(name string) *types.Primitive { return &types.Primitive{Name: name} }

// Opt wraps t as an optional: T?
func Opt(t types.Type) *types.Optional { return &types.Optional{Wrapped: t} }

// Fn constructs a single-parameter function type: (param) -> result.
func Fn(param, result types.Type) *types.Function {
	return &types.Function{Parameter: param, Result: result}
}

// Var constructs a type variable with the given id.
func Var(id int) *types.TypeVariable { return types.NewVar(id) }

// AST

// IntLit constructs an untyped integer literal.
func IntLit(v int64) *ast.IntegerLiteral { return &ast.IntegerLiteral{Value: v} }

// LetVar declares a variable, optionally with a type annotation and/or
// initializer. Pass nil for either to omit it.
func LetVar(name string, annotation types.Type, initializer ast.Expr) *ast.VariableDecl {
	return &ast.VariableDecl{Name: name, TypeAnnotation: annotation, Initializer: initializer}
}

// Func declares a fixed-signature function, usable only as a DeclRef/
// OverloadedDeclRef target (this module does not model function bodies).
func Func(name string, sig *types.Function) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, InterfaceTy: sig}
}

// Ref constructs a resolved reference to a single declaration.
func Ref(target ast.ValueDecl) *ast.DeclRef { return &ast.DeclRef{Target: target} }

// OverloadedRef constructs a reference to more than one candidate
// declaration, resolved by the solver.
func OverloadedRef(targets ...ast.ValueDecl) *ast.OverloadedDeclRef {
	return &ast.OverloadedDeclRef{Targets: targets}
}

// Unresolved constructs a not-yet-resolved reference; pre-check must turn
// this into a Ref or OverloadedRef before generation runs.
func Unresolved(name string) *ast.UnresolvedDeclRef {
	return &ast.UnresolvedDeclRef{Name: name}
}

// CallExpr applies callee to a single argument.
func CallExpr(callee, argument ast.Expr) *ast.Call {
	return &ast.Call{Callee: callee, Argument: argument}
}

// ClosureExpr constructs a single-parameter closure with a
// single-expression body and an optional declared return type.
func ClosureExpr(param *ast.VariableDecl, returnType types.Type, body ast.Expr) *ast.Closure {
	return &ast.Closure{Parameter: param, ReturnType: returnType, Body: []ast.Expr{body}}
}

// File groups statements into a source file.
func File(statements ...ast.Node) *ast.SourceFile {
	return &ast.SourceFile{Statements: statements}
}

// Scope

// Scope is a mutable symbol table implementing ast.DeclContext. A Resolve
// miss in its own declarations falls through to parent, so child scopes
// express lexical nesting (a closure parameter shadowing an outer name)
// without copying the outer scope's declarations.
type Scope struct {
	decls  map[string][]ast.ValueDecl
	parent ast.DeclContext
}

// NewScope returns an empty root Scope with no parent.
func NewScope() *Scope { return &Scope{decls: map[string][]ast.ValueDecl{}} }

// NewChildScope returns an empty Scope whose Resolve misses fall through
// to parent. parent may be any ast.DeclContext, not just a *Scope, so a
// child scope can be layered onto a caller-supplied context.
func NewChildScope(parent ast.DeclContext) *Scope {
	return &Scope{decls: map[string][]ast.ValueDecl{}, parent: parent}
}

// Declare adds decl as a candidate for its own name. Declaring more than
// one ValueDecl under the same name makes every later Resolve of that
// name return the full overload set. A name declared in a child scope
// shadows (rather than extends) the same name in a parent scope.
func (s *Scope) Declare(name string, decl ast.ValueDecl) *Scope {
	s.decls[name] = append(s.decls[name], decl)
	return s
}

// Resolve implements ast.DeclContext: own declarations first, falling
// through to parent (if any) on a miss.
func (s *Scope) Resolve(name string) []ast.ValueDecl {
	if decls, ok := s.decls[name]; ok {
		return decls
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil
}
