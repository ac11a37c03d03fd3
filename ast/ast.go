// Package ast defines the AST node shapes consumed by the type checker:
// declarations, expressions, and the three implicit-conversion wrapper
// nodes injected during solution application. Lexing, parsing, and
// name-resolution are external collaborators; this package only defines
// the node shapes and the minimal resolve capability the checker needs.
package ast

import "github.com/kit-lang/typecheck/types"

// Node is implemented by every declaration and expression node.
type Node interface {
	// NodeKind names the node's kind, used for dispatch and the textual
	// form described by the module's test oracle.
	NodeKind() string
}

// Expr is implemented by every expression node. Every expression carries a
// nullable Type, set during solution application.
type Expr interface {
	Node
	// Type returns the type assigned during apply, or nil beforehand.
	Type() types.Type
	// SetType assigns the node's type. Called only by the checker.
	SetType(t types.Type)
}

// ValueDecl is implemented by declarations which introduce a value with a
// type: VariableDecl and FunctionDecl.
type ValueDecl interface {
	Node
	// InterfaceType is the declared/inferred type through which the
	// declaration is referenced (a DeclRef's resolveOverload target).
	InterfaceType() types.Type
}

// DeclContext is the name-resolution capability the checker consumes. A
// zero-length result means the name is undeclared.
type DeclContext interface {
	Resolve(name string) []ValueDecl
}
