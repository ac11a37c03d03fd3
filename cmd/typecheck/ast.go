package main

import (
	"encoding/json"
	"fmt"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/construct"
	"github.com/kit-lang/typecheck/types"
)

// nodeJSON is the wire form of a statement or expression. Which fields
// are populated depends on Kind:
//
//	IntegerLiteral:    Value
//	UnresolvedDeclRef:  Name
//	Call:              Callee, Argument
//	Closure:           Param, ParamType, ReturnType, Body
//	VariableDecl:      Name, Type, Initializer
type nodeJSON struct {
	Kind        string          `json:"kind"`
	Value       int64           `json:"value,omitempty"`
	Name        string          `json:"name,omitempty"`
	Callee      *nodeJSON       `json:"callee,omitempty"`
	Argument    *nodeJSON       `json:"argument,omitempty"`
	Param       string          `json:"param,omitempty"`
	ParamType   json.RawMessage `json:"paramType,omitempty"`
	ReturnType  json.RawMessage `json:"returnType,omitempty"`
	Body        []*nodeJSON     `json:"body,omitempty"`
	Type        json.RawMessage `json:"type,omitempty"`
	Initializer *nodeJSON       `json:"initializer,omitempty"`
}

// declJSON is a single top-level declaration available to name resolution:
// a function with a fixed (Int)->Int-shaped signature. Declaring the same
// name more than once builds an overload set.
type declJSON struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

func decodeStatement(nj *nodeJSON) (ast.Node, error) {
	if nj.Kind == "VariableDecl" {
		annotation, err := decodeType(nj.Type)
		if err != nil {
			return nil, err
		}
		var initializer ast.Expr
		if nj.Initializer != nil {
			initializer, err = decodeExpr(nj.Initializer)
			if err != nil {
				return nil, err
			}
		}
		return construct.LetVar(nj.Name, annotation, initializer), nil
	}
	return decodeExpr(nj)
}

func decodeExpr(nj *nodeJSON) (ast.Expr, error) {
	if nj == nil {
		return nil, fmt.Errorf("nil expression node")
	}
	switch nj.Kind {
	case "IntegerLiteral":
		return construct.IntLit(nj.Value), nil

	case "UnresolvedDeclRef":
		return construct.Unresolved(nj.Name), nil

	case "Call":
		callee, err := decodeExpr(nj.Callee)
		if err != nil {
			return nil, err
		}
		argument, err := decodeExpr(nj.Argument)
		if err != nil {
			return nil, err
		}
		return construct.CallExpr(callee, argument), nil

	case "Closure":
		if len(nj.Body) != 1 {
			return nil, fmt.Errorf("closure body must have exactly one expression, got %d", len(nj.Body))
		}
		paramType, err := decodeType(nj.ParamType)
		if err != nil {
			return nil, err
		}
		returnType, err := decodeType(nj.ReturnType)
		if err != nil {
			return nil, err
		}
		param := construct.LetVar(nj.Param, paramType, nil)
		body, err := decodeExpr(nj.Body[0])
		if err != nil {
			return nil, err
		}
		return construct.ClosureExpr(param, returnType, body), nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", nj.Kind)
	}
}

func decodeProgram(raw []byte) (*ast.SourceFile, *construct.Scope, error) {
	var program struct {
		Decls      []declJSON  `json:"decls"`
		Statements []*nodeJSON `json:"statements"`
	}
	if err := json.Unmarshal(raw, &program); err != nil {
		return nil, nil, fmt.Errorf("decoding program: %w", err)
	}

	scope := construct.NewScope()
	for _, d := range program.Decls {
		sig, err := decodeType(d.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("decl %q: %w", d.Name, err)
		}
		fn, ok := sig.(*types.Function)
		if !ok {
			return nil, nil, fmt.Errorf("decl %q: type must be a function, got %s", d.Name, sig.TypeName())
		}
		scope.Declare(d.Name, construct.Func(d.Name, fn))
	}

	statements := make([]ast.Node, len(program.Statements))
	for i, nj := range program.Statements {
		stmt, err := decodeStatement(nj)
		if err != nil {
			return nil, nil, fmt.Errorf("statement %d: %w", i, err)
		}
		statements[i] = stmt
	}

	return construct.File(statements...), scope, nil
}
