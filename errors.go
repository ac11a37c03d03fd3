// Package check is the type checker façade: pre-check name resolution,
// constraint generation, solving, and solution application, wired
// together behind TypeChecker.
package check

import "errors"

// Sentinel errors identifying the failure kinds TypeCheck can report.
// Wrapped with additional detail via fmt.Errorf("%w: ...", ...); test
// and caller code distinguishes them with errors.Is.
var (
	// ErrNameUnresolved is returned when pre-check finds zero
	// declarations for a referenced name.
	ErrNameUnresolved = errors.New("failed to resolve")

	// ErrNoSolution is returned when the solver finds zero solutions for
	// a statement's constraint system.
	ErrNoSolution = errors.New("no solution")

	// ErrInvalidNodeDuringGeneration is returned when a node that must
	// never appear during constraint generation is encountered —
	// SourceFile, FunctionDecl, UnresolvedDeclRef, or any of the three
	// conversion-wrapper nodes.
	ErrInvalidNodeDuringGeneration = errors.New("invalid node during constraint generation")

	// ErrInvalidNodeDuringApply is returned when a node of an
	// unrecognized or disallowed kind is encountered while applying a
	// solution.
	ErrInvalidNodeDuringApply = errors.New("invalid node during solution application")

	// ErrCoerceUnconsidered is returned when apply finds no conversion
	// path for a coercion the solver claimed to have solved. This
	// should never happen for a well-formed program; treat it as a bug
	// report rather than a user-facing diagnostic.
	ErrCoerceUnconsidered = errors.New("no considered conversion for coercion")

	// ErrUnsupportedClosureBody is returned (wrapped by
	// ErrInvalidNodeDuringGeneration) when a Closure has other than
	// exactly one statement in its body. Multi-statement closures are
	// deferred until a statement-level typing pass exists.
	ErrUnsupportedClosureBody = errors.New("unsupported multi-statement closure body")
)
