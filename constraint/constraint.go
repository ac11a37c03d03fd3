// Package constraint defines the constraint language generated during
// type checking and the store that holds the current constraint system:
// an ordered, active/inactive-tagged worklist plus the record of chosen
// overloads and applied conversions.
package constraint

import (
	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/types"
)

// Kind distinguishes Bind from Conversion constraints: structural
// equality up to variable binding versus one-way convertibility.
type Kind int

const (
	// Bind requires left and right to unify exactly.
	Bind Kind = iota
	// Conv requires left to be convertible to right.
	Conv
)

func (k Kind) String() string {
	if k == Bind {
		return "Bind"
	}
	return "Conversion"
}

// Conversion enumerates the implicit conversions the system knows how to
// both prove and later apply.
type Conversion int

const (
	// DeepEquality is the trivial conversion: the two types already match
	// structurally once variables are substituted out.
	DeepEquality Conversion = iota
	// ValueToOptional wraps a bare value as an optional.
	ValueToOptional
	// OptionalToOptional relates two optional types by their wrapped types.
	OptionalToOptional
)

func (c Conversion) String() string {
	switch c {
	case DeepEquality:
		return "DeepEquality"
	case ValueToOptional:
		return "ValueToOptional"
	case OptionalToOptional:
		return "OptionalToOptional"
	default:
		return "Conversion(?)"
	}
}

// Constraint is the tagged variant of constraints the solver consumes.
// Implementations are BindConstraint, ConversionConstraint,
// ApplicableFunctionConstraint, BindOverloadConstraint, and
// DisjunctionConstraint.
type Constraint interface {
	// constraintTag is unexported so Constraint is closed to this package.
	constraintTag()
}

// BindOrConversion is the shared shape of Bind and Conversion constraints:
// a left/right type pair and an optional already-chosen conversion (set
// once matching has picked one among several candidates, so that a
// reactivated entry does not re-derive it).
type BindOrConversion struct {
	Kind       Kind
	Left       types.Type
	Right      types.Type
	Conversion Conversion
	HasChosen  bool
}

func (*BindOrConversion) constraintTag() {}

// NewBind constructs an unresolved Bind constraint.
func NewBind(left, right types.Type) *BindOrConversion {
	return &BindOrConversion{Kind: Bind, Left: left, Right: right}
}

// NewConversion constructs an unresolved Conversion constraint.
func NewConversion(left, right types.Type) *BindOrConversion {
	return &BindOrConversion{Kind: Conv, Left: left, Right: right}
}

// WithConversion returns a copy of c with a chosen conversion recorded.
func (c *BindOrConversion) WithConversion(conv Conversion) *BindOrConversion {
	return &BindOrConversion{Kind: c.Kind, Left: c.Left, Right: c.Right, Conversion: conv, HasChosen: true}
}

// ApplicableFunctionConstraint requires that Right (the callee's type, not
// necessarily yet known to be a function) be callable with a signature
// described by Left. Kept deferred until Right simplifies to a concrete
// Function type.
type ApplicableFunctionConstraint struct {
	Left  *types.Function
	Right types.Type
}

func (*ApplicableFunctionConstraint) constraintTag() {}

// NewApplicableFunction constructs an ApplicableFunctionConstraint.
func NewApplicableFunction(left *types.Function, right types.Type) *ApplicableFunctionConstraint {
	return &ApplicableFunctionConstraint{Left: left, Right: right}
}

// OverloadChoice names one candidate declaration of an overload set.
type OverloadChoice struct {
	Decl ast.ValueDecl
}

// OverloadSelection records which OverloadChoice was bound at a given
// reference site, together with the type the declaration was opened at
// (its InterfaceType at the moment of selection).
type OverloadSelection struct {
	Choice     OverloadChoice
	OpenedType types.Type
}

// BindOverloadConstraint binds Left to the interface type of Choice's
// declaration, recording the selection at Location once solved.
type BindOverloadConstraint struct {
	Left     *types.TypeVariable
	Choice   OverloadChoice
	Location ast.Node
}

func (*BindOverloadConstraint) constraintTag() {}

// NewBindOverload constructs a BindOverloadConstraint.
func NewBindOverload(left *types.TypeVariable, choice OverloadChoice, location ast.Node) *BindOverloadConstraint {
	return &BindOverloadConstraint{Left: left, Choice: choice, Location: location}
}

// DisjunctionConstraint requires exactly one of Alternatives to hold.
type DisjunctionConstraint struct {
	Alternatives []Constraint
}

func (*DisjunctionConstraint) constraintTag() {}

// NewDisjunction constructs a DisjunctionConstraint over two or more
// alternatives. Callers with fewer alternatives should use Store.Add or
// Store.AddDisjunction, which collapse the trivial cases.
func NewDisjunction(alternatives []Constraint) *DisjunctionConstraint {
	return &DisjunctionConstraint{Alternatives: alternatives}
}

// TypeConversionRelation records that conversion Conv was used to relate
// Left to Right during simplification. Consulted during apply to choose
// which wrapper nodes to insert.
type TypeConversionRelation struct {
	Conversion Conversion
	Left       types.Type
	Right      types.Type
}
