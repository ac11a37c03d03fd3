// Package types implements the closed type model consumed by the solver:
// primitive names, function types, optional wrapping, and type variables.
package types

// Type is the base interface for all types in the system.
type Type interface {
	// TypeName identifies the variant, for dispatch and error messages.
	TypeName() string
	// Equal reports whether t and other denote the same type. TypeVariable
	// equality is by id; every other variant compares structurally.
	Equal(other Type) bool
}

func (t *Primitive) TypeName() string    { return "Primitive" }
func (t *Function) TypeName() string     { return "Function" }
func (t *Optional) TypeName() string     { return "Optional" }
func (t *TypeVariable) TypeName() string { return "TypeVariable" }
func (t TopAny) TypeName() string        { return "TopAny" }

// Primitive is a nominal type compared by name: Int, Bool, String, ...
type Primitive struct {
	Name string
}

func (t *Primitive) Equal(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && o.Name == t.Name
}

// Function is a single-parameter function type: (Parameter) -> Result.
type Function struct {
	Parameter Type
	Result    Type
}

func (t *Function) Equal(other Type) bool {
	o, ok := other.(*Function)
	return ok && t.Parameter.Equal(o.Parameter) && t.Result.Equal(o.Result)
}

// Optional wraps a type: T?
type Optional struct {
	Wrapped Type
}

func (t *Optional) Equal(other Type) bool {
	o, ok := other.(*Optional)
	return ok && t.Wrapped.Equal(o.Wrapped)
}

// TypeVariable is identified by id, totally ordered by id.
type TypeVariable struct {
	ID int
}

func (t *TypeVariable) Equal(other Type) bool {
	o, ok := other.(*TypeVariable)
	return ok && o.ID == t.ID
}

// NewVar creates a type variable with the given id.
func NewVar(id int) *TypeVariable { return &TypeVariable{ID: id} }

// TopAny is the universal supertype, used only as a join-result sentinel.
// It never binds to a type variable directly.
type TopAny struct{}

func (t TopAny) Equal(other Type) bool {
	_, ok := other.(TopAny)
	return ok
}

// Any is the canonical TopAny value.
var Any Type = TopAny{}
