package constraint

import (
	"errors"

	"github.com/benbjohnson/immutable"

	"github.com/kit-lang/typecheck/ast"
	"github.com/kit-lang/typecheck/internal/nodeid"
	"github.com/kit-lang/typecheck/types"
)

// ErrEmptyDisjunction is returned by AddDisjunction when given zero
// alternatives: a disjunction over nothing can never be satisfied.
var ErrEmptyDisjunction = errors.New("constraint: disjunction over zero alternatives")

// Entry is one item on the constraint worklist: a constraint, a stable
// identity (for removal, independent of the constraint's structure), and
// the active/inactive bit. Entry is a value type so that storing one in a
// persistent list gives every Store snapshot its own independent copy of
// the bit — flipping it in a later Store never mutates an earlier one.
type Entry struct {
	id         int
	Constraint Constraint
	active     bool
}

// ID is this entry's stable identity, used to find it again after the
// underlying list has been rebuilt by another mutation.
func (e Entry) ID() int { return e.id }

// IsActive reports the entry's worklist bit.
func (e Entry) IsActive() bool { return e.active }

// Store holds the constraint system's current worklist, the overload
// selections chosen so far, the conversion relations proved so far, and
// the failure marker, all behind persistent structures so that a Store
// held by value is already an independent checkpoint.
type Store struct {
	nextID     int
	entries    *immutable.List
	selections *immutable.Map
	relations  *immutable.List
	failed     Constraint
}

// New returns an empty constraint store.
func New() Store {
	return Store{
		entries:    immutable.NewList(),
		selections: immutable.NewMap(nodeid.Hasher{}),
		relations:  immutable.NewList(),
	}
}

// Add appends a new entry for c with the given active bit and returns the
// new store together with the entry's id.
func (s Store) Add(c Constraint, active bool) (Store, int) {
	id := s.nextID
	s2 := s
	s2.nextID = id + 1
	s2.entries = s.entries.Append(Entry{id: id, Constraint: c, active: active})
	return s2, id
}

// Remove deletes the entry with the given id, if present.
func (s Store) Remove(id int) Store {
	n := s.entries.Len()
	next := immutable.NewList()
	for i := 0; i < n; i++ {
		e := s.entries.Get(i).(Entry)
		if e.id == id {
			continue
		}
		next = next.Append(e)
	}
	s2 := s
	s2.entries = next
	return s2
}

// SetActive replaces the entry with the given id with a copy whose active
// bit is set to active. A no-op if the id is absent.
func (s Store) SetActive(id int, active bool) Store {
	n := s.entries.Len()
	next := immutable.NewList()
	for i := 0; i < n; i++ {
		e := s.entries.Get(i).(Entry)
		if e.id == id {
			e.active = active
		}
		next = next.Append(e)
	}
	s2 := s
	s2.entries = next
	return s2
}

// Entries returns every entry currently in the store, in insertion order.
func (s Store) Entries() []Entry {
	n := s.entries.Len()
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = s.entries.Get(i).(Entry)
	}
	return out
}

// FindFirstActive returns the first active entry in insertion order.
func (s Store) FindFirstActive() (Entry, bool) {
	n := s.entries.Len()
	for i := 0; i < n; i++ {
		e := s.entries.Get(i).(Entry)
		if e.active {
			return e, true
		}
	}
	return Entry{}, false
}

// FindFirstDisjunction returns the first entry holding a
// DisjunctionConstraint, regardless of its active bit — disjunctions are
// discovered by direct scan, not driven through the active worklist.
func (s Store) FindFirstDisjunction() (Entry, bool) {
	n := s.entries.Len()
	for i := 0; i < n; i++ {
		e := s.entries.Get(i).(Entry)
		if _, ok := e.Constraint.(*DisjunctionConstraint); ok {
			return e, true
		}
	}
	return Entry{}, false
}

// AddDisjunction adds a choice point over alternatives. Zero alternatives
// is an error (ErrEmptyDisjunction); exactly one is added directly rather
// than wrapped, since a singleton disjunction is just that constraint;
// more than one is wrapped in a DisjunctionConstraint, inactive until the
// solver chooses to explore it.
func (s Store) AddDisjunction(alternatives []Constraint) (Store, error) {
	switch len(alternatives) {
	case 0:
		return s, ErrEmptyDisjunction
	case 1:
		s2, _ := s.Add(alternatives[0], true)
		return s2, nil
	default:
		// A multi-way disjunction is found by ComponentStep's direct scan,
		// not by the active worklist, so it is added inactive like any
		// other decomposition result.
		s2, _ := s.Add(NewDisjunction(alternatives), false)
		return s2, nil
	}
}

// ResolveOverload binds choice's declaration interface type to boundType
// (via a Bind constraint appended to the worklist, active immediately)
// and records the selection at location, so solution application can
// later report which declaration was chosen at that reference site.
func (s Store) ResolveOverload(boundType types.Type, choice OverloadChoice, location ast.Node) Store {
	opened := choice.Decl.InterfaceType()
	s2, _ := s.Add(NewBind(boundType, opened), true)
	s2.selections = s2.selections.Set(location, OverloadSelection{Choice: choice, OpenedType: opened})
	return s2
}

// Selection looks up the overload chosen at location, if any.
func (s Store) Selection(location ast.Node) (OverloadSelection, bool) {
	v, ok := s.selections.Get(location)
	if !ok {
		return OverloadSelection{}, false
	}
	return v.(OverloadSelection), true
}

// Selections returns every recorded overload selection.
func (s Store) Selections() map[ast.Node]OverloadSelection {
	out := make(map[ast.Node]OverloadSelection, s.selections.Len())
	itr := s.selections.Iterator()
	for !itr.Done() {
		k, v := itr.Next()
		out[k.(ast.Node)] = v.(OverloadSelection)
	}
	return out
}

// Relations returns every conversion relation proved so far, in the order
// they were recorded.
func (s Store) Relations() []TypeConversionRelation {
	n := s.relations.Len()
	out := make([]TypeConversionRelation, n)
	for i := 0; i < n; i++ {
		out[i] = s.relations.Get(i).(TypeConversionRelation)
	}
	return out
}

// AddRelation records that conv was used to relate left to right.
func (s Store) AddRelation(rel TypeConversionRelation) Store {
	s2 := s
	s2.relations = s.relations.Append(rel)
	return s2
}

// Fail marks the store as failed due to c. A store may only fail once;
// subsequent calls are no-ops so the first failure is preserved.
func (s Store) Fail(c Constraint) Store {
	if s.failed != nil {
		return s
	}
	s2 := s
	s2.failed = c
	return s2
}

// IsFailed reports whether the store has been marked failed.
func (s Store) IsFailed() bool { return s.failed != nil }

// FailedConstraint returns the constraint that caused failure, if any.
func (s Store) FailedConstraint() (Constraint, bool) {
	return s.failed, s.failed != nil
}
