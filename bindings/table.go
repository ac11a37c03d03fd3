// Package bindings implements the union-find-like substitution map over
// type variables described by the solver: each variable is Free, Fixed to
// a concrete type, or Transferred to another variable's equivalence class.
package bindings

import (
	"github.com/benbjohnson/immutable"

	"github.com/kit-lang/typecheck/types"
)

type bindingKind int

const (
	transferKind bindingKind = iota
	fixedKind
)

type binding struct {
	kind       bindingKind
	fixedType  types.Type
	transferTo int
}

// Table is a persistent (structural-sharing) substitution map. The zero
// value is not usable; construct with New.
type Table struct {
	m *immutable.SortedMap
}

// New returns an empty bindings table: every variable is Free.
func New() Table {
	return Table{m: immutable.NewSortedMap(nil)}
}

func (t Table) lookup(id int) (binding, bool) {
	if t.m == nil {
		return binding{}, false
	}
	v, ok := t.m.Get(id)
	if !ok {
		return binding{}, false
	}
	return v.(binding), true
}

// Representative follows v's Transfer link once, per the one-hop
// indirection invariant maintained by Merge. A variable absent from the
// table, or bound to Fixed, is its own representative.
func (t Table) Representative(v int) int {
	b, ok := t.lookup(v)
	if ok && b.kind == transferKind {
		return b.transferTo
	}
	return v
}

// IsFree reports whether v's representative is unbound.
func (t Table) IsFree(v int) bool {
	rep := t.Representative(v)
	_, ok := t.lookup(rep)
	return !ok
}

// FixedType chases through Transfer links until it reaches a Fixed
// binding (returning its type) or a Free variable (returning false).
func (t Table) FixedType(v int) (types.Type, bool) {
	id := v
	// The table never holds more entries than variables it has seen, so
	// this bounds the chase even if the one-hop invariant were violated.
	limit := 1
	if t.m != nil {
		limit = t.m.Len() + 1
	}
	for i := 0; i < limit; i++ {
		b, ok := t.lookup(id)
		if !ok {
			return nil, false
		}
		switch b.kind {
		case fixedKind:
			return b.fixedType, true
		case transferKind:
			id = b.transferTo
		}
	}
	return nil, false
}

// Merge unifies the equivalence classes of two representative, non-Fixed
// variables. The smaller-id variable becomes (or remains) the
// representative; every existing Transfer entry pointing at the
// displaced variable is re-pointed at the new representative, preserving
// the at-most-one-hop Transfer invariant.
func (t Table) Merge(v1, v2 int) Table {
	if v1 == v2 {
		return t
	}
	small, big := v1, v2
	if big < small {
		small, big = big, small
	}
	m := t.m
	if t.m != nil {
		iter := t.m.Iterator()
		for !iter.Done() {
			k, v := iter.Next()
			b := v.(binding)
			if b.kind == transferKind && b.transferTo == big {
				m = m.Set(k, binding{kind: transferKind, transferTo: small})
			}
		}
	}
	m = m.Set(big, binding{kind: transferKind, transferTo: small})
	return Table{m: m}
}

// Assign binds the representative variable v to the concrete (non-variable)
// type T. Preconditions: v is a representative and currently Free, and T
// does not contain v (the occurs check — enforced by callers in solve).
func (t Table) Assign(v int, typ types.Type) Table {
	m := t.m
	if m == nil {
		m = immutable.NewSortedMap(nil)
	}
	return Table{m: m.Set(v, binding{kind: fixedKind, fixedType: typ})}
}

// Simplify maps every TypeVariable reachable inside typ to its fixed type
// or representative, recursively. Stops descending through a variable
// once its representative is still Free.
func (t Table) Simplify(typ types.Type) types.Type {
	switch tt := typ.(type) {
	case *types.TypeVariable:
		rep := t.Representative(tt.ID)
		if fixed, ok := t.FixedType(rep); ok {
			return t.Simplify(fixed)
		}
		if rep != tt.ID {
			return types.NewVar(rep)
		}
		return tt
	case *types.Function:
		return &types.Function{Parameter: t.Simplify(tt.Parameter), Result: t.Simplify(tt.Result)}
	case *types.Optional:
		return &types.Optional{Wrapped: t.Simplify(tt.Wrapped)}
	default:
		return typ
	}
}
