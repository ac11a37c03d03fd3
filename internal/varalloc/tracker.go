// Package varalloc allocates fresh type-variable ids during constraint
// generation. Adapted from the pooled block-allocation tracker used by the
// reference inference engine for its own fresh-variable bookkeeping.
package varalloc

import "github.com/kit-lang/typecheck/types"

// Tracker hands out type variables with strictly increasing ids.
type Tracker struct {
	nextID int
}

// New returns a Tracker starting at id 0.
func New() *Tracker { return &Tracker{} }

// NewAt returns a Tracker whose first allocation has the given id.
func NewAt(nextID int) *Tracker { return &Tracker{nextID: nextID} }

// Fresh allocates and returns a new, never-before-issued type variable.
func (t *Tracker) Fresh() *types.TypeVariable {
	v := types.NewVar(t.nextID)
	t.nextID++
	return v
}

// NextID reports the id the next Fresh call will assign.
func (t *Tracker) NextID() int { return t.nextID }

// Reset rewinds the tracker to issue ids starting at nextID again.
func (t *Tracker) Reset(nextID int) { t.nextID = nextID }
