package solve

import (
	"sort"

	"github.com/kit-lang/typecheck/constraint"
	"github.com/kit-lang/typecheck/types"
)

// PotentialBinding is one candidate concrete type for a free variable,
// inferred from a single constraint that mentions it.
type PotentialBinding struct {
	Kind BindingKind
	Type types.Type
}

// PotentialBindings collects every candidate binding inferred for one
// free representative variable.
type PotentialBindings struct {
	Var      int
	Bindings []PotentialBinding
}

// computePotentialBindings scans every remaining constraint and groups
// the bindings it implies by the representative variable they mention.
// Supertype bindings (from Conversion(concrete, v)) are coalesced via
// types.Join wherever that join is informative.
func computePotentialBindings(sys System) []PotentialBindings {
	acc := map[int][]PotentialBinding{}
	order := []int{}
	seen := map[int]bool{}

	record := func(rep int, b PotentialBinding) {
		if !seen[rep] {
			seen[rep] = true
			order = append(order, rep)
		}
		acc[rep] = append(acc[rep], b)
	}

	for _, e := range sys.Store.Entries() {
		bc, ok := e.Constraint.(*constraint.BindOrConversion)
		if !ok {
			continue
		}
		l := sys.Bindings.Simplify(bc.Left)
		r := sys.Bindings.Simplify(bc.Right)
		lv, lIsVar := l.(*types.TypeVariable)
		rv, rIsVar := r.(*types.TypeVariable)

		switch {
		case lIsVar && !rIsVar:
			rep := sys.Bindings.Representative(lv.ID)
			if bc.Kind == constraint.Bind {
				record(rep, PotentialBinding{Kind: Exact, Type: r})
			} else {
				record(rep, PotentialBinding{Kind: Subtype, Type: r})
			}
		case rIsVar && !lIsVar:
			rep := sys.Bindings.Representative(rv.ID)
			if bc.Kind == constraint.Bind {
				record(rep, PotentialBinding{Kind: Exact, Type: l})
			} else {
				record(rep, PotentialBinding{Kind: Supertype, Type: l})
			}
		}
	}

	sort.Ints(order)
	out := make([]PotentialBindings, 0, len(order))
	for _, rep := range order {
		out = append(out, PotentialBindings{Var: rep, Bindings: coalesceSupertypes(acc[rep])})
	}
	return out
}

// coalesceSupertypes merges supertype bindings pairwise via types.Join
// whenever the join is informative (not Any, and not an optional wrapping
// Any), leaving every other binding untouched.
func coalesceSupertypes(bs []PotentialBinding) []PotentialBinding {
	var supers []types.Type
	var rest []PotentialBinding
	for _, b := range bs {
		if b.Kind == Supertype {
			supers = append(supers, b.Type)
		} else {
			rest = append(rest, b)
		}
	}

	for {
		merged := false
		for i := 0; i < len(supers) && !merged; i++ {
			for j := i + 1; j < len(supers); j++ {
				joined := types.Join(supers[i], supers[j])
				if uselessJoin(joined) {
					continue
				}
				next := make([]types.Type, 0, len(supers)-1)
				next = append(next, joined)
				for k, t := range supers {
					if k != i && k != j {
						next = append(next, t)
					}
				}
				supers = next
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}

	for _, t := range supers {
		rest = append(rest, PotentialBinding{Kind: Supertype, Type: t})
	}
	return rest
}

func uselessJoin(t types.Type) bool {
	if _, ok := t.(types.TopAny); ok {
		return true
	}
	if opt, ok := t.(*types.Optional); ok {
		if _, ok2 := opt.Wrapped.(types.TopAny); ok2 {
			return true
		}
	}
	return false
}

// bestPotentialBindings picks the PotentialBindings with the narrowest
// determined set — an Exact binding beats any Subtype/Supertype-only
// set, and within a category fewer candidates beat more — after
// dropping candidates opts.IsViableBinding rejects. Ties are broken by
// the smaller representative id, for determinism.
func bestPotentialBindings(sys System, opts Options) (PotentialBindings, bool) {
	all := computePotentialBindings(sys)

	var best PotentialBindings
	haveBest := false
	for _, pb := range all {
		filtered := pb.Bindings[:0:0]
		for _, b := range pb.Bindings {
			if opts.viable(b) {
				filtered = append(filtered, b)
			}
		}
		if len(filtered) == 0 {
			continue
		}
		pb.Bindings = filtered
		if !haveBest || rankLess(pb, best) {
			best = pb
			haveBest = true
		}
	}
	return best, haveBest
}

// rankCategory reports 0 if pb contains an Exact binding, else 1: an
// Exact-containing set always outranks a Subtype/Supertype-only one.
func rankCategory(pb PotentialBindings) int {
	for _, b := range pb.Bindings {
		if b.Kind == Exact {
			return 0
		}
	}
	return 1
}

// rankLess reports whether a's binding set is narrower than b's: lower
// category first, then fewer remaining candidates.
func rankLess(a, b PotentialBindings) bool {
	ca, cb := rankCategory(a), rankCategory(b)
	if ca != cb {
		return ca < cb
	}
	return len(a.Bindings) < len(b.Bindings)
}
