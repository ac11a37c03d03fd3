package types

// ContainedVars returns every TypeVariable reachable inside t, in
// discovery order (duplicates possible; callers that need a set should
// dedupe by id).
func ContainedVars(t Type) []*TypeVariable {
	var out []*TypeVariable
	collectVars(t, &out)
	return out
}

func collectVars(t Type, out *[]*TypeVariable) {
	switch t := t.(type) {
	case *TypeVariable:
		*out = append(*out, t)
	case *Function:
		collectVars(t.Parameter, out)
		collectVars(t.Result, out)
	case *Optional:
		collectVars(t.Wrapped, out)
	case *Primitive, TopAny:
		// no contained variables
	}
}

// ContainsVar reports whether v is reachable inside t. Used by the occurs
// check before assigning Fixed(T) to v.
func ContainsVar(t Type, v *TypeVariable) bool {
	switch t := t.(type) {
	case *TypeVariable:
		return t.ID == v.ID
	case *Function:
		return ContainsVar(t.Parameter, v) || ContainsVar(t.Result, v)
	case *Optional:
		return ContainsVar(t.Wrapped, v)
	default:
		return false
	}
}
