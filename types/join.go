package types

// Join computes the least common supertype of a and b in the conversion
// lattice: join(T,T)=T; join(T,T?)=T?; join(T?,T?)=join(T,T)?; otherwise
// Any (TopAny), meaning no useful upper bound exists.
func Join(a, b Type) Type {
	if a.Equal(b) {
		return a
	}
	ao, aIsOpt := a.(*Optional)
	bo, bIsOpt := b.(*Optional)
	switch {
	case aIsOpt && bIsOpt:
		inner := Join(ao.Wrapped, bo.Wrapped)
		if _, isTop := inner.(TopAny); isTop {
			return Any
		}
		return &Optional{Wrapped: inner}
	case aIsOpt && !bIsOpt:
		if ao.Wrapped.Equal(b) {
			return a
		}
		return Any
	case !aIsOpt && bIsOpt:
		if bo.Wrapped.Equal(a) {
			return b
		}
		return Any
	default:
		return Any
	}
}

// LookThroughAllOptionals returns the ordered chain [T0=t, T1, ..., Tn]
// where each Ti+1 is the wrapped type of Ti while Ti is Optional. The
// chain's length is the optional-nesting depth plus one.
func LookThroughAllOptionals(t Type) []Type {
	chain := []Type{t}
	for {
		opt, ok := chain[len(chain)-1].(*Optional)
		if !ok {
			return chain
		}
		chain = append(chain, opt.Wrapped)
	}
}
