package solve

// BindingKind classifies how tightly a PotentialBinding pins down a
// variable: Exact comes from a Bind constraint, Subtype/Supertype come
// from a Conversion constraint with the variable on the left or right.
type BindingKind int

const (
	Exact BindingKind = iota
	Subtype
	Supertype
)

func (k BindingKind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case Subtype:
		return "Subtype"
	case Supertype:
		return "Supertype"
	default:
		return "BindingKind(?)"
	}
}

// Options configures a Solve run.
type Options struct {
	// IsViableBinding filters candidate bindings before TypeVariableStep
	// tries them. nil (the default) accepts every candidate. The
	// reference engine this solver is modeled on always returns true
	// here too — this field exists as the single injection point a
	// future policy would hang off, not because one is implemented.
	IsViableBinding func(PotentialBinding) bool
}

func (o Options) viable(b PotentialBinding) bool {
	if o.IsViableBinding == nil {
		return true
	}
	return o.IsViableBinding(b)
}

// matchOptions governs a single matchTypes call's behavior when it
// encounters a free variable under a Conversion constraint.
type matchOptions struct {
	// generateWhenAmbiguous, when true, resolves the ambiguity by adding
	// a new, inactive constraint entry for later and reporting solved,
	// instead of reporting ambiguous. Used by decomposed sub-matches
	// (e.g. matchFunctionTypes's parameter/result matches) that have no
	// pre-existing worklist entry of their own to leave inactive.
	generateWhenAmbiguous bool
}

var decompositionOptions = matchOptions{generateWhenAmbiguous: true}
