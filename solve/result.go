package solve

// result is the three-valued outcome of a single matching or
// simplification step. It never escapes this package: a failure aborts
// the current branch via checkpoint/restore, an ambiguous result leaves
// its entry inactive in the store, and only a final yes/no ("did this
// system produce at least one Solution") surfaces to callers.
type result int

const (
	solved result = iota
	ambiguous
	failure
)
