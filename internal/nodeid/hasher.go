// Package nodeid provides an immutable.Hasher for keying persistent maps
// by AST node identity (pointer address) rather than by value, since AST
// nodes are compared by identity throughout the solver.
package nodeid

import "reflect"

// Hasher hashes and compares values by pointer identity. It satisfies
// github.com/benbjohnson/immutable's Hasher interface without requiring
// node kinds to implement comparable/hashable interfaces themselves.
type Hasher struct{}

// Hash returns a hash of value's pointer address.
func (Hasher) Hash(value interface{}) uint32 {
	ptr := reflect.ValueOf(value).Pointer()
	// fnv-1a over the 8 address bytes, folded into 32 bits.
	h := uint64(14695981039346656037)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(ptr >> (8 * i)))
		h *= 1099511628211
	}
	return uint32(h) ^ uint32(h>>32)
}

// Equal reports whether a and b are the same pointer.
func (Hasher) Equal(a, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
