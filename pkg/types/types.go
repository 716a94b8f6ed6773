package types

// Type is the interface implemented by all type representations: primitives,
// type definitions under construction or finalized, generic parameter
// placeholders, and closed generic instantiations.
type Type interface {
	// String returns a string representation of the type, suitable for debugging or printing.
	String() string
	// Equals checks if this type is structurally equivalent to another type.
	Equals(other Type) bool

	// typeNode() is a marker method to ensure only types defined in this package
	// can be assigned to the Type interface. This keeps the type system closed:
	// the resolution and substitution switches below enumerate every case.
	typeNode()
}

// typeListEquals compares two parameter/argument sequences element-wise.
func typeListEquals(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
