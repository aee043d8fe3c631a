package typesystem

// Value is the interface for all runtime values.
//
// Values are mutable: Assign replaces the receiver's contents with the
// other value's. Aggregates share the other value's children by reference;
// use Clone first when an independent copy is needed.
type Value interface {
	Type() ValueType
	String() string
	// InnerString renders the value as it appears nested inside another aggregate.
	InnerString() string
	Equals(other Value) bool
	Assign(other Value) error
	Clone() Value
}

// describe renders v for error messages.
func describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// sameType reports whether a and b are the same type descriptor.
func sameType(a, b Type) bool {
	return a != nil && b != nil && a.ID() == b.ID()
}
