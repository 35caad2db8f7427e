package object

// Descriptor describes one own property of an Object.
//
// A descriptor is either a data descriptor (Value plus Writable) or an
// accessor descriptor (Get and/or Set). Enumerable and Configurable apply to
// both forms. It should be constructed with the supplied factory methods:
//   - DataDescriptor
//   - AccessorDescriptor
type Descriptor struct {
	Value        Value
	Get          *Object // callable accessor, nil for data properties
	Set          *Object // callable accessor, nil for data properties
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// DataDescriptor is a factory method for a data Descriptor.
func DataDescriptor(value Value, writable, enumerable, configurable bool) Descriptor {
	return Descriptor{
		Value:        value,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	}
}

// AccessorDescriptor is a factory method for an accessor Descriptor.
// Either accessor may be nil; a nil Get reads as nil, a nil Set rejects writes.
func AccessorDescriptor(get, set *Object, enumerable, configurable bool) Descriptor {
	return Descriptor{
		Get:          get,
		Set:          set,
		Enumerable:   enumerable,
		Configurable: configurable,
	}
}

// IsAccessor reports whether the descriptor describes an accessor property.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// compatibleWith reports whether redefining a non-configurable property
// holding `existing` with the receiver descriptor is permitted: the only
// allowed change is the value of a writable data property.
func (d Descriptor) compatibleWith(existing Descriptor) bool {
	if d.Configurable || d.Enumerable != existing.Enumerable {
		return false
	}

	if d.IsAccessor() != existing.IsAccessor() {
		return false
	}

	if d.IsAccessor() {
		return d.Get == existing.Get && d.Set == existing.Set
	}

	if d.Writable && !existing.Writable {
		return false
	}

	if !existing.Writable && !SameValue(d.Value, existing.Value) {
		return false
	}

	return true
}
