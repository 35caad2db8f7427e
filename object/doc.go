// Package object implements the dynamic object model the interception layer
// operates on.
//
// An Object is a property table with insertion-ordered keys, an optional
// prototype link, an extensibility flag, and optional call/construct behavior.
// Property keys are either strings or identity-keyed symbols, and properties
// are described by data or accessor descriptors.
//
// The package also defines the default reflective operations, one per
// intercepted operation kind. These are the semantics an unwrapped object
// exhibits; the intercept package forwards to them and never reimplements
// them.
//
// Common usage pattern:
//
//	target := object.New()
//	_, _ = target.DefineProperty(
//		object.StringKey("answer"),
//		object.DataDescriptor(42, true, true, true),
//	)
//
//	value, err := target.Get(object.StringKey("answer"), target)
//	if err != nil {
//		// handle error from an accessor getter
//	}
package object
