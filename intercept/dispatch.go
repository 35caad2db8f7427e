package intercept

import (
	"github.com/objtap/object-intercept-go/object"
)

// The operation dispatcher: one strongly typed function per operation kind.
//
// Each function invokes the single corresponding default reflective operation
// on the target and derives the subject value for the observer event. The
// dispatcher is pure and stateless, performs no validation of its own, and
// never catches a default-operation failure; asymmetrically to the query
// kinds, the mutating kinds report the intended write payload as the subject
// rather than their boolean success flag.

func dispatchGetPrototype(target *object.Object) (result *object.Object, subject object.Value) {
	result = target.Prototype()

	return result, result
}

func dispatchSetPrototype(target, prototype *object.Object) (ok bool, subject object.Value) {
	// The subject is the requested prototype, not the success flag.
	return target.SetPrototype(prototype), prototype
}

func dispatchIsExtensible(target *object.Object) (result bool, subject object.Value) {
	result = target.Extensible()

	return result, result
}

func dispatchPreventExtensions(target *object.Object) (result bool, subject object.Value) {
	result = target.PreventExtensions()

	return result, result
}

func dispatchGetOwnPropertyDescriptor(target *object.Object, property object.Key) (desc object.Descriptor, found bool, subject object.Value) {
	desc, found = target.OwnPropertyDescriptor(property)
	if !found {
		return desc, false, nil
	}

	return desc, true, desc
}

func dispatchDefineProperty(target *object.Object, property object.Key, desc object.Descriptor) (ok bool, subject object.Value, err error) {
	ok, err = target.DefineProperty(property, desc)

	// The subject is the descriptor, not the success flag.
	return ok, desc, err
}

func dispatchHas(target *object.Object, property object.Key) (result bool, subject object.Value) {
	result = target.Has(property)

	return result, result
}

func dispatchGet(target *object.Object, property object.Key, receiver object.Value) (result object.Value, subject object.Value, err error) {
	result, err = target.Get(property, receiver)

	return result, result, err
}

func dispatchSet(target *object.Object, property object.Key, value, receiver object.Value) (ok bool, subject object.Value, err error) {
	ok, err = target.Set(property, value, receiver)

	// The subject is the value being set, not the success flag.
	return ok, value, err
}

func dispatchDeleteProperty(target *object.Object, property object.Key) (result bool, subject object.Value) {
	result = target.Delete(property)

	return result, result
}

func dispatchOwnKeys(target *object.Object) (result []object.Key, subject object.Value) {
	result = target.OwnKeys()

	return result, result
}

func dispatchApply(target *object.Object, this object.Value, args []object.Value) (result object.Value, subject object.Value, err error) {
	result, err = target.Call(this, args)

	return result, result, err
}

func dispatchConstruct(target *object.Object, args []object.Value, newTarget *object.Object) (result *object.Object, subject object.Value, err error) {
	result, err = target.Construct(args, newTarget)

	return result, result, err
}
