package object

import (
	"errors"
	"reflect"
)

var (
	// ErrNotExtensible is returned when a new property is defined on a
	// non-extensible object.
	ErrNotExtensible = errors.New("object is not extensible")

	// ErrNonConfigurable is returned when a non-configurable property is
	// redefined incompatibly.
	ErrNonConfigurable = errors.New("property is not configurable")

	// ErrNotCallable is returned when a non-callable object is invoked.
	ErrNotCallable = errors.New("object is not callable")

	// ErrNotConstructible is returned when a non-constructible object is used
	// as a constructor.
	ErrNotConstructible = errors.New("object is not constructible")
)

// CallFunc is the behavior of a callable Object.
type CallFunc func(this Value, args []Value) (Value, error)

// ConstructFunc is the behavior of a constructible Object. newTarget is the
// object the construction was requested through, never nil.
type ConstructFunc func(args []Value, newTarget *Object) (*Object, error)

// Object is a dynamic object: an insertion-ordered property table with a
// prototype link, an extensibility flag, and optional call/construct behavior.
//
// Objects are not safe for concurrent mutation; the model inherits whatever
// discipline the caller applies, the same as any plain in-memory structure.
type Object struct {
	properties  map[Key]Descriptor
	keys        []Key
	prototype   *Object
	extensible  bool
	callFn      CallFunc
	constructFn ConstructFunc
}

// New creates an empty, extensible Object with no prototype.
func New() *Object {
	return &Object{
		properties: make(map[Key]Descriptor),
		extensible: true,
	}
}

// NewWithPrototype creates an empty, extensible Object linked to the given
// prototype.
func NewWithPrototype(prototype *Object) *Object {
	o := New()
	o.prototype = prototype

	return o
}

// NewCallable creates an Object that can be invoked through Call.
func NewCallable(fn CallFunc) *Object {
	o := New()
	o.callFn = fn

	return o
}

// NewConstructor creates an Object that can be used with Construct.
func NewConstructor(fn ConstructFunc) *Object {
	o := New()
	o.constructFn = fn

	return o
}

// IsCallable reports whether Call can succeed.
func (o *Object) IsCallable() bool {
	return o.callFn != nil
}

// IsConstructible reports whether Construct can succeed.
func (o *Object) IsConstructible() bool {
	return o.constructFn != nil
}

// Prototype is the default getPrototype operation: the current prototype,
// or nil at the end of the chain.
func (o *Object) Prototype() *Object {
	return o.prototype
}

// SetPrototype is the default setPrototype operation. It reports false when
// the object is non-extensible and the prototype would actually change, or
// when the new prototype would introduce a cycle.
func (o *Object) SetPrototype(prototype *Object) bool {
	if prototype == o.prototype {
		return true
	}

	if !o.extensible {
		return false
	}

	for p := prototype; p != nil; p = p.prototype {
		if p == o {
			return false
		}
	}

	o.prototype = prototype

	return true
}

// Extensible is the default isExtensible operation.
func (o *Object) Extensible() bool {
	return o.extensible
}

// PreventExtensions is the default preventExtensions operation. It always
// succeeds and is irreversible.
func (o *Object) PreventExtensions() bool {
	o.extensible = false

	return true
}

// OwnPropertyDescriptor is the default getOwnPropertyDescriptor operation.
// It consults own properties only, never the prototype chain.
func (o *Object) OwnPropertyDescriptor(key Key) (Descriptor, bool) {
	desc, ok := o.properties[key]

	return desc, ok
}

// DefineProperty is the default defineProperty operation.
//
// Creating a property on a non-extensible object fails with ErrNotExtensible.
// Redefining a non-configurable property fails with ErrNonConfigurable unless
// the only change is the value of a writable data property.
func (o *Object) DefineProperty(key Key, desc Descriptor) (bool, error) {
	existing, exists := o.properties[key]
	if !exists {
		if !o.extensible {
			return false, ErrNotExtensible
		}

		o.keys = append(o.keys, key)
		o.properties[key] = desc

		return true, nil
	}

	if !existing.Configurable && !desc.compatibleWith(existing) {
		return false, ErrNonConfigurable
	}

	o.properties[key] = desc

	return true, nil
}

// Has is the default has operation: own properties plus the prototype chain.
func (o *Object) Has(key Key) bool {
	for target := o; target != nil; target = target.prototype {
		if _, ok := target.properties[key]; ok {
			return true
		}
	}

	return false
}

// Get is the default get operation. It walks the prototype chain and invokes
// accessor getters with receiver as this. Absent properties and getter-less
// accessors read as nil. An error can only originate from a getter.
func (o *Object) Get(key Key, receiver Value) (Value, error) {
	for target := o; target != nil; target = target.prototype {
		desc, ok := target.properties[key]
		if !ok {
			continue
		}

		if !desc.IsAccessor() {
			return desc.Value, nil
		}

		if desc.Get == nil {
			return nil, nil
		}

		return desc.Get.Call(receiver, nil)
	}

	return nil, nil
}

// Set is the default set operation.
//
// A setter found on the receiver or up its prototype chain is invoked with
// receiver as this. A non-writable data property or a setter-less accessor
// rejects the write with (false, nil). Otherwise the property is created or
// updated on the receiver itself, subject to extensibility. An error can only
// originate from a setter.
func (o *Object) Set(key Key, value Value, receiver Value) (bool, error) {
	for target := o; target != nil; target = target.prototype {
		desc, ok := target.properties[key]
		if !ok {
			continue
		}

		if desc.IsAccessor() {
			if desc.Set == nil {
				return false, nil
			}

			if _, err := desc.Set.Call(receiver, []Value{value}); err != nil {
				return false, err
			}

			return true, nil
		}

		if !desc.Writable {
			return false, nil
		}

		break
	}

	return o.createOrUpdateOwn(key, value, receiver)
}

// createOrUpdateOwn places a data property on the receiver, falling back to
// the operation target when the receiver is not an Object.
func (o *Object) createOrUpdateOwn(key Key, value Value, receiver Value) (bool, error) {
	holder := o
	if recv, ok := receiver.(*Object); ok && recv != nil {
		holder = recv
	}

	existing, exists := holder.properties[key]
	if exists {
		if existing.IsAccessor() || !existing.Writable {
			return false, nil
		}

		existing.Value = value
		holder.properties[key] = existing

		return true, nil
	}

	if !holder.extensible {
		return false, nil
	}

	holder.keys = append(holder.keys, key)
	holder.properties[key] = DataDescriptor(value, true, true, true)

	return true, nil
}

// Delete is the default deleteProperty operation. Deleting an absent property
// succeeds; deleting a non-configurable one reports false.
func (o *Object) Delete(key Key) bool {
	desc, ok := o.properties[key]
	if !ok {
		return true
	}

	if !desc.Configurable {
		return false
	}

	delete(o.properties, key)

	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}

	return true
}

// OwnKeys is the default ownKeys operation: all own keys, strings and symbols,
// in insertion order. The returned slice is a copy.
func (o *Object) OwnKeys() []Key {
	keys := make([]Key, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Call is the default apply operation.
func (o *Object) Call(this Value, args []Value) (Value, error) {
	if o.callFn == nil {
		return nil, ErrNotCallable
	}

	return o.callFn(this, args)
}

// Construct is the default construct operation. A nil newTarget defaults to
// the object itself.
func (o *Object) Construct(args []Value, newTarget *Object) (*Object, error) {
	if o.constructFn == nil {
		return nil, ErrNotConstructible
	}

	if newTarget == nil {
		newTarget = o
	}

	return o.constructFn(args, newTarget)
}

// SameValue compares two Values without panicking on uncomparable types:
// uncomparable values are never equal to anything.
func SameValue(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}

	return a == b
}
