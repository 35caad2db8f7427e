package intercept

import (
	"errors"
	"fmt"

	"github.com/objtap/object-intercept-go/object"
)

// Facade stands in for a wrapped target: it exposes the thirteen operation
// kinds with the target's default semantics plus an observation side-channel.
//
// A Facade holds no state beyond the immutable (target, label, observer)
// triple fixed at construction. Every operation is a complete, synchronous
// request/response cycle, so reentrant use — an observer operating on the
// same facade during notification — is safe by construction.
type Facade struct {
	target   *object.Object
	label    string
	observer Observer
}

// Wrap constructs a Facade over target. The label is opaque to the core and
// passed through verbatim into every event. Interception is lazy: nothing is
// copied or touched at construction time.
func Wrap(target *object.Object, label string, opts ...Option) (*Facade, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	facade := &Facade{
		target: target,
		label:  label,
	}

	for _, opt := range opts {
		if err := opt(facade); err != nil {
			return nil, err
		}
	}

	return facade, nil
}

// Target returns the wrapped target.
func (f *Facade) Target() *object.Object {
	return f.target
}

// Label returns the label this wrap was constructed with.
func (f *Facade) Label() string {
	return f.label
}

// notify delivers exactly one event for the operation that just ran. An
// observer error, or a panic raised by the observer, comes back joined with
// ErrObserverFailed; the already-computed operation result is not touched.
func (f *Facade) notify(kind OperationKind, property object.Key, subject object.Value) (err error) {
	if f.observer == nil {
		return nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Join(ErrObserverFailed, fmt.Errorf("observer panic: %v", recovered))
		}
	}()

	event := OperationEvent{
		Label:    f.label,
		Kind:     kind,
		Target:   f.target,
		Property: property,
		Subject:  subject,
	}

	if observerErr := f.observer(event); observerErr != nil {
		return errors.Join(ErrObserverFailed, observerErr)
	}

	return nil
}

// Prototype intercepts the getPrototype operation.
func (f *Facade) Prototype() (*object.Object, error) {
	result, subject := dispatchGetPrototype(f.target)

	return result, f.notify(KindGetPrototype, object.Key{}, subject)
}

// SetPrototype intercepts the setPrototype operation. The observer sees the
// requested prototype as the subject, not the success flag.
func (f *Facade) SetPrototype(prototype *object.Object) (bool, error) {
	ok, subject := dispatchSetPrototype(f.target, prototype)

	return ok, f.notify(KindSetPrototype, object.Key{}, subject)
}

// Extensible intercepts the isExtensible operation.
func (f *Facade) Extensible() (bool, error) {
	result, subject := dispatchIsExtensible(f.target)

	return result, f.notify(KindIsExtensible, object.Key{}, subject)
}

// PreventExtensions intercepts the preventExtensions operation.
func (f *Facade) PreventExtensions() (bool, error) {
	result, subject := dispatchPreventExtensions(f.target)

	return result, f.notify(KindPreventExtensions, object.Key{}, subject)
}

// OwnPropertyDescriptor intercepts the getOwnPropertyDescriptor operation.
func (f *Facade) OwnPropertyDescriptor(property object.Key) (object.Descriptor, bool, error) {
	desc, found, subject := dispatchGetOwnPropertyDescriptor(f.target, property)

	return desc, found, f.notify(KindGetOwnPropertyDescriptor, property, subject)
}

// DefineProperty intercepts the defineProperty operation. A rejection by the
// default operation propagates unchanged and unobserved; on success the
// observer sees the descriptor as the subject, not the success flag.
func (f *Facade) DefineProperty(property object.Key, desc object.Descriptor) (bool, error) {
	ok, subject, err := dispatchDefineProperty(f.target, property, desc)
	if err != nil {
		return ok, err
	}

	return ok, f.notify(KindDefineProperty, property, subject)
}

// Has intercepts the has operation.
func (f *Facade) Has(property object.Key) (bool, error) {
	result, subject := dispatchHas(f.target, property)

	return result, f.notify(KindHas, property, subject)
}

// Get intercepts the get operation with the target itself as receiver.
func (f *Facade) Get(property object.Key) (object.Value, error) {
	return f.GetWithReceiver(property, f.target)
}

// GetWithReceiver intercepts the get operation. Accessor getters run with
// receiver as this; a getter failure propagates unchanged and unobserved.
func (f *Facade) GetWithReceiver(property object.Key, receiver object.Value) (object.Value, error) {
	result, subject, err := dispatchGet(f.target, property, receiver)
	if err != nil {
		return result, err
	}

	return result, f.notify(KindGet, property, subject)
}

// Set intercepts the set operation with the target itself as receiver.
func (f *Facade) Set(property object.Key, value object.Value) (bool, error) {
	return f.SetWithReceiver(property, value, f.target)
}

// SetWithReceiver intercepts the set operation. The observer sees the value
// being written as the subject, not the success flag; a setter failure
// propagates unchanged and unobserved.
func (f *Facade) SetWithReceiver(property object.Key, value, receiver object.Value) (bool, error) {
	ok, subject, err := dispatchSet(f.target, property, value, receiver)
	if err != nil {
		return ok, err
	}

	return ok, f.notify(KindSet, property, subject)
}

// Delete intercepts the deleteProperty operation.
func (f *Facade) Delete(property object.Key) (bool, error) {
	result, subject := dispatchDeleteProperty(f.target, property)

	return result, f.notify(KindDeleteProperty, property, subject)
}

// OwnKeys intercepts the ownKeys operation. The subject preserves the
// target's own insertion order.
func (f *Facade) OwnKeys() ([]object.Key, error) {
	result, subject := dispatchOwnKeys(f.target)

	return result, f.notify(KindOwnKeys, object.Key{}, subject)
}

// Call intercepts the apply operation. A failure of the callable itself
// propagates unchanged and unobserved.
func (f *Facade) Call(this object.Value, args []object.Value) (object.Value, error) {
	result, subject, err := dispatchApply(f.target, this, args)
	if err != nil {
		return result, err
	}

	return result, f.notify(KindApply, object.Key{}, subject)
}

// Construct intercepts the construct operation. A nil newTarget defaults to
// the target; a constructor failure propagates unchanged and unobserved.
func (f *Facade) Construct(args []object.Value, newTarget *object.Object) (*object.Object, error) {
	result, subject, err := dispatchConstruct(f.target, args, newTarget)
	if err != nil {
		return result, err
	}

	return result, f.notify(KindConstruct, object.Key{}, subject)
}
