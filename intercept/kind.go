package intercept

import "fmt"

// OperationKind enumerates the intercepted operation categories. The set is
// closed: the dispatcher matches exhaustively over it, so adding or removing
// a kind is a compile-time-checked change.
type OperationKind uint8

const (
	KindGetPrototype OperationKind = iota + 1
	KindSetPrototype
	KindIsExtensible
	KindPreventExtensions
	KindGetOwnPropertyDescriptor
	KindDefineProperty
	KindHas
	KindGet
	KindSet
	KindDeleteProperty
	KindOwnKeys
	KindApply
	KindConstruct
)

// String implements fmt.Stringer using the conventional camelCase operation
// names. Out-of-range kinds format loudly instead of masquerading as a known
// operation.
func (k OperationKind) String() string {
	switch k {
	case KindGetPrototype:
		return "getPrototype"
	case KindSetPrototype:
		return "setPrototype"
	case KindIsExtensible:
		return "isExtensible"
	case KindPreventExtensions:
		return "preventExtensions"
	case KindGetOwnPropertyDescriptor:
		return "getOwnPropertyDescriptor"
	case KindDefineProperty:
		return "defineProperty"
	case KindHas:
		return "has"
	case KindGet:
		return "get"
	case KindSet:
		return "set"
	case KindDeleteProperty:
		return "deleteProperty"
	case KindOwnKeys:
		return "ownKeys"
	case KindApply:
		return "apply"
	case KindConstruct:
		return "construct"
	default:
		return fmt.Sprintf("OperationKind(%d)", uint8(k))
	}
}

// PropertyScoped reports whether events of this kind carry a property key.
func (k OperationKind) PropertyScoped() bool {
	switch k {
	case KindGetOwnPropertyDescriptor, KindDefineProperty, KindHas, KindGet, KindSet, KindDeleteProperty:
		return true
	default:
		return false
	}
}

// Validate returns ErrUnknownOperationKind for values outside the closed set.
func (k OperationKind) Validate() error {
	if k < KindGetPrototype || k > KindConstruct {
		return ErrUnknownOperationKind
	}

	return nil
}
