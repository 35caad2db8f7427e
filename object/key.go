package object

import "fmt"

// Value is an alias type for any, used for property values, receivers,
// call arguments and call results.
type Value = any

// Symbol is an identity-keyed property key with a purely diagnostic
// description. Two symbols are equal only if they are the same instance,
// regardless of description.
type Symbol struct {
	description string
}

// NewSymbol creates a fresh Symbol with the given description.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the diagnostic description the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

// String implements fmt.Stringer.
func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

type keyKind uint8

const (
	keyKindNone keyKind = iota
	keyKindString
	keyKindSymbol
)

// Key is a property key: either a string or a Symbol. Keys are comparable and
// usable as map keys. The zero Key is no key at all, which keeps the legal
// empty-string key distinguishable from "absent".
type Key struct {
	kind keyKind
	str  string
	sym  *Symbol
}

// StringKey builds a string-valued Key.
func StringKey(s string) Key {
	return Key{kind: keyKindString, str: s}
}

// SymbolKey builds a symbol-valued Key. A nil symbol yields the zero Key.
func SymbolKey(sym *Symbol) Key {
	if sym == nil {
		return Key{}
	}

	return Key{kind: keyKindSymbol, sym: sym}
}

// IsZero reports whether the Key is absent (the zero value).
func (k Key) IsZero() bool {
	return k.kind == keyKindNone
}

// IsSymbol reports whether the Key holds a Symbol.
func (k Key) IsSymbol() bool {
	return k.kind == keyKindSymbol
}

// StringValue returns the string the Key holds and true, or "" and false for
// symbol and zero keys.
func (k Key) StringValue() (string, bool) {
	if k.kind != keyKindString {
		return "", false
	}

	return k.str, true
}

// SymbolValue returns the Symbol the Key holds, or nil for string and zero keys.
func (k Key) SymbolValue() *Symbol {
	return k.sym
}

// String implements fmt.Stringer for diagnostics and log output.
func (k Key) String() string {
	switch k.kind {
	case keyKindString:
		return k.str
	case keyKindSymbol:
		return k.sym.String()
	default:
		return fmt.Sprintf("Key(%d)", k.kind)
	}
}
