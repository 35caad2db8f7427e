package intercept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OperationKind_String_CoversClosedSet(t *testing.T) {
	expected := map[OperationKind]string{
		KindGetPrototype:             "getPrototype",
		KindSetPrototype:             "setPrototype",
		KindIsExtensible:             "isExtensible",
		KindPreventExtensions:        "preventExtensions",
		KindGetOwnPropertyDescriptor: "getOwnPropertyDescriptor",
		KindDefineProperty:           "defineProperty",
		KindHas:                      "has",
		KindGet:                      "get",
		KindSet:                      "set",
		KindDeleteProperty:           "deleteProperty",
		KindOwnKeys:                  "ownKeys",
		KindApply:                    "apply",
		KindConstruct:                "construct",
	}

	assert.Len(t, expected, 13)

	for kind, name := range expected {
		assert.Equal(t, name, kind.String())
		assert.NoError(t, kind.Validate())
	}
}

func Test_OperationKind_UnknownFailsLoudly(t *testing.T) {
	unknown := OperationKind(200)

	assert.Equal(t, "OperationKind(200)", unknown.String())
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownOperationKind)
	assert.ErrorIs(t, OperationKind(0).Validate(), ErrUnknownOperationKind)
}

func Test_OperationKind_PropertyScoped(t *testing.T) {
	scoped := []OperationKind{
		KindGetOwnPropertyDescriptor, KindDefineProperty, KindHas,
		KindGet, KindSet, KindDeleteProperty,
	}
	unscoped := []OperationKind{
		KindGetPrototype, KindSetPrototype, KindIsExtensible,
		KindPreventExtensions, KindOwnKeys, KindApply, KindConstruct,
	}

	for _, kind := range scoped {
		assert.True(t, kind.PropertyScoped(), kind.String())
	}

	for _, kind := range unscoped {
		assert.False(t, kind.PropertyScoped(), kind.String())
	}
}
