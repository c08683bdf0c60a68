// Package types models the static types the backend sees: the primitive
// value kinds, the built-in reference types, aliases, and the two array
// representations (the language-level Array[T] and the runtime-level
// native array).
package types

import "fmt"

// Kind identifies the shape of a type.
type Kind uint8

const (
	// KindError marks a type produced while recovering from a type error.
	KindError Kind = iota

	// Value kinds
	KindBool
	KindByte
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindUnit

	// Reference kinds
	KindString
	KindAny
	KindObject
	KindClass

	// Array kinds
	KindArray       // language-level Array[T]
	KindNativeArray // runtime array representation

	// KindAlias wraps another type under a different name.
	KindAlias
)

// String returns a human-readable name for a kind.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindBool:
		return "Boolean"
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindChar:
		return "Char"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindUnit:
		return "Unit"
	case KindString:
		return "String"
	case KindAny:
		return "Any"
	case KindObject:
		return "Object"
	case KindClass:
		return "class"
	case KindArray:
		return "Array"
	case KindNativeArray:
		return "native array"
	case KindAlias:
		return "alias"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Type is an immutable type descriptor. Types are compared by pointer for
// the shared singletons and structurally via Kind/Elem otherwise.
type Type struct {
	kind  Kind
	name  string // class and alias names
	elem  *Type  // array element
	under *Type  // alias target
}

// Shared singletons for the built-in types. Callers must treat these as
// immutable.
var (
	Err    = &Type{kind: KindError}
	Bool   = &Type{kind: KindBool}
	Byte   = &Type{kind: KindByte}
	Short  = &Type{kind: KindShort}
	Char   = &Type{kind: KindChar}
	Int    = &Type{kind: KindInt}
	Long   = &Type{kind: KindLong}
	Float  = &Type{kind: KindFloat}
	Double = &Type{kind: KindDouble}
	Unit   = &Type{kind: KindUnit}
	String = &Type{kind: KindString}
	Any    = &Type{kind: KindAny}
	Object = &Type{kind: KindObject}
)

// ArrayOf returns the language-level array type with the given element.
func ArrayOf(elem *Type) *Type {
	return &Type{kind: KindArray, elem: elem}
}

// NativeArrayOf returns the runtime array representation with the given
// element. Classification treats it exactly like ArrayOf.
func NativeArrayOf(elem *Type) *Type {
	return &Type{kind: KindNativeArray, elem: elem}
}

// ClassOf returns a named reference type.
func ClassOf(name string) *Type {
	return &Type{kind: KindClass, name: name}
}

// AliasOf returns a named alias for another type.
func AliasOf(name string, under *Type) *Type {
	return &Type{kind: KindAlias, name: name, under: under}
}

// Kind reports the kind of the type.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the declared name for class and alias types, and the kind
// name otherwise.
func (t *Type) Name() string {
	if t.name != "" {
		return t.name
	}
	return t.kind.String()
}

// Elem returns the array element type, or nil for non-array types.
func (t *Type) Elem() *Type { return t.elem }

// Dealias strips alias layers until a non-alias type is reached.
func (t *Type) Dealias() *Type {
	for t.kind == KindAlias {
		t = t.under
	}
	return t
}

// ElemType strips alias layers and resolves the receiver to an array
// shape, covering both the language-level array and the runtime
// representation. The second result is false when the type does not
// reduce to an array.
func (t *Type) ElemType() (*Type, bool) {
	u := t.Dealias()
	if u.kind == KindArray || u.kind == KindNativeArray {
		return u.elem, true
	}
	return nil, false
}

// IsString reports whether the type is the string type, seen through any
// alias layers.
func (t *Type) IsString() bool {
	return t.Dealias().kind == KindString
}

// IsError reports whether the type is the error marker.
func (t *Type) IsError() bool { return t.kind == KindError }

// IsNumeric reports whether the type is one of the seven numeric value
// kinds.
func (t *Type) IsNumeric() bool {
	switch t.kind {
	case KindByte, KindShort, KindChar, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
	return false
}

// IsIntegral reports whether the type supports bitwise and shift
// operations.
func (t *Type) IsIntegral() bool {
	switch t.kind {
	case KindByte, KindShort, KindChar, KindInt, KindLong:
		return true
	}
	return false
}

// String renders the type for diagnostics.
func (t *Type) String() string {
	switch t.kind {
	case KindArray:
		return fmt.Sprintf("Array[%s]", t.elem)
	case KindNativeArray:
		return fmt.Sprintf("arrayOf[%s]", t.elem)
	case KindClass, KindAlias:
		return t.name
	default:
		return t.kind.String()
	}
}
