// Package prim classifies method-call nodes in the typed tree into the
// closed set of primitive opcodes the code generator emits directly
// instead of a virtual dispatch.
package prim

import (
	"fmt"
	"sort"

	"github.com/vela-lang/vela/pkg/types"
)

// Opcode identifies one primitive operation. Opcodes are organized into
// ranges by category; the numeric value carries no meaning beyond
// uniqueness and table-key use.
type Opcode byte

const (
	// ========================================================================
	// Identity, equality, reflection (0x00-0x0F)
	// ========================================================================

	OpEq           Opcode = 0x00 // value equality, incl. null check and equals fallback
	OpNe           Opcode = 0x01 // value inequality
	OpId           Opcode = 0x02 // reference equality
	OpNi           Opcode = 0x03 // reference inequality
	OpEquals       Opcode = 0x04 // user-defined equals
	OpIs           Opcode = 0x05 // type test
	OpAs           Opcode = 0x06 // type cast
	OpHash         Opcode = 0x07 // hash code
	OpSynchronized Opcode = 0x08 // monitor-protected evaluation
	OpConcat       Opcode = 0x09 // string concatenation

	// ========================================================================
	// Boolean and bitwise logic (0x10-0x1F)
	// ========================================================================

	OpZNot Opcode = 0x10 // boolean negation
	OpZAnd Opcode = 0x11 // short-circuit and
	OpZOr  Opcode = 0x12 // short-circuit or
	OpAnd  Opcode = 0x13 // and (boolean or bitwise, by operand type)
	OpOr   Opcode = 0x14 // or
	OpXor  Opcode = 0x15 // xor

	// ========================================================================
	// Arithmetic and unary (0x20-0x2F)
	// ========================================================================

	OpAdd Opcode = 0x20
	OpSub Opcode = 0x21
	OpMul Opcode = 0x22
	OpDiv Opcode = 0x23
	OpMod Opcode = 0x24
	OpPos Opcode = 0x28 // unary plus
	OpNeg Opcode = 0x29 // unary minus
	OpNot Opcode = 0x2A // bitwise complement

	// ========================================================================
	// Relational and shifts (0x30-0x3F)
	// ========================================================================

	OpLt  Opcode = 0x30
	OpLe  Opcode = 0x31
	OpGt  Opcode = 0x32
	OpGe  Opcode = 0x33
	OpLsl Opcode = 0x38 // shift left
	OpLsr Opcode = 0x39 // logical shift right
	OpAsr Opcode = 0x3A // arithmetic shift right

	// Numeric conversions occupy 0x40-0x7F, one opcode per ordered pair
	// of numeric kinds. The constants (OpB2B .. OpD2D) live in
	// conv_gen.go, produced by cmd/opgen.

	// ========================================================================
	// Array operations (0x80-0xBF)
	// ========================================================================

	// Untyped placeholders, resolved by element type at classification.
	OpLength Opcode = 0x80
	OpApply  Opcode = 0x81
	OpUpdate Opcode = 0x82

	// Element-specialized length.
	OpZArrayLength Opcode = 0x90
	OpBArrayLength Opcode = 0x91
	OpSArrayLength Opcode = 0x92
	OpCArrayLength Opcode = 0x93
	OpIArrayLength Opcode = 0x94
	OpLArrayLength Opcode = 0x95
	OpFArrayLength Opcode = 0x96
	OpDArrayLength Opcode = 0x97
	OpOArrayLength Opcode = 0x98

	// Element-specialized get.
	OpZArrayGet Opcode = 0xA0
	OpBArrayGet Opcode = 0xA1
	OpSArrayGet Opcode = 0xA2
	OpCArrayGet Opcode = 0xA3
	OpIArrayGet Opcode = 0xA4
	OpLArrayGet Opcode = 0xA5
	OpFArrayGet Opcode = 0xA6
	OpDArrayGet Opcode = 0xA7
	OpOArrayGet Opcode = 0xA8

	// Element-specialized set.
	OpZArraySet Opcode = 0xB0
	OpBArraySet Opcode = 0xB1
	OpSArraySet Opcode = 0xB2
	OpCArraySet Opcode = 0xB3
	OpIArraySet Opcode = 0xB4
	OpLArraySet Opcode = 0xB5
	OpFArraySet Opcode = 0xB6
	OpDArraySet Opcode = 0xB7
	OpOArraySet Opcode = 0xB8
)

// opcodeNames maps every non-conversion opcode to its name. Conversion
// names come from conversionNames in conv_gen.go.
var opcodeNames = map[Opcode]string{
	OpEq:           "EQ",
	OpNe:           "NE",
	OpId:           "ID",
	OpNi:           "NI",
	OpEquals:       "EQUALS",
	OpIs:           "IS",
	OpAs:           "AS",
	OpHash:         "HASH",
	OpSynchronized: "SYNCHRONIZED",
	OpConcat:       "CONCAT",

	OpZNot: "ZNOT",
	OpZAnd: "ZAND",
	OpZOr:  "ZOR",
	OpAnd:  "AND",
	OpOr:   "OR",
	OpXor:  "XOR",

	OpAdd: "ADD",
	OpSub: "SUB",
	OpMul: "MUL",
	OpDiv: "DIV",
	OpMod: "MOD",
	OpPos: "POS",
	OpNeg: "NEG",
	OpNot: "NOT",

	OpLt:  "LT",
	OpLe:  "LE",
	OpGt:  "GT",
	OpGe:  "GE",
	OpLsl: "LSL",
	OpLsr: "LSR",
	OpAsr: "ASR",

	OpLength: "LENGTH",
	OpApply:  "APPLY",
	OpUpdate: "UPDATE",

	OpZArrayLength: "ZARRAY_LENGTH",
	OpBArrayLength: "BARRAY_LENGTH",
	OpSArrayLength: "SARRAY_LENGTH",
	OpCArrayLength: "CARRAY_LENGTH",
	OpIArrayLength: "IARRAY_LENGTH",
	OpLArrayLength: "LARRAY_LENGTH",
	OpFArrayLength: "FARRAY_LENGTH",
	OpDArrayLength: "DARRAY_LENGTH",
	OpOArrayLength: "OARRAY_LENGTH",

	OpZArrayGet: "ZARRAY_GET",
	OpBArrayGet: "BARRAY_GET",
	OpSArrayGet: "SARRAY_GET",
	OpCArrayGet: "CARRAY_GET",
	OpIArrayGet: "IARRAY_GET",
	OpLArrayGet: "LARRAY_GET",
	OpFArrayGet: "FARRAY_GET",
	OpDArrayGet: "DARRAY_GET",
	OpOArrayGet: "OARRAY_GET",

	OpZArraySet: "ZARRAY_SET",
	OpBArraySet: "BARRAY_SET",
	OpSArraySet: "SARRAY_SET",
	OpCArraySet: "CARRAY_SET",
	OpIArraySet: "IARRAY_SET",
	OpLArraySet: "LARRAY_SET",
	OpFArraySet: "FARRAY_SET",
	OpDArraySet: "DARRAY_SET",
	OpOArraySet: "OARRAY_SET",
}

// String returns the opcode's name, or UNKNOWN(0xXX) for values outside
// the enumeration.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if name, ok := conversionNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", byte(op))
}

// IsDefined reports whether the value belongs to the enumeration.
func (op Opcode) IsDefined() bool {
	if _, ok := opcodeNames[op]; ok {
		return true
	}
	_, ok := conversionNames[op]
	return ok
}

// IsArrayOp reports whether the opcode is an array operation, including
// the untyped placeholders.
func (op Opcode) IsArrayOp() bool {
	return op.IsDefined() && op >= OpLength && op <= OpOArraySet
}

// IsArrayPlaceholder reports whether the opcode is one of the three
// untyped pre-resolution array operations.
func (op Opcode) IsArrayPlaceholder() bool {
	return op == OpLength || op == OpApply || op == OpUpdate
}

// IsArrayLength reports whether the opcode reads an array's length.
func (op Opcode) IsArrayLength() bool {
	return op == OpLength || (op >= OpZArrayLength && op <= OpOArrayLength)
}

// IsArrayGet reports whether the opcode reads an array element.
func (op Opcode) IsArrayGet() bool {
	return op == OpApply || (op >= OpZArrayGet && op <= OpOArrayGet)
}

// IsArraySet reports whether the opcode writes an array element.
func (op Opcode) IsArraySet() bool {
	return op == OpUpdate || (op >= OpZArraySet && op <= OpOArraySet)
}

// IsArithmetic reports whether the opcode is a binary arithmetic
// operation.
func (op Opcode) IsArithmetic() bool {
	return op >= OpAdd && op <= OpMod
}

// IsComparison reports whether the opcode compares two operands.
func (op Opcode) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpId, OpNi, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// IsLogical reports whether the opcode is a boolean or bitwise logical
// operation.
func (op Opcode) IsLogical() bool {
	return op >= OpZNot && op <= OpXor
}

// IsShift reports whether the opcode is a shift.
func (op Opcode) IsShift() bool {
	return op >= OpLsl && op <= OpAsr
}

// IsUnary reports whether the opcode takes a single operand.
func (op Opcode) IsUnary() bool {
	switch op {
	case OpPos, OpNeg, OpNot, OpZNot:
		return true
	}
	return false
}

// IsConversion reports whether the opcode converts between numeric kinds.
func (op Opcode) IsConversion() bool {
	_, ok := conversionNames[op]
	return ok
}

// AllOpcodes returns every defined opcode in ascending order.
func AllOpcodes() []Opcode {
	ops := make([]Opcode, 0, len(opcodeNames)+len(conversionNames))
	for op := range opcodeNames {
		ops = append(ops, op)
	}
	for op := range conversionNames {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// OpcodeCount returns the number of defined opcodes.
func OpcodeCount() int {
	return len(opcodeNames) + len(conversionNames)
}

// arrayLengthOp maps an element kind to the specialized length opcode.
// Reference and error element types take the object variant.
func arrayLengthOp(k types.Kind) Opcode {
	switch k {
	case types.KindBool:
		return OpZArrayLength
	case types.KindByte:
		return OpBArrayLength
	case types.KindShort:
		return OpSArrayLength
	case types.KindChar:
		return OpCArrayLength
	case types.KindInt:
		return OpIArrayLength
	case types.KindLong:
		return OpLArrayLength
	case types.KindFloat:
		return OpFArrayLength
	case types.KindDouble:
		return OpDArrayLength
	default:
		return OpOArrayLength
	}
}

// arrayGetOp maps an element kind to the specialized get opcode.
func arrayGetOp(k types.Kind) Opcode {
	switch k {
	case types.KindBool:
		return OpZArrayGet
	case types.KindByte:
		return OpBArrayGet
	case types.KindShort:
		return OpSArrayGet
	case types.KindChar:
		return OpCArrayGet
	case types.KindInt:
		return OpIArrayGet
	case types.KindLong:
		return OpLArrayGet
	case types.KindFloat:
		return OpFArrayGet
	case types.KindDouble:
		return OpDArrayGet
	default:
		return OpOArrayGet
	}
}

// arraySetOp maps an element kind to the specialized set opcode.
func arraySetOp(k types.Kind) Opcode {
	switch k {
	case types.KindBool:
		return OpZArraySet
	case types.KindByte:
		return OpBArraySet
	case types.KindShort:
		return OpSArraySet
	case types.KindChar:
		return OpCArraySet
	case types.KindInt:
		return OpIArraySet
	case types.KindLong:
		return OpLArraySet
	case types.KindFloat:
		return OpFArraySet
	case types.KindDouble:
		return OpDArraySet
	default:
		return OpOArraySet
	}
}
