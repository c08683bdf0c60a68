package prim

import (
	"strings"
	"testing"

	"github.com/vela-lang/vela/pkg/types"
)

func TestAllOpcodesHaveNames(t *testing.T) {
	for _, op := range AllOpcodes() {
		name := op.String()
		if name == "" || strings.HasPrefix(name, "UNKNOWN") {
			t.Errorf("opcode 0x%02X has no name", byte(op))
		}
	}
}

func TestOpcodeCount(t *testing.T) {
	// 31 scalar + 30 array + 49 conversion opcodes.
	if got := OpcodeCount(); got != 110 {
		t.Errorf("OpcodeCount() = %d, want 110", got)
	}
	if got := len(AllOpcodes()); got != OpcodeCount() {
		t.Errorf("AllOpcodes() length = %d, want %d", got, OpcodeCount())
	}
}

func TestOpcodeNamesUnique(t *testing.T) {
	seen := make(map[string]Opcode)
	for _, op := range AllOpcodes() {
		name := op.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q shared by 0x%02X and 0x%02X", name, byte(prev), byte(op))
		}
		seen[name] = op
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpEq, "EQ"},
		{OpNi, "NI"},
		{OpSynchronized, "SYNCHRONIZED"},
		{OpConcat, "CONCAT"},
		{OpZAnd, "ZAND"},
		{OpAdd, "ADD"},
		{OpAsr, "ASR"},
		{OpI2L, "I2L"},
		{OpD2B, "D2B"},
		{OpLength, "LENGTH"},
		{OpIArrayGet, "IARRAY_GET"},
		{OpOArraySet, "OARRAY_SET"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Opcode(0x%02X).String() = %q, want %q", byte(tt.op), got, tt.want)
		}
	}
}

func TestUnknownOpcodeString(t *testing.T) {
	op := Opcode(0xEE)
	if got := op.String(); got != "UNKNOWN(0xEE)" {
		t.Errorf("String() = %q, want UNKNOWN(0xEE)", got)
	}
	if op.IsDefined() {
		t.Error("IsDefined(0xEE) = true")
	}
}

func TestConversionOp(t *testing.T) {
	tests := []struct {
		from, to types.Kind
		want     Opcode
	}{
		{types.KindByte, types.KindByte, OpB2B},
		{types.KindByte, types.KindDouble, OpB2D},
		{types.KindInt, types.KindLong, OpI2L},
		{types.KindInt, types.KindInt, OpI2I},
		{types.KindFloat, types.KindDouble, OpF2D},
		{types.KindDouble, types.KindByte, OpD2B},
	}
	for _, tt := range tests {
		got, ok := ConversionOp(tt.from, tt.to)
		if !ok || got != tt.want {
			t.Errorf("ConversionOp(%s, %s) = (%s, %v), want %s", tt.from, tt.to, got, ok, tt.want)
		}
	}

	if _, ok := ConversionOp(types.KindBool, types.KindInt); ok {
		t.Error("ConversionOp(Bool, Int) should not exist")
	}
	if _, ok := ConversionOp(types.KindInt, types.KindString); ok {
		t.Error("ConversionOp(Int, String) should not exist")
	}
}

func TestConversionOpsComplete(t *testing.T) {
	numeric := []types.Kind{
		types.KindByte, types.KindShort, types.KindChar, types.KindInt,
		types.KindLong, types.KindFloat, types.KindDouble,
	}
	seen := make(map[Opcode]bool)
	for _, from := range numeric {
		for _, to := range numeric {
			op, ok := ConversionOp(from, to)
			if !ok {
				t.Errorf("no conversion opcode for %s -> %s", from, to)
				continue
			}
			if seen[op] {
				t.Errorf("conversion opcode %s assigned to two pairs", op)
			}
			seen[op] = true
			if !op.IsConversion() {
				t.Errorf("%s not marked as conversion", op)
			}
		}
	}
	if len(seen) != 49 {
		t.Errorf("distinct conversion opcodes = %d, want 49", len(seen))
	}
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		op    Opcode
		check func(Opcode) bool
		name  string
	}{
		{OpAdd, Opcode.IsArithmetic, "IsArithmetic"},
		{OpMod, Opcode.IsArithmetic, "IsArithmetic"},
		{OpLt, Opcode.IsComparison, "IsComparison"},
		{OpId, Opcode.IsComparison, "IsComparison"},
		{OpZNot, Opcode.IsLogical, "IsLogical"},
		{OpXor, Opcode.IsLogical, "IsLogical"},
		{OpLsl, Opcode.IsShift, "IsShift"},
		{OpNeg, Opcode.IsUnary, "IsUnary"},
		{OpI2D, Opcode.IsConversion, "IsConversion"},
		{OpLength, Opcode.IsArrayPlaceholder, "IsArrayPlaceholder"},
		{OpLength, Opcode.IsArrayLength, "IsArrayLength"},
		{OpZArrayGet, Opcode.IsArrayGet, "IsArrayGet"},
		{OpOArraySet, Opcode.IsArraySet, "IsArraySet"},
		{OpOArraySet, Opcode.IsArrayOp, "IsArrayOp"},
	}
	for _, tt := range tests {
		if !tt.check(tt.op) {
			t.Errorf("%s(%s) = false, want true", tt.name, tt.op)
		}
	}

	if OpAdd.IsArrayOp() {
		t.Error("IsArrayOp(ADD) = true")
	}
	if OpIArrayGet.IsArrayPlaceholder() {
		t.Error("IsArrayPlaceholder(IARRAY_GET) = true")
	}
	if OpI2L.IsArithmetic() {
		t.Error("IsArithmetic(I2L) = true")
	}
}

func TestArrayDemuxTables(t *testing.T) {
	// The three per-operation tables stay aligned: the same element kind
	// always selects the same letter variant.
	kinds := []types.Kind{
		types.KindBool, types.KindByte, types.KindShort, types.KindChar,
		types.KindInt, types.KindLong, types.KindFloat, types.KindDouble,
		types.KindClass, types.KindError,
	}
	for _, k := range kinds {
		l, g, s := arrayLengthOp(k), arrayGetOp(k), arraySetOp(k)
		ln, gn, sn := l.String(), g.String(), s.String()
		if ln[0] != gn[0] || gn[0] != sn[0] {
			t.Errorf("kind %s: variants disagree: %s %s %s", k, ln, gn, sn)
		}
		if !l.IsArrayLength() || !g.IsArrayGet() || !s.IsArraySet() {
			t.Errorf("kind %s: wrong operation family: %s %s %s", k, ln, gn, sn)
		}
	}

	if arrayGetOp(types.KindClass) != OpOArrayGet {
		t.Error("reference element must take the object variant")
	}
	if arrayGetOp(types.KindError) != OpOArrayGet {
		t.Error("error element must take the object variant")
	}
}
