// Package bytecode is the code-generation side of primitive
// classification: chunks of encoded instructions whose opcodes are the
// primitive operation codes, plus the small load/const/return spine needed
// to make a chunk executable.
package bytecode

import (
	"fmt"

	"github.com/vela-lang/vela/pkg/prim"
)

// ChunkVersion is the current chunk format version. Increment when making
// incompatible changes to the format.
const ChunkVersion uint16 = 1

// ChunkMagic identifies encoded chunk files: "VLBC" (Vela ByteCode).
var ChunkMagic = []byte{'V', 'L', 'B', 'C'}

// Spine opcodes live above the primitive enumeration (0xE0-0xFF). They
// carry the stack traffic around the primitive operations.
const (
	OpConst      prim.Opcode = 0xE0 // push constant: OpConst <index:u16>
	OpLoadLocal  prim.Opcode = 0xE1 // push local: OpLoadLocal <slot:u8>
	OpStoreLocal prim.Opcode = 0xE2 // pop into local: OpStoreLocal <slot:u8>
	OpReturn     prim.Opcode = 0xF0 // return top of stack
	OpReturnUnit prim.Opcode = 0xF1 // return without a value
)

// spineNames maps spine opcodes to their names.
var spineNames = map[prim.Opcode]string{
	OpConst:      "CONST",
	OpLoadLocal:  "LOAD_LOCAL",
	OpStoreLocal: "STORE_LOCAL",
	OpReturn:     "RETURN",
	OpReturnUnit: "RETURN_UNIT",
}

// OpName returns the instruction name for either a spine or a primitive
// opcode.
func OpName(op prim.Opcode) string {
	if name, ok := spineNames[op]; ok {
		return name
	}
	return op.String()
}

// OperandLen returns the number of operand bytes following the opcode.
// Primitive operations carry no operands; their arity is implied.
func OperandLen(op prim.Opcode) int {
	switch op {
	case OpConst:
		return 2
	case OpLoadLocal, OpStoreLocal:
		return 1
	default:
		return 0
	}
}

// Chunk is a compiled unit of instructions. Chunks are the serialization
// boundary: everything needed to disassemble or execute one is inside.
type Chunk struct {
	Version    uint16   `cbor:"1,keyasint"`
	ID         string   `cbor:"2,keyasint"`
	Name       string   `cbor:"3,keyasint,omitempty"`
	ParamCount uint8    `cbor:"4,keyasint"`
	LocalCount uint8    `cbor:"5,keyasint"`
	Code       []byte   `cbor:"6,keyasint"`
	Constants  []string `cbor:"7,keyasint,omitempty"`
}

// Validate checks structural consistency: version, instruction framing,
// and constant-pool references.
func (c *Chunk) Validate() error {
	if c.Version != ChunkVersion {
		return fmt.Errorf("chunk %s: unsupported version %d", c.ID, c.Version)
	}
	for pc := 0; pc < len(c.Code); {
		op := prim.Opcode(c.Code[pc])
		if _, spine := spineNames[op]; !spine && !op.IsDefined() {
			return fmt.Errorf("chunk %s: unknown opcode 0x%02X at offset %d", c.ID, byte(op), pc)
		}
		n := OperandLen(op)
		if pc+1+n > len(c.Code) {
			return fmt.Errorf("chunk %s: truncated operands for %s at offset %d", c.ID, OpName(op), pc)
		}
		if op == OpConst {
			idx := int(c.Code[pc+1])<<8 | int(c.Code[pc+2])
			if idx >= len(c.Constants) {
				return fmt.Errorf("chunk %s: constant index %d out of range at offset %d", c.ID, idx, pc)
			}
		}
		pc += 1 + n
	}
	return nil
}
