package bytecode

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vela-lang/vela/pkg/prim"
)

// Emitter builds a chunk instruction by instruction. It is the consumer
// of classified opcodes: the host compiler classifies a call, then feeds
// the resulting opcode here.
type Emitter struct {
	chunk *Chunk

	// Constant pool deduplication.
	constantMap map[string]uint16

	errs []error
}

// NewEmitter creates an emitter for a fresh chunk.
func NewEmitter(name string) *Emitter {
	return &Emitter{
		chunk: &Chunk{
			Version: ChunkVersion,
			ID:      "chunk_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
			Name:    name,
			Code:    make([]byte, 0, 64),
		},
		constantMap: make(map[string]uint16),
	}
}

// EmitPrim appends a classified primitive operation. The three untyped
// array placeholders are rejected: they must be demultiplexed by the
// classifier before emission.
func (e *Emitter) EmitPrim(op prim.Opcode) {
	if !op.IsDefined() {
		e.errs = append(e.errs, fmt.Errorf("emit: undefined opcode 0x%02X", byte(op)))
		return
	}
	if op.IsArrayPlaceholder() {
		e.errs = append(e.errs, fmt.Errorf("emit: unresolved array placeholder %s", op))
		return
	}
	e.chunk.Code = append(e.chunk.Code, byte(op))
}

// EmitConst appends a constant push, interning the text in the pool.
func (e *Emitter) EmitConst(text string) {
	idx, ok := e.constantMap[text]
	if !ok {
		if len(e.chunk.Constants) > 0xFFFF {
			e.errs = append(e.errs, fmt.Errorf("emit: constant pool overflow at %q", text))
			return
		}
		idx = uint16(len(e.chunk.Constants))
		e.chunk.Constants = append(e.chunk.Constants, text)
		e.constantMap[text] = idx
	}
	e.chunk.Code = append(e.chunk.Code, byte(OpConst), byte(idx>>8), byte(idx))
}

// EmitLoadLocal appends a local-variable push.
func (e *Emitter) EmitLoadLocal(slot uint8) {
	e.chunk.Code = append(e.chunk.Code, byte(OpLoadLocal), slot)
	if slot >= e.chunk.LocalCount {
		e.chunk.LocalCount = slot + 1
	}
}

// EmitStoreLocal appends a pop into a local variable.
func (e *Emitter) EmitStoreLocal(slot uint8) {
	e.chunk.Code = append(e.chunk.Code, byte(OpStoreLocal), slot)
	if slot >= e.chunk.LocalCount {
		e.chunk.LocalCount = slot + 1
	}
}

// EmitReturn appends a value return.
func (e *Emitter) EmitReturn() {
	e.chunk.Code = append(e.chunk.Code, byte(OpReturn))
}

// EmitReturnUnit appends a unit return.
func (e *Emitter) EmitReturnUnit() {
	e.chunk.Code = append(e.chunk.Code, byte(OpReturnUnit))
}

// Finish validates and returns the chunk. The emitter must not be used
// afterwards.
func (e *Emitter) Finish() (*Chunk, error) {
	if len(e.errs) > 0 {
		return nil, e.errs[0]
	}
	if err := e.chunk.Validate(); err != nil {
		return nil, err
	}
	return e.chunk, nil
}
