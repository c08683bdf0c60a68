package bytecode

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/pkg/prim"
)

// Disassemble returns a human-readable instruction listing for the chunk.
func (c *Chunk) Disassemble() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("; === %s ===\n", c.displayName()))
	sb.WriteString(fmt.Sprintf("; Vela Bytecode v%d\n", c.Version))
	if c.ParamCount > 0 {
		sb.WriteString(fmt.Sprintf("; Parameters: %d\n", c.ParamCount))
	}
	if c.LocalCount > 0 {
		sb.WriteString(fmt.Sprintf("; Locals: %d slots\n", c.LocalCount))
	}
	if len(c.Constants) > 0 {
		sb.WriteString(fmt.Sprintf("; Constants (%d):\n", len(c.Constants)))
		for i, k := range c.Constants {
			sb.WriteString(fmt.Sprintf(";   [%d] %q\n", i, k))
		}
	}

	for pc := 0; pc < len(c.Code); {
		op := prim.Opcode(c.Code[pc])
		n := OperandLen(op)
		if pc+1+n > len(c.Code) {
			sb.WriteString(fmt.Sprintf("%04d  <truncated %s>\n", pc, OpName(op)))
			break
		}
		switch op {
		case OpConst:
			idx := int(c.Code[pc+1])<<8 | int(c.Code[pc+2])
			text := "<bad index>"
			if idx < len(c.Constants) {
				text = fmt.Sprintf("%q", c.Constants[idx])
			}
			sb.WriteString(fmt.Sprintf("%04d  %-14s %d  ; %s\n", pc, OpName(op), idx, text))
		case OpLoadLocal, OpStoreLocal:
			sb.WriteString(fmt.Sprintf("%04d  %-14s %d\n", pc, OpName(op), c.Code[pc+1]))
		default:
			sb.WriteString(fmt.Sprintf("%04d  %s\n", pc, OpName(op)))
		}
		pc += 1 + n
	}

	return sb.String()
}

func (c *Chunk) displayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}
