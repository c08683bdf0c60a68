package prim

import (
	"fmt"

	"github.com/vela-lang/vela/pkg/sym"
	"github.com/vela-lang/vela/pkg/tree"
	"github.com/vela-lang/vela/pkg/types"
)

// IsPrimitive reports whether the call is a primitive operation.
//
// A call with a resolved identity is primitive when that identity is in
// the table. The only call nodes lacking a resolvable identity are the
// built-in array accessor shapes (length/apply/update/clone); of those,
// everything but clone is primitive. clone must go through ordinary
// virtual dispatch against the array runtime representation.
func (c *Context) IsPrimitive(call *tree.Call) bool {
	fun := call.Fun
	if fun.Sym != nil {
		return c.Table().Contains(fun.Sym)
	}
	return fun.Accessor != tree.AccessorClone
}

// Classify resolves the call's opcode, demultiplexing the untyped array
// placeholders by the receiver's element type.
//
// Classify must only be called for calls IsPrimitive reports true for; a
// non-primitive resolved identity is a caller bug and panics. A receiver
// that does not reduce to an array shape when demultiplexing is required
// is reported as a classification error and classification continues with
// the error element type, which takes the object variant.
func (c *Context) Classify(call *tree.Call, recv *types.Type) Opcode {
	var op Opcode
	switch call.Fun.Accessor {
	case tree.AccessorLength:
		op = OpLength
	case tree.AccessorApply:
		op = OpApply
	case tree.AccessorUpdate:
		op = OpUpdate
	default:
		code, err := c.Table().OpcodeOf(call.Fun.Sym)
		if err != nil {
			panic(fmt.Sprintf("prim: Classify on non-primitive call at %s: %v", call.Pos, err))
		}
		op = code
	}

	if !op.IsArrayPlaceholder() {
		return op
	}

	elem, ok := recv.ElemType()
	if !ok {
		c.rep.Errorf(call.Pos, "expected an array type at this call site, found %s", recv)
		elem = types.Err
	}

	switch op {
	case OpLength:
		return arrayLengthOp(elem.Kind())
	case OpApply:
		return arrayGetOp(elem.Kind())
	default:
		return arraySetOp(elem.Kind())
	}
}

// OpcodeOf is the raw table lookup for a resolved identity.
func (c *Context) OpcodeOf(m *sym.Method) (Opcode, error) {
	return c.Table().OpcodeOf(m)
}
