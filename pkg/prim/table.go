package prim

//go:generate go run github.com/vela-lang/vela/cmd/opgen -out conv_gen.go

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vela-lang/vela/pkg/diag"
	"github.com/vela-lang/vela/pkg/sym"
	"github.com/vela-lang/vela/pkg/tree"
	"github.com/vela-lang/vela/pkg/types"
)

// ErrNotPrimitive is returned by Table.OpcodeOf for identities that were
// never registered.
var ErrNotPrimitive = errors.New("not a primitive method")

// Table maps method identities to primitive opcodes. A table is built
// exactly once per compilation context and is read-only afterwards; any
// number of goroutines may consult it concurrently.
type Table struct {
	ops map[*sym.Method]Opcode
}

// Entry is one registered mapping, used for dumps and determinism checks.
type Entry struct {
	Method *sym.Method
	Opcode Opcode
}

// NewTable populates the identity-to-opcode mapping from the registry.
//
// Methods with zero resolvable alternatives are configuration defects:
// they are reported to the sink and skipped, and construction continues.
// Registering the same identity twice is a fatal internal-consistency
// violation and panics.
func NewTable(u *sym.Universe, rep diag.Reporter) *Table {
	b := &tableBuilder{
		table: &Table{ops: make(map[*sym.Method]Opcode, 1024)},
		uni:   u,
		rep:   rep,
	}

	for _, cls := range u.ValueClasses() {
		b.addValueOps(cls)
	}

	b.add(u.Any, "==", OpEq)
	b.add(u.Any, "!=", OpNe)
	b.add(u.Any, "equals", OpEquals)
	b.add(u.Any, "##", OpHash)
	b.add(u.Any, "isInstanceOf", OpIs)
	b.add(u.Any, "asInstanceOf", OpAs)

	b.add(u.Object, "eq", OpId)
	b.add(u.Object, "ne", OpNi)
	b.add(u.Object, "synchronized", OpSynchronized)

	b.add(u.String, "+", OpConcat)

	// The generic accessors; element specialization happens at
	// classification time. Array.clone is deliberately absent.
	b.add(u.Array, "length", OpLength)
	b.add(u.Array, "apply", OpApply)
	b.add(u.Array, "update", OpUpdate)

	return b.table
}

// OpcodeOf returns the opcode registered for the identity. Callers must
// gate on IsPrimitive first; an unregistered identity yields
// ErrNotPrimitive.
func (t *Table) OpcodeOf(m *sym.Method) (Opcode, error) {
	op, ok := t.ops[m]
	if !ok {
		name := "<nil>"
		if m != nil {
			name = m.FullName()
		}
		return 0, fmt.Errorf("%w: %s", ErrNotPrimitive, name)
	}
	return op, nil
}

// Contains reports whether the identity is registered.
func (t *Table) Contains(m *sym.Method) bool {
	_, ok := t.ops[m]
	return ok
}

// Len returns the number of registered identities.
func (t *Table) Len() int { return len(t.ops) }

// Entries returns every mapping sorted by method signature. The order is
// stable across constructions from the same registry.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.ops))
	for m, op := range t.ops {
		entries = append(entries, Entry{Method: m, Opcode: op})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Method.String() < entries[j].Method.String()
	})
	return entries
}

type tableBuilder struct {
	table *Table
	uni   *sym.Universe
	rep   diag.Reporter
}

// add registers every overload alternative of cls.name under op. The one
// override: an ADD-coded alternative whose single parameter is the string
// type registers as CONCAT, so that `+` on a value type splits between
// numeric addition and string concatenation.
func (b *tableBuilder) add(cls *sym.Class, name string, op Opcode) {
	alts := cls.Alternatives(name)
	if len(alts) == 0 {
		b.rep.Errorf(tree.Pos{}, "primitive table: no alternatives for %s.%s", cls.Name, name)
		return
	}
	for _, alt := range alts {
		code := op
		if op == OpAdd && len(alt.Params) == 1 && alt.Params[0].IsString() {
			code = OpConcat
		}
		b.register(alt, code)
	}
}

// register inserts one identity. Two registrations colliding on the same
// identity means two orthogonal registration groups overlap in the
// registry wiring, which is a programmer error, not a reportable defect.
func (b *tableBuilder) register(m *sym.Method, op Opcode) {
	if prev, ok := b.table.ops[m]; ok {
		panic(fmt.Sprintf("primitive table: duplicate registration for %s: %s and %s", m, prev, op))
	}
	b.table.ops[m] = op
}

// addValueOps registers the operator methods of one primitive value
// class.
func (b *tableBuilder) addValueOps(cls *sym.Class) {
	b.add(cls, "==", OpEq)
	b.add(cls, "!=", OpNe)

	if cls.Type.Kind() == types.KindBool {
		b.add(cls, "unary_!", OpZNot)
		b.add(cls, "&&", OpZAnd)
		b.add(cls, "||", OpZOr)
		b.add(cls, "&", OpAnd)
		b.add(cls, "|", OpOr)
		b.add(cls, "^", OpXor)
		return
	}

	b.add(cls, "+", OpAdd)
	b.add(cls, "-", OpSub)
	b.add(cls, "*", OpMul)
	b.add(cls, "/", OpDiv)
	b.add(cls, "%", OpMod)

	b.add(cls, "<", OpLt)
	b.add(cls, "<=", OpLe)
	b.add(cls, ">", OpGt)
	b.add(cls, ">=", OpGe)

	b.add(cls, "unary_+", OpPos)
	b.add(cls, "unary_-", OpNeg)

	if cls.Type.IsIntegral() {
		b.add(cls, "&", OpAnd)
		b.add(cls, "|", OpOr)
		b.add(cls, "^", OpXor)
		b.add(cls, "<<", OpLsl)
		b.add(cls, ">>>", OpLsr)
		b.add(cls, ">>", OpAsr)
		b.add(cls, "unary_~", OpNot)
	}

	b.addConversions(cls)
}

// addConversions registers the toX family, one opcode per (source,
// target) kind pair.
func (b *tableBuilder) addConversions(cls *sym.Class) {
	from := cls.Type.Kind()
	for _, conv := range []struct {
		name string
		to   types.Kind
	}{
		{"toByte", types.KindByte},
		{"toShort", types.KindShort},
		{"toChar", types.KindChar},
		{"toInt", types.KindInt},
		{"toLong", types.KindLong},
		{"toFloat", types.KindFloat},
		{"toDouble", types.KindDouble},
	} {
		op, ok := ConversionOp(from, conv.to)
		if !ok {
			b.rep.Errorf(tree.Pos{}, "primitive table: no conversion opcode for %s -> %s", from, conv.to)
			continue
		}
		b.add(cls, conv.name, op)
	}
}
