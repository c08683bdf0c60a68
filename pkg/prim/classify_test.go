package prim

import (
	"strings"
	"sync"
	"testing"

	"github.com/vela-lang/vela/pkg/diag"
	"github.com/vela-lang/vela/pkg/sym"
	"github.com/vela-lang/vela/pkg/tree"
	"github.com/vela-lang/vela/pkg/types"
)

func newTestContext(t *testing.T) (*Context, *diag.Collector) {
	t.Helper()
	rep := &diag.Collector{}
	return NewContext(sym.NewUniverse(), rep), rep
}

// methodCall builds a call node whose callee resolved to m on a receiver
// of the given static type.
func methodCall(m *sym.Method, recv *types.Type) *tree.Call {
	r := &tree.Ident{Name: "x", Typ: recv}
	return &tree.Call{
		Pos: tree.Pos{Line: 3, Column: 7},
		Fun: &tree.Select{Recv: r, Name: m.Name, Sym: m, Typ: m.Result},
	}
}

// accessorCall builds an array accessor call carrying no resolved
// identity, the shape the backend sees after erasure.
func accessorCall(acc tree.Accessor, recv *types.Type) *tree.Call {
	r := &tree.Ident{Name: "xs", Typ: recv}
	return &tree.Call{
		Pos: tree.Pos{Line: 5, Column: 2},
		Fun: &tree.Select{Recv: r, Name: acc.String(), Accessor: acc},
	}
}

func TestClassifyScalarOps(t *testing.T) {
	ctx, rep := newTestContext(t)
	u := ctx.Universe()

	tests := []struct {
		m    *sym.Method
		recv *types.Type
		want Opcode
	}{
		{alt(t, u.Int, "+", types.Int), types.Int, OpAdd},
		{alt(t, u.Int, "+", types.String), types.Int, OpConcat},
		{alt(t, u.String, "+", types.Any), types.String, OpConcat},
		{alt(t, u.Boolean, "&&", types.Bool), types.Bool, OpZAnd},
		{alt(t, u.Long, "toInt", nil), types.Long, OpL2I},
		{alt(t, u.Object, "synchronized", types.Any), types.Object, OpSynchronized},
	}

	for _, tt := range tests {
		call := methodCall(tt.m, tt.recv)
		if !ctx.IsPrimitive(call) {
			t.Errorf("IsPrimitive(%s) = false", tt.m)
			continue
		}
		if got := ctx.Classify(call, tt.recv); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.m, got, tt.want)
		}
	}
	if rep.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", rep.Err())
	}
}

func TestClassifyArrayDemux(t *testing.T) {
	ctx, rep := newTestContext(t)

	tests := []struct {
		elem             *types.Type
		length, get, set Opcode
	}{
		{types.Bool, OpZArrayLength, OpZArrayGet, OpZArraySet},
		{types.Byte, OpBArrayLength, OpBArrayGet, OpBArraySet},
		{types.Short, OpSArrayLength, OpSArrayGet, OpSArraySet},
		{types.Char, OpCArrayLength, OpCArrayGet, OpCArraySet},
		{types.Int, OpIArrayLength, OpIArrayGet, OpIArraySet},
		{types.Long, OpLArrayLength, OpLArrayGet, OpLArraySet},
		{types.Float, OpFArrayLength, OpFArrayGet, OpFArraySet},
		{types.Double, OpDArrayLength, OpDArrayGet, OpDArraySet},
		// Reference element types take the object variant.
		{types.ClassOf("Widget"), OpOArrayLength, OpOArrayGet, OpOArraySet},
		{types.String, OpOArrayLength, OpOArrayGet, OpOArraySet},
		{types.ArrayOf(types.Int), OpOArrayLength, OpOArrayGet, OpOArraySet},
	}

	for _, tt := range tests {
		recv := types.ArrayOf(tt.elem)
		if got := ctx.Classify(accessorCall(tree.AccessorLength, recv), recv); got != tt.length {
			t.Errorf("length on Array[%v] = %s, want %s", tt.elem, got, tt.length)
		}
		if got := ctx.Classify(accessorCall(tree.AccessorApply, recv), recv); got != tt.get {
			t.Errorf("apply on Array[%v] = %s, want %s", tt.elem, got, tt.get)
		}
		if got := ctx.Classify(accessorCall(tree.AccessorUpdate, recv), recv); got != tt.set {
			t.Errorf("update on Array[%v] = %s, want %s", tt.elem, got, tt.set)
		}
	}
	if rep.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", rep.Err())
	}
}

func TestClassifyThroughAliasAndRuntimeArray(t *testing.T) {
	ctx, rep := newTestContext(t)

	recvs := []*types.Type{
		types.AliasOf("Ints", types.ArrayOf(types.Int)),
		types.AliasOf("Buf", types.AliasOf("Raw", types.NativeArrayOf(types.Int))),
		types.NativeArrayOf(types.Int),
	}
	for _, recv := range recvs {
		if got := ctx.Classify(accessorCall(tree.AccessorApply, recv), recv); got != OpIArrayGet {
			t.Errorf("apply on %v = %s, want IARRAY_GET", recv, got)
		}
	}
	if rep.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", rep.Err())
	}
}

func TestClassifyGenericAccessorSymbol(t *testing.T) {
	// The registered generic Array.apply identity resolves to the
	// placeholder, then demultiplexes like the structural shape.
	ctx, _ := newTestContext(t)
	u := ctx.Universe()

	recv := types.ArrayOf(types.Double)
	call := methodCall(alt(t, u.Array, "apply", types.Int), recv)
	if got := ctx.Classify(call, call.ReceiverType()); got != OpDArrayGet {
		t.Errorf("Classify(Array.apply, Array[Double]) = %s, want DARRAY_GET", got)
	}
}

func TestIsPrimitiveAccessors(t *testing.T) {
	ctx, _ := newTestContext(t)
	recv := types.ArrayOf(types.Int)

	for _, acc := range []tree.Accessor{tree.AccessorLength, tree.AccessorApply, tree.AccessorUpdate} {
		if !ctx.IsPrimitive(accessorCall(acc, recv)) {
			t.Errorf("IsPrimitive(%s accessor) = false, want true", acc)
		}
	}

	// clone is the one identity-less call dispatched normally.
	if ctx.IsPrimitive(accessorCall(tree.AccessorClone, recv)) {
		t.Error("IsPrimitive(clone accessor) = true, want false")
	}
}

func TestIsPrimitiveResolvedIdentities(t *testing.T) {
	ctx, _ := newTestContext(t)
	u := ctx.Universe()

	if !ctx.IsPrimitive(methodCall(alt(t, u.Int, "+", types.Int), types.Int)) {
		t.Error("IsPrimitive(Int.+) = false")
	}

	widget := sym.NewClass("Widget", types.ClassOf("Widget"))
	render := widget.Define("render", nil, types.Unit)
	if ctx.IsPrimitive(methodCall(render, widget.Type)) {
		t.Error("IsPrimitive(Widget.render) = true")
	}

	if ctx.IsPrimitive(methodCall(alt(t, u.Array, "clone", nil), types.ArrayOf(types.Int))) {
		t.Error("IsPrimitive(resolved Array.clone) = true")
	}
}

func TestClassifyNonArrayReceiver(t *testing.T) {
	ctx, rep := newTestContext(t)

	recv := types.ClassOf("Widget")
	got := ctx.Classify(accessorCall(tree.AccessorApply, recv), recv)

	// Reported, not thrown; classification continues with the error
	// element type, which takes the object variant.
	if got != OpOArrayGet {
		t.Errorf("Classify(apply, Widget) = %s, want OARRAY_GET", got)
	}
	if !rep.HasErrors() {
		t.Fatal("expected a classification error for the non-array receiver")
	}
	d := rep.Diagnostics()[0]
	if !strings.Contains(d.Message, "expected an array type") || !strings.Contains(d.Message, "Widget") {
		t.Errorf("diagnostic %q does not describe the receiver shape", d.Message)
	}
	if d.Pos.Line != 5 {
		t.Errorf("diagnostic position = %s, want the call site", d.Pos)
	}
}

func TestContextLazyTable(t *testing.T) {
	ctx, _ := newTestContext(t)

	first := ctx.Table()
	if first == nil {
		t.Fatal("Table() returned nil")
	}
	if second := ctx.Table(); second != first {
		t.Error("Table() rebuilt; must be built once per context")
	}

	// Concurrent readers share the same table.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Table() != first {
				t.Error("concurrent Table() returned a different table")
			}
		}()
	}
	wg.Wait()
}

func TestContextIDs(t *testing.T) {
	a, _ := newTestContext(t)
	b, _ := newTestContext(t)

	if !strings.HasPrefix(a.ID(), "ctx_") {
		t.Errorf("ID() = %q, want ctx_ prefix", a.ID())
	}
	if a.ID() == b.ID() {
		t.Error("two contexts share an ID")
	}
}
