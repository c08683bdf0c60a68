package tree

import (
	"testing"

	"github.com/vela-lang/vela/pkg/types"
)

func TestAccessorString(t *testing.T) {
	tests := []struct {
		acc  Accessor
		want string
	}{
		{AccessorNone, "none"},
		{AccessorLength, "length"},
		{AccessorApply, "apply"},
		{AccessorUpdate, "update"},
		{AccessorClone, "clone"},
	}
	for _, tt := range tests {
		if got := tt.acc.String(); got != tt.want {
			t.Errorf("Accessor(%d).String() = %q, want %q", tt.acc, got, tt.want)
		}
	}
}

func TestReceiverType(t *testing.T) {
	arr := types.ArrayOf(types.Int)
	call := &Call{
		Fun: &Select{
			Recv:     &Ident{Name: "xs", Typ: arr},
			Accessor: AccessorApply,
		},
	}
	if got := call.ReceiverType(); got != arr {
		t.Errorf("ReceiverType() = %v, want %v", got, arr)
	}

	bare := &Call{Fun: &Select{Name: "f"}}
	if got := bare.ReceiverType(); got != nil {
		t.Errorf("ReceiverType() without receiver = %v, want nil", got)
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Line: 12, Column: 4}
	if got := p.String(); got != "12:4" {
		t.Errorf("Pos.String() = %q, want %q", got, "12:4")
	}
}
