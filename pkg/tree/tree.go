// Package tree holds the slice of the typed syntax tree the backend
// classifies: call nodes, their callees, and the distinguished array
// accessor shapes that carry no resolved method identity.
package tree

import (
	"fmt"

	"github.com/vela-lang/vela/pkg/sym"
	"github.com/vela-lang/vela/pkg/types"
)

// Pos locates a node in its source file.
type Pos struct {
	Line   uint32
	Column uint16
}

// String renders the position as line:column.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Accessor tags the built-in array accessor shapes. These callees are
// recognized structurally; all but AccessorClone may carry no resolved
// method identity.
type Accessor uint8

const (
	AccessorNone Accessor = iota
	AccessorLength
	AccessorApply
	AccessorUpdate
	AccessorClone
)

// String returns a human-readable name for an accessor tag.
func (a Accessor) String() string {
	switch a {
	case AccessorNone:
		return "none"
	case AccessorLength:
		return "length"
	case AccessorApply:
		return "apply"
	case AccessorUpdate:
		return "update"
	case AccessorClone:
		return "clone"
	default:
		return fmt.Sprintf("Accessor(%d)", uint8(a))
	}
}

// Expr is a typed expression node.
type Expr interface {
	Type() *types.Type
	Position() Pos
}

// Ident is a typed reference to a value.
type Ident struct {
	Pos  Pos
	Name string
	Typ  *types.Type
}

func (e *Ident) Type() *types.Type { return e.Typ }
func (e *Ident) Position() Pos     { return e.Pos }

// Select is a callee expression: receiver.name. Sym is the resolved
// method identity, nil for the structural array accessor shapes.
type Select struct {
	Pos      Pos
	Recv     Expr
	Name     string
	Sym      *sym.Method
	Accessor Accessor
	Typ      *types.Type
}

func (e *Select) Type() *types.Type { return e.Typ }
func (e *Select) Position() Pos     { return e.Pos }

// Call is a method-call node.
type Call struct {
	Pos  Pos
	Fun  *Select
	Args []Expr
	Typ  *types.Type
}

func (e *Call) Type() *types.Type { return e.Typ }
func (e *Call) Position() Pos     { return e.Pos }

// ReceiverType returns the static type of the callee's receiver, or nil
// when the callee has no receiver expression.
func (e *Call) ReceiverType() *types.Type {
	if e.Fun == nil || e.Fun.Recv == nil {
		return nil
	}
	return e.Fun.Recv.Type()
}
