// Package sym provides the definitions registry: canonical symbols for the
// built-in value and reference classes and the overloaded operator methods
// defined on them. The primitive table consumes these symbols as opaque,
// comparable method identities.
package sym

import (
	"strings"

	"github.com/vela-lang/vela/pkg/types"
)

// Method is one resolved overload of a method on one class. The pointer is
// the method's identity; the backend never compares methods structurally.
type Method struct {
	Owner  *Class
	Name   string
	Params []*types.Type
	Result *types.Type
}

// FullName returns "Owner.name", e.g. "Int.+".
func (m *Method) FullName() string {
	return m.Owner.Name + "." + m.Name
}

// String renders the full signature for diagnostics.
func (m *Method) String() string {
	var sb strings.Builder
	sb.WriteString(m.FullName())
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	if m.Result != nil {
		sb.WriteString(": ")
		sb.WriteString(m.Result.String())
	}
	return sb.String()
}

// Class is a built-in class symbol with an ordered method table. Methods
// holds every overload alternative grouped by name; the slice order is
// declaration order and is stable across constructions.
type Class struct {
	Name string
	Type *types.Type

	Methods map[string][]*Method

	names []string // method names in declaration order
}

// NewClass creates an empty class symbol for the given type.
func NewClass(name string, typ *types.Type) *Class {
	return &Class{
		Name:    name,
		Type:    typ,
		Methods: make(map[string][]*Method),
	}
}

// Define adds one overload alternative and returns its identity.
func (c *Class) Define(name string, params []*types.Type, result *types.Type) *Method {
	m := &Method{Owner: c, Name: name, Params: params, Result: result}
	if _, seen := c.Methods[name]; !seen {
		c.names = append(c.names, name)
	}
	c.Methods[name] = append(c.Methods[name], m)
	return m
}

// Alternatives enumerates every overload of a method name in declaration
// order. The result is nil when the class defines no such method.
func (c *Class) Alternatives(name string) []*Method {
	return c.Methods[name]
}

// MethodNames returns the method names in declaration order.
func (c *Class) MethodNames() []string {
	return c.names
}
