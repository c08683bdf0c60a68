package prim

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vela-lang/vela/pkg/diag"
	"github.com/vela-lang/vela/pkg/sym"
)

// Context owns the primitive table for one compilation context. The table
// is built lazily on first use and is immutable afterwards; concurrent
// compilation contexts each carry their own Context and never share
// tables.
type Context struct {
	id  string
	uni *sym.Universe
	rep diag.Reporter

	once  sync.Once
	table *Table
}

// NewContext creates a compilation context over the given registry.
// Diagnostics from table construction and classification flow to rep.
func NewContext(u *sym.Universe, rep diag.Reporter) *Context {
	if rep == nil {
		rep = &diag.Collector{}
	}
	return &Context{
		id:  "ctx_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		uni: u,
		rep: rep,
	}
}

// ID returns the context's unique identifier, used in diagnostics and
// chunk provenance.
func (c *Context) ID() string { return c.id }

// Universe returns the context's definitions registry.
func (c *Context) Universe() *sym.Universe { return c.uni }

// Table returns the primitive table, building it on first call.
func (c *Context) Table() *Table {
	c.once.Do(func() {
		c.table = NewTable(c.uni, c.rep)
	})
	return c.table
}
