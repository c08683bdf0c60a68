// Velac inspector - dumps the primitive opcode table and disassembles
// compiled chunk files.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/vela-lang/vela/manifest"
	"github.com/vela-lang/vela/pkg/bytecode"
	"github.com/vela-lang/vela/pkg/diag"
	"github.com/vela-lang/vela/pkg/prim"
	"github.com/vela-lang/vela/pkg/sym"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	manifestDir := flag.String("manifest", ".", "Directory containing vela.toml")
	classFilter := flag.String("class", "", "Comma-separated class filter for the table dump")
	byOpcode := flag.Bool("opcodes", false, "Group the table dump by opcode instead of class")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: velac [options] [chunks...]\n\n")
		fmt.Fprintf(os.Stderr, "Without arguments, dumps the primitive opcode table for a fresh\n")
		fmt.Fprintf(os.Stderr, "compilation context. With .vbc arguments, disassembles each chunk.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  velac                      # Dump the full table\n")
		fmt.Fprintf(os.Stderr, "  velac -class Int,Boolean   # Dump only Int and Boolean entries\n")
		fmt.Fprintf(os.Stderr, "  velac -opcodes             # Group the dump by opcode\n")
		fmt.Fprintf(os.Stderr, "  velac main.vbc             # Disassemble a compiled chunk\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	classes := parseClassFilter(*classFilter)
	if m, err := manifest.Load(*manifestDir); err == nil {
		if len(classes) == 0 {
			classes = toSet(m.Inspect.Classes)
		}
		if m.Inspect.Opcodes {
			*byOpcode = true
		}
	} else if *verbose {
		fmt.Fprintf(os.Stderr, "velac: no manifest: %v\n", err)
	}

	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			if err := disassemble(path); err != nil {
				fmt.Fprintf(os.Stderr, "velac: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	ctx := prim.NewContext(sym.NewUniverse(), diag.NewLogger("velac"))
	if *byOpcode {
		dumpByOpcode(ctx.Table(), classes)
	} else {
		dumpByClass(ctx.Table(), classes)
	}
}

func parseClassFilter(s string) map[string]bool {
	if s == "" {
		return nil
	}
	return toSet(strings.Split(s, ","))
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = true
		}
	}
	return set
}

func dumpByClass(t *prim.Table, classes map[string]bool) {
	var owner string
	for _, e := range t.Entries() {
		if classes != nil && !classes[e.Method.Owner.Name] {
			continue
		}
		if e.Method.Owner.Name != owner {
			owner = e.Method.Owner.Name
			fmt.Printf("\n=== %s ===\n", owner)
		}
		fmt.Printf("  %-40s %s\n", e.Method, e.Opcode)
	}
}

func dumpByOpcode(t *prim.Table, classes map[string]bool) {
	groups := make(map[prim.Opcode][]prim.Entry)
	for _, e := range t.Entries() {
		if classes != nil && !classes[e.Method.Owner.Name] {
			continue
		}
		groups[e.Opcode] = append(groups[e.Opcode], e)
	}

	ops := make([]prim.Opcode, 0, len(groups))
	for op := range groups {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	for _, op := range ops {
		fmt.Printf("\n=== %s ===\n", op)
		for _, e := range groups[op] {
			fmt.Printf("  %s\n", e.Method)
		}
	}
}

func disassemble(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	chunk, err := bytecode.DecodeChunk(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := chunk.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Print(chunk.Disassemble())
	return nil
}
