// Opgen generates the numeric-conversion opcode table in pkg/prim.
// One opcode exists per ordered pair of numeric kinds; the constants,
// name table, and kind-pair lookup are all derived from the same kind
// list, so they cannot drift apart.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
)

const typesPath = "github.com/vela-lang/vela/pkg/types"

// kinds lists the numeric kinds in widening order. The conversion opcode
// value is 0x40 + from*8 + to, leaving a gap per row so the row is
// readable in hex dumps.
var kinds = []struct {
	Letter string // opcode name letter
	Kind   string // types.Kind identifier
}{
	{"B", "KindByte"},
	{"S", "KindShort"},
	{"C", "KindChar"},
	{"I", "KindInt"},
	{"L", "KindLong"},
	{"F", "KindFloat"},
	{"D", "KindDouble"},
}

func opName(from, to int) string {
	return "Op" + kinds[from].Letter + "2" + kinds[to].Letter
}

func opValue(from, to int) string {
	return fmt.Sprintf("0x%02X", 0x40+from*8+to)
}

func main() {
	out := flag.String("out", "pkg/prim/conv_gen.go", "Output file")
	flag.Parse()

	f := jen.NewFile("prim")
	f.HeaderComment("Code generated by cmd/opgen. DO NOT EDIT.")
	f.ImportName(typesPath, "types")

	f.Comment("Numeric conversion opcodes, one per ordered pair of numeric kinds.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for from := range kinds {
			for to := range kinds {
				g.Id(opName(from, to)).Id("Opcode").Op("=").Id(opValue(from, to))
			}
		}
	})

	f.Comment("conversionNames maps each conversion opcode to its name.")
	f.Var().Id("conversionNames").Op("=").Map(jen.Id("Opcode")).String().ValuesFunc(func(g *jen.Group) {
		for from := range kinds {
			for to := range kinds {
				g.Line().Id(opName(from, to)).Op(":").Lit(kinds[from].Letter + "2" + kinds[to].Letter)
			}
		}
		g.Line()
	})

	f.Comment("conversionOps maps (source kind, target kind) to the conversion opcode.")
	f.Var().Id("conversionOps").Op("=").Map(jen.Qual(typesPath, "Kind")).Map(jen.Qual(typesPath, "Kind")).Id("Opcode").ValuesFunc(func(g *jen.Group) {
		for from := range kinds {
			from := from
			g.Line().Qual(typesPath, kinds[from].Kind).Op(":").ValuesFunc(func(row *jen.Group) {
				for to := range kinds {
					row.Line().Qual(typesPath, kinds[to].Kind).Op(":").Id(opName(from, to))
				}
				row.Line()
			})
		}
		g.Line()
	})

	f.Comment("ConversionOp returns the conversion opcode for the ordered pair of")
	f.Comment("numeric kinds. The second result is false when either kind is not")
	f.Comment("numeric.")
	f.Func().Id("ConversionOp").Params(
		jen.Id("from").Qual(typesPath, "Kind"),
		jen.Id("to").Qual(typesPath, "Kind"),
	).Parens(jen.List(jen.Id("Opcode"), jen.Bool())).Block(
		jen.List(jen.Id("row"), jen.Id("ok")).Op(":=").Id("conversionOps").Index(jen.Id("from")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Lit(0), jen.False()),
		),
		jen.List(jen.Id("op"), jen.Id("ok")).Op(":=").Id("row").Index(jen.Id("to")),
		jen.Return(jen.Id("op"), jen.Id("ok")),
	)

	if err := f.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "opgen: %v\n", err)
		os.Exit(1)
	}
}
