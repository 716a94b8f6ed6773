package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"typeforge/pkg/gen"
	"typeforge/pkg/types"
)

var (
	TypeStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	TypeColorFG  = pterm.FgLightGreen
	CtorColorFG  = pterm.FgCyan
	FieldColorFG = pterm.FgDefault
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	ErrorColorFG = pterm.FgRed
)

func printErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

func printType(def *types.TypeDefinition, showBodies bool) {
	TypeStyleBG.Print(" type ")
	TypeColorFG.Println(" " + def.Attributes().String() + " " + def.String())
	for _, field := range def.Fields() {
		FieldColorFG.Println("    " + field.String())
	}
	for _, ctor := range def.Constructors() {
		CtorColorFG.Println("    " + ctor.Attributes().String() + " " + ctor.Signature())
		if showBodies {
			fmt.Print(indent(ctor.Body().Disassemble()))
		}
	}
}

func indent(listing string) string {
	out := ""
	for _, line := range splitLines(listing) {
		out += "        " + line + "\n"
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func fatal(err error) {
	printErrorMessage(" error ", err)
	os.Exit(70) // Exit code 70: internal software error
}

// buildShowcase constructs a small hierarchy exercising the whole engine:
// synthesized default constructors chained through plain, generic, and
// imported parents.
func buildShowcase() (*types.Registry, []*types.TypeDefinition) {
	reg := types.NewRegistry()

	animal, err := reg.NewType("Animal", types.TypePublic)
	if err != nil {
		fatal(err)
	}
	if _, err := animal.DefineField("age", types.Int32, types.Public); err != nil {
		fatal(err)
	}
	if _, err := animal.DefineDefaultConstructor(types.Public); err != nil {
		fatal(err)
	}
	if err := animal.Finalize(); err != nil {
		fatal(err)
	}

	dog, err := reg.NewType("Dog", types.TypePublic)
	if err != nil {
		fatal(err)
	}
	if err := dog.SetParent(animal); err != nil {
		fatal(err)
	}
	if _, err := dog.DefineField("name", types.String, types.Private); err != nil {
		fatal(err)
	}
	if _, err := dog.DefineDefaultConstructor(types.Public); err != nil {
		fatal(err)
	}
	if err := dog.Finalize(); err != nil {
		fatal(err)
	}

	crate, err := reg.NewType("Crate\x601", types.TypePublic)
	if err != nil {
		fatal(err)
	}
	params, err := crate.DefineGenericParameters("T")
	if err != nil {
		fatal(err)
	}
	if _, err := crate.DefineField("item", params[0], types.Public); err != nil {
		fatal(err)
	}
	if _, err := crate.DefineDefaultConstructor(types.Public); err != nil {
		fatal(err)
	}
	if err := crate.Finalize(); err != nil {
		fatal(err)
	}

	// A shelf of dogs: parent is a closed instantiation of the crate.
	crateOfDogs, err := reg.Instantiate(crate, dog)
	if err != nil {
		fatal(err)
	}
	shelf, err := reg.NewType("Shelf", types.TypePublic)
	if err != nil {
		fatal(err)
	}
	if err := shelf.SetParent(crateOfDogs); err != nil {
		fatal(err)
	}
	if _, err := shelf.DefineDefaultConstructor(types.Public); err != nil {
		fatal(err)
	}
	if err := shelf.Finalize(); err != nil {
		fatal(err)
	}

	// Same again through an externally defined container.
	box, err := reg.ImportType("Box\x601", types.TypePublic, "T")
	if err != nil {
		fatal(err)
	}
	boxOfInts, err := reg.Instantiate(box, types.Int32)
	if err != nil {
		fatal(err)
	}
	pallet, err := reg.NewType("Pallet", types.TypePublic)
	if err != nil {
		fatal(err)
	}
	if err := pallet.SetParent(boxOfInts); err != nil {
		fatal(err)
	}
	if _, err := pallet.DefineDefaultConstructor(types.Public); err != nil {
		fatal(err)
	}
	if err := pallet.Finalize(); err != nil {
		fatal(err)
	}

	return reg, []*types.TypeDefinition{animal, dog, crate, shelf, box, pallet}
}

func main() {
	disFlag := flag.Bool("dis", false, "Show constructor body disassembly")
	genFlag := flag.String("gen", "", "Write rendered Go source for the showcase types to the given file")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: typeforge [-dis] [-gen <file>]\n")
		os.Exit(64) // Exit code 64: command line usage error
	}

	reg, defs := buildShowcase()

	for _, def := range defs {
		printType(def, *disFlag)
	}

	// Resolve the crate constructor against two different closings to show
	// that the declaration identity survives while the bound type changes.
	crate := defs[2]
	ctor := crate.Constructor()
	for _, arg := range []types.Type{types.Int32, types.String} {
		inst, err := reg.Instantiate(crate, arg)
		if err != nil {
			fatal(err)
		}
		ref, err := types.ResolveConstructor(inst, ctor)
		if err != nil {
			fatal(err)
		}
		CtorColorFG.Println("resolved " + ref.Signature() + " [" + ref.Attributes().String() + "]")
	}

	if *genFlag != "" {
		// Only the plain classes have a Go rendering.
		src, err := gen.RenderFile("showcase", defs[0], defs[1])
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*genFlag, []byte(src), 0o644); err != nil {
			fatal(err)
		}
		fmt.Println("wrote " + *genFlag)
	}
}
