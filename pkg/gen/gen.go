// Package gen renders finalized type definitions as Go source: one struct per
// class with a field per declared field, plus a constructor stub. Generic
// definitions and interfaces are metadata-only here and are not rendered.
package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/microsoft/go-winmd/flags"

	"typeforge/pkg/errors"
	"typeforge/pkg/types"
)

// builtInElementTypes maps primitive element types to Go builtins.
var builtInElementTypes map[flags.ElementType]string = map[flags.ElementType]string{
	flags.ElementType_BOOLEAN: "bool",
	flags.ElementType_CHAR:    "rune",
	flags.ElementType_STRING:  "string",
	flags.ElementType_I1:      "int8",
	flags.ElementType_I2:      "int16",
	flags.ElementType_I4:      "int32",
	flags.ElementType_I8:      "int64",
	flags.ElementType_U1:      "uint8",
	flags.ElementType_U2:      "uint16",
	flags.ElementType_U4:      "uint32",
	flags.ElementType_U8:      "uint64",
	flags.ElementType_R4:      "float32",
	flags.ElementType_R8:      "float64",
}

// goTypeName maps an engine type to the Go type used in rendered source.
func goTypeName(t types.Type) string {
	switch t := t.(type) {
	case *types.Primitive:
		if name, found := builtInElementTypes[t.ElementType()]; found {
			return name
		}
		return "any"
	case *types.TypeDefinition:
		return goIdent(t.Name())
	default:
		// Generic parameters and instantiations have no Go rendering yet.
		return "any"
	}
}

// goIdent rewrites a dotted metadata name into a legal Go identifier.
func goIdent(name string) string {
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ReplaceAll(name, "\x60", "_")
}

// RenderType writes def into f as a struct declaration and a constructor
// stub. The definition must be finalized, non-generic, and a class kind.
func RenderType(def *types.TypeDefinition, f *jen.File) error {
	const op = "RenderType"
	if !def.Finalized() {
		return errors.NewState(op, def.Name(), "type must be finalized before rendering")
	}
	if def.Attributes().IsInterface() {
		return errors.NewUnsupported(op, def.Name(), "interfaces are not rendered")
	}
	if def.IsGeneric() {
		return errors.NewUnsupported(op, def.Name(), "generic definitions are not rendered")
	}

	name := goIdent(def.Name())
	fields := def.Fields()
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, field := range fields {
			g.Id(goIdent(field.Name())).Id(goTypeName(field.FieldType()))
		}
	})

	// One stub for the first public constructor, matching its arity.
	for _, ctor := range def.Constructors() {
		if ctor.Attributes().Access() != types.Public {
			continue
		}
		params := ctor.ParameterTypes()
		f.Func().Id("New" + name).ParamsFunc(func(g *jen.Group) {
			for i, p := range params {
				g.Id(argName(i)).Id(goTypeName(p))
			}
		}).Op("*").Id(name).BlockFunc(func(g *jen.Group) {
			g.Return().Op("&").Id(name).Block()
		})
		break
	}
	return nil
}

func argName(i int) string {
	return fmt.Sprintf("a%d", i)
}

// RenderFile renders every definition into one Go source file and returns it
// as text.
func RenderFile(pkgName string, defs ...*types.TypeDefinition) (string, error) {
	f := jen.NewFile(pkgName)
	for _, def := range defs {
		if err := RenderType(def, f); err != nil {
			return "", err
		}
	}
	var sb strings.Builder
	if err := f.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
