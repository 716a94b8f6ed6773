package types

import (
	"github.com/microsoft/go-winmd/flags"
)

// --- Primitive Types ---

// Primitive represents a fundamental, non-composite type. Each primitive is
// tagged with its ECMA-335 element type so downstream consumers (rendering,
// signature encoding) can key off the standard vocabulary.
type Primitive struct {
	name    string
	element flags.ElementType
}

func (p *Primitive) String() string {
	return p.name
}

func (p *Primitive) typeNode() {}

func (p *Primitive) Equals(other Type) bool {
	// Primitives are singletons, so pointer equality is sufficient.
	return p == other
}

// ElementType returns the ECMA-335 element type backing this primitive.
func (p *Primitive) ElementType() flags.ElementType {
	return p.element
}

// Pre-defined instances for the primitive types the engine understands.
var (
	Boolean = &Primitive{name: "bool", element: flags.ElementType_BOOLEAN}
	Char    = &Primitive{name: "char", element: flags.ElementType_CHAR}
	String  = &Primitive{name: "string", element: flags.ElementType_STRING}
	Int8    = &Primitive{name: "int8", element: flags.ElementType_I1}
	Int16   = &Primitive{name: "int16", element: flags.ElementType_I2}
	Int32   = &Primitive{name: "int32", element: flags.ElementType_I4}
	Int64   = &Primitive{name: "int64", element: flags.ElementType_I8}
	UInt8   = &Primitive{name: "uint8", element: flags.ElementType_U1}
	UInt16  = &Primitive{name: "uint16", element: flags.ElementType_U2}
	UInt32  = &Primitive{name: "uint32", element: flags.ElementType_U4}
	UInt64  = &Primitive{name: "uint64", element: flags.ElementType_U8}
	Float32 = &Primitive{name: "float32", element: flags.ElementType_R4}
	Float64 = &Primitive{name: "float64", element: flags.ElementType_R8}
)
