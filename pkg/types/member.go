package types

import (
	"strings"

	"typeforge/pkg/il"
)

// --- Member Definitions ---
//
// A member is declared on exactly one TypeDefinition and owned by it. Fields
// and constructors are distinct Go types, so a field can never carry a
// calling convention and a constructor can never carry a value type.

// FieldDefinition is the immutable descriptor of a declared field.
type FieldDefinition struct {
	name      string
	fieldType Type
	attrs     MemberAttributes
	declaring *TypeDefinition // fixed at creation
}

// Name returns the declared field name.
func (f *FieldDefinition) Name() string {
	return f.name
}

// FieldType returns the declared value type.
func (f *FieldDefinition) FieldType() Type {
	return f.fieldType
}

// Attributes returns the declared attribute flags.
func (f *FieldDefinition) Attributes() MemberAttributes {
	return f.attrs
}

// DeclaringType returns the type that owns this field.
func (f *FieldDefinition) DeclaringType() *TypeDefinition {
	return f.declaring
}

func (f *FieldDefinition) String() string {
	return f.attrs.String() + " " + f.fieldType.String() + " " + f.name
}

// ConstructorDefinition is the immutable descriptor of a declared
// constructor: attributes, calling convention, parameter types, and the
// opaque body handle populated through il.Emitter.
type ConstructorDefinition struct {
	attrs     MemberAttributes
	conv      CallingConvention
	params    []Type
	body      *il.Body
	declaring *TypeDefinition // fixed at creation
}

// Attributes returns the declared attribute flags.
func (c *ConstructorDefinition) Attributes() MemberAttributes {
	return c.attrs
}

// CallingConvention returns the declared calling convention.
func (c *ConstructorDefinition) CallingConvention() CallingConvention {
	return c.conv
}

// ParameterTypes returns the declared parameter types in order. The returned
// slice is a copy; the declaration itself never changes.
func (c *ConstructorDefinition) ParameterTypes() []Type {
	out := make([]Type, len(c.params))
	copy(out, c.params)
	return out
}

// Body returns the emitted-body handle associated with this constructor.
func (c *ConstructorDefinition) Body() *il.Body {
	return c.body
}

// DeclaringType returns the type that owns this constructor.
func (c *ConstructorDefinition) DeclaringType() *TypeDefinition {
	return c.declaring
}

// IsParameterless reports whether this is a default-shaped constructor.
func (c *ConstructorDefinition) IsParameterless() bool {
	return len(c.params) == 0
}

// Signature returns a printable identity like "Animal::.ctor(int32)". It also
// satisfies il.CallTarget so constructor bodies can invoke other
// constructors.
func (c *ConstructorDefinition) Signature() string {
	return c.declaring.Name() + "::.ctor(" + paramString(c.params) + ")"
}

func paramString(params []Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
