package types

import (
	"fmt"
	"strings"

	"typeforge/pkg/errors"
)

// GenericParam represents one unbound type parameter of a generic definition
// (e.g., the T in Crate`1). It is usable anywhere a Type is: as a field type
// or a constructor parameter type inside the owning definition's members.
type GenericParam struct {
	name  string
	index int // Position in the owner's parameter list (0-based)
	owner *TypeDefinition
}

// Name returns the parameter name.
func (p *GenericParam) Name() string {
	return p.name
}

// Index returns the parameter's position in the owner's parameter list.
func (p *GenericParam) Index() int {
	return p.index
}

// DeclaringType returns the generic definition that declared this parameter.
func (p *GenericParam) DeclaringType() *TypeDefinition {
	return p.owner
}

func (p *GenericParam) String() string {
	return p.name
}

func (p *GenericParam) typeNode() {}

func (p *GenericParam) Equals(other Type) bool {
	if o, ok := other.(*GenericParam); ok {
		// Two parameter placeholders are equal if they are the same parameter.
		return p == o
	}
	return false
}

// Instantiation represents a generic definition closed over concrete type
// arguments. It is a lightweight view: the shared definition plus a binding,
// never a stored or mutable object of its own.
type Instantiation struct {
	def  *TypeDefinition
	args []Type
}

// Definition returns the generic definition this view was built from.
func (i *Instantiation) Definition() *TypeDefinition {
	return i.def
}

// TypeArguments returns the concrete argument binding in parameter order.
func (i *Instantiation) TypeArguments() []Type {
	out := make([]Type, len(i.args))
	copy(out, i.args)
	return out
}

func (i *Instantiation) String() string {
	argStrings := make([]string, len(i.args))
	for idx, arg := range i.args {
		argStrings[idx] = arg.String()
	}
	return fmt.Sprintf("%s<%s>", i.def.name, strings.Join(argStrings, ", "))
}

func (i *Instantiation) typeNode() {}

func (i *Instantiation) Equals(other Type) bool {
	if o, ok := other.(*Instantiation); ok {
		return i.def == o.def && typeListEquals(i.args, o.args)
	}
	return false
}

// binding maps each of the definition's parameters to its bound argument.
func (i *Instantiation) binding() map[*GenericParam]Type {
	bind := make(map[*GenericParam]Type, len(i.args))
	for idx, param := range i.def.genericParams {
		bind[param] = i.args[idx]
	}
	return bind
}

// substituteType replaces generic parameter placeholders with their bound
// arguments. Instantiations substitute recursively through their own
// arguments; every other type contains no placeholders and passes through.
func substituteType(t Type, bind map[*GenericParam]Type) Type {
	switch t := t.(type) {
	case *GenericParam:
		if replacement, ok := bind[t]; ok {
			return replacement
		}
		return t
	case *Instantiation:
		newArgs := make([]Type, len(t.args))
		for i, arg := range t.args {
			newArgs[i] = substituteType(arg, bind)
		}
		return &Instantiation{def: t.def, args: newArgs}
	default:
		return t
	}
}

// ConstructorRef is a constructor declared on a generic definition, viewed
// through the binding of a closed instantiation. It reports the closed type
// as its declaring type while keeping the underlying declaration's identity
// and attributes; it carries no generic parameters of its own.
type ConstructorRef struct {
	decl  *ConstructorDefinition
	owner *Instantiation
}

// Declaration returns the underlying constructor declared on the definition.
func (c *ConstructorRef) Declaration() *ConstructorDefinition {
	return c.decl
}

// Attributes returns the declared attribute flags, identical to the
// underlying declaration's.
func (c *ConstructorRef) Attributes() MemberAttributes {
	return c.decl.attrs
}

// CallingConvention returns the underlying declaration's calling convention.
func (c *ConstructorRef) CallingConvention() CallingConvention {
	return c.decl.conv
}

// DeclaringType returns the closed instantiation this reference is bound to.
func (c *ConstructorRef) DeclaringType() Type {
	return c.owner
}

// ParameterTypes returns the parameter types with the instantiation's
// arguments substituted for the definition's generic parameters.
func (c *ConstructorRef) ParameterTypes() []Type {
	bind := c.owner.binding()
	out := make([]Type, len(c.decl.params))
	for i, p := range c.decl.params {
		out[i] = substituteType(p, bind)
	}
	return out
}

// Signature returns a printable identity like "Crate`1<int32>::.ctor()". It
// satisfies il.CallTarget.
func (c *ConstructorRef) Signature() string {
	return c.owner.String() + "::.ctor(" + paramString(c.ParameterTypes()) + ")"
}

// ResolveConstructor translates a constructor declared on a generic type
// definition into a reference usable against a closed instantiation of that
// same definition.
func ResolveConstructor(t Type, ctor *ConstructorDefinition) (*ConstructorRef, error) {
	const op = "ResolveConstructor"
	inst, ok := t.(*Instantiation)
	if !ok {
		name := ""
		if t != nil {
			name = t.String()
		}
		return nil, errors.NewArgument(op, name, "given type is not generic")
	}
	if ctor == nil {
		return nil, errors.NewArgument(op, inst.String(), "constructor must not be nil")
	}
	if ctor.declaring != inst.def {
		return nil, errors.NewArgument(op, inst.String(), "constructor's declaring type is not the generic definition of the given type")
	}
	return &ConstructorRef{decl: ctor, owner: inst}, nil
}
