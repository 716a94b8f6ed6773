package types

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"typeforge/pkg/errors"
	"typeforge/pkg/il"
)

// typeState is the explicit lifecycle tag of a definition. Every mutating
// operation checks it first; the Building -> Finalized transition is one-way.
type typeState uint8

const (
	stateBuilding typeState = iota
	stateFinalized
)

// TypeDefinition is a named structural description of a type: mutable while
// Building, read-only once Finalized. It owns its member descriptors and
// holds its parent as a weak TypeID link into the owning Registry.
type TypeDefinition struct {
	reg           *Registry
	id            TypeID
	name          string
	attrs         TypeAttributes
	parent        parentRef
	genericParams []*GenericParam
	fields        []*FieldDefinition
	ctors         []*ConstructorDefinition
	state         typeState
}

// ID returns the definition's index in its registry.
func (t *TypeDefinition) ID() TypeID {
	return t.id
}

// Name returns the declared type name.
func (t *TypeDefinition) Name() string {
	return t.name
}

// Attributes returns the declared type attributes.
func (t *TypeDefinition) Attributes() TypeAttributes {
	return t.attrs
}

// Finalized reports whether the definition has left the Building state.
func (t *TypeDefinition) Finalized() bool {
	return t.state == stateFinalized
}

// IsGeneric reports whether this definition is a generic template. A generic
// definition is distinct from every closed instantiation built from it.
func (t *TypeDefinition) IsGeneric() bool {
	return len(t.genericParams) > 0
}

// GenericParameters returns the generic parameter placeholders in order.
func (t *TypeDefinition) GenericParameters() []*GenericParam {
	out := make([]*GenericParam, len(t.genericParams))
	copy(out, t.genericParams)
	return out
}

func (t *TypeDefinition) String() string {
	if !t.IsGeneric() {
		return t.name
	}
	names := make([]string, len(t.genericParams))
	for i, p := range t.genericParams {
		names[i] = p.name
	}
	return fmt.Sprintf("%s<%s>", t.name, strings.Join(names, ", "))
}

func (t *TypeDefinition) typeNode() {}

func (t *TypeDefinition) Equals(other Type) bool {
	// Definitions are unique within their registry, so pointer equality is
	// the identity.
	return t == other
}

// Parent returns the parent as a Type: a plain definition, a closed generic
// view when the parent link carries type arguments, or nil for the root and
// for interfaces.
func (t *TypeDefinition) Parent() Type {
	def := t.reg.Lookup(t.parent.id)
	if def == nil {
		return nil
	}
	if t.parent.args == nil {
		return def
	}
	return &Instantiation{def: def, args: t.parent.args}
}

// SetParent rebinds the weak parent link. The new parent may be a type
// definition or a closed generic instantiation.
func (t *TypeDefinition) SetParent(parent Type) error {
	const op = "SetParent"
	if t.Finalized() {
		return errors.NewState(op, t.name, "type is finalized")
	}
	switch p := parent.(type) {
	case *TypeDefinition:
		t.parent = parentRef{id: p.id}
	case *Instantiation:
		t.parent = parentRef{id: p.def.id, args: p.args}
	case nil:
		return errors.NewArgument(op, t.name, "parent must not be nil")
	default:
		return errors.NewArgument(op, t.name, "parent must be a type definition or a generic instantiation")
	}
	return nil
}

// DefineField declares a new field on the type.
func (t *TypeDefinition) DefineField(name string, fieldType Type, attrs MemberAttributes) (*FieldDefinition, error) {
	const op = "DefineField"
	if t.Finalized() {
		return nil, errors.NewState(op, t.name, "type is finalized")
	}
	name, err := normalizeName(op, t.name, name)
	if err != nil {
		return nil, err
	}
	if fieldType == nil {
		return nil, errors.NewArgument(op, t.name, "field type must not be nil")
	}
	if attrs&Virtual != 0 {
		return nil, errors.NewArgument(op, t.name, "fields cannot be virtual")
	}
	field := &FieldDefinition{
		name:      name,
		fieldType: fieldType,
		attrs:     attrs,
		declaring: t,
	}
	t.fields = append(t.fields, field)
	return field, nil
}

// DefineConstructor declares a new constructor with an empty body handle. The
// caller is responsible for populating the body before Finalize.
func (t *TypeDefinition) DefineConstructor(attrs MemberAttributes, conv CallingConvention, paramTypes ...Type) (*ConstructorDefinition, error) {
	const op = "DefineConstructor"
	if t.Finalized() {
		return nil, errors.NewState(op, t.name, "type is finalized")
	}
	if attrs&Static != 0 && attrs&Virtual != 0 {
		return nil, errors.NewArgument(op, t.name, "a static member can never be virtual")
	}
	for _, p := range paramTypes {
		if p == nil {
			return nil, errors.NewArgument(op, t.name, "parameter type must not be nil")
		}
	}
	params := make([]Type, len(paramTypes))
	copy(params, paramTypes)
	ctor := &ConstructorDefinition{
		attrs:     attrs,
		conv:      conv,
		params:    params,
		body:      il.NewBody(),
		declaring: t,
	}
	t.ctors = append(t.ctors, ctor)
	return ctor, nil
}

// DefineGenericParameters turns the definition into a generic template.
// Generic parameters must be established before any member that could
// reference them, so this fails once members exist.
func (t *TypeDefinition) DefineGenericParameters(names ...string) ([]*GenericParam, error) {
	return t.defineGenericParameters("DefineGenericParameters", names)
}

func (t *TypeDefinition) defineGenericParameters(op string, names []string) ([]*GenericParam, error) {
	if t.Finalized() {
		return nil, errors.NewState(op, t.name, "type is finalized")
	}
	if len(t.fields) > 0 || len(t.ctors) > 0 {
		return nil, errors.NewState(op, t.name, "generic parameters must be defined before any member")
	}
	if t.IsGeneric() {
		return nil, errors.NewState(op, t.name, "type already has generic parameters")
	}
	if len(names) == 0 {
		return nil, errors.NewArgument(op, t.name, "at least one generic parameter name is required")
	}
	params := make([]*GenericParam, len(names))
	for i, raw := range names {
		name, err := normalizeName(op, t.name, raw)
		if err != nil {
			return nil, err
		}
		for j := 0; j < i; j++ {
			if params[j].name == name {
				return nil, errors.NewArgument(op, t.name, "duplicate generic parameter name: "+name)
			}
		}
		params[i] = &GenericParam{name: name, index: i, owner: t}
	}
	t.genericParams = params
	return t.GenericParameters(), nil
}

// Finalize freezes the definition: members, parent link and generic
// parameters become immutable, constructor bodies freeze, and the type
// becomes queryable. The transition is one-way; a second call is an error.
func (t *TypeDefinition) Finalize() error {
	if t.Finalized() {
		return errors.NewState("Finalize", t.name, "type is already finalized")
	}
	for _, ctor := range t.ctors {
		ctor.body.Freeze()
	}
	t.state = stateFinalized
	return nil
}

// --- Member Queries ---
//
// Members are exposed in definition order, with attributes and parameter
// types exactly as declared.

// Fields returns the declared fields in definition order.
func (t *TypeDefinition) Fields() []*FieldDefinition {
	out := make([]*FieldDefinition, len(t.fields))
	copy(out, t.fields)
	return out
}

// Field returns the declared field with the given name, or nil.
func (t *TypeDefinition) Field(name string) *FieldDefinition {
	idx := slices.IndexFunc(t.fields, func(f *FieldDefinition) bool {
		return f.name == name
	})
	if idx < 0 {
		return nil
	}
	return t.fields[idx]
}

// Constructors returns the declared constructors in definition order.
func (t *TypeDefinition) Constructors() []*ConstructorDefinition {
	out := make([]*ConstructorDefinition, len(t.ctors))
	copy(out, t.ctors)
	return out
}

// Constructor returns the declared constructor whose parameter-type sequence
// matches exactly, or nil when no signature matches.
func (t *TypeDefinition) Constructor(paramTypes ...Type) *ConstructorDefinition {
	idx := slices.IndexFunc(t.ctors, func(c *ConstructorDefinition) bool {
		return typeListEquals(c.params, paramTypes)
	})
	if idx < 0 {
		return nil
	}
	return t.ctors[idx]
}

// parameterlessConstructor returns the first declared constructor with no
// parameters, or nil. Default-constructor synthesis resolves the parent
// through this.
func (t *TypeDefinition) parameterlessConstructor() *ConstructorDefinition {
	idx := slices.IndexFunc(t.ctors, func(c *ConstructorDefinition) bool {
		return c.IsParameterless()
	})
	if idx < 0 {
		return nil
	}
	return t.ctors[idx]
}
