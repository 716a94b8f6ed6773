package types

import (
	"typeforge/pkg/errors"
	"typeforge/pkg/il"
)

// TypeID indexes a type definition inside its Registry. Parent links are
// stored as TypeIDs rather than pointers, so a definition's lifetime is
// independent of how many children name it as parent and arbitrarily deep
// chains carry no ownership cycles.
type TypeID int

// nilType marks the absence of a parent (the root type, interfaces).
const nilType TypeID = -1

// parentRef is the weak parent link: a registry index plus, when the parent
// is a closed generic, the type-argument binding.
type parentRef struct {
	id   TypeID
	args []Type // nil for a non-generic parent
}

// Registry is the arena owning every TypeDefinition of one type graph. A
// registry and the definitions inside it are not safe for concurrent
// mutation; independent graphs want independent registries.
type Registry struct {
	defs []*TypeDefinition
}

// NewRegistry returns a registry seeded with the implicit root type at ID 0.
// The root is finalized and exposes a public parameterless constructor, so
// types that never call SetParent always have an accessible constructor to
// chain to.
func NewRegistry() *Registry {
	r := &Registry{}
	root := &TypeDefinition{
		reg:    r,
		id:     0,
		name:   "Object",
		attrs:  TypePublic,
		parent: parentRef{id: nilType},
		state:  stateFinalized,
	}
	rootCtor := &ConstructorDefinition{
		attrs:     Public | HideBySig | SpecialName | RTSpecialName,
		conv:      Standard | HasThis,
		body:      il.NewBody(),
		declaring: root,
	}
	emitter := il.NewEmitter(rootCtor.body)
	_ = emitter.EmitReturn()
	rootCtor.body.Freeze()
	root.ctors = append(root.ctors, rootCtor)
	r.defs = append(r.defs, root)
	return r
}

// Root returns the implicit root type.
func (r *Registry) Root() *TypeDefinition {
	return r.defs[0]
}

// Lookup resolves a TypeID, returning nil for nilType or an unknown ID.
func (r *Registry) Lookup(id TypeID) *TypeDefinition {
	if id < 0 || int(id) >= len(r.defs) {
		return nil
	}
	return r.defs[id]
}

// NewType starts a new mutable type definition. Class kinds parent to the
// root until SetParent rebinds them; interfaces have no parent.
func (r *Registry) NewType(name string, attrs TypeAttributes) (*TypeDefinition, error) {
	name, err := normalizeName("NewType", "", name)
	if err != nil {
		return nil, err
	}
	parent := parentRef{id: 0}
	if attrs.IsInterface() {
		parent = parentRef{id: nilType}
	}
	def := &TypeDefinition{
		reg:    r,
		id:     TypeID(len(r.defs)),
		name:   name,
		attrs:  attrs,
		parent: parent,
		state:  stateBuilding,
	}
	r.defs = append(r.defs, def)
	return def, nil
}

// ImportType registers an externally defined type so it can serve as a
// parent: the definition arrives already finalized, with the given generic
// parameters and a public parameterless constructor. Members beyond that
// constructor are not modeled; resolution only ever needs the constructor.
func (r *Registry) ImportType(name string, attrs TypeAttributes, genericNames ...string) (*TypeDefinition, error) {
	const op = "ImportType"
	name, err := normalizeName(op, "", name)
	if err != nil {
		return nil, err
	}
	parent := parentRef{id: 0}
	if attrs.IsInterface() {
		parent = parentRef{id: nilType}
	}
	def := &TypeDefinition{
		reg:    r,
		id:     TypeID(len(r.defs)),
		name:   name,
		attrs:  attrs,
		parent: parent,
		state:  stateBuilding,
	}
	if len(genericNames) > 0 {
		if _, err := def.defineGenericParameters(op, genericNames); err != nil {
			return nil, err
		}
	}
	if !attrs.IsInterface() {
		ctor := &ConstructorDefinition{
			attrs:     Public | HideBySig | SpecialName | RTSpecialName,
			conv:      Standard | HasThis,
			body:      il.NewBody(),
			declaring: def,
		}
		emitter := il.NewEmitter(ctor.body)
		if err := emitter.EmitReturn(); err != nil {
			return nil, err
		}
		def.ctors = append(def.ctors, ctor)
	}
	if err := def.Finalize(); err != nil {
		return nil, err
	}
	r.defs = append(r.defs, def)
	return def, nil
}

// Instantiate builds the closed-generic view of def bound to args. The view
// is transient: nothing is stored in the registry and the definition is never
// mutated to represent an instantiation.
func (r *Registry) Instantiate(def *TypeDefinition, args ...Type) (*Instantiation, error) {
	const op = "Instantiate"
	if def == nil {
		return nil, errors.NewArgument(op, "", "type definition must not be nil")
	}
	if !def.IsGeneric() {
		return nil, errors.NewArgument(op, def.name, "type is not a generic definition")
	}
	if len(args) != len(def.genericParams) {
		return nil, errors.NewArgument(op, def.name, "wrong number of type arguments")
	}
	for _, arg := range args {
		if arg == nil {
			return nil, errors.NewArgument(op, def.name, "type argument must not be nil")
		}
	}
	bound := make([]Type, len(args))
	copy(bound, args)
	return &Instantiation{def: def, args: bound}, nil
}
