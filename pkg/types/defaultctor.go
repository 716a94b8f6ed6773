package types

import (
	"typeforge/pkg/errors"
	"typeforge/pkg/il"
)

// DefineDefaultConstructor synthesizes a parameterless constructor whose body
// chains to the parent's own parameterless constructor: load the receiver,
// call the parent constructor, return.
//
// Validation runs in full before the member is attached; on any failure the
// type is left unmodified. The check order is load-bearing: structural-kind
// and attribute errors fire before any inspection of the parent.
func (t *TypeDefinition) DefineDefaultConstructor(attrs MemberAttributes) (*ConstructorDefinition, error) {
	const op = "DefineDefaultConstructor"

	if t.attrs.IsInterface() {
		return nil, errors.NewUnsupported(op, t.name, "interfaces cannot have instance constructors")
	}
	if attrs&Static != 0 && attrs&Virtual != 0 {
		return nil, errors.NewArgument(op, t.name, "a static member can never be virtual")
	}
	if t.Finalized() {
		return nil, errors.NewState(op, t.name, "type is finalized")
	}

	parent := t.reg.Lookup(t.parent.id)
	if parent == nil {
		// Only the root itself has no parent, and the root is always finalized.
		return nil, errors.NewUnsupported(op, t.name, "type has no parent to chain to")
	}
	if !parent.Finalized() {
		return nil, errors.NewUnsupported(op, t.name, "parent must be finalized before a dependent default constructor can be synthesized")
	}

	parentCtor := parent.parameterlessConstructor()
	if parentCtor == nil {
		return nil, errors.NewUnsupported(op, t.name, "parent exposes no parameterless constructor")
	}
	if !parentCtor.Attributes().AccessibleToSubclass() {
		return nil, errors.NewUnsupported(op, t.name, "parent's parameterless constructor is not accessible to derived types")
	}

	// When the parent link carries type arguments, the call target is the
	// constructor resolved through that binding, not the open declaration.
	var target il.CallTarget = parentCtor
	if t.parent.args != nil {
		parentInst := &Instantiation{def: parent, args: t.parent.args}
		ref, err := ResolveConstructor(parentInst, parentCtor)
		if err != nil {
			return nil, err
		}
		target = ref
	}

	ctor := &ConstructorDefinition{
		attrs:     attrs,
		conv:      Standard | HasThis,
		body:      il.NewBody(),
		declaring: t,
	}
	emitter := il.NewEmitter(ctor.body)
	if err := emitter.EmitLoadThis(); err != nil {
		return nil, err
	}
	if err := emitter.EmitCall(target); err != nil {
		return nil, err
	}
	if err := emitter.EmitReturn(); err != nil {
		return nil, err
	}

	t.ctors = append(t.ctors, ctor)
	return ctor, nil
}
