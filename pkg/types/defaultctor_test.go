package types

import (
	"strings"
	"testing"
)

func TestDefaultConstructorChainsToRoot(t *testing.T) {
	reg := NewRegistry()
	def := mustNewType(t, reg, "Animal", TypePublic)

	before := len(def.Constructors())
	ctor, err := def.DefineDefaultConstructor(Public)
	if err != nil {
		t.Fatalf("DefineDefaultConstructor failed: %v", err)
	}
	if len(def.Constructors()) != before+1 {
		t.Errorf("Expected exactly one more constructor, got %d -> %d", before, len(def.Constructors()))
	}
	if !ctor.IsParameterless() {
		t.Error("Expected the synthesized constructor to be parameterless")
	}
	if ctor.Attributes() != Public {
		t.Errorf("Expected attributes to equal the requested Public, got %s", ctor.Attributes())
	}
	if ctor.DeclaringType() != def {
		t.Error("Expected declaring type to be the target type")
	}

	listing := ctor.Body().Disassemble()
	for _, want := range []string{"ldthis", "call Object::.ctor()", "ret"} {
		if !strings.Contains(listing, want) {
			t.Errorf("Expected body to contain '%s', got:\n%s", want, listing)
		}
	}
	if ctor.Body().InstructionCount() != 3 {
		t.Errorf("Expected the fixed chaining sequence, got %d instructions", ctor.Body().InstructionCount())
	}
}

func TestDefaultConstructorOnInterface(t *testing.T) {
	reg := NewRegistry()
	iface := mustNewType(t, reg, "Feedable", TypePublic|TypeInterface)

	for _, attrs := range []MemberAttributes{Public, Private, Static | Virtual} {
		_, err := iface.DefineDefaultConstructor(attrs)
		expectKind(t, err, "Unsupported")
	}
	if len(iface.Constructors()) != 0 {
		t.Error("Expected no constructor to be attached on failure")
	}
}

func TestDefaultConstructorStaticVirtual(t *testing.T) {
	reg := NewRegistry()

	// Fails for every class target, whatever the parent state.
	plain := mustNewType(t, reg, "Plain", TypePublic)
	_, err := plain.DefineDefaultConstructor(Public | Static | Virtual)
	expectKind(t, err, "Argument")

	parent := mustNewType(t, reg, "Parent", TypePublic)
	child := mustNewType(t, reg, "Child", TypePublic)
	if err := child.SetParent(parent); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	_, err = child.DefineDefaultConstructor(Static | Virtual)
	expectKind(t, err, "Argument")

	if len(plain.Constructors()) != 0 || len(child.Constructors()) != 0 {
		t.Error("Expected no constructor to be attached on failure")
	}
}

func TestDefaultConstructorRequiresFinalizedParent(t *testing.T) {
	reg := NewRegistry()
	parent := mustNewType(t, reg, "Animal", TypePublic)
	child := mustNewType(t, reg, "Dog", TypePublic)
	if err := child.SetParent(parent); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}

	_, err := child.DefineDefaultConstructor(Public)
	expectKind(t, err, "Unsupported")
	if len(child.Constructors()) != 0 {
		t.Error("Expected no constructor to be attached on failure")
	}

	// Give the parent an accessible parameterless constructor and finalize;
	// the same call now succeeds.
	if _, err := parent.DefineDefaultConstructor(Public); err != nil {
		t.Fatalf("parent DefineDefaultConstructor failed: %v", err)
	}
	if err := parent.Finalize(); err != nil {
		t.Fatalf("parent Finalize failed: %v", err)
	}
	ctor, err := child.DefineDefaultConstructor(Public)
	if err != nil {
		t.Fatalf("DefineDefaultConstructor after parent finalize failed: %v", err)
	}
	if !strings.Contains(ctor.Body().Disassemble(), "call Animal::.ctor()") {
		t.Error("Expected the body to chain to the parent constructor")
	}
}

func TestDefaultConstructorParentWithoutParameterlessCtor(t *testing.T) {
	reg := NewRegistry()
	parent := mustNewType(t, reg, "Animal", TypePublic)
	if _, err := parent.DefineConstructor(Public, Standard|HasThis, Int32); err != nil {
		t.Fatalf("DefineConstructor failed: %v", err)
	}
	if err := parent.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	child := mustNewType(t, reg, "Dog", TypePublic)
	if err := child.SetParent(parent); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	_, err := child.DefineDefaultConstructor(Public)
	expectKind(t, err, "Unsupported")
}

func TestDefaultConstructorParentAccessibility(t *testing.T) {
	reg := NewRegistry()

	blocked := []MemberAttributes{Private, PrivateScope}
	for _, access := range blocked {
		parent := mustNewType(t, reg, "Blocked"+access.String(), TypePublic)
		if _, err := parent.DefineConstructor(access, Standard|HasThis); err != nil {
			t.Fatalf("DefineConstructor failed: %v", err)
		}
		if err := parent.Finalize(); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		child := mustNewType(t, reg, "ChildOf"+access.String(), TypePublic)
		if err := child.SetParent(parent); err != nil {
			t.Fatalf("SetParent failed: %v", err)
		}
		_, err := child.DefineDefaultConstructor(Public)
		expectKind(t, err, "Unsupported")
	}

	allowed := []MemberAttributes{Public, Family, FamOrAssem, Assembly}
	for _, access := range allowed {
		parent := mustNewType(t, reg, "Open"+access.String(), TypePublic)
		if _, err := parent.DefineConstructor(access, Standard|HasThis); err != nil {
			t.Fatalf("DefineConstructor failed: %v", err)
		}
		if err := parent.Finalize(); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		child := mustNewType(t, reg, "ChildOf"+access.String(), TypePublic)
		if err := child.SetParent(parent); err != nil {
			t.Fatalf("SetParent failed: %v", err)
		}
		if _, err := child.DefineDefaultConstructor(Public); err != nil {
			t.Errorf("Expected synthesis to succeed with %s parent constructor, got %v", access, err)
		}
	}
}

func TestDefaultConstructorGenericParent(t *testing.T) {
	reg := NewRegistry()

	crate := mustNewType(t, reg, "Crate\x601", TypePublic)
	params, err := crate.DefineGenericParameters("T")
	if err != nil {
		t.Fatalf("DefineGenericParameters failed: %v", err)
	}
	if _, err := crate.DefineField("item", params[0], Public); err != nil {
		t.Fatalf("DefineField failed: %v", err)
	}
	if _, err := crate.DefineDefaultConstructor(Public); err != nil {
		t.Fatalf("crate DefineDefaultConstructor failed: %v", err)
	}
	if err := crate.Finalize(); err != nil {
		t.Fatalf("crate Finalize failed: %v", err)
	}

	crateOfInts, err := reg.Instantiate(crate, Int32)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}
	shelf := mustNewType(t, reg, "Shelf", TypePublic)
	if err := shelf.SetParent(crateOfInts); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	ctor, err := shelf.DefineDefaultConstructor(Public)
	if err != nil {
		t.Fatalf("DefineDefaultConstructor with generic parent failed: %v", err)
	}
	if !strings.Contains(ctor.Body().Disassemble(), "call Crate\x601<int32>::.ctor()") {
		t.Errorf("Expected the body to chain to the closed parent constructor, got:\n%s", ctor.Body().Disassemble())
	}
}

func TestDefaultConstructorImportedGenericParent(t *testing.T) {
	reg := NewRegistry()

	box, err := reg.ImportType("Box\x601", TypePublic, "T")
	if err != nil {
		t.Fatalf("ImportType failed: %v", err)
	}
	if !box.Finalized() {
		t.Fatal("Expected imported types to arrive finalized")
	}

	boxOfStrings, err := reg.Instantiate(box, String)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}
	pallet := mustNewType(t, reg, "Pallet", TypePublic)
	if err := pallet.SetParent(boxOfStrings); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	ctor, err := pallet.DefineDefaultConstructor(Public)
	if err != nil {
		t.Fatalf("DefineDefaultConstructor with imported parent failed: %v", err)
	}
	if !strings.Contains(ctor.Body().Disassemble(), "Box\x601<string>::.ctor()") {
		t.Errorf("Expected the body to chain through the imported container, got:\n%s", ctor.Body().Disassemble())
	}
}
