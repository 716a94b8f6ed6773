package il

import (
	stderrors "errors"
	"strings"
	"testing"

	"typeforge/pkg/errors"
)

type fakeTarget struct {
	sig string
}

func (f *fakeTarget) Signature() string { return f.sig }

func TestEmitSequence(t *testing.T) {
	body := NewBody()
	e := NewEmitter(body)

	target := &fakeTarget{sig: "Animal::.ctor()"}
	if err := e.EmitLoadThis(); err != nil {
		t.Fatalf("EmitLoadThis failed: %v", err)
	}
	if err := e.EmitCall(target); err != nil {
		t.Fatalf("EmitCall failed: %v", err)
	}
	if err := e.EmitReturn(); err != nil {
		t.Fatalf("EmitReturn failed: %v", err)
	}

	want := []byte{byte(OpLoadThis), byte(OpCall), 0, 0, byte(OpReturn)}
	code := body.Code()
	if len(code) != len(want) {
		t.Fatalf("Expected %d code bytes, got %d", len(want), len(code))
	}
	for i := range want {
		if code[i] != want[i] {
			t.Errorf("Code byte %d: expected %d, got %d", i, want[i], code[i])
		}
	}
	if body.InstructionCount() != 3 {
		t.Errorf("Expected 3 instructions, got %d", body.InstructionCount())
	}
}

func TestTargetPoolDeduplication(t *testing.T) {
	body := NewBody()
	e := NewEmitter(body)
	target := &fakeTarget{sig: "Animal::.ctor()"}
	other := &fakeTarget{sig: "Dog::.ctor()"}

	_ = e.EmitCall(target)
	_ = e.EmitCall(target)
	_ = e.EmitCall(other)

	if len(body.Targets()) != 2 {
		t.Errorf("Expected 2 pooled targets, got %d", len(body.Targets()))
	}
	// Second call must reuse index 0.
	code := body.Code()
	if code[1] != 0 || code[2] != 0 || code[4] != 0 || code[5] != 0 {
		t.Error("Expected both calls to the same target to share pool index 0")
	}
	if code[7] != 0 || code[8] != 1 {
		t.Errorf("Expected third call to use pool index 1, got %d %d", code[7], code[8])
	}
}

func TestFrozenBodyRejectsEmission(t *testing.T) {
	body := NewBody()
	e := NewEmitter(body)
	if err := e.EmitNop(); err != nil {
		t.Fatalf("EmitNop on fresh body failed: %v", err)
	}

	body.Freeze()
	if !body.Frozen() {
		t.Fatal("Expected body to report frozen")
	}

	err := e.EmitReturn()
	if err == nil {
		t.Fatal("Expected emission into a frozen body to fail")
	}
	var se *errors.StateError
	if !stderrors.As(err, &se) {
		t.Errorf("Expected a StateError, got %T", err)
	}

	// Freeze is idempotent and the code stream is unchanged.
	body.Freeze()
	if len(body.Code()) != 1 {
		t.Errorf("Expected 1 code byte after freeze, got %d", len(body.Code()))
	}
}

func TestDisassemble(t *testing.T) {
	body := NewBody()
	e := NewEmitter(body)
	_ = e.EmitLoadThis()
	_ = e.EmitLoadArg(1)
	_ = e.EmitCall(&fakeTarget{sig: "Crate`1<int32>::.ctor()"})
	_ = e.EmitReturn()

	listing := body.Disassemble()
	for _, want := range []string{"ldthis", "ldarg 1", "call Crate`1<int32>::.ctor()", "ret"} {
		if !strings.Contains(listing, want) {
			t.Errorf("Expected disassembly to contain '%s', got:\n%s", want, listing)
		}
	}
}
