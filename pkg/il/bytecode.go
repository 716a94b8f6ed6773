package il

import (
	"fmt"
	"strings"

	"typeforge/pkg/errors"
)

// OpCode defines the type for constructor-body instructions.
type OpCode uint8

// Enum for Opcodes (Stack Machine)
const (
	// Format: OpCode <Operand1> <Operand2> ...

	OpNop      OpCode = 0 // No operation.
	OpLoadThis OpCode = 1 // Push the receiver onto the stack.
	OpLoadArg  OpCode = 2 // ArgIdx: Push argument ArgIdx onto the stack.
	OpCall     OpCode = 3 // TargetIdx(16bit): Invoke Targets[TargetIdx], consuming the receiver and arguments.
	OpReturn   OpCode = 4 // Return to the caller.
)

func (op OpCode) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpLoadThis:
		return "ldthis"
	case OpLoadArg:
		return "ldarg"
	case OpCall:
		return "call"
	case OpReturn:
		return "ret"
	default:
		return fmt.Sprintf("op(%d)", byte(op))
	}
}

// CallTarget identifies a constructor invoked by OpCall. Both declared
// constructors and constructor references resolved against a closed generic
// type satisfy it.
type CallTarget interface {
	// Signature returns a printable identity for the target, used by the
	// disassembler and by target-pool deduplication messages.
	Signature() string
}

// Body is the opaque handle handed back for every declared constructor. It
// accumulates instructions and a pool of call targets until the declaring
// type finalizes, at which point it freezes alongside the member list.
type Body struct {
	code    []byte
	targets []CallTarget
	frozen  bool
}

// NewBody returns an empty, writable body.
func NewBody() *Body {
	return &Body{}
}

// Code returns the raw instruction stream. Callers must not mutate it.
func (b *Body) Code() []byte {
	return b.code
}

// Targets returns the call-target pool indexed by OpCall operands.
func (b *Body) Targets() []CallTarget {
	return b.targets
}

// Frozen reports whether the body can still be written to.
func (b *Body) Frozen() bool {
	return b.frozen
}

// Freeze makes the body read-only. It is called when the declaring type
// finalizes; freezing twice is harmless.
func (b *Body) Freeze() {
	b.frozen = true
}

func (b *Body) writeOpCode(op OpCode) {
	b.code = append(b.code, byte(op))
}

func (b *Body) writeByte(v byte) {
	b.code = append(b.code, v)
}

func (b *Body) writeUint16(v uint16) {
	b.code = append(b.code, byte(v>>8), byte(v&0xff))
}

// addTarget returns the pool index for target, reusing an existing entry when
// the same target identity was emitted before.
func (b *Body) addTarget(target CallTarget) uint16 {
	for i, t := range b.targets {
		if t == target {
			return uint16(i)
		}
	}
	b.targets = append(b.targets, target)
	return uint16(len(b.targets) - 1)
}

// InstructionCount walks the stream and counts decoded instructions.
func (b *Body) InstructionCount() int {
	count := 0
	for offset := 0; offset < len(b.code); {
		offset += instructionWidth(OpCode(b.code[offset]))
		count++
	}
	return count
}

// Disassemble returns a human-readable listing of the body, one instruction
// per line, in the format "0003 call <target>".
func (b *Body) Disassemble() string {
	var sb strings.Builder
	for offset := 0; offset < len(b.code); {
		offset = b.disassembleInstruction(&sb, offset)
	}
	return sb.String()
}

func (b *Body) disassembleInstruction(sb *strings.Builder, offset int) int {
	op := OpCode(b.code[offset])
	fmt.Fprintf(sb, "%04d %s", offset, op)
	switch op {
	case OpLoadArg:
		fmt.Fprintf(sb, " %d", b.code[offset+1])
	case OpCall:
		idx := uint16(b.code[offset+1])<<8 | uint16(b.code[offset+2])
		if int(idx) < len(b.targets) {
			fmt.Fprintf(sb, " %s", b.targets[idx].Signature())
		} else {
			fmt.Fprintf(sb, " <bad target %d>", idx)
		}
	}
	sb.WriteByte('\n')
	return offset + instructionWidth(op)
}

func instructionWidth(op OpCode) int {
	switch op {
	case OpLoadArg:
		return 2
	case OpCall:
		return 3
	default:
		return 1
	}
}

func (b *Body) checkWritable(op string) error {
	if b.frozen {
		return errors.NewState(op, "", "body is frozen; the declaring type already finalized")
	}
	return nil
}
