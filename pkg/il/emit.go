package il

// --- Instruction Emission Helpers ---

// Emitter writes instructions into a Body. It is the interface callers obtain
// from a declared constructor's body handle to populate it before the
// enclosing type finalizes.
type Emitter struct {
	body *Body
}

// NewEmitter returns an emitter over b.
func NewEmitter(b *Body) *Emitter {
	return &Emitter{body: b}
}

func (e *Emitter) EmitNop() error {
	if err := e.body.checkWritable("EmitNop"); err != nil {
		return err
	}
	e.body.writeOpCode(OpNop)
	return nil
}

func (e *Emitter) EmitLoadThis() error {
	if err := e.body.checkWritable("EmitLoadThis"); err != nil {
		return err
	}
	e.body.writeOpCode(OpLoadThis)
	return nil
}

func (e *Emitter) EmitLoadArg(index uint8) error {
	if err := e.body.checkWritable("EmitLoadArg"); err != nil {
		return err
	}
	e.body.writeOpCode(OpLoadArg)
	e.body.writeByte(index)
	return nil
}

// EmitCall emits an invocation of target, interning it in the body's
// call-target pool.
func (e *Emitter) EmitCall(target CallTarget) error {
	if err := e.body.checkWritable("EmitCall"); err != nil {
		return err
	}
	idx := e.body.addTarget(target)
	e.body.writeOpCode(OpCall)
	e.body.writeUint16(idx)
	return nil
}

func (e *Emitter) EmitReturn() error {
	if err := e.body.checkWritable("EmitReturn"); err != nil {
		return err
	}
	e.body.writeOpCode(OpReturn)
	return nil
}
