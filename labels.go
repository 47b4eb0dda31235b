// Completion: 100% - Control flow resolver complete
package vpu

import (
	"fmt"
	"os"
)

// Named labels, named procedures and the backpatching that binds them.
// Jumps and calls emit a 32-bit relative displacement; when the target
// is already known the displacement is computed on the spot, otherwise
// a placeholder is written and the site queued on the symbol. Defining
// the symbol drains its queue. End refuses to finalize while any
// symbol is still undefined.

// Near conditional jump opcodes (0F-prefixed rel32 forms).
const (
	ccEq = 0x84
	ccNe = 0x85
	ccLt = 0x8C
	ccGt = 0x8F
	ccLe = 0x8E
	ccGe = 0x8D
)

func (a *Assembler) labelSym(name string) *symbol {
	s := a.labels[name]
	if s == nil {
		s = &symbol{}
		a.labels[name] = s
	}
	return s
}

func (a *Assembler) procSym(name string) *symbol {
	s := a.procs[name]
	if s == nil {
		s = &symbol{}
		a.procs[name] = s
	}
	return s
}

// define records the current offset for a symbol and patches every
// site that was waiting for it.
func (a *Assembler) define(s *symbol) {
	s.offset = uint32(a.n)
	s.defined = true
	for _, site := range s.fixups {
		a.patch32(site, int32(s.offset)-int32(site+4))
	}
	s.fixups = nil
}

// InsertLabel records the current code offset under the given name.
// Inserting the same label twice is a fatal session error.
func (a *Assembler) InsertLabel(name string) {
	if !a.emitting() {
		a.fail(CategoryState, errNotInProgress)
		return
	}
	s := a.labelSym(name)
	if s.defined {
		a.fail(CategoryResolution, fmt.Errorf("%w: %q", errDuplicateLabel, name))
		return
	}
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "%s:\n", name)
	}
	a.define(s)
}

// jccLabel emits a near conditional jump to a named label, patching
// immediately for backward references and queueing forward ones.
func (a *Assembler) jccLabel(cc byte, mnem, name string) {
	a.trace("%s %s", mnem, name)
	var c insn
	c.put(0x0F)
	c.put(cc)
	site := uint32(a.n + c.n)
	c.putU32(0)
	if !a.commit(&c) {
		return
	}
	s := a.labelSym(name)
	if s.defined {
		a.patch32(site, int32(s.offset)-int32(site+4))
	} else {
		s.fixups = append(s.fixups, site)
	}
}

// JumpEqLabel emits je to a named label.
func (a *Assembler) JumpEqLabel(name string) { a.jccLabel(ccEq, "je", name) }

// JumpNeLabel emits jne to a named label.
func (a *Assembler) JumpNeLabel(name string) { a.jccLabel(ccNe, "jne", name) }

// JumpLtLabel emits jl to a named label.
func (a *Assembler) JumpLtLabel(name string) { a.jccLabel(ccLt, "jl", name) }

// JumpGtLabel emits jg to a named label.
func (a *Assembler) JumpGtLabel(name string) { a.jccLabel(ccGt, "jg", name) }

// JumpLeLabel emits jle to a named label.
func (a *Assembler) JumpLeLabel(name string) { a.jccLabel(ccLe, "jle", name) }

// JumpGeLabel emits jge to a named label.
func (a *Assembler) JumpGeLabel(name string) { a.jccLabel(ccGe, "jge", name) }

// jccTo emits a near conditional jump to an absolute offset within the
// current code buffer.
func (a *Assembler) jccTo(cc byte, mnem string, location uint32) {
	a.trace("%s .%+d", mnem, int32(location)-int32(a.n))
	disp := int32(location) - int32(uint32(a.n)+6)
	var c insn
	c.put(0x0F)
	c.put(cc)
	c.putU32(uint32(disp))
	a.commit(&c)
}

// JumpEqTo emits je to an absolute code offset.
func (a *Assembler) JumpEqTo(location uint32) { a.jccTo(ccEq, "je", location) }

// JumpNeTo emits jne to an absolute code offset.
func (a *Assembler) JumpNeTo(location uint32) { a.jccTo(ccNe, "jne", location) }

// JumpLtTo emits jl to an absolute code offset.
func (a *Assembler) JumpLtTo(location uint32) { a.jccTo(ccLt, "jl", location) }

// JumpGtTo emits jg to an absolute code offset.
func (a *Assembler) JumpGtTo(location uint32) { a.jccTo(ccGt, "jg", location) }

// JumpLeTo emits jle to an absolute code offset.
func (a *Assembler) JumpLeTo(location uint32) { a.jccTo(ccLe, "jle", location) }

// JumpGeTo emits jge to an absolute code offset.
func (a *Assembler) JumpGeTo(location uint32) { a.jccTo(ccGe, "jge", location) }

// jcc emits a near conditional jump with the caller-supplied relative
// displacement written as-is. The caller is trusted to have accounted
// for the six bytes of the jump itself.
func (a *Assembler) jcc(cc byte, mnem string, offset int32) {
	a.trace("%s %d", mnem, offset)
	var c insn
	c.put(0x0F)
	c.put(cc)
	c.putU32(uint32(offset))
	a.commit(&c)
}

// JumpEq emits je with a raw rel32 displacement.
func (a *Assembler) JumpEq(offset int32) { a.jcc(ccEq, "je", offset) }

// JumpNe emits jne with a raw rel32 displacement.
func (a *Assembler) JumpNe(offset int32) { a.jcc(ccNe, "jne", offset) }

// JumpLt emits jl with a raw rel32 displacement.
func (a *Assembler) JumpLt(offset int32) { a.jcc(ccLt, "jl", offset) }

// JumpGt emits jg with a raw rel32 displacement.
func (a *Assembler) JumpGt(offset int32) { a.jcc(ccGt, "jg", offset) }

// JumpLe emits jle with a raw rel32 displacement.
func (a *Assembler) JumpLe(offset int32) { a.jcc(ccLe, "jle", offset) }

// JumpGe emits jge with a raw rel32 displacement.
func (a *Assembler) JumpGe(offset int32) { a.jcc(ccGe, "jge", offset) }

// Procedure marks the current offset as the entry of a named procedure.
// Procedures may be defined after their first CallProcedure; the call
// sites accumulate until then. A procedure body ends with Ret.
func (a *Assembler) Procedure(name string) {
	if !a.emitting() {
		a.fail(CategoryState, errNotInProgress)
		return
	}
	s := a.procSym(name)
	if s.defined {
		a.fail(CategoryResolution, fmt.Errorf("%w: %q", errDuplicateProc, name))
		return
	}
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "%s:\n", name)
	}
	a.define(s)
}

// CallProcedure emits a near call (E8 rel32) to a named procedure.
func (a *Assembler) CallProcedure(name string) {
	a.trace("call %s", name)
	var c insn
	c.put(0xE8)
	site := uint32(a.n + c.n)
	c.putU32(0)
	if !a.commit(&c) {
		return
	}
	s := a.procSym(name)
	if s.defined {
		a.patch32(site, int32(s.offset)-int32(site+4))
	} else {
		s.fixups = append(s.fixups, site)
	}
}

// ProcedureOffset returns the code offset of a defined procedure.
func (a *Assembler) ProcedureOffset(name string) (uint32, bool) {
	s := a.procs[name]
	if s == nil || !s.defined {
		return 0, false
	}
	return s.offset, true
}

// LabelOffset returns the code offset of an inserted label.
func (a *Assembler) LabelOffset(name string) (uint32, bool) {
	s := a.labels[name]
	if s == nil || !s.defined {
		return 0, false
	}
	return s.offset, true
}
