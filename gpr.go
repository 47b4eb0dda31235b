// Completion: 100% - General purpose register ops complete
package vpu

// General purpose register manipulation: enough of the scalar integer
// set to drive loop counters, stack frames and data pointers around the
// vector work.

// Push pushes a 64-bit register onto the stack.
func (a *Assembler) Push(r Reg) {
	a.trace("push %s", r)
	var c insn
	if r >= R8 {
		c.put(0x41) // REX.B
	}
	c.put(0x50 + uint8(r)&7)
	a.commit(&c)
}

// Pop pops the stack into a 64-bit register.
func (a *Assembler) Pop(r Reg) {
	a.trace("pop %s", r)
	var c insn
	if r >= R8 {
		c.put(0x41)
	}
	c.put(0x58 + uint8(r)&7)
	a.commit(&c)
}

// Mov copies one 64-bit register into another.
func (a *Assembler) Mov(target, from Reg) {
	a.trace("mov %s, %s", target, from)
	a.rexRR(0x89, uint8(from), uint8(target))
}

// Mov64Load loads a 64-bit value: mov output, [input+disp].
func (a *Assembler) Mov64Load(output, input Reg, disp int32) {
	a.trace("mov %s, [%s%+d]", output, input, disp)
	a.rexRM(0x8B, uint8(output), input, disp)
}

// Mov64Store stores a 64-bit value: mov [output+disp], input.
func (a *Assembler) Mov64Store(output Reg, disp int32, input Reg) {
	a.trace("mov [%s%+d], %s", output, disp, input)
	a.rexRM(0x89, uint8(input), output, disp)
}

// Lea computes target = b + offset without touching flags or memory.
func (a *Assembler) Lea(target, b Reg, offset int32) {
	a.trace("lea %s, [%s%+d]", target, b, offset)
	a.rexRM(0x8D, uint8(target), b, offset)
}

// AddMem adds a 64-bit value from memory: add output, [input+offset].
func (a *Assembler) AddMem(output, input Reg, offset int32) {
	a.trace("add %s, [%s%+d]", output, input, offset)
	a.rexRM(0x03, uint8(output), input, offset)
}

// LoadCount loads an unsigned 32-bit counter into a register.
func (a *Assembler) LoadCount(r Reg, count uint32) {
	a.trace("mov %s, %d", r, count)
	var c insn
	rr := uint8(r)
	if rr >= 8 {
		c.put(0x41) // REX.B
	}
	c.put(0xB8 + rr&7) // mov r32, imm32 zero-extends into the full register
	c.putU32(count)
	a.commit(&c)
}

// Inc increments a 64-bit register.
func (a *Assembler) Inc(r Reg) {
	a.trace("inc %s", r)
	var c insn
	rr := uint8(r)
	c.put(0x48 | rr>>3)
	c.put(0xFF)
	c.put(0xC0 | rr&7)
	a.commit(&c)
}

// Dec decrements a 64-bit register, setting the zero flag on zero.
func (a *Assembler) Dec(r Reg) {
	a.trace("dec %s", r)
	var c insn
	rr := uint8(r)
	c.put(0x48 | rr>>3)
	c.put(0xFF)
	c.put(0xC8 | rr&7)
	a.commit(&c)
}

// Add adds a sign-extended 32-bit immediate to a register.
func (a *Assembler) Add(r Reg, immediate int32) {
	a.trace("add %s, %d", r, immediate)
	a.rexMI(0, r, immediate)
}

// Or ors a sign-extended 32-bit immediate into a register.
func (a *Assembler) Or(r Reg, immediate int32) {
	a.trace("or %s, %d", r, immediate)
	a.rexMI(1, r, immediate)
}

// Adc adds an immediate plus the carry flag.
func (a *Assembler) Adc(r Reg, immediate int32) {
	a.trace("adc %s, %d", r, immediate)
	a.rexMI(2, r, immediate)
}

// Sbb subtracts an immediate plus the borrow flag.
func (a *Assembler) Sbb(r Reg, immediate int32) {
	a.trace("sbb %s, %d", r, immediate)
	a.rexMI(3, r, immediate)
}

// And ands a sign-extended 32-bit immediate into a register.
func (a *Assembler) And(r Reg, immediate int32) {
	a.trace("and %s, %d", r, immediate)
	a.rexMI(4, r, immediate)
}

// Sub subtracts a sign-extended 32-bit immediate from a register.
func (a *Assembler) Sub(r Reg, immediate int32) {
	a.trace("sub %s, %d", r, immediate)
	a.rexMI(5, r, immediate)
}

// Xor xors a sign-extended 32-bit immediate into a register.
func (a *Assembler) Xor(r Reg, immediate int32) {
	a.trace("xor %s, %d", r, immediate)
	a.rexMI(6, r, immediate)
}

// Cmp compares a register against a sign-extended 32-bit immediate.
func (a *Assembler) Cmp(r Reg, immediate int32) {
	a.trace("cmp %s, %d", r, immediate)
	a.rexMI(7, r, immediate)
}

// SetZero clears a YMM register (vxorps r, r, r).
func (a *Assembler) SetZero(r AVXReg) {
	a.trace("vxorps %s, %s, %s", r, r, r)
	a.vexRR(ppNone, m0F, w0, l256, 0x57, uint8(r), uint8(r), uint8(r))
}

// Ret returns from the emitted function (or from a procedure body).
func (a *Assembler) Ret() {
	a.trace("ret")
	var c insn
	c.put(0xC3)
	a.commit(&c)
}
