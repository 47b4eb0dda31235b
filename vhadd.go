// Completion: 100% - Horizontal ops and dot products complete
package vpu

// Horizontal adds/subtracts and the dot product instructions. All the
// 256-bit horizontal forms work within each 128-bit lane, the usual
// AVX surprise.

// HAddPS horizontally adds adjacent float pairs (vhaddps).
func (a *Assembler) HAddPS(target, x, y AVXReg) {
	a.trace("vhaddps %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l256, 0x7C, uint8(target), uint8(x), uint8(y))
}

// HAddPSMem is the memory form of HAddPS.
func (a *Assembler) HAddPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vhaddps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l256, 0x7C, uint8(target), uint8(x), b, disp)
}

// HSubPS horizontally subtracts adjacent float pairs (vhsubps).
func (a *Assembler) HSubPS(target, x, y AVXReg) {
	a.trace("vhsubps %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l256, 0x7D, uint8(target), uint8(x), uint8(y))
}

// HSubPSMem is the memory form of HSubPS.
func (a *Assembler) HSubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vhsubps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l256, 0x7D, uint8(target), uint8(x), b, disp)
}

// HAddPD horizontally adds adjacent double pairs (vhaddpd).
func (a *Assembler) HAddPD(target, x, y AVXReg) {
	a.trace("vhaddpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x7C, uint8(target), uint8(x), uint8(y))
}

// HAddPDMem is the memory form of HAddPD.
func (a *Assembler) HAddPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vhaddpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x7C, uint8(target), uint8(x), b, disp)
}

// HSubPD horizontally subtracts adjacent double pairs (vhsubpd).
func (a *Assembler) HSubPD(target, x, y AVXReg) {
	a.trace("vhsubpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x7D, uint8(target), uint8(x), uint8(y))
}

// HSubPDMem is the memory form of HSubPD.
func (a *Assembler) HSubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vhsubpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x7D, uint8(target), uint8(x), b, disp)
}

// HAddI16 horizontally adds adjacent signed words (vphaddw).
func (a *Assembler) HAddI16(target, x, y AVXReg) {
	a.trace("vphaddw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x01, uint8(target), uint8(x), uint8(y))
}

// HAddI16Mem is the memory form of HAddI16.
func (a *Assembler) HAddI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphaddw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x01, uint8(target), uint8(x), b, disp)
}

// HAddI32 horizontally adds adjacent signed dwords (vphaddd).
func (a *Assembler) HAddI32(target, x, y AVXReg) {
	a.trace("vphaddd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x02, uint8(target), uint8(x), uint8(y))
}

// HAddI32Mem is the memory form of HAddI32.
func (a *Assembler) HAddI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphaddd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x02, uint8(target), uint8(x), b, disp)
}

// HAddSI16 horizontally adds adjacent words with saturation (vphaddsw).
func (a *Assembler) HAddSI16(target, x, y AVXReg) {
	a.trace("vphaddsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x03, uint8(target), uint8(x), uint8(y))
}

// HAddSI16Mem is the memory form of HAddSI16.
func (a *Assembler) HAddSI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphaddsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x03, uint8(target), uint8(x), b, disp)
}

// HSubI16 horizontally subtracts adjacent signed words (vphsubw).
func (a *Assembler) HSubI16(target, x, y AVXReg) {
	a.trace("vphsubw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x05, uint8(target), uint8(x), uint8(y))
}

// HSubI16Mem is the memory form of HSubI16.
func (a *Assembler) HSubI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphsubw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x05, uint8(target), uint8(x), b, disp)
}

// HSubI32 horizontally subtracts adjacent signed dwords (vphsubd).
func (a *Assembler) HSubI32(target, x, y AVXReg) {
	a.trace("vphsubd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x06, uint8(target), uint8(x), uint8(y))
}

// HSubI32Mem is the memory form of HSubI32.
func (a *Assembler) HSubI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphsubd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x06, uint8(target), uint8(x), b, disp)
}

// HSubSI16 horizontally subtracts adjacent words with saturation
// (vphsubsw).
func (a *Assembler) HSubSI16(target, x, y AVXReg) {
	a.trace("vphsubsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x07, uint8(target), uint8(x), uint8(y))
}

// HSubSI16Mem is the memory form of HSubSI16.
func (a *Assembler) HSubSI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vphsubsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x07, uint8(target), uint8(x), b, disp)
}

// DpPS computes a masked dot product per 128-bit lane (vdpps).
func (a *Assembler) DpPS(target, x, y AVXReg, mask uint8) {
	a.trace("vdpps %s, %s, %s, %#x", target, x, y, mask)
	a.vexRR(pp66, m0F3A, w0, l256, 0x40, uint8(target), uint8(x), uint8(y), mask)
}

// DpPSMem is the memory form of DpPS.
func (a *Assembler) DpPSMem(target, x AVXReg, b Reg, disp int32, mask uint8) bool {
	a.trace("vdpps %s, %s, [%s%+d], %#x", target, x, b, disp, mask)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x40, uint8(target), uint8(x), b, disp, mask)
}

// DpPD would be the 256-bit double dot product. The Intel manual lists
// the opcode, but the VEX.256 form is verified absent (#UD per the SDM,
// and disassemblers mark it as garbage), so this records an Operand
// error and emits nothing rather than silently re-routing to the
// 128-bit form.
func (a *Assembler) DpPD(target, x, y AVXReg, mask uint8) {
	if !a.emitting() {
		a.fail(CategoryState, errNotInProgress)
		return
	}
	a.fail(CategoryOperand, errInvalidOpcode)
}

// DpPDMem is the memory form of DpPD; it always refuses for the same
// reason and leaves the buffer and session unchanged.
func (a *Assembler) DpPDMem(target, x AVXReg, b Reg, disp int32, mask uint8) bool {
	return false
}
