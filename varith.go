// Completion: 100% - Packed and scalar float arithmetic complete
package vpu

// Packed float/double arithmetic plus the scalar ss/sd variants.
// All follow the three-operand VEX shape: target = x <op> y, with the
// memory forms sourcing the second operand from [b+disp].

// AddPS adds packed floats: target = x + y (vaddps).
func (a *Assembler) AddPS(target, x, y AVXReg) {
	a.trace("vaddps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x58, uint8(target), uint8(x), uint8(y))
}

// AddPSMem adds packed floats from memory.
func (a *Assembler) AddPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x58, uint8(target), uint8(x), b, disp)
}

// SubPS subtracts packed floats: target = x - y (vsubps).
func (a *Assembler) SubPS(target, x, y AVXReg) {
	a.trace("vsubps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x5C, uint8(target), uint8(x), uint8(y))
}

// SubPSMem subtracts packed floats from memory.
func (a *Assembler) SubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vsubps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5C, uint8(target), uint8(x), b, disp)
}

// MulPS multiplies packed floats (vmulps).
func (a *Assembler) MulPS(target, x, y AVXReg) {
	a.trace("vmulps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x59, uint8(target), uint8(x), uint8(y))
}

// MulPSMem multiplies packed floats from memory.
func (a *Assembler) MulPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmulps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x59, uint8(target), uint8(x), b, disp)
}

// DivPS divides packed floats (vdivps).
func (a *Assembler) DivPS(target, x, y AVXReg) {
	a.trace("vdivps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x5E, uint8(target), uint8(x), uint8(y))
}

// DivPSMem divides packed floats by memory operands.
func (a *Assembler) DivPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vdivps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5E, uint8(target), uint8(x), b, disp)
}

// AddSubPS alternately subtracts and adds lanes (vaddsubps): even
// lanes x-y, odd lanes x+y.
func (a *Assembler) AddSubPS(target, x, y AVXReg) {
	a.trace("vaddsubps %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l256, 0xD0, uint8(target), uint8(x), uint8(y))
}

// AddSubPSMem is the memory form of AddSubPS.
func (a *Assembler) AddSubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddsubps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l256, 0xD0, uint8(target), uint8(x), b, disp)
}

// AddPD adds packed doubles (vaddpd).
func (a *Assembler) AddPD(target, x, y AVXReg) {
	a.trace("vaddpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x58, uint8(target), uint8(x), uint8(y))
}

// AddPDMem adds packed doubles from memory.
func (a *Assembler) AddPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x58, uint8(target), uint8(x), b, disp)
}

// SubPD subtracts packed doubles (vsubpd).
func (a *Assembler) SubPD(target, x, y AVXReg) {
	a.trace("vsubpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x5C, uint8(target), uint8(x), uint8(y))
}

// SubPDMem subtracts packed doubles from memory.
func (a *Assembler) SubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vsubpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5C, uint8(target), uint8(x), b, disp)
}

// MulPD multiplies packed doubles (vmulpd).
func (a *Assembler) MulPD(target, x, y AVXReg) {
	a.trace("vmulpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x59, uint8(target), uint8(x), uint8(y))
}

// MulPDMem multiplies packed doubles from memory.
func (a *Assembler) MulPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmulpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x59, uint8(target), uint8(x), b, disp)
}

// DivPD divides packed doubles (vdivpd).
func (a *Assembler) DivPD(target, x, y AVXReg) {
	a.trace("vdivpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x5E, uint8(target), uint8(x), uint8(y))
}

// DivPDMem divides packed doubles by memory operands.
func (a *Assembler) DivPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vdivpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5E, uint8(target), uint8(x), b, disp)
}

// AddSubPD alternately subtracts and adds double lanes (vaddsubpd).
func (a *Assembler) AddSubPD(target, x, y AVXReg) {
	a.trace("vaddsubpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xD0, uint8(target), uint8(x), uint8(y))
}

// AddSubPDMem is the memory form of AddSubPD.
func (a *Assembler) AddSubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddsubpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xD0, uint8(target), uint8(x), b, disp)
}

// AddSS adds the low float lanes (vaddss), upper lanes from x.
func (a *Assembler) AddSS(target, x, y AVXReg) {
	a.trace("vaddss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x58, uint8(target), uint8(x), uint8(y))
}

// AddSSMem adds the low float lane from memory.
func (a *Assembler) AddSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x58, uint8(target), uint8(x), b, disp)
}

// SubSS subtracts the low float lanes (vsubss).
func (a *Assembler) SubSS(target, x, y AVXReg) {
	a.trace("vsubss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x5C, uint8(target), uint8(x), uint8(y))
}

// SubSSMem subtracts the low float lane from memory.
func (a *Assembler) SubSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vsubss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x5C, uint8(target), uint8(x), b, disp)
}

// MulSS multiplies the low float lanes (vmulss).
func (a *Assembler) MulSS(target, x, y AVXReg) {
	a.trace("vmulss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x59, uint8(target), uint8(x), uint8(y))
}

// MulSSMem multiplies the low float lane from memory.
func (a *Assembler) MulSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmulss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x59, uint8(target), uint8(x), b, disp)
}

// DivSS divides the low float lanes (vdivss).
func (a *Assembler) DivSS(target, x, y AVXReg) {
	a.trace("vdivss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x5E, uint8(target), uint8(x), uint8(y))
}

// DivSSMem divides the low float lane by a memory operand.
func (a *Assembler) DivSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vdivss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x5E, uint8(target), uint8(x), b, disp)
}

// AddSD adds the low double lanes (vaddsd).
func (a *Assembler) AddSD(target, x, y AVXReg) {
	a.trace("vaddsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x58, uint8(target), uint8(x), uint8(y))
}

// AddSDMem adds the low double lane from memory.
func (a *Assembler) AddSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vaddsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x58, uint8(target), uint8(x), b, disp)
}

// SubSD subtracts the low double lanes (vsubsd).
func (a *Assembler) SubSD(target, x, y AVXReg) {
	a.trace("vsubsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x5C, uint8(target), uint8(x), uint8(y))
}

// SubSDMem subtracts the low double lane from memory.
func (a *Assembler) SubSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vsubsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x5C, uint8(target), uint8(x), b, disp)
}

// MulSD multiplies the low double lanes (vmulsd).
func (a *Assembler) MulSD(target, x, y AVXReg) {
	a.trace("vmulsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x59, uint8(target), uint8(x), uint8(y))
}

// MulSDMem multiplies the low double lane from memory.
func (a *Assembler) MulSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmulsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x59, uint8(target), uint8(x), b, disp)
}

// DivSD divides the low double lanes (vdivsd).
func (a *Assembler) DivSD(target, x, y AVXReg) {
	a.trace("vdivsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x5E, uint8(target), uint8(x), uint8(y))
}

// DivSDMem divides the low double lane by a memory operand.
func (a *Assembler) DivSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vdivsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x5E, uint8(target), uint8(x), b, disp)
}
