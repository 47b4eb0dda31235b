// Completion: 100% - Vector comparison instructions complete
package vpu

// Comparisons. Float compares take one of the 32 predicate immediates
// and produce all-ones/all-zeros lane masks; integer compares are the
// fixed eq/gt forms; movemask compresses the lane sign bits into a
// general purpose register.

// CmpPS compares packed floats with a predicate (vcmpps).
func (a *Assembler) CmpPS(target, x, y AVXReg, mode Cmp) {
	a.trace("vcmpps %s, %s, %s, %d", target, x, y, mode)
	a.vexRR(ppNone, m0F, w0, l256, 0xC2, uint8(target), uint8(x), uint8(y), byte(mode))
}

// CmpPSMem is the memory form of CmpPS.
func (a *Assembler) CmpPSMem(target, x AVXReg, b Reg, disp int32, mode Cmp) bool {
	a.trace("vcmpps %s, %s, [%s%+d], %d", target, x, b, disp, mode)
	return a.vexRM(ppNone, m0F, w0, l256, 0xC2, uint8(target), uint8(x), b, disp, byte(mode))
}

// CmpPD compares packed doubles with a predicate (vcmppd).
func (a *Assembler) CmpPD(target, x, y AVXReg, mode Cmp) {
	a.trace("vcmppd %s, %s, %s, %d", target, x, y, mode)
	a.vexRR(pp66, m0F, w0, l256, 0xC2, uint8(target), uint8(x), uint8(y), byte(mode))
}

// CmpPDMem is the memory form of CmpPD.
func (a *Assembler) CmpPDMem(target, x AVXReg, b Reg, disp int32, mode Cmp) bool {
	a.trace("vcmppd %s, %s, [%s%+d], %d", target, x, b, disp, mode)
	return a.vexRM(pp66, m0F, w0, l256, 0xC2, uint8(target), uint8(x), b, disp, byte(mode))
}

// CmpSS compares the low float lanes with a predicate (vcmpss).
func (a *Assembler) CmpSS(target, x, y AVXReg, mode Cmp) {
	a.trace("vcmpss %s, %s, %s, %d", target, x, y, mode)
	a.vexRR(ppF3, m0F, w0, l128, 0xC2, uint8(target), uint8(x), uint8(y), byte(mode))
}

// CmpSSMem is the memory form of CmpSS.
func (a *Assembler) CmpSSMem(target, x AVXReg, b Reg, disp int32, mode Cmp) bool {
	a.trace("vcmpss %s, %s, [%s%+d], %d", target, x, b, disp, mode)
	return a.vexRM(ppF3, m0F, w0, l128, 0xC2, uint8(target), uint8(x), b, disp, byte(mode))
}

// CmpSD compares the low double lanes with a predicate (vcmpsd).
func (a *Assembler) CmpSD(target, x, y AVXReg, mode Cmp) {
	a.trace("vcmpsd %s, %s, %s, %d", target, x, y, mode)
	a.vexRR(ppF2, m0F, w0, l128, 0xC2, uint8(target), uint8(x), uint8(y), byte(mode))
}

// CmpSDMem is the memory form of CmpSD.
func (a *Assembler) CmpSDMem(target, x AVXReg, b Reg, disp int32, mode Cmp) bool {
	a.trace("vcmpsd %s, %s, [%s%+d], %d", target, x, b, disp, mode)
	return a.vexRM(ppF2, m0F, w0, l128, 0xC2, uint8(target), uint8(x), b, disp, byte(mode))
}

// MoveMaskPS gathers the eight float sign bits into the low bits of a
// general purpose register (vmovmskps).
func (a *Assembler) MoveMaskPS(target Reg, x AVXReg) {
	a.trace("vmovmskps %s, %s", target, x)
	a.vexRR(ppNone, m0F, w0, l256, 0x50, uint8(target), 0, uint8(x))
}

// MoveMaskPD gathers the four double sign bits into the low bits of a
// general purpose register (vmovmskpd).
func (a *Assembler) MoveMaskPD(target Reg, x AVXReg) {
	a.trace("vmovmskpd %s, %s", target, x)
	a.vexRR(pp66, m0F, w0, l256, 0x50, uint8(target), 0, uint8(x))
}

// MoveMaskI8 gathers the 32 byte sign bits into a general purpose
// register (vpmovmskb).
func (a *Assembler) MoveMaskI8(target Reg, x AVXReg) {
	a.trace("vpmovmskb %s, %s", target, x)
	a.vexRR(pp66, m0F, w0, l256, 0xD7, uint8(target), 0, uint8(x))
}

// CmpEqI8 compares bytes for equality (vpcmpeqb).
func (a *Assembler) CmpEqI8(target, x, y AVXReg) {
	a.trace("vpcmpeqb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x74, uint8(target), uint8(x), uint8(y))
}

// CmpEqI8Mem is the memory form of CmpEqI8.
func (a *Assembler) CmpEqI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpeqb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x74, uint8(target), uint8(x), b, disp)
}

// CmpEqI16 compares words for equality (vpcmpeqw).
func (a *Assembler) CmpEqI16(target, x, y AVXReg) {
	a.trace("vpcmpeqw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x75, uint8(target), uint8(x), uint8(y))
}

// CmpEqI16Mem is the memory form of CmpEqI16.
func (a *Assembler) CmpEqI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpeqw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x75, uint8(target), uint8(x), b, disp)
}

// CmpEqI32 compares dwords for equality (vpcmpeqd).
func (a *Assembler) CmpEqI32(target, x, y AVXReg) {
	a.trace("vpcmpeqd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x76, uint8(target), uint8(x), uint8(y))
}

// CmpEqI32Mem is the memory form of CmpEqI32.
func (a *Assembler) CmpEqI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpeqd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x76, uint8(target), uint8(x), b, disp)
}

// CmpEqI64 compares qwords for equality (vpcmpeqq).
func (a *Assembler) CmpEqI64(target, x, y AVXReg) {
	a.trace("vpcmpeqq %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x29, uint8(target), uint8(x), uint8(y))
}

// CmpEqI64Mem is the memory form of CmpEqI64.
func (a *Assembler) CmpEqI64Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpeqq %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x29, uint8(target), uint8(x), b, disp)
}

// CmpGtI8 compares signed bytes for greater-than (vpcmpgtb).
func (a *Assembler) CmpGtI8(target, x, y AVXReg) {
	a.trace("vpcmpgtb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x64, uint8(target), uint8(x), uint8(y))
}

// CmpGtI8Mem is the memory form of CmpGtI8.
func (a *Assembler) CmpGtI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpgtb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x64, uint8(target), uint8(x), b, disp)
}

// CmpGtI16 compares signed words for greater-than (vpcmpgtw).
func (a *Assembler) CmpGtI16(target, x, y AVXReg) {
	a.trace("vpcmpgtw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x65, uint8(target), uint8(x), uint8(y))
}

// CmpGtI16Mem is the memory form of CmpGtI16.
func (a *Assembler) CmpGtI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpgtw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x65, uint8(target), uint8(x), b, disp)
}

// CmpGtI32 compares signed dwords for greater-than (vpcmpgtd).
func (a *Assembler) CmpGtI32(target, x, y AVXReg) {
	a.trace("vpcmpgtd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x66, uint8(target), uint8(x), uint8(y))
}

// CmpGtI32Mem is the memory form of CmpGtI32.
func (a *Assembler) CmpGtI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpgtd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x66, uint8(target), uint8(x), b, disp)
}

// CmpGtI64 compares signed qwords for greater-than (vpcmpgtq).
func (a *Assembler) CmpGtI64(target, x, y AVXReg) {
	a.trace("vpcmpgtq %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x37, uint8(target), uint8(x), uint8(y))
}

// CmpGtI64Mem is the memory form of CmpGtI64.
func (a *Assembler) CmpGtI64Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpcmpgtq %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x37, uint8(target), uint8(x), b, disp)
}
