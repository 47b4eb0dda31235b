// Completion: 100% - Min/max instructions complete
package vpu

// Min/max for packed floats, packed doubles, the scalar lanes, and the
// signed/unsigned integer element widths.

// MinPS takes the lane-wise minimum of packed floats (vminps).
func (a *Assembler) MinPS(target, x, y AVXReg) {
	a.trace("vminps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x5D, uint8(target), uint8(x), uint8(y))
}

// MinPSMem is the memory form of MinPS.
func (a *Assembler) MinPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vminps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5D, uint8(target), uint8(x), b, disp)
}

// MaxPS takes the lane-wise maximum of packed floats (vmaxps).
func (a *Assembler) MaxPS(target, x, y AVXReg) {
	a.trace("vmaxps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x5F, uint8(target), uint8(x), uint8(y))
}

// MaxPSMem is the memory form of MaxPS.
func (a *Assembler) MaxPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmaxps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5F, uint8(target), uint8(x), b, disp)
}

// MinPD takes the lane-wise minimum of packed doubles (vminpd).
func (a *Assembler) MinPD(target, x, y AVXReg) {
	a.trace("vminpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x5D, uint8(target), uint8(x), uint8(y))
}

// MinPDMem is the memory form of MinPD.
func (a *Assembler) MinPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vminpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5D, uint8(target), uint8(x), b, disp)
}

// MaxPD takes the lane-wise maximum of packed doubles (vmaxpd).
func (a *Assembler) MaxPD(target, x, y AVXReg) {
	a.trace("vmaxpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x5F, uint8(target), uint8(x), uint8(y))
}

// MaxPDMem is the memory form of MaxPD.
func (a *Assembler) MaxPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmaxpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5F, uint8(target), uint8(x), b, disp)
}

// MinSS takes the minimum of the low float lanes (vminss).
func (a *Assembler) MinSS(target, x, y AVXReg) {
	a.trace("vminss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x5D, uint8(target), uint8(x), uint8(y))
}

// MinSSMem is the memory form of MinSS.
func (a *Assembler) MinSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vminss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x5D, uint8(target), uint8(x), b, disp)
}

// MaxSS takes the maximum of the low float lanes (vmaxss).
func (a *Assembler) MaxSS(target, x, y AVXReg) {
	a.trace("vmaxss %s, %s, %s", target, x, y)
	a.vexRR(ppF3, m0F, w0, l128, 0x5F, uint8(target), uint8(x), uint8(y))
}

// MaxSSMem is the memory form of MaxSS.
func (a *Assembler) MaxSSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmaxss %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x5F, uint8(target), uint8(x), b, disp)
}

// MinSD takes the minimum of the low double lanes (vminsd).
func (a *Assembler) MinSD(target, x, y AVXReg) {
	a.trace("vminsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x5D, uint8(target), uint8(x), uint8(y))
}

// MinSDMem is the memory form of MinSD.
func (a *Assembler) MinSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vminsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x5D, uint8(target), uint8(x), b, disp)
}

// MaxSD takes the maximum of the low double lanes (vmaxsd).
func (a *Assembler) MaxSD(target, x, y AVXReg) {
	a.trace("vmaxsd %s, %s, %s", target, x, y)
	a.vexRR(ppF2, m0F, w0, l128, 0x5F, uint8(target), uint8(x), uint8(y))
}

// MaxSDMem is the memory form of MaxSD.
func (a *Assembler) MaxSDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vmaxsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x5F, uint8(target), uint8(x), b, disp)
}

// MaxU8 takes the unsigned byte maximum (vpmaxub).
func (a *Assembler) MaxU8(target, x, y AVXReg) {
	a.trace("vpmaxub %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xDE, uint8(target), uint8(x), uint8(y))
}

// MaxU8Mem is the memory form of MaxU8.
func (a *Assembler) MaxU8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxub %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xDE, uint8(target), uint8(x), b, disp)
}

// MinU8 takes the unsigned byte minimum (vpminub).
func (a *Assembler) MinU8(target, x, y AVXReg) {
	a.trace("vpminub %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xDA, uint8(target), uint8(x), uint8(y))
}

// MinU8Mem is the memory form of MinU8.
func (a *Assembler) MinU8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminub %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xDA, uint8(target), uint8(x), b, disp)
}

// MaxI8 takes the signed byte maximum (vpmaxsb).
func (a *Assembler) MaxI8(target, x, y AVXReg) {
	a.trace("vpmaxsb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3C, uint8(target), uint8(x), uint8(y))
}

// MaxI8Mem is the memory form of MaxI8.
func (a *Assembler) MaxI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxsb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3C, uint8(target), uint8(x), b, disp)
}

// MinI8 takes the signed byte minimum (vpminsb).
func (a *Assembler) MinI8(target, x, y AVXReg) {
	a.trace("vpminsb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x38, uint8(target), uint8(x), uint8(y))
}

// MinI8Mem is the memory form of MinI8.
func (a *Assembler) MinI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminsb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x38, uint8(target), uint8(x), b, disp)
}

// MaxI16 takes the signed word maximum (vpmaxsw).
func (a *Assembler) MaxI16(target, x, y AVXReg) {
	a.trace("vpmaxsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xEE, uint8(target), uint8(x), uint8(y))
}

// MaxI16Mem is the memory form of MaxI16.
func (a *Assembler) MaxI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xEE, uint8(target), uint8(x), b, disp)
}

// MinI16 takes the signed word minimum (vpminsw).
func (a *Assembler) MinI16(target, x, y AVXReg) {
	a.trace("vpminsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xEA, uint8(target), uint8(x), uint8(y))
}

// MinI16Mem is the memory form of MinI16.
func (a *Assembler) MinI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xEA, uint8(target), uint8(x), b, disp)
}

// MaxU16 takes the unsigned word maximum (vpmaxuw).
func (a *Assembler) MaxU16(target, x, y AVXReg) {
	a.trace("vpmaxuw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3E, uint8(target), uint8(x), uint8(y))
}

// MaxU16Mem is the memory form of MaxU16.
func (a *Assembler) MaxU16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxuw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3E, uint8(target), uint8(x), b, disp)
}

// MinU16 takes the unsigned word minimum (vpminuw).
func (a *Assembler) MinU16(target, x, y AVXReg) {
	a.trace("vpminuw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3A, uint8(target), uint8(x), uint8(y))
}

// MinU16Mem is the memory form of MinU16.
func (a *Assembler) MinU16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminuw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3A, uint8(target), uint8(x), b, disp)
}

// MaxI32 takes the signed dword maximum (vpmaxsd).
func (a *Assembler) MaxI32(target, x, y AVXReg) {
	a.trace("vpmaxsd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3D, uint8(target), uint8(x), uint8(y))
}

// MaxI32Mem is the memory form of MaxI32.
func (a *Assembler) MaxI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3D, uint8(target), uint8(x), b, disp)
}

// MinI32 takes the signed dword minimum (vpminsd).
func (a *Assembler) MinI32(target, x, y AVXReg) {
	a.trace("vpminsd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x39, uint8(target), uint8(x), uint8(y))
}

// MinI32Mem is the memory form of MinI32.
func (a *Assembler) MinI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminsd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x39, uint8(target), uint8(x), b, disp)
}

// MaxU32 takes the unsigned dword maximum (vpmaxud).
func (a *Assembler) MaxU32(target, x, y AVXReg) {
	a.trace("vpmaxud %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3F, uint8(target), uint8(x), uint8(y))
}

// MaxU32Mem is the memory form of MaxU32.
func (a *Assembler) MaxU32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmaxud %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3F, uint8(target), uint8(x), b, disp)
}

// MinU32 takes the unsigned dword minimum (vpminud).
func (a *Assembler) MinU32(target, x, y AVXReg) {
	a.trace("vpminud %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x3B, uint8(target), uint8(x), uint8(y))
}

// MinU32Mem is the memory form of MinU32.
func (a *Assembler) MinU32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpminud %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x3B, uint8(target), uint8(x), b, disp)
}
