// Completion: 100% - Shuffle and unpack instructions complete
package vpu

// Shuffles and unpacks. The ps immediate is assembled from four 2-bit
// lane selectors, the pd immediate from two 1-bit selectors applied to
// both 128-bit halves.

// ShufflePS shuffles packed floats (vshufps): within each 128-bit
// lane, the low two result lanes select from p via x and y, the high
// two from q via z and w. Selectors are masked to 0..3.
func (a *Assembler) ShufflePS(target, p, q AVXReg, x, y, z, w uint8) {
	imm := x&3 | (y&3)<<2 | (z&3)<<4 | (w&3)<<6
	a.trace("vshufps %s, %s, %s, %#x", target, p, q, imm)
	a.vexRR(ppNone, m0F, w0, l256, 0xC6, uint8(target), uint8(p), uint8(q), imm)
}

// ShufflePSMem is the memory form of ShufflePS.
func (a *Assembler) ShufflePSMem(target, p AVXReg, b Reg, disp int32, x, y, z, w uint8) bool {
	imm := x&3 | (y&3)<<2 | (z&3)<<4 | (w&3)<<6
	a.trace("vshufps %s, %s, [%s%+d], %#x", target, p, b, disp, imm)
	return a.vexRM(ppNone, m0F, w0, l256, 0xC6, uint8(target), uint8(p), b, disp, imm)
}

// ShufflePD shuffles packed doubles (vshufpd). x selects the low
// result lane from p, y the high one from q; the pattern is replicated
// across both 128-bit halves.
func (a *Assembler) ShufflePD(target, p, q AVXReg, x, y uint8) {
	imm := x&1 | (y&1)<<1 | (x&1)<<2 | (y&1)<<3
	a.trace("vshufpd %s, %s, %s, %#x", target, p, q, imm)
	a.vexRR(pp66, m0F, w0, l256, 0xC6, uint8(target), uint8(p), uint8(q), imm)
}

// ShufflePDMem is the memory form of ShufflePD.
func (a *Assembler) ShufflePDMem(target, p AVXReg, b Reg, disp int32, x, y uint8) bool {
	imm := x&1 | (y&1)<<1 | (x&1)<<2 | (y&1)<<3
	a.trace("vshufpd %s, %s, [%s%+d], %#x", target, p, b, disp, imm)
	return a.vexRM(pp66, m0F, w0, l256, 0xC6, uint8(target), uint8(p), b, disp, imm)
}

// ShuffleI8 shuffles bytes of x using the control bytes in y (vpshufb).
func (a *Assembler) ShuffleI8(target, x, y AVXReg) {
	a.trace("vpshufb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x00, uint8(target), uint8(x), uint8(y))
}

// ShuffleI8Mem sources the control bytes from memory.
func (a *Assembler) ShuffleI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpshufb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x00, uint8(target), uint8(x), b, disp)
}

// UnpackLoPS interleaves the low float pairs of each lane (vunpcklps).
func (a *Assembler) UnpackLoPS(target, x, y AVXReg) {
	a.trace("vunpcklps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x14, uint8(target), uint8(x), uint8(y))
}

// UnpackLoPSMem is the memory form of UnpackLoPS.
func (a *Assembler) UnpackLoPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vunpcklps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x14, uint8(target), uint8(x), b, disp)
}

// UnpackHiPS interleaves the high float pairs of each lane (vunpckhps).
func (a *Assembler) UnpackHiPS(target, x, y AVXReg) {
	a.trace("vunpckhps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x15, uint8(target), uint8(x), uint8(y))
}

// UnpackHiPSMem is the memory form of UnpackHiPS.
func (a *Assembler) UnpackHiPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vunpckhps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x15, uint8(target), uint8(x), b, disp)
}

// UnpackLoPD interleaves the low doubles of each lane (vunpcklpd).
func (a *Assembler) UnpackLoPD(target, x, y AVXReg) {
	a.trace("vunpcklpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x14, uint8(target), uint8(x), uint8(y))
}

// UnpackLoPDMem is the memory form of UnpackLoPD.
func (a *Assembler) UnpackLoPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vunpcklpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x14, uint8(target), uint8(x), b, disp)
}

// UnpackHiPD interleaves the high doubles of each lane (vunpckhpd).
func (a *Assembler) UnpackHiPD(target, x, y AVXReg) {
	a.trace("vunpckhpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x15, uint8(target), uint8(x), uint8(y))
}

// UnpackHiPDMem is the memory form of UnpackHiPD.
func (a *Assembler) UnpackHiPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vunpckhpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x15, uint8(target), uint8(x), b, disp)
}
