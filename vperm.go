// Completion: 100% - Permute and 128-bit lane instructions complete
package vpu

// Permutes and the cross-lane 128-bit inserts/extracts/swaps.

// PermuteVar8PS permutes floats across the whole register (vpermps):
// target lane i = y[ indices x[i] ]. The index vector goes in x, the
// data in y.
func (a *Assembler) PermuteVar8PS(target, x, y AVXReg) {
	a.trace("vpermps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x16, uint8(target), uint8(x), uint8(y))
}

// PermuteVar8PSMem sources the data from memory.
func (a *Assembler) PermuteVar8PSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpermps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x16, uint8(target), uint8(x), b, disp)
}

// PermuteVarPS permutes floats within each 128-bit lane (vpermilps),
// data in x, per-lane selectors in y.
func (a *Assembler) PermuteVarPS(target, x, y AVXReg) {
	a.trace("vpermilps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x0C, uint8(target), uint8(x), uint8(y))
}

// PermuteVarPSMem sources the selectors from memory.
func (a *Assembler) PermuteVarPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpermilps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x0C, uint8(target), uint8(x), b, disp)
}

// PermuteVarPD permutes doubles within each 128-bit lane (vpermilpd),
// data in x, per-lane selectors in y.
func (a *Assembler) PermuteVarPD(target, x, y AVXReg) {
	a.trace("vpermilpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x0D, uint8(target), uint8(x), uint8(y))
}

// PermuteVarPDMem sources the selectors from memory.
func (a *Assembler) PermuteVarPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpermilpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x0D, uint8(target), uint8(x), b, disp)
}

// PermutePS permutes floats within each lane by immediate (vpermilps).
func (a *Assembler) PermutePS(target, p AVXReg, x, y, z, w uint8) {
	imm := x&3 | (y&3)<<2 | (z&3)<<4 | (w&3)<<6
	a.trace("vpermilps %s, %s, %#x", target, p, imm)
	a.vexRR(pp66, m0F3A, w0, l256, 0x04, uint8(target), 0, uint8(p), imm)
}

// PermutePSMem is the memory form of PermutePS.
func (a *Assembler) PermutePSMem(target AVXReg, b Reg, disp int32, x, y, z, w uint8) bool {
	imm := x&3 | (y&3)<<2 | (z&3)<<4 | (w&3)<<6
	a.trace("vpermilps %s, [%s%+d], %#x", target, b, disp, imm)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x04, uint8(target), 0, b, disp, imm)
}

// PermutePD permutes doubles within each lane by immediate (vpermilpd),
// the two selectors replicated across both halves.
func (a *Assembler) PermutePD(target, p AVXReg, x, y uint8) {
	imm := x&1 | (y&1)<<1 | (x&1)<<2 | (y&1)<<3
	a.trace("vpermilpd %s, %s, %#x", target, p, imm)
	a.vexRR(pp66, m0F3A, w0, l256, 0x05, uint8(target), 0, uint8(p), imm)
}

// PermutePDMem is the memory form of PermutePD.
func (a *Assembler) PermutePDMem(target AVXReg, b Reg, disp int32, x, y uint8) bool {
	imm := x&1 | (y&1)<<1 | (x&1)<<2 | (y&1)<<3
	a.trace("vpermilpd %s, [%s%+d], %#x", target, b, disp, imm)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x05, uint8(target), 0, b, disp, imm)
}

// Permute2F128 selects 128-bit halves from src and in by the mask
// immediate (vperm2f128).
func (a *Assembler) Permute2F128(target, src, in AVXReg, mask uint8) {
	a.trace("vperm2f128 %s, %s, %s, %#x", target, src, in, mask)
	a.vexRR(pp66, m0F3A, w0, l256, 0x06, uint8(target), uint8(src), uint8(in), mask)
}

// Permute2F128Mem is the memory form of Permute2F128.
func (a *Assembler) Permute2F128Mem(target, src AVXReg, in Reg, disp int32, mask uint8) bool {
	a.trace("vperm2f128 %s, %s, [%s%+d], %#x", target, src, in, disp, mask)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x06, uint8(target), uint8(src), in, disp, mask)
}

// Permute2I128 is the AVX2 integer flavor of Permute2F128 (vperm2i128).
func (a *Assembler) Permute2I128(target, src, in AVXReg, mask uint8) {
	a.trace("vperm2i128 %s, %s, %s, %#x", target, src, in, mask)
	a.vexRR(pp66, m0F3A, w0, l256, 0x46, uint8(target), uint8(src), uint8(in), mask)
}

// Permute2I128Mem is the memory form of Permute2I128.
func (a *Assembler) Permute2I128Mem(target, src AVXReg, in Reg, disp int32, mask uint8) bool {
	a.trace("vperm2i128 %s, %s, [%s%+d], %#x", target, src, in, disp, mask)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x46, uint8(target), uint8(src), in, disp, mask)
}

// InsertF128 inserts the low 128 bits of in into src at the half
// selected by mask bit 0 (vinsertf128).
func (a *Assembler) InsertF128(target, src, in AVXReg, mask uint8) {
	a.trace("vinsertf128 %s, %s, %s, %d", target, src, in, mask&1)
	a.vexRR(pp66, m0F3A, w0, l256, 0x18, uint8(target), uint8(src), uint8(in), mask&1)
}

// InsertF128Mem sources the 128 bits from memory.
func (a *Assembler) InsertF128Mem(target, src AVXReg, in Reg, disp int32, mask uint8) bool {
	a.trace("vinsertf128 %s, %s, [%s%+d], %d", target, src, in, disp, mask&1)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x18, uint8(target), uint8(src), in, disp, mask&1)
}

// InsertI128 is the AVX2 integer flavor of InsertF128 (vinserti128).
func (a *Assembler) InsertI128(target, src, in AVXReg, mask uint8) {
	a.trace("vinserti128 %s, %s, %s, %d", target, src, in, mask&1)
	a.vexRR(pp66, m0F3A, w0, l256, 0x38, uint8(target), uint8(src), uint8(in), mask&1)
}

// InsertI128Mem sources the 128 bits from memory.
func (a *Assembler) InsertI128Mem(target, src AVXReg, in Reg, disp int32, mask uint8) bool {
	a.trace("vinserti128 %s, %s, [%s%+d], %d", target, src, in, disp, mask&1)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x38, uint8(target), uint8(src), in, disp, mask&1)
}

// ExtractF128 extracts the upper 128 bits of b into target
// (vextractf128 with immediate 1).
func (a *Assembler) ExtractF128(target, b AVXReg) {
	a.trace("vextractf128 %s, %s, 1", target, b)
	a.vexRR(pp66, m0F3A, w0, l256, 0x19, uint8(b), 0, uint8(target), 1)
}

// ExtractF128Mem stores the upper 128 bits of target to memory.
func (a *Assembler) ExtractF128Mem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vextractf128 [%s%+d], %s, 1", b, disp, target)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x19, uint8(target), 0, b, disp, 1)
}
