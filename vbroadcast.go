// Completion: 100% - Broadcast instructions complete
package vpu

// Broadcasts: replicate the lowest element (or 128-bit half) across
// the whole register. The register-source forms need AVX2; the
// 128-bit broadcasts only exist with a memory source.

// BroadcastSS replicates the low float of source (vbroadcastss).
func (a *Assembler) BroadcastSS(target, source AVXReg) {
	a.trace("vbroadcastss %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x18, uint8(target), 0, uint8(source))
}

// BroadcastSSMem replicates one float from memory.
func (a *Assembler) BroadcastSSMem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vbroadcastss %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x18, uint8(target), 0, source, disp)
}

// BroadcastSD replicates the low double of source (vbroadcastsd).
func (a *Assembler) BroadcastSD(target, source AVXReg) {
	a.trace("vbroadcastsd %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x19, uint8(target), 0, uint8(source))
}

// BroadcastSDMem replicates one double from memory.
func (a *Assembler) BroadcastSDMem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vbroadcastsd %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x19, uint8(target), 0, source, disp)
}

// BroadcastI8 replicates the low byte of source (vpbroadcastb).
func (a *Assembler) BroadcastI8(target, source AVXReg) {
	a.trace("vpbroadcastb %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x78, uint8(target), 0, uint8(source))
}

// BroadcastI8Mem replicates one byte from memory.
func (a *Assembler) BroadcastI8Mem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vpbroadcastb %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x78, uint8(target), 0, source, disp)
}

// BroadcastI16 replicates the low word of source (vpbroadcastw).
func (a *Assembler) BroadcastI16(target, source AVXReg) {
	a.trace("vpbroadcastw %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x79, uint8(target), 0, uint8(source))
}

// BroadcastI16Mem replicates one word from memory.
func (a *Assembler) BroadcastI16Mem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vpbroadcastw %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x79, uint8(target), 0, source, disp)
}

// BroadcastI32 replicates the low dword of source (vpbroadcastd).
func (a *Assembler) BroadcastI32(target, source AVXReg) {
	a.trace("vpbroadcastd %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x58, uint8(target), 0, uint8(source))
}

// BroadcastI32Mem replicates one dword from memory.
func (a *Assembler) BroadcastI32Mem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vpbroadcastd %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x58, uint8(target), 0, source, disp)
}

// BroadcastI64 replicates the low qword of source (vpbroadcastq).
func (a *Assembler) BroadcastI64(target, source AVXReg) {
	a.trace("vpbroadcastq %s, %s", target, source)
	a.vexRR(pp66, m0F38, w0, l256, 0x59, uint8(target), 0, uint8(source))
}

// BroadcastI64Mem replicates one qword from memory.
func (a *Assembler) BroadcastI64Mem(target AVXReg, source Reg, disp int32) bool {
	a.trace("vpbroadcastq %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x59, uint8(target), 0, source, disp)
}

// BroadcastF128 replicates 128 bits from memory into both halves
// (vbroadcastf128). Memory source only.
func (a *Assembler) BroadcastF128(target AVXReg, source Reg, disp int32) bool {
	a.trace("vbroadcastf128 %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x1A, uint8(target), 0, source, disp)
}

// BroadcastI128 replicates 128 bits from memory into both halves
// (vbroadcasti128). Memory source only.
func (a *Assembler) BroadcastI128(target AVXReg, source Reg, disp int32) bool {
	a.trace("vbroadcasti128 %s, [%s%+d]", target, source, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x5A, uint8(target), 0, source, disp)
}
