// Completion: 100% - Vector move instructions complete
package vpu

// Moves between YMM registers and memory, 256-bit aligned/unaligned in
// both float and double flavors, plus the scalar low-lane moves.
// Aligned forms fault at runtime if the address is not 32-byte aligned;
// that is the hardware's complaint, not this library's.

// MovAPS copies one YMM register to another (vmovaps).
func (a *Assembler) MovAPS(to, from AVXReg) {
	a.trace("vmovaps %s, %s", to, from)
	a.vexRR(ppNone, m0F, w0, l256, 0x28, uint8(to), 0, uint8(from))
}

// MovAPSLoad loads eight floats from 32-byte aligned memory.
func (a *Assembler) MovAPSLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovaps %s, [%s%+d]", to, from, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x28, uint8(to), 0, from, disp)
}

// MovAPSStore stores eight floats to 32-byte aligned memory.
func (a *Assembler) MovAPSStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovaps [%s%+d], %s", to, disp, from)
	return a.vexRM(ppNone, m0F, w0, l256, 0x29, uint8(from), 0, to, disp)
}

// MovUPS copies one YMM register to another (vmovups).
func (a *Assembler) MovUPS(to, from AVXReg) {
	a.trace("vmovups %s, %s", to, from)
	a.vexRR(ppNone, m0F, w0, l256, 0x10, uint8(to), 0, uint8(from))
}

// MovUPSLoad loads eight floats from unaligned memory.
func (a *Assembler) MovUPSLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovups %s, [%s%+d]", to, from, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x10, uint8(to), 0, from, disp)
}

// MovUPSStore stores eight floats to unaligned memory.
func (a *Assembler) MovUPSStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovups [%s%+d], %s", to, disp, from)
	return a.vexRM(ppNone, m0F, w0, l256, 0x11, uint8(from), 0, to, disp)
}

// MovAPD copies one YMM register to another (vmovapd).
func (a *Assembler) MovAPD(to, from AVXReg) {
	a.trace("vmovapd %s, %s", to, from)
	a.vexRR(pp66, m0F, w0, l256, 0x28, uint8(to), 0, uint8(from))
}

// MovAPDLoad loads four doubles from 32-byte aligned memory.
func (a *Assembler) MovAPDLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovapd %s, [%s%+d]", to, from, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x28, uint8(to), 0, from, disp)
}

// MovAPDStore stores four doubles to 32-byte aligned memory.
func (a *Assembler) MovAPDStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovapd [%s%+d], %s", to, disp, from)
	return a.vexRM(pp66, m0F, w0, l256, 0x29, uint8(from), 0, to, disp)
}

// MovUPD copies one YMM register to another (vmovupd).
func (a *Assembler) MovUPD(to, from AVXReg) {
	a.trace("vmovupd %s, %s", to, from)
	a.vexRR(pp66, m0F, w0, l256, 0x10, uint8(to), 0, uint8(from))
}

// MovUPDLoad loads four doubles from unaligned memory.
func (a *Assembler) MovUPDLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovupd %s, [%s%+d]", to, from, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x10, uint8(to), 0, from, disp)
}

// MovUPDStore stores four doubles to unaligned memory.
func (a *Assembler) MovUPDStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovupd [%s%+d], %s", to, disp, from)
	return a.vexRM(pp66, m0F, w0, l256, 0x11, uint8(from), 0, to, disp)
}

// MovSS merges the low float of from into to (vmovss to, to, from).
func (a *Assembler) MovSS(to, from AVXReg) {
	a.trace("vmovss %s, %s", to, from)
	a.vexRR(ppF3, m0F, w0, l128, 0x10, uint8(to), uint8(to), uint8(from))
}

// MovSSLoad loads one float into the low lane, zeroing the rest.
func (a *Assembler) MovSSLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovss %s, [%s%+d]", to, from, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x10, uint8(to), 0, from, disp)
}

// MovSSStore stores the low float lane to memory.
func (a *Assembler) MovSSStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovss [%s%+d], %s", to, disp, from)
	return a.vexRM(ppF3, m0F, w0, l128, 0x11, uint8(from), 0, to, disp)
}

// MovSD merges the low double of from into to (vmovsd to, to, from).
func (a *Assembler) MovSD(to, from AVXReg) {
	a.trace("vmovsd %s, %s", to, from)
	a.vexRR(ppF2, m0F, w0, l128, 0x10, uint8(to), uint8(to), uint8(from))
}

// MovSDLoad loads one double into the low lane, zeroing the rest.
func (a *Assembler) MovSDLoad(to AVXReg, from Reg, disp int32) bool {
	a.trace("vmovsd %s, [%s%+d]", to, from, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x10, uint8(to), 0, from, disp)
}

// MovSDStore stores the low double lane to memory.
func (a *Assembler) MovSDStore(to Reg, disp int32, from AVXReg) bool {
	a.trace("vmovsd [%s%+d], %s", to, disp, from)
	return a.vexRM(ppF2, m0F, w0, l128, 0x11, uint8(from), 0, to, disp)
}

// MoveHDupPS duplicates odd float lanes downward (vmovshdup).
func (a *Assembler) MoveHDupPS(target, b AVXReg) {
	a.trace("vmovshdup %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l256, 0x16, uint8(target), 0, uint8(b))
}

// MoveHDupPSMem is the memory-source form of MoveHDupPS.
func (a *Assembler) MoveHDupPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vmovshdup %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l256, 0x16, uint8(target), 0, b, disp)
}

// MoveLDupPS duplicates even float lanes upward (vmovsldup).
func (a *Assembler) MoveLDupPS(target, b AVXReg) {
	a.trace("vmovsldup %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l256, 0x12, uint8(target), 0, uint8(b))
}

// MoveLDupPSMem is the memory-source form of MoveLDupPS.
func (a *Assembler) MoveLDupPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vmovsldup %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l256, 0x12, uint8(target), 0, b, disp)
}

// MoveDupPD duplicates even double lanes upward (vmovddup).
func (a *Assembler) MoveDupPD(target, b AVXReg) {
	a.trace("vmovddup %s, %s", target, b)
	a.vexRR(ppF2, m0F, w0, l256, 0x12, uint8(target), 0, uint8(b))
}

// MoveDupPDMem is the memory-source form of MoveDupPD.
func (a *Assembler) MoveDupPDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vmovddup %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF2, m0F, w0, l256, 0x12, uint8(target), 0, b, disp)
}
