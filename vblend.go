// Completion: 100% - Blend instructions complete
package vpu

// Variable blends: lane-wise select driven by the sign bit of a mask
// register, the usual way to turn a cmpps result into a conditional
// move. The mask register rides in the high nibble of the immediate.

// BlendVPS selects float lanes: target = cmp-sign ? tres : fres
// (vblendvps).
func (a *Assembler) BlendVPS(target, fres, tres, cmp AVXReg) {
	a.trace("vblendvps %s, %s, %s, %s", target, fres, tres, cmp)
	a.vexRR(pp66, m0F3A, w0, l256, 0x4A, uint8(target), uint8(fres), uint8(tres), uint8(cmp)<<4)
}

// BlendVPSMem sources the taken-lane values from memory.
func (a *Assembler) BlendVPSMem(target, fres AVXReg, tres Reg, disp int32, cmp AVXReg) bool {
	a.trace("vblendvps %s, %s, [%s%+d], %s", target, fres, tres, disp, cmp)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x4A, uint8(target), uint8(fres), tres, disp, uint8(cmp)<<4)
}

// BlendVPD selects double lanes: target = cmp-sign ? tres : fres
// (vblendvpd).
func (a *Assembler) BlendVPD(target, fres, tres, cmp AVXReg) {
	a.trace("vblendvpd %s, %s, %s, %s", target, fres, tres, cmp)
	a.vexRR(pp66, m0F3A, w0, l256, 0x4B, uint8(target), uint8(fres), uint8(tres), uint8(cmp)<<4)
}

// BlendVPDMem sources the taken-lane values from memory.
func (a *Assembler) BlendVPDMem(target, fres AVXReg, tres Reg, disp int32, cmp AVXReg) bool {
	a.trace("vblendvpd %s, %s, [%s%+d], %s", target, fres, tres, disp, cmp)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x4B, uint8(target), uint8(fres), tres, disp, uint8(cmp)<<4)
}
