// Completion: 100% - Gather instructions complete
package vpu

// Gathers: load lanes from base + index*scale + disp, under a mask
// register. Only lanes whose mask sign bit is set are loaded; the mask
// is architecturally zeroed when the gather completes, so rebuild it
// before reusing. For an unmasked gather, generate an all-ones mask
// first (CmpEqI8(m, m, m) works).
//
// Scale must be 1, 2, 4 or 8; anything else refuses without emitting.

// I32GatherPS gathers eight floats through dword indices (vgatherdps).
func (a *Assembler) I32GatherPS(target, indices, mask AVXReg, address Reg, disp uint32, scale uint8) bool {
	a.trace("vgatherdps %s, [%s+%s*%d%+d], %s", target, address, indices, scale, int32(disp), mask)
	return a.vexVSIB(pp66, m0F38, w0, l256, 0x92, uint8(target), uint8(indices), uint8(mask), address, int32(disp), scale)
}

// I64GatherPS gathers four floats through qword indices (vgatherqps);
// the results land in the low half of target.
func (a *Assembler) I64GatherPS(target, indices, mask AVXReg, address Reg, disp uint32, scale uint8) bool {
	a.trace("vgatherqps %s, [%s+%s*%d%+d], %s", target, address, indices, scale, int32(disp), mask)
	return a.vexVSIB(pp66, m0F38, w0, l256, 0x93, uint8(target), uint8(indices), uint8(mask), address, int32(disp), scale)
}

// I32GatherPD gathers four doubles through the low dword indices
// (vgatherdpd).
func (a *Assembler) I32GatherPD(target, indices, mask AVXReg, address Reg, disp uint32, scale uint8) bool {
	a.trace("vgatherdpd %s, [%s+%s*%d%+d], %s", target, address, indices, scale, int32(disp), mask)
	return a.vexVSIB(pp66, m0F38, w1, l256, 0x92, uint8(target), uint8(indices), uint8(mask), address, int32(disp), scale)
}

// I64GatherPD gathers four doubles through qword indices (vgatherqpd).
func (a *Assembler) I64GatherPD(target, indices, mask AVXReg, address Reg, disp uint32, scale uint8) bool {
	a.trace("vgatherqpd %s, [%s+%s*%d%+d], %s", target, address, indices, scale, int32(disp), mask)
	return a.vexVSIB(pp66, m0F38, w1, l256, 0x93, uint8(target), uint8(indices), uint8(mask), address, int32(disp), scale)
}
