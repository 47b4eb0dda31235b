// Completion: 100% - Fused multiply-add instructions complete
package vpu

// The six FMA213 forms for packed float and packed double. Operand
// semantics follow the 213 convention: target = ±(target * x) ± y,
// a single rounding for the whole expression.

// FmAddPS computes target = target*x + y (vfmadd213ps).
func (a *Assembler) FmAddPS(target, x, y AVXReg) {
	a.trace("vfmadd213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xA8, uint8(target), uint8(x), uint8(y))
}

// FmAddPSMem sources the addend from memory.
func (a *Assembler) FmAddPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmadd213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xA8, uint8(target), uint8(x), b, disp)
}

// FmSubPS computes target = target*x - y (vfmsub213ps).
func (a *Assembler) FmSubPS(target, x, y AVXReg) {
	a.trace("vfmsub213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xAA, uint8(target), uint8(x), uint8(y))
}

// FmSubPSMem sources the subtrahend from memory.
func (a *Assembler) FmSubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmsub213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xAA, uint8(target), uint8(x), b, disp)
}

// FnmAddPS computes target = -(target*x) + y (vfnmadd213ps).
func (a *Assembler) FnmAddPS(target, x, y AVXReg) {
	a.trace("vfnmadd213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xAC, uint8(target), uint8(x), uint8(y))
}

// FnmAddPSMem sources the addend from memory.
func (a *Assembler) FnmAddPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfnmadd213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xAC, uint8(target), uint8(x), b, disp)
}

// FnmSubPS computes target = -(target*x) - y (vfnmsub213ps).
func (a *Assembler) FnmSubPS(target, x, y AVXReg) {
	a.trace("vfnmsub213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xAE, uint8(target), uint8(x), uint8(y))
}

// FnmSubPSMem sources the subtrahend from memory.
func (a *Assembler) FnmSubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfnmsub213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xAE, uint8(target), uint8(x), b, disp)
}

// FmAddSubPS alternates add on odd lanes, sub on even (vfmaddsub213ps).
func (a *Assembler) FmAddSubPS(target, x, y AVXReg) {
	a.trace("vfmaddsub213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xA6, uint8(target), uint8(x), uint8(y))
}

// FmAddSubPSMem sources the second operand from memory.
func (a *Assembler) FmAddSubPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmaddsub213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xA6, uint8(target), uint8(x), b, disp)
}

// FmSubAddPS alternates sub on odd lanes, add on even (vfmsubadd213ps).
func (a *Assembler) FmSubAddPS(target, x, y AVXReg) {
	a.trace("vfmsubadd213ps %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0xA7, uint8(target), uint8(x), uint8(y))
}

// FmSubAddPSMem sources the second operand from memory.
func (a *Assembler) FmSubAddPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmsubadd213ps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0xA7, uint8(target), uint8(x), b, disp)
}

// FmAddPD computes target = target*x + y (vfmadd213pd).
func (a *Assembler) FmAddPD(target, x, y AVXReg) {
	a.trace("vfmadd213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xA8, uint8(target), uint8(x), uint8(y))
}

// FmAddPDMem sources the addend from memory.
func (a *Assembler) FmAddPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmadd213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xA8, uint8(target), uint8(x), b, disp)
}

// FmSubPD computes target = target*x - y (vfmsub213pd).
func (a *Assembler) FmSubPD(target, x, y AVXReg) {
	a.trace("vfmsub213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xAA, uint8(target), uint8(x), uint8(y))
}

// FmSubPDMem sources the subtrahend from memory.
func (a *Assembler) FmSubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmsub213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xAA, uint8(target), uint8(x), b, disp)
}

// FnmAddPD computes target = -(target*x) + y (vfnmadd213pd).
func (a *Assembler) FnmAddPD(target, x, y AVXReg) {
	a.trace("vfnmadd213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xAC, uint8(target), uint8(x), uint8(y))
}

// FnmAddPDMem sources the addend from memory.
func (a *Assembler) FnmAddPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfnmadd213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xAC, uint8(target), uint8(x), b, disp)
}

// FnmSubPD computes target = -(target*x) - y (vfnmsub213pd).
func (a *Assembler) FnmSubPD(target, x, y AVXReg) {
	a.trace("vfnmsub213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xAE, uint8(target), uint8(x), uint8(y))
}

// FnmSubPDMem sources the subtrahend from memory.
func (a *Assembler) FnmSubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfnmsub213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xAE, uint8(target), uint8(x), b, disp)
}

// FmAddSubPD alternates add on odd lanes, sub on even (vfmaddsub213pd).
func (a *Assembler) FmAddSubPD(target, x, y AVXReg) {
	a.trace("vfmaddsub213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xA6, uint8(target), uint8(x), uint8(y))
}

// FmAddSubPDMem sources the second operand from memory.
func (a *Assembler) FmAddSubPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmaddsub213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xA6, uint8(target), uint8(x), b, disp)
}

// FmSubAddPD alternates sub on odd lanes, add on even (vfmsubadd213pd).
func (a *Assembler) FmSubAddPD(target, x, y AVXReg) {
	a.trace("vfmsubadd213pd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w1, l256, 0xA7, uint8(target), uint8(x), uint8(y))
}

// FmSubAddPDMem sources the second operand from memory.
func (a *Assembler) FmSubAddPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vfmsubadd213pd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w1, l256, 0xA7, uint8(target), uint8(x), b, disp)
}
