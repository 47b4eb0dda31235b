// Completion: 100% - Rounding instructions complete
package vpu

// Rounding with an explicit mode immediate.

// RoundPS rounds packed floats (vroundps).
func (a *Assembler) RoundPS(target, x AVXReg, mode RoundMode) {
	a.trace("vroundps %s, %s, %d", target, x, mode)
	a.vexRR(pp66, m0F3A, w0, l256, 0x08, uint8(target), 0, uint8(x), byte(mode))
}

// RoundPSMem is the memory form of RoundPS.
func (a *Assembler) RoundPSMem(target AVXReg, b Reg, disp int32, mode RoundMode) bool {
	a.trace("vroundps %s, [%s%+d], %d", target, b, disp, mode)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x08, uint8(target), 0, b, disp, byte(mode))
}

// RoundPD rounds packed doubles (vroundpd).
func (a *Assembler) RoundPD(target, x AVXReg, mode RoundMode) {
	a.trace("vroundpd %s, %s, %d", target, x, mode)
	a.vexRR(pp66, m0F3A, w0, l256, 0x09, uint8(target), 0, uint8(x), byte(mode))
}

// RoundPDMem is the memory form of RoundPD.
func (a *Assembler) RoundPDMem(target AVXReg, b Reg, disp int32, mode RoundMode) bool {
	a.trace("vroundpd %s, [%s%+d], %d", target, b, disp, mode)
	return a.vexRM(pp66, m0F3A, w0, l256, 0x09, uint8(target), 0, b, disp, byte(mode))
}

// RoundSS rounds the low float lane (vroundss).
func (a *Assembler) RoundSS(target, x AVXReg, mode RoundMode) {
	a.trace("vroundss %s, %s, %d", target, x, mode)
	a.vexRR(pp66, m0F3A, w0, l128, 0x0A, uint8(target), uint8(target), uint8(x), byte(mode))
}

// RoundSSMem is the memory form of RoundSS.
func (a *Assembler) RoundSSMem(target AVXReg, b Reg, disp int32, mode RoundMode) bool {
	a.trace("vroundss %s, [%s%+d], %d", target, b, disp, mode)
	return a.vexRM(pp66, m0F3A, w0, l128, 0x0A, uint8(target), uint8(target), b, disp, byte(mode))
}

// RoundSD rounds the low double lane (vroundsd).
func (a *Assembler) RoundSD(target, x AVXReg, mode RoundMode) {
	a.trace("vroundsd %s, %s, %d", target, x, mode)
	a.vexRR(pp66, m0F3A, w0, l128, 0x0B, uint8(target), uint8(target), uint8(x), byte(mode))
}

// RoundSDMem is the memory form of RoundSD.
func (a *Assembler) RoundSDMem(target AVXReg, b Reg, disp int32, mode RoundMode) bool {
	a.trace("vroundsd %s, [%s%+d], %d", target, b, disp, mode)
	return a.vexRM(pp66, m0F3A, w0, l128, 0x0B, uint8(target), uint8(target), b, disp, byte(mode))
}
