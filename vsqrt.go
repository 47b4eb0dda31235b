// Completion: 100% - Root and reciprocal instructions complete
package vpu

// Square roots and the fast reciprocal approximations. The rsqrt/rcp
// forms are ~12 bit approximations; refine with a Newton step if that
// is not enough.

// SqrtPS takes the square root of packed floats (vsqrtps).
func (a *Assembler) SqrtPS(target, b AVXReg) {
	a.trace("vsqrtps %s, %s", target, b)
	a.vexRR(ppNone, m0F, w0, l256, 0x51, uint8(target), 0, uint8(b))
}

// SqrtPSMem is the memory form of SqrtPS.
func (a *Assembler) SqrtPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vsqrtps %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x51, uint8(target), 0, b, disp)
}

// SqrtPD takes the square root of packed doubles (vsqrtpd).
func (a *Assembler) SqrtPD(target, b AVXReg) {
	a.trace("vsqrtpd %s, %s", target, b)
	a.vexRR(pp66, m0F, w0, l256, 0x51, uint8(target), 0, uint8(b))
}

// SqrtPDMem is the memory form of SqrtPD.
func (a *Assembler) SqrtPDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vsqrtpd %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x51, uint8(target), 0, b, disp)
}

// RSqrtPS approximates the reciprocal square root of packed floats
// (vrsqrtps).
func (a *Assembler) RSqrtPS(target, b AVXReg) {
	a.trace("vrsqrtps %s, %s", target, b)
	a.vexRR(ppNone, m0F, w0, l256, 0x52, uint8(target), 0, uint8(b))
}

// RSqrtPSMem is the memory form of RSqrtPS.
func (a *Assembler) RSqrtPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vrsqrtps %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x52, uint8(target), 0, b, disp)
}

// RcpPS approximates the reciprocal of packed floats (vrcpps).
func (a *Assembler) RcpPS(target, b AVXReg) {
	a.trace("vrcpps %s, %s", target, b)
	a.vexRR(ppNone, m0F, w0, l256, 0x53, uint8(target), 0, uint8(b))
}

// RcpPSMem is the memory form of RcpPS.
func (a *Assembler) RcpPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vrcpps %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x53, uint8(target), 0, b, disp)
}

// SqrtSS takes the square root of the low float lane (vsqrtss); upper
// lanes pass through from target.
func (a *Assembler) SqrtSS(target, b AVXReg) {
	a.trace("vsqrtss %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x51, uint8(target), uint8(target), uint8(b))
}

// SqrtSSMem is the memory form of SqrtSS.
func (a *Assembler) SqrtSSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vsqrtss %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x51, uint8(target), uint8(target), b, disp)
}

// RSqrtSS approximates the reciprocal square root of the low float
// lane (vrsqrtss).
func (a *Assembler) RSqrtSS(target, b AVXReg) {
	a.trace("vrsqrtss %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x52, uint8(target), uint8(target), uint8(b))
}

// RSqrtSSMem is the memory form of RSqrtSS.
func (a *Assembler) RSqrtSSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vrsqrtss %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x52, uint8(target), uint8(target), b, disp)
}

// RcpSS approximates the reciprocal of the low float lane (vrcpss).
func (a *Assembler) RcpSS(target, b AVXReg) {
	a.trace("vrcpss %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x53, uint8(target), uint8(target), uint8(b))
}

// RcpSSMem is the memory form of RcpSS.
func (a *Assembler) RcpSSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vrcpss %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x53, uint8(target), uint8(target), b, disp)
}

// SqrtSD takes the square root of the low double lane (vsqrtsd).
func (a *Assembler) SqrtSD(target, b AVXReg) {
	a.trace("vsqrtsd %s, %s", target, b)
	a.vexRR(ppF2, m0F, w0, l128, 0x51, uint8(target), uint8(target), uint8(b))
}

// SqrtSDMem is the memory form of SqrtSD.
func (a *Assembler) SqrtSDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vsqrtsd %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x51, uint8(target), uint8(target), b, disp)
}
