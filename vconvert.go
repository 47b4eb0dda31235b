// Completion: 100% - Conversion instructions complete
package vpu

// Conversions between float, double and integer lanes, plus the
// scalar int <-> float moves. The tail of the file keeps the MMX-era
// conversions for interface parity; you probably don't want those.

// CvtPSPD widens the four low floats to doubles (vcvtps2pd).
func (a *Assembler) CvtPSPD(target, b AVXReg) {
	a.trace("vcvtps2pd %s, %s", target, b)
	a.vexRR(ppNone, m0F, w0, l256, 0x5A, uint8(target), 0, uint8(b))
}

// CvtPSPDMem is the memory form of CvtPSPD.
func (a *Assembler) CvtPSPDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtps2pd %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5A, uint8(target), 0, b, disp)
}

// CvtPDPS narrows four doubles to floats in the low half (vcvtpd2ps).
func (a *Assembler) CvtPDPS(target, b AVXReg) {
	a.trace("vcvtpd2ps %s, %s", target, b)
	a.vexRR(pp66, m0F, w0, l256, 0x5A, uint8(target), 0, uint8(b))
}

// CvtPDPSMem is the memory form of CvtPDPS.
func (a *Assembler) CvtPDPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtpd2ps %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5A, uint8(target), 0, b, disp)
}

// CvtPSDQ converts floats to signed dwords with rounding (vcvtps2dq).
func (a *Assembler) CvtPSDQ(target, b AVXReg) {
	a.trace("vcvtps2dq %s, %s", target, b)
	a.vexRR(pp66, m0F, w0, l256, 0x5B, uint8(target), 0, uint8(b))
}

// CvtPSDQMem is the memory form of CvtPSDQ.
func (a *Assembler) CvtPSDQMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtps2dq %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x5B, uint8(target), 0, b, disp)
}

// CvtDQPS converts signed dwords to floats (vcvtdq2ps).
func (a *Assembler) CvtDQPS(target, b AVXReg) {
	a.trace("vcvtdq2ps %s, %s", target, b)
	a.vexRR(ppNone, m0F, w0, l256, 0x5B, uint8(target), 0, uint8(b))
}

// CvtDQPSMem is the memory form of CvtDQPS.
func (a *Assembler) CvtDQPSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtdq2ps %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x5B, uint8(target), 0, b, disp)
}

// CvtSI2SS converts a 32-bit integer to the low float lane
// (vcvtsi2ss); upper lanes pass through from target.
func (a *Assembler) CvtSI2SS(target AVXReg, b Reg) {
	a.trace("vcvtsi2ss %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x2A, uint8(target), uint8(target), uint8(b))
}

// CvtSI2SSMem sources the integer from memory.
func (a *Assembler) CvtSI2SSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtsi2ss %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x2A, uint8(target), uint8(target), b, disp)
}

// CvtTSS2SI converts the low float lane to a 32-bit integer,
// truncating (vcvttss2si).
func (a *Assembler) CvtTSS2SI(target Reg, b AVXReg) {
	a.trace("vcvttss2si %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x2C, uint8(target), 0, uint8(b))
}

// CvtTSS2SIMem sources the float from memory.
func (a *Assembler) CvtTSS2SIMem(target, b Reg, disp int32) bool {
	a.trace("vcvttss2si %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x2C, uint8(target), 0, b, disp)
}

// CvtSS2SI converts the low float lane to a 32-bit integer with the
// current rounding mode (vcvtss2si).
func (a *Assembler) CvtSS2SI(target Reg, b AVXReg) {
	a.trace("vcvtss2si %s, %s", target, b)
	a.vexRR(ppF3, m0F, w0, l128, 0x2D, uint8(target), 0, uint8(b))
}

// CvtSS2SIMem sources the float from memory.
func (a *Assembler) CvtSS2SIMem(target, b Reg, disp int32) bool {
	a.trace("vcvtss2si %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF3, m0F, w0, l128, 0x2D, uint8(target), 0, b, disp)
}

// CvtSI2SD converts a 32-bit integer to the low double lane
// (vcvtsi2sd).
func (a *Assembler) CvtSI2SD(target AVXReg, b Reg) {
	a.trace("vcvtsi2sd %s, %s", target, b)
	a.vexRR(ppF2, m0F, w0, l128, 0x2A, uint8(target), uint8(target), uint8(b))
}

// CvtSI2SDMem sources the integer from memory.
func (a *Assembler) CvtSI2SDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vcvtsi2sd %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x2A, uint8(target), uint8(target), b, disp)
}

// CvtTSD2SI converts the low double lane to a 32-bit integer,
// truncating (vcvttsd2si).
func (a *Assembler) CvtTSD2SI(target Reg, b AVXReg) {
	a.trace("vcvttsd2si %s, %s", target, b)
	a.vexRR(ppF2, m0F, w0, l128, 0x2C, uint8(target), 0, uint8(b))
}

// CvtTSD2SIMem sources the double from memory.
func (a *Assembler) CvtTSD2SIMem(target, b Reg, disp int32) bool {
	a.trace("vcvttsd2si %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x2C, uint8(target), 0, b, disp)
}

// CvtSD2SI converts the low double lane to a 32-bit integer with the
// current rounding mode (vcvtsd2si).
func (a *Assembler) CvtSD2SI(target Reg, b AVXReg) {
	a.trace("vcvtsd2si %s, %s", target, b)
	a.vexRR(ppF2, m0F, w0, l128, 0x2D, uint8(target), 0, uint8(b))
}

// CvtSD2SIMem sources the double from memory.
func (a *Assembler) CvtSD2SIMem(target, b Reg, disp int32) bool {
	a.trace("vcvtsd2si %s, [%s%+d]", target, b, disp)
	return a.vexRM(ppF2, m0F, w0, l128, 0x2D, uint8(target), 0, b, disp)
}

// The remaining conversions are the MMX-era forms. They encode the
// legacy (non-VEX) instructions and mix the x87/MMX register file into
// an AVX world; kept only so the interface is complete. You probably
// don't want these.

// CvtPI2PS converts two packed MMX dwords to floats (cvtpi2ps).
func (a *Assembler) CvtPI2PS(target, b AVXReg) {
	a.trace("cvtpi2ps %s, %s", target, b)
	a.legacyRR(0, 0x2A, uint8(target), uint8(b))
}

// CvtPI2PSMem is the memory form of CvtPI2PS.
func (a *Assembler) CvtPI2PSMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvtpi2ps %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0, 0x2A, uint8(target), b, disp)
}

// CvtPS2PI converts two floats to packed MMX dwords (cvtps2pi).
func (a *Assembler) CvtPS2PI(target, b AVXReg) {
	a.trace("cvtps2pi %s, %s", target, b)
	a.legacyRR(0, 0x2D, uint8(target), uint8(b))
}

// CvtPS2PIMem is the memory form of CvtPS2PI.
func (a *Assembler) CvtPS2PIMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvtps2pi %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0, 0x2D, uint8(target), b, disp)
}

// CvtPI2PD converts two packed MMX dwords to doubles (cvtpi2pd).
func (a *Assembler) CvtPI2PD(target, b AVXReg) {
	a.trace("cvtpi2pd %s, %s", target, b)
	a.legacyRR(0x66, 0x2A, uint8(target), uint8(b))
}

// CvtPI2PDMem is the memory form of CvtPI2PD.
func (a *Assembler) CvtPI2PDMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvtpi2pd %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0x66, 0x2A, uint8(target), b, disp)
}

// CvtPD2PI converts two doubles to packed MMX dwords (cvtpd2pi).
func (a *Assembler) CvtPD2PI(target, b AVXReg) {
	a.trace("cvtpd2pi %s, %s", target, b)
	a.legacyRR(0x66, 0x2D, uint8(target), uint8(b))
}

// CvtPD2PIMem is the memory form of CvtPD2PI.
func (a *Assembler) CvtPD2PIMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvtpd2pi %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0x66, 0x2D, uint8(target), b, disp)
}

// CvtTPS2PI converts two floats to packed MMX dwords, truncating
// (cvttps2pi).
func (a *Assembler) CvtTPS2PI(target, b AVXReg) {
	a.trace("cvttps2pi %s, %s", target, b)
	a.legacyRR(0, 0x2C, uint8(target), uint8(b))
}

// CvtTPS2PIMem is the memory form of CvtTPS2PI.
func (a *Assembler) CvtTPS2PIMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvttps2pi %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0, 0x2C, uint8(target), b, disp)
}

// CvtTPD2PI converts two doubles to packed MMX dwords, truncating
// (cvttpd2pi).
func (a *Assembler) CvtTPD2PI(target, b AVXReg) {
	a.trace("cvttpd2pi %s, %s", target, b)
	a.legacyRR(0x66, 0x2C, uint8(target), uint8(b))
}

// CvtTPD2PIMem is the memory form of CvtTPD2PI.
func (a *Assembler) CvtTPD2PIMem(target AVXReg, b Reg, disp int32) bool {
	a.trace("cvttpd2pi %s, [%s%+d]", target, b, disp)
	return a.legacyRM(0x66, 0x2C, uint8(target), b, disp)
}
