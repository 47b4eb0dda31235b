// Completion: 100% - Bitwise vector logic complete
package vpu

// Bitwise logic on float and double bit patterns. The ps/pd split is
// cosmetic to the ALU but matters for domain-crossing penalties, so
// both flavors are kept.

// AndPS bitwise-ands packed floats (vandps).
func (a *Assembler) AndPS(target, x, y AVXReg) {
	a.trace("vandps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x54, uint8(target), uint8(x), uint8(y))
}

// AndPSMem bitwise-ands packed floats from memory.
func (a *Assembler) AndPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vandps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x54, uint8(target), uint8(x), b, disp)
}

// AndNotPS computes ^x & y on packed floats (vandnps).
func (a *Assembler) AndNotPS(target, x, y AVXReg) {
	a.trace("vandnps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x55, uint8(target), uint8(x), uint8(y))
}

// AndNotPSMem computes ^x & mem on packed floats.
func (a *Assembler) AndNotPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vandnps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x55, uint8(target), uint8(x), b, disp)
}

// OrPS bitwise-ors packed floats (vorps).
func (a *Assembler) OrPS(target, x, y AVXReg) {
	a.trace("vorps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x56, uint8(target), uint8(x), uint8(y))
}

// OrPSMem bitwise-ors packed floats from memory.
func (a *Assembler) OrPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vorps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x56, uint8(target), uint8(x), b, disp)
}

// XorPS bitwise-xors packed floats (vxorps).
func (a *Assembler) XorPS(target, x, y AVXReg) {
	a.trace("vxorps %s, %s, %s", target, x, y)
	a.vexRR(ppNone, m0F, w0, l256, 0x57, uint8(target), uint8(x), uint8(y))
}

// XorPSMem bitwise-xors packed floats from memory.
func (a *Assembler) XorPSMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vxorps %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(ppNone, m0F, w0, l256, 0x57, uint8(target), uint8(x), b, disp)
}

// AndPD bitwise-ands packed doubles (vandpd).
func (a *Assembler) AndPD(target, x, y AVXReg) {
	a.trace("vandpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x54, uint8(target), uint8(x), uint8(y))
}

// AndPDMem bitwise-ands packed doubles from memory.
func (a *Assembler) AndPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vandpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x54, uint8(target), uint8(x), b, disp)
}

// AndNotPD computes ^x & y on packed doubles (vandnpd).
func (a *Assembler) AndNotPD(target, x, y AVXReg) {
	a.trace("vandnpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x55, uint8(target), uint8(x), uint8(y))
}

// AndNotPDMem computes ^x & mem on packed doubles.
func (a *Assembler) AndNotPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vandnpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x55, uint8(target), uint8(x), b, disp)
}

// OrPD bitwise-ors packed doubles (vorpd).
func (a *Assembler) OrPD(target, x, y AVXReg) {
	a.trace("vorpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x56, uint8(target), uint8(x), uint8(y))
}

// OrPDMem bitwise-ors packed doubles from memory.
func (a *Assembler) OrPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vorpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x56, uint8(target), uint8(x), b, disp)
}

// XorPD bitwise-xors packed doubles (vxorpd).
func (a *Assembler) XorPD(target, x, y AVXReg) {
	a.trace("vxorpd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0x57, uint8(target), uint8(x), uint8(y))
}

// XorPDMem bitwise-xors packed doubles from memory.
func (a *Assembler) XorPDMem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vxorpd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0x57, uint8(target), uint8(x), b, disp)
}
