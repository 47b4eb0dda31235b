// Completion: 100% - Packed integer arithmetic complete
package vpu

// Packed integer arithmetic across the byte/word/dword/qword element
// widths: plain and saturating add/sub, averages, absolute values and
// the multiply variants.

// AbsI8 takes the absolute value of signed bytes (vpabsb).
func (a *Assembler) AbsI8(target, b AVXReg) {
	a.trace("vpabsb %s, %s", target, b)
	a.vexRR(pp66, m0F38, w0, l256, 0x1C, uint8(target), 0, uint8(b))
}

// AbsI8Mem is the memory form of AbsI8.
func (a *Assembler) AbsI8Mem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vpabsb %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x1C, uint8(target), 0, b, disp)
}

// AbsI16 takes the absolute value of signed words (vpabsw).
func (a *Assembler) AbsI16(target, b AVXReg) {
	a.trace("vpabsw %s, %s", target, b)
	a.vexRR(pp66, m0F38, w0, l256, 0x1D, uint8(target), 0, uint8(b))
}

// AbsI16Mem is the memory form of AbsI16.
func (a *Assembler) AbsI16Mem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vpabsw %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x1D, uint8(target), 0, b, disp)
}

// AbsI32 takes the absolute value of signed dwords (vpabsd).
func (a *Assembler) AbsI32(target, b AVXReg) {
	a.trace("vpabsd %s, %s", target, b)
	a.vexRR(pp66, m0F38, w0, l256, 0x1E, uint8(target), 0, uint8(b))
}

// AbsI32Mem is the memory form of AbsI32.
func (a *Assembler) AbsI32Mem(target AVXReg, b Reg, disp int32) bool {
	a.trace("vpabsd %s, [%s%+d]", target, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x1E, uint8(target), 0, b, disp)
}

// AvgI8 averages unsigned bytes with rounding (vpavgb).
func (a *Assembler) AvgI8(target, x, y AVXReg) {
	a.trace("vpavgb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE0, uint8(target), uint8(x), uint8(y))
}

// AvgI8Mem is the memory form of AvgI8.
func (a *Assembler) AvgI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpavgb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE0, uint8(target), uint8(x), b, disp)
}

// AvgI16 averages unsigned words with rounding (vpavgw).
func (a *Assembler) AvgI16(target, x, y AVXReg) {
	a.trace("vpavgw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE3, uint8(target), uint8(x), uint8(y))
}

// AvgI16Mem is the memory form of AvgI16.
func (a *Assembler) AvgI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpavgw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE3, uint8(target), uint8(x), b, disp)
}

// AddI8 adds packed bytes (vpaddb).
func (a *Assembler) AddI8(target, x, y AVXReg) {
	a.trace("vpaddb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xFC, uint8(target), uint8(x), uint8(y))
}

// AddI8Mem is the memory form of AddI8.
func (a *Assembler) AddI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xFC, uint8(target), uint8(x), b, disp)
}

// AddI16 adds packed words (vpaddw).
func (a *Assembler) AddI16(target, x, y AVXReg) {
	a.trace("vpaddw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xFD, uint8(target), uint8(x), uint8(y))
}

// AddI16Mem is the memory form of AddI16.
func (a *Assembler) AddI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xFD, uint8(target), uint8(x), b, disp)
}

// AddI32 adds packed dwords (vpaddd).
func (a *Assembler) AddI32(target, x, y AVXReg) {
	a.trace("vpaddd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xFE, uint8(target), uint8(x), uint8(y))
}

// AddI32Mem is the memory form of AddI32.
func (a *Assembler) AddI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xFE, uint8(target), uint8(x), b, disp)
}

// AddI64 adds packed qwords (vpaddq).
func (a *Assembler) AddI64(target, x, y AVXReg) {
	a.trace("vpaddq %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xD4, uint8(target), uint8(x), uint8(y))
}

// AddI64Mem is the memory form of AddI64.
func (a *Assembler) AddI64Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddq %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xD4, uint8(target), uint8(x), b, disp)
}

// AddSI8 adds signed bytes with saturation (vpaddsb).
func (a *Assembler) AddSI8(target, x, y AVXReg) {
	a.trace("vpaddsb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xEC, uint8(target), uint8(x), uint8(y))
}

// AddSI8Mem is the memory form of AddSI8.
func (a *Assembler) AddSI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddsb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xEC, uint8(target), uint8(x), b, disp)
}

// AddSI16 adds signed words with saturation (vpaddsw).
func (a *Assembler) AddSI16(target, x, y AVXReg) {
	a.trace("vpaddsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xED, uint8(target), uint8(x), uint8(y))
}

// AddSI16Mem is the memory form of AddSI16.
func (a *Assembler) AddSI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xED, uint8(target), uint8(x), b, disp)
}

// AddSU8 adds unsigned bytes with saturation (vpaddusb).
func (a *Assembler) AddSU8(target, x, y AVXReg) {
	a.trace("vpaddusb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xDC, uint8(target), uint8(x), uint8(y))
}

// AddSU8Mem is the memory form of AddSU8.
func (a *Assembler) AddSU8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddusb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xDC, uint8(target), uint8(x), b, disp)
}

// AddSU16 adds unsigned words with saturation (vpaddusw).
func (a *Assembler) AddSU16(target, x, y AVXReg) {
	a.trace("vpaddusw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xDD, uint8(target), uint8(x), uint8(y))
}

// AddSU16Mem is the memory form of AddSU16.
func (a *Assembler) AddSU16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpaddusw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xDD, uint8(target), uint8(x), b, disp)
}

// SubI8 subtracts packed bytes (vpsubb).
func (a *Assembler) SubI8(target, x, y AVXReg) {
	a.trace("vpsubb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xF8, uint8(target), uint8(x), uint8(y))
}

// SubI8Mem is the memory form of SubI8.
func (a *Assembler) SubI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xF8, uint8(target), uint8(x), b, disp)
}

// SubI16 subtracts packed words (vpsubw).
func (a *Assembler) SubI16(target, x, y AVXReg) {
	a.trace("vpsubw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xF9, uint8(target), uint8(x), uint8(y))
}

// SubI16Mem is the memory form of SubI16.
func (a *Assembler) SubI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xF9, uint8(target), uint8(x), b, disp)
}

// SubI32 subtracts packed dwords (vpsubd).
func (a *Assembler) SubI32(target, x, y AVXReg) {
	a.trace("vpsubd %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xFA, uint8(target), uint8(x), uint8(y))
}

// SubI32Mem is the memory form of SubI32.
func (a *Assembler) SubI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubd %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xFA, uint8(target), uint8(x), b, disp)
}

// SubI64 subtracts packed qwords (vpsubq).
func (a *Assembler) SubI64(target, x, y AVXReg) {
	a.trace("vpsubq %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xFB, uint8(target), uint8(x), uint8(y))
}

// SubI64Mem is the memory form of SubI64.
func (a *Assembler) SubI64Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubq %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xFB, uint8(target), uint8(x), b, disp)
}

// SubSI8 subtracts signed bytes with saturation (vpsubsb).
func (a *Assembler) SubSI8(target, x, y AVXReg) {
	a.trace("vpsubsb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE8, uint8(target), uint8(x), uint8(y))
}

// SubSI8Mem is the memory form of SubSI8.
func (a *Assembler) SubSI8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubsb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE8, uint8(target), uint8(x), b, disp)
}

// SubSI16 subtracts signed words with saturation (vpsubsw).
func (a *Assembler) SubSI16(target, x, y AVXReg) {
	a.trace("vpsubsw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE9, uint8(target), uint8(x), uint8(y))
}

// SubSI16Mem is the memory form of SubSI16.
func (a *Assembler) SubSI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubsw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE9, uint8(target), uint8(x), b, disp)
}

// SubSU8 subtracts unsigned bytes with saturation (vpsubusb).
func (a *Assembler) SubSU8(target, x, y AVXReg) {
	a.trace("vpsubusb %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xD8, uint8(target), uint8(x), uint8(y))
}

// SubSU8Mem is the memory form of SubSU8.
func (a *Assembler) SubSU8Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubusb %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xD8, uint8(target), uint8(x), b, disp)
}

// SubSU16 subtracts unsigned words with saturation (vpsubusw).
func (a *Assembler) SubSU16(target, x, y AVXReg) {
	a.trace("vpsubusw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xD9, uint8(target), uint8(x), uint8(y))
}

// SubSU16Mem is the memory form of SubSU16.
func (a *Assembler) SubSU16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpsubusw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xD9, uint8(target), uint8(x), b, disp)
}

// MulLI16 multiplies signed words, keeping the low halves (vpmullw).
func (a *Assembler) MulLI16(target, x, y AVXReg) {
	a.trace("vpmullw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xD5, uint8(target), uint8(x), uint8(y))
}

// MulLI16Mem is the memory form of MulLI16.
func (a *Assembler) MulLI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmullw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xD5, uint8(target), uint8(x), b, disp)
}

// MulHI16 multiplies signed words, keeping the high halves (vpmulhw).
func (a *Assembler) MulHI16(target, x, y AVXReg) {
	a.trace("vpmulhw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE5, uint8(target), uint8(x), uint8(y))
}

// MulHI16Mem is the memory form of MulHI16.
func (a *Assembler) MulHI16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmulhw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE5, uint8(target), uint8(x), b, disp)
}

// MulHU16 multiplies unsigned words, keeping the high halves (vpmulhuw).
func (a *Assembler) MulHU16(target, x, y AVXReg) {
	a.trace("vpmulhuw %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F, w0, l256, 0xE4, uint8(target), uint8(x), uint8(y))
}

// MulHU16Mem is the memory form of MulHU16.
func (a *Assembler) MulHU16Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmulhuw %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F, w0, l256, 0xE4, uint8(target), uint8(x), b, disp)
}

// MulLI32 multiplies signed dwords, keeping the low halves (vpmulld).
func (a *Assembler) MulLI32(target, x, y AVXReg) {
	a.trace("vpmulld %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x40, uint8(target), uint8(x), uint8(y))
}

// MulLI32Mem is the memory form of MulLI32.
func (a *Assembler) MulLI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmulld %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x40, uint8(target), uint8(x), b, disp)
}

// MulI32 multiplies the even signed dwords into qwords (vpmuldq).
func (a *Assembler) MulI32(target, x, y AVXReg) {
	a.trace("vpmuldq %s, %s, %s", target, x, y)
	a.vexRR(pp66, m0F38, w0, l256, 0x28, uint8(target), uint8(x), uint8(y))
}

// MulI32Mem is the memory form of MulI32.
func (a *Assembler) MulI32Mem(target, x AVXReg, b Reg, disp int32) bool {
	a.trace("vpmuldq %s, %s, [%s%+d]", target, x, b, disp)
	return a.vexRM(pp66, m0F38, w0, l256, 0x28, uint8(target), uint8(x), b, disp)
}
