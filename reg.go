// Completion: 100% - Register definitions complete
package vpu

// Register definitions for the AVX2 runtime assembler.
// Only the 256-bit YMM registers and the 64-bit general purpose
// registers are addressable; narrower views (xmm, eax, ...) are an
// encoding detail, not part of the surface.

// AVXReg identifies one of the sixteen 256-bit YMM registers.
// Effectively 8 x float32, 4 x float64, or 8 x int32.
type AVXReg uint8

const (
	YMM0 AVXReg = iota
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
)

// Reg identifies one of the sixteen 64-bit general purpose registers.
type Reg uint8

const (
	RAX Reg = iota
	RCX     // receives the 'data' argument on entry
	RDX     // receives the 'function table' argument on entry
	RBX
	RSP // stack pointer
	RBP // base pointer
	RSI
	RDI
	R8 // receives the 'extra' argument on entry
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

var avxRegNames = [16]string{
	"ymm0", "ymm1", "ymm2", "ymm3", "ymm4", "ymm5", "ymm6", "ymm7",
	"ymm8", "ymm9", "ymm10", "ymm11", "ymm12", "ymm13", "ymm14", "ymm15",
}

var regNames = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

func (r AVXReg) String() string {
	if r > YMM15 {
		return "ymm?"
	}
	return avxRegNames[r]
}

func (r Reg) String() string {
	if r > R15 {
		return "r?"
	}
	return regNames[r]
}

// Cmp is a floating point comparison predicate, the immediate byte of
// the AVX vcmpps/vcmppd/vcmpss/vcmpsd family.
type Cmp uint8

const (
	CmpEQOQ    Cmp = 0x00 // equal (ordered, nonsignaling)
	CmpLTOS    Cmp = 0x01 // less-than (ordered, signaling)
	CmpLEOS    Cmp = 0x02 // less-than-or-equal (ordered, signaling)
	CmpUnordQ  Cmp = 0x03 // unordered (nonsignaling)
	CmpNEQUQ   Cmp = 0x04 // not-equal (unordered, nonsignaling)
	CmpNLTUS   Cmp = 0x05 // not-less-than (unordered, signaling)
	CmpNLEUS   Cmp = 0x06 // not-less-than-or-equal (unordered, signaling)
	CmpOrdQ    Cmp = 0x07 // ordered (nonsignaling)
	CmpEQUQ    Cmp = 0x08 // equal (unordered, non-signaling)
	CmpNGEUS   Cmp = 0x09 // not-greater-than-or-equal (unordered, signaling)
	CmpNGTUS   Cmp = 0x0A // not-greater-than (unordered, signaling)
	CmpFalseOQ Cmp = 0x0B // false (ordered, nonsignaling)
	CmpNEQOQ   Cmp = 0x0C // not-equal (ordered, non-signaling)
	CmpGEOS    Cmp = 0x0D // greater-than-or-equal (ordered, signaling)
	CmpGTOS    Cmp = 0x0E // greater-than (ordered, signaling)
	CmpTrueUQ  Cmp = 0x0F // true (unordered, non-signaling)
	CmpEQOS    Cmp = 0x10 // equal (ordered, signaling)
	CmpLTOQ    Cmp = 0x11 // less-than (ordered, nonsignaling)
	CmpLEOQ    Cmp = 0x12 // less-than-or-equal (ordered, nonsignaling)
	CmpUnordS  Cmp = 0x13 // unordered (signaling)
	CmpNEQUS   Cmp = 0x14 // not-equal (unordered, signaling)
	CmpNLTUQ   Cmp = 0x15 // not-less-than (unordered, nonsignaling)
	CmpNLEUQ   Cmp = 0x16 // not-less-than-or-equal (unordered, nonsignaling)
	CmpOrdS    Cmp = 0x17 // ordered (signaling)
	CmpEQUS    Cmp = 0x18 // equal (unordered, signaling)
	CmpNGEUQ   Cmp = 0x19 // not-greater-than-or-equal (unordered, nonsignaling)
	CmpNGTUQ   Cmp = 0x1A // not-greater-than (unordered, nonsignaling)
	CmpFalseOS Cmp = 0x1B // false (ordered, signaling)
	CmpNEQOS   Cmp = 0x1C // not-equal (ordered, signaling)
	CmpGEOQ    Cmp = 0x1D // greater-than-or-equal (ordered, nonsignaling)
	CmpGTOQ    Cmp = 0x1E // greater-than (ordered, nonsignaling)
	CmpTrueUS  Cmp = 0x1F // true (unordered, signaling)
)

// RoundMode combines a rounding direction with an exception suppression
// bit, the immediate byte of vroundps/vroundpd/vroundss/vroundsd.
type RoundMode uint8

const (
	RoundToNearestInt RoundMode = 0x00
	RoundToNegInf     RoundMode = 0x01
	RoundToPosInf     RoundMode = 0x02
	RoundToZero       RoundMode = 0x03
	RoundCurDirection RoundMode = 0x04
	RoundRaiseExc     RoundMode = 0x00
	RoundNoExc        RoundMode = 0x08

	RoundNint      = RoundToNearestInt | RoundRaiseExc
	RoundFloor     = RoundToNegInf | RoundRaiseExc
	RoundCeil      = RoundToPosInf | RoundRaiseExc
	RoundTrunc     = RoundToZero | RoundRaiseExc
	RoundRint      = RoundCurDirection | RoundRaiseExc
	RoundNearbyInt = RoundCurDirection | RoundNoExc
)
