// Completion: 100% - Encoding round-trip tests complete
package vpu

import (
	"testing"
)

// The expected byte sequences below were cross-checked against
// assembler output for the same instructions (with this library's
// always-disp32 memory policy).

func TestEncodeAddPSRegister(t *testing.T) {
	a := newAsm(t, 0)
	a.AddPS(YMM0, YMM1, YMM2)
	wantBytes(t, a, []byte{0xC5, 0xF4, 0x58, 0xC2})
}

func TestEncodeAddPSHighRegisters(t *testing.T) {
	// ymm8..ymm10 force the three-byte VEX form
	a := newAsm(t, 0)
	a.AddPS(YMM8, YMM9, YMM10)
	wantBytes(t, a, []byte{0xC4, 0x41, 0x34, 0x58, 0xC2})
}

func TestEncodeAddPDUses66Prefix(t *testing.T) {
	a := newAsm(t, 0)
	a.AddPD(YMM0, YMM1, YMM2)
	wantBytes(t, a, []byte{0xC5, 0xF5, 0x58, 0xC2})
}

func TestEncodeMovAPSLoadStore(t *testing.T) {
	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RCX, 32)
	a.MovAPSStore(RCX, 0, YMM0)
	wantBytes(t, a, []byte{
		0xC5, 0xFC, 0x28, 0x81, 0x20, 0x00, 0x00, 0x00,
		0xC5, 0xFC, 0x29, 0x81, 0x00, 0x00, 0x00, 0x00,
	})
}

func TestEncodeMovUPS(t *testing.T) {
	a := newAsm(t, 0)
	a.MovUPSLoad(YMM1, RCX, 80)
	a.MovUPSStore(RCX, 8, YMM1)
	wantBytes(t, a, []byte{
		0xC5, 0xFC, 0x10, 0x89, 0x50, 0x00, 0x00, 0x00,
		0xC5, 0xFC, 0x11, 0x89, 0x08, 0x00, 0x00, 0x00,
	})
}

func TestEncodeRSPBaseNeedsSIB(t *testing.T) {
	a := newAsm(t, 0)
	a.MovAPSLoad(YMM1, RSP, 16)
	wantBytes(t, a, []byte{0xC5, 0xFC, 0x28, 0x8C, 0x24, 0x10, 0x00, 0x00, 0x00})
}

func TestEncodeR12BaseNeedsSIB(t *testing.T) {
	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, R12, 0)
	wantBytes(t, a, []byte{0xC4, 0xC1, 0x7C, 0x28, 0x84, 0x24, 0x00, 0x00, 0x00, 0x00})
}

func TestEncodeRBPBaseZeroDisp(t *testing.T) {
	// mod=10 keeps RBP unambiguous even with a zero displacement
	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RBP, 0)
	wantBytes(t, a, []byte{0xC5, 0xFC, 0x28, 0x85, 0x00, 0x00, 0x00, 0x00})
}

func TestEncodeFMA213(t *testing.T) {
	a := newAsm(t, 0)
	a.FmAddPS(YMM0, YMM1, YMM2)
	a.FmAddPD(YMM0, YMM1, YMM2)
	wantBytes(t, a, []byte{
		0xC4, 0xE2, 0x75, 0xA8, 0xC2,
		0xC4, 0xE2, 0xF5, 0xA8, 0xC2,
	})
}

func TestEncodeScalarSS(t *testing.T) {
	a := newAsm(t, 0)
	a.AddSS(YMM0, YMM1, YMM2)
	a.MulSD(YMM0, YMM1, YMM2)
	wantBytes(t, a, []byte{
		0xC5, 0xF2, 0x58, 0xC2,
		0xC5, 0xF3, 0x59, 0xC2,
	})
}

func TestEncodeCmpPS(t *testing.T) {
	a := newAsm(t, 0)
	a.CmpPS(YMM0, YMM1, YMM2, CmpLEOS)
	wantBytes(t, a, []byte{0xC5, 0xF4, 0xC2, 0xC2, 0x02})
}

func TestEncodeMoveMask(t *testing.T) {
	a := newAsm(t, 0)
	a.MoveMaskPS(RAX, YMM3)
	a.MoveMaskI8(RBX, YMM0)
	wantBytes(t, a, []byte{
		0xC5, 0xFC, 0x50, 0xC3,
		0xC5, 0xFD, 0xD7, 0xD8,
	})
}

func TestEncodeShiftImmediate(t *testing.T) {
	// NDD form: destination in vvvv, opcode extension in modrm.reg
	a := newAsm(t, 0)
	a.LShiftU32(YMM1, YMM2, 5)
	a.RShiftU32(YMM1, YMM2, 23)
	wantBytes(t, a, []byte{
		0xC5, 0xF5, 0x72, 0xF2, 0x05,
		0xC5, 0xF5, 0x72, 0xD2, 0x17,
	})
}

func TestEncodeVariableShift(t *testing.T) {
	a := newAsm(t, 0)
	a.LShiftVU32(YMM0, YMM1, YMM2)
	a.LShiftVU64(YMM0, YMM1, YMM2)
	wantBytes(t, a, []byte{
		0xC4, 0xE2, 0x75, 0x47, 0xC2,
		0xC4, 0xE2, 0xF5, 0x47, 0xC2,
	})
}

func TestEncodeRoundPS(t *testing.T) {
	a := newAsm(t, 0)
	a.RoundPS(YMM0, YMM1, RoundNint)
	wantBytes(t, a, []byte{0xC4, 0xE3, 0x7D, 0x08, 0xC1, 0x00})
}

func TestEncodeBroadcast(t *testing.T) {
	a := newAsm(t, 0)
	a.BroadcastSS(YMM0, YMM1)
	a.BroadcastSD(YMM2, YMM3)
	wantBytes(t, a, []byte{
		0xC4, 0xE2, 0x7D, 0x18, 0xC1,
		0xC4, 0xE2, 0x7D, 0x19, 0xD3,
	})
}

func TestEncodeBlendVPS(t *testing.T) {
	a := newAsm(t, 0)
	a.BlendVPS(YMM0, YMM1, YMM2, YMM3)
	wantBytes(t, a, []byte{0xC4, 0xE3, 0x75, 0x4A, 0xC2, 0x30})
}

func TestEncodePermute2F128(t *testing.T) {
	a := newAsm(t, 0)
	a.Permute2F128(YMM0, YMM1, YMM2, 0x21)
	wantBytes(t, a, []byte{0xC4, 0xE3, 0x75, 0x06, 0xC2, 0x21})
}

func TestEncodeExtractF128(t *testing.T) {
	a := newAsm(t, 0)
	a.ExtractF128(YMM1, YMM2)
	wantBytes(t, a, []byte{0xC4, 0xE3, 0x7D, 0x19, 0xD1, 0x01})
}

func TestEncodeGather(t *testing.T) {
	a := newAsm(t, 0)
	if !a.I32GatherPS(YMM0, YMM1, YMM2, RAX, 0, 4) {
		t.Fatal("gather refused a valid scale")
	}
	wantBytes(t, a, []byte{0xC4, 0xE2, 0x6D, 0x92, 0x84, 0x88, 0x00, 0x00, 0x00, 0x00})
}

func TestEncodeGatherBadScale(t *testing.T) {
	a := newAsm(t, 0)
	if a.I32GatherPS(YMM0, YMM1, YMM2, RAX, 0, 3) {
		t.Fatal("gather accepted scale 3")
	}
	if a.NumBytes() != 0 {
		t.Fatalf("buffer changed on refused gather: %d bytes", a.NumBytes())
	}
}

func TestEncodeGPR(t *testing.T) {
	a := newAsm(t, 0)
	a.Push(RBP)
	a.Push(R9)
	a.Mov(RAX, RCX)
	a.Dec(R9)
	a.Cmp(RBX, 0xFF)
	a.Ret()
	wantBytes(t, a, []byte{
		0x55,
		0x41, 0x51,
		0x48, 0x89, 0xC8,
		0x49, 0xFF, 0xC9,
		0x48, 0x81, 0xFB, 0xFF, 0x00, 0x00, 0x00,
		0xC3,
	})
}

func TestEncodeLeaWithSIB(t *testing.T) {
	a := newAsm(t, 0)
	a.Lea(RBP, RSP, 32)
	wantBytes(t, a, []byte{0x48, 0x8D, 0xAC, 0x24, 0x20, 0x00, 0x00, 0x00})
}

func TestEncodeSetZero(t *testing.T) {
	a := newAsm(t, 0)
	a.SetZero(YMM0)
	wantBytes(t, a, []byte{0xC5, 0xFC, 0x57, 0xC0})
}

func TestEncodeSqrt(t *testing.T) {
	a := newAsm(t, 0)
	a.SqrtPS(YMM0, YMM1)
	a.RSqrtPS(YMM2, YMM3)
	a.RcpPS(YMM4, YMM5)
	wantBytes(t, a, []byte{
		0xC5, 0xFC, 0x51, 0xC1,
		0xC5, 0xFC, 0x52, 0xD3,
		0xC5, 0xFC, 0x53, 0xE5,
	})
}

func TestEncodeIntegerOps(t *testing.T) {
	a := newAsm(t, 0)
	a.AddI32(YMM0, YMM1, YMM2)
	a.SubI32(YMM0, YMM1, YMM2)
	a.MulLI32(YMM0, YMM1, YMM2)
	a.CmpEqI8(YMM0, YMM0, YMM0)
	wantBytes(t, a, []byte{
		0xC5, 0xF5, 0xFE, 0xC2,
		0xC5, 0xF5, 0xFA, 0xC2,
		0xC4, 0xE2, 0x75, 0x40, 0xC2,
		0xC5, 0xFD, 0x74, 0xC0,
	})
}

func TestEncodeDpPDRefuses(t *testing.T) {
	a := newAsm(t, 0)
	a.DpPD(YMM0, YMM1, YMM2, 0x31)
	if a.NumBytes() != 0 {
		t.Fatal("dppd emitted bytes for an absent opcode")
	}
	if Category(a.Err()) != CategoryOperand {
		t.Fatalf("dppd error category = %v", Category(a.Err()))
	}
	// the refusal is local: the session keeps assembling
	a.AddPS(YMM0, YMM1, YMM2)
	a.Ret()
	wantBytes(t, a, []byte{0xC5, 0xF4, 0x58, 0xC2, 0xC3})
}
