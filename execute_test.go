// Completion: 100% - Execution scenario tests complete
package vpu

import (
	"math"
	"testing"
	"unsafe"
)

// These tests run the emitted code for real, so they need an AVX2+FMA
// host. Each one mirrors a classic usage pattern: straight moves,
// packed arithmetic, a normalization kernel, a counted loop, a forward
// branch, and the constant pool.

func TestExecuteAlignedMoveThrough(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 16, func(k int) float32 { return 0.1 * float32(k) })

	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RCX, 32)
	a.MovUPSLoad(YMM1, RCX, 80)
	a.MovAPSStore(RCX, 0, YMM0)
	a.MovUPSStore(RCX, 8, YMM1)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// row 1 landed at the start, then the unaligned store at +8 laid
	// the 0.2/0.3 split from [rcx+80] over floats 2..9
	for i, want := range []float32{0.1, 0.1, 0.2, 0.2, 0.2, 0.2, 0.3, 0.3, 0.3, 0.3} {
		if data[i] != want {
			t.Fatalf("data[%d] = %v, want %v", i, data[i], want)
		}
	}
	for i := 10; i < 16; i++ {
		if data[i] != 0.1 {
			t.Fatalf("data[%d] = %v, want 0.1 (row 1 tail untouched)", i, data[i])
		}
	}
}

func TestExecutePackedAdd(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 16, func(k int) float32 { return 0.1 * float32(k) })

	a := newAsm(t, 0)
	a.MovAPSLoad(YMM1, RCX, 32)
	a.MovAPSLoad(YMM2, RCX, 64)
	a.AddPS(YMM0, YMM1, YMM2)
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if diff := math.Abs(float64(data[i]) - 0.3); diff > 1e-6 {
			t.Fatalf("row0[%d] = %v, want 0.3", i, data[i])
		}
	}
}

func TestExecuteRSqrtNormalize(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 3, func(k int) float32 { return float32(k + 1) })

	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RCX, 0)
	a.MovAPSLoad(YMM1, RCX, 32)
	a.MovAPSLoad(YMM2, RCX, 64)
	a.MulPS(YMM3, YMM0, YMM0)
	a.MovAPS(YMM4, YMM1)
	a.FmAddPS(YMM4, YMM1, YMM3)
	a.MovAPS(YMM3, YMM2)
	a.FmAddPS(YMM3, YMM2, YMM4)
	a.RSqrtPS(YMM3, YMM3)
	a.MulPS(YMM0, YMM0, YMM3)
	a.MulPS(YMM1, YMM1, YMM3)
	a.MulPS(YMM2, YMM2, YMM3)
	a.MovAPSStore(RCX, 0, YMM0)
	a.MovAPSStore(RCX, 32, YMM1)
	a.MovAPSStore(RCX, 64, YMM2)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		x := float64(data[i])
		y := float64(data[8+i])
		z := float64(data[16+i])
		if l := math.Sqrt(x*x + y*y + z*z); math.Abs(l-1.0) > 1e-3 {
			t.Fatalf("lane %d length = %v, want 1.0", i, l)
		}
	}
}

func TestExecuteCountdownLoop(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 10, func(k int) float32 { return 0.1 })

	a := newAsm(t, 0)
	a.SetZero(YMM0)
	a.Mov(RAX, RCX)
	a.LoadCount(R9, 10)
	a.InsertLabel("loop")
	a.AddPSMem(YMM0, YMM0, RAX, 0)
	a.Lea(RAX, RAX, 32)
	a.Dec(R9)
	a.JumpNeLabel("loop")
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if diff := math.Abs(float64(data[i]) - 1.0); diff > 1e-5 {
			t.Fatalf("lane %d = %v, want 1.0", i, data[i])
		}
	}
}

func TestExecuteForwardJump(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 1, func(k int) float32 { return -1.5 })

	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RCX, 0)
	a.MoveMaskPS(RBX, YMM0)
	a.Cmp(RBX, 0xFF)
	a.JumpEqLabel("all_negative")
	a.SetZero(YMM0)
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	a.InsertLabel("all_negative")
	a.AddPS(YMM0, YMM0, YMM0)
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if data[i] != -3.0 {
			t.Fatalf("lane %d = %v, want -3.0 (branch not taken?)", i, data[i])
		}
	}
}

func TestExecuteConstantPool(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 3, func(k int) float32 { return 2.0 })

	a := newAsm(t, 0)
	broadcast := a.Set1PS(4.5)
	pattern := a.SetPS(1, 2, 3, 4, 5, 6, 7, 8)
	a.MovAPSLoad(YMM0, RCX, 0)
	a.LoadConst(YMM1, broadcast)
	a.LoadConst(YMM2, pattern)
	a.MulPS(YMM1, YMM1, YMM0)
	a.MulPS(YMM2, YMM2, YMM0)
	a.MovAPSStore(RCX, 32, YMM1)
	a.MovAPSStore(RCX, 64, YMM2)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if data[8+i] != 9.0 {
			t.Fatalf("broadcast product lane %d = %v, want 9.0", i, data[8+i])
		}
		if want := 2.0 * float32(i+1); data[16+i] != want {
			t.Fatalf("pattern product lane %d = %v, want %v", i, data[16+i], want)
		}
	}
}

func TestExecuteProcedures(t *testing.T) {
	requireAVX2(t)
	data := alignedRows(t, 1, func(k int) float32 { return 1.5 })

	a := newAsm(t, 0)
	a.MovAPSLoad(YMM0, RCX, 0)
	a.CallProcedure("double")
	a.CallProcedure("double")
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	a.Procedure("double")
	a.AddPS(YMM0, YMM0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.Execute(unsafe.Pointer(&data[0])); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if data[i] != 6.0 {
			t.Fatalf("lane %d = %v, want 6.0", i, data[i])
		}
	}
}

func TestExecuteGather(t *testing.T) {
	requireAVX2(t)
	src := alignedRows(t, 2, func(k int) float32 { return 0 })
	for i := 0; i < 16; i++ {
		src[i] = float32(i) * 10
	}
	data := alignedRows(t, 1, func(k int) float32 { return 0 })

	a := newAsm(t, 0)
	indices := a.SetEPI32(15, 3, 9, 0, 7, 2, 11, 5)
	a.LoadConst(YMM1, indices)
	a.CmpEqI8(YMM2, YMM2, YMM2) // all-ones mask
	if !a.I32GatherPS(YMM0, YMM1, YMM2, RDX, 0, 4) {
		t.Fatal("gather refused")
	}
	a.MovAPSStore(RCX, 0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	// abuse the table slot to pass the source array in RDX
	if err := a.execute(uintptr(unsafe.Pointer(&data[0])), uintptr(unsafe.Pointer(&src[0])), 0); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []float32{150, 30, 90, 0, 70, 20, 110, 50}
	for i, w := range want {
		if data[i] != w {
			t.Fatalf("gathered lane %d = %v, want %v", i, data[i], w)
		}
	}
}
