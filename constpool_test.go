// Completion: 100% - Constant pool tests complete
package vpu

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestPoolAlignmentAndPayload(t *testing.T) {
	a := newAsm(t, 0)
	pi := a.Set1PS(4.5)
	pattern := a.SetPS(1, 2, 3, 4, 5, 6, 7, 8)
	a.LoadConst(YMM1, pi)
	a.LoadConst(YMM2, pattern)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	off, ok := a.ConstOffset(pi)
	if !ok {
		t.Fatal("ConstOffset failed")
	}
	if off%32 != 0 {
		t.Fatalf("pool offset %d not 32-byte aligned", off)
	}
	page := a.page[off : off+32]
	want45 := math.Float32bits(4.5)
	for i := 0; i < 8; i++ {
		if got := binary.LittleEndian.Uint32(page[i*4:]); got != want45 {
			t.Fatalf("lane %d = %#x, want %#x", i, got, want45)
		}
	}

	off2, _ := a.ConstOffset(pattern)
	if off2 != off+32 {
		t.Fatalf("second constant at %d, want %d", off2, off+32)
	}
	var want bytes.Buffer
	for i := 1; i <= 8; i++ {
		binary.Write(&want, binary.LittleEndian, math.Float32bits(float32(i)))
	}
	if !bytes.Equal(a.page[off2:off2+32], want.Bytes()) {
		t.Fatal("pattern constant payload mismatch")
	}
}

func TestLoadConstDisplacement(t *testing.T) {
	a := newAsm(t, 0)
	id := a.Set1PS(1.0)
	a.LoadConst(YMM0, id) // vmovaps ymm0,[rip+d]: 4 byte head, disp at 4
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	off, _ := a.ConstOffset(id)
	disp := int32(binary.LittleEndian.Uint32(a.Bytecode()[4:]))
	if got := int32(off) - int32(4+4); disp != got {
		t.Fatalf("rip disp = %d, want %d", disp, got)
	}
}

func TestSetPDPayload(t *testing.T) {
	a := newAsm(t, 0)
	id := a.SetPD(1.5, -2.5, 3.5, -4.5)
	a.LoadConst(YMM0, id)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	off, _ := a.ConstOffset(id)
	for i, v := range []float64{1.5, -2.5, 3.5, -4.5} {
		got := binary.LittleEndian.Uint64(a.page[off+i*8:])
		if got != math.Float64bits(v) {
			t.Fatalf("lane %d mismatch", i)
		}
	}
}

func TestLoadConstBadID(t *testing.T) {
	a := newAsm(t, 0)
	a.LoadConst(YMM0, 42)
	if Category(a.Err()) != CategoryOperand {
		t.Fatalf("category = %v, want operand", Category(a.Err()))
	}
	if a.NumBytes() != 0 {
		t.Fatal("bad LoadConst emitted bytes")
	}
	// operand errors are local: the session keeps assembling
	a.Ret()
	if a.NumBytes() != 1 {
		t.Fatal("session stopped emitting after a local operand error")
	}
	if err := a.End(); err != nil {
		t.Fatalf("End failed after a local operand error: %v", err)
	}
}

func TestConstIDsStableUntilBegin(t *testing.T) {
	a := newAsm(t, 0)
	first := a.Set1EPI32(7)
	second := a.Set1EPI32(9)
	if first != 0 || second != 1 {
		t.Fatalf("ids = %d,%d want 0,1", first, second)
	}
	a.Begin()
	if again := a.Set1EPI32(7); again != 0 {
		t.Fatalf("id after Begin = %d, want 0", again)
	}
}

func TestPoolOverflowPoisonsSession(t *testing.T) {
	a := newAsm(t, 4096)
	// more constants than a 4K page can hold after even minimal code
	for i := 0; i < 130; i++ {
		a.Set1EPI32(int32(i))
	}
	a.Ret()
	err := a.End()
	if Category(err) != CategoryCapacity {
		t.Fatalf("End error = %v, want capacity", err)
	}
	if a.Execute(nil) == nil {
		t.Fatal("Execute ran after capacity failure")
	}
	_, _, failedOp := a.CapacityReport()
	if failedOp < 0 {
		t.Fatal("capacity report missing the failing op")
	}
}
