// Completion: 100% - Resolver tests complete
package vpu

import (
	"encoding/binary"
	"errors"
	"testing"
)

func disp32At(b []byte, site int) int32 {
	return int32(binary.LittleEndian.Uint32(b[site:]))
}

func TestBackwardJumpPatchedImmediately(t *testing.T) {
	a := newAsm(t, 0)
	a.InsertLabel("top") // offset 0
	a.Dec(R9)            // 3 bytes
	a.JumpNeLabel("top") // jcc at 3, disp site 5
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	want := int32(0) - int32(5+4)
	if got := disp32At(a.Bytecode(), 5); got != want {
		t.Fatalf("backward disp = %d, want %d", got, want)
	}
}

func TestForwardJumpPatchedAtInsert(t *testing.T) {
	a := newAsm(t, 0)
	a.JumpEqLabel("done") // disp site 2, end of insn 6
	a.Dec(R9)             // 3 bytes
	a.InsertLabel("done") // offset 9
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got := disp32At(a.Bytecode(), 2); got != 3 {
		t.Fatalf("forward disp = %d, want 3", got)
	}
}

func TestUnresolvedLabelFailsEnd(t *testing.T) {
	a := newAsm(t, 0)
	a.JumpEqLabel("nowhere")
	err := a.End()
	if err == nil {
		t.Fatal("End succeeded with an unresolved label")
	}
	if Category(err) != CategoryResolution {
		t.Fatalf("category = %v, want resolution", Category(err))
	}
	if a.Execute(nil) == nil {
		t.Fatal("Execute ran a poisoned session")
	}
}

func TestDuplicateLabelIsFatal(t *testing.T) {
	a := newAsm(t, 0)
	a.InsertLabel("x")
	a.InsertLabel("x")
	if !errors.Is(a.Err(), errDuplicateLabel) {
		t.Fatalf("err = %v, want duplicate label", a.Err())
	}
}

func TestProcedureCalledBeforeDefinition(t *testing.T) {
	a := newAsm(t, 0)
	a.CallProcedure("f") // E8 at 0, disp site 1
	a.Ret()              // offset 5
	a.Procedure("f")     // offset 6
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got := disp32At(a.Bytecode(), 1); got != 1 {
		t.Fatalf("call disp = %d, want 1", got)
	}
	if off, ok := a.ProcedureOffset("f"); !ok || off != 6 {
		t.Fatalf("ProcedureOffset = %d,%v want 6,true", off, ok)
	}
}

func TestProcedureCalledAfterDefinition(t *testing.T) {
	a := newAsm(t, 0)
	a.Procedure("f") // offset 0
	a.Ret()
	a.CallProcedure("f") // E8 at 1, disp site 2
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	want := int32(0) - int32(2+4)
	if got := disp32At(a.Bytecode(), 2); got != want {
		t.Fatalf("call disp = %d, want %d", got, want)
	}
}

func TestUndefinedProcedureFailsEnd(t *testing.T) {
	a := newAsm(t, 0)
	a.CallProcedure("ghost")
	if err := a.End(); Category(err) != CategoryResolution {
		t.Fatalf("End error = %v, want resolution", err)
	}
}

func TestJumpToAbsoluteOffset(t *testing.T) {
	a := newAsm(t, 0)
	a.Dec(R9)      // offsets 0..2
	a.JumpNeTo(0)  // at 3, ends at 9
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got := disp32At(a.Bytecode(), 5); got != -9 {
		t.Fatalf("absolute jump disp = %d, want -9", got)
	}
}

func TestRawRelativeJumpIsVerbatim(t *testing.T) {
	a := newAsm(t, 0)
	a.JumpEq(-123)
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got := disp32At(a.Bytecode(), 2); got != -123 {
		t.Fatalf("raw disp = %d, want -123", got)
	}
}

func TestEmitOutsideBeginIsStateError(t *testing.T) {
	a, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Release()
	a.AddPS(YMM0, YMM1, YMM2) // no Begin
	if Category(a.Err()) != CategoryState {
		t.Fatalf("category = %v, want state", Category(a.Err()))
	}
}
