// Completion: 100% - Session state machine tests complete
package vpu

import (
	"testing"
)

func TestNumBytesMonotonic(t *testing.T) {
	a := newAsm(t, 0)
	last := 0
	for i := 0; i < 20; i++ {
		a.AddPS(YMM0, YMM1, YMM2)
		if n := a.NumBytes(); n < last {
			t.Fatalf("NumBytes went backwards: %d -> %d", last, n)
		} else {
			last = n
		}
	}
	a.Begin()
	if a.NumBytes() != 0 {
		t.Fatal("Begin did not reset NumBytes")
	}
}

func TestExecuteBeforeEndRefuses(t *testing.T) {
	a := newAsm(t, 0)
	a.Ret()
	if err := a.Execute(nil); Category(err) != CategoryState {
		t.Fatalf("Execute error = %v, want state", err)
	}
}

func TestBeginReusesSession(t *testing.T) {
	a := newAsm(t, 0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("first End failed: %v", err)
	}
	a.Begin()
	a.AddPS(YMM0, YMM0, YMM0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("second End failed: %v", err)
	}
	if a.Err() != nil {
		t.Fatalf("session error after reuse: %v", a.Err())
	}
}

func TestCodeOverflowLeavesBufferUnchanged(t *testing.T) {
	a := newAsm(t, 4096)
	for a.NumBytes()+4 <= 4096 && a.Err() == nil {
		a.AddPS(YMM0, YMM1, YMM2) // 4 bytes each
	}
	n := a.NumBytes()
	ok := a.AddPSMem(YMM0, YMM1, RCX, 0) // 8 bytes, cannot fit
	if ok {
		t.Fatal("memory-form op claimed success on a full page")
	}
	if a.NumBytes() != n {
		t.Fatalf("buffer grew on failed emit: %d -> %d", n, a.NumBytes())
	}
	if Category(a.Err()) != CategoryCapacity {
		t.Fatalf("category = %v, want capacity", Category(a.Err()))
	}
}

func TestEndTwiceIsStateError(t *testing.T) {
	a := newAsm(t, 0)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.End(); Category(err) != CategoryState {
		t.Fatalf("second End error = %v, want state", err)
	}
}

func TestBytecodeStableUntilBegin(t *testing.T) {
	a := newAsm(t, 0)
	a.AddPS(YMM0, YMM1, YMM2)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	code := a.Bytecode()
	if len(code) != 5 {
		t.Fatalf("bytecode length = %d, want 5", len(code))
	}
	if code[0] != 0xC5 || code[4] != 0xC3 {
		t.Fatal("bytecode content unexpected")
	}
}

func TestReleaseKillsSession(t *testing.T) {
	a, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a.Release()
	a.Begin() // must not crash
	a.AddPS(YMM0, YMM1, YMM2)
	if a.Execute(nil) == nil {
		t.Fatal("Execute ran on a released session")
	}
}
