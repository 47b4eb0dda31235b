// Completion: 100% - Function table tests complete
package vpu

import (
	"errors"
	"testing"
)

func TestAddFuncDuplicateName(t *testing.T) {
	ft := NewFunctionTable()
	if err := ft.AddFunc("f", 0x1000, OneArg); err != nil {
		t.Fatalf("AddFunc failed: %v", err)
	}
	if err := ft.AddFunc("f", 0x2000, TwoArgs); !errors.Is(err, errDuplicateFunc) {
		t.Fatalf("duplicate AddFunc error = %v", err)
	}
}

func TestFuncInfoInsertionOrder(t *testing.T) {
	ft := NewFunctionTable()
	ft.AddFunc("first", 0x1000, OneArg)
	ft.AddFunc("second", 0x2000, TwoArgsD)
	ft.AddFunc("third", 0x3000, NoArgs)

	typ, idx, ok := ft.FuncInfo("second")
	if !ok || typ != TwoArgsD || idx != 1 {
		t.Fatalf("FuncInfo(second) = %v,%d,%v", typ, idx, ok)
	}
	if _, _, ok := ft.FuncInfo("missing"); ok {
		t.Fatal("FuncInfo found a missing name")
	}
}

func TestFunctionTypeProperties(t *testing.T) {
	if NoArgs.NumArgs() != 0 || FiveArgs.NumArgs() != 5 {
		t.Fatal("single precision arg counts wrong")
	}
	if ThreeArgsD.NumArgs() != 3 || !ThreeArgsD.Double() {
		t.Fatal("double precision arg counts wrong")
	}
	if OneArg.Double() {
		t.Fatal("OneArg claims double precision")
	}
}

func TestCallUnknownNameReturnsFalse(t *testing.T) {
	ft := NewFunctionTable()
	a := newAsm(t, 0)
	if a.Call("missing", ft) {
		t.Fatal("Call claimed success for an unknown name")
	}
	if a.NumBytes() != 0 {
		t.Fatal("Call emitted bytes for an unknown name")
	}
}

func TestCallEmitsImm64IndirectCall(t *testing.T) {
	ft := NewFunctionTable()
	ft.AddFunc("f", 0x1122334455667788, OneArg)
	a := newAsm(t, 0)
	if !a.Call("f", ft) {
		t.Fatal("Call failed")
	}
	wantBytes(t, a, []byte{
		0x48, 0xB8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
		0xFF, 0xD0,
	})
}
