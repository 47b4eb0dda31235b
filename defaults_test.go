// Completion: 100% - Default function suite tests complete
package vpu

import (
	"math"
	"testing"
	"unsafe"
)

// callUnary assembles a data->sin(data) style kernel around one table
// function and runs it over one row.
func callUnary(t *testing.T, ft *FunctionTable, name string, in float32) float32 {
	t.Helper()
	data := alignedRows(t, 1, func(k int) float32 { return in })

	a := newAsm(t, 0)
	a.Push(RBP)
	a.Sub(RSP, 64)
	a.Lea(RBP, RSP, 0)
	a.Mov64Store(RBP, 8, RCX)
	a.MovAPSLoad(YMM0, RCX, 0)
	if !a.Call(name, ft) {
		t.Fatalf("Call(%q) failed", name)
	}
	a.Mov64Load(RCX, RBP, 8)
	a.MovAPSStore(RCX, 0, YMM0)
	a.Add(RSP, 64)
	a.Pop(RBP)
	a.Ret()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := a.ExecuteWithTable(unsafe.Pointer(&data[0]), ft); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	return data[0]
}

func TestAddDefaultsRegistersSuite(t *testing.T) {
	ft := NewFunctionTable()
	if err := ft.AddDefaults(); err != nil {
		t.Fatalf("AddDefaults failed: %v", err)
	}
	defer ft.Release()

	typ, idx, ok := ft.FuncInfo("abs")
	if !ok || typ != OneArg || idx != 0 {
		t.Fatalf("FuncInfo(abs) = %v,%d,%v", typ, idx, ok)
	}
	if typ, _, ok := ft.FuncInfo("atan2"); !ok || typ != TwoArgs {
		t.Fatal("atan2 missing or mistyped")
	}
	if typ, _, ok := ft.FuncInfo("powd"); !ok || typ != TwoArgsD {
		t.Fatal("powd missing or mistyped")
	}
	if _, _, ok := ft.FuncInfo("sind"); !ok {
		t.Fatal("sind missing")
	}
}

func TestDefaultApproximations(t *testing.T) {
	requireAVX2(t)
	ft := NewFunctionTable()
	if err := ft.AddDefaults(); err != nil {
		t.Fatalf("AddDefaults failed: %v", err)
	}
	defer ft.Release()

	cases := []struct {
		fn   string
		in   float32
		want float64
		tol  float64
	}{
		{"abs", -2.75, 2.75, 0},
		{"exp", 1.0, math.E, 2e-3},
		{"exp", -2.0, math.Exp(-2), 1e-3},
		{"log2", 8.0, 3.0, 2e-3},
		{"log", 10.0, math.Log(10), 5e-3},
		{"pow2", 3.0, 8.0, 2e-2},
		{"sin", 0.5, math.Sin(0.5), 2e-3},
		{"sin", -2.0, math.Sin(-2.0), 2e-3},
		{"cos", 1.0, math.Cos(1.0), 2e-3},
		{"tan", 0.4, math.Tan(0.4), 5e-3},
		{"atan", 0.7, math.Atan(0.7), 1e-3},
		{"atan", 3.0, math.Atan(3.0), 1e-3},
		{"asin", 0.5, math.Asin(0.5), 2e-3},
		{"acos", 0.5, math.Acos(0.5), 2e-3},
		{"sinh", 1.0, math.Sinh(1.0), 5e-3},
		{"cosh", 1.0, math.Cosh(1.0), 5e-3},
		{"tanh", 0.8, math.Tanh(0.8), 5e-3},
		{"asinh", 1.5, math.Asinh(1.5), 5e-3},
		{"acosh", 2.0, math.Acosh(2.0), 5e-3},
		{"atanh", 0.5, math.Atanh(0.5), 5e-3},
		{"cbrt", 27.0, 3.0, 2e-2},
	}
	for _, c := range cases {
		got := float64(callUnary(t, ft, c.fn, c.in))
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("%s(%v) = %v, want %v (tol %v)", c.fn, c.in, got, c.want, c.tol)
		}
	}
}
