// Completion: 100% - Default function suite complete
package vpu

// The default function table entries: fairly bad approximations to the
// common vector math functions, in the spirit of the usual game-math
// tricks (parabolic sine, exponent bit surgery, atanh-series log).
// They are generated with the assembler itself into a private session
// owned by the table, so there is no hand-written machine code here.
//
// Calling convention of every generated routine: arguments in
// YMM0 (and YMM1 for atan2/pow), result in YMM0, YMM0..YMM9 clobbered,
// no general purpose registers touched. The double flavors demote to
// float, run the float kernel on four lanes, and promote back, so they
// carry float precision; absd is exact.

type defaultFunc struct {
	name string
	typ  FunctionType
}

var defaultFuncs = []defaultFunc{
	{"abs", OneArg}, {"sin", OneArg}, {"cos", OneArg}, {"tan", OneArg},
	{"sinh", OneArg}, {"cosh", OneArg}, {"tanh", OneArg},
	{"asin", OneArg}, {"acos", OneArg}, {"atan", OneArg}, {"atan2", TwoArgs},
	{"asinh", OneArg}, {"acosh", OneArg}, {"atanh", OneArg},
	{"exp", OneArg}, {"log2", OneArg}, {"log", OneArg},
	{"pow2", OneArg}, {"pow", TwoArgs}, {"cbrt", OneArg},
}

// AddDefaults generates and registers the default approximation suite,
// single precision plus the d-suffixed double flavors.
func (t *FunctionTable) AddDefaults() error {
	a, err := New(16384)
	if err != nil {
		return err
	}
	a.Begin()
	buildDefaultKernels(a)
	if err := a.End(); err != nil {
		a.Release()
		return err
	}
	for _, f := range defaultFuncs {
		off, ok := a.ProcedureOffset(f.name)
		if !ok {
			a.Release()
			return &sessionError{cat: CategoryResolution, err: errPoisoned}
		}
		if err := t.AddFunc(f.name, a.codeAddr(off), f.typ); err != nil {
			a.Release()
			return err
		}
	}
	for _, f := range defaultFuncs {
		off, ok := a.ProcedureOffset(f.name + "d")
		if !ok {
			a.Release()
			return &sessionError{cat: CategoryResolution, err: errPoisoned}
		}
		dtyp := f.typ + NoArgsD
		if err := t.AddFunc(f.name+"d", a.codeAddr(off), dtyp); err != nil {
			a.Release()
			return err
		}
	}
	t.defaults = a
	return nil
}

// buildDefaultKernels emits every default routine into the session.
func buildDefaultKernels(a *Assembler) {
	// shared constants
	cAbsMask := a.Set1EPI32(0x7FFFFFFF)
	cSignMask := a.Set1EPI32(-0x80000000)
	cOne := a.Set1PS(1.0)
	cHalf := a.Set1PS(0.5)
	cFour := a.Set1PS(4.0)
	cRefine := a.Set1PS(0.225)
	cInv2Pi := a.Set1PS(0.15915494)
	cHalfPi := a.Set1PS(1.5707964)
	cPi := a.Set1PS(3.1415927)
	cLog2E := a.Set1PS(1.4426950)
	cLn2 := a.Set1PS(0.6931472)
	cThird := a.Set1PS(0.33333334)
	cFifth := a.Set1PS(0.2)
	cTwoLog2E := a.Set1PS(2.8853900)
	cInt127 := a.Set1EPI32(127)
	cMantMask := a.Set1EPI32(0x007FFFFF)
	// exp2 polynomial over [-0.5, 0.5]
	expC := [5]uint32{
		a.Set1PS(0.69314718),
		a.Set1PS(0.24022651),
		a.Set1PS(0.05550411),
		a.Set1PS(0.00961813),
		a.Set1PS(0.00133336),
	}
	// atan polynomial over [0, 1] (Abramowitz & Stegun 4.4.49 flavor)
	atanC := [5]uint32{
		a.Set1PS(0.9998660),
		a.Set1PS(-0.3302995),
		a.Set1PS(0.1801410),
		a.Set1PS(-0.0851330),
		a.Set1PS(0.0208351),
	}
	// per-double |x| mask: clear only the top sign bit of each qword
	cAbsMaskD := a.SetEPI32(-1, 0x7FFFFFFF, -1, 0x7FFFFFFF, -1, 0x7FFFFFFF, -1, 0x7FFFFFFF)

	// pow2: 2^x via round/split and exponent bit assembly.
	a.Procedure("pow2")
	a.RoundPS(YMM1, YMM0, RoundNint)
	a.SubPS(YMM2, YMM0, YMM1) // f in [-0.5, 0.5]
	a.LoadConst(YMM0, expC[4])
	for i := 3; i >= 0; i-- {
		a.LoadConst(YMM3, expC[i])
		a.FmAddPS(YMM0, YMM2, YMM3)
	}
	a.LoadConst(YMM3, cOne)
	a.FmAddPS(YMM0, YMM2, YMM3) // 2^f
	a.CvtPSDQ(YMM1, YMM1)
	a.LoadConst(YMM3, cInt127)
	a.AddI32(YMM1, YMM1, YMM3)
	a.LShiftU32(YMM1, YMM1, 23) // float bits of 2^n
	a.MulPS(YMM0, YMM0, YMM1)
	a.Ret()

	// log2: exponent extraction plus atanh series on the mantissa.
	a.Procedure("log2")
	a.RShiftU32(YMM1, YMM0, 23)
	a.LoadConst(YMM2, cInt127)
	a.SubI32(YMM1, YMM1, YMM2)
	a.CvtDQPS(YMM1, YMM1) // e
	a.LoadConst(YMM2, cMantMask)
	a.AndPS(YMM0, YMM0, YMM2)
	a.LoadConst(YMM2, cOne)
	a.OrPS(YMM0, YMM0, YMM2) // m in [1, 2)
	a.SubPS(YMM3, YMM0, YMM2)
	a.AddPS(YMM4, YMM0, YMM2)
	a.DivPS(YMM3, YMM3, YMM4) // z = (m-1)/(m+1), |z| <= 1/3
	a.MulPS(YMM4, YMM3, YMM3) // z^2
	a.LoadConst(YMM0, cFifth)
	a.LoadConst(YMM2, cThird)
	a.FmAddPS(YMM0, YMM4, YMM2)
	a.LoadConst(YMM2, cOne)
	a.FmAddPS(YMM0, YMM4, YMM2)
	a.MulPS(YMM0, YMM0, YMM3) // atanh(z)
	a.LoadConst(YMM2, cTwoLog2E)
	a.FmAddPS(YMM0, YMM2, YMM1) // 2*log2(e)*atanh(z) + e
	a.Ret()

	// sin: parabolic approximation over one period, refined once.
	a.Procedure("sin")
	a.LoadConst(YMM1, cInv2Pi)
	a.MulPS(YMM0, YMM0, YMM1)
	a.RoundPS(YMM1, YMM0, RoundNint)
	a.SubPS(YMM0, YMM0, YMM1)  // y in [-0.5, 0.5]
	a.AddPS(YMM0, YMM0, YMM0)  // z in [-1, 1], result is sin(pi*z)
	a.LoadConst(YMM1, cAbsMask)
	a.AndPS(YMM2, YMM0, YMM1)
	a.MulPS(YMM2, YMM0, YMM2)
	a.SubPS(YMM0, YMM0, YMM2) // z - z|z|
	a.LoadConst(YMM1, cFour)
	a.MulPS(YMM0, YMM0, YMM1) // parabola
	a.LoadConst(YMM1, cAbsMask)
	a.AndPS(YMM2, YMM0, YMM1)
	a.MulPS(YMM2, YMM0, YMM2)
	a.SubPS(YMM2, YMM2, YMM0) // s|s| - s
	a.LoadConst(YMM1, cRefine)
	a.FmAddPS(YMM2, YMM1, YMM0)
	a.MovAPS(YMM0, YMM2)
	a.Ret()

	// atan: odd polynomial on min(|x|, 1/|x|), folded back over 1.
	a.Procedure("atan")
	a.LoadConst(YMM1, cSignMask)
	a.AndPS(YMM5, YMM0, YMM1)
	a.LoadConst(YMM1, cAbsMask)
	a.AndPS(YMM0, YMM0, YMM1) // ax
	a.LoadConst(YMM1, cOne)
	a.DivPS(YMM2, YMM1, YMM0)
	a.MinPS(YMM3, YMM0, YMM2)          // t <= 1
	a.CmpPS(YMM4, YMM0, YMM1, CmpLEOS) // ax <= 1
	a.MulPS(YMM2, YMM3, YMM3)          // t^2
	a.LoadConst(YMM0, atanC[4])
	a.LoadConst(YMM1, atanC[3])
	a.FmAddPS(YMM0, YMM2, YMM1)
	a.LoadConst(YMM1, atanC[2])
	a.FmAddPS(YMM0, YMM2, YMM1)
	a.LoadConst(YMM1, atanC[1])
	a.FmAddPS(YMM0, YMM2, YMM1)
	a.LoadConst(YMM1, atanC[0])
	a.FmAddPS(YMM0, YMM2, YMM1)
	a.MulPS(YMM0, YMM0, YMM3) // atan(t)
	a.LoadConst(YMM1, cHalfPi)
	a.SubPS(YMM1, YMM1, YMM0)
	a.BlendVPS(YMM0, YMM1, YMM0, YMM4)
	a.OrPS(YMM0, YMM0, YMM5)
	a.Ret()

	// the remaining float routines compose the kernels

	a.Procedure("abs")
	a.LoadConst(YMM1, cAbsMask)
	a.AndPS(YMM0, YMM0, YMM1)
	a.Ret()

	a.Procedure("exp")
	a.LoadConst(YMM1, cLog2E)
	a.MulPS(YMM0, YMM0, YMM1)
	a.CallProcedure("pow2")
	a.Ret()

	a.Procedure("log")
	a.CallProcedure("log2")
	a.LoadConst(YMM1, cLn2)
	a.MulPS(YMM0, YMM0, YMM1)
	a.Ret()

	a.Procedure("pow") // a^b = 2^(b*log2(a))
	a.MovAPS(YMM6, YMM1)
	a.CallProcedure("log2")
	a.MulPS(YMM0, YMM0, YMM6)
	a.CallProcedure("pow2")
	a.Ret()

	a.Procedure("cbrt")
	a.LoadConst(YMM1, cSignMask)
	a.AndPS(YMM7, YMM0, YMM1)
	a.LoadConst(YMM1, cAbsMask)
	a.AndPS(YMM0, YMM0, YMM1)
	a.CallProcedure("log2")
	a.LoadConst(YMM1, cThird)
	a.MulPS(YMM0, YMM0, YMM1)
	a.CallProcedure("pow2")
	a.OrPS(YMM0, YMM0, YMM7)
	a.Ret()

	a.Procedure("cos")
	a.LoadConst(YMM1, cHalfPi)
	a.AddPS(YMM0, YMM0, YMM1)
	a.CallProcedure("sin")
	a.Ret()

	a.Procedure("tan")
	a.MovAPS(YMM6, YMM0)
	a.CallProcedure("sin")
	a.MovAPS(YMM7, YMM0)
	a.MovAPS(YMM0, YMM6)
	a.CallProcedure("cos")
	a.DivPS(YMM0, YMM7, YMM0)
	a.Ret()

	a.Procedure("sinh") // (e - 1/e)/2 with e = exp(x)
	a.CallProcedure("exp")
	a.MovAPS(YMM6, YMM0)
	a.LoadConst(YMM1, cOne)
	a.DivPS(YMM0, YMM1, YMM6)
	a.SubPS(YMM0, YMM6, YMM0)
	a.LoadConst(YMM1, cHalf)
	a.MulPS(YMM0, YMM0, YMM1)
	a.Ret()

	a.Procedure("cosh") // (e + 1/e)/2
	a.CallProcedure("exp")
	a.MovAPS(YMM6, YMM0)
	a.LoadConst(YMM1, cOne)
	a.DivPS(YMM0, YMM1, YMM6)
	a.AddPS(YMM0, YMM6, YMM0)
	a.LoadConst(YMM1, cHalf)
	a.MulPS(YMM0, YMM0, YMM1)
	a.Ret()

	a.Procedure("tanh") // (E-1)/(E+1) with E = exp(2x)
	a.AddPS(YMM0, YMM0, YMM0)
	a.CallProcedure("exp")
	a.LoadConst(YMM1, cOne)
	a.SubPS(YMM2, YMM0, YMM1)
	a.AddPS(YMM3, YMM0, YMM1)
	a.DivPS(YMM0, YMM2, YMM3)
	a.Ret()

	a.Procedure("asin") // atan(x / sqrt(1 - x^2))
	a.MulPS(YMM1, YMM0, YMM0)
	a.LoadConst(YMM2, cOne)
	a.SubPS(YMM1, YMM2, YMM1)
	a.SqrtPS(YMM1, YMM1)
	a.DivPS(YMM0, YMM0, YMM1)
	a.CallProcedure("atan")
	a.Ret()

	a.Procedure("acos")
	a.CallProcedure("asin")
	a.LoadConst(YMM1, cHalfPi)
	a.SubPS(YMM0, YMM1, YMM0)
	a.Ret()

	a.Procedure("atan2") // atan(y/x), +/- pi when x < 0
	a.MovAPS(YMM6, YMM1)
	a.MovAPS(YMM7, YMM0)
	a.DivPS(YMM0, YMM0, YMM1)
	a.CallProcedure("atan")
	a.SetZero(YMM1)
	a.CmpPS(YMM2, YMM6, YMM1, CmpLTOS)
	a.LoadConst(YMM3, cSignMask)
	a.AndPS(YMM3, YMM7, YMM3)
	a.LoadConst(YMM4, cPi)
	a.OrPS(YMM4, YMM4, YMM3)
	a.AndPS(YMM4, YMM4, YMM2)
	a.AddPS(YMM0, YMM0, YMM4)
	a.Ret()

	a.Procedure("asinh") // log(x + sqrt(x^2 + 1))
	a.MulPS(YMM1, YMM0, YMM0)
	a.LoadConst(YMM2, cOne)
	a.AddPS(YMM1, YMM1, YMM2)
	a.SqrtPS(YMM1, YMM1)
	a.AddPS(YMM0, YMM0, YMM1)
	a.CallProcedure("log")
	a.Ret()

	a.Procedure("acosh") // log(x + sqrt(x^2 - 1))
	a.MulPS(YMM1, YMM0, YMM0)
	a.LoadConst(YMM2, cOne)
	a.SubPS(YMM1, YMM1, YMM2)
	a.SqrtPS(YMM1, YMM1)
	a.AddPS(YMM0, YMM0, YMM1)
	a.CallProcedure("log")
	a.Ret()

	a.Procedure("atanh") // log((1+x)/(1-x))/2
	a.LoadConst(YMM1, cOne)
	a.AddPS(YMM2, YMM1, YMM0)
	a.SubPS(YMM3, YMM1, YMM0)
	a.DivPS(YMM0, YMM2, YMM3)
	a.CallProcedure("log")
	a.LoadConst(YMM1, cHalf)
	a.MulPS(YMM0, YMM0, YMM1)
	a.Ret()

	// double flavors: absd is exact, the rest demote to float, run the
	// float routine on four lanes, and promote back

	a.Procedure("absd")
	a.LoadConst(YMM1, cAbsMaskD)
	a.AndPD(YMM0, YMM0, YMM1)
	a.Ret()

	for _, f := range defaultFuncs {
		if f.name == "abs" {
			continue
		}
		a.Procedure(f.name + "d")
		a.CvtPDPS(YMM0, YMM0)
		if f.typ == TwoArgs {
			a.CvtPDPS(YMM1, YMM1)
		}
		a.CallProcedure(f.name)
		a.CvtPSPD(YMM0, YMM0)
		a.Ret()
	}
}
