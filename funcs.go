package complexpr

import (
	"math"
	"math/cmplx"
)

// Func is a function from complex numbers to complex numbers.
type Func func(complex128) complex128

// globalfuncs are the functions that the lexer recognizes by name.
var globalfuncs = map[string]Func{
	"abs":  abs,
	"asec": asec,
	"asin": cmplx.Asin,
	"atan": cmplx.Atan,
	"cos":  cmplx.Cos,
	"exp":  cmplx.Exp,
	"log":  cmplx.Log,
	"sin":  cmplx.Sin,
	"sqrt": cmplx.Sqrt,
	"tan":  cmplx.Tan,
}

// globalconsts are the constants that the lexer recognizes by name. π is
// normalized to pi before lookup.
var globalconsts = map[string]complex128{
	"i":  1i,
	"pi": complex(math.Pi, 0),
	"e":  complex(math.E, 0),
}

func isFunc(name string) bool {
	_, ok := globalfuncs[name]
	return ok
}

func isConst(name string) bool {
	_, ok := globalconsts[name]
	return ok
}

// Funcs returns the sorted names of the functions that expressions can use.
func Funcs() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Consts returns the sorted names of the constants that expressions can use.
func Consts() []string {
	r := make([]string, 0, len(globalconsts))
	for k := range globalconsts {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// abs is the modulus as a complex number with zero imaginary part.
func abs(z complex128) complex128 {
	return complex(cmplx.Abs(z), 0)
}

// asec is the inverse secant, acos(1/z).
func asec(z complex128) complex128 {
	if z == 0 {
		return complex(0, math.Inf(1))
	}
	return cmplx.Acos(1 / z)
}
