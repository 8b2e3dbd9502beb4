package formula

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// function describes a named unary function of the formula language.
type function struct {
	kind Kind
	// name is the name used for parsing and display.
	name string
	// plot is the name used in gnuplot syntax.
	plot string
	// big sets z to the function of x, to the precision of z. x is finite.
	// It returns a non-nil error if x is outside the function's domain.
	big func(z, x *big.Float) error
}

// funcs is the table of named functions, in the order the parser tries their
// prefixes.
var funcs = [...]function{
	{KindExp, "exp", "exp", bigExp},
	{KindLn, "ln", "log", bigLn},
	{KindSqrt, "sqrt", "sqrt", bigSqrt},
	{KindSin, "sin", "sin", viaFloat64("sin", math.Sin)},
	{KindCos, "cos", "cos", viaFloat64("cos", math.Cos)},
	{KindTan, "tan", "tan", viaFloat64("tan", math.Tan)},
}

// funcOf returns the function entry for a kind, or nil if the kind is not a
// named function.
func funcOf(k Kind) *function {
	for i := range funcs {
		if funcs[i].kind == k {
			return &funcs[i]
		}
	}
	return nil
}

func bigExp(z, x *big.Float) error {
	bigfloat.Exp(z, x)
	return nil
}

func bigLn(z, x *big.Float) error {
	switch x.Sign() {
	case -1:
		return &DomainError{X: new(big.Float).Copy(x), Func: "ln"}
	case 0:
		z.SetInf(true)
		return nil
	}
	bigfloat.Log(z, x)
	return nil
}

func bigSqrt(z, x *big.Float) error {
	switch x.Sign() {
	case -1:
		return &DomainError{X: new(big.Float).Copy(x), Func: "sqrt"}
	case 0:
		z.SetInt64(0)
		return nil
	}
	z.Sqrt(x)
	return nil
}

// viaFloat64 adapts a float64 function for which no arbitrary-precision
// implementation is available. The result has float64 precision at best.
func viaFloat64(name string, f func(float64) float64) func(z, x *big.Float) error {
	return func(z, x *big.Float) error {
		v, _ := x.Float64()
		r := f(v)
		if math.IsNaN(r) {
			return &DomainError{X: new(big.Float).Copy(x), Func: name}
		}
		z.SetFloat64(r)
		return nil
	}
}
