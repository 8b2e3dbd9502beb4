package formula

import (
	"math/rand"
)

// genUnary and genBinary are the kinds Generate chooses among.
var (
	genUnary  = [...]Kind{KindNeg, KindExp, KindLn, KindSqrt, KindSq, KindSin, KindCos, KindTan}
	genBinary = [...]Kind{KindAdd, KindSub, KindMul, KindDiv, KindPow}
)

// Generate creates a random formula. complexity bounds the size of the
// result: a complexity of 0 produces x or a random parameter, and each
// operation consumes one unit, with binary operations dividing the remainder
// randomly between their operands. The depth of the result is at most
// complexity+1. Panics if complexity is negative.
//
// All randomness is drawn from rng, so the same seed always produces the same
// formula.
func Generate(rng *rand.Rand, complexity int) *Expr {
	if complexity < 0 {
		panic("formula: negative complexity")
	}
	if complexity == 0 {
		if rng.Intn(2) == 0 {
			return Var()
		}
		return Param(ParamNames[rng.Intn(len(ParamNames))])
	}
	complexity--
	k := rng.Intn(len(genUnary) + len(genBinary))
	if k < len(genUnary) {
		return Unary(genUnary[k], Generate(rng, complexity))
	}
	split := rng.Intn(complexity + 1)
	l := Generate(rng, split)
	r := Generate(rng, complexity-split)
	return Binary(genBinary[k-len(genUnary)], l, r)
}

// RandomParams binds each parameter that e uses to a value chosen uniformly in
// [ParamMin, ParamMax].
func RandomParams(rng *rand.Rand, e *Expr) *Params {
	p := NewParams()
	for _, name := range e.Params() {
		if _, ok := p.Get(name); ok {
			continue
		}
		p.Set(name, ParamMin+(ParamMax-ParamMin)*rng.Float64())
	}
	return p
}
