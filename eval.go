package formula

import (
	"math"
)

// Eval evaluates the formula at x using parameter values from p. Results follow
// IEEE-754 semantics, so e.g. ln of a negative number is NaN rather than an
// error. Panics with a *NameError if the formula uses a parameter that p does
// not bind; use CheckParams first when that is not known to be impossible.
func (e *Expr) Eval(x float64, p *Params) float64 {
	switch e.kind {
	case KindVar:
		return x
	case KindConst:
		return e.value
	case KindZero:
		return 0
	case KindOne:
		return 1
	case KindParam:
		return p.Value(e.name)

	case KindNeg:
		return -e.left.Eval(x, p)
	case KindExp:
		return math.Exp(e.left.Eval(x, p))
	case KindLn:
		return math.Log(e.left.Eval(x, p))
	case KindSqrt:
		return math.Sqrt(e.left.Eval(x, p))
	case KindSq:
		v := e.left.Eval(x, p)
		return v * v
	case KindSin:
		return math.Sin(e.left.Eval(x, p))
	case KindCos:
		return math.Cos(e.left.Eval(x, p))
	case KindTan:
		return math.Tan(e.left.Eval(x, p))

	case KindAdd:
		return e.left.Eval(x, p) + e.right.Eval(x, p)
	case KindSub:
		return e.left.Eval(x, p) - e.right.Eval(x, p)
	case KindMul:
		return e.left.Eval(x, p) * e.right.Eval(x, p)
	case KindDiv:
		return e.left.Eval(x, p) / e.right.Eval(x, p)
	case KindPow:
		return math.Pow(e.left.Eval(x, p), e.right.Eval(x, p))

	case KindPoly:
		var r float64
		xi := 1.0
		for i := 0; i <= e.degree; i++ {
			r += p.Value(ParamNames[i]) * xi
			xi *= x
		}
		return r
	case KindSeriesPoly:
		var r float64
		xi, d := 1.0, 1.0
		for i := 0; i <= e.degree; i++ {
			if i >= 2 {
				d *= float64(i)
			}
			r += p.Value(ParamNames[i]) * xi / d
			xi *= x
		}
		return r
	default:
		panic("formula: invalid node kind " + e.kind.String())
	}
}

// Params returns the parameter names the formula uses, in the order they
// appear from left to right. A name appears once for each use.
func (e *Expr) Params() []byte {
	return e.params(nil)
}

func (e *Expr) params(names []byte) []byte {
	switch {
	case e.kind == KindParam:
		return append(names, e.name)
	case e.kind == KindPoly, e.kind == KindSeriesPoly:
		return append(names, ParamNames[:e.degree+1]...)
	case e.kind.IsUnary():
		return e.left.params(names)
	case e.kind.IsBinary():
		names = e.left.params(names)
		return e.right.params(names)
	default:
		return names
	}
}

// CheckParams returns a *NameError for the first parameter the formula uses
// that p does not bind, or nil if p binds all of them.
func (e *Expr) CheckParams(p *Params) error {
	for _, name := range e.Params() {
		if _, ok := p.Get(name); !ok {
			return &NameError{Name: name}
		}
	}
	return nil
}
