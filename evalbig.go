package formula

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// EvalBig evaluates the formula at x to the given precision in bits, using
// parameter values from p. If prec is 0, the precision of x is used. Sine,
// cosine, and tangent are computed to float64 precision.
//
// Unlike Eval, EvalBig reports results that are not real numbers as errors.
// If a value is outside the domain of an operation, e.g. ln of a negative
// number, 0/0, or inf-inf, then the error is a *DomainError. If the formula
// uses a parameter that p does not bind, the error is a *NameError.
func (e *Expr) EvalBig(x *big.Float, p *Params, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = x.Prec()
	}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		var nan big.ErrNaN
		verr, _ := v.(error)
		if errors.As(verr, &nan) {
			r, err = nil, &DomainError{Msg: nan.Error()}
			return
		}
		panic(v)
	}()
	b := bigeval{x: new(big.Float).SetPrec(prec).Set(x), p: p, prec: prec}
	return b.eval(e)
}

type bigeval struct {
	x    *big.Float
	p    *Params
	prec uint
}

func (b *bigeval) new() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b *bigeval) param(name byte) (*big.Float, error) {
	v, ok := b.p.Get(name)
	if !ok {
		return nil, &NameError{Name: name}
	}
	return b.new().SetFloat64(v), nil
}

func (b *bigeval) eval(e *Expr) (*big.Float, error) {
	switch {
	case e.kind == KindVar:
		return b.new().Set(b.x), nil
	case e.kind == KindConst:
		return b.new().SetFloat64(e.value), nil
	case e.kind == KindZero:
		return b.new(), nil
	case e.kind == KindOne:
		return b.new().SetInt64(1), nil
	case e.kind == KindParam:
		return b.param(e.name)
	case e.kind == KindPoly, e.kind == KindSeriesPoly:
		return b.poly(e)
	case e.kind.IsUnary():
		v, err := b.eval(e.left)
		if err != nil {
			return nil, err
		}
		return b.unary(e.kind, v)
	case e.kind.IsBinary():
		l, err := b.eval(e.left)
		if err != nil {
			return nil, err
		}
		r, err := b.eval(e.right)
		if err != nil {
			return nil, err
		}
		return b.binary(e.kind, l, r)
	default:
		panic("formula: invalid node kind " + e.kind.String())
	}
}

func (b *bigeval) unary(k Kind, v *big.Float) (*big.Float, error) {
	switch k {
	case KindNeg:
		return v.Neg(v), nil
	case KindSq:
		return v.Mul(v, v), nil
	}
	if v.IsInf() {
		return b.inf(k, v)
	}
	f := funcOf(k)
	if f == nil {
		panic("formula: invalid unary kind " + k.String())
	}
	r := b.new()
	if err := f.big(r, v); err != nil {
		return nil, err
	}
	return r, nil
}

// inf evaluates named functions at infinities.
func (b *bigeval) inf(k Kind, v *big.Float) (*big.Float, error) {
	neg := v.Signbit()
	switch {
	case k == KindExp && neg:
		return b.new(), nil
	case k == KindExp, k == KindLn && !neg, k == KindSqrt && !neg:
		return v, nil
	}
	return nil, &DomainError{X: new(big.Float).Copy(v), Func: funcOf(k).name}
}

func (b *bigeval) binary(k Kind, l, r *big.Float) (*big.Float, error) {
	switch k {
	case KindAdd:
		return l.Add(l, r), nil
	case KindSub:
		return l.Sub(l, r), nil
	case KindMul:
		return l.Mul(l, r), nil
	case KindDiv:
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return nil, &DomainError{X: r, Func: "/"}
		}
		return l.Quo(l, r), nil
	case KindPow:
		return b.pow(l, r)
	default:
		panic("formula: invalid binary kind " + k.String())
	}
}

func (b *bigeval) pow(l, r *big.Float) (*big.Float, error) {
	// Guard against invalid exponentiations, i.e. negative base.
	// TODO: allow negative base with integer exponent
	if l.Signbit() && l.Sign() != 0 {
		return nil, &DomainError{X: l, Func: "^"}
	}
	switch {
	case r.Sign() == 0:
		return l.SetInt64(1), nil
	case l.Sign() == 0:
		if r.Signbit() {
			return l.SetInf(false), nil
		}
		return l.SetInt64(0), nil
	case l.IsInf() || r.IsInf():
		return b.powinf(l, r)
	}
	return bigfloat.Pow(b.new(), l, r), nil
}

// powinf evaluates l^r where a nonzero, non-negative operand is infinite.
func (b *bigeval) powinf(l, r *big.Float) (*big.Float, error) {
	one := b.new().SetInt64(1)
	c := l.Cmp(one)
	switch {
	case c == 0:
		return one, nil
	case l.IsInf() && r.Signbit(), !l.IsInf() && (c > 0) == r.Signbit():
		return b.new(), nil
	default:
		return b.new().SetInf(false), nil
	}
}

func (b *bigeval) poly(e *Expr) (*big.Float, error) {
	r := b.new()
	xi := b.new().SetInt64(1)
	d := b.new().SetInt64(1)
	t := b.new()
	for i := 0; i <= e.degree; i++ {
		c, err := b.param(ParamNames[i])
		if err != nil {
			return nil, err
		}
		if e.kind == KindSeriesPoly && i >= 2 {
			d.Mul(d, t.SetInt64(int64(i)))
		}
		t.Mul(c, xi)
		if e.kind == KindSeriesPoly {
			t.Quo(t, d)
		}
		r.Add(r, t)
		xi.Mul(xi, b.x)
	}
	return r, nil
}

// DomainError is an error returned when an operation is evaluated on operands
// outside its domain. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain operand, if known.
	X *big.Float
	// Func is a name identifying the operation.
	Func string
	// Msg describes the error when the operands are not known.
	Msg string
}

func (err *DomainError) Error() string {
	if err.Msg != "" {
		return "outside domain: " + err.Msg
	}
	r := "outside domain"
	if err.X != nil {
		r = err.X.String() + " " + r
	}
	if err.Func != "" {
		r += " of " + strconv.Quote(err.Func)
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}
