package formula

import (
	"math"
	"strconv"
	"strings"
)

// String formats the formula so that it can be parsed again to a formula
// which evaluates identically, with one caveat: polynomials are written as
// "a + bx + cx^2" for readability, which does not parse. Every binary
// operation is enclosed in parentheses.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b, &displayStyle, posTop)
	return b.String()
}

// PlotString formats the formula in gnuplot syntax. Parameters bound in p are
// written as their values; p may be nil.
func (e *Expr) PlotString(p *Params) string {
	st := plotStyle
	st.params = p
	var b strings.Builder
	e.fmt(&b, &st, posTop)
	return b.String()
}

// style is a set of formatting conventions.
type style struct {
	pow    string
	plot   bool
	params *Params
}

var (
	displayStyle = style{pow: "^"}
	plotStyle    = style{pow: "**", plot: true}
)

// pos is the position of a node relative to its parent, which decides which
// nodes need brackets.
type pos int8

const (
	// posTop is the root or a node already enclosed in brackets.
	posTop pos = iota
	// posLeft is the left operand of an infix operator.
	posLeft
	// posRight is the right operand of an infix operator or the operand of a
	// negation. Negative numbers need brackets here to parse correctly.
	posRight
)

func (e *Expr) fmt(b *strings.Builder, st *style, at pos) {
	switch e.kind {
	case KindVar:
		b.WriteByte('x')
	case KindConst:
		st.num(b, e.value, at)
	case KindZero:
		st.num(b, 0, at)
	case KindOne:
		st.num(b, 1, at)
	case KindParam:
		if v, ok := st.params.Get(e.name); ok {
			st.num(b, v, at)
		} else {
			b.WriteByte(e.name)
		}
	case KindNeg:
		if at == posRight {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		b.WriteByte('-')
		e.left.fmt(b, st, posRight)
	case KindSq:
		b.WriteByte('(')
		e.left.fmt(b, st, posTop)
		b.WriteByte(')')
		b.WriteString(st.pow)
		b.WriteByte('2')
	case KindExp, KindLn, KindSqrt, KindSin, KindCos, KindTan:
		f := funcOf(e.kind)
		if st.plot {
			b.WriteString(f.plot)
		} else {
			b.WriteString(f.name)
		}
		b.WriteByte('(')
		e.left.fmt(b, st, posTop)
		b.WriteByte(')')
	case KindAdd:
		e.infix(b, st, " + ")
	case KindSub:
		e.infix(b, st, " - ")
	case KindMul:
		e.infix(b, st, " * ")
	case KindDiv:
		e.infix(b, st, " / ")
	case KindPow:
		b.WriteByte('(')
		e.left.fmt(b, st, posTop)
		b.WriteByte(')')
		b.WriteString(st.pow)
		b.WriteByte('(')
		e.right.fmt(b, st, posTop)
		b.WriteByte(')')
	case KindPoly, KindSeriesPoly:
		if at != posTop && e.degree > 0 {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		e.fmtpoly(b, st)
	default:
		panic("formula: invalid node kind " + e.kind.String() + " after writing " + b.String())
	}
}

func (e *Expr) infix(b *strings.Builder, st *style, op string) {
	b.WriteByte('(')
	e.left.fmt(b, st, posLeft)
	b.WriteString(op)
	e.right.fmt(b, st, posRight)
	b.WriteByte(')')
}

func (e *Expr) fmtpoly(b *strings.Builder, st *style) {
	fact := 1.0
	for i := 0; i <= e.degree; i++ {
		if i != 0 {
			b.WriteString(" + ")
		}
		name := ParamNames[i]
		if v, ok := st.params.Get(name); ok {
			st.num(b, v, posRight)
		} else {
			b.WriteByte(name)
		}
		if i == 0 {
			continue
		}
		if st.plot {
			b.WriteByte('*')
		}
		b.WriteByte('x')
		if i >= 2 {
			b.WriteString(st.pow)
			b.WriteString(strconv.Itoa(i))
		}
		if e.kind != KindSeriesPoly || i < 2 {
			continue
		}
		fact *= float64(i)
		b.WriteByte('/')
		if st.plot {
			st.num(b, fact, posTop)
		} else {
			b.WriteString(strconv.Itoa(i))
			b.WriteByte('!')
		}
	}
}

// num writes a number, enclosing it in brackets if it is negative and in a
// position where the minus sign could be mistaken for subtraction. gnuplot
// does integer arithmetic on integer literals, so plot numbers always have a
// decimal point.
func (st *style) num(b *strings.Builder, v float64, at pos) {
	s := formatnum(v)
	if st.plot && !math.IsNaN(v) && !math.IsInf(v, 0) && !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	if at == posRight && s[0] == '-' {
		b.WriteByte('(')
		b.WriteString(s)
		b.WriteByte(')')
		return
	}
	b.WriteString(s)
}

// formatnum formats a number in the shortest decimal form that parses to the
// same value. Exponent notation is never used because its sign would parse
// as an operator.
func formatnum(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
