package formula

import (
	"strconv"
	"strings"
)

// Expr is a node in the tree of a formula of one variable. An Expr is
// immutable once constructed, so it is safe to share between goroutines. The
// zero value is not a valid expression; use the constructors or Parse.
type Expr struct {
	kind Kind

	// value is the value of a Const.
	value float64
	// name is the parameter name of a Param.
	name byte
	// degree is the degree of a Poly or SeriesPoly.
	degree int

	left  *Expr
	right *Expr
}

// Kind identifies the variant of an Expr.
type Kind int8

const (
	KindNone Kind = iota

	KindVar   // the free variable x
	KindConst // a literal number
	KindZero  // literal 0
	KindOne   // literal 1
	KindParam // a named parameter

	KindNeg  // -left
	KindExp  // exp(left)
	KindLn   // ln(left)
	KindSqrt // sqrt(left)
	KindSq   // left^2
	KindSin  // sin(left)
	KindCos  // cos(left)
	KindTan  // tan(left)

	KindAdd // left + right
	KindSub // left - right
	KindMul // left * right
	KindDiv // left / right
	KindPow // left ^ right

	KindPoly       // a + bx + cx^2 + ...
	KindSeriesPoly // a + bx + cx^2/2! + ...
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// IsLeaf returns whether k has no children.
func (k Kind) IsLeaf() bool {
	return KindVar <= k && k <= KindParam || k == KindPoly || k == KindSeriesPoly
}

// IsUnary returns whether k has exactly one child.
func (k Kind) IsUnary() bool {
	return KindNeg <= k && k <= KindTan
}

// IsBinary returns whether k has a left and right child.
func (k Kind) IsBinary() bool {
	return KindAdd <= k && k <= KindPow
}

var (
	varExpr  = &Expr{kind: KindVar}
	zeroExpr = &Expr{kind: KindZero}
	oneExpr  = &Expr{kind: KindOne}
)

// Var returns the free variable x.
func Var() *Expr { return varExpr }

// Zero returns the literal 0.
func Zero() *Expr { return zeroExpr }

// One returns the literal 1.
func One() *Expr { return oneExpr }

// Const returns a literal number. Use Zero and One for those values when the
// simplifier should recognize them.
func Const(v float64) *Expr {
	return &Expr{kind: KindConst, value: v}
}

// Param returns a reference to a parameter. Panics if name is not in
// ParamNames.
func Param(name byte) *Expr {
	if !IsParamName(name) {
		panic("formula: invalid parameter name " + quoteName(name))
	}
	return &Expr{kind: KindParam, name: name}
}

// Poly returns a polynomial of the given degree with coefficients drawn from
// the first degree+1 parameter names.
func Poly(degree int) *Expr {
	checkdegree(degree)
	return &Expr{kind: KindPoly, degree: degree}
}

// SeriesPoly returns a polynomial like Poly which additionally divides each
// term by the factorial of its power, as in a truncated Taylor series.
func SeriesPoly(degree int) *Expr {
	checkdegree(degree)
	return &Expr{kind: KindSeriesPoly, degree: degree}
}

func checkdegree(degree int) {
	if degree < 0 || degree >= len(ParamNames) {
		panic("formula: polynomial degree out of range")
	}
}

// Unary creates a node of a unary kind. Panics if k is not unary or e is nil.
func Unary(k Kind, e *Expr) *Expr {
	if !k.IsUnary() {
		panic("formula: " + k.String() + " is not a unary kind")
	}
	if e == nil {
		panic("formula: nil operand to " + k.String())
	}
	return &Expr{kind: k, left: e}
}

// Binary creates a node of a binary kind. Panics if k is not binary or either
// operand is nil.
func Binary(k Kind, l, r *Expr) *Expr {
	if !k.IsBinary() {
		panic("formula: " + k.String() + " is not a binary kind")
	}
	if l == nil || r == nil {
		panic("formula: nil operand to " + k.String())
	}
	return &Expr{kind: k, left: l, right: r}
}

func Neg(e *Expr) *Expr  { return Unary(KindNeg, e) }
func Exp(e *Expr) *Expr  { return Unary(KindExp, e) }
func Ln(e *Expr) *Expr   { return Unary(KindLn, e) }
func Sqrt(e *Expr) *Expr { return Unary(KindSqrt, e) }
func Sq(e *Expr) *Expr   { return Unary(KindSq, e) }
func Sin(e *Expr) *Expr  { return Unary(KindSin, e) }
func Cos(e *Expr) *Expr  { return Unary(KindCos, e) }
func Tan(e *Expr) *Expr  { return Unary(KindTan, e) }

func Add(l, r *Expr) *Expr { return Binary(KindAdd, l, r) }
func Sub(l, r *Expr) *Expr { return Binary(KindSub, l, r) }
func Mul(l, r *Expr) *Expr { return Binary(KindMul, l, r) }
func Div(l, r *Expr) *Expr { return Binary(KindDiv, l, r) }
func Pow(l, r *Expr) *Expr { return Binary(KindPow, l, r) }

// Kind returns the variant of e.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Left returns the operand of a unary node or the left operand of a binary
// node. The result is nil for leaves.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of a binary node, or nil otherwise.
func (e *Expr) Right() *Expr {
	return e.right
}

// Value returns the value of a literal. It is 0 for nodes which are not
// literals.
func (e *Expr) Value() float64 {
	switch e.kind {
	case KindConst:
		return e.value
	case KindOne:
		return 1
	default:
		return 0
	}
}

// Name returns the parameter name of a Param node, or 0 otherwise.
func (e *Expr) Name() byte {
	return e.name
}

// Degree returns the degree of a Poly or SeriesPoly, or 0 otherwise.
func (e *Expr) Degree() int {
	return e.degree
}

// Depth returns the number of nodes on the longest path from e to a leaf.
func (e *Expr) Depth() int {
	if e == nil {
		return 0
	}
	l, r := e.left.Depth(), e.right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}

// Size returns the number of nodes in e.
func (e *Expr) Size() int {
	if e == nil {
		return 0
	}
	return 1 + e.left.Size() + e.right.Size()
}

// GoString formats e as the constructor calls that would build it.
func (e *Expr) GoString() string {
	var b strings.Builder
	e.gostring(&b)
	return b.String()
}

func (e *Expr) gostring(b *strings.Builder) {
	switch {
	case e.kind == KindConst:
		b.WriteString("Const(")
		b.WriteString(formatnum(e.value))
		b.WriteByte(')')
	case e.kind == KindParam:
		b.WriteString("Param(")
		b.WriteString(quoteName(e.name))
		b.WriteByte(')')
	case e.kind == KindPoly, e.kind == KindSeriesPoly:
		b.WriteString(e.kind.String())
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(e.degree))
		b.WriteByte(')')
	case e.kind.IsLeaf():
		b.WriteString(e.kind.String())
		b.WriteString("()")
	case e.kind.IsUnary():
		b.WriteString(e.kind.String())
		b.WriteByte('(')
		e.left.gostring(b)
		b.WriteByte(')')
	case e.kind.IsBinary():
		b.WriteString(e.kind.String())
		b.WriteByte('(')
		e.left.gostring(b)
		b.WriteString(", ")
		e.right.gostring(b)
		b.WriteByte(')')
	default:
		panic("formula: invalid node kind " + e.kind.String())
	}
}
