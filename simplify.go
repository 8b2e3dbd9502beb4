package formula

import (
	log "github.com/sirupsen/logrus"
)

// Simplify returns an algebraically reduced form of e. Subtrees that no rule
// changes are not copied, so the result may share nodes with e, or be e
// itself when nothing changes.
//
// Simplification is a single bottom-up pass: each node's operands are
// simplified first, then the node is rewritten by the first matching rule. The result of a rewrite is not
// simplified again, so the output is not a canonical form, and reductions
// requiring several steps at the same node are not found. In particular,
// y-y is reduced only when y is the variable itself, and (a^b)^c is kept.
//
// Because parameters are fitted freely, structure applied to a parameter alone
// is assumed to be absorbed by it. E.g. sin(a) and a*2 both become a.
//
// Some rewrites hold only where the domains of inverse functions agree, e.g.
// sqrt(y^2) becomes y.
func (e *Expr) Simplify() *Expr {
	var n *Expr
	switch {
	case e.kind.IsUnary():
		l := e.left.Simplify()
		if l == e.left {
			n = e
		} else {
			n = &Expr{kind: e.kind, left: l}
		}
	case e.kind.IsBinary():
		l, r := e.left.Simplify(), e.right.Simplify()
		if l == e.left && r == e.right {
			n = e
		} else {
			n = &Expr{kind: e.kind, left: l, right: r}
		}
	default:
		return e
	}
	for i := range rules {
		rule := &rules[i]
		if !rule.match(n) {
			continue
		}
		r := rule.rewrite(n)
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithFields(log.Fields{"rule": rule.name, "from": n.String(), "to": r.String()}).Debug("simplify")
		}
		return r
	}
	return n
}

// rule is a rewrite applied by Simplify.
type rule struct {
	name string
	// match reports whether the rule applies to a node whose operands are
	// already simplified.
	match func(e *Expr) bool
	// rewrite produces the replacement for a matched node.
	rewrite func(e *Expr) *Expr
}

// rules is the ordered list of rewrites. Earlier rules take priority.
var rules = [...]rule{
	// (1) Parameters absorb structure around them.
	{
		name:    "param-unary",
		match:   func(e *Expr) bool { return e.kind.IsUnary() && e.left.kind == KindParam },
		rewrite: left,
	},
	{
		name: "param-binary",
		match: func(e *Expr) bool {
			return e.kind.IsBinary() && e.left.kind == KindParam && (e.right.kind == KindParam || e.right.isLiteral())
		},
		rewrite: left,
	},
	{
		// Fitting is better behaved multiplying by a parameter than dividing.
		name:    "div-param",
		match:   func(e *Expr) bool { return e.kind == KindDiv && e.right.kind == KindParam },
		rewrite: func(e *Expr) *Expr { return Mul(e.left, e.right) },
	},

	// (2) Operations on literals are evaluated.
	{
		name: "fold",
		match: func(e *Expr) bool {
			if e.kind.IsUnary() {
				return e.left.isLiteral()
			}
			return e.left.isLiteral() && e.right.isLiteral()
		},
		rewrite: func(e *Expr) *Expr { return Const(e.Eval(0, nil)) },
	},

	// (3) Results that are always 0.
	{
		name: "zero",
		match: func(e *Expr) bool {
			switch e.kind {
			case KindSub:
				return e.left.kind == KindVar && e.right.kind == KindVar
			case KindAdd:
				return e.left.kind == KindVar && e.right.isNegVar() || e.left.isNegVar() && e.right.kind == KindVar
			case KindMul:
				return e.left.kind == KindZero || e.right.kind == KindZero
			case KindPow:
				return e.left.kind == KindZero
			}
			return false
		},
		rewrite: func(*Expr) *Expr { return Zero() },
	},

	// (4) Results that are always 1.
	{
		name: "one",
		match: func(e *Expr) bool {
			switch e.kind {
			case KindDiv:
				return e.left.kind == KindVar && (e.right.kind == KindVar || e.right.isNegVar()) ||
					e.left.isNegVar() && e.right.kind == KindVar
			case KindPow:
				return e.left.kind == KindOne || e.right.kind == KindZero
			}
			return false
		},
		rewrite: func(*Expr) *Expr { return One() },
	},

	// (5) Inverse functions cancel.
	{
		name: "inverse",
		match: func(e *Expr) bool {
			switch e.kind {
			case KindNeg:
				return e.left.kind == KindNeg
			case KindLn:
				return e.left.kind == KindExp
			case KindExp:
				return e.left.kind == KindLn
			case KindSqrt:
				return e.left.kind == KindSq
			case KindSq:
				return e.left.kind == KindSqrt
			}
			return false
		},
		rewrite: func(e *Expr) *Expr { return e.left.left },
	},

	// (6) Identity elements vanish.
	{
		name: "identity-right",
		match: func(e *Expr) bool {
			switch e.kind {
			case KindAdd, KindSub:
				return e.right.kind == KindZero
			case KindMul, KindDiv, KindPow:
				return e.right.kind == KindOne
			}
			return false
		},
		rewrite: left,
	},
	{
		name: "identity-left",
		match: func(e *Expr) bool {
			switch e.kind {
			case KindAdd:
				return e.left.kind == KindZero
			case KindMul:
				return e.left.kind == KindOne
			}
			return false
		},
		rewrite: func(e *Expr) *Expr { return e.right },
	},

	// (7) Signs.
	{
		name:    "zero-sub",
		match:   func(e *Expr) bool { return e.kind == KindSub && e.left.kind == KindZero },
		rewrite: func(e *Expr) *Expr { return Neg(e.right) },
	},
	{
		name:    "sq-neg",
		match:   func(e *Expr) bool { return e.kind == KindSq && e.left.kind == KindNeg },
		rewrite: func(e *Expr) *Expr { return Sq(e.left.left) },
	},
}

func left(e *Expr) *Expr {
	return e.left
}

// isLiteral returns whether e is a number without variables or parameters.
func (e *Expr) isLiteral() bool {
	return e.kind == KindConst || e.kind == KindZero || e.kind == KindOne
}

// isNegVar returns whether e is -x.
func (e *Expr) isNegVar() bool {
	return e.kind == KindNeg && e.left.kind == KindVar
}
