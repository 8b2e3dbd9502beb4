package formula

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Expr = Add | Sub | Neg | Mul | Div | Pow | Sq | Call | literal | '(' Expr ')'
// Add = Expr '+' Expr		split at the first top-level +
// Sub = Expr '-' Expr		split at the last top-level -, not at the start
// Neg = '-' Expr
// Mul = Expr '*' Expr		split at the first top-level *
// Div = Expr '/' Expr		split at the last top-level /
// Pow = Expr '^' Expr		split at the first top-level ^
// Sq = Expr '^' '2'
// Call = funcname '(' Expr ')'
// literal = 'x' | param | '0' | '1' | number
//
// Operators are tried in the order listed, so the operator tried first is the
// one closest to the root. Brackets may be any of (), [], or {}, and they need
// not match in style.

// Operators contains the characters which are operators.
const Operators = "+-*/^"

// OpenBrackets and CloseBrackets contain the characters which group
// expressions. Every bracket is equivalent to the first in its list.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// Parse parses a formula. Whitespace anywhere in src is ignored.
func Parse(src string) (*Expr, error) {
	return parse(normalize(src), 1)
}

// MustParse is like Parse but panics if the formula cannot be parsed.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic("formula: MustParse(" + strconv.Quote(src) + "): " + err.Error())
	}
	return e
}

// normalize removes whitespace and converts all brackets to parentheses.
func normalize(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		switch {
		case unicode.IsSpace(r):
			// do nothing
		case strings.ContainsRune(OpenBrackets, r):
			b.WriteByte('(')
		case strings.ContainsRune(CloseBrackets, r):
			b.WriteByte(')')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parse parses normalized text which begins at position col of the input.
func parse(s string, col int) (*Expr, error) {
	if s == "" {
		return nil, &EmptyExpressionError{Col: col}
	}
	if enclosed(s) {
		return parse(s[1:len(s)-1], col+1)
	}
	if !strings.ContainsAny(s, "()"+Operators) {
		return parseliteral(s, col)
	}
	if err := checkbrackets(s, col); err != nil {
		return nil, err
	}
	if k := scanleft(s, '+'); k >= 0 {
		return split(KindAdd, s, k, col)
	}
	// A minus at the start is negation, which binds tighter than subtraction
	// but looser than multiplication. -a+b is (-a)+b, but -x^2 is -(x^2).
	if k := scanright(s, '-', 1); k >= 0 {
		return split(KindSub, s, k, col)
	}
	if s[0] == '-' {
		e, err := parse(s[1:], col+1)
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	}
	if k := scanleft(s, '*'); k >= 0 {
		return split(KindMul, s, k, col)
	}
	if k := scanright(s, '/', 0); k >= 0 {
		return split(KindDiv, s, k, col)
	}
	if k := scanleft(s, '^'); k >= 0 {
		l, r, err := operands(s, k, col)
		if err != nil {
			return nil, err
		}
		if r.kind == KindConst && r.value == 2 {
			return Sq(l), nil
		}
		return Pow(l, r), nil
	}
	return parsecall(s, col)
}

// enclosed returns whether the first character of s is an open bracket which
// is matched by the last character.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	d := 0
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '(':
			d++
		case ')':
			d--
		}
		if d == 0 {
			return false
		}
	}
	return true
}

// checkbrackets verifies that the brackets in s are balanced and that no close
// bracket precedes its open bracket.
func checkbrackets(s string, col int) error {
	opens, closes := strings.Count(s, "("), strings.Count(s, ")")
	if opens != closes {
		return &BracketError{Col: col, Kind: UnbalancedBrackets, Open: opens, Close: closes}
	}
	d := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			d++
		case ')':
			d--
		}
		if d < 0 {
			return &BracketError{Col: col + i, Kind: BracketOrder, Open: opens, Close: closes}
		}
	}
	return nil
}

// scanleft finds the first occurrence of op outside brackets, or -1.
func scanleft(s string, op byte) int {
	d := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			d++
		case ')':
			d--
		case op:
			if d == 0 {
				return i
			}
		}
	}
	return -1
}

// scanright finds the last occurrence of op outside brackets at an index of at
// least lo, or -1.
func scanright(s string, op byte, lo int) int {
	d := 0
	for i := len(s) - 1; i >= lo; i-- {
		switch s[i] {
		case ')':
			d++
		case '(':
			d--
		case op:
			if d == 0 {
				return i
			}
		}
	}
	return -1
}

// operands parses the text on either side of the operator at index k.
func operands(s string, k, col int) (*Expr, *Expr, error) {
	l, err := parse(s[:k], col)
	if err != nil {
		return nil, nil, err
	}
	r, err := parse(s[k+1:], col+k+1)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// split creates a binary node from the operands around index k.
func split(kind Kind, s string, k, col int) (*Expr, error) {
	l, r, err := operands(s, k, col)
	if err != nil {
		return nil, err
	}
	return Binary(kind, l, r), nil
}

// parseliteral parses text that contains no operators or brackets.
func parseliteral(s string, col int) (*Expr, error) {
	switch {
	case s == "x":
		return Var(), nil
	case len(s) == 1 && IsParamName(s[0]):
		return Param(s[0]), nil
	case s == "0":
		return Zero(), nil
	case s == "1":
		return One(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range values parse as infinity or zero, which is what we
		// want anyway.
		if !errors.Is(err, strconv.ErrRange) {
			return nil, &LiteralError{Col: col, Text: s}
		}
	}
	return Const(v), nil
}

// parsecall parses a function call or the ^2 shorthand for squares.
func parsecall(s string, col int) (*Expr, error) {
	for i := range funcs {
		f := &funcs[i]
		if len(s) <= len(f.name)+1 || !strings.HasPrefix(s, f.name) || s[len(f.name)] != '(' || s[len(s)-1] != ')' {
			continue
		}
		arg, err := parse(s[len(f.name)+1:len(s)-1], col+len(f.name)+1)
		if err != nil {
			return nil, err
		}
		return Unary(f.kind, arg), nil
	}
	if strings.HasSuffix(s, "^2") {
		e, err := parse(s[:len(s)-2], col)
		if err != nil {
			return nil, err
		}
		return Sq(e), nil
	}
	return nil, &ExpressionError{Col: col, Text: s}
}
