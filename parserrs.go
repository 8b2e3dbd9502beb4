package formula

import "strconv"

// BracketErrorKind distinguishes the ways brackets can be malformed.
type BracketErrorKind int8

const (
	// UnbalancedBrackets means the numbers of open and close brackets differ.
	UnbalancedBrackets BracketErrorKind = iota + 1
	// BracketOrder means a close bracket appears before its open bracket.
	BracketOrder
)

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the bracketed text, or of the offending close
	// bracket for BracketOrder.
	Col int
	// Kind is the way in which the brackets are malformed.
	Kind BracketErrorKind
	// Open and Close are the number of open and close brackets in the text.
	Open, Close int
}

func (err *BracketError) Error() string {
	if err.Kind == BracketOrder {
		return errpos(err.Col, "close bracket with no open bracket")
	}
	return errpos(err.Col, "mismatched brackets: "+strconv.Itoa(err.Open)+" open, "+strconv.Itoa(err.Close)+" close")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating text without operators or brackets that
// is not a variable, parameter, or number. It implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "unknown literal "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating text with operators or brackets
// that matches no production. It implements InputError.
type ExpressionError struct {
	// Col is the position of the subexpression.
	Col int
	// Text is the subexpression.
	Text string
}

func (err *ExpressionError) Error() string {
	return errpos(err.Col, "unable to parse "+strconv.Quote(err.Text))
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, such as
// an operand missing from either side of an operator. It implements
// InputError.
type EmptyExpressionError struct {
	// Col is the position where the subexpression should have been.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "missing operand")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the error within the input
	// after whitespace is removed.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
