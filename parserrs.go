package symdiff

import "strconv"

// BracketError is an error indicating an unmatched parenthesis in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the open parenthesis, if it is the one without a match.
	Left string
	// Right is the close parenthesis, if it is the one without a match.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, such as
// either side of the operator in "-x" or "x+", or the inside of "()".
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string if
	// the subexpression ran to the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TermError is an error indicating a term which is neither a number, a
// variable name, nor a function call. It implements InputError.
type TermError struct {
	// Col is the position of the start of the term.
	Col int
	// Text is the term.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "invalid term "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// DomainError is an error indicating a literal that the numeric domain cannot
// represent, e.g. an imaginary number when parsing reals. It implements
// InputError.
type DomainError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal.
	Text string
	// Domain names the numeric domain, e.g. "Real".
	Domain string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, strconv.Quote(err.Text)+" is not a "+err.Domain+" number")
}

func (err *DomainError) Pos() int {
	return err.Col
}

// DepthError is an error indicating an expression nested more deeply than the
// parser allows. It implements InputError.
type DepthError struct {
	// Col is the position of the subexpression at which parsing stopped.
	Col int
	// Max is the maximum depth that was in effect.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
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
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. Whitespace is
	// not counted.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*DepthError)(nil)
)
