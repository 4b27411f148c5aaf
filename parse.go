package symdiff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Expr  = Sum
// Sum   = Sum ('+' | '-') Prod | Prod
// Prod  = Prod ('*' | '/') Pow | Pow
// Pow   = Pow '^' Atom | Atom
// Atom  = '(' Expr ')' | '(' real ',' real ')' | func '(' Expr ')' | digits | digits 'i' | 'i' | name
// func  = 'sin' | 'cos' | 'exp' | 'ln'
//
// Every binary operator associates to the left, including '^'. There is no
// unary minus; "-x" is a subtraction with nothing on the left.

// Parse parses an expression in the numeric domain T. Whitespace anywhere in
// src is ignored. Errors resulting from invalid input implement InputError.
//
// The parser works by splitting: it looks for the rightmost operator of the
// loosest precedence level that is outside all parentheses, parses each side,
// and tries the next level only if there is no such operator. Pair literals
// "(re,im)" are decimal floats and may be signed; all other numbers in the
// input are unsigned integers, optionally with an imaginary suffix "i".
func Parse[T Scalar[T]](src string, opts ...ParseOption) (*Expr[T], error) {
	p := parser[T]{
		src: compact(src),
		parsectx: parsectx{
			maxdepth: DefaultMaxDepth,
		},
	}
	for _, opt := range opts {
		p.parsectx = opt.parseOption(p.parsectx)
	}
	if err := checkbrackets(p.src); err != nil {
		return nil, err
	}
	n, err := p.parse(0, len(p.src))
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: 1}
	}
	return wrap(n), nil
}

// ParseReal parses an expression over the reals.
func ParseReal(src string, opts ...ParseOption) (*Expr[Real], error) {
	return Parse[Real](src, opts...)
}

// ParseComplex parses an expression over the complex numbers.
func ParseComplex(src string, opts ...ParseOption) (*Expr[Complex], error) {
	return Parse[Complex](src, opts...)
}

type parser[T Scalar[T]] struct {
	parsectx
	// src is the input with whitespace removed.
	src string
	// depth is the current recursion depth.
	depth int
}

// parse parses src[lo:hi], which must have balanced parentheses. If the input
// is empty, the result is nil with no error; callers must create an error in
// contexts where empty subexpressions are illegal.
func (p *parser[T]) parse(lo, hi int) (*node[T], error) {
	if lo == hi {
		return nil, nil
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxdepth {
		return nil, &DepthError{Col: col(p.src, lo), Max: p.maxdepth}
	}
	for _, ops := range operators {
		if i := rsplit(p.src, lo, hi, ops); i >= 0 {
			return p.parsebinary(lo, i, hi)
		}
	}
	return p.parseatom(lo, hi)
}

// parsebinary parses src[lo:hi] split at the operator src[i].
func (p *parser[T]) parsebinary(lo, i, hi int) (*node[T], error) {
	var kind nodeKind
	switch p.src[i] {
	case '+':
		kind = nodeAdd
	case '-':
		kind = nodeSub
	case '*':
		kind = nodeMul
	case '/':
		kind = nodeDiv
	case '^':
		kind = nodePow
	default:
		panic("symdiff: split on non-operator " + strconv.QuoteRune(rune(p.src[i])))
	}
	l, err := p.parse(lo, i)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &EmptyExpressionError{Col: col(p.src, i), End: p.src[i : i+1]}
	}
	r, err := p.parse(i+1, hi)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, p.emptyat(hi)
	}
	return &node[T]{kind: kind, left: l, right: r}, nil
}

// parseatom parses src[lo:hi] with no operators outside parentheses.
func (p *parser[T]) parseatom(lo, hi int) (*node[T], error) {
	s := p.src[lo:hi]
	if s[0] == '(' && match(p.src, lo) == hi-1 {
		if c := rsplit(p.src, lo+1, hi-1, ","); c >= 0 {
			return p.parsepair(lo, c, hi)
		}
		return p.parsegroup(lo+1, hi-1)
	}
	for _, f := range funcprefixes {
		k := lo + len(f.name)
		if strings.HasPrefix(s, f.name) && k < hi && p.src[k] == '(' && match(p.src, k) == hi-1 {
			arg, err := p.parsegroup(k+1, hi-1)
			if err != nil {
				return nil, err
			}
			return &node[T]{kind: f.kind, left: arg}, nil
		}
	}
	if n := len(s) - 1; s[n] == 'i' && isdigits(s[:n]) {
		im := 1.0
		if n > 0 {
			im = parsedigits(s[:n])
		}
		return p.literal(lo, s, 0, im)
	}
	if isdigits(s) {
		return p.literal(lo, s, parsedigits(s), 0)
	}
	if isident(s) {
		return &node[T]{kind: nodeName, name: s}, nil
	}
	return nil, &TermError{Col: col(p.src, lo), Text: s}
}

// parsegroup parses the contents of parentheses, src[lo:hi]. src[hi] is the
// close parenthesis.
func (p *parser[T]) parsegroup(lo, hi int) (*node[T], error) {
	n, err := p.parse(lo, hi)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.emptyat(hi)
	}
	return n, nil
}

// parsepair parses a complex pair literal "(re,im)" spanning src[lo:hi] with
// the separating comma at src[c].
func (p *parser[T]) parsepair(lo, c, hi int) (*node[T], error) {
	s := p.src[lo:hi]
	re, err := strconv.ParseFloat(p.src[lo+1:c], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &TermError{Col: col(p.src, lo), Text: s}
	}
	im, err := strconv.ParseFloat(p.src[c+1:hi-1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &TermError{Col: col(p.src, lo), Text: s}
	}
	return p.literal(lo, s, re, im)
}

// literal creates a number node for re + im·i, which was written as s at
// src[lo].
func (p *parser[T]) literal(lo int, s string, re, im float64) (*node[T], error) {
	var zero T
	v, ok := zero.Lit(re, im)
	if !ok {
		return nil, &DomainError{Col: col(p.src, lo), Text: s, Domain: domainname[T]()}
	}
	return &node[T]{kind: nodeNum, val: v}, nil
}

// emptyat creates an error for an empty subexpression ending at src[i].
func (p *parser[T]) emptyat(i int) error {
	if i >= len(p.src) {
		return &EmptyExpressionError{Col: col(p.src, i)}
	}
	return &EmptyExpressionError{Col: col(p.src, i), End: p.src[i : i+1]}
}

// parsedigits converts a string of decimal digits to a float. Strings too
// long to represent become +Inf.
func parsedigits(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("symdiff: invalid digits " + strconv.Quote(s) + ": " + err.Error())
	}
	return v
}

// domainname names the numeric domain T for error messages.
func domainname[T Scalar[T]]() string {
	var zero T
	return strings.TrimPrefix(fmt.Sprintf("%T", zero), "symdiff.")
}
