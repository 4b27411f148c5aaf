// Package symdiff parses infix expressions into symbolic trees that can be
// evaluated, partially evaluated, differentiated, and printed.
//
// Trees are generic over a numeric domain: Real for float64 arithmetic and
// Complex for complex128. "3 + 5i - (1 + 2i)" is a complex expression, and so
// is "(1,2) * (3,4)", which uses pair literals. The functions sin, cos, ln,
// and exp take one parenthesized argument.
//
// All binary operators associate to the left, "^" included, and there is no
// unary minus: write "0-x" for the negation of x. Derivatives are never
// simplified, so the derivative of "x^3" prints as a sum of products that
// happens to equal 3x^2.
//
// Trees are immutable. Substitute and Diff build new trees that share
// unchanged subtrees with their input, and any number of goroutines may
// evaluate the same tree at once.
package symdiff
