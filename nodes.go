package symdiff

import (
	"slices"
	"strings"
)

// node is a node in an expression tree. Nodes are never modified after they
// are created, so a node may be shared by any number of trees.
type node[T Scalar[T]] struct {
	kind nodeKind

	// val is the value of a nodeNum.
	val T
	// name is the name of a nodeName.
	name string

	// left is the operand of a function node or the left side of a binary
	// node. right is the right side of a binary node.
	left  *node[T]
	right *node[T]
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // val
	nodeName // lookup(name)

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right

	nodeSin // sin(left)
	nodeCos // cos(left)
	nodeLn  // ln(left)
	nodeExp // exp(left)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// binary reports whether k is a binary operator.
func (k nodeKind) binary() bool {
	return nodeAdd <= k && k <= nodePow
}

// unary reports whether k is a function of one argument.
func (k nodeKind) unary() bool {
	return nodeSin <= k && k <= nodeExp
}

// Expr is an immutable expression tree over the numeric domain T.
type Expr[T Scalar[T]] struct {
	// n is the root node of the expression.
	n *node[T]
}

func wrap[T Scalar[T]](n *node[T]) *Expr[T] {
	return &Expr[T]{n: n}
}

// Literal returns an expression for the constant v.
func Literal[T Scalar[T]](v T) *Expr[T] {
	return wrap(&node[T]{kind: nodeNum, val: v})
}

// Var returns an expression for the variable with the given name.
func Var[T Scalar[T]](name string) *Expr[T] {
	return wrap(&node[T]{kind: nodeName, name: name})
}

func binary[T Scalar[T]](k nodeKind, a, b *Expr[T]) *Expr[T] {
	return wrap(&node[T]{kind: k, left: a.n, right: b.n})
}

func unary[T Scalar[T]](k nodeKind, a *Expr[T]) *Expr[T] {
	return wrap(&node[T]{kind: k, left: a.n})
}

// Add returns a + b.
func Add[T Scalar[T]](a, b *Expr[T]) *Expr[T] { return binary(nodeAdd, a, b) }

// Sub returns a - b.
func Sub[T Scalar[T]](a, b *Expr[T]) *Expr[T] { return binary(nodeSub, a, b) }

// Mul returns a * b.
func Mul[T Scalar[T]](a, b *Expr[T]) *Expr[T] { return binary(nodeMul, a, b) }

// Div returns a / b.
func Div[T Scalar[T]](a, b *Expr[T]) *Expr[T] { return binary(nodeDiv, a, b) }

// Pow returns a ^ b.
func Pow[T Scalar[T]](a, b *Expr[T]) *Expr[T] { return binary(nodePow, a, b) }

// Sin returns sin(a).
func Sin[T Scalar[T]](a *Expr[T]) *Expr[T] { return unary(nodeSin, a) }

// Cos returns cos(a).
func Cos[T Scalar[T]](a *Expr[T]) *Expr[T] { return unary(nodeCos, a) }

// Ln returns the natural logarithm of a.
func Ln[T Scalar[T]](a *Expr[T]) *Expr[T] { return unary(nodeLn, a) }

// Exp returns e^a.
func Exp[T Scalar[T]](a *Expr[T]) *Expr[T] { return unary(nodeExp, a) }

// String renders the expression with every binary operation parenthesized,
// e.g. "(3 * (2 + 1))" or "sin((x ^ 2))".
func (e *Expr[T]) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

func (n *node[T]) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.val.String())
	case nodeName:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opsyms[n.kind])
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeSin, nodeCos, nodeLn, nodeExp:
		b.WriteString(funcnames[n.kind])
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		panic("symdiff: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

var opsyms = [...]string{
	nodeAdd: "+",
	nodeSub: "-",
	nodeMul: "*",
	nodeDiv: "/",
	nodePow: "^",
}

// Vars returns the sorted names of the variables in the expression.
func (e *Expr[T]) Vars() []string {
	seen := make(map[string]bool)
	visited := make(map[*node[T]]bool)
	var names []string
	stack := []*node[T]{e.n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		switch {
		case n.kind == nodeName:
			if !seen[n.name] {
				seen[n.name] = true
				names = append(names, n.name)
			}
		case n.kind.binary():
			stack = append(stack, n.right, n.left)
		case n.kind.unary():
			stack = append(stack, n.left)
		}
	}
	slices.Sort(names)
	return names
}

// Size returns the number of nodes in the expression. A subtree that appears
// more than once, as derivatives often contain, is counted each time.
func (e *Expr[T]) Size() int {
	memo := make(map[*node[T]]int)
	return e.n.size(memo)
}

func (n *node[T]) size(memo map[*node[T]]int) int {
	if s, ok := memo[n]; ok {
		return s
	}
	s := 1
	switch {
	case n.kind.binary():
		s += n.left.size(memo) + n.right.size(memo)
	case n.kind.unary():
		s += n.left.size(memo)
	}
	memo[n] = s
	return s
}

// Depth returns the number of nodes on the longest path from the root to a
// leaf.
func (e *Expr[T]) Depth() int {
	memo := make(map[*node[T]]int)
	return e.n.depth(memo)
}

func (n *node[T]) depth(memo map[*node[T]]int) int {
	if d, ok := memo[n]; ok {
		return d
	}
	d := 0
	switch {
	case n.kind.binary():
		d = max(n.left.depth(memo), n.right.depth(memo))
	case n.kind.unary():
		d = n.left.depth(memo)
	}
	memo[n] = d + 1
	return d + 1
}
