package symdiff

// Diff returns the derivative of the expression with respect to the variable
// name. Every other variable is treated as a constant.
//
// The result is not simplified. It refers to subtrees of e instead of copying
// them, but its rendered form can still be much larger than e, and repeated
// differentiation grows it quickly.
func (e *Expr[T]) Diff(name string) *Expr[T] {
	d := differ[T]{
		name: name,
		memo: make(map[*node[T]]*node[T]),
		zero: num(constant[T](0)),
		one:  num(constant[T](1)),
	}
	return wrap(d.diff(e.n))
}

type differ[T Scalar[T]] struct {
	name string
	memo map[*node[T]]*node[T]
	// zero and one are shared by every leaf derivative.
	zero, one *node[T]
}

func num[T Scalar[T]](v T) *node[T] {
	return &node[T]{kind: nodeNum, val: v}
}

func bin[T Scalar[T]](k nodeKind, l, r *node[T]) *node[T] {
	return &node[T]{kind: k, left: l, right: r}
}

func fn[T Scalar[T]](k nodeKind, x *node[T]) *node[T] {
	return &node[T]{kind: k, left: x}
}

func (d *differ[T]) diff(n *node[T]) *node[T] {
	if r, ok := d.memo[n]; ok {
		return r
	}
	var r *node[T]
	switch n.kind {
	case nodeNum:
		r = d.zero
	case nodeName:
		r = d.zero
		if n.name == d.name {
			r = d.one
		}
	case nodeAdd, nodeSub:
		// f' ± g'
		r = bin(n.kind, d.diff(n.left), d.diff(n.right))
	case nodeMul:
		// f*g' + f'*g
		f, g := n.left, n.right
		r = bin(nodeAdd, bin(nodeMul, f, d.diff(g)), bin(nodeMul, d.diff(f), g))
	case nodeDiv:
		// (f'*g - f*g') / g^2
		f, g := n.left, n.right
		top := bin(nodeSub, bin(nodeMul, d.diff(f), g), bin(nodeMul, f, d.diff(g)))
		r = bin(nodeDiv, top, bin(nodePow, g, num(constant[T](2))))
	case nodePow:
		// g*f^(g-1)*f' + f^g*ln(f)*g', where n is already f^g
		f, g := n.left, n.right
		base := bin(nodeMul, bin(nodeMul, g, bin(nodePow, f, bin(nodeSub, g, d.one))), d.diff(f))
		expo := bin(nodeMul, bin(nodeMul, n, fn(nodeLn, f)), d.diff(g))
		r = bin(nodeAdd, base, expo)
	case nodeSin:
		// cos(f)*f'
		r = bin(nodeMul, fn(nodeCos, n.left), d.diff(n.left))
	case nodeCos:
		// -1*sin(f)*f'
		r = bin(nodeMul, bin(nodeMul, num(constant[T](-1)), fn(nodeSin, n.left)), d.diff(n.left))
	case nodeLn:
		// f'/f
		r = bin(nodeDiv, d.diff(n.left), n.left)
	case nodeExp:
		// exp(f)*f', where n is already exp(f)
		r = bin(nodeMul, n, d.diff(n.left))
	default:
		panic("symdiff: invalid AST node " + n.kind.String())
	}
	d.memo[n] = r
	return r
}
