package symdiff

// Substitute returns a new expression in which each variable bound in vars is
// replaced by a literal of its value. Variables not in vars are kept, so the
// result may still be symbolic. Subtrees without any bound variable are
// shared with e rather than copied.
func (e *Expr[T]) Substitute(vars map[string]T) *Expr[T] {
	if len(vars) == 0 {
		return wrap(e.n)
	}
	memo := make(map[*node[T]]*node[T])
	return wrap(e.n.subst(vars, memo))
}

func (n *node[T]) subst(vars map[string]T, memo map[*node[T]]*node[T]) *node[T] {
	if r, ok := memo[n]; ok {
		return r
	}
	r := n
	switch n.kind {
	case nodeNum:
		// Literals are immutable, so the node itself serves as the copy.
	case nodeName:
		if v, ok := vars[n.name]; ok {
			r = &node[T]{kind: nodeNum, val: v}
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l := n.left.subst(vars, memo)
		rt := n.right.subst(vars, memo)
		if l != n.left || rt != n.right {
			r = &node[T]{kind: n.kind, left: l, right: rt}
		}
	case nodeSin, nodeCos, nodeLn, nodeExp:
		if l := n.left.subst(vars, memo); l != n.left {
			r = &node[T]{kind: n.kind, left: l}
		}
	default:
		panic("symdiff: invalid AST node " + n.kind.String())
	}
	memo[n] = r
	return r
}
