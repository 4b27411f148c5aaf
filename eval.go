package symdiff

import (
	"strconv"
)

// Eval computes the value of the expression with variables taken from vars.
// A variable missing from vars is an error of type *NameError. Numeric edge
// cases such as division by zero are not errors; they produce whatever the
// domain produces, e.g. an infinity or NaN for Real.
//
// Eval uses an explicit stack rather than recursion, so it handles trees of
// any depth. Subtrees shared within the expression are evaluated once.
func (e *Expr[T]) Eval(vars map[string]T) (T, error) {
	var ctx evalctx[T]
	return ctx.eval(e.n, vars)
}

// frame is an entry on the evaluation work stack. A node is visited twice:
// first to schedule its operands, then, once they are on the value stack,
// to combine them.
type frame[T Scalar[T]] struct {
	n     *node[T]
	ready bool
}

type evalctx[T Scalar[T]] struct {
	work  []frame[T]
	stack []T
	memo  map[*node[T]]T
}

// push pushes a value onto the value stack.
func (ctx *evalctx[T]) push(v T) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the value stack and returns it.
func (ctx *evalctx[T]) pop() T {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

func (ctx *evalctx[T]) eval(root *node[T], vars map[string]T) (T, error) {
	ctx.work = append(ctx.work[:0], frame[T]{n: root})
	ctx.stack = ctx.stack[:0]
	ctx.memo = make(map[*node[T]]T)
	for len(ctx.work) > 0 {
		f := ctx.work[len(ctx.work)-1]
		ctx.work = ctx.work[:len(ctx.work)-1]
		n := f.n
		if f.ready {
			var r T
			switch {
			case n.kind.binary():
				y := ctx.pop()
				x := ctx.pop()
				r = apply(n.kind, x, y)
			case n.kind.unary():
				r = call(n.kind, ctx.pop())
			default:
				panic("symdiff: invalid AST node " + n.kind.String())
			}
			ctx.memo[n] = r
			ctx.push(r)
			continue
		}
		if v, ok := ctx.memo[n]; ok {
			ctx.push(v)
			continue
		}
		switch n.kind {
		case nodeNum:
			ctx.push(n.val)
		case nodeName:
			v, ok := vars[n.name]
			if !ok {
				var zero T
				return zero, &NameError{Name: n.name}
			}
			ctx.push(v)
		case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
			// Left is popped from the work stack first, so it lands on the
			// value stack below right.
			ctx.work = append(ctx.work, frame[T]{n: n, ready: true}, frame[T]{n: n.right}, frame[T]{n: n.left})
		case nodeSin, nodeCos, nodeLn, nodeExp:
			ctx.work = append(ctx.work, frame[T]{n: n, ready: true}, frame[T]{n: n.left})
		default:
			panic("symdiff: invalid AST node " + n.kind.String())
		}
	}
	if len(ctx.stack) != 1 {
		panic("symdiff: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	return ctx.stack[0], nil
}

// EvalString is a shortcut to parse an expression and evaluate it.
func EvalString[T Scalar[T]](src string, vars map[string]T, opts ...ParseOption) (T, error) {
	a, err := Parse[T](src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Eval(vars)
}

// NameError is an error from a lookup for a variable that is missing from the
// bindings given to Eval.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
