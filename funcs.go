package symdiff

// funcnames maps function node kinds to their names in expression text.
var funcnames = [...]string{
	nodeSin: "sin",
	nodeCos: "cos",
	nodeLn:  "ln",
	nodeExp: "exp",
}

// funcprefixes lists the function names the parser recognizes, in the order
// it tries them.
var funcprefixes = []struct {
	name string
	kind nodeKind
}{
	{"sin", nodeSin},
	{"cos", nodeCos},
	{"exp", nodeExp},
	{"ln", nodeLn},
}

// call applies the function of kind k to x.
func call[T Scalar[T]](k nodeKind, x T) T {
	switch k {
	case nodeSin:
		return x.Sin()
	case nodeCos:
		return x.Cos()
	case nodeLn:
		return x.Log()
	case nodeExp:
		return x.Exp()
	default:
		panic("symdiff: " + k.String() + " is not a function")
	}
}

// apply applies the binary operator of kind k.
func apply[T Scalar[T]](k nodeKind, x, y T) T {
	switch k {
	case nodeAdd:
		return x.Add(y)
	case nodeSub:
		return x.Sub(y)
	case nodeMul:
		return x.Mul(y)
	case nodeDiv:
		return x.Div(y)
	case nodePow:
		return x.Pow(y)
	default:
		panic("symdiff: " + k.String() + " is not a binary operator")
	}
}
