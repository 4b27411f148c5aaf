package symdiff

// DefaultMaxDepth is the default limit on parser recursion. Each operator and
// each pair of parentheses or function call adds a level. Every level rescans
// its part of the input, so parse time grows with the square of the nesting;
// input nested near this limit takes on the order of a second to parse.
const DefaultMaxDepth = 1 << 14

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings of one parse.
type parsectx struct {
	// maxdepth is the recursion limit.
	maxdepth int
}

type depthopt int

// MaxDepth sets the limit on how deeply the parser recurses before it gives up
// with a *DepthError. Values less than 1 restore DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	if p.maxdepth < 1 {
		p.maxdepth = DefaultMaxDepth
	}
	return p
}
