package symdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	x := Var[Real]("x")
	two := Literal[Real](2)
	cases := []struct {
		e    *Expr[Real]
		want string
	}{
		{x, "x"},
		{two, "2"},
		{Add(x, two), "(x + 2)"},
		{Sub(x, two), "(x - 2)"},
		{Mul(x, two), "(x * 2)"},
		{Div(x, two), "(x / 2)"},
		{Pow(x, two), "(x ^ 2)"},
		{Sin(x), "sin(x)"},
		{Cos(x), "cos(x)"},
		{Ln(x), "ln(x)"},
		{Exp(x), "exp(x)"},
		{Mul(Literal[Real](3), Add(two, Literal[Real](1))), "(3 * (2 + 1))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.e.String())
	}
	assert.Equal(t, "(x * (1 + 2i))", Mul(Var[Complex]("x"), Literal[Complex](1+2i)).String())
}

func TestVars(t *testing.T) {
	cases := map[string][]string{
		"1":                   nil,
		"x":                   {"x"},
		"x*x":                 {"x"},
		"z+y*x":               {"x", "y", "z"},
		"sin(b)^a/exp(c.d)":   {"a", "b", "c.d"},
		"ln(θ)+cos(α)*sin(β)": {"α", "β", "θ"},
	}
	for src, want := range cases {
		a, err := ParseReal(src)
		if assert.NoError(t, err, src) {
			assert.Equal(t, want, a.Vars(), src)
		}
	}
}

func TestVarsShared(t *testing.T) {
	// High-order derivatives repeat shared subtrees so often that visiting
	// every occurrence takes minutes.
	a, err := ParseReal("sin(x)*exp(y)")
	require.NoError(t, err)
	d := a
	for i := 0; i < 12; i++ {
		d = d.Diff("x")
	}
	require.Greater(t, d.Size(), 1<<20)
	assert.Equal(t, []string{"x", "y"}, d.Vars())
}

func TestSizeDepth(t *testing.T) {
	cases := []struct {
		src   string
		size  int
		depth int
	}{
		{"x", 1, 1},
		{"x+1", 3, 2},
		{"sin(x)", 2, 2},
		{"(a+b)*(c-d)", 7, 3},
		{"a+b+c+d", 7, 4},
		{"exp(ln(sin(x)))", 4, 4},
	}
	for _, c := range cases {
		a, err := ParseReal(c.src)
		if assert.NoError(t, err, c.src) {
			assert.Equal(t, c.size, a.Size(), "size of %q", c.src)
			assert.Equal(t, c.depth, a.Depth(), "depth of %q", c.src)
		}
	}

	// Shared subtrees count once per appearance.
	s := Sin(Var[Real]("x"))
	p := Mul(s, s)
	assert.Equal(t, 5, p.Size())
	assert.Equal(t, 3, p.Depth())
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Num", nodeNum.String())
	assert.Equal(t, "Pow", nodePow.String())
	assert.Equal(t, "Exp", nodeExp.String())
	assert.Equal(t, "nodeKind(99)", nodeKind(99).String())
}
