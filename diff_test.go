package symdiff

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffRender(t *testing.T) {
	cases := []struct {
		name string
		src  string
		by   string
		want string
	}{
		{"const", "3", "x", "0"},
		{"var", "x", "x", "1"},
		{"other-var", "y", "x", "0"},
		{"sum", "x+y", "x", "(1 + 0)"},
		{"difference", "x-y", "y", "(0 - 1)"},
		{"product", "x*y", "x", "((x * 0) + (1 * y))"},
		{"quotient", "x/y", "x", "(((1 * y) - (x * 0)) / (y ^ 2))"},
		{"power", "x^3", "x", "(((3 * (x ^ (3 - 1))) * 1) + (((x ^ 3) * ln(x)) * 0))"},
		{"sin", "sin(x)", "x", "(cos(x) * 1)"},
		{"cos", "cos(x)", "x", "((-1 * sin(x)) * 1)"},
		{"ln", "ln(x)", "x", "(1 / x)"},
		{"exp", "exp(x)", "x", "(exp(x) * 1)"},
		{"chain", "sin(x*y)", "y", "(cos((x * y)) * ((x * 1) + (0 * y)))"},
		{"free", "sin(y)^z", "x", "(((z * (sin(y) ^ (z - 1))) * (cos(y) * 0)) + (((sin(y) ^ z) * ln(sin(y))) * 0))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseReal(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, a.Diff(c.by).String())
		})
	}
}

func TestDiffReal(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		want float64
	}{
		{"const", "7", 1, 0},
		{"linear", "3*x+2", 5, 3},
		{"cube", "x^3", 2, 12},
		{"sin-origin", "sin(x)", 0, 1},
		{"cos-origin", "cos(x)", 0, 0},
		{"cos-quarter", "cos(x)", math.Pi / 2, -1},
		{"cos-sixth", "cos(x)", math.Pi / 6, -0.5},
		{"reciprocal", "1/x", 2, -0.25},
		{"quotient", "x/(x+1)", 1, 0.25},
		{"exp-base", "2^x", 1, 2 * math.Ln2},
		{"ln", "ln(x)", 4, 0.25},
		{"exp", "exp(x)", 1, math.E},
		{"chain", "exp(x^2)", 1, 2 * math.E},
		{"chain-sin", "sin(x^2)", 3, 6 * math.Cos(9)},
		{"ln-chain", "ln(sin(x))", 1, math.Cos(1) / math.Sin(1)},
		{"x-to-x", "x^x", 2, 4 * (1 + math.Ln2)},
		{"poly", "x^3/2 - x", 3, 12.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseReal(c.src)
			require.NoError(t, err)
			r, err := a.Diff("x").Eval(map[string]Real{"x": Real(c.x)})
			require.NoError(t, err)
			assert.InDelta(t, c.want, float64(r), 1e-9, "d/dx %s at %v", c.src, c.x)
		})
	}
}

func TestDiffSecond(t *testing.T) {
	a, err := ParseReal("sin(x)")
	require.NoError(t, err)
	dd := a.Diff("x").Diff("x")
	for _, x := range []float64{0.5, 1, 2} {
		r, err := dd.Eval(map[string]Real{"x": Real(x)})
		require.NoError(t, err)
		assert.InDelta(t, -math.Sin(x), float64(r), 1e-12)
	}
}

// TestDiffPowNonPositive records that the general power rule multiplies
// ln(f) by g', so integer powers of a non-positive base differentiate to NaN
// over the reals even where the true derivative exists.
func TestDiffPowNonPositive(t *testing.T) {
	a, err := ParseReal("x^2")
	require.NoError(t, err)
	r, err := a.Diff("x").Eval(map[string]Real{"x": -1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(r)), "got %v", r)

	c, err := ParseComplex("x^2")
	require.NoError(t, err)
	z, err := c.Diff("x").Eval(map[string]Complex{"x": -1})
	require.NoError(t, err)
	assert.InDelta(t, -2, real(z), 1e-9)
	assert.InDelta(t, 0, imag(z), 1e-9)
}

func TestDiffComplex(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    complex128
		want complex128
	}{
		{"imag-linear", "i*x", 3, 1i},
		{"pair-linear", "(2,1)*x+5", 1 + 1i, 2 + 1i},
		{"sin", "sin(x)", 1 + 1i, cmplx.Cos(1 + 1i)},
		{"cos", "cos(x)", 1i, -cmplx.Sin(1i)},
		{"exp-imag", "exp(i*x)", 2, 1i * cmplx.Exp(2i)},
		{"ln", "ln(x)", 2i, 1 / 2i},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseComplex(c.src)
			require.NoError(t, err)
			r, err := a.Diff("x").Eval(map[string]Complex{"x": Complex(c.x)})
			require.NoError(t, err)
			assert.InDelta(t, real(c.want), real(r), 1e-9)
			assert.InDelta(t, imag(c.want), imag(r), 1e-9)
		})
	}
}

func TestDiffSharing(t *testing.T) {
	a, err := ParseReal("sin(x*y)")
	require.NoError(t, err)
	d := a.Diff("x")
	// (cos(x*y) * d(x*y)): the argument of cos is the original product.
	require.Equal(t, nodeMul, d.n.kind)
	require.Equal(t, nodeCos, d.n.left.kind)
	assert.Same(t, a.n.left, d.n.left.left)

	e, err := ParseReal("exp(x)")
	require.NoError(t, err)
	assert.Same(t, e.n, e.Diff("x").n.left)

	// The input is unchanged.
	assert.Equal(t, "sin((x * y))", a.String())
}

func TestDiffDeep(t *testing.T) {
	// Repeated differentiation grows the tree, but shared subtrees keep the
	// number of distinct nodes manageable.
	a, err := ParseReal("sin(x)*exp(x)")
	require.NoError(t, err)
	d := a
	for i := 0; i < 6; i++ {
		d = d.Diff("x")
	}
	r, err := d.Eval(map[string]Real{"x": 0.5})
	require.NoError(t, err)
	// d^6/dx^6 of e^x sin x is -8 e^x cos x.
	assert.InDelta(t, -8*math.Exp(0.5)*math.Cos(0.5), float64(r), 1e-9)
}
