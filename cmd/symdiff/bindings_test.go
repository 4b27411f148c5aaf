package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/symdiff"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		tok  string
		want binding
	}{
		{"x=1", binding{name: "x", re: 1}},
		{"x=1,", binding{name: "x", re: 1}},
		{" y = -2.5 ", binding{name: "y", re: -2.5}},
		{"θ=1/8", binding{name: "θ", re: 0.125}},
		{"x=2*pi", binding{name: "x", re: 2 * math.Pi}},
		{"x=(1+2)*3", binding{name: "x", re: 9}},
		{"z=(1,2)", binding{name: "z", re: 1, im: 2, pair: true}},
		{"z=(1,2),", binding{name: "z", re: 1, im: 2, pair: true}},
		{"z=(-0.5, 1/4)", binding{name: "z", re: -0.5, im: 0.25, pair: true}},
		{"z=(max(1,3),0)", binding{name: "z", re: 3, pair: true}},
	}
	for _, c := range cases {
		b, err := parseBinding(c.tok)
		if assert.NoError(t, err, c.tok) {
			assert.Equal(t, c.want, b, c.tok)
		}
	}
}

func TestParseBindingErrors(t *testing.T) {
	cases := map[string]string{
		"x":         `missing "="`,
		"=3":        "missing variable name",
		"x=":        "missing value",
		"x=,":       "missing value",
		"x=(1)":     "complex value must be (re,im)",
		"x=(1,2,3)": "complex value must be (re,im)",
	}
	for tok, reason := range cases {
		_, err := parseBinding(tok)
		var be *BindingError
		if assert.ErrorAs(t, err, &be, tok) {
			assert.Equal(t, tok, be.Token)
			assert.Equal(t, reason, be.Reason)
			assert.Contains(t, be.Error(), reason)
		}
	}

	for _, tok := range []string{"x=foo", "x=1+", "z=(a,1)", "z=(1,)"} {
		_, err := parseBinding(tok)
		var be *BindingError
		assert.ErrorAs(t, err, &be, tok)
	}
}

func TestPairComma(t *testing.T) {
	cases := map[string]int{
		"1,2":        1,
		"max(1,2),3": 8,
		"1,2,3":      -1,
		"12":         -1,
		"[1,2]":      -1,
	}
	for s, want := range cases {
		assert.Equal(t, want, pairComma(s), s)
	}
}

func TestIsPairToken(t *testing.T) {
	assert.True(t, isPairToken("x=(1,2)"))
	assert.True(t, isPairToken("x=(1,2),"))
	assert.False(t, isPairToken("x=1,"))
	assert.False(t, isPairToken("x=(1+2)*3"))
}

func TestLoadBindings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vars.yaml")
	src := "b: 2\na: 0.5\nc: '2**3'\nd: [1, -1]\ne: -7\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	bs, err := loadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, []binding{
		{name: "a", re: 0.5},
		{name: "b", re: 2},
		{name: "c", re: 8},
		{name: "d", re: 1, im: -1, pair: true},
		{name: "e", re: -7},
	}, bs)

	bad := map[string]string{
		"triple.yaml": "x: [1, 2, 3]\n",
		"map.yaml":    "x: {re: 1}\n",
		"expr.yaml":   "x: 'nope nope'\n",
		"syntax.yaml": "x: [1, 2\n",
	}
	for name, src := range bad {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
		_, err := loadBindings(p)
		assert.Error(t, err, name)
	}
}

func TestBindingsDomain(t *testing.T) {
	file := []binding{{name: "x", re: 1}, {name: "y", re: 2}}
	r, err := bindings[symdiff.Real](file, []string{"y=3", "z=4"})
	require.NoError(t, err)
	assert.Equal(t, map[string]symdiff.Real{"x": 1, "y": 3, "z": 4}, r)

	c, err := bindings[symdiff.Complex](file, []string{"z=(0,1)"})
	require.NoError(t, err)
	assert.Equal(t, map[string]symdiff.Complex{"x": 1, "y": 2, "z": 1i}, c)

	_, err = bindings[symdiff.Real]([]binding{{name: "w", im: 1, pair: true}}, nil)
	var be *BindingError
	assert.ErrorAs(t, err, &be)
}
