package main

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/zephyrtronium/symdiff"
)

// BindingError is an error for a malformed variable binding.
type BindingError struct {
	// Token is the binding as given.
	Token string
	// Reason describes the problem.
	Reason string
}

func (err *BindingError) Error() string {
	return "binding " + strconv.Quote(err.Token) + ": " + err.Reason
}

// binding is a variable value read from the command line or a vars file.
type binding struct {
	name   string
	re, im float64
	// pair is whether the value was written as a complex pair.
	pair bool
}

// valueEnv is the environment for value expressions.
var valueEnv = map[string]any{
	"pi": math.Pi,
	"e":  math.E,
}

// evalValue evaluates a constant expression such as "1/3" or "-2**10".
func evalValue(s string) (float64, error) {
	p, err := expr.Compile(s, expr.Env(valueEnv), expr.AsFloat64())
	if err != nil {
		return 0, err
	}
	r, err := expr.Run(p, valueEnv)
	if err != nil {
		return 0, err
	}
	return r.(float64), nil
}

// trimToken removes surrounding space and one trailing comma, so that
// "x=1, y=2" works when the shell splits it into words.
func trimToken(tok string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tok), ","))
}

// isPairToken reports whether a binding token selects the complex domain.
func isPairToken(tok string) bool {
	return strings.HasSuffix(trimToken(tok), ")")
}

// parseBinding parses a binding token "name=value" or "name=(re,im)".
func parseBinding(tok string) (binding, error) {
	s := trimToken(tok)
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return binding{}, &BindingError{Token: tok, Reason: `missing "="`}
	}
	name, val = strings.TrimSpace(name), strings.TrimSpace(val)
	if name == "" {
		return binding{}, &BindingError{Token: tok, Reason: "missing variable name"}
	}
	if val == "" {
		return binding{}, &BindingError{Token: tok, Reason: "missing value"}
	}
	b := binding{name: name}
	if strings.HasSuffix(val, ")") && strings.HasPrefix(val, "(") {
		c := pairComma(val[1 : len(val)-1])
		if c < 0 {
			return binding{}, &BindingError{Token: tok, Reason: "complex value must be (re,im)"}
		}
		var err error
		if b.re, err = evalValue(val[1 : c+1]); err != nil {
			return binding{}, &BindingError{Token: tok, Reason: "real part: " + err.Error()}
		}
		if b.im, err = evalValue(val[c+2 : len(val)-1]); err != nil {
			return binding{}, &BindingError{Token: tok, Reason: "imaginary part: " + err.Error()}
		}
		b.pair = true
		return b, nil
	}
	v, err := evalValue(val)
	if err != nil {
		return binding{}, &BindingError{Token: tok, Reason: err.Error()}
	}
	b.re = v
	return b, nil
}

// pairComma finds the only comma in s outside brackets. The result is -1 if
// there is not exactly one.
func pairComma(s string) int {
	r := -1
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth != 0 {
				continue
			}
			if r >= 0 {
				return -1
			}
			r = i
		}
	}
	return r
}

// loadBindings reads a YAML mapping of variable names to values. A value is a
// number, a string holding a constant expression, or a two-element sequence
// of the real and imaginary parts.
func loadBindings(path string) ([]binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)
	r := make([]binding, 0, len(raw))
	for _, name := range names {
		tok := name + ": " + fmt.Sprint(raw[name])
		b := binding{name: name}
		switch v := raw[name].(type) {
		case []any:
			if len(v) != 2 {
				return nil, &BindingError{Token: tok, Reason: "complex value must have two parts"}
			}
			if b.re, err = yamlValue(v[0]); err != nil {
				return nil, &BindingError{Token: tok, Reason: "real part: " + err.Error()}
			}
			if b.im, err = yamlValue(v[1]); err != nil {
				return nil, &BindingError{Token: tok, Reason: "imaginary part: " + err.Error()}
			}
			b.pair = true
		default:
			if b.re, err = yamlValue(v); err != nil {
				return nil, &BindingError{Token: tok, Reason: err.Error()}
			}
		}
		r = append(r, b)
	}
	return r, nil
}

// yamlValue converts a decoded YAML scalar to a float.
func yamlValue(v any) (float64, error) {
	switch v := v.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return evalValue(v)
	default:
		return 0, fmt.Errorf("unsupported value %v of type %T", v, v)
	}
}

// bindings converts command-line tokens and file bindings into a binding map
// in the domain T. Tokens override file bindings of the same name.
func bindings[T symdiff.Scalar[T]](file []binding, toks []string) (map[string]T, error) {
	r := make(map[string]T, len(file)+len(toks))
	var zero T
	for _, b := range file {
		v, ok := zero.Lit(b.re, b.im)
		if !ok {
			return nil, &BindingError{Token: b.name, Reason: "complex value in a real expression"}
		}
		r[b.name] = v
	}
	for _, tok := range toks {
		b, err := parseBinding(tok)
		if err != nil {
			return nil, err
		}
		v, ok := zero.Lit(b.re, b.im)
		if !ok {
			return nil, &BindingError{Token: tok, Reason: "complex value in a real expression"}
		}
		r[b.name] = v
	}
	return r, nil
}
