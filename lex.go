package symdiff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// operators contains the characters the parser splits on, loosest first.
// Each string is one precedence level.
var operators = [...]string{"+-", "*/", "^"}

// compact removes all whitespace from src.
func compact(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// checkbrackets verifies that every parenthesis in src is matched.
func checkbrackets(src string) error {
	var open []int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: col(src, i), Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: col(src, open[len(open)-1]), Left: "("}
	}
	return nil
}

// col converts a byte offset in src to a 1-based rune column.
func col(src string, i int) int {
	return utf8.RuneCountInString(src[:i]) + 1
}

// rsplit finds the rightmost character of ops in src[lo:hi] which is outside
// all parentheses. The result is -1 if there is none. src[lo:hi] must have
// balanced parentheses.
func rsplit(src string, lo, hi int, ops string) int {
	depth := 0
	for i := hi - 1; i >= lo; i-- {
		switch c := src[i]; c {
		case ')':
			depth++
		case '(':
			depth--
		default:
			if depth == 0 && strings.IndexByte(ops, c) >= 0 {
				return i
			}
		}
	}
	return -1
}

// match returns the index of the parenthesis closing the one at src[i].
func match(src string, i int) int {
	depth := 0
	for ; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isdigits reports whether s consists only of ASCII decimal digits. The empty
// string counts.
func isdigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

// isident reports whether s is a variable name: a letter or underscore
// followed by letters, digits, underscores, and dots.
func isident(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && (r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
