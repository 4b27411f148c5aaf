package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zephyrtronium/symdiff"
	"github.com/zephyrtronium/symdiff/internal/log"
	"github.com/zephyrtronium/symdiff/internal/metrics"
)

type evalCmd struct {
	Expr     string   `arg:"" help:"Expression to evaluate."`
	Bindings []string `arg:"" help:"Variable bindings, name=value or name=(re,im)." optional:""`
	Echo     bool     `help:"Print the parsed expression before its value."`
	Fmt      string   `default:"%v" help:"Format verb for the result."`
}

// Run executes the eval command.
func (c *evalCmd) Run(ctx context.Context, s *session) error {
	if s.useComplex(c.Expr, c.Bindings) {
		return evaluate[symdiff.Complex](ctx, s, c)
	}
	return evaluate[symdiff.Real](ctx, s, c)
}

func evaluate[T symdiff.Scalar[T]](ctx context.Context, s *session, c *evalCmd) error {
	vars, err := bindings[T](s.file, c.Bindings)
	if err != nil {
		return err
	}
	e, err := parse[T](ctx, s, c.Expr)
	if err != nil {
		return err
	}
	v, err := eval(ctx, s, e, vars)
	if err != nil {
		return err
	}
	if c.Echo {
		fmt.Fprintf(s.out, "%v : ", e)
	}
	fmt.Fprintf(s.out, c.Fmt+"\n", v)
	return nil
}

type diffCmd struct {
	Expr     string   `arg:"" help:"Expression to differentiate."`
	Bindings []string `arg:"" help:"Variable bindings at which to evaluate the derivative." optional:""`
	By       string   `help:"Variable of differentiation." required:""`
	Order    int      `default:"1" help:"Number of times to differentiate."`
}

// Run executes the diff command.
func (c *diffCmd) Run(ctx context.Context, s *session) error {
	if c.Order < 1 {
		return fmt.Errorf("order must be at least 1, not %d", c.Order)
	}
	if s.useComplex(c.Expr, c.Bindings) {
		return differentiate[symdiff.Complex](ctx, s, c)
	}
	return differentiate[symdiff.Real](ctx, s, c)
}

func differentiate[T symdiff.Scalar[T]](ctx context.Context, s *session, c *diffCmd) error {
	vars, err := bindings[T](s.file, c.Bindings)
	if err != nil {
		return err
	}
	e, err := parse[T](ctx, s, c.Expr)
	if err != nil {
		return err
	}
	for i := 0; i < c.Order; i++ {
		start := time.Now()
		e = e.Diff(c.By)
		size := e.Size()
		s.rec.RecordOp(ctx, metrics.OpDiff, time.Since(start), size, nil)
		log.DebugContext(ctx, "differentiated",
			slog.String("by", c.By),
			slog.Int("order", i+1),
			slog.Int("size", size),
		)
	}
	fmt.Fprintln(s.out, e)
	if len(c.Bindings) == 0 && len(s.file) == 0 {
		return nil
	}
	v, err := eval(ctx, s, e, vars)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

type subCmd struct {
	Expr     string   `arg:"" help:"Expression to substitute into."`
	Bindings []string `arg:"" help:"Variable bindings to substitute." optional:""`
}

// Run executes the sub command.
func (c *subCmd) Run(ctx context.Context, s *session) error {
	if s.useComplex(c.Expr, c.Bindings) {
		return substitute[symdiff.Complex](ctx, s, c)
	}
	return substitute[symdiff.Real](ctx, s, c)
}

func substitute[T symdiff.Scalar[T]](ctx context.Context, s *session, c *subCmd) error {
	vars, err := bindings[T](s.file, c.Bindings)
	if err != nil {
		return err
	}
	e, err := parse[T](ctx, s, c.Expr)
	if err != nil {
		return err
	}
	start := time.Now()
	r := e.Substitute(vars)
	s.rec.RecordOp(ctx, metrics.OpSub, time.Since(start), r.Size(), nil)
	fmt.Fprintln(s.out, r)
	return nil
}

// useComplex decides the domain of a command: complex when requested, when
// the first binding token is a pair, when a vars file holds a pair, or when
// the expression has a literal only the complex numbers can represent.
func (s *session) useComplex(src string, toks []string) bool {
	if s.complex {
		return true
	}
	if len(toks) > 0 && isPairToken(toks[0]) {
		return true
	}
	for _, b := range s.file {
		if b.pair {
			return true
		}
	}
	_, err := symdiff.ParseReal(src)
	var de *symdiff.DomainError
	return errors.As(err, &de)
}

// parse parses src in the domain T, recording the result.
func parse[T symdiff.Scalar[T]](ctx context.Context, s *session, src string) (*symdiff.Expr[T], error) {
	start := time.Now()
	e, err := symdiff.Parse[T](src)
	size := 0
	if err == nil {
		size = e.Size()
	}
	s.rec.RecordOp(ctx, metrics.OpParse, time.Since(start), size, err)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", src, err)
	}
	log.DebugContext(ctx, "parsed",
		slog.String("expr", e.String()),
		slog.Int("size", size),
		slog.Int("depth", e.Depth()),
	)
	return e, nil
}

// eval evaluates e, recording the result.
func eval[T symdiff.Scalar[T]](ctx context.Context, s *session, e *symdiff.Expr[T], vars map[string]T) (T, error) {
	start := time.Now()
	v, err := e.Eval(vars)
	s.rec.RecordOp(ctx, metrics.OpEval, time.Since(start), e.Size(), err)
	if err != nil {
		return v, fmt.Errorf("evaluating %v: %w", e, err)
	}
	return v, nil
}
