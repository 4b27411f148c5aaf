package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/zephyrtronium/symdiff/internal/log"
	"github.com/zephyrtronium/symdiff/internal/metrics"
)

// CLI is the top-level command-line interface for symdiff.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Vars    string `help:"YAML file of variable bindings." placeholder:"FILE" type:"existingfile"`
	Complex bool   `help:"Use the complex domain."                             short:"c"`
	Stats   bool   `help:"Log tree sizes and latencies when done."`

	Eval evalCmd `cmd:"" help:"Evaluate an expression."`
	Diff diffCmd `cmd:"" help:"Differentiate an expression."`
	Sub  subCmd  `cmd:"" help:"Substitute values into an expression."`
}

// session carries what every command needs beyond its own arguments.
type session struct {
	out     io.Writer
	rec     metrics.Recorder
	file    []binding
	complex bool
}

// Run executes the symdiff CLI with the given arguments, writing results to
// out. The exit function is called by kong for help and usage errors.
func Run(ctx context.Context, exit func(code int), out io.Writer, args ...string) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong reports anything.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name("symdiff"),
		kong.Description("Symbolic evaluation and differentiation of infix expressions."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(out, out),
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Pprof.group()}),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		cli.Pprof.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	defer cli.Pprof.start(ctx)()

	s := &session{out: out, rec: metrics.Noop{}, complex: cli.Complex}

	if cli.Vars != "" {
		s.file, err = loadBindings(cli.Vars)
		if err != nil {
			return fmt.Errorf("loading %s: %w", cli.Vars, err)
		}

		log.DebugContext(ctx, "bindings loaded",
			slog.String("file", cli.Vars),
			slog.Int("count", len(s.file)),
		)
	}

	if cli.Stats {
		c, rec, err := metrics.NewCollector()
		if err != nil {
			return fmt.Errorf("starting metrics: %w", err)
		}
		defer finish(ctx, c)

		s.rec = rec
	}

	return ktx.Run(s)
}

// finish reports the statistics gathered by c and shuts it down.
func finish(ctx context.Context, c *metrics.Collector) {
	report(ctx, c)
	if err := c.Shutdown(ctx); err != nil {
		log.ErrorContext(ctx, "stopping stats", slog.Any("error", err))
	}
}

// report logs the statistics gathered by c.
func report(ctx context.Context, c *metrics.Collector) {
	attrs, err := c.Summary(ctx)
	if err != nil {
		log.ErrorContext(ctx, "collecting stats", slog.Any("error", err))
		return
	}

	log.InfoContext(ctx, "stats", attrs...)
}
