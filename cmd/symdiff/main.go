// Command symdiff evaluates, partially evaluates, and differentiates infix
// expressions over the real or complex numbers.
//
// Usage:
//
//	symdiff eval 'x^2 + y' x=3, y=1
//	symdiff eval 'ln(x)' 'x=(0,1)'
//	symdiff diff 'sin(x)*x' --by x
//	symdiff sub 'x*y + 1' y=2
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/zephyrtronium/symdiff/internal/log"
)

func main() {
	err := Run(context.Background(), os.Exit, os.Stdout, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
