// Command segtree builds a segment tree from a line of integers read from
// stdin.
//
// By default it runs a demonstration: it prints the nodes and elements of the
// tree, sets element 2 to 42 and prints all prefix aggregates. With flag
// --interactive it starts a command session instead.
//
//	echo "3 1 4 1 5 9 2 6" | segtree --op sum
//	segtree -i --op min
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/segtree/cli"
	"github.com/spf13/cobra"
)

type options struct {
	op          string
	trace       string
	interactive bool
	noColor     bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "segtree",
		Short:         "Build and query a segment tree over a sequence of integers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.op, "op", "sum", "aggregate operator: sum, min or max")
	flags.StringVar(&opts.trace, "trace", "error", "trace level: debug, info or error")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "start an interactive session")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(opts *options) error {
	level, err := traceLevel(opts.trace)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	op, err := cli.ParseOp(opts.op)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(os.Stdin)
	if opts.interactive {
		session := cli.NewSession(scanner, os.Stdout, op)
		session.SetColor(!opts.noColor)
		return session.Start()
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%w: no input", cli.ErrMalformedInput)
	}
	return cli.Demo(os.Stdout, scanner.Text(), op, cli.TerminalWidth())
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}
