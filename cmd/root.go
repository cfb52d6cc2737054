/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vipcxj/natsort/internal/config"
	"github.com/vipcxj/natsort/internal/ctxlog"
	"github.com/vipcxj/natsort/internal/entries"
	"github.com/vipcxj/natsort/internal/filter"
	"github.com/vipcxj/natsort/internal/natsort"
	"github.com/vipcxj/natsort/internal/numrange"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

const shortDesc = "Sort entries in natural order, optionally filtering them by the numbers they contain"

const longDesc = `natsort sorts the entries given as arguments, or read from stdin when there
are none, so that numbers inside them compare by value: "a2" comes before
"a10". Entries are printed one per line.

Before sorting, entries can be kept or dropped by the numbers they contain:
  --filter LOW HIGH          keep entries with a number in [LOW, HIGH]
  --reverse-filter LOW HIGH  drop entries with a number in [LOW, HIGH]
  --exclude VALUE            drop entries containing exactly VALUE
All three can be repeated. Numbers are found the same way they are found
for sorting, so --number-type, --sign and --noexp apply to filtering too.

Settings other than filters can also come from NATSORT_* environment
variables (NATSORT_NUMBER_TYPE, NATSORT_PATHS, ...) or a config file.`

type rootOptions struct {
	filters        rangeList
	reverseFilters rangeList
	excludes       []float64
}

// NewRootCommand builds the natsort command reading from stdin and writing to
// stdout and stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{}
	c := &cobra.Command{
		Use:           "natsort [flags] [entries...]",
		Short:         shortDesc,
		Long:          longDesc,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          o.run,
	}
	c.SetIn(stdin)
	c.SetOut(stdout)
	c.SetErr(stderr)

	fs := c.Flags()
	fs.VarP(&o.filters, "filter", "f", "keep entries with a number in the closed range [LOW, HIGH], repeatable")
	fs.VarP(&o.reverseFilters, "reverse-filter", "F", "drop entries with a number in the closed range [LOW, HIGH], repeatable")
	fs.Float64SliceVarP(&o.excludes, "exclude", "e", nil, "drop entries containing exactly this number, repeatable")
	config.RegisterFlags(fs)

	c.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	return c
}

func (o *rootOptions) run(c *cobra.Command, args []string) error {
	settings, err := config.Load(c.Flags())
	if err != nil {
		return usageError(err)
	}
	logger, err := ctxlog.New(settings.LogLevel, settings.LogFormat, c.ErrOrStderr())
	if err != nil {
		return usageError(err)
	}
	opts, err := settings.Options()
	if err != nil {
		return usageError(err)
	}
	ctx := ctxlog.WithLogger(c.Context(), logger)
	logger.Debug("resolved options", "options", opts.String(), "pattern", opts.Pattern().String())

	include, err := numrange.ValidateFilters("--filter", o.filters.pairs)
	if err != nil {
		return err
	}
	exclude, err := numrange.ValidateFilters("--reverse-filter", o.reverseFilters.pairs)
	if err != nil {
		return err
	}

	list, err := entries.Read(ctx, args, settings.ZeroTerminated, c.InOrStdin())
	if err != nil {
		return err
	}

	p := filter.Pipeline[float64]{
		Include: include,
		Exclude: exclude,
		Values:  filter.NewValueSet(o.excludes...),
		Pattern: opts.Pattern(),
		Convert: filter.ParseFloat,
		Trace: func(stage string, kept int) {
			logger.Debug("filter stage done", "stage", stage, "kept", kept)
		},
	}
	if list, err = p.Apply(list); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}

	sorted := natsort.Sorted(list, opts)
	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}
	if err := entries.Write(c.OutOrStdout(), sorted); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	return nil
}

// Run executes natsort with args and returns the process exit code. Errors
// are reported as a single line on stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	folded, err := foldPairFlags(args)
	if err != nil {
		err = usageError(err)
	} else {
		c := NewRootCommand(stdin, stdout, stderr)
		c.SetArgs(folded)
		err = c.ExecuteContext(ctx)
	}
	code, msg := exitCodeFor(err)
	if msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	return code
}

// Execute runs natsort on the process arguments and standard streams. An
// interrupt or SIGTERM before the output is written ends the run with exit
// code 1 and nothing printed.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
