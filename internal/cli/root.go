package cli

import (
	"context"
	"io"
	"os"

	"github.com/gcstr/linefilter/internal/apperr"
	"github.com/gcstr/linefilter/internal/cli/buildinfo"
	"github.com/gcstr/linefilter/internal/logger"
	"github.com/gcstr/linefilter/internal/pipeline"
	"github.com/gcstr/linefilter/internal/sample"
	"github.com/gcstr/linefilter/internal/ui"
	"github.com/spf13/cobra"
)

// verbose enables debug logs and full error chains on stderr.
var verbose bool

// Execute runs the root command with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printUserFriendly(stderr, err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case apperr.IsKind(err, apperr.InvalidInput):
		return 2
	case apperr.IsKind(err, apperr.External):
		return 70
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "linefilter",
		Short:         "Print the non-empty, trimmed lines of the embedded text block",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logs and verbose error output on stderr")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &apperr.E{Op: "cli.flags", Kind: apperr.InvalidInput, Err: err}
	})

	cmd.AddCommand(newVersionCmd())

	cmd.Version = buildinfo.VersionSimple()
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperr.New("cli."+cmd.Name(), apperr.InvalidInput, "unexpected arguments %q", args)
	}
	return nil
}

func runFilter(cmd *cobra.Command) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	l := logger.New(logger.Options{Out: cmd.ErrOrStderr(), Level: level}).With("command", "linefilter")
	ctx := logger.WithContext(cmd.Context(), l)

	lines := pipeline.RunContext(ctx, sample.Text())
	st := logger.StartStep(l, "print_lines", "stdout", "count", len(lines))
	if err := pipeline.Print(cmd.OutOrStdout(), lines); err != nil {
		return st.Fail(err)
	}
	st.OK(false)
	return nil
}

func printUserFriendly(w io.Writer, err error) {
	ui.Errorf(w, "%s", apperr.Message(err))
	if verbose {
		ui.Detailf(w, "%v", err)
	}
}
