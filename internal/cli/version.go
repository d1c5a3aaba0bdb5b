package cli

import (
	"fmt"

	"github.com/gcstr/linefilter/internal/cli/buildinfo"
	"github.com/spf13/cobra"
)

// Version wrapper for tests and other packages referencing cli.Version().
func Version() string { return buildinfo.Version() }

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			i := buildinfo.Read()
			built := i.Date
			if i.BuiltBy != "" && built != "<unknown>" {
				built += " (" + i.BuiltBy + ")"
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "linefilter\n")
			_, _ = fmt.Fprintf(w, " Version:\t%s\n", i.Version)
			_, _ = fmt.Fprintf(w, " Go version:\t%s\n", i.GoVersion)
			_, _ = fmt.Fprintf(w, " Git commit:\t%s\n", i.Commit)
			_, _ = fmt.Fprintf(w, " Built:\t\t%s\n", built)
			_, _ = fmt.Fprintf(w, " OS/Arch:\t%s/%s\n", i.OS, i.Arch)
			return nil
		},
	}
}
