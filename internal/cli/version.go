package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// AddVersionCommand adds the version command to the root command.
func AddVersionCommand(root *cobra.Command, info BuildInfo) {
	root.AddCommand(newVersionCmd(info))
}

// newVersionCmd creates the version command.
func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(os.Stdout, info, cmd.Flag("output").Value.String())
		},
	}
}

// runVersion executes the version command.
func runVersion(w io.Writer, info BuildInfo, format string) error {
	if format == OutputJSON {
		return printJSON(w, map[string]string{
			"version": versionOrDefault(info.Version, "dev"),
			"commit":  versionOrDefault(info.Commit, "none"),
			"date":    versionOrDefault(info.Date, "unknown"),
		})
	}
	fmt.Fprintf(w, "taskdeck %s\n", formatVersion(info))
	return nil
}

func versionOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
