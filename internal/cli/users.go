package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/config"
	"github.com/kvarley/taskdeck/internal/directory"
)

// AddUsersCommand adds the users command to the root command.
func AddUsersCommand(root *cobra.Command) {
	root.AddCommand(newUsersCmd())
}

// newUsersCmd creates the users command.
func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users from the directory file",
		Long: `List the users declared in users.yaml under the taskdeck home directory.
An absent directory file is not an error; the list is simply empty.

Examples:
  taskdeck users
  taskdeck users -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUsers(cmd.Context(), os.Stdout, cmd.Flag("output").Value.String())
		},
	}
}

// runUsers executes the users command.
func runUsers(ctx context.Context, w io.Writer, format string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	home, err := config.ResolveHome(cfg)
	if err != nil {
		return err
	}

	dir, err := directory.Load(ctx, home)
	if err != nil {
		return err
	}

	users := dir.List()
	if format == OutputJSON {
		return printJSON(w, users)
	}
	if len(users) == 0 {
		fmt.Fprintln(w, "No users in directory")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tWORKER TYPE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.WorkerType)
	}
	return tw.Flush()
}
