package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// AddReloadCommand adds the reload command to the root command.
func AddReloadCommand(root *cobra.Command) {
	root.AddCommand(newReloadCmd())
}

// newReloadCmd creates the reload command.
func newReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload <task-id> <subtask-id> <link-id>",
		Short: "Regenerate the masked display URL for a link",
		Long: `Issue a fresh masked display URL for a link that has not been completed
yet. The real target URL is unchanged; only the opaque display URL rotates.

Examples:
  taskdeck reload 1 1 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, subtaskID, linkID, err := linkArgs(args)
			if err != nil {
				return err
			}
			return runReload(cmd.Context(), os.Stdout, taskID, subtaskID, linkID, cmd.Flag("output").Value.String())
		},
	}
}

// runReload executes the reload command.
func runReload(ctx context.Context, w io.Writer, taskID, subtaskID, linkID int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	fresh, err := svc.ReloadLink(ctx, taskID, subtaskID, linkID)
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id":     taskID,
			"subtask_id":  subtaskID,
			"link_id":     linkID,
			"display_url": fresh,
		})
	}
	fmt.Fprintf(w, "New display URL: %s\n", fresh)
	return nil
}
