package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// AddSubmitCommand adds the submit command to the root command.
func AddSubmitCommand(root *cobra.Command) {
	root.AddCommand(newSubmitCmd())
}

// newSubmitCmd creates the submit command.
func newSubmitCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "submit <task-id>",
		Short: "Make the final submission and complete the task",
		Long: `Record the final submission for a task and move it to completed. Every
subtask, including the clicker subtask if present, must already be completed.

Examples:
  taskdeck submit 1
  taskdeck submit 1 --notes "batch done, two bad pages flagged"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task id", args[0])
			if err != nil {
				return err
			}
			return runSubmit(cmd.Context(), os.Stdout, taskID, notes, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "final submission notes")

	return cmd
}

// runSubmit executes the submit command.
func runSubmit(ctx context.Context, w io.Writer, taskID int, notes, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.CompleteFinalSubmission(ctx, taskID, notes); err != nil {
		return err
	}

	completed, err := svc.Get(ctx, taskID)
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, completed)
	}
	fmt.Fprintf(w, "Task %d completed: %d views (%d good), %d clicks (%d good)\n",
		completed.ID, completed.Metrics.TotalViews, completed.Metrics.GoodViews,
		completed.Metrics.TotalClicks, completed.Metrics.GoodClicks)
	return nil
}
