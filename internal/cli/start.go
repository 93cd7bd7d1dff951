package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// AddStartCommand adds the start command to the root command.
func AddStartCommand(root *cobra.Command) {
	root.AddCommand(newStartCmd())
}

// newStartCmd creates the start command.
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Move an assigned task to in_progress",
		Long: `Start working on an assigned task. The task must currently be in the
assigned status; starting it again or starting a completed task is an error.

Examples:
  taskdeck start 3
  taskdeck start 3 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task id", args[0])
			if err != nil {
				return err
			}
			return runStart(cmd.Context(), os.Stdout, taskID, cmd.Flag("output").Value.String())
		},
	}
}

// runStart executes the start command.
func runStart(ctx context.Context, w io.Writer, taskID int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.StartTask(ctx, taskID); err != nil {
		return err
	}

	started, err := svc.Get(ctx, taskID)
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, started)
	}
	fmt.Fprintf(w, "Task %d is now %s\n", started.ID, started.Status)
	return nil
}
