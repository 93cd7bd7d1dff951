package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/domain"
)

// AddSubtaskCommand adds the subtask command group to the root command.
func AddSubtaskCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage subtasks on a viewer task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSubtaskCompleteCmd())

	root.AddCommand(cmd)
}

// newSubtaskCompleteCmd creates the subtask complete command.
func newSubtaskCompleteCmd() *cobra.Command {
	var (
		notes      string
		screenshot string
	)

	cmd := &cobra.Command{
		Use:   "complete <task-id> <subtask-id>",
		Short: "Submit a subtask after all its links are reviewed",
		Long: `Complete a subtask by recording its submission. Every link under the
subtask must already be reviewed; otherwise the command fails and nothing
changes.

Examples:
  taskdeck subtask complete 1 2 --notes "all pages verified"
  taskdeck subtask complete 1 2 --screenshot proof.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task id", args[0])
			if err != nil {
				return err
			}
			subtaskID, err := parseID("subtask id", args[1])
			if err != nil {
				return err
			}
			return runSubtaskComplete(cmd.Context(), os.Stdout, taskID, subtaskID, notes, screenshot, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "submission notes")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "screenshot reference")

	return cmd
}

// runSubtaskComplete executes the subtask complete command.
func runSubtaskComplete(ctx context.Context, w io.Writer, taskID, subtaskID int, notes, screenshot, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.CompleteSubtask(ctx, taskID, subtaskID, notes, screenshot); err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id":    taskID,
			"subtask_id": subtaskID,
			"status":     string(domain.SubtaskStatusCompleted),
		})
	}
	fmt.Fprintf(w, "Subtask %d on task %d completed\n", subtaskID, taskID)
	return nil
}
