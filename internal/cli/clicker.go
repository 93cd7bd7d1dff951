package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/domain"
)

// AddClickerCommand adds the clicker command group to the root command.
func AddClickerCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clicker",
		Short: "Manage the clicker subtask on a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newClickerCompleteCmd())

	root.AddCommand(cmd)
}

// newClickerCompleteCmd creates the clicker complete command.
func newClickerCompleteCmd() *cobra.Command {
	var (
		quality    string
		notes      string
		screenshot string
	)

	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Complete the clicker subtask with a quality rating",
		Long: `Complete the clicker subtask on a task, recording the click outcome and
incrementing the task's click counters. Fails when the task has no clicker
subtask.

Examples:
  taskdeck clicker complete 2 --quality good
  taskdeck clicker complete 2 --quality bad --notes "target page 404"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task id", args[0])
			if err != nil {
				return err
			}
			q, err := parseQuality(quality)
			if err != nil {
				return err
			}
			return runClickerComplete(cmd.Context(), os.Stdout, taskID, notes, q, screenshot, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().StringVar(&quality, "quality", "", "click quality (good|bad)")
	cmd.Flags().StringVar(&notes, "notes", "", "submission notes")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "screenshot reference")
	_ = cmd.MarkFlagRequired("quality")

	return cmd
}

// runClickerComplete executes the clicker complete command.
func runClickerComplete(ctx context.Context, w io.Writer, taskID int, notes string, quality domain.Quality, screenshot, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.CompleteClickerTask(ctx, taskID, notes, quality, screenshot); err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id": taskID,
			"status":  string(domain.SubtaskStatusCompleted),
			"quality": string(quality),
		})
	}
	fmt.Fprintf(w, "Clicker subtask on task %d completed (%s)\n", taskID, quality)
	return nil
}
