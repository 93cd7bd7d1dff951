package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/domain"
	"github.com/kvarley/taskdeck/internal/errors"
)

// AddTasksCommand adds the tasks command to the root command.
func AddTasksCommand(root *cobra.Command) {
	root.AddCommand(newTasksCmd())
}

// AddCurrentCommand adds the current command to the root command.
func AddCurrentCommand(root *cobra.Command) {
	root.AddCommand(newCurrentCmd())
}

// AddNextCommand adds the next command to the root command.
func AddNextCommand(root *cobra.Command) {
	root.AddCommand(newNextCmd())
}

// newTasksCmd creates the tasks command.
func newTasksCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks assigned to a user in insertion order",
		Long: `List every task assigned to a user, in the order the tasks were created.

Examples:
  taskdeck tasks --user 101
  taskdeck tasks --user 101 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasks(cmd.Context(), os.Stdout, userID, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().IntVarP(&userID, "user", "u", 0, "worker user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newCurrentCmd creates the current command.
func newCurrentCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the user's current active task",
		Long: `Show the first assigned or in_progress task for a user, scanning the
task list in insertion order.

Examples:
  taskdeck current --user 101
  taskdeck current --user 101 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runActiveTask(cmd.Context(), os.Stdout, userID, 0, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().IntVarP(&userID, "user", "u", 0, "worker user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newNextCmd creates the next command.
func newNextCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the user's next queued task",
		Long: `Show the second assigned or in_progress task for a user. This is a
positional lookup over the active queue, not a prediction of what becomes
active after the current task completes.

Examples:
  taskdeck next --user 101
  taskdeck next --user 101 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runActiveTask(cmd.Context(), os.Stdout, userID, 1, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().IntVarP(&userID, "user", "u", 0, "worker user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// runTasks executes the tasks command.
func runTasks(ctx context.Context, w io.Writer, userID int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	tasks, err := svc.TasksForUser(ctx, userID)
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, tasks)
	}
	if len(tasks) == 0 {
		fmt.Fprintf(w, "No tasks assigned to user %d\n", userID)
		return nil
	}
	printTaskTable(w, tasks)
	return nil
}

// runActiveTask executes the current (n=0) and next (n=1) commands.
func runActiveTask(ctx context.Context, w io.Writer, userID, n int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	var active domain.Task
	if n == 0 {
		active, err = svc.CurrentTask(ctx, userID)
	} else {
		active, err = svc.NextTask(ctx, userID)
	}
	if err != nil {
		if stderrors.Is(err, errors.ErrNoCurrentTask) {
			if format == OutputJSON {
				return printJSON(w, nil)
			}
			fmt.Fprintf(w, "No active task for user %d\n", userID)
			return nil
		}
		return err
	}

	if format == OutputJSON {
		return printJSON(w, active)
	}
	printTaskDetail(w, active)
	return nil
}
