package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/domain"
	"github.com/kvarley/taskdeck/internal/errors"
	"github.com/kvarley/taskdeck/internal/task"
)

// AddReviewCommand adds the review command group to the root command.
func AddReviewCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage link reviews on a viewer task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newReviewStartCmd())
	cmd.AddCommand(newReviewCompleteCmd())
	cmd.AddCommand(newReviewElapsedCmd())

	root.AddCommand(cmd)
}

// linkArgs parses the <task-id> <subtask-id> <link-id> positional triple.
func linkArgs(args []string) (taskID, subtaskID, linkID int, err error) {
	if taskID, err = parseID("task id", args[0]); err != nil {
		return 0, 0, 0, err
	}
	if subtaskID, err = parseID("subtask id", args[1]); err != nil {
		return 0, 0, 0, err
	}
	if linkID, err = parseID("link id", args[2]); err != nil {
		return 0, 0, 0, err
	}
	return taskID, subtaskID, linkID, nil
}

// newReviewStartCmd creates the review start command.
func newReviewStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id> <subtask-id> <link-id>",
		Short: "Start reviewing a link and its timer",
		Long: `Open a link for review. The link moves to in_progress, its parent subtask
leaves pending, and the review timer starts. Starting another link resets the
timer; only one review is timed at a time.

Examples:
  taskdeck review start 1 1 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, subtaskID, linkID, err := linkArgs(args)
			if err != nil {
				return err
			}
			return runReviewStart(cmd.Context(), os.Stdout, taskID, subtaskID, linkID, cmd.Flag("output").Value.String())
		},
	}
}

// newReviewCompleteCmd creates the review complete command.
func newReviewCompleteCmd() *cobra.Command {
	var (
		quality string
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "complete <task-id> <subtask-id> <link-id>",
		Short: "Complete a link review with a quality rating",
		Long: `Complete a link review. The link is marked completed, its quality and
notes are recorded, and the task's view counters are incremented. A link can
only be completed once.

Examples:
  taskdeck review complete 1 1 2 --quality good
  taskdeck review complete 1 1 2 --quality bad --notes "page failed to load"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, subtaskID, linkID, err := linkArgs(args)
			if err != nil {
				return err
			}
			q, err := parseQuality(quality)
			if err != nil {
				return err
			}
			return runReviewComplete(cmd.Context(), os.Stdout, taskID, subtaskID, linkID, notes, q, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().StringVar(&quality, "quality", "", "review quality (good|bad)")
	cmd.Flags().StringVar(&notes, "notes", "", "review notes")
	_ = cmd.MarkFlagRequired("quality")

	return cmd
}

// newReviewElapsedCmd creates the review elapsed command.
func newReviewElapsedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elapsed <task-id> <subtask-id> <link-id>",
		Short: "Show time spent on the active link review",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, subtaskID, linkID, err := linkArgs(args)
			if err != nil {
				return err
			}
			return runReviewElapsed(cmd.Context(), os.Stdout, taskID, subtaskID, linkID, cmd.Flag("output").Value.String())
		},
	}
}

// elapsedFromSlot derives elapsed review time from persisted task state.
func elapsedFromSlot(ctx context.Context, svc *task.Service, taskID, subtaskID, linkID int) (time.Duration, error) {
	t, err := svc.Get(ctx, taskID)
	if err != nil {
		return 0, err
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID != subtaskID {
			continue
		}
		for j := range t.Subtasks[i].Links {
			l := &t.Subtasks[i].Links[j]
			if l.ID != linkID {
				continue
			}
			if l.Status != domain.LinkStatusInProgress {
				return 0, errors.ErrReviewNotStarted
			}
			return time.Since(t.UpdatedAt), nil
		}
	}
	return 0, errors.ErrLinkNotFound
}

func parseQuality(s string) (domain.Quality, error) {
	switch domain.Quality(s) {
	case domain.QualityGood, domain.QualityBad:
		return domain.Quality(s), nil
	default:
		return "", fmt.Errorf("%w: quality %q must be good or bad", errors.ErrInvalidArgument, s)
	}
}

// runReviewStart executes the review start command.
func runReviewStart(ctx context.Context, w io.Writer, taskID, subtaskID, linkID int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.StartLinkReview(ctx, taskID, subtaskID, linkID); err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id":    taskID,
			"subtask_id": subtaskID,
			"link_id":    linkID,
			"status":     string(domain.LinkStatusInProgress),
		})
	}
	fmt.Fprintf(w, "Review started on task %d subtask %d link %d\n", taskID, subtaskID, linkID)
	return nil
}

// runReviewComplete executes the review complete command.
func runReviewComplete(ctx context.Context, w io.Writer, taskID, subtaskID, linkID int, notes string, quality domain.Quality, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	if err := svc.CompleteLinkReview(ctx, taskID, subtaskID, linkID, notes, quality); err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id":    taskID,
			"subtask_id": subtaskID,
			"link_id":    linkID,
			"status":     string(domain.LinkStatusCompleted),
			"quality":    string(quality),
		})
	}
	fmt.Fprintf(w, "Review completed on task %d subtask %d link %d (%s)\n", taskID, subtaskID, linkID, quality)
	return nil
}

// runReviewElapsed executes the review elapsed command.
func runReviewElapsed(ctx context.Context, w io.Writer, taskID, subtaskID, linkID int, format string) error {
	svc, _, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	elapsed, err := svc.Elapsed(taskID, subtaskID, linkID)
	if stderrors.Is(err, errors.ErrReviewNotStarted) {
		// The in-memory timer does not survive across invocations. Fall back
		// to the slot: a link that is mid-review was last touched when its
		// review started, so the task's updated_at marks the start.
		elapsed, err = elapsedFromSlot(ctx, svc, taskID, subtaskID, linkID)
	}
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{
			"task_id":         taskID,
			"subtask_id":      subtaskID,
			"link_id":         linkID,
			"elapsed_seconds": int64(elapsed / time.Second),
		})
	}
	fmt.Fprintf(w, "Elapsed: %s\n", elapsed.Round(time.Second))
	return nil
}
