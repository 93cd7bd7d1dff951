package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/config"
	"github.com/kvarley/taskdeck/internal/directory"
	"github.com/kvarley/taskdeck/internal/domain"
	"github.com/kvarley/taskdeck/internal/errors"
	"github.com/kvarley/taskdeck/internal/task"
)

// AddCreateCommand adds the create command to the root command.
func AddCreateCommand(root *cobra.Command) {
	root.AddCommand(newCreateCmd())
}

// createFile is the JSON shape accepted by --file. It mirrors
// task.CreateRequest but with wire tags, so a manager can script task
// creation without driving every flag.
type createFile struct {
	Title               string                  `json:"title"`
	Description         string                  `json:"description"`
	Type                string                  `json:"type"`
	AssignedTo          int                     `json:"assigned_to"`
	AssignedBy          int                     `json:"assigned_by"`
	Priority            string                  `json:"priority"`
	ExpiryDays          int                     `json:"expiry_days"`
	SessionInstructions domain.InstructionBlock `json:"session_instructions"`
	TaskInstructions    domain.InstructionBlock `json:"task_instructions"`
	Subtasks            []subtaskFile           `json:"subtasks"`
	Clicker             *subtaskFile            `json:"clicker_task"`
}

type subtaskFile struct {
	Title string     `json:"title"`
	Links []linkFile `json:"links"`
}

type linkFile struct {
	RealURL      string `json:"real_url"`
	Proxy        string `json:"proxy"`
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	TimeRequired int    `json:"time_required"`
}

// newCreateCmd creates the create command.
func newCreateCmd() *cobra.Command {
	var (
		file       string
		title      string
		desc       string
		taskType   string
		assignedTo int
		assignedBy int
		priority   string
		expiryDays int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task, either from flags (a bare task without subtasks) or
from a JSON definition file that includes subtasks, links, and a clicker task.

Examples:
  taskdeck create --title "Review batch 7" --type viewer --assigned-to 101 --assigned-by 7
  taskdeck create --file task.json
  taskdeck create --file task.json -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd.Context(), os.Stdout, createInputs{
				file:       file,
				title:      title,
				desc:       desc,
				taskType:   taskType,
				assignedTo: assignedTo,
				assignedBy: assignedBy,
				priority:   priority,
				expiryDays: expiryDays,
			}, cmd.Flag("output").Value.String())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON task definition file")
	cmd.Flags().StringVarP(&title, "title", "t", "", "task title")
	cmd.Flags().StringVar(&desc, "description", "", "task description")
	cmd.Flags().StringVar(&taskType, "type", string(domain.TaskTypeViewer), "task type (viewer|clicker)")
	cmd.Flags().IntVar(&assignedTo, "assigned-to", 0, "worker user id")
	cmd.Flags().IntVar(&assignedBy, "assigned-by", 0, "assigning user id")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "priority (low|medium|high)")
	cmd.Flags().IntVar(&expiryDays, "expiry-days", 0, "days until the task expires (0 uses the configured default)")

	return cmd
}

// createInputs carries the raw create flags until config is loaded, so
// configured defaults can fill in unset values.
type createInputs struct {
	file       string
	title      string
	desc       string
	taskType   string
	assignedTo int
	assignedBy int
	priority   string
	expiryDays int
}

// buildCreateRequest assembles a CreateRequest from either the definition
// file or the scalar flags. The file wins when both are given.
func buildCreateRequest(in createInputs, cfg *config.Config) (task.CreateRequest, error) {
	if in.file != "" {
		return readCreateFile(in.file, cfg)
	}

	title, desc, taskType, priority := in.title, in.desc, in.taskType, in.priority
	assignedTo, assignedBy, expiryDays := in.assignedTo, in.assignedBy, in.expiryDays

	tt, err := parseTaskType(taskType)
	if err != nil {
		return task.CreateRequest{}, err
	}
	pr, err := parsePriority(priority)
	if err != nil {
		return task.CreateRequest{}, err
	}
	if expiryDays <= 0 {
		expiryDays = cfg.Review.DefaultExpiryDays
	}

	return task.CreateRequest{
		Title:       title,
		Description: desc,
		Type:        tt,
		AssignedTo:  assignedTo,
		AssignedBy:  assignedBy,
		Priority:    pr,
		ExpiryDate:  time.Now().UTC().AddDate(0, 0, expiryDays),
	}, nil
}

// readCreateFile reads and converts a JSON task definition.
func readCreateFile(path string, cfg *config.Config) (task.CreateRequest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the operator's own flag
	if err != nil {
		return task.CreateRequest{}, fmt.Errorf("%w: cannot read %q: %w", errors.ErrInvalidArgument, path, err)
	}

	var cf createFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return task.CreateRequest{}, fmt.Errorf("%w: invalid task definition in %q: %w", errors.ErrInvalidArgument, path, err)
	}

	tt, err := parseTaskType(cf.Type)
	if err != nil {
		return task.CreateRequest{}, err
	}
	pr := domain.PriorityMedium
	if cf.Priority != "" {
		if pr, err = parsePriority(cf.Priority); err != nil {
			return task.CreateRequest{}, err
		}
	}
	expiryDays := cf.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = cfg.Review.DefaultExpiryDays
	}

	req := task.CreateRequest{
		Title:               cf.Title,
		Description:         cf.Description,
		Type:                tt,
		AssignedTo:          cf.AssignedTo,
		AssignedBy:          cf.AssignedBy,
		Priority:            pr,
		ExpiryDate:          time.Now().UTC().AddDate(0, 0, expiryDays),
		SessionInstructions: cf.SessionInstructions,
		TaskInstructions:    cf.TaskInstructions,
	}
	for _, st := range cf.Subtasks {
		req.Subtasks = append(req.Subtasks, convertSubtaskFile(st, cfg))
	}
	if cf.Clicker != nil {
		spec := convertSubtaskFile(*cf.Clicker, cfg)
		req.Clicker = &spec
	}
	return req, nil
}

func convertSubtaskFile(st subtaskFile, cfg *config.Config) task.SubtaskSpec {
	spec := task.SubtaskSpec{Title: st.Title}
	for _, l := range st.Links {
		timeRequired := l.TimeRequired
		if timeRequired <= 0 {
			timeRequired = cfg.Review.DefaultLinkSeconds
		}
		spec.Links = append(spec.Links, task.LinkSpec{
			RealURL:      l.RealURL,
			Proxy:        l.Proxy,
			Title:        l.Title,
			Instructions: l.Instructions,
			TimeRequired: timeRequired,
		})
	}
	return spec
}

func parseTaskType(s string) (domain.TaskType, error) {
	switch domain.TaskType(s) {
	case domain.TaskTypeViewer, domain.TaskTypeClicker:
		return domain.TaskType(s), nil
	default:
		return "", fmt.Errorf("%w: task type %q must be viewer or clicker", errors.ErrInvalidArgument, s)
	}
}

func parsePriority(s string) (domain.Priority, error) {
	switch domain.Priority(s) {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return domain.Priority(s), nil
	default:
		return "", fmt.Errorf("%w: priority %q must be low, medium, or high", errors.ErrInvalidArgument, s)
	}
}

// validateAssignment checks the assignee against the user directory. A home
// without a users file yields an empty directory and skips the check, so
// directory-less installs keep working.
func validateAssignment(ctx context.Context, cfg *config.Config, userID int, taskType domain.TaskType) error {
	home, err := config.ResolveHome(cfg)
	if err != nil {
		return err
	}
	dir, err := directory.Load(ctx, home)
	if err != nil {
		return err
	}
	if dir.Empty() {
		logger := GetLogger()
		logger.Debug().Int("user_id", userID).Msg("no user directory, skipping assignment check")
		return nil
	}

	u, err := dir.Lookup(userID)
	if err != nil {
		return fmt.Errorf("cannot assign task: %w", err)
	}
	if !u.CanTake(taskType) {
		return fmt.Errorf("%w: user %d (%s) cannot take %s tasks",
			errors.ErrInvalidArgument, u.ID, u.Name, taskType)
	}
	return nil
}

// runCreate executes the create command.
func runCreate(ctx context.Context, w io.Writer, in createInputs, format string) error {
	svc, cfg, err := newTaskService(ctx)
	if err != nil {
		return err
	}

	req, err := buildCreateRequest(in, cfg)
	if err != nil {
		return err
	}

	if err := validateAssignment(ctx, cfg, req.AssignedTo, req.Type); err != nil {
		return err
	}

	created, err := svc.CreateTask(ctx, req)
	if err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, created)
	}
	fmt.Fprintf(w, "Created task %d: %s (%s, assigned to %d)\n",
		created.ID, created.Title, created.Type, created.AssignedTo)
	return nil
}
