// Package task provides the task store, query layer, and progression API
// for taskdeck.
//
// This file implements the Service, the authoritative in-memory owner of the
// task list. Every mutation is a read-modify-write over the full list,
// persisted to the storage port before it becomes visible, so memory and
// disk cannot diverge.
package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kvarley/taskdeck/internal/clock"
	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/ctxutil"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// maskedURLBase is the prefix for masked display URLs. The opaque token after
// it is regenerated on every reload, so a display URL never reveals the real
// target or stays valid as a stable identifier.
const maskedURLBase = "https://view.taskdeck.io/r/"

// Service owns the authoritative in-memory task list and exposes the query
// layer and progression API as its only mutation surface. The list is guarded
// by a mutex: all operations are serialized, matching the single-writer
// resource policy for the durable slot.
type Service struct {
	mu       sync.Mutex
	storage  Storage
	clock    clock.Clock
	metrics  Recorder
	logger   zerolog.Logger
	notifier *StateChangeNotifier
	timers   *ReviewTimers

	tasks []domain.Task
	index map[int]int // task id -> position in tasks, insertion order preserved
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for timestamps. Intended for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithNotifier sets the state change notifier.
func WithNotifier(n *StateChangeNotifier) Option {
	return func(s *Service) { s.notifier = n }
}

// NewService creates a Service backed by the given storage port and loads the
// task list from it. If the durable slot is absent or empty, the built-in
// seed catalog is used, so the store is never left empty.
func NewService(ctx context.Context, storage Storage, opts ...Option) (*Service, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	s := &Service{
		storage: storage,
		clock:   clock.RealClock{},
		metrics: NoopRecorder{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.timers = NewReviewTimers(s.clock)

	tasks, err := storage.Load(ctx)
	if err != nil {
		return nil, deckerrors.Wrap(err, "failed to initialize task service")
	}
	if len(tasks) == 0 {
		tasks = SeedTasks(s.clock.Now().UTC())
		s.logger.Info().Int("count", len(tasks)).Msg("task slot empty, loaded seed catalog")
	}

	s.tasks = tasks
	s.reindex()
	return s, nil
}

// reindex rebuilds the id index from the task list. Caller must hold mu
// (or be the constructor).
func (s *Service) reindex() {
	s.index = make(map[int]int, len(s.tasks))
	for i := range s.tasks {
		s.index[s.tasks[i].ID] = i
	}
}

// Get returns a copy of the task with the given id.
func (s *Service) Get(ctx context.Context, taskID int) (domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[taskID]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %d: %w", taskID, deckerrors.ErrTaskNotFound)
	}
	return cloneTask(s.tasks[pos]), nil
}

// CreateRequest describes a task to create.
type CreateRequest struct {
	Title               string
	Description         string
	Type                domain.TaskType
	AssignedTo          int
	AssignedBy          int
	Priority            domain.Priority
	ExpiryDate          time.Time
	SessionInstructions domain.InstructionBlock
	TaskInstructions    domain.InstructionBlock
	Subtasks            []SubtaskSpec
	Clicker             *SubtaskSpec
}

// SubtaskSpec describes a subtask within a CreateRequest.
type SubtaskSpec struct {
	Title string
	Links []LinkSpec
}

// LinkSpec describes a link within a SubtaskSpec.
type LinkSpec struct {
	RealURL      string
	Proxy        string
	Title        string
	Instructions string
	TimeRequired int
}

// CreateTask appends a new task to the store.
// The new task gets id max(existing ids)+1, status assigned, an empty final
// submission, and zeroed metrics. The full list is persisted before the task
// becomes visible.
func (s *Service) CreateTask(ctx context.Context, req CreateRequest) (domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.Task{}, err
	}

	if req.Title == "" {
		return domain.Task{}, fmt.Errorf("%w: title %w", deckerrors.ErrInvalidArgument, deckerrors.ErrEmptyValue)
	}
	if req.AssignedTo <= 0 {
		return domain.Task{}, fmt.Errorf("%w: assigned_to must be positive", deckerrors.ErrInvalidArgument)
	}
	if req.Type != domain.TaskTypeViewer && req.Type != domain.TaskTypeClicker {
		return domain.Task{}, fmt.Errorf("%w: unknown task type %q", deckerrors.ErrInvalidArgument, req.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	newTask := s.buildTask(req, s.nextID(), now)

	s.tasks = append(s.tasks, newTask)
	s.index[newTask.ID] = len(s.tasks) - 1

	if err := s.storage.Save(ctx, s.tasks); err != nil {
		// Roll back the append so memory matches disk.
		s.tasks = s.tasks[:len(s.tasks)-1]
		delete(s.index, newTask.ID)
		return domain.Task{}, fmt.Errorf("%w: %w", deckerrors.ErrPersistence, err)
	}

	s.metrics.TaskCreated(newTask.ID, newTask.Type)
	s.logger.Info().
		Int("task_id", newTask.ID).
		Str("type", newTask.Type.String()).
		Int("assigned_to", newTask.AssignedTo).
		Msg("task created")

	return cloneTask(newTask), nil
}

// nextID returns max(existing ids)+1. Caller must hold mu.
// IDs start at 1 for an empty store.
func (s *Service) nextID() int {
	maxID := 0
	for i := range s.tasks {
		if s.tasks[i].ID > maxID {
			maxID = s.tasks[i].ID
		}
	}
	return maxID + 1
}

// buildTask materializes a CreateRequest into a Task.
func (s *Service) buildTask(req CreateRequest, id int, now time.Time) domain.Task {
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	expiry := req.ExpiryDate
	if expiry.IsZero() {
		expiry = now.AddDate(0, 0, constants.DefaultTaskExpiryDays)
	}

	t := domain.Task{
		ID:                  id,
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		AssignedTo:          req.AssignedTo,
		AssignedBy:          req.AssignedBy,
		Status:              domain.TaskStatusAssigned,
		Priority:            priority,
		ExpiryDate:          expiry,
		CreatedAt:           now,
		UpdatedAt:           now,
		SessionInstructions: req.SessionInstructions,
		TaskInstructions:    req.TaskInstructions,
		Subtasks:            make([]domain.Subtask, 0, len(req.Subtasks)),
	}

	for i, spec := range req.Subtasks {
		t.Subtasks = append(t.Subtasks, buildSubtask(spec, i+1, domain.TaskTypeViewer))
	}
	if req.Clicker != nil {
		clicker := buildSubtask(*req.Clicker, len(req.Subtasks)+1, domain.TaskTypeClicker)
		t.ClickerTask = &clicker
	}

	return t
}

// buildSubtask materializes a SubtaskSpec. Link ids are 1-based within the
// subtask; display URLs start masked.
func buildSubtask(spec SubtaskSpec, id int, kind domain.TaskType) domain.Subtask {
	st := domain.Subtask{
		ID:     id,
		Title:  spec.Title,
		Type:   kind,
		Status: domain.SubtaskStatusPending,
		Links:  make([]domain.Link, 0, len(spec.Links)),
	}
	for i, l := range spec.Links {
		timeRequired := l.TimeRequired
		if timeRequired <= 0 {
			timeRequired = constants.DefaultLinkTimeSeconds
		}
		st.Links = append(st.Links, domain.Link{
			ID:           i + 1,
			DisplayURL:   newMaskedURL(),
			RealURL:      l.RealURL,
			Proxy:        l.Proxy,
			Title:        l.Title,
			Instructions: l.Instructions,
			TimeRequired: timeRequired,
			Status:       domain.LinkStatusPending,
		})
	}
	return st
}

// newMaskedURL generates a fresh opaque display URL.
// Every call returns a new value, which is the reload contract.
func newMaskedURL() string {
	return maskedURLBase + uuid.NewString()
}

// StartTask moves a task from assigned to in_progress.
func (s *Service) StartTask(ctx context.Context, taskID int) error {
	return s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		if err := transition(t, domain.TaskStatusInProgress, "task started", now); err != nil {
			return err
		}
		s.metrics.TaskStarted(t.ID)
		return nil
	})
}

// StartLinkReview marks a link as in review and starts its ephemeral
// wall-clock timer. The timer lives outside the store and resets when the
// next link review starts.
func (s *Service) StartLinkReview(ctx context.Context, taskID, subtaskID, linkID int) error {
	err := s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		if t.Status != domain.TaskStatusInProgress {
			return fmt.Errorf("%w: cannot review links while task is %s",
				deckerrors.ErrInvalidTransition, t.Status)
		}
		st, err := findSubtask(t, subtaskID)
		if err != nil {
			return err
		}
		link, err := findLink(st, linkID)
		if err != nil {
			return err
		}
		if link.Completed {
			return fmt.Errorf("link %d: %w", linkID, deckerrors.ErrLinkAlreadyCompleted)
		}
		link.Status = domain.LinkStatusInProgress
		if st.Status == domain.SubtaskStatusPending {
			st.Status = domain.SubtaskStatusInProgress
		}
		// Other processes read elapsed review time off the slot, so the
		// review start has to leave a timestamp behind.
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.timers.Start(LinkKey{TaskID: taskID, SubtaskID: subtaskID, LinkID: linkID})
	return nil
}

// CompleteLinkReview records the review outcome for a link and bumps the
// task's view counters. A link can complete at most once, which keeps the
// counters tied to the link count.
func (s *Service) CompleteLinkReview(ctx context.Context, taskID, subtaskID, linkID int, notes string, quality domain.Quality) error {
	if err := validQuality(quality); err != nil {
		return err
	}

	err := s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		if t.Status != domain.TaskStatusInProgress {
			return fmt.Errorf("%w: cannot review links while task is %s",
				deckerrors.ErrInvalidTransition, t.Status)
		}
		st, err := findSubtask(t, subtaskID)
		if err != nil {
			return err
		}
		link, err := findLink(st, linkID)
		if err != nil {
			return err
		}
		if link.Completed {
			return fmt.Errorf("link %d: %w", linkID, deckerrors.ErrLinkAlreadyCompleted)
		}

		link.Completed = true
		link.Status = domain.LinkStatusCompleted
		link.CompletedAt = &now
		link.Notes = notes
		link.Quality = quality

		// A completed link means the subtask's review has started, even
		// when the link was completed without an explicit start.
		if st.Status == domain.SubtaskStatusPending {
			st.Status = domain.SubtaskStatusInProgress
		}

		t.Metrics.TotalViews++
		if quality == domain.QualityGood {
			t.Metrics.GoodViews++
		} else {
			t.Metrics.BadViews++
		}
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	elapsed, _ := s.timers.Stop(LinkKey{TaskID: taskID, SubtaskID: subtaskID, LinkID: linkID})
	s.metrics.LinkReviewed(taskID, quality, elapsed)
	s.logger.Debug().
		Int("task_id", taskID).
		Int("link_id", linkID).
		Str("quality", quality.String()).
		Dur("elapsed", elapsed).
		Msg("link review completed")
	return nil
}

// CompleteSubtask records the subtask submission. Every link under the
// subtask must already be completed.
func (s *Service) CompleteSubtask(ctx context.Context, taskID, subtaskID int, notes, screenshot string) error {
	return s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		st, err := findSubtask(t, subtaskID)
		if err != nil {
			return err
		}
		if st.Status == domain.SubtaskStatusCompleted {
			return fmt.Errorf("%w: subtask %d already completed", deckerrors.ErrInvalidTransition, subtaskID)
		}
		for i := range st.Links {
			if !st.Links[i].Completed {
				return fmt.Errorf("subtask %d: %w", subtaskID, deckerrors.ErrSubtaskIncomplete)
			}
		}

		st.Status = domain.SubtaskStatusCompleted
		st.Submission = domain.Submission{
			Completed:   true,
			Notes:       notes,
			Screenshot:  screenshot,
			SubmittedAt: &now,
		}
		t.UpdatedAt = now
		return nil
	})
}

// CompleteClickerTask records the click analysis outcome for the task's
// clicker subtask and bumps the click counters.
func (s *Service) CompleteClickerTask(ctx context.Context, taskID int, notes string, quality domain.Quality, screenshot string) error {
	if err := validQuality(quality); err != nil {
		return err
	}

	err := s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		if t.ClickerTask == nil {
			return fmt.Errorf("task %d: %w", taskID, deckerrors.ErrNoClickerTask)
		}
		if t.ClickerTask.Status == domain.SubtaskStatusCompleted {
			return fmt.Errorf("%w: clicker subtask already completed", deckerrors.ErrInvalidTransition)
		}

		t.ClickerTask.Status = domain.SubtaskStatusCompleted
		t.ClickerTask.Submission = domain.Submission{
			Completed:   true,
			Notes:       notes,
			Screenshot:  screenshot,
			SubmittedAt: &now,
		}

		t.Metrics.TotalClicks++
		if quality == domain.QualityGood {
			t.Metrics.GoodClicks++
		} else {
			t.Metrics.BadClicks++
		}
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.ClickRecorded(taskID, quality)
	return nil
}

// CompleteFinalSubmission marks the task completed. All subtasks and the
// clicker subtask (if present) must already be completed.
func (s *Service) CompleteFinalSubmission(ctx context.Context, taskID int, notes string) error {
	var duration time.Duration
	err := s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		// The transition check comes first so a task that was never
		// started reports the bad state, not missing work.
		if !IsValidTransition(t.Status, domain.TaskStatusCompleted) {
			return fmt.Errorf("%w: cannot transition from %s to %s",
				deckerrors.ErrInvalidTransition, t.Status, domain.TaskStatusCompleted)
		}
		if !AllSubtasksCompleted(*t) {
			return fmt.Errorf("task %d: %w", taskID, deckerrors.ErrTaskIncomplete)
		}
		if err := transition(t, domain.TaskStatusCompleted, "final submission", now); err != nil {
			return err
		}
		t.FinalSubmission = domain.Submission{
			Completed:   true,
			Notes:       notes,
			SubmittedAt: &now,
		}
		duration = now.Sub(t.CreatedAt)
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.TaskCompleted(taskID, duration)
	if s.notifier != nil {
		s.notifier.NotifyStateChange(taskID, domain.TaskStatusInProgress, domain.TaskStatusCompleted)
	}
	s.logger.Info().Int("task_id", taskID).Dur("duration", duration).Msg("task completed")
	return nil
}

// ReloadLink regenerates the masked display URL for a link.
// Each call is guaranteed to produce a fresh opaque value.
func (s *Service) ReloadLink(ctx context.Context, taskID, subtaskID, linkID int) (string, error) {
	var fresh string
	err := s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		st, err := findSubtask(t, subtaskID)
		if err != nil {
			return err
		}
		link, err := findLink(st, linkID)
		if err != nil {
			return err
		}
		if link.Completed {
			return fmt.Errorf("link %d: %w", linkID, deckerrors.ErrLinkAlreadyCompleted)
		}
		fresh = newMaskedURL()
		link.DisplayURL = fresh
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return "", err
	}
	return fresh, nil
}

// Elapsed reports the running review timer for a link.
func (s *Service) Elapsed(taskID, subtaskID, linkID int) (time.Duration, error) {
	return s.timers.Elapsed(LinkKey{TaskID: taskID, SubtaskID: subtaskID, LinkID: linkID})
}

// mutate runs fn against a working copy of the task, then persists the full
// list. The in-memory list only changes if both fn and the save succeed;
// a failed save rolls the task back so memory matches disk.
func (s *Service) mutate(ctx context.Context, taskID int, fn func(t *domain.Task, now time.Time) error) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[taskID]
	if !ok {
		return fmt.Errorf("task %d: %w", taskID, deckerrors.ErrTaskNotFound)
	}

	working := cloneTask(s.tasks[pos])
	now := s.clock.Now().UTC()
	if err := fn(&working, now); err != nil {
		return err
	}

	prev := s.tasks[pos]
	s.tasks[pos] = working
	if err := s.storage.Save(ctx, s.tasks); err != nil {
		s.tasks[pos] = prev
		return fmt.Errorf("%w: %w", deckerrors.ErrPersistence, err)
	}
	return nil
}

// validQuality checks a rating against the allowed values.
func validQuality(q domain.Quality) error {
	if q != domain.QualityGood && q != domain.QualityBad {
		return fmt.Errorf("%w: %q", deckerrors.ErrInvalidQuality, q)
	}
	return nil
}

// findSubtask locates a subtask by id within a task's viewer subtasks.
func findSubtask(t *domain.Task, subtaskID int) (*domain.Subtask, error) {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			return &t.Subtasks[i], nil
		}
	}
	return nil, fmt.Errorf("subtask %d: %w", subtaskID, deckerrors.ErrSubtaskNotFound)
}

// findLink locates a link by id within a subtask.
func findLink(st *domain.Subtask, linkID int) (*domain.Link, error) {
	for i := range st.Links {
		if st.Links[i].ID == linkID {
			return &st.Links[i], nil
		}
	}
	return nil, fmt.Errorf("link %d: %w", linkID, deckerrors.ErrLinkNotFound)
}

// cloneTask returns a deep copy of a task so callers can never mutate the
// store through a returned value.
func cloneTask(t domain.Task) domain.Task {
	out := t

	out.Subtasks = make([]domain.Subtask, len(t.Subtasks))
	for i, st := range t.Subtasks {
		out.Subtasks[i] = cloneSubtask(st)
	}
	if t.ClickerTask != nil {
		clicker := cloneSubtask(*t.ClickerTask)
		out.ClickerTask = &clicker
	}
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		out.CompletedAt = &completedAt
	}
	out.FinalSubmission = cloneSubmission(t.FinalSubmission)
	out.Transitions = make([]domain.Transition, len(t.Transitions))
	copy(out.Transitions, t.Transitions)

	return out
}

// cloneSubtask returns a deep copy of a subtask.
func cloneSubtask(st domain.Subtask) domain.Subtask {
	out := st
	out.Links = make([]domain.Link, len(st.Links))
	for i, l := range st.Links {
		out.Links[i] = l
		if l.CompletedAt != nil {
			completedAt := *l.CompletedAt
			out.Links[i].CompletedAt = &completedAt
		}
	}
	out.Submission = cloneSubmission(st.Submission)
	return out
}

// cloneSubmission returns a copy of a submission with its timestamp detached.
func cloneSubmission(sub domain.Submission) domain.Submission {
	out := sub
	if sub.SubmittedAt != nil {
		submittedAt := *sub.SubmittedAt
		out.SubmittedAt = &submittedAt
	}
	return out
}
