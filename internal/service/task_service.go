package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "github.com/MasteriNeuron/ToDo-List-Project/internal/domain"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/dto"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound        = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidDateTime = errors.New("invalid date or time format, use ISO format")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// Combined layouts for the update path: the API emits due_time as "15:04",
// so a read-modify-write must be able to send that clock back.
var combinedLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// TaskService implements the task lifecycle rules. All operations take the
// caller's user ID and only ever touch rows owned by it; acting on a
// non-owned task is indistinguishable from acting on a missing one.
type TaskService struct {
	repo repo.TaskRepo
}

func NewTaskService(r repo.TaskRepo) *TaskService {
	return &TaskService{repo: r}
}

// Create makes a new task owned by userID. due_date and due_time are parsed
// independently; priority falls back to the default when blank and status
// always starts at its default.
func (s *TaskService) Create(ctx context.Context, userID int64, in dto.CreateTaskRequest) (dom.Task, error) {
	t := dom.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    in.Priority,
		Status:      dom.DefaultStatus,
	}
	if t.Title == "" {
		return dom.Task{}, ErrTitleRequired
	}
	if t.Priority == "" {
		t.Priority = dom.DefaultPriority
	}
	if in.DueDate != "" {
		d, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return dom.Task{}, ErrInvalidDateTime
		}
		t.DueDate = &d
	}
	if in.DueTime != "" {
		c, err := time.Parse(clockLayout, in.DueTime)
		if err != nil {
			return dom.Task{}, ErrInvalidDateTime
		}
		t.DueTime = &c
	}
	return s.repo.Create(ctx, t)
}

// List returns all tasks owned by userID.
func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	return s.repo.List(ctx, userID)
}

// GetByID returns one task owned by userID.
func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Update applies a partial update. Empty strings leave a field unchanged
// rather than clearing it. due_date and due_time only take effect when both
// are supplied; the pair is parsed as one combined date-time and rejected
// atomically if either part is malformed. priority and status are replaced
// verbatim with no enum check.
func (s *TaskService) Update(ctx context.Context, userID, id int64, in dto.UpdateTaskRequest) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title := strings.TrimSpace(in.Title); title != "" {
		patch.Title = title
	}
	if in.Description != "" {
		desc := in.Description
		patch.Description = &desc
	}
	if in.DueDate != "" && in.DueTime != "" {
		combined := in.DueDate + "T" + in.DueTime
		var dt time.Time
		var perr error
		for _, layout := range combinedLayouts {
			dt, perr = time.Parse(layout, combined)
			if perr == nil {
				break
			}
		}
		if perr != nil {
			return dom.Task{}, ErrInvalidDateTime
		}
		d := time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC)
		c := time.Date(0, time.January, 1, dt.Hour(), dt.Minute(), dt.Second(), 0, time.UTC)
		patch.DueDate = &d
		patch.DueTime = &c
	}
	if in.Priority != "" {
		patch.Priority = in.Priority
	}
	if in.Status != "" {
		patch.Status = in.Status
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Delete removes the task permanently.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
