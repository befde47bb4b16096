package domain

import (
	"slices"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var validPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Priorities returns the valid priorities in ascending order of urgency.
func Priorities() []Priority {
	return slices.Clone(validPriorities)
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	DueAt       *time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskInput struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	DueAt       *time.Time
}

func NewTask(in TaskInput, now time.Time) (Task, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.ID == "" {
		return Task{}, ErrInvalidID
	}
	if in.ProjectID == "" {
		return Task{}, ErrInvalidID
	}
	if err := validateTitle(in.Title); err != nil {
		return Task{}, err
	}
	if err := validateDescription(in.Description); err != nil {
		return Task{}, err
	}

	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !slices.Contains(validPriorities, in.Priority) {
		return Task{}, ErrInvalidPriority
	}

	return Task{
		ID:          in.ID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueAt:       normalizeDueAt(in.DueAt),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

func (t *Task) UpdateDetails(title, description string, priority Priority, dueAt *time.Time, now time.Time) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if !slices.Contains(validPriorities, priority) {
		return ErrInvalidPriority
	}
	t.Title = title
	t.Description = description
	t.Priority = priority
	t.DueAt = normalizeDueAt(dueAt)
	t.UpdatedAt = now.UTC()
	return nil
}

func (t *Task) ToggleCompleted(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now.UTC()
}

// MoveToProject reassigns the task to another project.
func (t *Task) MoveToProject(projectID string, now time.Time) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ErrInvalidID
	}
	t.ProjectID = projectID
	t.UpdatedAt = now.UTC()
	return nil
}

// Overdue reports whether the task has a due date strictly before the
// start of the day containing now and is still open.
func (t *Task) Overdue(now time.Time) bool {
	if t.Completed || t.DueAt == nil {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return t.DueAt.Before(today)
}

func validateTitle(title string) error {
	if title == "" {
		return ErrInvalidTitle
	}
	if len([]rune(title)) > MaxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}

// normalizeDueAt keeps due dates at day precision in UTC.
func normalizeDueAt(dueAt *time.Time) *time.Time {
	if dueAt == nil {
		return nil
	}
	ts := dueAt.UTC().Truncate(24 * time.Hour)
	return &ts
}

// ParseDueDate parses a YYYY-MM-DD due date. Empty input clears the date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	ts, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &ts, nil
}

// FormatDueDate renders a due date as YYYY-MM-DD, or "" when unset.
func FormatDueDate(dueAt *time.Time) string {
	if dueAt == nil {
		return ""
	}
	return dueAt.UTC().Format("2006-01-02")
}
