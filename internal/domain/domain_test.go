package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewProject(t *testing.T) {
	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	p, err := NewProject("p1", "  Errands  ", now)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if p.Name != "Errands" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps %#v", p)
	}
}

func TestNewProjectValidation(t *testing.T) {
	now := time.Now()
	if _, err := NewProject("", "ok", now); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := NewProject("id", "   ", now); err != ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestProjectRenameAndDefault(t *testing.T) {
	now := time.Now()
	p, err := NewProject("p1", DefaultProjectName, now)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if !p.IsDefault() {
		t.Fatal("expected Inbox to be the default project")
	}
	if err := p.Rename("  Work ", now.Add(time.Minute)); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if p.Name != "Work" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if p.IsDefault() {
		t.Fatal("renamed project should no longer be default")
	}
}

func TestNewTaskDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	due := time.Date(2026, 3, 5, 9, 45, 0, 0, time.UTC)
	task, err := NewTask(TaskInput{
		ID:        "t1",
		ProjectID: "p1",
		Title:     "  Ship feature ",
		DueAt:     &due,
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected default medium, got %q", task.Priority)
	}
	if task.Title != "Ship feature" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if task.Completed {
		t.Fatal("new tasks start open")
	}
	want := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if task.DueAt == nil || !task.DueAt.Equal(want) {
		t.Fatalf("expected due date truncated to day, got %v", task.DueAt)
	}
}

func TestNewTaskValidation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		in   TaskInput
		want error
	}{
		{"missing id", TaskInput{ProjectID: "p1", Title: "x"}, ErrInvalidID},
		{"missing project", TaskInput{ID: "t1", Title: "x"}, ErrInvalidID},
		{"blank title", TaskInput{ID: "t1", ProjectID: "p1", Title: "   "}, ErrInvalidTitle},
		{"long title", TaskInput{ID: "t1", ProjectID: "p1", Title: strings.Repeat("x", MaxTitleLen+1)}, ErrTitleTooLong},
		{"long description", TaskInput{ID: "t1", ProjectID: "p1", Title: "x", Description: strings.Repeat("y", MaxDescriptionLen+1)}, ErrDescriptionTooLong},
		{"bad priority", TaskInput{ID: "t1", ProjectID: "p1", Title: "x", Priority: Priority("bad")}, ErrInvalidPriority},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTask(tc.in, now); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTaskUpdateAndToggle(t *testing.T) {
	now := time.Now()
	task, err := NewTask(TaskInput{
		ID:        "t1",
		ProjectID: "p1",
		Title:     "x",
		Priority:  PriorityLow,
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	err = task.UpdateDetails("new", "desc", PriorityHigh, &due, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("UpdateDetails() error = %v", err)
	}
	if task.Title != "new" || task.Priority != PriorityHigh {
		t.Fatalf("unexpected task update state %#v", task)
	}

	task.ToggleCompleted(now.Add(2 * time.Minute))
	if !task.Completed {
		t.Fatal("expected task completed after toggle")
	}
	task.ToggleCompleted(now.Add(3 * time.Minute))
	if task.Completed {
		t.Fatal("expected task reopened after second toggle")
	}

	if err := task.MoveToProject("p2", now.Add(4*time.Minute)); err != nil {
		t.Fatalf("MoveToProject() error = %v", err)
	}
	if task.ProjectID != "p2" {
		t.Fatalf("unexpected project %q", task.ProjectID)
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	past := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	task, err := NewTask(TaskInput{ID: "t1", ProjectID: "p1", Title: "x", DueAt: &past}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if !task.Overdue(now) {
		t.Fatal("expected past due date to be overdue")
	}

	task.DueAt = &today
	if task.Overdue(now) {
		t.Fatal("due today is not overdue")
	}

	task.DueAt = &past
	task.Completed = true
	if task.Overdue(now) {
		t.Fatal("completed tasks are never overdue")
	}

	task.Completed = false
	task.DueAt = nil
	if task.Overdue(now) {
		t.Fatal("tasks without due dates are never overdue")
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate(" 2026-07-04 ")
	if err != nil {
		t.Fatalf("ParseDueDate() error = %v", err)
	}
	want := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("unexpected due date %v", got)
	}

	got, err = ParseDueDate("")
	if err != nil || got != nil {
		t.Fatalf("empty input should clear the date, got %v, %v", got, err)
	}

	if _, err := ParseDueDate("07/04/2026"); err != ErrInvalidDueDate {
		t.Fatalf("expected ErrInvalidDueDate, got %v", err)
	}

	if FormatDueDate(&want) != "2026-07-04" {
		t.Fatalf("unexpected format %q", FormatDueDate(&want))
	}
	if FormatDueDate(nil) != "" {
		t.Fatal("nil due date formats to empty string")
	}
}
