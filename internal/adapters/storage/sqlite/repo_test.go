package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/domain"
	_ "modernc.org/sqlite"
)

func TestRepository_ProjectTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "syssla.db")
	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	project, err := domain.NewProject("p1", "Example", now)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if err := repo.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	loadedProject, err := repo.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetProject() error = %v", err)
	}
	if loadedProject.Name != "Example" {
		t.Fatalf("unexpected project name %q", loadedProject.Name)
	}

	due := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	task, err := domain.NewTask(domain.TaskInput{
		ID:          "t1",
		ProjectID:   project.ID,
		Title:       "Task title",
		Description: "Task details",
		Priority:    domain.PriorityHigh,
		DueAt:       &due,
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	tasks, err := repo.ListTasks(ctx, project.ID)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].DueAt == nil || !tasks[0].DueAt.Equal(due) {
		t.Fatalf("unexpected due date %v", tasks[0].DueAt)
	}

	task.ToggleCompleted(now.Add(time.Hour))
	if err := repo.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	reloaded, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if !reloaded.Completed {
		t.Fatal("expected completion to persist")
	}

	if err := repo.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if _, err := repo.GetTask(ctx, task.ID); err != app.ErrNotFound {
		t.Fatalf("expected app.ErrNotFound, got %v", err)
	}
}

func TestRepository_TaskOrdering(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(filepath.Join(t.TempDir(), "syssla.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	project, _ := domain.NewProject("p1", "Ordering", now)
	if err := repo.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	dueSoon := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	dueLater := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mk := func(id string, due *time.Time, completed bool, createdAt time.Time) {
		t.Helper()
		task, err := domain.NewTask(domain.TaskInput{
			ID:        id,
			ProjectID: project.ID,
			Title:     id,
			Priority:  domain.PriorityLow,
			DueAt:     due,
		}, createdAt)
		if err != nil {
			t.Fatalf("NewTask(%q) error = %v", id, err)
		}
		task.Completed = completed
		if err := repo.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask(%q) error = %v", id, err)
		}
	}
	mk("done", &dueSoon, true, now)
	mk("undated-old", nil, false, now)
	mk("undated-new", nil, false, now.Add(time.Hour))
	mk("later", &dueLater, false, now)
	mk("soon", &dueSoon, false, now)

	tasks, err := repo.ListTasks(ctx, project.ID)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	got := make([]string, 0, len(tasks))
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	want := []string{"soon", "later", "undated-old", "undated-new", "done"}
	if len(got) != len(want) {
		t.Fatalf("unexpected task count %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}
}

func TestRepository_UniqueProjectNames(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Now().UTC()
	first, _ := domain.NewProject("p1", "Work", now)
	if err := repo.CreateProject(ctx, first); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	dup, _ := domain.NewProject("p2", "work", now)
	if err := repo.CreateProject(ctx, dup); !errors.Is(err, app.ErrDuplicateProject) {
		t.Fatalf("expected app.ErrDuplicateProject, got %v", err)
	}

	loaded, err := repo.GetProjectByName(ctx, "WORK")
	if err != nil {
		t.Fatalf("GetProjectByName() error = %v", err)
	}
	if loaded.ID != first.ID {
		t.Fatalf("unexpected project %q", loaded.ID)
	}
}

func TestRepository_ReassignTasks(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Now().UTC()
	inbox, _ := domain.NewProject("inbox", "Inbox", now)
	work, _ := domain.NewProject("work", "Work", now)
	if err := repo.CreateProject(ctx, inbox); err != nil {
		t.Fatalf("CreateProject(inbox) error = %v", err)
	}
	if err := repo.CreateProject(ctx, work); err != nil {
		t.Fatalf("CreateProject(work) error = %v", err)
	}
	task, _ := domain.NewTask(domain.TaskInput{ID: "t1", ProjectID: work.ID, Title: "x"}, now)
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := repo.ReassignTasks(ctx, work.ID, inbox.ID); err != nil {
		t.Fatalf("ReassignTasks() error = %v", err)
	}
	moved, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if moved.ProjectID != inbox.ID {
		t.Fatalf("expected task in inbox, got %q", moved.ProjectID)
	}

	if err := repo.DeleteProject(ctx, work.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if _, err := repo.GetProject(ctx, work.ID); err != app.ErrNotFound {
		t.Fatalf("expected app.ErrNotFound for deleted project, got %v", err)
	}
}

func TestRepository_MigratesLegacyTasksTable(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "legacy.db")
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	_, err = db.ExecContext(ctx, `
		CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("create legacy table error = %v", err)
	}

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	project, _ := domain.NewProject("p1", "Legacy", now)
	if err := repo.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	task, _ := domain.NewTask(domain.TaskInput{ID: "t1", ProjectID: project.ID, Title: "x", DueAt: &due}, now)
	task.Completed = true
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	loaded, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if loaded.DueAt == nil || !loaded.Completed {
		t.Fatalf("expected migrated columns to persist, got %#v", loaded)
	}
}

func TestRepositoryOpenValidation(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for empty sqlite path")
	}
}

func TestRepositoryUpdateNotFound(t *testing.T) {
	repo, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	now := time.Now().UTC()
	p, _ := domain.NewProject("missing", "nope", now)
	if err := repo.UpdateProject(context.Background(), p); err != app.ErrNotFound {
		t.Fatalf("expected app.ErrNotFound for UpdateProject, got %v", err)
	}

	tk, _ := domain.NewTask(domain.TaskInput{
		ID:        "missing-task",
		ProjectID: "missing",
		Title:     "x",
		Priority:  domain.PriorityLow,
	}, now)
	if err := repo.UpdateTask(context.Background(), tk); err != app.ErrNotFound {
		t.Fatalf("expected app.ErrNotFound for UpdateTask, got %v", err)
	}

	if err := repo.DeleteTask(context.Background(), "missing"); err != app.ErrNotFound {
		t.Fatalf("expected app.ErrNotFound for delete, got %v", err)
	}
}
