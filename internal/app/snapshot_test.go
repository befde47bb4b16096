package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hylla/syssla/internal/domain"
)

func TestExportSnapshotIncludesExpectedData(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC)

	p1, _ := domain.NewProject("p1", "Alpha", now)
	p2, _ := domain.NewProject("p2", "Beta", now)
	repo.projects[p1.ID] = p1
	repo.projects[p2.ID] = p2

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t1, _ := domain.NewTask(domain.TaskInput{ID: "t1", ProjectID: p1.ID, Title: "Task A", Priority: domain.PriorityLow, DueAt: &due}, now)
	t2, _ := domain.NewTask(domain.TaskInput{ID: "t2", ProjectID: p2.ID, Title: "Task B", Priority: domain.PriorityHigh}, now)
	t2.ToggleCompleted(now.Add(time.Minute))
	repo.tasks[t1.ID] = t1
	repo.tasks[t2.ID] = t2

	svc := NewService(repo, nil, func() time.Time { return now.Add(3 * time.Minute) }, ServiceConfig{})

	snap, err := svc.ExportSnapshot(context.Background())
	if err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Fatalf("unexpected version %q", snap.Version)
	}
	if len(snap.Projects) != 2 || len(snap.Tasks) != 2 {
		t.Fatalf("unexpected snapshot sizes p=%d t=%d", len(snap.Projects), len(snap.Tasks))
	}
	if snap.Projects[0].ID != "p1" || snap.Projects[1].ID != "p2" {
		t.Fatalf("expected sorted projects, got %#v", snap.Projects)
	}
	var exportedDone *SnapshotTask
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == "t2" {
			exportedDone = &snap.Tasks[i]
		}
	}
	if exportedDone == nil || !exportedDone.Completed {
		t.Fatalf("expected completion to round-trip, got %#v", snap.Tasks)
	}
}

func TestImportSnapshotCreatesAndUpdates(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC)

	existingProject, _ := domain.NewProject("p1", "Old Name", now)
	existingTask, _ := domain.NewTask(domain.TaskInput{ID: "t1", ProjectID: existingProject.ID, Title: "Old Task", Priority: domain.PriorityLow}, now)
	repo.projects[existingProject.ID] = existingProject
	repo.tasks[existingTask.ID] = existingTask

	svc := NewService(repo, nil, func() time.Time { return now }, ServiceConfig{})

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: now,
		Projects: []SnapshotProject{
			{ID: "p1", Name: "New Name", CreatedAt: now, UpdatedAt: now.Add(time.Minute)},
			{ID: "p2", Name: "Fresh", CreatedAt: now, UpdatedAt: now},
		},
		Tasks: []SnapshotTask{
			{ID: "t1", ProjectID: "p1", Title: "Renamed Task", Priority: domain.PriorityHigh, Completed: true, CreatedAt: now, UpdatedAt: now.Add(time.Minute)},
			{ID: "t2", ProjectID: "p2", Title: "Brand New", Priority: domain.PriorityMedium, CreatedAt: now, UpdatedAt: now},
		},
	}

	if err := svc.ImportSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}
	if repo.projects["p1"].Name != "New Name" {
		t.Fatalf("expected project rename, got %q", repo.projects["p1"].Name)
	}
	if _, ok := repo.projects["p2"]; !ok {
		t.Fatal("expected new project created")
	}
	if repo.tasks["t1"].Title != "Renamed Task" || !repo.tasks["t1"].Completed {
		t.Fatalf("expected task updated, got %#v", repo.tasks["t1"])
	}
	if _, ok := repo.tasks["t2"]; !ok {
		t.Fatal("expected new task created")
	}
}

func TestSnapshotValidate(t *testing.T) {
	now := time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC)
	valid := Snapshot{
		Version: SnapshotVersion,
		Projects: []SnapshotProject{
			{ID: "p1", Name: "Alpha", CreatedAt: now, UpdatedAt: now},
		},
		Tasks: []SnapshotTask{
			{ID: "t1", ProjectID: "p1", Title: "A", Priority: domain.PriorityLow, CreatedAt: now, UpdatedAt: now},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Snapshot)
		wantSub string
	}{
		{"bad version", func(s *Snapshot) { s.Version = "other" }, "unsupported snapshot version"},
		{"missing project name", func(s *Snapshot) { s.Projects[0].Name = " " }, "name is required"},
		{"duplicate project name", func(s *Snapshot) {
			s.Projects = append(s.Projects, SnapshotProject{ID: "p2", Name: "alpha", CreatedAt: now, UpdatedAt: now})
		}, "duplicate project name"},
		{"unknown project ref", func(s *Snapshot) { s.Tasks[0].ProjectID = "nope" }, "unknown project_id"},
		{"bad priority", func(s *Snapshot) { s.Tasks[0].Priority = "urgent" }, "priority must be"},
		{"duplicate task id", func(s *Snapshot) {
			s.Tasks = append(s.Tasks, s.Tasks[0])
		}, "duplicate task id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{
				Version:  valid.Version,
				Projects: append([]SnapshotProject(nil), valid.Projects...),
				Tasks:    append([]SnapshotTask(nil), valid.Tasks...),
			}
			tc.mutate(&snap)
			err := snap.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tc.wantSub, err)
			}
		})
	}
}
