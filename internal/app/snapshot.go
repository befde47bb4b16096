package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hylla/syssla/internal/domain"
)

// SnapshotVersion defines a package constant value.
const SnapshotVersion = "syssla.snapshot.v1"

// Snapshot represents snapshot data used by this package.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Projects   []SnapshotProject `json:"projects"`
	Tasks      []SnapshotTask    `json:"tasks"`
}

// SnapshotProject represents snapshot project data used by this package.
type SnapshotProject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotTask represents snapshot task data used by this package.
type SnapshotTask struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	DueAt       *time.Time      `json:"due_at,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExportSnapshot handles export snapshot.
func (s *Service) ExportSnapshot(ctx context.Context) (Snapshot, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: s.clock().UTC(),
		Projects:   make([]SnapshotProject, 0, len(projects)),
		Tasks:      make([]SnapshotTask, 0),
	}
	for _, project := range projects {
		snap.Projects = append(snap.Projects, snapshotProjectFromDomain(project))

		tasks, listErr := s.repo.ListTasks(ctx, project.ID)
		if listErr != nil {
			return Snapshot{}, listErr
		}
		for _, task := range tasks {
			snap.Tasks = append(snap.Tasks, snapshotTaskFromDomain(task))
		}
	}

	snap.sort()
	return snap, nil
}

// ImportSnapshot handles import snapshot.
func (s *Service) ImportSnapshot(ctx context.Context, snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	snap.sort()

	for _, project := range snap.Projects {
		if err := s.upsertProject(ctx, project.toDomain()); err != nil {
			return err
		}
	}
	for _, task := range snap.Tasks {
		dt := task.toDomain()
		if _, err := s.repo.GetTask(ctx, dt.ID); err == nil {
			if err := s.repo.UpdateTask(ctx, dt); err != nil {
				return err
			}
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := s.repo.CreateTask(ctx, dt); err != nil {
			return err
		}
	}

	return nil
}

// Validate validates the requested operation.
func (s *Snapshot) Validate() error {
	if s.Version != "" && s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version: %q", s.Version)
	}

	projectIDs := map[string]struct{}{}
	projectNames := map[string]struct{}{}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("projects[%d].id is required", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("projects[%d].name is required", i)
		}
		if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
			return fmt.Errorf("projects[%d] timestamps are required", i)
		}
		if _, exists := projectIDs[p.ID]; exists {
			return fmt.Errorf("duplicate project id: %q", p.ID)
		}
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if _, exists := projectNames[name]; exists {
			return fmt.Errorf("duplicate project name: %q", p.Name)
		}
		projectIDs[p.ID] = struct{}{}
		projectNames[name] = struct{}{}
	}

	taskIDs := map[string]struct{}{}
	for i, t := range s.Tasks {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("tasks[%d].id is required", i)
		}
		if strings.TrimSpace(t.ProjectID) == "" {
			return fmt.Errorf("tasks[%d].project_id is required", i)
		}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("tasks[%d].title is required", i)
		}
		switch t.Priority {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		default:
			return fmt.Errorf("tasks[%d].priority must be low|medium|high", i)
		}
		if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
			return fmt.Errorf("tasks[%d] timestamps are required", i)
		}
		if _, ok := projectIDs[t.ProjectID]; !ok {
			return fmt.Errorf("tasks[%d] references unknown project_id %q", i, t.ProjectID)
		}
		if _, exists := taskIDs[t.ID]; exists {
			return fmt.Errorf("duplicate task id: %q", t.ID)
		}
		taskIDs[t.ID] = struct{}{}
	}

	return nil
}

// upsertProject handles upsert project.
func (s *Service) upsertProject(ctx context.Context, p domain.Project) error {
	if _, err := s.repo.GetProject(ctx, p.ID); err == nil {
		return s.repo.UpdateProject(ctx, p)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.repo.CreateProject(ctx, p)
}

// sort handles sort.
func (s *Snapshot) sort() {
	sort.Slice(s.Projects, func(i, j int) bool {
		return s.Projects[i].ID < s.Projects[j].ID
	})
	sort.Slice(s.Tasks, func(i, j int) bool {
		a := s.Tasks[i]
		b := s.Tasks[j]
		if a.ProjectID == b.ProjectID {
			if a.CreatedAt.Equal(b.CreatedAt) {
				return a.ID < b.ID
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ProjectID < b.ProjectID
	})
}

// snapshotProjectFromDomain handles snapshot project from domain.
func snapshotProjectFromDomain(p domain.Project) SnapshotProject {
	return SnapshotProject{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

// snapshotTaskFromDomain handles snapshot task from domain.
func snapshotTaskFromDomain(t domain.Task) SnapshotTask {
	return SnapshotTask{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueAt:       copyTimePtr(t.DueAt),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

// toDomain converts domain.
func (p SnapshotProject) toDomain() domain.Project {
	return domain.Project{
		ID:        strings.TrimSpace(p.ID),
		Name:      strings.TrimSpace(p.Name),
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

// toDomain converts domain.
func (t SnapshotTask) toDomain() domain.Task {
	return domain.Task{
		ID:          strings.TrimSpace(t.ID),
		ProjectID:   strings.TrimSpace(t.ProjectID),
		Title:       strings.TrimSpace(t.Title),
		Description: strings.TrimSpace(t.Description),
		Priority:    t.Priority,
		DueAt:       copyTimePtr(t.DueAt),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

// copyTimePtr copies time ptr.
func copyTimePtr(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	t := in.UTC().Truncate(time.Second)
	return &t
}
