package app

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/hylla/syssla/internal/domain"
)

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	ConfirmDeletions bool
}

// IDGenerator returns unique identifiers for new entities.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// Service represents service data used by this package.
type Service struct {
	repo             Repository
	idGen            IDGenerator
	clock            Clock
	confirmDeletions bool
}

// NewService constructs a new value for this package.
func NewService(repo Repository, idGen IDGenerator, clock Clock, cfg ServiceConfig) *Service {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:             repo,
		idGen:            idGen,
		clock:            clock,
		confirmDeletions: cfg.ConfirmDeletions,
	}
}

// ConfirmDeletions reports whether destructive actions should prompt first.
func (s *Service) ConfirmDeletions() bool {
	return s.confirmDeletions
}

// EnsureDefaultProject ensures default project.
func (s *Service) EnsureDefaultProject(ctx context.Context) (domain.Project, error) {
	project, err := s.repo.GetProjectByName(ctx, domain.DefaultProjectName)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.Project{}, err
	}

	project, err = domain.NewProject(s.idGen(), domain.DefaultProjectName, s.clock())
	if err != nil {
		return domain.Project{}, err
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// CreateProject creates project.
func (s *Service) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	project, err := domain.NewProject(s.idGen(), name, s.clock())
	if err != nil {
		return domain.Project{}, err
	}
	if _, err := s.repo.GetProjectByName(ctx, project.Name); err == nil {
		return domain.Project{}, ErrDuplicateProject
	} else if !errors.Is(err, ErrNotFound) {
		return domain.Project{}, err
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// RenameProject renames project.
func (s *Service) RenameProject(ctx context.Context, projectID, name string) (domain.Project, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if project.IsDefault() {
		return domain.Project{}, ErrDefaultProject
	}
	if existing, err := s.repo.GetProjectByName(ctx, strings.TrimSpace(name)); err == nil {
		if existing.ID != project.ID {
			return domain.Project{}, ErrDuplicateProject
		}
	} else if !errors.Is(err, ErrNotFound) {
		return domain.Project{}, err
	}
	if err := project.Rename(name, s.clock()); err != nil {
		return domain.Project{}, err
	}
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// DeleteProject deletes a project, moving its tasks back into the default project.
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.IsDefault() {
		return ErrDefaultProject
	}
	inbox, err := s.EnsureDefaultProject(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.ReassignTasks(ctx, project.ID, inbox.ID); err != nil {
		return err
	}
	return s.repo.DeleteProject(ctx, project.ID)
}

// ListProjects lists projects sorted by name, default project first.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(projects, func(a, b domain.Project) int {
		if a.IsDefault() != b.IsDefault() {
			if a.IsDefault() {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return projects, nil
}

// CreateTaskInput holds input values for create task operations.
type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Priority    domain.Priority
	DueAt       *time.Time
}

// UpdateTaskInput holds input values for update task operations.
type UpdateTaskInput struct {
	TaskID      string
	ProjectID   string
	Title       string
	Description string
	Priority    domain.Priority
	DueAt       *time.Time
}

// CreateTask creates task.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (domain.Task, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		inbox, err := s.EnsureDefaultProject(ctx)
		if err != nil {
			return domain.Task{}, err
		}
		projectID = inbox.ID
	} else if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return domain.Task{}, err
	}

	task, err := domain.NewTask(domain.TaskInput{
		ID:          s.idGen(),
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueAt:       in.DueAt,
	}, s.clock())
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask updates state for the requested operation.
func (s *Service) UpdateTask(ctx context.Context, in UpdateTaskInput) (domain.Task, error) {
	task, err := s.repo.GetTask(ctx, in.TaskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := task.UpdateDetails(in.Title, in.Description, in.Priority, in.DueAt, s.clock()); err != nil {
		return domain.Task{}, err
	}
	if projectID := strings.TrimSpace(in.ProjectID); projectID != "" && projectID != task.ProjectID {
		if _, err := s.repo.GetProject(ctx, projectID); err != nil {
			return domain.Task{}, err
		}
		if err := task.MoveToProject(projectID, s.clock()); err != nil {
			return domain.Task{}, err
		}
	}
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ToggleCompletion flips a task between open and completed.
func (s *Service) ToggleCompletion(ctx context.Context, taskID string) (domain.Task, error) {
	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.ToggleCompleted(s.clock())
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes task.
func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	return s.repo.DeleteTask(ctx, taskID)
}

// GetTask fetches a single task.
func (s *Service) GetTask(ctx context.Context, taskID string) (domain.Task, error) {
	return s.repo.GetTask(ctx, taskID)
}

// ListTasks lists tasks for one project, or every project when projectID is empty.
// Open tasks come before completed ones, then earliest due date with undated
// tasks last, then oldest first.
func (s *Service) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	var (
		tasks []domain.Task
		err   error
	)
	if strings.TrimSpace(projectID) == "" {
		tasks, err = s.repo.ListAllTasks(ctx)
	} else {
		tasks, err = s.repo.ListTasks(ctx, projectID)
	}
	if err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

// SearchTasksFilter defines filtering criteria for queries.
type SearchTasksFilter struct {
	ProjectID string
	Query     string
	Priority  domain.Priority
	Completed *bool
}

// SearchTasks finds tasks matching the filter across title and description.
func (s *Service) SearchTasks(ctx context.Context, in SearchTasksFilter) ([]domain.Task, error) {
	tasks, err := s.ListTasks(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(strings.ToLower(in.Query))
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if in.Priority != "" && task.Priority != in.Priority {
			continue
		}
		if in.Completed != nil && task.Completed != *in.Completed {
			continue
		}
		if query != "" {
			if !strings.Contains(strings.ToLower(task.Title), query) &&
				!strings.Contains(strings.ToLower(task.Description), query) {
				continue
			}
		}
		out = append(out, task)
	}
	return out, nil
}

// sortTasks orders tasks by completion, due date with nil last, then creation time.
func sortTasks(tasks []domain.Task) {
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		switch {
		case a.DueAt == nil && b.DueAt != nil:
			return 1
		case a.DueAt != nil && b.DueAt == nil:
			return -1
		case a.DueAt != nil && b.DueAt != nil && !a.DueAt.Equal(*b.DueAt):
			return a.DueAt.Compare(*b.DueAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return strings.Compare(a.ID, b.ID)
	})
}
