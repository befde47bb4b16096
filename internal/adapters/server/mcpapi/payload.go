package mcpapi

import (
	"time"

	"github.com/hylla/syssla/internal/domain"
)

// projectPayload is the wire shape for one project.
type projectPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Default   bool   `json:"default"`
	CreatedAt string `json:"created_at"`
}

func newProjectPayload(project domain.Project) projectPayload {
	return projectPayload{
		ID:        project.ID,
		Name:      project.Name,
		Default:   project.IsDefault(),
		CreatedAt: project.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// taskPayload is the wire shape for one task.
type taskPayload struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newTaskPayload(task domain.Task) taskPayload {
	return taskPayload{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     domain.FormatDueDate(task.DueAt),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
