package app

import (
	"context"

	"github.com/hylla/syssla/internal/domain"
)

// Repository represents repository data used by this package.
type Repository interface {
	CreateProject(context.Context, domain.Project) error
	UpdateProject(context.Context, domain.Project) error
	GetProject(context.Context, string) (domain.Project, error)
	GetProjectByName(context.Context, string) (domain.Project, error)
	ListProjects(context.Context) ([]domain.Project, error)
	DeleteProject(context.Context, string) error

	CreateTask(context.Context, domain.Task) error
	UpdateTask(context.Context, domain.Task) error
	GetTask(context.Context, string) (domain.Task, error)
	ListTasks(context.Context, string) ([]domain.Task, error)
	ListAllTasks(context.Context) ([]domain.Task, error)
	DeleteTask(context.Context, string) error
	ReassignTasks(context.Context, string, string) error
}
