package domain

import (
	"strings"
	"time"
)

// DefaultProjectName is the project every new database starts with.
// Tasks whose project is deleted are moved back into it.
const DefaultProjectName = "Inbox"

// Project groups tasks under a unique name.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProject constructs a new value for this package.
func NewProject(id, name string, now time.Time) (Project, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Project{}, ErrInvalidID
	}
	if name == "" {
		return Project{}, ErrInvalidName
	}

	return Project{
		ID:        id,
		Name:      name,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// Rename renames the requested operation.
func (p *Project) Rename(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	p.Name = name
	p.UpdatedAt = now.UTC()
	return nil
}

// IsDefault reports whether this is the built-in default project.
func (p *Project) IsDefault() bool {
	return p.Name == DefaultProjectName
}
