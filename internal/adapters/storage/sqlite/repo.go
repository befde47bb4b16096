package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/domain"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// schemaVersion tracks the current on-disk schema generation.
const schemaVersion = 2

// Repository represents repository data used by this package.
type Repository struct {
	db *sql.DB
}

// Open opens the requested operation.
func Open(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// OpenInMemory opens in memory.
func OpenInMemory() (*Repository, error) {
	db, err := sql.Open(driverName, "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the requested operation.
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate handles migrate.
func (r *Repository) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL COLLATE NOCASE UNIQUE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			due_at TEXT,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project_completed_due ON tasks(project_id, completed, due_at);`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}

	// Early databases stored tasks without a project; backfill the column.
	alterStatements := []string{
		`ALTER TABLE tasks ADD COLUMN due_at TEXT`,
		`ALTER TABLE tasks ADD COLUMN completed INTEGER NOT NULL DEFAULT 0`,
	}
	for _, stmt := range alterStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil && !isDuplicateColumnErr(err) {
			return fmt.Errorf("migrate sqlite tasks: %w", err)
		}
	}

	var version sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read schema_version: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO schema_version(version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("write schema_version: %w", err)
		}
		return nil
	}
	if version.Int64 < schemaVersion {
		if _, err := r.db.ExecContext(ctx, `UPDATE schema_version SET version = ?`, schemaVersion); err != nil {
			return fmt.Errorf("bump schema_version: %w", err)
		}
	}
	return nil
}

// CreateProject creates project.
func (r *Repository) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects(id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Name, ts(p.CreatedAt), ts(p.UpdatedAt))
	if isUniqueConstraintErr(err) {
		return app.ErrDuplicateProject
	}
	return err
}

// UpdateProject updates state for the requested operation.
func (r *Repository) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, ts(p.UpdatedAt), p.ID)
	if isUniqueConstraintErr(err) {
		return app.ErrDuplicateProject
	}
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// GetProject returns project.
func (r *Repository) GetProject(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id)
	return scanProject(row)
}

// GetProjectByName returns the project with the given name, case-insensitively.
func (r *Repository) GetProjectByName(ctx context.Context, name string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM projects
		WHERE name = ? COLLATE NOCASE
	`, strings.TrimSpace(name))
	return scanProject(row)
}

// ListProjects lists projects.
func (r *Repository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM projects
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProject deletes project.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// CreateTask creates task.
func (r *Repository) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks(id, project_id, title, description, priority, due_at, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		t.ProjectID,
		t.Title,
		t.Description,
		string(t.Priority),
		nullableTS(t.DueAt),
		boolToInt(t.Completed),
		ts(t.CreatedAt),
		ts(t.UpdatedAt),
	)
	return err
}

// UpdateTask updates state for the requested operation.
func (r *Repository) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET project_id = ?, title = ?, description = ?, priority = ?, due_at = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`,
		t.ProjectID,
		t.Title,
		t.Description,
		string(t.Priority),
		nullableTS(t.DueAt),
		boolToInt(t.Completed),
		ts(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// GetTask returns task.
func (r *Repository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, project_id, title, description, priority, due_at, completed, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

// ListTasks lists tasks for one project ordered open-first, due date with
// nulls last, then creation time.
func (r *Repository) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, title, description, priority, due_at, completed, created_at, updated_at
		FROM tasks
		WHERE project_id = ?
		ORDER BY completed ASC, due_at IS NULL ASC, due_at ASC, created_at ASC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListAllTasks lists every task across projects.
func (r *Repository) ListAllTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, title, description, priority, due_at, completed, created_at, updated_at
		FROM tasks
		ORDER BY completed ASC, due_at IS NULL ASC, due_at ASC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// DeleteTask deletes task.
func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// ReassignTasks moves every task from one project to another.
func (r *Repository) ReassignTasks(ctx context.Context, fromID, toID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET project_id = ?, updated_at = ?
		WHERE project_id = ?
	`, toID, ts(time.Now()), fromID)
	return err
}

// collectTasks drains task rows.
func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	out := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// scanner represents scanner data used by this package.
type scanner interface {
	Scan(dest ...any) error
}

// scanProject handles scan project.
func scanProject(s scanner) (domain.Project, error) {
	var (
		p          domain.Project
		createdRaw string
		updatedRaw string
	)
	if err := s.Scan(&p.ID, &p.Name, &createdRaw, &updatedRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, app.ErrNotFound
		}
		return domain.Project{}, err
	}
	p.CreatedAt = parseTS(createdRaw)
	p.UpdatedAt = parseTS(updatedRaw)
	return p, nil
}

// scanTask handles scan task.
func scanTask(s scanner) (domain.Task, error) {
	var (
		t          domain.Task
		priority   string
		dueRaw     sql.NullString
		completed  int
		createdRaw string
		updatedRaw string
	)
	if err := s.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&priority,
		&dueRaw,
		&completed,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, app.ErrNotFound
		}
		return domain.Task{}, err
	}
	t.Priority = domain.Priority(priority)
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.DueAt = parseNullTS(dueRaw)
	t.Completed = completed != 0
	t.CreatedAt = parseTS(createdRaw)
	t.UpdatedAt = parseTS(updatedRaw)
	return t, nil
}

// translateNoRows handles translate no rows.
func translateNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrNotFound
	}
	return nil
}

// boolToInt handles bool to int.
func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// ts handles ts.
func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// nullableTS handles nullable ts.
func nullableTS(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTS parses input into a normalized form.
func parseTS(v string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

// parseNullTS parses input into a normalized form.
func parseNullTS(v sql.NullString) *time.Time {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return nil
	}
	ts := parseTS(v.String)
	return &ts
}

// isDuplicateColumnErr reports whether the expected condition is satisfied.
func isDuplicateColumnErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}

// isUniqueConstraintErr reports whether the expected condition is satisfied.
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
