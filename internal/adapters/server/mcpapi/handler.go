// Package mcpapi provides a stateless MCP streamable-HTTP adapter over the
// todo service.
package mcpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/domain"
)

// Config captures MCP transport configuration.
type Config struct {
	ServerName    string
	ServerVersion string
	EndpointPath  string
}

// Service is the todo surface the MCP tools call into.
type Service interface {
	EnsureDefaultProject(ctx context.Context) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	SearchTasks(ctx context.Context, in app.SearchTasksFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, in app.CreateTaskInput) (domain.Task, error)
	ToggleCompletion(ctx context.Context, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// Handler wraps one stateless MCP streamable HTTP handler.
type Handler struct {
	httpHandler http.Handler
}

// NewHandler builds one stateless MCP adapter exposing the todo tools.
func NewHandler(cfg Config, svc Service) (*Handler, error) {
	if svc == nil {
		return nil, fmt.Errorf("todo service is required")
	}
	cfg = normalizeConfig(cfg)

	mcpSrv := mcpserver.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		mcpserver.WithToolCapabilities(false),
	)
	registerProjectTools(mcpSrv, svc)
	registerTaskTools(mcpSrv, svc)

	streamable := mcpserver.NewStreamableHTTPServer(
		mcpSrv,
		mcpserver.WithEndpointPath(cfg.EndpointPath),
		mcpserver.WithStateLess(true),
	)
	return &Handler{httpHandler: streamable}, nil
}

// ServeHTTP handles one MCP streamable HTTP request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.httpHandler == nil {
		http.Error(w, "mcp handler unavailable", http.StatusServiceUnavailable)
		return
	}
	h.httpHandler.ServeHTTP(w, r)
}

// normalizeConfig applies deterministic defaults to MCP adapter config.
func normalizeConfig(cfg Config) Config {
	cfg.ServerName = strings.TrimSpace(cfg.ServerName)
	if cfg.ServerName == "" {
		cfg.ServerName = "syssla"
	}
	cfg.ServerVersion = strings.TrimSpace(cfg.ServerVersion)
	if cfg.ServerVersion == "" {
		cfg.ServerVersion = "dev"
	}
	cfg.EndpointPath = strings.TrimSpace(cfg.EndpointPath)
	if cfg.EndpointPath == "" {
		cfg.EndpointPath = "/mcp"
	}
	if !strings.HasPrefix(cfg.EndpointPath, "/") {
		cfg.EndpointPath = "/" + cfg.EndpointPath
	}
	cfg.EndpointPath = "/" + strings.Trim(cfg.EndpointPath, "/")
	return cfg
}

// registerProjectTools registers the `todo_list_projects` tool.
func registerProjectTools(srv *mcpserver.MCPServer, svc Service) {
	srv.AddTool(
		mcp.NewTool(
			"todo_list_projects",
			mcp.WithDescription("List every project with its identifier and name."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if _, err := svc.EnsureDefaultProject(ctx); err != nil {
				return toolResultFromError(err), nil
			}
			projects, err := svc.ListProjects(ctx)
			if err != nil {
				return toolResultFromError(err), nil
			}
			payload := make([]projectPayload, 0, len(projects))
			for _, project := range projects {
				payload = append(payload, newProjectPayload(project))
			}
			result, err := mcp.NewToolResultJSON(map[string]any{"projects": payload})
			if err != nil {
				return nil, fmt.Errorf("encode todo_list_projects result: %w", err)
			}
			return result, nil
		},
	)
}

// registerTaskTools registers the task list, search, add, complete, and delete tools.
func registerTaskTools(srv *mcpserver.MCPServer, svc Service) {
	srv.AddTool(
		mcp.NewTool(
			"todo_list_tasks",
			mcp.WithDescription("List tasks, open before completed, earliest due date first."),
			mcp.WithString("project_id", mcp.Description("Limit to one project; empty lists every project")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			tasks, err := svc.ListTasks(ctx, req.GetString("project_id", ""))
			if err != nil {
				return toolResultFromError(err), nil
			}
			return taskListResult("todo_list_tasks", tasks)
		},
	)

	srv.AddTool(
		mcp.NewTool(
			"todo_search_tasks",
			mcp.WithDescription("Search tasks by substring over title and description with optional filters."),
			mcp.WithString("query", mcp.Description("Substring to match")),
			mcp.WithString("project_id", mcp.Description("Limit to one project")),
			mcp.WithString("priority", mcp.Description("Filter by priority"), mcp.Enum(priorityNames()...)),
			mcp.WithBoolean("completed", mcp.Description("Filter by completion state")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			filter := app.SearchTasksFilter{
				ProjectID: req.GetString("project_id", ""),
				Query:     req.GetString("query", ""),
				Priority:  domain.Priority(req.GetString("priority", "")),
			}
			if raw, ok := req.GetArguments()["completed"]; ok {
				if completed, ok := raw.(bool); ok {
					filter.Completed = &completed
				}
			}
			tasks, err := svc.SearchTasks(ctx, filter)
			if err != nil {
				return toolResultFromError(err), nil
			}
			return taskListResult("todo_search_tasks", tasks)
		},
	)

	srv.AddTool(
		mcp.NewTool(
			"todo_add_task",
			mcp.WithDescription("Create a task; without a project_id it lands in Inbox."),
			mcp.WithString("title", mcp.Required(), mcp.Description("Task title")),
			mcp.WithString("description", mcp.Description("Task description, markdown allowed")),
			mcp.WithString("project_id", mcp.Description("Target project identifier")),
			mcp.WithString("priority", mcp.Description("Task priority, defaults to medium"), mcp.Enum(priorityNames()...)),
			mcp.WithString("due_date", mcp.Description("Due date as YYYY-MM-DD")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			title, err := req.RequireString("title")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			dueAt, err := domain.ParseDueDate(req.GetString("due_date", ""))
			if err != nil {
				return toolResultFromError(err), nil
			}
			projectID := strings.TrimSpace(req.GetString("project_id", ""))
			if projectID == "" {
				inbox, err := svc.EnsureDefaultProject(ctx)
				if err != nil {
					return toolResultFromError(err), nil
				}
				projectID = inbox.ID
			}
			task, err := svc.CreateTask(ctx, app.CreateTaskInput{
				ProjectID:   projectID,
				Title:       title,
				Description: req.GetString("description", ""),
				Priority:    domain.Priority(req.GetString("priority", "")),
				DueAt:       dueAt,
			})
			if err != nil {
				return toolResultFromError(err), nil
			}
			result, err := mcp.NewToolResultJSON(newTaskPayload(task))
			if err != nil {
				return nil, fmt.Errorf("encode todo_add_task result: %w", err)
			}
			return result, nil
		},
	)

	srv.AddTool(
		mcp.NewTool(
			"todo_complete_task",
			mcp.WithDescription("Toggle a task between open and completed."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task identifier")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			taskID, err := req.RequireString("task_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			task, err := svc.ToggleCompletion(ctx, taskID)
			if err != nil {
				return toolResultFromError(err), nil
			}
			result, err := mcp.NewToolResultJSON(newTaskPayload(task))
			if err != nil {
				return nil, fmt.Errorf("encode todo_complete_task result: %w", err)
			}
			return result, nil
		},
	)

	srv.AddTool(
		mcp.NewTool(
			"todo_delete_task",
			mcp.WithDescription("Delete one task by id."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task identifier")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			taskID, err := req.RequireString("task_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := svc.DeleteTask(ctx, taskID); err != nil {
				return toolResultFromError(err), nil
			}
			result, err := mcp.NewToolResultJSON(map[string]any{"deleted": taskID})
			if err != nil {
				return nil, fmt.Errorf("encode todo_delete_task result: %w", err)
			}
			return result, nil
		},
	)
}

// taskListResult encodes a list of tasks as one tool result.
func taskListResult(tool string, tasks []domain.Task) (*mcp.CallToolResult, error) {
	payload := make([]taskPayload, 0, len(tasks))
	for _, task := range tasks {
		payload = append(payload, newTaskPayload(task))
	}
	result, err := mcp.NewToolResultJSON(map[string]any{"tasks": payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", tool, err)
	}
	return result, nil
}

// toolResultFromError maps service errors into MCP-visible tool errors.
func toolResultFromError(err error) *mcp.CallToolResult {
	switch {
	case err == nil:
		return mcp.NewToolResultError("unknown error")
	case errors.Is(err, app.ErrNotFound):
		return mcp.NewToolResultError("not_found: " + err.Error())
	case errors.Is(err, app.ErrDuplicateProject), errors.Is(err, app.ErrDefaultProject):
		return mcp.NewToolResultError("conflict: " + err.Error())
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidDueDate):
		return mcp.NewToolResultError("invalid_request: " + err.Error())
	default:
		return mcp.NewToolResultError("internal_error: " + err.Error())
	}
}

// priorityNames lists the priority enum values for tool schemas.
func priorityNames() []string {
	priorities := domain.Priorities()
	names := make([]string, 0, len(priorities))
	for _, priority := range priorities {
		names = append(names, string(priority))
	}
	return names
}
