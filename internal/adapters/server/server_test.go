package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/domain"
)

// nopService satisfies the MCP service surface with empty results.
type nopService struct{}

func (nopService) EnsureDefaultProject(context.Context) (domain.Project, error) {
	return domain.Project{}, nil
}
func (nopService) ListProjects(context.Context) ([]domain.Project, error) { return nil, nil }
func (nopService) ListTasks(context.Context, string) ([]domain.Task, error) {
	return nil, nil
}
func (nopService) SearchTasks(context.Context, app.SearchTasksFilter) ([]domain.Task, error) {
	return nil, nil
}
func (nopService) CreateTask(context.Context, app.CreateTaskInput) (domain.Task, error) {
	return domain.Task{}, nil
}
func (nopService) ToggleCompletion(context.Context, string) (domain.Task, error) {
	return domain.Task{}, nil
}
func (nopService) DeleteTask(context.Context, string) error { return nil }

// TestNewHandlerServesHealthEndpoints verifies both health routes answer ok.
func TestNewHandlerServesHealthEndpoints(t *testing.T) {
	handler, cfg, err := NewHandler(Config{}, nopService{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if cfg.MCPEndpoint != "/mcp" {
		t.Fatalf("MCPEndpoint = %q, want /mcp", cfg.MCPEndpoint)
	}
	if cfg.HTTPBind != defaultBindAddress {
		t.Fatalf("HTTPBind = %q, want %q", cfg.HTTPBind, defaultBindAddress)
	}

	server := httptest.NewServer(handler)
	defer server.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := server.Client().Get(server.URL + path)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", path, resp.StatusCode, http.StatusOK)
		}
		if err := resp.Body.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}
}

// TestNewHandlerRequiresService verifies the service dependency is mandatory.
func TestNewHandlerRequiresService(t *testing.T) {
	if _, _, err := NewHandler(Config{}, nil); err == nil {
		t.Fatal("NewHandler(nil service) error = nil, want error")
	}
}

// TestNormalizeEndpoint verifies endpoint cleanup rules.
func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/mcp"},
		{"/", "/mcp"},
		{"mcp", "/mcp"},
		{"/tools/", "/tools"},
		{"  /rpc  ", "/rpc"},
	}
	for _, tt := range tests {
		if got := normalizeEndpoint(tt.in, "/mcp"); got != tt.want {
			t.Fatalf("normalizeEndpoint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
